package main

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func run(t *testing.T, src, dst, in, ex string) {
	var b bytes.Buffer
	o := bufio.NewWriter(&b)
	err := translate(strings.NewReader(in), o, mapping(src, dst))
	if err != nil {
		t.Fatalf("fail: translate: %s", err)
	}
	o.Flush()
	if ac := b.String(); ac != ex {
		t.Logf("fail: tr %q %q on %q: %q != %q", src, dst, in, ac, ex)
		t.Fail()
	}
}

func TestEqualSets(t *testing.T) { run(t, "abc", "xyz", "aabbcc", "xxyyzz") }
func TestClampToLast(t *testing.T) {
	// set1 outruns set2: c falls back to set2's last byte
	run(t, "abc", "xy", "abcabc", "xyyxyy")
}
func TestLongDstIgnored(t *testing.T) { run(t, "ab", "wxyz", "abba", "wxxw") }
func TestPassthrough(t *testing.T)    { run(t, "abc", "xyz", "hello, world\n", "hello, world\n") }
func TestEmptyInput(t *testing.T)     { run(t, "abc", "xyz", "", "") }
func TestEmptyDst(t *testing.T)       { run(t, "abc", "", "abcd", "abcd") }
func TestEmptySrc(t *testing.T)       { run(t, "", "xyz", "abcd", "abcd") }
func TestBinary(t *testing.T)         { run(t, "\x00\xff", "_.", "\x00a\xffb", "_a.b") }

func TestMappingClamps(t *testing.T) {
	m := mapping("abcd", "12")
	for _, v := range []struct{ from, to byte }{
		{'a', '1'}, {'b', '2'}, {'c', '2'}, {'d', '2'},
	} {
		if m[v.from] != v.to {
			t.Logf("fail: %q -> %q, want %q", v.from, m[v.from], v.to)
			t.Fail()
		}
	}
	if _, ok := m['e']; ok {
		t.Fatal("fail: unasked-for mapping for e")
	}
}

type badReader struct{ n int }

func (r *badReader) Read(p []byte) (int, error) {
	if r.n > 0 {
		r.n--
		p[0] = 'a'
		return 1, nil
	}
	return 0, errors.New("device gone")
}

func TestReadErrorKeepsOutput(t *testing.T) {
	var b bytes.Buffer
	o := bufio.NewWriter(&b)
	err := translate(&badReader{n: 3}, o, mapping("a", "z"))
	if err == nil {
		t.Fatal("fail: no error from broken reader")
	}
	o.Flush()
	if b.String() != "zzz" {
		t.Fatalf("fail: %q written before the error", b.String())
	}
}
