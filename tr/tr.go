package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/as/mute"
)

const Prefix = "tr: "

var args struct {
	h, q bool
}

var f *flag.FlagSet
var flagerr error

func init() {
	f = flag.NewFlagSet("main", flag.ContinueOnError)
	f.BoolVar(&args.h, "h", false, "")
	f.BoolVar(&args.q, "?", false, "")
	flagerr = mute.Parse(f, os.Args[1:])
}

func main() {
	if flagerr != nil {
		printerr(flagerr)
		os.Exit(1)
	}
	if args.h || args.q {
		usage(os.Stdout)
		os.Exit(0)
	}
	a := f.Args()
	if len(a) != 2 {
		usage(os.Stderr)
		os.Exit(1)
	}
	trmap := mapping(a[0], a[1])

	o := bufio.NewWriter(os.Stdout)
	err := translate(os.Stdin, o, trmap)
	if err != nil {
		// A broken read ends the stream early but isn't fatal;
		// whatever translated so far still goes out.
		printerr("read error:", err)
	}
	o.Flush()
}

// mapping pairs each byte of src with the byte of dst in the same
// position. When src is longer, the leftover src bytes all map to
// the last byte of dst; when dst is longer, its leftover bytes are
// ignored. An empty dst maps nothing.
func mapping(src, dst string) map[byte]byte {
	trmap := make(map[byte]byte)
	if len(dst) == 0 {
		return trmap
	}
	for i := 0; i < len(src); i++ {
		j := i
		if j > len(dst)-1 {
			j = len(dst) - 1
		}
		trmap[src[i]] = dst[j]
	}
	return trmap
}

// translate copies in to o, replacing every byte found in trmap
// with its mapping. Bytes outside the map pass through unchanged.
func translate(in io.Reader, o *bufio.Writer, trmap map[byte]byte) error {
	i := bufio.NewReader(in)
	for {
		src, err := i.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		dst, ok := trmap[src]
		if !ok {
			o.WriteByte(src)
			continue
		}
		o.WriteByte(dst)
	}
}

func printerr(v ...interface{}) {
	fmt.Fprint(os.Stderr, Prefix)
	fmt.Fprintln(os.Stderr, v...)
}

func usage(w io.Writer) {
	fmt.Fprint(w, `
NAME
	tr - translate character set

SYNOPSIS
	tr set1 set2

DESCRIPTION
	Tr reads from stdin and maps bytes in set1 to the byte
	at the corresponding position in set2, writing the
	result to stdout. If set1 is longer than set2, the last
	byte of set2 stands in for the missing positions; extra
	bytes in set2 are ignored.

	Exactly two sets are required.

EXAMPLE
	# Shout
	echo hello | tr abcdefghijklmnopqrstuvwxyz ABCDEFGHIJKLMNOPQRSTUVWXYZ

	# Everything after c collapses to z
	echo abcdef | tr abcdef xyz

`)
}
