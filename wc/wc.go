// Copyright 2015 "as". All rights reserved. The program and its corresponding
// gotools package is governed by an MIT license.
//
// Wc counts lines, words, and bytes

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/as/argfile"
	"github.com/as/mute"
)

const (
	Prefix     = "wc: "
	BufferSize = 64 * 1024

	// MinWidth is the narrowest column printed: one digit
	// plus one leading space.
	MinWidth = 2
)

var args struct {
	lines, words, bytes bool
	h, q                bool
}

var f *flag.FlagSet
var flagerr error

func init() {
	f = flag.NewFlagSet("main", flag.ContinueOnError)
	f.BoolVar(&args.lines, "l", false, "")
	f.BoolVar(&args.lines, "lines", false, "")
	f.BoolVar(&args.words, "w", false, "")
	f.BoolVar(&args.words, "words", false, "")
	f.BoolVar(&args.bytes, "c", false, "")
	f.BoolVar(&args.bytes, "bytes", false, "")

	f.BoolVar(&args.h, "h", false, "")
	f.BoolVar(&args.q, "?", false, "")

	flagerr = mute.Parse(f, os.Args[1:])
	if !args.lines && !args.words && !args.bytes {
		args.lines = true
		args.words = true
		args.bytes = true
	}
}

// A tally holds the counts for one source, or the running
// totals across all of them.
type tally struct {
	lines, words, bytes uint64
	name                string
}

func (t tally) String() string {
	return t.name
}

// add adds t2 to tally t
func (t *tally) add(t2 *tally) {
	t.lines += t2.lines
	t.words += t2.words
	t.bytes += t2.bytes
}

// report prints the selected counts right-aligned in fields of
// the given width, followed by the tally's name, if it has one.
func (t *tally) report(w io.Writer, width int) {
	if args.lines {
		fmt.Fprintf(w, "%*d", width, t.lines)
	}
	if args.words {
		fmt.Fprintf(w, "%*d", width, t.words)
	}
	if args.bytes {
		fmt.Fprintf(w, "%*d", width, t.bytes)
	}
	if t.name != "" {
		fmt.Fprintf(w, " %s", t.name)
	}
	fmt.Fprintln(w)
}

func main() {
	if flagerr != nil {
		printerr(flagerr)
		os.Exit(1)
	}
	if args.h || args.q {
		usage()
		os.Exit(0)
	}
	files := f.Args()
	if len(files) == 0 {
		// Implicit stdin source: the column width can only come
		// from the byte count after the scan. The trailing report
		// carries no name and is followed by a blank line.
		t, err := count(os.Stdin)
		if err != nil {
			printerr(err)
			return // counts discarded, nothing to report
		}
		t.report(os.Stdout, width(t.bytes))
		fmt.Println()
		return
	}

	// The shared column width is fixed before any scanning, from
	// the stat sizes of every named source. A source that cannot
	// be stat'ed aborts the whole run; nothing has printed yet, so
	// no partial output is left behind.
	var total uint64
	for _, name := range files {
		if name == "-" {
			continue // a file list on stdin; unknown until read
		}
		fi, err := os.Stat(name)
		if err != nil {
			printerr(err)
			os.Exit(1)
		}
		total += uint64(fi.Size())
	}
	w := width(total)

	totals := &tally{name: "total"}
	for fd := range argfile.Next(files...) {
		t, err := count(fd)
		fd.Close()
		if err != nil {
			printerr(fd.Name+":", err)
			continue // counts for this source are discarded
		}
		t.name = fd.Name
		t.report(os.Stdout, w)
		totals.add(t)
	}
	if len(files) > 1 {
		totals.report(os.Stdout, w)
	}
}

// count runs one pass over in. A \r ends a line; a \n ends a line
// unless it directly follows a \r, so a \r\n pair counts once. A
// word begins at any non-space byte whose predecessor was a space
// or the start of input.
func count(in io.Reader) (*tally, error) {
	t := new(tally)
	prev := -1      // no byte consumed yet
	inspace := true // the stream edge bounds a word
	buf := make([]byte, BufferSize)
	for {
		n, err := in.Read(buf)
		for _, b := range buf[:n] {
			if b == '\r' || (b == '\n' && prev != '\r') {
				t.lines++
			}
			sp := isspace(b)
			if !sp && inspace {
				t.words++
			}
			t.bytes++
			prev, inspace = int(b), sp
		}
		switch err {
		case nil:
			// A Read is allowed to return no bytes and no error
			// without the stream being finished. Only EOF ends
			// the scan; keep reading.
		case io.EOF:
			return t, nil
		default:
			return nil, err
		}
	}
}

func isspace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// width is the shared field width for n as the largest printable
// total: its digits plus one space of padding, never under MinWidth.
func width(n uint64) int {
	w := len(strconv.FormatUint(n, 10)) + 1
	if w < MinWidth {
		w = MinWidth
	}
	return w
}

func printerr(v ...interface{}) {
	fmt.Fprint(os.Stderr, Prefix)
	fmt.Fprintln(os.Stderr, v...)
}

func usage() {
	fmt.Print(`
NAME
	wc - word count

SYNOPSIS
	wc [ -lwc ] [ file ... ]

DESCRIPTION
	Wc counts lines, words, and bytes in the file list
	provided. An empty file list implies stdin.

	The default behavior is equal to: wc -lwc

	A carriage return ends a line. A line feed ends a line
	unless it directly follows a carriage return, so DOS
	line endings count once. A word is a maximal run of
	non-whitespace bytes.

	Counts are printed right-aligned in columns sized up
	front from the stat sizes of the named files, with a
	total row after the per-file rows when more than one
	file is named. A file that can't be stat'ed stops the
	run; a file that can't be opened or read is reported
	and skipped, and its counts stay out of the total.

	If - is named as a file, standard input is treated as a
	list of files. If no files are named, stdin is treated
	as the file.

EXAMPLE
	Count lines in /etc/hosts
	wc -l /etc/hosts

	Count lines, words and bytes in file1 and file2:
	wc file1 file2

BUGS
	Files named through - don't widen the columns

`)
}
