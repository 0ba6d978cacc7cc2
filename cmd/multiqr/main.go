// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Multiqr reads ASCII data from standard input and converts it to
// one or more QR codes.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"strings"
	"syscall"

	"github.com/unixdj/multiqr"
	"github.com/unixdj/qr/coding"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

var g = struct {
	ver        int            // desired QR version
	border     int            // quiet zone
	emptyLines int            // empty lines between codes
	label      string         // label above each code
	fn         string         // filename
	fext       string         // filename suffix
	lev        coding.Level   // QR correction level
	scale      int            // scale for png output
	format     int            // output format
	rev        bool           // reverse colours
	translit   bool           // transliterate input to ASCII
	multiFiles bool           // one output file per code
}{
	ver:        16,
	border:     4,
	emptyLines: 6,
	scale:      4,
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "Multi QR code generator\nUsage: ", cl.UsageLine(), `
Data is read from standard input.  Newlines are stripped, the rest
must be printable ASCII.  The data is split across as many QR codes
as needed to keep each code at or below the desired version.

Codes are denser if the data stays within the QR alphanumeric set:
0-9, A-Z (upper case only), space, $, %, *, +, -, ., /, :
Binary data can be piped through base32 first.

`)
	cl.PrintOptions(w)
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`multiqr version 0.1.0
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

var formats = []string{"utf8", "utf8i", "ascii", "asciii", "png"}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.ver, "qr-version", 'v',
		"desired QR code version, 1 to 40", "ver")
	getopt.FlagLong(&g.border, "border", 'm',
		"quiet zone pixels at the border of each code", "margin")
	getopt.FlagLong(&g.emptyLines, "empty-lines", 'n',
		"empty lines between one code and the next", "lines")
	getopt.FlagLong(&g.label, "label", 'L',
		"label printed above each code", "text")
	getopt.FlagLong(&g.translit, "ascii", 'a',
		"transliterate input to ASCII, dropping accents")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "m",
		"error correction level, lowest to highest", "l|m|q|h")
	getopt.FlagLong(&g.scale, "scale", 's',
		`image pixels per QR module ("pixel") for type png`, "scale")
	fno := getopt.FlagLong(&g.fn, "output", 'o', `output file, or "-" `+
		`for standard output; with multiple codes, "-01", "-02" etc. `+
		`is appended to the filename before the suffix`, "file")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	if g.ver < int(coding.MinVersion) || g.ver > int(coding.MaxVersion) {
		fmt.Fprintln(os.Stderr, "QR version out of range 1-40")
		usage()
	}
	if g.border < 0 || g.emptyLines < 0 || g.scale < 1 {
		fmt.Fprintln(os.Stderr, "bad border, empty-lines or scale")
		usage()
	}
	g.lev = coding.Level(strings.Index("lmqhLMQH", *lev) & 3)
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = i >> 1
			g.rev = i&1 != 0
			break
		}
	}
	if g.fn == "-" {
		g.fn = ""
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	data, err := readInput(os.Stdin, g.translit)
	if err != nil {
		log.Fatalln(err)
	}
	s := multiqr.Splitter{
		Version: coding.Version(g.ver),
		Level:   g.lev,
	}
	codes, err := s.Encode(data)
	if err != nil {
		log.Fatalln(err)
	}
	if g.multiFiles = len(codes) > 1 && g.fn != ""; g.multiFiles {
		g.fext = path.Ext(g.fn)
		g.fn = g.fn[:len(g.fn)-len(g.fext)]
	}
	for i, c := range codes {
		write(i, c)
		if i < len(codes)-1 && !g.multiFiles && g.format < 2 {
			os.Stdout.WriteString(
				strings.Repeat("\n", g.emptyLines))
		}
	}
}

// write writes a single code to its output file or standard output.
func write(i int, c *multiqr.Code) {
	fn := g.fn
	open := fn != ""
	var w = os.Stdout
	if open {
		if g.multiFiles {
			fn = fmt.Sprintf("%s-%02d%s", fn, i+1, g.fext)
		}
		var err error
		if w, err = os.OpenFile(fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	}
	var err error
	switch g.format {
	case 0:
		err = text(c, w, (*multiqr.Code).Text, 1)
	case 1:
		err = text(c, w, (*multiqr.Code).ASCII, 2)
	default:
		err = c.WritePNG(w, g.scale, g.border)
	}
	if open && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// text writes the centered heading and the code art.  cpp is the
// number of characters per pixel of the art.
func text(c *multiqr.Code, w io.Writer,
	enc func(*multiqr.Code, io.Writer, int, bool) error, cpp int) error {
	width := (c.Size + 2*g.border) * cpp
	if _, err := fmt.Fprintln(w, center(c.Label(g.label), width)); err != nil {
		return err
	}
	return enc(c, w, g.border, g.rev)
}

// center pads s to the middle of a row of the given width.
func center(s string, width int) string {
	if n := (width - len(s)) / 2; n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}
