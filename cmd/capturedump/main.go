// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Command capturedump prints the bus writes recorded in a capture file.
//
// Writes whose length is a whole number of pixels are also decoded as pixels.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/danjacques/golpd8806/pixel"
	"github.com/danjacques/golpd8806/support/capture"
	"github.com/danjacques/golpd8806/support/fmtutil"
	"github.com/danjacques/golpd8806/support/logging"

	"github.com/spf13/pflag"
)

var (
	hexDump = pflag.BoolP("hex", "x", false, "Print a full hex dump of each record.")
	pixels  = pflag.BoolP("pixels", "p", false, "Decode records as pixels.")
	verbose = pflag.BoolP("verbose", "v", false, "Enable verbose logging.")
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <capture-file>\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	logger, sync, err := logging.NewZap(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't create logger: %s\n", err)
		os.Exit(1)
	}
	defer sync()

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(2)
	}

	if err := dump(os.Stdout, pflag.Arg(0), logger); err != nil {
		logger.Errorf("Failed to dump %q: %s", pflag.Arg(0), err)
		sync()
		os.Exit(1)
	}
}

func dump(w io.Writer, path string, logger logging.L) error {
	r, err := capture.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Close()
	}()
	logger.Debugf("Opened %q (compression %s).", path, r.Compression())

	count, total := 0, 0
	for {
		rec, err := r.Next()
		switch {
		case err == io.EOF:
			fmt.Fprintf(w, "%d record(s), %d byte(s)\n", count, total)
			return nil
		case err != nil:
			return err
		}

		fmt.Fprintf(w, "#%d +%s %s\n", count, rec.Offset, fmtutil.HexSlice(rec.Data))
		if *hexDump {
			fmt.Fprint(w, fmtutil.Hex(rec.Data))
		}
		if *pixels && len(rec.Data)%pixel.Size == 0 {
			var pb pixel.Buffer
			pb.UseBytes(rec.Data)
			for i := 0; i < pb.Len(); i++ {
				p := pb.Pixel(i)
				fmt.Fprintf(w, "\t[%d] %s\n", i, p)
			}
		}

		count++
		total += len(rec.Data)
	}
}
