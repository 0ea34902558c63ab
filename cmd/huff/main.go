// huff compresses and decompresses files with static Huffman coding.
//
// Usage:
//
//	huff [-v] [-raw] [-o <output>] <filename> [<filename> ...]
//	huff -d [-v] [-o <output>] <filename> [<filename> ...]
//
// By default each input "name.ext" is compressed into the archive
// "name_compressed.ext".  With -d, each archive "name_compressed.ext" is
// expanded into "name_decompressed.ext".
//
// With -raw, each input is compressed into a headerless bit stream and
// immediately expanded again within the same process, since the tree needed
// to decode a raw stream is not stored anywhere.
//
// Options:
//
//	-d            decompress archives
//	-raw          write headerless streams and round-trip them in-process
//	-o <output>   output path (only with a single input)
//	-v            print frequencies, tree and code table
//	-version      print version information
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chronos-tachyon/statichuff/internal/logger"
)

const version = "1.0.0"

type config struct {
	decompress bool
	raw        bool
	output     string
	verbose    bool
	showVer    bool
}

func (c *config) register(fs *flag.FlagSet) {
	fs.BoolVar(&c.decompress, "d", false, "decompress archives")
	fs.BoolVar(&c.raw, "raw", false, "write headerless streams and round-trip them in-process")
	fs.StringVar(&c.output, "o", "", "output path (only with a single input)")
	fs.BoolVar(&c.verbose, "v", false, "print frequencies, tree and code table")
	fs.BoolVar(&c.showVer, "version", false, "print version information")
}

func (c *config) validate(args []string) error {
	if len(args) == 0 {
		return errors.New("no input files")
	}
	if c.decompress && c.raw {
		return errors.New("-d and -raw are mutually exclusive")
	}
	if c.output != "" && len(args) != 1 {
		return errors.New("-o requires exactly one input file")
	}
	if c.output != "" && c.raw {
		return errors.New("-o cannot be combined with -raw")
	}
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout io.Writer, stderr io.Writer) int {
	var cfg config
	fs := flag.NewFlagSet("huff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: huff [-d|-raw] [-v] [-o <output>] <filename> [<filename> ...]\n\n")
		fs.PrintDefaults()
	}
	cfg.register(fs)
	if err := fs.Parse(argv); err != nil {
		return 2
	}

	if cfg.showVer {
		fmt.Fprintf(stdout, "huff (statichuff) %s\n", version)
		return 0
	}

	log := logger.New(stderr, cfg.verbose)
	args := fs.Args()
	if err := cfg.validate(args); err != nil {
		log.Errorf("%v", err)
		fs.Usage()
		return 2
	}

	// A missing or unreadable input does not stop the remaining ones.
	status := 0
	for _, path := range args {
		var err error
		switch {
		case cfg.decompress:
			err = decompressFile(&cfg, log, path)
		case cfg.raw:
			err = roundTripFile(&cfg, log, stdout, path)
		default:
			err = compressFile(&cfg, log, stdout, path)
		}
		if err != nil {
			log.Errorf("%s: %v", path, err)
			status = 1
		}
	}
	return status
}
