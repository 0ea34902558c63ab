package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	huffman "github.com/chronos-tachyon/statichuff"
	"github.com/chronos-tachyon/statichuff/internal/logger"
)

const (
	compressedSuffix   = "_compressed"
	decompressedSuffix = "_decompressed"
)

// compressedPath maps "dir/name.ext" to "dir/name_compressed.ext".
func compressedPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + compressedSuffix + ext
}

// decompressedPath maps "dir/name_compressed.ext" to
// "dir/name_decompressed.ext".  Paths without the "_compressed" marker just
// gain the "_decompressed" one.
func decompressedPath(path string) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(strings.TrimSuffix(path, ext), compressedSuffix)
	return base + decompressedSuffix + ext
}

func compressFile(cfg *config, log logger.Logger, stdout io.Writer, path string) error {
	outPath := cfg.output
	if outPath == "" {
		outPath = compressedPath(path)
	}

	var res *huffman.Result
	err := withFiles(path, outPath, func(in *os.File, out *os.File) error {
		var err error
		res, err = huffman.WriteArchive(out, in)
		return err
	})
	if err != nil {
		return err
	}

	log.Infof("%s -> %s: %d symbols, %d bits", path, outPath, res.Stats.Symbols, res.Stats.Bits)
	if cfg.verbose {
		return dump(stdout, res)
	}
	return nil
}

func decompressFile(cfg *config, log logger.Logger, path string) error {
	outPath := cfg.output
	if outPath == "" {
		outPath = decompressedPath(path)
	}

	var res *huffman.Result
	err := withFiles(path, outPath, func(in *os.File, out *os.File) error {
		var err error
		res, err = huffman.ReadArchive(out, in)
		return err
	})
	if err != nil {
		return err
	}

	log.Infof("%s -> %s: %d symbols", path, outPath, res.Stats.Symbols)
	log.Debugf("%s: tree depth %d, %d distinct symbols", path, res.Tree.Depth(), res.Frequencies.Len())
	return nil
}

// roundTripFile writes a headerless stream and decodes it again with the
// tree still held in memory.
func roundTripFile(cfg *config, log logger.Logger, stdout io.Writer, path string) error {
	rawPath := compressedPath(path)
	outPath := decompressedPath(rawPath)

	var res *huffman.Result
	err := withFiles(path, rawPath, func(in *os.File, out *os.File) error {
		var err error
		res, err = huffman.Compress(out, in)
		return err
	})
	if err != nil {
		return err
	}
	log.Infof("%s -> %s: %d symbols, %d bits", path, rawPath, res.Stats.Symbols, res.Stats.Bits)

	var n int64
	err = withFiles(rawPath, outPath, func(in *os.File, out *os.File) error {
		var err error
		n, err = huffman.Decompress(out, in, res.Tree)
		return err
	})
	if err != nil {
		return err
	}
	log.Infof("%s -> %s: %d symbols", rawPath, outPath, n)

	if cfg.verbose {
		return dump(stdout, res)
	}
	return nil
}

// withFiles opens inPath, creates outPath, and runs fn with both.  Both files
// are closed on every path; an error closing the output is reported.
func withFiles(inPath string, outPath string, fn func(in *os.File, out *os.File) error) (err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return fn(in, out)
}

func dump(w io.Writer, res *huffman.Result) error {
	if _, err := res.Frequencies.Dump(w); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Tree:\n%s", res.Tree); err != nil {
		return err
	}
	_, err := res.Table.Dump(w)
	return err
}
