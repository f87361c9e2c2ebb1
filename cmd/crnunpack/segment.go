package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/gputex/crn"
)

// runSegment splits a container into a trimmed base file plus one
// zstd-compressed stream per level. The base file validates on its own;
// the level streams are what UnpackLevelSegmented consumes after
// decompression.
func runSegment(args []string) error {
	fs := flag.NewFlagSet("segment", flag.ContinueOnError)
	outDir := fs.String("o", ".", "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("segment: expected one input file")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	fi, err := crn.Validate(data)
	if err != nil {
		return err
	}

	base, err := crn.CreateSegmentedFile(data)
	if err != nil {
		return err
	}

	name := strings.TrimSuffix(filepath.Base(fs.Arg(0)), filepath.Ext(fs.Arg(0)))
	basePath := filepath.Join(*outDir, name+".base.crn")
	if err := os.WriteFile(basePath, base, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d bytes)\n", basePath, len(base))

	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
	)
	if err != nil {
		return err
	}
	defer enc.Close()

	for level := uint32(0); level < fi.Levels; level++ {
		stream, err := crn.LevelData(data, level)
		if err != nil {
			return err
		}
		packed := enc.EncodeAll(stream, nil)
		path := filepath.Join(*outDir, fmt.Sprintf("%s.level%d.zst", name, level))
		if err := os.WriteFile(path, packed, 0o644); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d -> %d bytes)\n", path, len(stream), len(packed))
	}
	return nil
}

// readLevelStream loads and decompresses one segmented level stream
// written by runSegment.
func readLevelStream(baseCRNPath string, level uint32) ([]byte, error) {
	name := strings.TrimSuffix(baseCRNPath, ".base.crn")
	path := fmt.Sprintf("%s.level%d.zst", name, level)
	packed, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(packed, nil)
}
