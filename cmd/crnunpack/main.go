// Command crnunpack inspects, transcodes, and segments crunched texture
// containers.
//
// Usage:
//
//	crnunpack info <input.crn>                     Display container metadata
//	crnunpack unpack [options] <input.crn>         Transcode levels to DDS/raw blocks
//	crnunpack segment [options] <input.crn>        Split into a base file + zstd level streams
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gputex/crn"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "info":
		err = runInfo(os.Args[2:])
	case "unpack":
		err = runUnpack(os.Args[2:])
	case "segment":
		err = runSegment(os.Args[2:])
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "crnunpack: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "crnunpack: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  crnunpack info <input.crn>               Display container metadata
  crnunpack unpack [options] <input.crn>   Transcode levels to DDS or raw blocks
  crnunpack segment [options] <input.crn>  Split into base file + zstd level streams

Run "crnunpack <command> -h" for command-specific options.
`)
}

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("info: expected one input file")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	fi, err := crn.Validate(data)
	if err != nil {
		return err
	}
	ti, err := crn.GetTextureInfo(data)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %dx%d %s, %d level(s), %d face(s)\n",
		filepath.Base(fs.Arg(0)), ti.Width, ti.Height, ti.Format, ti.Levels, ti.Faces)
	fmt.Printf("  data size:      %d\n", fi.ActualDataSize)
	fmt.Printf("  header size:    %d\n", fi.HeaderSize)
	fmt.Printf("  palettes:       %d bytes (%d/%d color, %d/%d alpha entries)\n",
		fi.TotalPaletteSize,
		fi.ColorEndpointPaletteEntries, fi.ColorSelectorPaletteEntries,
		fi.AlphaEndpointPaletteEntries, fi.AlphaSelectorPaletteEntries)
	fmt.Printf("  tables:         %d bytes\n", fi.TablesSize)
	for i, li := 0, fi.LevelCompressedSize; i < len(li); i++ {
		lv, err := crn.GetLevelInfo(data, uint32(i))
		if err != nil {
			return err
		}
		fmt.Printf("  level %d:        %dx%d, %dx%d blocks, %d bytes compressed\n",
			i, lv.Width, lv.Height, lv.BlocksX, lv.BlocksY, li[i])
	}
	return nil
}

func runUnpack(args []string) error {
	fs := flag.NewFlagSet("unpack", flag.ContinueOnError)
	outDir := fs.String("o", ".", "output directory")
	levelArg := fs.Int("level", -1, "level to unpack (-1 = all)")
	convert := fs.String("to", "", "convert ETC1S output: dxt1 or dxt5a")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("unpack: expected one input file")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	fi, err := crn.Validate(data)
	if err != nil {
		return err
	}
	ti, err := crn.GetTextureInfo(data)
	if err != nil {
		return err
	}

	output := crn.TranscodeUnchanged
	outFormat := ti.Format
	blockPitch := uint32(0)
	switch strings.ToLower(*convert) {
	case "":
	case "dxt1":
		output, outFormat, blockPitch = crn.TranscodeDXT1, crn.FormatDXT1, 2
	case "dxt5a":
		output, outFormat, blockPitch = crn.TranscodeDXT5A, crn.FormatDXT5A, 2
	default:
		return fmt.Errorf("unpack: unknown conversion %q", *convert)
	}

	unpacker, err := crn.Begin(data)
	if err != nil {
		return err
	}
	defer unpacker.Close()

	first, last := uint32(0), ti.Levels
	if *levelArg >= 0 {
		first, last = uint32(*levelArg), uint32(*levelArg)+1
		if first >= ti.Levels {
			return fmt.Errorf("unpack: level %d out of range (%d levels)", first, ti.Levels)
		}
	}

	// One output per face; each holds the requested levels in mip order.
	faces := make([][]byte, ti.Faces)
	for level := first; level < last; level++ {
		li, err := crn.GetLevelInfo(data, level)
		if err != nil {
			return err
		}
		blockBytes := li.BytesPerBlock
		if output != crn.TranscodeUnchanged {
			blockBytes = blockPitch * 4
		}
		levelSize := li.BlocksX * li.BlocksY * blockBytes

		dst := make([][]byte, ti.Faces)
		for f := range dst {
			dst[f] = make([]byte, levelSize)
		}
		if fi.Segmented {
			stream, err := readLevelStream(fs.Arg(0), level)
			if err != nil {
				return err
			}
			err = unpacker.UnpackLevelSegmented(stream, dst, 0, level, output, blockPitch)
			if err != nil {
				return err
			}
		} else if err := unpacker.UnpackLevel(dst, 0, level, output, blockPitch); err != nil {
			return err
		}
		for f := range faces {
			faces[f] = append(faces[f], dst[f]...)
		}
	}

	base := strings.TrimSuffix(filepath.Base(fs.Arg(0)), filepath.Ext(fs.Arg(0)))
	numLevels := last - first
	w, h := ti.Width>>first, ti.Height>>first
	for f := range faces {
		name := base
		if ti.Faces > 1 {
			name = fmt.Sprintf("%s_face%d", base, f)
		}
		var out []byte
		ext := ".dds"
		if outFormat.IsETC() {
			// ETC payloads have no legacy DDS encoding; emit raw blocks.
			ext = ".blocks"
			out = faces[f]
		} else {
			out = append(ddsHeader(maxU32(w, 1), maxU32(h, 1), numLevels, outFormat), faces[f]...)
		}
		path := filepath.Join(*outDir, name+ext)
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d bytes)\n", path, len(out))
	}
	return nil
}

func maxU32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
