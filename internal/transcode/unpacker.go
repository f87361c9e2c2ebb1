// Package transcode turns a validated container into GPU block data: it
// decodes the shared palettes at construction and replays each level's
// compressed block stream into caller buffers on demand.
package transcode

import (
	"errors"

	"github.com/gputex/crn/internal/container"
	"github.com/gputex/crn/internal/prefix"
)

// OutputFormat selects the emitted block encoding. Containers are
// normally unpacked unchanged; ETC1S containers may instead be converted
// to DXT1 or DXT5A at block-assembly time.
type OutputFormat int

const (
	OutputUnchanged OutputFormat = iota
	OutputDXT1
	OutputDXT5A
)

var (
	ErrArgument    = errors.New("transcode: invalid argument")
	ErrUnsupported = errors.New("transcode: unsupported format")
)

// blockState is the per-column decode state carried from one block row
// to the next: the stashed endpoint reference nibble and the palette
// indices of the block directly above.
type blockState struct {
	endpointReference   uint16
	colorEndpointIndex  uint16
	alpha0EndpointIndex uint16
	alpha1EndpointIndex uint16
}

// Unpacker owns the decoded palettes, the pre-installed stream models,
// and the reusable row buffer. It borrows the input bytes for its whole
// lifetime and never mutates them.
type Unpacker struct {
	hdr  *container.Header
	data []byte

	codec prefix.Codec

	referenceEncodingDM prefix.DataModel
	endpointDeltaDM     [2]prefix.DataModel // 0 = color, 1 = alpha
	selectorDeltaDM     [2]prefix.DataModel

	colorEndpoints []uint32
	colorSelectors []uint32
	alphaEndpoints []uint16
	alphaSelectors []uint16

	blockBuffer []blockState
}

// New decodes the Huffman tables and all four palettes from data, whose
// header has already been parsed.
func New(hdr *container.Header, data []byte) (*Unpacker, error) {
	u := &Unpacker{hdr: hdr, data: data}
	if err := u.initTables(); err != nil {
		return nil, err
	}
	if err := u.decodePalettes(); err != nil {
		return nil, err
	}
	if err := u.checkModels(); err != nil {
		return nil, err
	}
	return u, nil
}

// checkModels bounds every stream model against its palette. A delta is
// always smaller than the palette it walks and a selector symbol is an
// absolute palette index, so a model with a larger alphabet can only
// come from a corrupt or hostile file; rejecting it here keeps the
// single-subtraction wraparound in the block walkers exact.
func (u *Unpacker) checkModels() error {
	check := func(m *prefix.DataModel, num uint32) error {
		if m.Valid() && m.TotalSyms() > num {
			return prefix.ErrCorrupt
		}
		return nil
	}
	if u.hdr.ColorEndpoints.Num != 0 {
		if err := check(&u.endpointDeltaDM[0], uint32(len(u.colorEndpoints))); err != nil {
			return err
		}
		if err := check(&u.selectorDeltaDM[0], u.hdr.ColorSelectors.Num); err != nil {
			return err
		}
	}
	if u.hdr.AlphaEndpoints.Num != 0 {
		if err := check(&u.endpointDeltaDM[1], uint32(len(u.alphaEndpoints))); err != nil {
			return err
		}
		if err := check(&u.selectorDeltaDM[1], u.hdr.AlphaSelectors.Num); err != nil {
			return err
		}
	}
	return nil
}

// Header returns the parsed container header the Unpacker was built
// from.
func (u *Unpacker) Header() *container.Header { return u.hdr }

// Data returns the borrowed input bytes.
func (u *Unpacker) Data() []byte { return u.data }

func (u *Unpacker) section(ofs, size uint32) ([]byte, error) {
	if uint64(ofs)+uint64(size) > uint64(len(u.data)) {
		return nil, ErrArgument
	}
	return u.data[ofs : ofs+size], nil
}

// initTables decodes the three block-stream models from the tables
// blob. Formats without a color or alpha plane leave the corresponding
// models empty.
func (u *Unpacker) initTables() error {
	sec, err := u.section(u.hdr.TablesOfs, u.hdr.TablesSize)
	if err != nil {
		return err
	}
	if err := u.codec.Start(sec); err != nil {
		return err
	}

	if err := u.codec.ReceiveDataModel(&u.referenceEncodingDM); err != nil {
		return err
	}

	if u.hdr.ColorEndpoints.Num == 0 && u.hdr.AlphaEndpoints.Num == 0 {
		return prefix.ErrCorrupt
	}

	if u.hdr.ColorEndpoints.Num != 0 {
		if err := u.codec.ReceiveDataModel(&u.endpointDeltaDM[0]); err != nil {
			return err
		}
		if err := u.codec.ReceiveDataModel(&u.selectorDeltaDM[0]); err != nil {
			return err
		}
	}
	if u.hdr.AlphaEndpoints.Num != 0 {
		if err := u.codec.ReceiveDataModel(&u.endpointDeltaDM[1]); err != nil {
			return err
		}
		if err := u.codec.ReceiveDataModel(&u.selectorDeltaDM[1]); err != nil {
			return err
		}
	}

	if _, err := u.codec.Stop(); err != nil {
		return err
	}
	return nil
}

func (u *Unpacker) decodePalettes() error {
	if u.hdr.ColorEndpoints.Num != 0 {
		if err := u.decodeColorEndpoints(); err != nil {
			return err
		}
		if err := u.decodeColorSelectors(); err != nil {
			return err
		}
	}
	if u.hdr.AlphaEndpoints.Num != 0 {
		if err := u.decodeAlphaEndpoints(); err != nil {
			return err
		}
		var err error
		switch u.hdr.Format {
		case container.FormatETC2AS:
			err = u.decodeAlphaSelectorsETC2AS()
		case container.FormatETC2A:
			err = u.decodeAlphaSelectorsETC2A()
		default:
			err = u.decodeAlphaSelectors()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// UnpackLevel transcodes one mip level. src is the level's compressed
// stream, dst holds one destination buffer per face, and rowPitch is the
// byte stride between block rows (0 selects the minimal pitch). For
// ETC1S conversions the caller must pass the output block pitch in
// 32-bit words; other formats ignore it.
func (u *Unpacker) UnpackLevel(src []byte, dst [][]byte, rowPitch uint32, level uint32, output OutputFormat, blockPitchInDwords uint32) error {
	if level >= u.hdr.Levels || uint32(len(dst)) < u.hdr.Faces {
		return ErrArgument
	}
	if output != OutputUnchanged && u.hdr.Format != container.FormatETC1S {
		return ErrUnsupported
	}

	width := max32(u.hdr.Width>>level, 1)
	height := max32(u.hdr.Height>>level, 1)
	blocksX := (width + 3) >> 2
	blocksY := (height + 3) >> 2

	blockSize := u.hdr.Format.BytesPerBlock()
	if u.hdr.Format == container.FormatETC1S && output != OutputUnchanged {
		if blockPitchInDwords == 0 {
			return ErrArgument
		}
		blockSize = blockPitchInDwords * 4
	}

	minimalRowPitch := blockSize * blocksX
	if rowPitch == 0 {
		rowPitch = minimalRowPitch
	} else if rowPitch < minimalRowPitch || rowPitch&3 != 0 {
		return ErrArgument
	}
	for f := uint32(0); f < u.hdr.Faces; f++ {
		if uint64(len(dst[f])) < uint64(rowPitch)*uint64(blocksY) {
			return ErrArgument
		}
	}

	if err := u.codec.Start(src); err != nil {
		return err
	}

	g := geometry{
		blocksX:   blocksX,
		blocksY:   blocksY,
		rowPitch:  rowPitch,
		blockSize: blockSize,
	}

	var err error
	switch u.hdr.Format {
	case container.FormatDXT1, container.FormatETC1S:
		err = u.unpackDXT1OrETC1S(dst, g, output)
	case container.FormatDXT5, container.FormatDXT5CCxY, container.FormatDXT5xGxR,
		container.FormatDXT5xGBR, container.FormatDXT5AGBR, container.FormatETC2AS:
		err = u.unpackDXT5(dst, g)
	case container.FormatDXT5A:
		err = u.unpackDXT5A(dst, g)
	case container.FormatDXNXY, container.FormatDXNYX:
		err = u.unpackDXN(dst, g)
	case container.FormatETC1, container.FormatETC2:
		err = u.unpackETC1(dst, g)
	case container.FormatETC2A:
		err = u.unpackETC2A(dst, g)
	default:
		return ErrUnsupported
	}
	if err != nil {
		return err
	}

	if _, err := u.codec.Stop(); err != nil {
		return err
	}
	return nil
}

// geometry carries one level's block walk parameters. The walk covers
// the even-padded grid; only blocks inside blocksX x blocksY are
// written.
type geometry struct {
	blocksX, blocksY uint32
	rowPitch         uint32
	blockSize        uint32
}

func (g geometry) paddedX() uint32 { return (g.blocksX + 1) &^ 1 }
func (g geometry) paddedY() uint32 { return (g.blocksY + 1) &^ 1 }

// growBlockBuffer ensures the row buffer holds at least n columns,
// reusing the allocation across levels.
func (u *Unpacker) growBlockBuffer(n uint32) []blockState {
	if uint32(len(u.blockBuffer)) < n {
		u.blockBuffer = make([]blockState, n)
	}
	return u.blockBuffer
}

func putWord(dst []byte, ofs uint32, w uint32) {
	dst[ofs] = byte(w)
	dst[ofs+1] = byte(w >> 8)
	dst[ofs+2] = byte(w >> 16)
	dst[ofs+3] = byte(w >> 24)
}

func max32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
