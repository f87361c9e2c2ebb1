package crn

import (
	"errors"
	"fmt"

	"github.com/gputex/crn/internal/container"
	"github.com/gputex/crn/internal/transcode"
)

// Format identifies a container's block-compressed layout.
type Format = container.Format

const (
	FormatDXT1 = container.FormatDXT1
	FormatDXT3 = container.FormatDXT3
	FormatDXT5 = container.FormatDXT5

	FormatDXT5CCxY = container.FormatDXT5CCxY
	FormatDXT5xGxR = container.FormatDXT5xGxR
	FormatDXT5xGBR = container.FormatDXT5xGBR
	FormatDXT5AGBR = container.FormatDXT5AGBR

	FormatDXNXY = container.FormatDXNXY
	FormatDXNYX = container.FormatDXNYX
	FormatDXT5A = container.FormatDXT5A

	FormatETC1   = container.FormatETC1
	FormatETC2   = container.FormatETC2
	FormatETC2A  = container.FormatETC2A
	FormatETC1S  = container.FormatETC1S
	FormatETC2AS = container.FormatETC2AS
)

// TranscodeFormat selects the output encoding of UnpackLevel.
type TranscodeFormat = transcode.OutputFormat

const (
	// TranscodeUnchanged emits blocks in the container's own format.
	TranscodeUnchanged = transcode.OutputUnchanged
	// TranscodeDXT1 converts ETC1S blocks to DXT1.
	TranscodeDXT1 = transcode.OutputDXT1
	// TranscodeDXT5A converts ETC1S blocks to DXT5A.
	TranscodeDXT5A = transcode.OutputDXT5A
)

// Errors surfaced by the entry points. Structural failures inside the
// entropy layer and the container layer are wrapped; use errors.Is.
var (
	ErrMalformedHeader = container.ErrBadHeader
	ErrChecksum        = container.ErrBadChecksum
	ErrUnknownFormat   = container.ErrBadFormat
	ErrArgument        = transcode.ErrArgument
	ErrUnsupported     = transcode.ErrUnsupported

	errSegmented = errors.New("crn: file is already segmented")
)

// FileInfo summarizes a validated file.
type FileInfo struct {
	ActualDataSize   uint32
	HeaderSize       uint32
	TotalPaletteSize uint32
	TablesSize       uint32

	Levels              uint32
	LevelCompressedSize []uint32
	Segmented           bool

	ColorEndpointPaletteEntries uint32
	ColorSelectorPaletteEntries uint32
	AlphaEndpointPaletteEntries uint32
	AlphaSelectorPaletteEntries uint32
}

// Validate checks the magic, both CRCs, and every structural bound, and
// returns the file summary.
func Validate(data []byte) (*FileInfo, error) {
	h, err := container.Validate(data)
	if err != nil {
		return nil, fmt.Errorf("crn: validating file: %w", err)
	}

	info := &FileInfo{
		ActualDataSize: h.DataSize,
		HeaderSize:     h.HeaderSize,
		TotalPaletteSize: h.ColorEndpoints.Size + h.ColorSelectors.Size +
			h.AlphaEndpoints.Size + h.AlphaSelectors.Size,
		TablesSize: h.TablesSize,
		Levels:     h.Levels,

		ColorEndpointPaletteEntries: h.ColorEndpoints.Num,
		ColorSelectorPaletteEntries: h.ColorSelectors.Num,
		AlphaEndpointPaletteEntries: h.AlphaEndpoints.Num,
		AlphaSelectorPaletteEntries: h.AlphaSelectors.Num,
	}
	info.Segmented = h.Flags&container.FlagSegmented != 0
	if !info.Segmented {
		info.LevelCompressedSize = make([]uint32, h.Levels)
		for i := uint32(0); i < h.Levels; i++ {
			info.LevelCompressedSize[i] = h.LevelDataSize(i)
		}
	}
	return info, nil
}

// TextureInfo describes the logical texture held by a file.
type TextureInfo struct {
	Width         uint32
	Height        uint32
	Levels        uint32
	Faces         uint32
	Format        Format
	BytesPerBlock uint32
	Userdata0     uint32
	Userdata1     uint32
}

// GetTextureInfo parses the header (without checksumming the payload)
// and reports the texture attributes.
func GetTextureInfo(data []byte) (*TextureInfo, error) {
	h, err := container.ParseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("crn: parsing header: %w", err)
	}
	return &TextureInfo{
		Width:         h.Width,
		Height:        h.Height,
		Levels:        h.Levels,
		Faces:         h.Faces,
		Format:        h.Format,
		BytesPerBlock: h.Format.BytesPerBlock(),
		Userdata0:     h.Userdata0,
		Userdata1:     h.Userdata1,
	}, nil
}

// LevelInfo describes one mip level.
type LevelInfo struct {
	Width         uint32
	Height        uint32
	Faces         uint32
	BlocksX       uint32
	BlocksY       uint32
	BytesPerBlock uint32
	Format        Format
}

// GetLevelInfo reports the geometry of one mip level.
func GetLevelInfo(data []byte, level uint32) (*LevelInfo, error) {
	h, err := container.ParseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("crn: parsing header: %w", err)
	}
	if level >= h.Levels {
		return nil, ErrArgument
	}

	width := maxU32(h.Width>>level, 1)
	height := maxU32(h.Height>>level, 1)
	return &LevelInfo{
		Width:         width,
		Height:        height,
		Faces:         h.Faces,
		BlocksX:       (width + 3) >> 2,
		BlocksY:       (height + 3) >> 2,
		BytesPerBlock: h.Format.BytesPerBlock(),
		Format:        h.Format,
	}, nil
}

// LevelData locates one level's compressed stream inside data.
func LevelData(data []byte, level uint32) ([]byte, error) {
	h, err := container.ParseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("crn: parsing header: %w", err)
	}
	if level >= h.Levels || h.Flags&container.FlagSegmented != 0 {
		return nil, ErrArgument
	}
	ofs := h.LevelOfs[level]
	size := h.LevelDataSize(level)
	if uint64(ofs)+uint64(size) > uint64(len(data)) {
		return nil, ErrMalformedHeader
	}
	return data[ofs : ofs+size], nil
}

// Unpacker holds the decoded palettes and stream models of one file.
// It borrows data for its whole lifetime, is safe for any number of
// UnpackLevel calls in any order, and may be used by one goroutine at a
// time.
type Unpacker struct {
	u   *transcode.Unpacker
	hdr *container.Header
}

// Begin parses the header and decodes all four palettes and the stream
// models. It does not verify the CRCs; run Validate first when handling
// untrusted input.
func Begin(data []byte) (*Unpacker, error) {
	h, err := container.ParseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("crn: parsing header: %w", err)
	}
	if !h.Format.Valid() {
		return nil, ErrUnknownFormat
	}
	u, err := transcode.New(h, data)
	if err != nil {
		return nil, fmt.Errorf("crn: decoding palettes: %w", err)
	}
	return &Unpacker{u: u, hdr: h}, nil
}

// Data returns the borrowed file bytes.
func (p *Unpacker) Data() []byte { return p.u.Data() }

// UnpackLevel transcodes one mip level into dst, one buffer per face.
// rowPitch is the byte stride between block rows; 0 selects the minimal
// pitch, any other value must be a multiple of 4 and at least the
// minimum. blockPitchInDwords is required when converting ETC1S output
// (the output stride is not implied by the container format) and is
// ignored otherwise.
func (p *Unpacker) UnpackLevel(dst [][]byte, rowPitch, level uint32, output TranscodeFormat, blockPitchInDwords uint32) error {
	if p.hdr.Flags&container.FlagSegmented != 0 {
		return ErrArgument
	}
	if level >= p.hdr.Levels {
		return ErrArgument
	}
	ofs := p.hdr.LevelOfs[level]
	size := p.hdr.LevelDataSize(level)
	data := p.u.Data()
	if uint64(ofs)+uint64(size) > uint64(len(data)) {
		return ErrMalformedHeader
	}
	return p.unpack(data[ofs:ofs+size], dst, rowPitch, level, output, blockPitchInDwords)
}

// UnpackLevelSegmented is UnpackLevel for segmented files: the level's
// compressed stream is supplied by the caller instead of being located
// in the base file.
func (p *Unpacker) UnpackLevelSegmented(src []byte, dst [][]byte, rowPitch, level uint32, output TranscodeFormat, blockPitchInDwords uint32) error {
	if src == nil {
		return ErrArgument
	}
	return p.unpack(src, dst, rowPitch, level, output, blockPitchInDwords)
}

func (p *Unpacker) unpack(src []byte, dst [][]byte, rowPitch, level uint32, output TranscodeFormat, blockPitchInDwords uint32) error {
	if err := p.u.UnpackLevel(src, dst, rowPitch, level, output, blockPitchInDwords); err != nil {
		return fmt.Errorf("crn: unpacking level %d: %w", level, err)
	}
	return nil
}

// Close releases the Unpacker's owned state. The Unpacker must not be
// used afterwards.
func (p *Unpacker) Close() {
	p.u = nil
	p.hdr = nil
}

func maxU32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
