// Package container parses and validates the crunched-texture file
// header: magic, CRCs, texture attributes, palette and tables
// descriptors, and the per-level stream directory.
package container

import (
	"encoding/binary"
	"errors"
)

// Wire layout constants. All multi-byte fields are big-endian.
const (
	// SigValue is the 16-bit magic at offset 0 ("CR").
	SigValue = 0x4352

	// FlagSegmented marks a base file whose per-level streams have been
	// stripped and are supplied separately at decode time.
	FlagSegmented = 1

	// MaxLevelResolution bounds width and height.
	MaxLevelResolution = 4096

	// MaxLevels bounds the mip chain length.
	MaxLevels = 16

	// fixedHeaderSize is the byte size of the header up to (and
	// excluding) the level offset table.
	fixedHeaderSize = 72

	// HeaderMinSize is the smallest possible header (one level).
	HeaderMinSize = fixedHeaderSize + 4

	// crcStartOfs is the offset of dataSize: the header CRC covers
	// everything from here through the end of the header.
	crcStartOfs = 6
)

var (
	ErrBadHeader   = errors.New("container: malformed header")
	ErrBadChecksum = errors.New("container: checksum mismatch")
	ErrBadFormat   = errors.New("container: unknown format")
)

// Palette locates one shared palette inside the file.
type Palette struct {
	Ofs  uint32 // file offset of the compressed palette stream
	Size uint32 // stream size in bytes
	Num  uint32 // number of palette entries
}

// Header is the parsed fixed-layout container header.
type Header struct {
	HeaderSize uint32
	HeaderCRC  uint16
	DataSize   uint32
	DataCRC    uint16

	Width  uint32
	Height uint32
	Levels uint32
	Faces  uint32
	Format Format
	Flags  uint32

	Userdata0 uint32
	Userdata1 uint32

	ColorEndpoints Palette
	ColorSelectors Palette
	AlphaEndpoints Palette
	AlphaSelectors Palette

	TablesOfs  uint32
	TablesSize uint32

	LevelOfs []uint32
}

func readU24(b []byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

func parsePalette(b []byte) Palette {
	return Palette{
		Ofs:  binary.BigEndian.Uint32(b[0:4]),
		Size: readU24(b[4:7]),
		Num:  uint32(binary.BigEndian.Uint16(b[7:9])),
	}
}

// ParseHeader reads the header from data. It checks the magic and the
// structural sizes but not the CRCs or field ranges; Validate does that.
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < HeaderMinSize {
		return nil, ErrBadHeader
	}
	if binary.BigEndian.Uint16(data[0:2]) != SigValue {
		return nil, ErrBadHeader
	}

	h := &Header{
		HeaderSize: uint32(binary.BigEndian.Uint16(data[2:4])),
		HeaderCRC:  binary.BigEndian.Uint16(data[4:6]),
		DataSize:   binary.BigEndian.Uint32(data[6:10]),
		DataCRC:    binary.BigEndian.Uint16(data[10:12]),
		Width:      uint32(binary.BigEndian.Uint16(data[12:14])),
		Height:     uint32(binary.BigEndian.Uint16(data[14:16])),
		Levels:     uint32(data[16]),
		Faces:      uint32(data[17]),
		Format:     Format(data[18]),
		Flags:      uint32(binary.BigEndian.Uint16(data[19:21])),
		Userdata0:  binary.BigEndian.Uint32(data[21:25]),
		Userdata1:  binary.BigEndian.Uint32(data[25:29]),

		ColorEndpoints: parsePalette(data[29:38]),
		ColorSelectors: parsePalette(data[38:47]),
		AlphaEndpoints: parsePalette(data[47:56]),
		AlphaSelectors: parsePalette(data[56:65]),

		TablesOfs:  binary.BigEndian.Uint32(data[65:69]),
		TablesSize: readU24(data[69:72]),
	}

	if h.Levels < 1 || h.Levels > MaxLevels {
		return nil, ErrBadHeader
	}
	if h.HeaderSize < fixedHeaderSize+4*h.Levels || uint64(h.HeaderSize) > uint64(len(data)) {
		return nil, ErrBadHeader
	}
	if uint64(h.DataSize) > uint64(len(data)) || h.DataSize < h.HeaderSize {
		return nil, ErrBadHeader
	}

	h.LevelOfs = make([]uint32, h.Levels)
	for i := range h.LevelOfs {
		h.LevelOfs[i] = binary.BigEndian.Uint32(data[fixedHeaderSize+4*i:])
	}

	return h, nil
}

// MaxMips returns the length of a full mip chain for the given
// dimensions.
func MaxMips(width, height uint32) uint32 {
	if width|height == 0 {
		return 0
	}
	numMips := uint32(1)
	for width > 1 || height > 1 {
		width >>= 1
		height >>= 1
		numMips++
	}
	return numMips
}

// Validate performs the full structural check of data: both CRCs, field
// ranges, and that every descriptor lies inside the declared data size.
func Validate(data []byte) (*Header, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	if Checksum(data[crcStartOfs:h.HeaderSize]) != h.HeaderCRC {
		return nil, ErrBadChecksum
	}
	if Checksum(data[h.HeaderSize:h.DataSize]) != h.DataCRC {
		return nil, ErrBadChecksum
	}

	if h.Faces != 1 && h.Faces != 6 {
		return nil, ErrBadHeader
	}
	if h.Width < 1 || h.Width > MaxLevelResolution {
		return nil, ErrBadHeader
	}
	if h.Height < 1 || h.Height > MaxLevelResolution {
		return nil, ErrBadHeader
	}
	if h.Levels > MaxMips(h.Width, h.Height) {
		return nil, ErrBadHeader
	}
	if !h.Format.Valid() {
		return nil, ErrBadFormat
	}

	for _, p := range []Palette{h.ColorEndpoints, h.ColorSelectors, h.AlphaEndpoints, h.AlphaSelectors} {
		if uint64(p.Ofs)+uint64(p.Size) > uint64(h.DataSize) {
			return nil, ErrBadHeader
		}
	}
	if uint64(h.TablesOfs)+uint64(h.TablesSize) > uint64(h.DataSize) {
		return nil, ErrBadHeader
	}

	if h.Flags&FlagSegmented == 0 {
		for i, ofs := range h.LevelOfs {
			if ofs < h.HeaderSize || ofs >= h.DataSize {
				return nil, ErrBadHeader
			}
			if i > 0 && ofs <= h.LevelOfs[i-1] {
				return nil, ErrBadHeader
			}
		}
	}

	return h, nil
}

// LevelDataSize returns the compressed byte size of one level's stream,
// assuming levels are packed sequentially up to DataSize.
func (h *Header) LevelDataSize(level uint32) uint32 {
	nextOfs := h.DataSize
	if level+1 < h.Levels {
		nextOfs = h.LevelOfs[level+1]
	}
	return nextOfs - h.LevelOfs[level]
}
