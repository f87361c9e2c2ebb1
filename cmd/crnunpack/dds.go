package main

import (
	"encoding/binary"

	"github.com/gputex/crn"
)

// DDS header constants.
const (
	ddsMagic      = 0x20534444 // "DDS "
	ddsHeaderSize = 124

	ddsFlagsCaps        = 0x1
	ddsFlagsHeight      = 0x2
	ddsFlagsWidth       = 0x4
	ddsFlagsPixelFormat = 0x1000
	ddsFlagsMipMapCount = 0x20000
	ddsFlagsLinearSize  = 0x80000

	ddsSurfaceTexture = 0x1000
	ddsSurfaceMipMap  = 0x400000

	ddsPixelFormatSize = 32
	ddsFourCC          = 0x4
)

// ddsHeader builds a legacy FourCC DDS header for a block-compressed
// payload of the given top-level dimensions and mip count.
func ddsHeader(width, height, mipLevels uint32, format crn.Format) []byte {
	header := make([]byte, 4+ddsHeaderSize)

	binary.LittleEndian.PutUint32(header[0:4], ddsMagic)
	binary.LittleEndian.PutUint32(header[4:8], ddsHeaderSize)

	flags := uint32(ddsFlagsCaps | ddsFlagsHeight | ddsFlagsWidth | ddsFlagsPixelFormat | ddsFlagsLinearSize)
	if mipLevels > 1 {
		flags |= ddsFlagsMipMapCount
	}
	binary.LittleEndian.PutUint32(header[8:12], flags)

	binary.LittleEndian.PutUint32(header[12:16], height)
	binary.LittleEndian.PutUint32(header[16:20], width)

	blocksX := (width + 3) / 4
	blocksY := (height + 3) / 4
	binary.LittleEndian.PutUint32(header[20:24], blocksX*blocksY*format.BytesPerBlock())

	// depth unused
	binary.LittleEndian.PutUint32(header[28:32], mipLevels)
	// reserved1[11]

	pf := header[4+72:]
	binary.LittleEndian.PutUint32(pf[0:4], ddsPixelFormatSize)
	binary.LittleEndian.PutUint32(pf[4:8], ddsFourCC)
	binary.LittleEndian.PutUint32(pf[8:12], format.Fundamental().FourCC())

	caps := uint32(ddsSurfaceTexture)
	if mipLevels > 1 {
		caps |= ddsSurfaceMipMap
	}
	binary.LittleEndian.PutUint32(header[4+104:], caps)

	return header
}
