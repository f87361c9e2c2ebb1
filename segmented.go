package crn

import (
	"encoding/binary"
	"fmt"

	"github.com/gputex/crn/internal/container"
)

// SegmentedFileSize returns the size of the base file that
// CreateSegmentedFile would produce: the header plus every palette and
// tables blob, with all per-level streams stripped.
func SegmentedFileSize(data []byte) (uint32, error) {
	h, err := container.ParseHeader(data)
	if err != nil {
		return 0, fmt.Errorf("crn: parsing header: %w", err)
	}
	size := h.HeaderSize
	for _, p := range []container.Palette{h.ColorEndpoints, h.ColorSelectors, h.AlphaEndpoints, h.AlphaSelectors} {
		if end := p.Ofs + p.Size; end > size {
			size = end
		}
	}
	if end := h.TablesOfs + h.TablesSize; end > size {
		size = end
	}
	return size, nil
}

// CreateSegmentedFile copies the header, palettes, and tables of data
// into a trimmed base file, marks it segmented, and recomputes both
// CRCs. The result validates on its own; unpacking it requires the
// per-level streams to be supplied through UnpackLevelSegmented.
func CreateSegmentedFile(data []byte) ([]byte, error) {
	h, err := container.ParseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("crn: parsing header: %w", err)
	}
	if h.Flags&container.FlagSegmented != 0 {
		return nil, errSegmented
	}

	baseSize, err := SegmentedFileSize(data)
	if err != nil {
		return nil, err
	}
	if uint64(baseSize) > uint64(len(data)) {
		return nil, ErrMalformedHeader
	}

	base := make([]byte, baseSize)
	copy(base, data[:baseSize])

	// Patch flags, data size, and both checksums in place. The header
	// CRC covers everything from the data-size field to the end of the
	// header; the data CRC covers the remaining payload.
	flags := uint16(h.Flags) | container.FlagSegmented
	binary.BigEndian.PutUint16(base[19:21], flags)
	binary.BigEndian.PutUint32(base[6:10], baseSize)

	dataCRC := container.Checksum(base[h.HeaderSize:baseSize])
	binary.BigEndian.PutUint16(base[10:12], dataCRC)

	headerCRC := container.Checksum(base[6:h.HeaderSize])
	binary.BigEndian.PutUint16(base[4:6], headerCRC)

	return base, nil
}
