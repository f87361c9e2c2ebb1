package prefix

import (
	"errors"

	"github.com/gputex/crn/internal/bitio"
)

// Code-length meta-alphabet. Symbols 0..16 are literal code lengths; the
// remaining four are run codes.
const (
	maxCodelengthCodes = 21

	smallZeroRunCode = 17
	largeZeroRunCode = 18
	smallRepeatCode  = 19
	largeRepeatCode  = 20

	minSmallZeroRunSize = 3
	minLargeZeroRunSize = 11
	minSmallRepeatSize  = 3
	minLargeRepeatSize  = 7

	smallZeroRunExtraBits = 3
	largeZeroRunExtraBits = 7
	smallRepeatExtraBits  = 2
	largeRepeatExtraBits  = 6
)

// mostProbableCodelengthCodes orders the meta-alphabet by expected
// frequency; the stream sends code sizes for a prefix of this list.
var mostProbableCodelengthCodes = [maxCodelengthCodes]uint8{
	smallZeroRunCode, largeZeroRunCode,
	smallRepeatCode, largeRepeatCode,
	0, 8,
	7, 9,
	6, 10,
	5, 11,
	4, 12,
	3, 13,
	2, 14,
	1, 15,
	16,
}

var ErrEmptyStream = errors.New("prefix: empty stream")

// Codec decodes bit fields and Huffman symbols from one compressed
// stream section. A single Codec is reused across sections by calling
// Start again.
type Codec struct {
	br bitio.Reader

	// scratch for ReceiveDataModel
	clModel    DataModel
	clCodeSize [maxCodelengthCodes]uint8
	sizes      []uint8
}

// Start begins decoding the given section.
func (c *Codec) Start(data []byte) error {
	if len(data) == 0 {
		return ErrEmptyStream
	}
	c.br.Reset(data)
	return nil
}

// Stop ends decoding and reports the number of source bytes consumed.
// It returns ErrCorrupt if decoding ran past the end of the section:
// the zero fill past EOF keeps the bit reader safe, but a stream that
// needed those bits was truncated.
func (c *Codec) Stop() (int, error) {
	if c.br.Overrun() {
		return c.br.BytesConsumed(), ErrCorrupt
	}
	return c.br.BytesConsumed(), nil
}

// DecodeBits reads a raw n-bit field.
func (c *Codec) DecodeBits(n uint32) uint32 { return c.br.ReadBits(n) }

// Decode reads one Huffman symbol through the model's tables.
func (c *Codec) Decode(m *DataModel) (uint32, error) {
	t := m.tables
	if t == nil {
		return 0, ErrCorrupt
	}

	c.br.Refill()
	window := c.br.Window()

	// The +1 preserves "strictly greater" semantics against the
	// saturated maxCodes sentinels.
	k := window>>16 + 1

	var sym, length uint32
	if k <= t.tableMaxCode {
		entry := t.lookup[window>>t.tableShift]
		if entry == lookupVacant {
			return 0, ErrCorrupt
		}
		sym = entry & 0xFFFF
		length = entry >> 16
	} else {
		length = t.decodeStartCodeSize
		for k > t.maxCodes[length-1] {
			length++
		}
		valPtr := t.valPtrs[length-1] + int32(window>>(32-length))
		if valPtr < 0 || uint32(valPtr) >= m.TotalSyms() {
			return 0, ErrCorrupt
		}
		sym = uint32(t.sortedSymbolOrder[valPtr])
	}

	c.br.Advance(length)
	return sym, nil
}

// ReceiveDataModel reads an entropy-coded code-length vector from the
// stream and prepares m from it. The vector itself is Huffman coded with
// a 21-symbol meta-alphabet carrying literal lengths, zero runs, and
// repeat runs.
func (c *Codec) ReceiveDataModel(m *DataModel) error {
	totalUsedSyms := c.DecodeBits(totalBits(MaxSupportedSyms))
	if totalUsedSyms == 0 {
		m.Clear()
		return nil
	}
	if totalUsedSyms > MaxSupportedSyms {
		return ErrCorrupt
	}

	if cap(c.sizes) < int(totalUsedSyms) {
		c.sizes = make([]uint8, totalUsedSyms)
	}
	sizes := c.sizes[:totalUsedSyms]
	for i := range sizes {
		sizes[i] = 0
	}

	numCodelengthCodes := c.DecodeBits(5)
	if numCodelengthCodes < 1 || numCodelengthCodes > maxCodelengthCodes {
		return ErrCorrupt
	}

	for i := range c.clCodeSize {
		c.clCodeSize[i] = 0
	}
	for i := uint32(0); i < numCodelengthCodes; i++ {
		c.clCodeSize[mostProbableCodelengthCodes[i]] = uint8(c.DecodeBits(3))
	}
	if err := c.clModel.Init(c.clCodeSize[:]); err != nil {
		return err
	}

	ofs := uint32(0)
	for ofs < totalUsedSyms {
		numRemaining := totalUsedSyms - ofs

		code, err := c.Decode(&c.clModel)
		if err != nil {
			return err
		}
		switch {
		case code <= 16:
			sizes[ofs] = uint8(code)
			ofs++
		case code == smallZeroRunCode || code == largeZeroRunCode:
			var runLen uint32
			if code == smallZeroRunCode {
				runLen = c.DecodeBits(smallZeroRunExtraBits) + minSmallZeroRunSize
			} else {
				runLen = c.DecodeBits(largeZeroRunExtraBits) + minLargeZeroRunSize
			}
			if runLen > numRemaining {
				return ErrCorrupt
			}
			ofs += runLen
		case code == smallRepeatCode || code == largeRepeatCode:
			var runLen uint32
			if code == smallRepeatCode {
				runLen = c.DecodeBits(smallRepeatExtraBits) + minSmallRepeatSize
			} else {
				runLen = c.DecodeBits(largeRepeatExtraBits) + minLargeRepeatSize
			}
			if ofs == 0 || runLen > numRemaining {
				return ErrCorrupt
			}
			prev := sizes[ofs-1]
			if prev == 0 {
				return ErrCorrupt
			}
			for end := ofs + runLen; ofs < end; ofs++ {
				sizes[ofs] = prev
			}
		default:
			return ErrCorrupt
		}
	}

	return m.Init(sizes)
}

// totalBits returns the number of bits needed to represent v.
func totalBits(v uint32) uint32 {
	l := uint32(0)
	for v > 0 {
		v >>= 1
		l++
	}
	return l
}
