// Package etc provides the ETC1/ETC2 block bit layout and the ETC1S to
// DXT1/DXT5A block conversions.
package etc

// Block is one 8-byte ETC block. Byte 0 holds the red base color
// fields, byte 3 the intensity tables and diff/flip bits, and bytes 4-7
// the two 16-bit selector planes (MSB plane first).
type Block [8]uint8

// FromWords assembles a block from the two little-endian 32-bit words
// produced by the palette streams (endpoint word, then selector word).
func FromWords(endpoints, selectors uint32) Block {
	return Block{
		uint8(endpoints), uint8(endpoints >> 8), uint8(endpoints >> 16), uint8(endpoints >> 24),
		uint8(selectors), uint8(selectors >> 8), uint8(selectors >> 16), uint8(selectors >> 24),
	}
}

// BaseColor5 returns the 5-bit base color of subblock 0.
func (b *Block) BaseColor5() (r, g, bl uint32) {
	return uint32(b[0] >> 3), uint32(b[1] >> 3), uint32(b[2] >> 3)
}

// IntenTable returns the intensity table index (0-7) of the given
// subblock.
func (b *Block) IntenTable(subblock uint32) uint32 {
	ofs := uint32(5)
	if subblock != 0 {
		ofs = 2
	}
	return uint32(b[3]>>ofs) & 7
}

// RawSelector returns the native 2-bit selector at (x, y); this is not
// an intensity ramp index (see etc1ToLinearSelector).
func (b *Block) RawSelector(x, y uint32) uint32 {
	bitIndex := x*4 + y
	byteBitOfs := bitIndex & 7
	p := 7 - bitIndex>>3
	lsb := uint32(b[p]>>byteBitOfs) & 1
	msb := uint32(b[p-2]>>byteBitOfs) & 1
	return lsb | msb<<1
}

// intenTables holds the eight ETC intensity modifier rows applied to an
// expanded base color, indexed by ramp position.
var intenTables = [8][4]int32{
	{-8, -2, 2, 8},
	{-17, -5, 5, 17},
	{-29, -9, 9, 29},
	{-42, -13, 13, 42},
	{-60, -18, 18, 60},
	{-80, -24, 24, 80},
	{-106, -33, 33, 106},
	{-183, -47, 47, 183},
}

// etc1ToLinearSelector converts a native selector value into its
// position on the intensity ramp; linearToETC1Selector is the inverse.
var (
	etc1ToLinearSelector = [4]uint8{2, 3, 1, 0}
	linearToETC1Selector = [4]uint8{3, 2, 0, 1}
)

func clamp255(x int32) uint32 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint32(x)
}

func expand5(v uint32) int32 { return int32(v<<3 | v>>2) }

// BlockColors5 expands a 5-bit base color through one intensity table
// into the four ramp colors, each returned as r|g<<8|b<<16.
func BlockColors5(r, g, b, inten uint32) [4][3]uint32 {
	er, eg, eb := expand5(r), expand5(g), expand5(b)
	row := &intenTables[inten]

	var colors [4][3]uint32
	for i, y := range row {
		colors[i] = [3]uint32{clamp255(er + y), clamp255(eg + y), clamp255(eb + y)}
	}
	return colors
}
