// Package dxt provides the in-memory bit layout of S3TC blocks: RGB565
// endpoint packing, selector plane permutations, and the 3-bit alpha
// selector grid shared by DXT5, DXT5A, and DXN channels.
package dxt

// Selector permutations between the linear (ramp-ordered) domain used by
// the palette streams and the native block encodings. In a native DXT1
// block, selector 0 is color0, 1 is color1, and 2/3 are the
// interpolants, so the ramp order 0,1,2,3 maps to 0,2,3,1.
var (
	DXT1ToLinear   = [4]uint8{0, 3, 1, 2}
	DXT1FromLinear = [4]uint8{0, 2, 3, 1}

	DXT5ToLinear   = [8]uint8{0, 7, 1, 2, 3, 4, 5, 6}
	DXT5FromLinear = [8]uint8{0, 2, 3, 4, 5, 6, 7, 1}
)

// PackColor565 packs unscaled 5:6:5 components into an RGB565 word.
func PackColor565(r, g, b uint32) uint16 {
	return uint16(b | g<<5 | r<<11)
}

// PackEndpoints joins two RGB565 words into the 32-bit endpoint field of
// a DXT1 block (low endpoint in bits 0-15).
func PackEndpoints(lo, hi uint32) uint32 {
	return lo | hi<<16
}

// Block1 is an 8-byte DXT1 block: two RGB565 endpoints followed by four
// selector bytes, one row each, two bits per texel.
type Block1 struct {
	LowColor  [2]uint8
	HighColor [2]uint8
	Selectors [4]uint8
}

func (b *Block1) SetLowColor(c uint16) {
	b.LowColor[0] = uint8(c)
	b.LowColor[1] = uint8(c >> 8)
}

func (b *Block1) SetHighColor(c uint16) {
	b.HighColor[0] = uint8(c)
	b.HighColor[1] = uint8(c >> 8)
}

// Words returns the block as two little-endian 32-bit words ready for
// the output buffer.
func (b *Block1) Words() (uint32, uint32) {
	w0 := uint32(b.LowColor[0]) | uint32(b.LowColor[1])<<8 |
		uint32(b.HighColor[0])<<16 | uint32(b.HighColor[1])<<24
	w1 := uint32(b.Selectors[0]) | uint32(b.Selectors[1])<<8 |
		uint32(b.Selectors[2])<<16 | uint32(b.Selectors[3])<<24
	return w0, w1
}

// Block5A is an 8-byte DXT5-style alpha block: two 8-bit endpoints and a
// 48-bit little-endian grid of 3-bit selectors in raster order.
type Block5A struct {
	Endpoints [2]uint8
	Selectors [6]uint8
}

func (b *Block5A) SetLowAlpha(v uint32)  { b.Endpoints[0] = uint8(v) }
func (b *Block5A) SetHighAlpha(v uint32) { b.Endpoints[1] = uint8(v) }

// SetSelector stores the 3-bit selector for texel (x, y).
func (b *Block5A) SetSelector(x, y, val uint32) {
	bitIndex := (y*4 + x) * 3
	byteIndex := bitIndex >> 3
	bitOfs := bitIndex & 7

	v := uint32(b.Selectors[byteIndex])
	if byteIndex < 5 {
		v |= uint32(b.Selectors[byteIndex+1]) << 8
	}
	v &= ^(7 << bitOfs)
	v |= val << bitOfs

	b.Selectors[byteIndex] = uint8(v)
	if byteIndex < 5 {
		b.Selectors[byteIndex+1] = uint8(v >> 8)
	}
}

// Words returns the block as two little-endian 32-bit words.
func (b *Block5A) Words() (uint32, uint32) {
	w0 := uint32(b.Endpoints[0]) | uint32(b.Endpoints[1])<<8 |
		uint32(b.Selectors[0])<<16 | uint32(b.Selectors[1])<<24
	w1 := uint32(b.Selectors[2]) | uint32(b.Selectors[3])<<8 |
		uint32(b.Selectors[4])<<16 | uint32(b.Selectors[5])<<24
	return w0, w1
}
