// Package crntest fabricates container test vectors: a bit writer, a
// canonical-code emitter mirroring the decoder's code assignment, and a
// file builder that assembles complete containers from palette values
// and per-block indices. It exists only to seed tests; it is not an
// encoder.
package crntest

// BitWriter emits MSB-first bit fields, the mirror image of the
// decoder's bit reader.
type BitWriter struct {
	out      []byte
	bitBuf   uint32
	bitCount uint32
}

// WriteBits appends the low n bits of v, most significant first. Fields
// wider than 16 bits are split exactly like the reader splits them.
func (w *BitWriter) WriteBits(v, n uint32) {
	if n == 0 {
		return
	}
	if n > 16 {
		w.writeSmall(v>>16, n-16)
		w.writeSmall(v&0xFFFF, 16)
		return
	}
	w.writeSmall(v&(1<<n-1), n)
}

func (w *BitWriter) writeSmall(v, n uint32) {
	w.bitBuf = w.bitBuf<<n | v
	w.bitCount += n
	for w.bitCount >= 8 {
		w.out = append(w.out, byte(w.bitBuf>>(w.bitCount-8)))
		w.bitCount -= 8
	}
}

// Bytes flushes any pending bits (zero padded) and returns the stream.
func (w *BitWriter) Bytes() []byte {
	if w.bitCount > 0 {
		w.out = append(w.out, byte(w.bitBuf<<(8-w.bitCount)))
		w.bitBuf = 0
		w.bitCount = 0
	}
	return w.out
}

// CanonicalCodes assigns canonical code values from a code-size vector:
// codes increase with size, and within a size follow symbol order.
func CanonicalCodes(sizes []uint8) []uint32 {
	var numCodes [17]uint32
	for _, s := range sizes {
		if s != 0 {
			numCodes[s]++
		}
	}
	var nextCode [17]uint32
	cur := uint32(0)
	for i := 1; i <= 16; i++ {
		nextCode[i] = cur
		cur = (cur + numCodes[i]) << 1
	}
	codes := make([]uint32, len(sizes))
	for sym, s := range sizes {
		if s != 0 {
			codes[sym] = nextCode[s]
			nextCode[s]++
		}
	}
	return codes
}

// Model is a symbol alphabet prepared for writing: code sizes plus the
// matching canonical code values.
type Model struct {
	sizes []uint8
	codes []uint32
}

// NewModel builds the smallest flat-code model able to emit every
// symbol in syms. All used symbols share one code size.
func NewModel(syms []uint32) *Model {
	maxSym := uint32(0)
	used := map[uint32]bool{}
	for _, s := range syms {
		used[s] = true
		if s > maxSym {
			maxSym = s
		}
	}
	size := uint8(1)
	for 1<<size < len(used) {
		size++
	}
	sizes := make([]uint8, maxSym+1)
	for s := range used {
		sizes[s] = size
	}
	return &Model{sizes: sizes, codes: CanonicalCodes(sizes)}
}

// Encode writes one symbol.
func (m *Model) Encode(w *BitWriter, sym uint32) {
	w.WriteBits(m.codes[sym], uint32(m.sizes[sym]))
}

// metaPermutation matches the decoder's most-probable-first ordering of
// the 21-symbol code-length alphabet.
var metaPermutation = [21]uint8{
	17, 18, 19, 20,
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

// Write emits the data model the way the decoder receives one: the
// used-symbol count, all 21 meta code sizes in permutation order, then
// every code length as a literal meta symbol.
func (m *Model) Write(w *BitWriter) {
	w.WriteBits(uint32(len(m.sizes)), 14)

	metaSyms := make([]uint32, len(m.sizes))
	for i, s := range m.sizes {
		metaSyms[i] = uint32(s)
	}
	meta := NewModel(metaSyms)

	metaSizes := make([]uint8, 21)
	copy(metaSizes, meta.sizes)
	w.WriteBits(21, 5)
	for _, sym := range metaPermutation {
		w.WriteBits(uint32(metaSizes[sym]), 3)
	}
	for _, s := range m.sizes {
		meta.Encode(w, uint32(s))
	}
}
