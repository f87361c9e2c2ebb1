package prefix

import (
	"testing"

	"github.com/gputex/crn/internal/crntest"
)

// receive builds a model from a fabricated stream and returns the codec
// positioned after it.
func receive(t *testing.T, data []byte) (*Codec, *DataModel) {
	t.Helper()
	c := new(Codec)
	if err := c.Start(data); err != nil {
		t.Fatalf("Start: %v", err)
	}
	m := new(DataModel)
	if err := c.ReceiveDataModel(m); err != nil {
		t.Fatalf("ReceiveDataModel: %v", err)
	}
	return c, m
}

func TestModelRoundTrip(t *testing.T) {
	// Symbols with skewed frequencies over a gappy alphabet.
	syms := []uint32{0, 7, 7, 300, 0, 0, 41, 7, 300, 300, 300, 0, 41}

	enc := crntest.NewModel(syms)
	var w crntest.BitWriter
	enc.Write(&w)
	for _, s := range syms {
		enc.Encode(&w, s)
	}

	c, m := receive(t, w.Bytes())
	if m.TotalSyms() != 301 {
		t.Fatalf("TotalSyms = %d, want 301", m.TotalSyms())
	}
	for i, want := range syms {
		got, err := c.Decode(m)
		if err != nil {
			t.Fatalf("Decode #%d: %v", i, err)
		}
		if got != want {
			t.Fatalf("Decode #%d = %d, want %d", i, got, want)
		}
	}
	if _, err := c.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}

func TestModelRoundTrip_LargeAlphabet(t *testing.T) {
	// Every symbol of a 1024-entry alphabet once, exercising the direct
	// lookup table.
	syms := make([]uint32, 1024)
	for i := range syms {
		syms[i] = uint32(i)
	}

	enc := crntest.NewModel(syms)
	var w crntest.BitWriter
	enc.Write(&w)
	for _, s := range syms {
		enc.Encode(&w, s)
	}

	c, m := receive(t, w.Bytes())
	for _, want := range syms {
		got, err := c.Decode(m)
		if err != nil {
			t.Fatalf("Decode(%d): %v", want, err)
		}
		if got != want {
			t.Fatalf("Decode = %d, want %d", got, want)
		}
	}
}

func TestTailSearch(t *testing.T) {
	// 16 five-bit codes fill the 6-bit lookup table's range; four
	// eight-bit codes overflow it and must resolve through the
	// per-length search.
	sizes := make([]uint8, 20)
	for i := 0; i < 16; i++ {
		sizes[i] = 5
	}
	for i := 16; i < 20; i++ {
		sizes[i] = 8
	}
	var m DataModel
	if err := m.Init(sizes); err != nil {
		t.Fatalf("Init: %v", err)
	}

	codes := crntest.CanonicalCodes(sizes)
	var w crntest.BitWriter
	order := []uint32{3, 17, 0, 19, 16, 15, 18}
	for _, sym := range order {
		w.WriteBits(codes[sym], uint32(sizes[sym]))
	}

	c := new(Codec)
	if err := c.Start(w.Bytes()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for i, want := range order {
		got, err := c.Decode(&m)
		if err != nil {
			t.Fatalf("Decode #%d: %v", i, err)
		}
		if got != want {
			t.Fatalf("Decode #%d = %d, want %d", i, got, want)
		}
	}
}

func TestMaxLengthCodes(t *testing.T) {
	// Two symbols, both with 16-bit codes: 0x0000 and 0x0001.
	var m DataModel
	if err := m.Init([]uint8{16, 16}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	var w crntest.BitWriter
	w.WriteBits(0x0000, 16) // symbol 0
	w.WriteBits(0x0001, 16) // symbol 1
	w.WriteBits(0x0001, 16)

	c := new(Codec)
	if err := c.Start(w.Bytes()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for i, want := range []uint32{0, 1, 1} {
		got, err := c.Decode(&m)
		if err != nil {
			t.Fatalf("Decode #%d: %v", i, err)
		}
		if got != want {
			t.Fatalf("Decode #%d = %d, want %d", i, got, want)
		}
	}
}

// writeMetaHeader emits the receive preamble with 2-bit codes for meta
// symbols 8, 17, and 19 (canonically 00, 01, 10).
func writeMetaHeader(w *crntest.BitWriter, totalUsedSyms uint32) {
	w.WriteBits(totalUsedSyms, 14)
	w.WriteBits(21, 5)
	perm := [21]uint8{17, 18, 19, 20, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15, 16}
	for _, sym := range perm {
		switch sym {
		case 8, 17, 19:
			w.WriteBits(2, 3)
		default:
			w.WriteBits(0, 3)
		}
	}
}

func TestReceiveDataModel_RunCodes(t *testing.T) {
	var w crntest.BitWriter
	writeMetaHeader(&w, 20)

	w.WriteBits(0b00, 2) // literal length 8
	w.WriteBits(0b10, 2) // short repeat
	w.WriteBits(1, 2)    // run 3+1 = 4
	w.WriteBits(0b01, 2) // short zero run
	w.WriteBits(4, 3)    // run 3+4 = 7
	for i := 0; i < 8; i++ {
		w.WriteBits(0b00, 2) // literal length 8
	}

	_, m := receive(t, w.Bytes())
	if m.TotalSyms() != 20 {
		t.Fatalf("TotalSyms = %d, want 20", m.TotalSyms())
	}
	for i := uint32(0); i < 20; i++ {
		want := uint8(8)
		if i >= 5 && i < 12 {
			want = 0
		}
		if got := m.CodeSize(i); got != want {
			t.Fatalf("CodeSize(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestReceiveDataModel_RepeatWithoutPrevious(t *testing.T) {
	var w crntest.BitWriter
	writeMetaHeader(&w, 8)
	w.WriteBits(0b10, 2) // repeat as the very first code
	w.WriteBits(0, 2)

	c := new(Codec)
	if err := c.Start(w.Bytes()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := c.ReceiveDataModel(new(DataModel)); err == nil {
		t.Fatal("ReceiveDataModel accepted repeat with no previous length")
	}
}

func TestReceiveDataModel_RunOvershoot(t *testing.T) {
	var w crntest.BitWriter
	writeMetaHeader(&w, 4)
	w.WriteBits(0b01, 2) // zero run
	w.WriteBits(7, 3)    // run 3+7 = 10 > 4 remaining

	c := new(Codec)
	if err := c.Start(w.Bytes()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := c.ReceiveDataModel(new(DataModel)); err == nil {
		t.Fatal("ReceiveDataModel accepted an overlong run")
	}
}

func TestReceiveDataModel_Empty(t *testing.T) {
	var w crntest.BitWriter
	w.WriteBits(0, 14)

	c := new(Codec)
	if err := c.Start(w.Bytes()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	m := new(DataModel)
	if err := c.ReceiveDataModel(m); err != nil {
		t.Fatalf("ReceiveDataModel: %v", err)
	}
	if m.Valid() {
		t.Fatal("empty stream section produced a valid model")
	}
}

func TestDataModelInit_Errors(t *testing.T) {
	var m DataModel
	if err := m.Init(nil); err == nil {
		t.Error("Init(nil) succeeded")
	}
	if err := m.Init([]uint8{17}); err == nil {
		t.Error("Init with code length 17 succeeded")
	}
	if err := m.Init([]uint8{0, 0, 0}); err == nil {
		t.Error("Init with all-zero lengths succeeded")
	}
	// Oversubscribed code space: three 1-bit codes.
	if err := m.Init([]uint8{1, 1, 1}); err == nil {
		t.Error("Init with oversubscribed lengths succeeded")
	}
}

func TestDecode_EmptyModel(t *testing.T) {
	c := new(Codec)
	if err := c.Start([]byte{0}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := c.Decode(new(DataModel)); err == nil {
		t.Fatal("Decode through an empty model succeeded")
	}
}

func TestStart_EmptyStream(t *testing.T) {
	c := new(Codec)
	if err := c.Start(nil); err == nil {
		t.Fatal("Start(nil) succeeded")
	}
}
