package bitio

import "testing"

func TestReadBits_MSBFirst(t *testing.T) {
	// 0xA5 = 1010 0101, 0x3C = 0011 1100
	var r Reader
	r.Reset([]byte{0xA5, 0x3C})

	if got := r.ReadBits(1); got != 1 {
		t.Fatalf("bit 0 = %d, want 1", got)
	}
	if got := r.ReadBits(3); got != 0b010 {
		t.Fatalf("bits 1-3 = %#b, want 010", got)
	}
	if got := r.ReadBits(4); got != 0b0101 {
		t.Fatalf("bits 4-7 = %#b, want 0101", got)
	}
	if got := r.ReadBits(8); got != 0x3C {
		t.Fatalf("second byte = %#x, want 0x3c", got)
	}
}

func TestReadBits_WideAndZero(t *testing.T) {
	var r Reader
	r.Reset([]byte{0x12, 0x34, 0x56, 0x78, 0x9A})

	if got := r.ReadBits(0); got != 0 {
		t.Fatalf("ReadBits(0) = %d, want 0", got)
	}
	if got := r.ReadBits(32); got != 0x12345678 {
		t.Fatalf("ReadBits(32) = %#x, want 0x12345678", got)
	}
	if got := r.ReadBits(8); got != 0x9A {
		t.Fatalf("trailing byte = %#x, want 0x9a", got)
	}
}

func TestReadBits_ZeroFillPastEOF(t *testing.T) {
	var r Reader
	r.Reset([]byte{0xFF})

	if got := r.ReadBits(4); got != 0xF {
		t.Fatalf("first nibble = %#x, want 0xf", got)
	}
	// 4 real bits remain; the rest must be zero fill.
	if got := r.ReadBits(12); got != 0xF00 {
		t.Fatalf("cross-EOF read = %#x, want 0xf00", got)
	}
	if got := r.ReadBits(16); got != 0 {
		t.Fatalf("past-EOF read = %#x, want 0", got)
	}
	if !r.Overrun() {
		t.Fatal("Overrun() = false after reading past EOF")
	}
}

func TestOverrun_CleanStream(t *testing.T) {
	var r Reader
	r.Reset([]byte{0xAB, 0xCD})
	r.ReadBits(16)
	if r.Overrun() {
		t.Fatal("Overrun() = true for exact-length read")
	}
}

func TestWindowRefillAdvance(t *testing.T) {
	var r Reader
	r.Reset([]byte{0x80, 0x00, 0x01})

	r.Refill()
	if top := r.Window() >> 31; top != 1 {
		t.Fatalf("top bit = %d, want 1", top)
	}
	r.Advance(1)
	r.Refill()
	// Remaining stream: 000 0000 0000 0000 0000 0001 left-justified.
	if got := r.Window() >> (32 - 23); got != 1 {
		t.Fatalf("next 23 bits = %#x, want 1", got)
	}
}

func TestBytesConsumed(t *testing.T) {
	var r Reader
	r.Reset([]byte{1, 2, 3, 4})
	r.ReadBits(8)
	if got := r.BytesConsumed(); got < 1 || got > 4 {
		t.Fatalf("BytesConsumed() = %d, want within [1,4]", got)
	}
}
