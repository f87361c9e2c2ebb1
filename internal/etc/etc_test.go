package etc

import (
	"testing"

	"github.com/gputex/crn/internal/dxt"
)

// makeETC1S builds an ETC1S-style block: one subblock, differential bit
// set, shared intensity table, and raw selectors given in (x, y) order.
func makeETC1S(r, g, b, inten uint32, rawSelectors *[16]uint32) Block {
	var blk Block
	blk[0] = uint8(r << 3)
	blk[1] = uint8(g << 3)
	blk[2] = uint8(b << 3)
	blk[3] = uint8(inten<<5 | inten<<2 | 2)
	if rawSelectors != nil {
		for x := uint32(0); x < 4; x++ {
			for y := uint32(0); y < 4; y++ {
				s := rawSelectors[x*4+y]
				bitIndex := x*4 + y
				p := 7 - bitIndex>>3
				blk[p] |= uint8(s&1) << (bitIndex & 7)
				blk[p-2] |= uint8(s>>1) << (bitIndex & 7)
			}
		}
	}
	return blk
}

func TestBlockAccessors(t *testing.T) {
	blk := makeETC1S(13, 27, 5, 6, nil)
	r, g, b := blk.BaseColor5()
	if r != 13 || g != 27 || b != 5 {
		t.Fatalf("BaseColor5 = (%d, %d, %d), want (13, 27, 5)", r, g, b)
	}
	if got := blk.IntenTable(0); got != 6 {
		t.Fatalf("IntenTable(0) = %d, want 6", got)
	}
	if got := blk.IntenTable(1); got != 6 {
		t.Fatalf("IntenTable(1) = %d, want 6", got)
	}

	var sel [16]uint32
	for i := range sel {
		sel[i] = uint32(i) & 3
	}
	blk = makeETC1S(0, 0, 0, 0, &sel)
	for x := uint32(0); x < 4; x++ {
		for y := uint32(0); y < 4; y++ {
			if got := blk.RawSelector(x, y); got != (x*4+y)&3 {
				t.Fatalf("RawSelector(%d, %d) = %d, want %d", x, y, got, (x*4+y)&3)
			}
		}
	}
}

func TestFromWords(t *testing.T) {
	blk := FromWords(0x44332211, 0x88776655)
	want := Block{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}
	if blk != want {
		t.Fatalf("FromWords = %v, want %v", blk, want)
	}
}

func TestBlockColors5(t *testing.T) {
	colors := BlockColors5(16, 16, 16, 2) // expand5(16) = 132, table ±9/±29
	wantG := [4]uint32{103, 123, 141, 161}
	for i, want := range wantG {
		if colors[i][1] != want {
			t.Errorf("ramp[%d].g = %d, want %d", i, colors[i][1], want)
		}
	}

	// Clamping at both ends.
	lo := BlockColors5(0, 0, 0, 7)
	if lo[0][0] != 0 {
		t.Errorf("low clamp = %d, want 0", lo[0][0])
	}
	hi := BlockColors5(31, 31, 31, 7)
	if hi[3][0] != 255 {
		t.Errorf("high clamp = %d, want 255", hi[3][0])
	}
}

// dxt1Ramp evaluates the four DXT1 interpolants of a block's endpoint
// words, per component.
func dxt1Ramp(low, high uint16) [4][3]int32 {
	expand := func(c uint16) [3]int32 {
		r := int32(c >> 11 & 31)
		g := int32(c >> 5 & 63)
		b := int32(c & 31)
		return [3]int32{r<<3 | r>>2, g<<2 | g>>4, b<<3 | b>>2}
	}
	c0, c1 := expand(low), expand(high)
	var ramp [4][3]int32
	for c := 0; c < 3; c++ {
		ramp[0][c] = c0[c]
		ramp[1][c] = c1[c]
		ramp[2][c] = (c0[c]*2 + c1[c]) / 3
		ramp[3][c] = (c1[c]*2 + c0[c]) / 3
	}
	return ramp
}

func blockColors(b *dxt.Block1) (low, high uint16) {
	low = uint16(b.LowColor[0]) | uint16(b.LowColor[1])<<8
	high = uint16(b.HighColor[0]) | uint16(b.HighColor[1])<<8
	return
}

func TestConvertToDXT1_AllSame(t *testing.T) {
	// Every raw selector zero: a single ramp color.
	blk := makeETC1S(16, 16, 16, 2, nil)

	var out dxt.Block1
	ConvertToDXT1(&out, &blk)

	mask := out.Selectors[0]
	if mask != 0xAA && mask != 0xFF {
		t.Fatalf("constant selector byte = %#02x, want 0xaa or 0xff", mask)
	}
	for _, s := range out.Selectors {
		if s != mask {
			t.Fatalf("selector rows differ: %v", out.Selectors)
		}
	}

	low, high := blockColors(&out)
	if low < high {
		t.Fatalf("low %#04x < high %#04x; four-color order violated", low, high)
	}

	// Raw selector 0 is ramp position 2.
	want := BlockColors5(16, 16, 16, 2)[2]
	ramp := dxt1Ramp(low, high)
	native := int(mask & 3) // 0xAA -> 2, 0xFF -> 3
	for c := 0; c < 3; c++ {
		diff := ramp[native][c] - int32(want[c])
		if diff < -8 || diff > 8 {
			t.Fatalf("component %d = %d, want near %d", c, ramp[native][c], want[c])
		}
	}
}

func TestConvertToDXT1_Mixed(t *testing.T) {
	var sel [16]uint32
	for i := range sel {
		// raw values cycling through all four selectors
		sel[i] = uint32(i) & 3
	}
	blk := makeETC1S(16, 16, 16, 2, &sel)

	var out dxt.Block1
	ConvertToDXT1(&out, &blk)

	low, high := blockColors(&out)
	if low < high {
		t.Fatalf("low %#04x < high %#04x", low, high)
	}

	ramp := dxt1Ramp(low, high)
	want := BlockColors5(16, 16, 16, 2)
	for x := uint32(0); x < 4; x++ {
		for y := uint32(0); y < 4; y++ {
			raw := blk.RawSelector(x, y)
			linear := etc1ToLinearSelector[raw]
			native := out.Selectors[y] >> (x * 2) & 3
			got := ramp[native][1]
			wantG := int32(want[linear][1])
			if d := got - wantG; d < -24 || d > 24 {
				t.Fatalf("texel (%d,%d): green %d, want near %d", x, y, got, wantG)
			}
		}
	}
}

// dxt5aRamp evaluates the 6- or 8-value DXT5 alpha ramp.
func dxt5aRamp(l, h uint32) [8]uint32 {
	var v [8]uint32
	v[0], v[1] = l, h
	if l > h {
		v[2] = (l*6 + h) / 7
		v[3] = (l*5 + h*2) / 7
		v[4] = (l*4 + h*3) / 7
		v[5] = (l*3 + h*4) / 7
		v[6] = (l*2 + h*5) / 7
		v[7] = (l + h*6) / 7
	} else {
		v[2] = (l*4 + h) / 5
		v[3] = (l*3 + h*2) / 5
		v[4] = (l*2 + h*3) / 5
		v[5] = (l + h*4) / 5
		v[6] = 0
		v[7] = 255
	}
	return v
}

func TestConvertToDXT5A_AllSame(t *testing.T) {
	blk := makeETC1S(16, 16, 16, 2, nil)

	var out dxt.Block5A
	ConvertToDXT5A(&out, &blk)

	wantG := BlockColors5(16, 16, 16, 2)[2][1]
	if uint32(out.Endpoints[0]) != wantG || uint32(out.Endpoints[1]) != wantG {
		t.Fatalf("endpoints = %v, want both %d", out.Endpoints, wantG)
	}
	if out.Selectors != [6]uint8{} {
		t.Fatalf("selectors = %v, want zero", out.Selectors)
	}
}

func TestConvertToDXT5A_TwoUnique(t *testing.T) {
	var sel [16]uint32
	for i := range sel {
		if i >= 8 {
			sel[i] = 1 // raw 1 = ramp position 3
		}
		// raw 0 = ramp position 2
	}
	blk := makeETC1S(16, 16, 16, 2, &sel)

	var out dxt.Block5A
	ConvertToDXT5A(&out, &blk)

	ramp := BlockColors5(16, 16, 16, 2)
	if uint32(out.Endpoints[0]) != ramp[2][1] || uint32(out.Endpoints[1]) != ramp[3][1] {
		t.Fatalf("endpoints = %v, want (%d, %d)", out.Endpoints, ramp[2][1], ramp[3][1])
	}

	packed := uint64(0)
	for i, b := range out.Selectors {
		packed |= uint64(b) << (8 * i)
	}
	for x := uint32(0); x < 4; x++ {
		for y := uint32(0); y < 4; y++ {
			idx := y*4 + x
			got := packed >> (idx * 3) & 7
			want := uint64(0)
			if x*4+y >= 8 {
				want = 1
			}
			if got != want {
				t.Fatalf("texel (%d,%d) selector = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestConvertToDXT5A_FullRange(t *testing.T) {
	var sel [16]uint32
	for i := range sel {
		sel[i] = uint32(i) & 3
	}
	blk := makeETC1S(16, 16, 16, 2, &sel)

	var out dxt.Block5A
	ConvertToDXT5A(&out, &blk)

	ramp := dxt5aRamp(uint32(out.Endpoints[0]), uint32(out.Endpoints[1]))
	want := BlockColors5(16, 16, 16, 2)

	packed := uint64(0)
	for i, b := range out.Selectors {
		packed |= uint64(b) << (8 * i)
	}
	for x := uint32(0); x < 4; x++ {
		for y := uint32(0); y < 4; y++ {
			raw := blk.RawSelector(x, y)
			linear := etc1ToLinearSelector[raw]
			ds := packed >> ((y*4 + x) * 3) & 7
			got := int32(ramp[ds])
			wantG := int32(want[linear][1])
			if d := got - wantG; d < -24 || d > 24 {
				t.Fatalf("texel (%d,%d): alpha %d, want near %d", x, y, got, wantG)
			}
		}
	}
}

func TestOptimalMatchTables(t *testing.T) {
	convTablesOnce.Do(initConvTables)

	for v := 0; v < 256; v++ {
		max5, min5 := int(expand5Tab[oMatch5[v][0]]), int(expand5Tab[oMatch5[v][1]])
		if d := (max5*2+min5)/3 - v; d < -10 || d > 10 {
			t.Fatalf("oMatch5[%d] interpolates to %d", v, (max5*2+min5)/3)
		}
		max6, min6 := int(expand6Tab[oMatch6[v][0]]), int(expand6Tab[oMatch6[v][1]])
		if d := (max6*2+min6)/3 - v; d < -6 || d > 6 {
			t.Fatalf("oMatch6[%d] interpolates to %d", v, (max6*2+min6)/3)
		}
	}
}
