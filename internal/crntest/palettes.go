package crntest

// buildColorEndpoints writes the color endpoint palette stream: one or
// two embedded models followed by delta-coded components.
func (f *File) buildColorEndpoints() []byte {
	if !f.hasColor() {
		return nil
	}
	var w BitWriter

	if len(f.ColorEndpointsETC) > 0 {
		// one model, four byte deltas per entry with carry propagation
		var syms []uint32
		var deltas [][4]uint32
		var run uint32
		for _, e := range f.ColorEndpointsETC {
			target := e[0] | e[1]<<8 | e[2]<<16 | e[3]<<24
			var d [4]uint32
			carry := uint32(0)
			for i := uint32(0); i < 4; i++ {
				rb := run >> (8 * i) & 0xFF
				tb := target >> (8 * i) & 0xFF
				d[i] = (tb - rb - carry) & 0xFF
				carry = (rb + carry + d[i]) >> 8
			}
			deltas = append(deltas, d)
			syms = append(syms, d[:]...)
			run = target
		}
		m := NewModel(syms)
		m.Write(&w)
		for _, d := range deltas {
			for _, s := range d {
				m.Encode(&w, s)
			}
		}
		return w.Bytes()
	}

	// DXT: six running accumulators, models split 5-bit / 6-bit
	mods := [6]uint32{32, 64, 32, 32, 64, 32}
	var cur [6]uint32
	var syms5, syms6 []uint32
	deltas := make([][6]uint32, len(f.ColorEndpointsDXT))
	for i, e := range f.ColorEndpointsDXT {
		for j := 0; j < 6; j++ {
			d := (e[j] + mods[j] - cur[j]) % mods[j]
			deltas[i][j] = d
			if mods[j] == 64 {
				syms6 = append(syms6, d)
			} else {
				syms5 = append(syms5, d)
			}
			cur[j] = e[j]
		}
	}
	m5 := NewModel(syms5)
	m6 := NewModel(syms6)
	m5.Write(&w)
	m6.Write(&w)
	for _, d := range deltas {
		for j, model := range [6]*Model{m5, m6, m5, m5, m6, m5} {
			model.Encode(&w, d[j])
		}
	}
	return w.Bytes()
}

// buildColorSelectors writes the color selector palette stream: one
// model plus eight XOR-coded nibbles per entry.
func (f *File) buildColorSelectors() []byte {
	if len(f.ColorSelectors) == 0 {
		return nil
	}
	var syms []uint32
	var run uint32
	for _, target := range f.ColorSelectors {
		for j := uint32(0); j < 32; j += 4 {
			syms = append(syms, (run^target)>>j&0xF)
		}
		run = target
	}
	var w BitWriter
	m := NewModel(syms)
	m.Write(&w)
	for _, s := range syms {
		m.Encode(&w, s)
	}
	return w.Bytes()
}

// buildAlphaEndpoints writes the alpha endpoint palette stream.
func (f *File) buildAlphaEndpoints() []byte {
	if len(f.AlphaEndpoints) == 0 {
		return nil
	}
	var syms []uint32
	var a, b uint32
	for _, e := range f.AlphaEndpoints {
		syms = append(syms, (e[0]+256-a)&255, (e[1]+256-b)&255)
		a, b = e[0], e[1]
	}
	var w BitWriter
	m := NewModel(syms)
	m.Write(&w)
	for _, s := range syms {
		m.Encode(&w, s)
	}
	return w.Bytes()
}

// buildAlphaSelectors writes the alpha selector palette stream: either
// DXT5-style 6-bit XOR chunks or raw ETC selector symbols.
func (f *File) buildAlphaSelectors() []byte {
	var syms []uint32

	if len(f.AlphaSelectorETCSyms) > 0 {
		for _, e := range f.AlphaSelectorETCSyms {
			syms = append(syms, e[:]...)
		}
	} else if len(f.AlphaSelectors) > 0 {
		var s0, s1 uint32
		for _, e := range f.AlphaSelectors {
			for j := uint32(0); j < 24; j += 6 {
				syms = append(syms, (s0^e[0])>>j&0x3F)
			}
			for j := uint32(0); j < 24; j += 6 {
				syms = append(syms, (s1^e[1])>>j&0x3F)
			}
			s0, s1 = e[0], e[1]
		}
	} else {
		return nil
	}

	var w BitWriter
	m := NewModel(syms)
	m.Write(&w)
	for _, s := range syms {
		m.Encode(&w, s)
	}
	return w.Bytes()
}
