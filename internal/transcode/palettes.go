package transcode

import (
	"github.com/gputex/crn/internal/dxt"
	"github.com/gputex/crn/internal/prefix"
)

// decodeColorEndpoints rebuilds the color endpoint palette. DXT entries
// are six delta-coded 5/6-bit components packed into two RGB565 words;
// ETC entries are four delta-coded bytes masked to 5-bit fields, with
// non-subblock formats expanding the intensity field into the block
// header encoding (differential bit set, both subblocks sharing one
// table).
func (u *Unpacker) decodeColorEndpoints() error {
	num := u.hdr.ColorEndpoints.Num
	isETC := u.hdr.Format.IsETC()
	hasSubblocks := u.hdr.Format.HasSubblocks()

	sec, err := u.section(u.hdr.ColorEndpoints.Ofs, u.hdr.ColorEndpoints.Size)
	if err != nil {
		return err
	}
	if err := u.codec.Start(sec); err != nil {
		return err
	}

	var dm [2]prefix.DataModel
	numModels := 2
	if isETC {
		numModels = 1
	}
	for i := 0; i < numModels; i++ {
		if err := u.codec.ReceiveDataModel(&dm[i]); err != nil {
			return err
		}
	}

	u.colorEndpoints = make([]uint32, num)

	var a, b, c, d, e, f uint32
	for i := uint32(0); i < num; i++ {
		if isETC {
			for shift := uint32(0); shift < 32; shift += 8 {
				sym, err := u.codec.Decode(&dm[0])
				if err != nil {
					return err
				}
				a += sym << shift
			}
			a &= 0x1F1F1F1F
			if hasSubblocks {
				u.colorEndpoints[i] = a
			} else {
				u.colorEndpoints[i] = (a&0x07000000)<<5 | (a&0x07000000)<<2 | 0x02000000 | (a&0x001F1F1F)<<3
			}
			continue
		}

		var sym [6]uint32
		for j, model := range [6]int{0, 1, 0, 0, 1, 0} {
			s, err := u.codec.Decode(&dm[model])
			if err != nil {
				return err
			}
			sym[j] = s
		}
		a = (a + sym[0]) & 31
		b = (b + sym[1]) & 63
		c = (c + sym[2]) & 31
		d = (d + sym[3]) & 31
		e = (e + sym[4]) & 63
		f = (f + sym[5]) & 31
		u.colorEndpoints[i] = c | b<<5 | a<<11 | f<<16 | e<<21 | d<<27
	}

	if _, err := u.codec.Stop(); err != nil {
		return err
	}
	return nil
}

// decodeColorSelectors rebuilds the color selector palette. Selectors
// arrive XOR-delta coded in a linear (ramp-ordered) domain, eight
// nibbles per 4x4 block, and are re-packed into the native encoding:
// MSB/LSB planes for DXT1, per-pixel planes in both subblock orderings
// for ETC.
func (u *Unpacker) decodeColorSelectors() error {
	isETC := u.hdr.Format.IsETC()
	hasSubblocks := u.hdr.Format.HasSubblocks()
	num := u.hdr.ColorSelectors.Num

	sec, err := u.section(u.hdr.ColorSelectors.Ofs, u.hdr.ColorSelectors.Size)
	if err != nil {
		return err
	}
	if err := u.codec.Start(sec); err != nil {
		return err
	}

	var dm prefix.DataModel
	if err := u.codec.ReceiveDataModel(&dm); err != nil {
		return err
	}

	size := num
	if hasSubblocks {
		size <<= 1
	}
	u.colorSelectors = make([]uint32, size)

	var s uint32
	for i := uint32(0); i < num; i++ {
		for j := uint32(0); j < 32; j += 4 {
			sym, err := u.codec.Decode(&dm)
			if err != nil {
				return err
			}
			s ^= sym << j
		}

		if !isETC {
			u.colorSelectors[i] = (s^s<<1)&0xAAAAAAAA | s>>1&0x55555555
			continue
		}

		selector := ^s&0xAAAAAAAA | ^(s^s>>1)&0x55555555
		t := int32(8)
		for h := uint32(0); h < 4; h, t = h+1, t-15 {
			for w := uint32(0); w < 4; w, t = w+1, t+4 {
				shift := uint32(t) & 15
				if hasSubblocks {
					s0 := selector >> (w<<3 | h<<1)
					u.colorSelectors[i<<1] |= (s0>>1&1 | s0&1<<16) << shift
				}
				s1 := selector >> (h<<3 | w<<1)
				idx := i
				if hasSubblocks {
					idx = i<<1 | 1
				}
				u.colorSelectors[idx] |= (s1>>1&1 | s1&1<<16) << shift
			}
		}
	}

	if _, err := u.codec.Stop(); err != nil {
		return err
	}
	return nil
}

// decodeAlphaEndpoints rebuilds the alpha endpoint palette: two
// delta-coded bytes per entry, packed low | high<<8.
func (u *Unpacker) decodeAlphaEndpoints() error {
	num := u.hdr.AlphaEndpoints.Num

	sec, err := u.section(u.hdr.AlphaEndpoints.Ofs, u.hdr.AlphaEndpoints.Size)
	if err != nil {
		return err
	}
	if err := u.codec.Start(sec); err != nil {
		return err
	}

	var dm prefix.DataModel
	if err := u.codec.ReceiveDataModel(&dm); err != nil {
		return err
	}

	u.alphaEndpoints = make([]uint16, num)

	var a, b uint32
	for i := uint32(0); i < num; i++ {
		sa, err := u.codec.Decode(&dm)
		if err != nil {
			return err
		}
		sb, err := u.codec.Decode(&dm)
		if err != nil {
			return err
		}
		a = (a + sa) & 255
		b = (b + sb) & 255
		u.alphaEndpoints[i] = uint16(a | b<<8)
	}

	if _, err := u.codec.Stop(); err != nil {
		return err
	}
	return nil
}

// decodeAlphaSelectors rebuilds the DXT5-style alpha selector palette:
// two 24-bit linear selector words per entry, XOR-delta coded in 6-bit
// chunks, remapped chunk-wise to the native ramp order and packed as
// three 16-bit words lining up with the 48-bit DXT5 selector field.
func (u *Unpacker) decodeAlphaSelectors() error {
	sec, err := u.section(u.hdr.AlphaSelectors.Ofs, u.hdr.AlphaSelectors.Size)
	if err != nil {
		return err
	}
	if err := u.codec.Start(sec); err != nil {
		return err
	}

	var dm prefix.DataModel
	if err := u.codec.ReceiveDataModel(&dm); err != nil {
		return err
	}

	u.alphaSelectors = make([]uint16, u.hdr.AlphaSelectors.Num*3)

	var fromLinear [64]uint8
	for i := range fromLinear {
		fromLinear[i] = dxt.DXT5FromLinear[i&7] | dxt.DXT5FromLinear[i>>3]<<3
	}

	var s0Linear, s1Linear uint32
	for i := 0; i < len(u.alphaSelectors); {
		var s0, s1 uint32
		for j := uint32(0); j < 24; j += 6 {
			sym, err := u.codec.Decode(&dm)
			if err != nil {
				return err
			}
			s0Linear ^= sym << j
			s0 |= uint32(fromLinear[s0Linear>>j&0x3F]) << j
		}
		for j := uint32(0); j < 24; j += 6 {
			sym, err := u.codec.Decode(&dm)
			if err != nil {
				return err
			}
			s1Linear ^= sym << j
			s1 |= uint32(fromLinear[s1Linear>>j&0x3F]) << j
		}
		u.alphaSelectors[i] = uint16(s0)
		u.alphaSelectors[i+1] = uint16(s0>>16 | s1<<8)
		u.alphaSelectors[i+2] = uint16(s1 >> 8)
		i += 3
	}

	if _, err := u.codec.Stop(); err != nil {
		return err
	}
	return nil
}

// decodeAlphaSelectorsETC2A rebuilds the ETC2 alpha selector palette in
// both subblock orientations (six 16-bit words per entry: non-flipped
// then flipped). Each 3-bit selector is XOR-delta coded, remapped
// s<=3 -> 3-s, and scattered into the 48-bit alpha grid with shifts
// that wrap into the adjacent byte.
func (u *Unpacker) decodeAlphaSelectorsETC2A() error {
	sec, err := u.section(u.hdr.AlphaSelectors.Ofs, u.hdr.AlphaSelectors.Size)
	if err != nil {
		return err
	}
	if err := u.codec.Start(sec); err != nil {
		return err
	}

	var dm prefix.DataModel
	if err := u.codec.ReceiveDataModel(&dm); err != nil {
		return err
	}

	num := u.hdr.AlphaSelectors.Num
	u.alphaSelectors = make([]uint16, num*6)

	// One spare byte absorbs the shift-by-zero writes the scatter makes
	// one byte past each grid.
	data := make([]byte, num*12+1)

	var sLinear [8]uint8
	for i := uint32(0); i < num; i++ {
		d := data[i*12:]
		var sGroup uint32
		for p := uint32(0); p < 16; p++ {
			if p&1 != 0 {
				sGroup >>= 3
			} else {
				sym, err := u.codec.Decode(&dm)
				if err != nil {
					return err
				}
				sLinear[p>>1] ^= uint8(sym)
				sGroup = uint32(sLinear[p>>1])
			}
			s := sGroup & 7
			if s <= 3 {
				s = 3 - s
			}

			bit := 3 * (p + 1)
			byteOfs, bitOfs := bit>>3, bit&7
			d[byteOfs] |= uint8(s << (8 - bitOfs))
			if bitOfs < 3 {
				d[byteOfs-1] |= uint8(s >> bitOfs)
			}

			bit += 9 * ((p & 3) - p>>2) // transpose for the flipped orientation
			byteOfs, bitOfs = bit>>3, bit&7
			d[byteOfs+6] |= uint8(s << (8 - bitOfs))
			if bitOfs < 3 {
				d[byteOfs+5] |= uint8(s >> bitOfs)
			}
		}
	}

	for i := range u.alphaSelectors {
		u.alphaSelectors[i] = uint16(data[2*i]) | uint16(data[2*i+1])<<8
	}

	if _, err := u.codec.Stop(); err != nil {
		return err
	}
	return nil
}

// decodeAlphaSelectorsETC2AS is the single-orientation variant used by
// ETC2AS (three 16-bit words per entry).
func (u *Unpacker) decodeAlphaSelectorsETC2AS() error {
	sec, err := u.section(u.hdr.AlphaSelectors.Ofs, u.hdr.AlphaSelectors.Size)
	if err != nil {
		return err
	}
	if err := u.codec.Start(sec); err != nil {
		return err
	}

	var dm prefix.DataModel
	if err := u.codec.ReceiveDataModel(&dm); err != nil {
		return err
	}

	num := u.hdr.AlphaSelectors.Num
	u.alphaSelectors = make([]uint16, num*3)

	data := make([]byte, num*6+1)

	var sLinear [8]uint8
	for i := uint32(0); i < num; i++ {
		d := data[i*6:]
		var sGroup uint32
		for p := uint32(0); p < 16; p++ {
			if p&1 != 0 {
				sGroup >>= 3
			} else {
				sym, err := u.codec.Decode(&dm)
				if err != nil {
					return err
				}
				sLinear[p>>1] ^= uint8(sym)
				sGroup = uint32(sLinear[p>>1])
			}
			s := sGroup & 7
			if s <= 3 {
				s = 3 - s
			}

			bit := 3*(p+1) + 9*((p&3)-p>>2)
			byteOfs, bitOfs := bit>>3, bit&7
			d[byteOfs] |= uint8(s << (8 - bitOfs))
			if bitOfs < 3 {
				d[byteOfs-1] |= uint8(s >> bitOfs)
			}
		}
	}

	for i := range u.alphaSelectors {
		u.alphaSelectors[i] = uint16(data[2*i]) | uint16(data[2*i+1])<<8
	}

	if _, err := u.codec.Stop(); err != nil {
		return err
	}
	return nil
}
