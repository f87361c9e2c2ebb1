package crntest

import (
	"encoding/binary"

	"github.com/gputex/crn/internal/container"
)

// File describes a container to fabricate. Palettes are given in the
// decoded domain; each level applies one constant index per palette to
// every block, and every block is coded with an explicit endpoint
// reference of 0 (new index, delta coded).
type File struct {
	Width, Height uint32
	Levels, Faces uint32
	Format        container.Format

	Userdata0, Userdata1 uint32

	// Color endpoint palette: DXT entries as {r0,g0,b0,r1,g1,b1}
	// (5/6/5-bit components); ETC entries as the four masked accumulator
	// bytes {r,g,b,inten}.
	ColorEndpointsDXT [][6]uint32
	ColorEndpointsETC [][4]uint32

	// Color selector palette, one linear selector word per entry.
	ColorSelectors []uint32

	// Alpha endpoint palette as {low, high} bytes.
	AlphaEndpoints [][2]uint32

	// Alpha selector palette: DXT5-style entries as two 24-bit linear
	// halves; ETC entries as the eight raw stream symbols.
	AlphaSelectors       [][2]uint32
	AlphaSelectorETCSyms [][8]uint32

	// Per-level constant block indices.
	LevelColorEndpoint  []uint32
	LevelColorSelector  []uint32
	LevelAlpha0Endpoint []uint32
	LevelAlpha0Selector []uint32
	LevelAlpha1Endpoint []uint32
	LevelAlpha1Selector []uint32
}

func (f *File) hasColor() bool {
	return len(f.ColorEndpointsDXT) > 0 || len(f.ColorEndpointsETC) > 0
}

func (f *File) numColorEndpoints() uint32 {
	return uint32(len(f.ColorEndpointsDXT) + len(f.ColorEndpointsETC))
}

func (f *File) numAlphaSelectors() uint32 {
	return uint32(len(f.AlphaSelectors) + len(f.AlphaSelectorETCSyms))
}

func (f *File) etcStyleWalk() bool {
	switch f.Format {
	case container.FormatETC1, container.FormatETC2, container.FormatETC2A:
		return true
	}
	return false
}

// symbol streams gathered per model across all levels
type levelSymbols struct {
	refGroup      []uint32
	endpointDelta [2][]uint32
	selectorDelta [2][]uint32
}

func (f *File) levelGeometry(level uint32) (bx, by uint32) {
	w := f.Width >> level
	if w == 0 {
		w = 1
	}
	h := f.Height >> level
	if h == 0 {
		h = 1
	}
	return (w + 3) >> 2, (h + 3) >> 2
}

// collectLevel simulates the decoder's walk for one level and appends
// every symbol it would read, in order, to sym.
func (f *File) collectLevel(level uint32, sym *levelSymbols) {
	bx, by := f.levelGeometry(level)
	width := (bx + 1) &^ 1
	height := (by + 1) &^ 1

	hasColorPlane := f.hasColor()
	var hasAlpha0, hasAlpha1 bool
	switch f.Format {
	case container.FormatDXT5, container.FormatDXT5CCxY, container.FormatDXT5xGxR,
		container.FormatDXT5xGBR, container.FormatDXT5AGBR, container.FormatETC2AS,
		container.FormatETC2A:
		hasAlpha0 = true
	case container.FormatDXT5A:
		hasAlpha0 = true
		hasColorPlane = false
	case container.FormatDXNXY, container.FormatDXNYX:
		hasAlpha0, hasAlpha1 = true, true
		hasColorPlane = false
	}

	nColor := f.numColorEndpoints()
	nAlpha := uint32(len(f.AlphaEndpoints))

	for face := uint32(0); face < f.Faces; face++ {
		var curColor, curAlpha0, curAlpha1 uint32
		for y := uint32(0); y < height; y++ {
			for x := uint32(0); x < width; x++ {
				if f.etcStyleWalk() {
					if y&1 == 0 {
						sym.refGroup = append(sym.refGroup, 0)
					}
				} else if y&1 == 0 && x&1 == 0 {
					sym.refGroup = append(sym.refGroup, 0)
				}

				if hasColorPlane {
					target := f.LevelColorEndpoint[level]
					sym.endpointDelta[0] = append(sym.endpointDelta[0], (target+nColor-curColor)%nColor)
					curColor = target
				}
				if hasAlpha0 {
					target := f.LevelAlpha0Endpoint[level]
					sym.endpointDelta[1] = append(sym.endpointDelta[1], (target+nAlpha-curAlpha0)%nAlpha)
					curAlpha0 = target
				}
				if hasAlpha1 {
					target := f.LevelAlpha1Endpoint[level]
					sym.endpointDelta[1] = append(sym.endpointDelta[1], (target+nAlpha-curAlpha1)%nAlpha)
					curAlpha1 = target
				}

				if hasColorPlane {
					sym.selectorDelta[0] = append(sym.selectorDelta[0], f.LevelColorSelector[level])
				}
				if hasAlpha0 {
					sym.selectorDelta[1] = append(sym.selectorDelta[1], f.LevelAlpha0Selector[level])
				}
				if hasAlpha1 {
					sym.selectorDelta[1] = append(sym.selectorDelta[1], f.LevelAlpha1Selector[level])
				}

				if f.etcStyleWalk() {
					// secondary endpoint field is reference 0: a second
					// color delta targeting the same index
					sym.endpointDelta[0] = append(sym.endpointDelta[0], 0)
				}
			}
		}
	}
}

// Build assembles the complete container, CRCs included.
func (f *File) Build() []byte {
	headerSize := uint32(72 + 4*f.Levels)

	// Gather every block-stream symbol so the shared models cover them.
	var all levelSymbols
	for level := uint32(0); level < f.Levels; level++ {
		f.collectLevel(level, &all)
	}

	refModel := NewModel(all.refGroup)
	var endModel, selModel [2]*Model
	if f.hasColor() {
		endModel[0] = NewModel(all.endpointDelta[0])
		selModel[0] = NewModel(all.selectorDelta[0])
	}
	if len(f.AlphaEndpoints) > 0 {
		endModel[1] = NewModel(all.endpointDelta[1])
		selModel[1] = NewModel(all.selectorDelta[1])
	}

	// Tables blob: reference model, then the per-plane models.
	var tw BitWriter
	refModel.Write(&tw)
	if f.hasColor() {
		endModel[0].Write(&tw)
		selModel[0].Write(&tw)
	}
	if len(f.AlphaEndpoints) > 0 {
		endModel[1].Write(&tw)
		selModel[1].Write(&tw)
	}
	tables := tw.Bytes()

	colorEndpoints := f.buildColorEndpoints()
	colorSelectors := f.buildColorSelectors()
	alphaEndpoints := f.buildAlphaEndpoints()
	alphaSelectors := f.buildAlphaSelectors()

	// Level streams re-run the walk, emitting through the shared models.
	levels := make([][]byte, f.Levels)
	for level := uint32(0); level < f.Levels; level++ {
		var sym levelSymbols
		f.collectLevel(level, &sym)

		var lw BitWriter
		e0, e1, s0, s1 := 0, 0, 0, 0
		f.replayLevel(level, &lw, refModel, endModel, selModel, &sym, &e0, &e1, &s0, &s1)
		levels[level] = lw.Bytes()
	}

	// Layout: header, tables, palettes, level streams.
	ofs := headerSize
	tablesOfs := ofs
	ofs += uint32(len(tables))
	cEndOfs := ofs
	ofs += uint32(len(colorEndpoints))
	cSelOfs := ofs
	ofs += uint32(len(colorSelectors))
	aEndOfs := ofs
	ofs += uint32(len(alphaEndpoints))
	aSelOfs := ofs
	ofs += uint32(len(alphaSelectors))

	levelOfs := make([]uint32, f.Levels)
	for i, l := range levels {
		levelOfs[i] = ofs
		ofs += uint32(len(l))
	}
	dataSize := ofs

	out := make([]byte, dataSize)
	binary.BigEndian.PutUint16(out[0:2], container.SigValue)
	binary.BigEndian.PutUint16(out[2:4], uint16(headerSize))
	binary.BigEndian.PutUint32(out[6:10], dataSize)
	binary.BigEndian.PutUint16(out[12:14], uint16(f.Width))
	binary.BigEndian.PutUint16(out[14:16], uint16(f.Height))
	out[16] = uint8(f.Levels)
	out[17] = uint8(f.Faces)
	out[18] = uint8(f.Format)
	binary.BigEndian.PutUint16(out[19:21], 0)
	binary.BigEndian.PutUint32(out[21:25], f.Userdata0)
	binary.BigEndian.PutUint32(out[25:29], f.Userdata1)

	putPalette := func(at uint32, ofs, size, num uint32) {
		binary.BigEndian.PutUint32(out[at:at+4], ofs)
		out[at+4] = byte(size >> 16)
		out[at+5] = byte(size >> 8)
		out[at+6] = byte(size)
		binary.BigEndian.PutUint16(out[at+7:at+9], uint16(num))
	}
	putPalette(29, cEndOfs, uint32(len(colorEndpoints)), f.numColorEndpoints())
	putPalette(38, cSelOfs, uint32(len(colorSelectors)), uint32(len(f.ColorSelectors)))
	putPalette(47, aEndOfs, uint32(len(alphaEndpoints)), uint32(len(f.AlphaEndpoints)))
	putPalette(56, aSelOfs, uint32(len(alphaSelectors)), f.numAlphaSelectors())

	binary.BigEndian.PutUint32(out[65:69], tablesOfs)
	out[69] = byte(len(tables) >> 16)
	out[70] = byte(len(tables) >> 8)
	out[71] = byte(len(tables))

	for i, lo := range levelOfs {
		binary.BigEndian.PutUint32(out[72+4*i:], lo)
	}

	copy(out[tablesOfs:], tables)
	copy(out[cEndOfs:], colorEndpoints)
	copy(out[cSelOfs:], colorSelectors)
	copy(out[aEndOfs:], alphaEndpoints)
	copy(out[aSelOfs:], alphaSelectors)
	for i, l := range levels {
		copy(out[levelOfs[i]:], l)
	}

	binary.BigEndian.PutUint16(out[10:12], container.Checksum(out[headerSize:dataSize]))
	binary.BigEndian.PutUint16(out[4:6], container.Checksum(out[6:headerSize]))
	return out
}

// replayLevel emits one level's symbols in decode order, consuming the
// queues gathered by collectLevel.
func (f *File) replayLevel(level uint32, w *BitWriter, refModel *Model, endModel, selModel [2]*Model, sym *levelSymbols, e0, e1, s0, s1 *int) {
	ri := 0
	nextEnd := func(plane int) uint32 {
		var v uint32
		if plane == 0 {
			v = sym.endpointDelta[0][*e0]
			*e0++
		} else {
			v = sym.endpointDelta[1][*e1]
			*e1++
		}
		return v
	}
	nextSel := func(plane int) uint32 {
		var v uint32
		if plane == 0 {
			v = sym.selectorDelta[0][*s0]
			*s0++
		} else {
			v = sym.selectorDelta[1][*s1]
			*s1++
		}
		return v
	}

	bx, by := f.levelGeometry(level)
	width := (bx + 1) &^ 1
	height := (by + 1) &^ 1

	hasColorPlane := f.hasColor()
	var hasAlpha0, hasAlpha1 bool
	switch f.Format {
	case container.FormatDXT5, container.FormatDXT5CCxY, container.FormatDXT5xGxR,
		container.FormatDXT5xGBR, container.FormatDXT5AGBR, container.FormatETC2AS,
		container.FormatETC2A:
		hasAlpha0 = true
	case container.FormatDXT5A:
		hasAlpha0 = true
		hasColorPlane = false
	case container.FormatDXNXY, container.FormatDXNYX:
		hasAlpha0, hasAlpha1 = true, true
		hasColorPlane = false
	}

	for face := uint32(0); face < f.Faces; face++ {
		for y := uint32(0); y < height; y++ {
			for x := uint32(0); x < width; x++ {
				if f.etcStyleWalk() {
					if y&1 == 0 {
						refModel.Encode(w, sym.refGroup[ri])
						ri++
					}
				} else if y&1 == 0 && x&1 == 0 {
					refModel.Encode(w, sym.refGroup[ri])
					ri++
				}

				if hasColorPlane {
					endModel[0].Encode(w, nextEnd(0))
				}
				if hasAlpha0 {
					endModel[1].Encode(w, nextEnd(1))
				}
				if hasAlpha1 {
					endModel[1].Encode(w, nextEnd(1))
				}
				if hasColorPlane {
					selModel[0].Encode(w, nextSel(0))
				}
				if hasAlpha0 {
					selModel[1].Encode(w, nextSel(1))
				}
				if hasAlpha1 {
					selModel[1].Encode(w, nextSel(1))
				}
				if f.etcStyleWalk() {
					endModel[0].Encode(w, nextEnd(0))
				}
			}
		}
	}
}
