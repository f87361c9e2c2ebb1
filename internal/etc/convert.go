package etc

import (
	"sync"

	"github.com/gputex/crn/internal/dxt"
)

// selectorRange is an inclusive range of ramp selector positions
// actually used by a block.
type selectorRange struct {
	low, high uint32
}

// The DXT1 conversion tables cover six usage buckets; the DXT5A table
// covers the first four.
var dxt1SelectorRanges = [6]selectorRange{
	{0, 3},
	{1, 3},
	{0, 2},
	{1, 2},
	{2, 3},
	{0, 1},
}

var dxt5aSelectorRanges = [4]selectorRange{
	{0, 3},
	{1, 3},
	{0, 2},
	{1, 2},
}

const numDXT1SelectorMappings = 10

// dxt1SelectorMappings are the candidate assignments of the four ramp
// positions onto DXT1's four interpolants.
var dxt1SelectorMappings = [numDXT1SelectorMappings][4]uint8{
	{0, 0, 1, 1},
	{0, 0, 1, 2},
	{0, 0, 1, 3},
	{0, 0, 2, 3},
	{0, 1, 1, 1},
	{0, 1, 2, 2},
	{0, 1, 2, 3},
	{0, 2, 3, 3},
	{1, 2, 2, 2},
	{1, 2, 3, 3},
}

// dxt1Solution is the best (lo, hi) endpoint pair for one grey ramp,
// selector range, and mapping, with its summed squared error.
type dxt1Solution struct {
	lo, hi uint8
	err    uint16
}

// dxt5aConversion rewrites an ETC green ramp as DXT5A endpoints plus a
// 3-bit-per-selector transition table.
type dxt5aConversion struct {
	lo, hi uint8
	trans  uint16
}

const numDXT1Solutions = 32 * 8 * len(dxt1SelectorRanges) * numDXT1SelectorMappings

var (
	// xSelectorUnpack[y][lookup] recovers the raw selector of row y from
	// one column's packed LSB/MSB nibble pair.
	xSelectorUnpack [4][256]uint8

	dxt1RangeIndex [4][4]uint8

	// dxt1Mappings1 maps a raw ETC selector to a native DXT1 selector
	// for each candidate mapping; dxt1Mappings2 is the endpoint-swapped
	// variant.
	dxt1Mappings1 [numDXT1SelectorMappings][4]uint8
	dxt1Mappings2 [numDXT1SelectorMappings][4]uint8

	expand5Tab [32]uint8
	expand6Tab [64]uint8

	// oMatch5/oMatch6[v] give the optimal (max, min) DXT1 endpoint
	// components for reproducing the single 8-bit value v through the
	// 2/3:1/3 interpolant.
	oMatch5 [256][2]uint8
	oMatch6 [256][2]uint8

	dxt1Solutions5 [numDXT1Solutions]dxt1Solution
	dxt1Solutions6 [numDXT1Solutions]dxt1Solution
)

var convTablesOnce sync.Once

// initConvTables computes every table used by the ETC1S conversions. It
// is pure and runs once, on first use.
func initConvTables() {
	for y := 0; y < 4; y++ {
		for lookup := 0; lookup < 256; lookup++ {
			lsb := lookup >> y & 1
			msb := lookup >> (4 + y) & 1
			xSelectorUnpack[y][lookup] = uint8(lsb | msb<<1)
		}
	}

	for i := 0; i < 32; i++ {
		expand5Tab[i] = uint8(i<<3 | i>>2)
	}
	for i := 0; i < 64; i++ {
		expand6Tab[i] = uint8(i<<2 | i>>4)
	}
	prepareOptTable(&oMatch5, expand5Tab[:])
	prepareOptTable(&oMatch6, expand6Tab[:])

	for i, r := range dxt1SelectorRanges {
		dxt1RangeIndex[r.low][r.high] = uint8(i)
	}

	// raw DXT1 selector orderings for the straight and endpoint-swapped
	// encodings
	dxt1Xlat := [4]uint8{0, 2, 3, 1}
	dxt1InvertedXlat := [4]uint8{1, 3, 2, 0}
	for sm := 0; sm < numDXT1SelectorMappings; sm++ {
		for j := 0; j < 4; j++ {
			linear := etc1ToLinearSelector[j]
			mapped := dxt1SelectorMappings[sm][linear]
			dxt1Mappings1[sm][j] = dxt1Xlat[mapped]
			dxt1Mappings2[sm][j] = dxt1InvertedXlat[mapped]
		}
	}

	computeDXT1Solutions(&dxt1Solutions5, 31, func(v uint32) uint32 { return v<<3 | v>>2 })
	computeDXT1Solutions(&dxt1Solutions6, 63, func(v uint32) uint32 { return v<<2 | v>>4 })
}

// prepareOptTable searches all endpoint pairs for the best single-value
// fit through DXT1's 2/3:1/3 interpolation, with a small penalty on
// endpoint spread.
func prepareOptTable(table *[256][2]uint8, expand []uint8) {
	size := len(expand)
	for i := 0; i < 256; i++ {
		bestErr := 256
		for min := 0; min < size; min++ {
			for max := 0; max < size; max++ {
				mine := int(expand[min])
				maxe := int(expand[max])
				err := abs((maxe*2+mine)/3 - i)
				err += (abs(maxe-mine) * 8) >> 8
				if err < bestErr {
					table[i][0] = uint8(max)
					table[i][1] = uint8(min)
					bestErr = err
				}
			}
		}
	}
}

// computeDXT1Solutions enumerates every (endpoint pair, intensity row,
// base component, selector range, mapping) combination and keeps the
// least-squares winner. Tie breaking follows the enumeration order
// (ascending hi, then ascending lo, strict improvement).
func computeDXT1Solutions(out *[numDXT1Solutions]dxt1Solution, compMax uint32, expand func(uint32) uint32) {
	n := 0
	for inten := uint32(0); inten < 8; inten++ {
		for g := uint32(0); g < 32; g++ {
			ramp := BlockColors5(g, g, g, inten)

			for _, sr := range dxt1SelectorRanges {
				for m := 0; m < numDXT1SelectorMappings; m++ {
					var bestLo, bestHi uint32
					bestErr := ^uint64(0)

					for hi := uint32(0); hi <= compMax; hi++ {
						for lo := uint32(0); lo <= compMax; lo++ {
							var colors [4]uint32
							colors[0] = expand(lo)
							colors[3] = expand(hi)
							colors[1] = (colors[0]*2 + colors[3]) / 3
							colors[2] = (colors[3]*2 + colors[0]) / 3

							totalErr := uint64(0)
							for s := sr.low; s <= sr.high; s++ {
								d := int64(ramp[s][1]) - int64(colors[dxt1SelectorMappings[m][s]])
								totalErr += uint64(d * d)
							}
							if totalErr < bestErr {
								bestErr = totalErr
								bestLo = lo
								bestHi = hi
							}
						}
					}

					out[n] = dxt1Solution{lo: uint8(bestLo), hi: uint8(bestHi), err: uint16(bestErr)}
					n++
				}
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// selectorStats histograms a block's raw selectors and returns the
// lowest and highest ramp positions in use, plus the number of distinct
// selector values.
func selectorStats(src *Block) (low, high, unique uint32) {
	var hist [4]uint32
	for x := uint32(0); x < 4; x++ {
		byteOfs := 7 - x*4>>3
		shift := (x & 1) * 4
		lsbBits := src[byteOfs] >> shift
		msbBits := src[byteOfs-2] >> shift
		lookup := uint32(lsbBits&0xF) | uint32(msbBits&0xF)<<4
		hist[xSelectorUnpack[0][lookup]]++
		hist[xSelectorUnpack[1][lookup]]++
		hist[xSelectorUnpack[2][lookup]]++
		hist[xSelectorUnpack[3][lookup]]++
	}

	low, high = 3, 0
	for j := 0; j < 4; j++ {
		if hist[j] == 0 {
			continue
		}
		i := uint32(etc1ToLinearSelector[j])
		if i < low {
			low = i
		}
		if i > high {
			high = i
		}
		unique++
	}
	return low, high, unique
}

// ConvertToDXT1 rewrites an ETC1S block as a DXT1 block.
func ConvertToDXT1(dst *dxt.Block1, src *Block) {
	convTablesOnce.Do(initConvTables)

	lowSelector, highSelector, _ := selectorStats(src)

	r, g, b := src.BaseColor5()
	intenTable := src.IntenTable(0)

	if lowSelector == highSelector {
		// Single ramp color: quantize it through the optimal-match
		// tables and emit a constant selector plane.
		colors := BlockColors5(r, g, b, intenTable)
		cr := colors[lowSelector][0]
		cg := colors[lowSelector][1]
		cb := colors[lowSelector][2]

		mask := uint8(0xAA)
		max16 := uint32(oMatch5[cr][0])<<11 | uint32(oMatch6[cg][0])<<5 | uint32(oMatch5[cb][0])
		min16 := uint32(oMatch5[cr][1])<<11 | uint32(oMatch6[cg][1])<<5 | uint32(oMatch5[cb][1])
		if max16 < min16 {
			max16, min16 = min16, max16
			mask ^= 0x55
		}

		dst.SetLowColor(uint16(max16))
		dst.SetHighColor(uint16(min16))
		dst.Selectors = [4]uint8{mask, mask, mask, mask}
		return
	}

	rangeIndex := uint32(dxt1RangeIndex[lowSelector][highSelector])
	const perComp = uint32(len(dxt1SelectorRanges)) * numDXT1SelectorMappings
	tableR := dxt1Solutions5[(intenTable*32+r)*perComp+rangeIndex*numDXT1SelectorMappings:]
	tableG := dxt1Solutions6[(intenTable*32+g)*perComp+rangeIndex*numDXT1SelectorMappings:]
	tableB := dxt1Solutions5[(intenTable*32+b)*perComp+rangeIndex*numDXT1SelectorMappings:]

	bestErr := ^uint32(0)
	bestMapping := 0
	for m := 0; m < numDXT1SelectorMappings; m++ {
		totalErr := uint32(tableR[m].err) + uint32(tableG[m].err) + uint32(tableB[m].err)
		if totalErr < bestErr {
			bestErr = totalErr
			bestMapping = m
		}
	}

	l := uint32(dxt.PackColor565(uint32(tableR[bestMapping].lo), uint32(tableG[bestMapping].lo), uint32(tableB[bestMapping].lo)))
	h := uint32(dxt.PackColor565(uint32(tableR[bestMapping].hi), uint32(tableG[bestMapping].hi), uint32(tableB[bestMapping].hi)))

	selectorsXlat := &dxt1Mappings1[bestMapping]
	if l < h {
		l, h = h, l
		selectorsXlat = &dxt1Mappings2[bestMapping]
	}

	dst.SetLowColor(uint16(l))
	dst.SetHighColor(uint16(h))

	if l == h {
		dst.Selectors = [4]uint8{}
		return
	}

	var sels [4]uint32
	for x := uint32(0); x < 4; x++ {
		byteOfs := 7 - x*4>>3
		shift := (x & 1) * 4
		lsbBits := src[byteOfs] >> shift
		msbBits := src[byteOfs-2] >> shift
		lookup := uint32(lsbBits&0xF) | uint32(msbBits&0xF)<<4
		xShift := x * 2
		sels[0] |= uint32(selectorsXlat[xSelectorUnpack[0][lookup]]) << xShift
		sels[1] |= uint32(selectorsXlat[xSelectorUnpack[1][lookup]]) << xShift
		sels[2] |= uint32(selectorsXlat[xSelectorUnpack[2][lookup]]) << xShift
		sels[3] |= uint32(selectorsXlat[xSelectorUnpack[3][lookup]]) << xShift
	}
	dst.Selectors = [4]uint8{uint8(sels[0]), uint8(sels[1]), uint8(sels[2]), uint8(sels[3])}
}

// ConvertToDXT5A rewrites an ETC1S block's green ramp as a DXT5A alpha
// block.
func ConvertToDXT5A(dst *dxt.Block5A, src *Block) {
	convTablesOnce.Do(initConvTables)

	lowSelector, highSelector, unique := selectorStats(src)

	r, g, b := src.BaseColor5()
	intenTable := src.IntenTable(0)

	if lowSelector == highSelector {
		colors := BlockColors5(r, g, b, intenTable)
		cg := colors[lowSelector][1]
		dst.SetLowAlpha(cg)
		dst.SetHighAlpha(cg)
		dst.Selectors = [6]uint8{}
		return
	}
	if unique == 2 {
		colors := BlockColors5(r, g, b, intenTable)
		dst.SetLowAlpha(colors[lowSelector][1])
		dst.SetHighAlpha(colors[highSelector][1])
		dst.Selectors = [6]uint8{}
		for y := uint32(0); y < 4; y++ {
			for x := uint32(0); x < 4; x++ {
				s := uint32(etc1ToLinearSelector[src.RawSelector(x, y)])
				if s == highSelector {
					dst.SetSelector(x, y, 1)
				}
			}
		}
		return
	}

	rangeIndex := 0
	for i, sr := range dxt5aSelectorRanges {
		if lowSelector == sr.low && highSelector == sr.high {
			rangeIndex = i
			break
		}
	}

	conv := &greenToDXT5A[g+intenTable*32][rangeIndex]
	dst.SetLowAlpha(uint32(conv.lo))
	dst.SetHighAlpha(uint32(conv.hi))

	dst.Selectors = [6]uint8{}
	for y := uint32(0); y < 4; y++ {
		for x := uint32(0); x < 4; x++ {
			s := uint32(etc1ToLinearSelector[src.RawSelector(x, y)])
			dst.SetSelector(x, y, uint32(conv.trans>>(s*3))&7)
		}
	}
}
