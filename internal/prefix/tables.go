// Package prefix implements the canonical-Huffman symbol codec used by
// crunched texture streams: decode tables with a direct-lookup fast path,
// a static per-stream data model, and the run-length meta-code that
// transports code-length vectors inside the bitstream.
package prefix

import "errors"

const (
	// MaxExpectedCodeSize is the longest supported prefix code, in bits.
	MaxExpectedCodeSize = 16
	// MaxSupportedSyms bounds the alphabet size of any data model.
	MaxSupportedSyms = 8192
	// MaxTableBits caps the direct-lookup table at 2^11 entries.
	MaxTableBits = 11
)

var (
	ErrInvalidModel = errors.New("prefix: invalid code length vector")
	ErrCorrupt      = errors.New("prefix: corrupted stream")
)

// decoderTables holds the canonical decode structures built from a
// code-length vector. Codes are assigned in increasing length, then in
// increasing symbol index within a length.
//
// maxCodes[l-1] stores 1 + the largest code of length l, left-justified
// to 16 bits with its low bits saturated. The decode loop compares the
// register's top 16 bits (+1) against these sentinels, which turns the
// per-length range test into a single unsigned compare.
type decoderTables struct {
	numSyms             uint32
	totalUsedSyms       uint32
	tableBits           uint32
	tableShift          uint32
	tableMaxCode        uint32
	decodeStartCodeSize uint32

	minCodeSize uint8
	maxCodeSize uint8

	maxCodes [MaxExpectedCodeSize + 1]uint32
	valPtrs  [MaxExpectedCodeSize + 1]int32

	lookup            []uint32 // packed symbol | codeSize<<16, or lookupVacant
	sortedSymbolOrder []uint16
}

const lookupVacant = 0xFFFFFFFF

func (t *decoderTables) init(numSyms uint32, codeSizes []uint8, tableBits uint32) error {
	if numSyms == 0 || tableBits > MaxTableBits {
		return ErrInvalidModel
	}
	t.numSyms = numSyms

	var numCodes [MaxExpectedCodeSize + 1]uint32
	for i := uint32(0); i < numSyms; i++ {
		if c := codeSizes[i]; c != 0 {
			numCodes[c]++
		}
	}

	var minCodes [MaxExpectedCodeSize]uint32
	var sortedPositions [MaxExpectedCodeSize + 1]uint32

	curCode := uint32(0)
	totalUsedSyms := uint32(0)
	maxCodeSize := uint32(0)
	minCodeSize := uint32(0xFFFFFFFF)
	for i := uint32(1); i <= MaxExpectedCodeSize; i++ {
		n := numCodes[i]
		if n == 0 {
			t.maxCodes[i-1] = 0
		} else {
			if i < minCodeSize {
				minCodeSize = i
			}
			if i > maxCodeSize {
				maxCodeSize = i
			}
			minCodes[i-1] = curCode

			last := curCode + n - 1
			if last >= 1<<i {
				return ErrInvalidModel // oversubscribed code space
			}
			t.maxCodes[i-1] = 1 + (last<<(16-i) | (1<<(16-i) - 1))
			t.valPtrs[i-1] = int32(totalUsedSyms)
			sortedPositions[i] = totalUsedSyms

			curCode += n
			totalUsedSyms += n
		}
		curCode <<= 1
	}

	if totalUsedSyms == 0 {
		return ErrInvalidModel
	}
	t.totalUsedSyms = totalUsedSyms
	if uint32(len(t.sortedSymbolOrder)) < totalUsedSyms {
		t.sortedSymbolOrder = make([]uint16, totalUsedSyms)
	}

	t.minCodeSize = uint8(minCodeSize)
	t.maxCodeSize = uint8(maxCodeSize)

	for i := uint32(0); i < numSyms; i++ {
		if c := codeSizes[i]; c != 0 {
			t.sortedSymbolOrder[sortedPositions[c]] = uint16(i)
			sortedPositions[c]++
		}
	}

	if tableBits <= uint32(t.minCodeSize) {
		tableBits = 0
	}
	t.tableBits = tableBits

	if tableBits != 0 {
		tableSize := uint32(1) << tableBits
		if uint32(len(t.lookup)) < tableSize {
			t.lookup = make([]uint32, tableSize)
		}
		for i := range t.lookup[:tableSize] {
			t.lookup[i] = lookupVacant
		}

		for codeSize := uint32(1); codeSize <= tableBits; codeSize++ {
			if numCodes[codeSize] == 0 {
				continue
			}
			fillSize := tableBits - codeSize
			fillNum := uint32(1) << fillSize

			minCode := minCodes[codeSize-1]
			maxCode := t.unshiftedMaxCode(codeSize)
			valPtr := uint32(t.valPtrs[codeSize-1])

			for code := minCode; code <= maxCode; code++ {
				symIndex := uint32(t.sortedSymbolOrder[valPtr+code-minCode])
				for j := uint32(0); j < fillNum; j++ {
					t.lookup[j+code<<fillSize] = symIndex | codeSize<<16
				}
			}
		}
	}

	for i := 0; i < MaxExpectedCodeSize; i++ {
		t.valPtrs[i] -= int32(minCodes[i])
	}

	t.tableMaxCode = 0
	t.decodeStartCodeSize = uint32(t.minCodeSize)

	if tableBits != 0 {
		i := tableBits
		for ; i >= 1; i-- {
			if numCodes[i] != 0 {
				t.tableMaxCode = t.maxCodes[i-1]
				break
			}
		}
		if i >= 1 {
			t.decodeStartCodeSize = tableBits + 1
			for j := tableBits + 1; j <= maxCodeSize; j++ {
				if numCodes[j] != 0 {
					t.decodeStartCodeSize = j
					break
				}
			}
		}
	}

	// Sentinels so the decode loop always terminates.
	t.maxCodes[MaxExpectedCodeSize] = 0xFFFFFFFF
	t.valPtrs[MaxExpectedCodeSize] = 0xFFFFF

	t.tableShift = 32 - t.tableBits
	return nil
}

// unshiftedMaxCode recovers the last code of the given length from the
// left-justified sentinel.
func (t *decoderTables) unshiftedMaxCode(length uint32) uint32 {
	k := t.maxCodes[length-1]
	if k == 0 {
		return 0xFFFFFFFF
	}
	return (k - 1) >> (16 - length)
}
