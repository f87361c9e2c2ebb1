package prefix

// DataModel is a static Huffman model: a code-size per symbol plus the
// prepared decode tables. A model decoded from an empty stream section
// (zero used symbols) stays empty; decoding through it is an error.
type DataModel struct {
	codeSizes []uint8
	tables    *decoderTables
}

// Valid reports whether the model has prepared decode tables.
func (m *DataModel) Valid() bool { return m.tables != nil }

// TotalSyms returns the alphabet size.
func (m *DataModel) TotalSyms() uint32 { return uint32(len(m.codeSizes)) }

// CodeSize returns the code length assigned to sym (0 = unused).
func (m *DataModel) CodeSize(sym uint32) uint8 { return m.codeSizes[sym] }

// Clear resets the model to the empty state.
func (m *DataModel) Clear() {
	m.codeSizes = nil
	m.tables = nil
}

// Init builds the model from an explicit code-size vector.
func (m *DataModel) Init(codeSizes []uint8) error {
	totalSyms := uint32(len(codeSizes))
	if totalSyms < 1 || totalSyms > MaxSupportedSyms {
		return ErrInvalidModel
	}

	m.codeSizes = append(m.codeSizes[:0], codeSizes...)

	maxCodeSize := uint32(0)
	minCodeSize := uint32(0xFFFFFFFF)
	for _, s := range codeSizes {
		if uint32(s) < minCodeSize {
			minCodeSize = uint32(s)
		}
		if uint32(s) > maxCodeSize {
			maxCodeSize = uint32(s)
		}
	}
	if maxCodeSize < 1 || maxCodeSize > MaxExpectedCodeSize || minCodeSize > MaxExpectedCodeSize {
		return ErrInvalidModel
	}

	return m.prepareTables()
}

func (m *DataModel) prepareTables() error {
	if m.tables == nil {
		m.tables = new(decoderTables)
	}
	return m.tables.init(uint32(len(m.codeSizes)), m.codeSizes, m.computeTableBits())
}

// computeTableBits sizes the direct-lookup table: alphabets of 16 or
// fewer symbols skip it entirely and always linear-search.
func (m *DataModel) computeTableBits() uint32 {
	n := uint32(len(m.codeSizes))
	if n <= 16 {
		return 0
	}
	bits := 1 + ceilLog2(n)
	if bits > MaxTableBits {
		bits = MaxTableBits
	}
	return bits
}

func ceilLog2(v uint32) uint32 {
	l := uint32(0)
	for v > 1 {
		v = (v + 1) >> 1
		l++
	}
	return l
}
