package dat

// FoldMap maps BMP code units (0..65535) to replacement code units used for
// case-insensitive matching. It's a two-level page table:
//   - Top[hi] = page index (1..NumPages), or 0 meaning "page absent".
//   - Pages is a flat array of NumPages*256 entries.
//
// An entry of 0 means "no replacement", i.e. the code unit maps to itself.
// Lookup is O(1) with two array reads and a couple of ops.
//
// A nil *FoldMap is valid and maps every code unit to itself.
type FoldMap struct {
	Top   [256]uint16 // page index (1-based); 0 means none
	Pages []uint16    // flat: NumPages*256
}

var asciiFold = ASCIIFold()

// ASCIIFold returns a map folding 'A'..'Z' to 'a'..'z'.
func ASCIIFold() *FoldMap {
	m := &FoldMap{}
	for c := uint16('A'); c <= 'Z'; c++ {
		m.Set(c, c+('a'-'A'))
	}
	return m
}

// Fold returns the replacement for a code unit, or the code unit itself.
func (m *FoldMap) Fold(cu uint16) uint16 {
	if m == nil {
		return cu
	}
	pi := m.Top[cu>>8]
	if pi == 0 {
		return cu
	}
	base := int(pi-1) << 8 // *256
	if r := m.Pages[base+int(cu&0xFF)]; r != 0 {
		return r
	}
	return cu
}

// FoldAll folds every code unit of s in place and returns s.
func (m *FoldMap) FoldAll(s []uint16) []uint16 {
	for i, cu := range s {
		s[i] = m.Fold(cu)
	}
	return s
}

// NumPages returns the number of allocated pages.
func (m *FoldMap) NumPages() int { return len(m.Pages) >> 8 }

// ensurePage ensures that the page for high byte hi exists.
// Returns the 1-based page index.
func (m *FoldMap) ensurePage(hi uint16) uint16 {
	pi := m.Top[hi]
	if pi != 0 {
		return pi
	}
	// allocate a new page (256 uint16 initialized to 0)
	m.Pages = append(m.Pages, make([]uint16, 256)...)
	pi = uint16(len(m.Pages) >> 8) // number of pages, 1-based index
	m.Top[hi] = pi
	return pi
}

// Set sets mapping cu -> to (to may be 0 to clear).
func (m *FoldMap) Set(cu uint16, to uint16) {
	hi := cu >> 8
	pi := m.Top[hi]
	if pi == 0 {
		if to == 0 {
			return
		}
		pi = m.ensurePage(hi)
	}
	base := int(pi-1) << 8
	m.Pages[base+int(cu&0xFF)] = to
}
