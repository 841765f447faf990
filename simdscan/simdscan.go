// Package simdscan finds the next delimiter byte in a buffered window
// using a byte-class membership table, the scan at the heart of the
// lexer's segmentation loop (spec.md §4.5).
//
// coregx's simd package (memchr_class_amd64.go) does this with hand-written
// AVX2 assembly behind golang.org/x/sys/cpu feature detection, processing
// 32 bytes per instruction on capable hardware. The assembly itself isn't
// something this module can faithfully reproduce — a correct AVX2 memchr
// is hundreds of lines of position-independent asm, not a pattern to
// extrapolate from a single Go-level call site — so this package is a
// pure-Go equivalent: a 256-byte lookup table plus an 8- or 4-byte
// unrolled scan, still gated by the same runtime feature check coregx
// uses, to size the unroll factor rather than to dispatch to vector
// instructions that don't exist here. See DESIGN.md for the full account
// of this divergence.
package simdscan

import "golang.org/x/sys/cpu"

// ByteClass is a precomputed 256-byte membership table. Each lexer builds
// its own from the schema's delimiter set when it is created.
type ByteClass struct {
	table [256]bool
}

// NewByteClass builds a ByteClass containing exactly the given bytes.
func NewByteClass(members []byte) *ByteClass {
	c := &ByteClass{}
	for _, b := range members {
		c.table[b] = true
	}
	return c
}

// Contains reports whether b is a member of the class.
func (c *ByteClass) Contains(b byte) bool {
	return c.table[b]
}

// unrollWidth is wider on hardware advertising AVX2, on the theory that
// such hardware also has the wider load/store paths and branch predictor
// depth that make aggressive unrolling pay off; it does not mean this
// loop issues any AVX2 instruction.
var unrollWidth = func() int {
	if cpu.X86.HasAVX2 {
		return 8
	}
	return 4
}()

// FindDelimiter returns the index of the first byte in haystack that is a
// member of class, or -1 if none is.
func FindDelimiter(haystack []byte, class *ByteClass) int {
	n := len(haystack)
	i := 0
	w := unrollWidth
	for ; i+w <= n; i += w {
		for j := 0; j < w; j++ {
			if class.table[haystack[i+j]] {
				return i + j
			}
		}
	}
	for ; i < n; i++ {
		if class.table[haystack[i]] {
			return i
		}
	}
	return -1
}
