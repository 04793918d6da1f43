package nds

import (
	"errors"
	"fmt"
	"go/token"
	"sort"

	"dsio/hardware/volatile"
)

// reserved identifiers are declared by the generated core packages themselves.
var reserved = map[string]bool{"Lookup": true, "Names": true}

type element struct {
	row    int
	addr   uintptr
	size   uintptr
	access Access
}

func (e element) end() uintptr { return e.addr + e.size }

// Validate reports every problem with regs at once. A nil result means the
// table is safe to generate handles from.
func Validate(regs []Register) error {
	var errs []error
	names := map[string]int{}
	idents := map[string]int{}
	for i, r := range regs {
		bad := func(format string, args ...any) {
			errs = append(errs, fmt.Errorf("%s: "+format, append([]any{r.Name}, args...)...))
		}
		if r.Name == "" {
			errs = append(errs, fmt.Errorf("row %d at %#08x has no name", i, r.Addr))
		}
		if j, dup := names[r.Name]; dup {
			bad("duplicate name (also row %d)", j)
		}
		names[r.Name] = i
		switch {
		case !token.IsIdentifier(r.Ident) || !token.IsExported(r.Ident):
			bad("identifier %q is not an exported Go identifier", r.Ident)
		case reserved[r.Ident]:
			bad("identifier %q is reserved", r.Ident)
		}
		if j, dup := idents[r.Ident]; dup {
			bad("duplicate identifier %s (also row %d)", r.Ident, j)
		}
		idents[r.Ident] = i
		switch r.Width {
		case 8, 16, 32:
		default:
			bad("width %d is not 8, 16 or 32", r.Width)
			continue
		}
		if !volatile.Aligned(r.Addr, r.Size()) {
			bad("address %#08x is not aligned to %d bytes", r.Addr, r.Size())
		}
		if r.Count < 0 {
			bad("negative count %d", r.Count)
			continue
		}
		if r.Stride != 0 {
			if !r.IsBlock() {
				bad("stride %#x on a plain register", r.Stride)
			}
			if r.Stride < r.Size() {
				bad("stride %#x is smaller than the element size %d", r.Stride, r.Size())
			} else if !volatile.Aligned(r.Stride, r.Size()) {
				bad("stride %#x is not a multiple of the element size %d", r.Stride, r.Size())
			}
		}
		if !r.VisibleTo(ARM9) && !r.VisibleTo(ARM7) {
			bad("no core can access it")
		}
	}
	if len(errs) == 0 {
		for _, c := range Cores {
			errs = append(errs, overlaps(regs, c)...)
		}
	}
	return errors.Join(errs...)
}

// overlaps checks that rows visible to c only share bytes element for element:
// same start, same width, same access.
func overlaps(regs []Register, c Core) []error {
	var elems []element
	for i, r := range regs {
		a := r.Policy.For(c)
		if a == NoAccess {
			continue
		}
		for k := 0; k < r.Len(); k++ {
			elems = append(elems, element{row: i, addr: r.At(k), size: r.Size(), access: a})
		}
	}
	sort.SliceStable(elems, func(i, j int) bool { return elems[i].addr < elems[j].addr })

	var errs []error
	reported := map[[2]int]bool{}
	for i := 1; i < len(elems); i++ {
		// no element is wider than a word
		for j := i - 1; j >= 0 && elems[i].addr-elems[j].addr < 4; j-- {
			a, b := elems[j], elems[i]
			if a.row == b.row || a.end() <= b.addr {
				continue
			}
			key := [2]int{a.row, b.row}
			if reported[key] {
				continue
			}
			var why string
			switch {
			case a.addr != b.addr || a.size != b.size:
				why = "element boundaries differ"
			case a.access != b.access:
				why = fmt.Sprintf("access differs (%s and %s)", a.access, b.access)
			default:
				continue
			}
			reported[key] = true
			errs = append(errs, fmt.Errorf("%s: %s overlaps %s at %#08x: %s",
				c, regs[a.row].Name, regs[b.row].Name, b.addr, why))
		}
	}
	return errs
}
