// Package nds is the register table of the dual-core DS handheld: every MMIO
// register's address, width, block geometry and what each core may do with
// it. The table is data; the per-core handle packages arm9 and arm7 are
// generated from it by tools/regdec.
package nds

import (
	"fmt"
	"sort"
	"strings"
)

// Core is one of the two processors sharing the address space.
type Core uint8

const (
	ARM9 Core = iota
	ARM7
)

// Cores lists both cores in a fixed order.
var Cores = [...]Core{ARM9, ARM7}

// String returns the lower case core name used by the tools.
func (c Core) String() string {
	switch c {
	case ARM9:
		return "arm9"
	case ARM7:
		return "arm7"
	}
	return fmt.Sprintf("core(%d)", uint8(c))
}

// ParseCore accepts arm9, arm7, 9 or 7 in any case.
func ParseCore(s string) (Core, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "arm9", "9":
		return ARM9, nil
	case "arm7", "7":
		return ARM7, nil
	}
	return 0, fmt.Errorf("unknown core %q (want arm9 or arm7)", s)
}

// Access is what one core may do with a register.
type Access uint8

const (
	NoAccess  Access = 0
	Read      Access = 1 << 0
	Write     Access = 1 << 1
	ReadWrite        = Read | Write
)

// CanRead reports whether a permits loads.
func (a Access) CanRead() bool { return a&Read != 0 }

// CanWrite reports whether a permits stores.
func (a Access) CanWrite() bool { return a&Write != 0 }

func (a Access) String() string {
	switch a {
	case NoAccess:
		return "-"
	case Read:
		return "r"
	case Write:
		return "w"
	case ReadWrite:
		return "rw"
	}
	return fmt.Sprintf("access(%d)", uint8(a))
}

// ParseAccess understands "", "-", "r", "w" and "rw".
func ParseAccess(s string) (Access, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "-":
		return NoAccess, nil
	case "r":
		return Read, nil
	case "w":
		return Write, nil
	case "rw":
		return ReadWrite, nil
	}
	return NoAccess, fmt.Errorf("unable to understand access value %q", s)
}

// Policy is the pair of per-core capabilities attached to a register.
type Policy struct {
	ARM9, ARM7 Access
}

// For returns the capability core c has.
func (p Policy) For(c Core) Access {
	if c == ARM7 {
		return p.ARM7
	}
	return p.ARM9
}

func (p Policy) String() string {
	return fmt.Sprintf("arm9=%s arm7=%s", p.ARM9, p.ARM7)
}

// Register is one row of the table.
type Register struct {
	Name        string  // datasheet mnemonic, e.g. KEYINPUT
	Ident       string  // exported Go identifier in the core packages
	Addr        uintptr // physical address of element 0
	Width       int     // element width in bits: 8, 16 or 32
	Policy      Policy
	Count       int     // number of elements; 0 for a plain register
	Stride      uintptr // bytes between elements; only for blocks
	Description string
	Section     string // reference documentation
	Note        string // hardware compatibility exceptions
}

// Size is the element size in bytes.
func (r Register) Size() uintptr { return uintptr(r.Width / 8) }

func (r Register) IsBlock() bool { return r.Count > 0 }

// Len is the element count, 1 for a plain register.
func (r Register) Len() int {
	if r.Count == 0 {
		return 1
	}
	return r.Count
}

func (r Register) stride() uintptr {
	if r.Stride == 0 {
		return r.Size()
	}
	return r.Stride
}

// At is the address of element i. Like Block.Index it panics out of range.
func (r Register) At(i int) uintptr {
	if i < 0 || i >= r.Len() {
		panic(fmt.Sprintf("nds: %s index %d out of range [0:%d]", r.Name, i, r.Len()))
	}
	return r.Addr + uintptr(i)*r.stride()
}

// End is one past the last byte the register covers.
func (r Register) End() uintptr {
	return r.At(r.Len()-1) + r.Size()
}

func (r Register) VisibleTo(c Core) bool {
	return r.Policy.For(c) != NoAccess
}

func (r Register) String() string {
	geo := ""
	if r.IsBlock() {
		geo = fmt.Sprintf("[%d/%#x]", r.Count, r.stride())
	}
	return fmt.Sprintf("%#08x %-24s u%-2d %s", r.Addr, r.Name+geo, r.Width, r.Policy)
}

// Registers returns a copy of the table sorted by address, then name.
func Registers() []Register {
	out := make([]Register, len(table))
	copy(out, table)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Addr != out[j].Addr {
			return out[i].Addr < out[j].Addr
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Lookup finds a register by datasheet name, case insensitively.
func Lookup(name string) (Register, bool) {
	for _, r := range table {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return Register{}, false
}

// ForCore returns the rows c may touch, in Registers order.
func ForCore(c Core) []Register {
	var out []Register
	for _, r := range Registers() {
		if r.VisibleTo(c) {
			out = append(out, r)
		}
	}
	return out
}
