// Package volatile gives typed, access-controlled handles onto memory mapped
// registers.
//
// A handle pairs a fixed physical address with an element width and a
// capability. The capability is the handle's type: ReadOnly has no Write
// method, WriteOnly has no Read method, so a policy violation does not build.
// Every Read and Write is exactly one bus transaction; nothing is cached,
// merged or reordered by this package.
//
// Constructing a handle is the only unchecked step. NewReadOnly and friends
// take the caller's word that the address is aligned for the element type,
// that no other handle aliases it with a different width, and that the
// capability matches the datasheet. After that the handle is an ordinary value
// that can be copied and passed around freely.
package volatile

import (
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Word is the set of register element types.
type Word interface {
	~uint8 | ~uint16 | ~uint32
}

// Bus performs single volatile loads and stores. Hardware() talks to the
// physical address space; Sparse is a memory backed stand-in.
type Bus interface {
	Load8(addr uintptr) uint8
	Load16(addr uintptr) uint16
	Load32(addr uintptr) uint32
	Store8(addr uintptr, v uint8)
	Store16(addr uintptr, v uint16)
	Store32(addr uintptr, v uint32)
}

// Hardware returns the bus that dereferences physical addresses directly.
// Handles are bound to it when constructed.
func Hardware() Bus {
	return hardware{}
}

// Handle is the dynamic view of any register handle.
type Handle interface {
	Addr() uintptr
	Size() uintptr
}

// Peeker is implemented by readable handles only.
type Peeker interface {
	Handle
	Peek() uint32
}

// Poker is implemented by writable handles only. Poke panics if v does not
// fit in Size() bytes rather than dropping the high bits.
type Poker interface {
	Handle
	Poke(v uint32)
}

// Indexed is implemented by blocks.
type Indexed interface {
	Handle
	Len() int
	Stride() uintptr
	Elem(i int) Handle
}

type binder interface {
	bind(b Bus) Handle
}

// Rebind returns h bound to b. The address and capability are unchanged. h
// must be a handle or block made by this package; anything else panics.
func Rebind(h Handle, b Bus) Handle {
	hb, ok := h.(binder)
	if !ok {
		panic(fmt.Sprintf("volatile: cannot rebind %T at %#08x, not a handle from this package", h, h.Addr()))
	}
	return hb.bind(b)
}

// Aligned reports whether v is a multiple of n. Nothing is aligned to zero.
func Aligned[T constraints.Unsigned](v, n T) bool {
	return n != 0 && v%n == 0
}

// narrow converts a dynamic value to the element type, panicking when bits
// would be lost.
func narrow[T Word](addr uintptr, v uint32) T {
	if t := T(v); uint32(t) != v {
		panic(fmt.Sprintf("volatile: value %#x does not fit the %d bit register at %#08x",
			v, 8*sizeOf[T](), addr))
	}
	return T(v)
}

// cell is the address+bus pair behind every scalar handle.
type cell[T Word] struct {
	bus  Bus
	addr uintptr
}

func sizeOf[T Word]() uintptr {
	var v T
	return unsafe.Sizeof(v)
}

func (c cell[T]) load() T {
	switch sizeOf[T]() {
	case 1:
		return T(c.bus.Load8(c.addr))
	case 2:
		return T(c.bus.Load16(c.addr))
	default:
		return T(c.bus.Load32(c.addr))
	}
}

func (c cell[T]) store(v T) {
	switch sizeOf[T]() {
	case 1:
		c.bus.Store8(c.addr, uint8(v))
	case 2:
		c.bus.Store16(c.addr, uint16(v))
	default:
		c.bus.Store32(c.addr, uint32(v))
	}
}
