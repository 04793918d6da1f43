package volatile

import (
	"fmt"
	"iter"
)

// handle is satisfied by ReadOnly, WriteOnly and ReadWrite, and only by them.
type handle[H any] interface {
	Handle
	bus() Bus
	at(b Bus, addr uintptr) H
}

// Block is a run of same-typed registers at a fixed stride. H is the
// element handle type, so every element inherits the block's capability.
type Block[H handle[H]] struct {
	base   H
	n      int
	stride uintptr
}

// NewBlock declares count registers packed back to back at addr.
func NewBlock[H handle[H]](addr uintptr, count int) Block[H] {
	var h H
	return NewSeries[H](addr, count, h.Size())
}

// NewSeries declares count registers starting at addr, stride bytes apart.
// It panics if count is not positive or the stride is not a whole number of
// elements.
func NewSeries[H handle[H]](addr uintptr, count int, stride uintptr) Block[H] {
	var h H
	if count < 1 {
		panic(fmt.Sprintf("volatile: block at %#08x has count %d", addr, count))
	}
	if stride < h.Size() {
		panic(fmt.Sprintf("volatile: block at %#08x has stride %d < element size %d",
			addr, stride, h.Size()))
	}
	if !Aligned(stride, h.Size()) {
		panic(fmt.Sprintf("volatile: block at %#08x has stride %d, not a multiple of element size %d",
			addr, stride, h.Size()))
	}
	return Block[H]{base: h.at(hardware{}, addr), n: count, stride: stride}
}

func (b Block[H]) Addr() uintptr   { return b.base.Addr() }
func (b Block[H]) Size() uintptr   { return b.base.Size() }
func (b Block[H]) Len() int        { return b.n }
func (b Block[H]) Stride() uintptr { return b.stride }

// Index returns element i, at Addr()+i*Stride(). Touching a register outside
// the block would hit unrelated hardware, so an out of range i panics.
func (b Block[H]) Index(i int) H {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("volatile: index %d out of range [0:%d] for block at %#08x",
			i, b.n, b.base.Addr()))
	}
	return b.base.at(b.base.bus(), b.base.Addr()+uintptr(i)*b.stride)
}

// All yields every element in index order.
func (b Block[H]) All() iter.Seq2[int, H] {
	return func(yield func(int, H) bool) {
		for i := 0; i < b.n; i++ {
			if !yield(i, b.Index(i)) {
				return
			}
		}
	}
}

// On returns the same block on bus bus.
func (b Block[H]) On(bus Bus) Block[H] {
	b.base = b.base.at(bus, b.base.Addr())
	return b
}

func (b Block[H]) Elem(i int) Handle   { return b.Index(i) }
func (b Block[H]) bind(bus Bus) Handle { return b.On(bus) }
