//go:build !tinygo

package volatile

import (
	"sync/atomic"
	"unsafe"
)

// On the gc toolchain 32 bit accesses go through sync/atomic, which the
// compiler never merges or drops. There is no 8 or 16 bit atomic, so the
// narrow accesses are plain dereferences kept out of line so each call is
// one load or store.
type hardware struct{}

//go:noinline
func (hardware) Load8(addr uintptr) uint8 {
	return *(*uint8)(unsafe.Pointer(addr))
}

//go:noinline
func (hardware) Load16(addr uintptr) uint16 {
	return *(*uint16)(unsafe.Pointer(addr))
}

func (hardware) Load32(addr uintptr) uint32 {
	return atomic.LoadUint32((*uint32)(unsafe.Pointer(addr)))
}

//go:noinline
func (hardware) Store8(addr uintptr, v uint8) {
	*(*uint8)(unsafe.Pointer(addr)) = v
}

//go:noinline
func (hardware) Store16(addr uintptr, v uint16) {
	*(*uint16)(unsafe.Pointer(addr)) = v
}

func (hardware) Store32(addr uintptr, v uint32) {
	atomic.StoreUint32((*uint32)(unsafe.Pointer(addr)), v)
}
