//go:build tinygo

package volatile

import (
	"runtime/volatile"
	"unsafe"
)

// hardware uses tinygo's volatile intrinsics, which lower to volatile
// loads and stores of exactly the requested width.
type hardware struct{}

func (hardware) Load8(addr uintptr) uint8 {
	return volatile.LoadUint8((*uint8)(unsafe.Pointer(addr)))
}

func (hardware) Load16(addr uintptr) uint16 {
	return volatile.LoadUint16((*uint16)(unsafe.Pointer(addr)))
}

func (hardware) Load32(addr uintptr) uint32 {
	return volatile.LoadUint32((*uint32)(unsafe.Pointer(addr)))
}

func (hardware) Store8(addr uintptr, v uint8) {
	volatile.StoreUint8((*uint8)(unsafe.Pointer(addr)), v)
}

func (hardware) Store16(addr uintptr, v uint16) {
	volatile.StoreUint16((*uint16)(unsafe.Pointer(addr)), v)
}

func (hardware) Store32(addr uintptr, v uint32) {
	volatile.StoreUint32((*uint32)(unsafe.Pointer(addr)), v)
}
