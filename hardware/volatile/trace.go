package volatile

import "dsio/lib/trust"

type traced struct {
	bus  Bus
	name string
	log  *trust.Logger
}

// Trace wraps b so every access is logged at debug level under name. The
// access itself is forwarded unchanged, one call per call.
func Trace(b Bus, name string, log *trust.Logger) Bus {
	return &traced{bus: b, name: name, log: log}
}

func (t *traced) Load8(addr uintptr) uint8 {
	v := t.bus.Load8(addr)
	t.log.Debugf("%s load8  %#08x -> %#02x", t.name, addr, v)
	return v
}

func (t *traced) Load16(addr uintptr) uint16 {
	v := t.bus.Load16(addr)
	t.log.Debugf("%s load16 %#08x -> %#04x", t.name, addr, v)
	return v
}

func (t *traced) Load32(addr uintptr) uint32 {
	v := t.bus.Load32(addr)
	t.log.Debugf("%s load32 %#08x -> %#08x", t.name, addr, v)
	return v
}

func (t *traced) Store8(addr uintptr, v uint8) {
	t.log.Debugf("%s store8  %#08x <- %#02x", t.name, addr, v)
	t.bus.Store8(addr, v)
}

func (t *traced) Store16(addr uintptr, v uint16) {
	t.log.Debugf("%s store16 %#08x <- %#04x", t.name, addr, v)
	t.bus.Store16(addr, v)
}

func (t *traced) Store32(addr uintptr, v uint32) {
	t.log.Debugf("%s store32 %#08x <- %#08x", t.name, addr, v)
	t.bus.Store32(addr, v)
}
