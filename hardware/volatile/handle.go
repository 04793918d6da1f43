package volatile

// ReadOnly is a register this core may only read.
type ReadOnly[T Word] struct {
	c cell[T]
}

// WriteOnly is a register this core may only write.
type WriteOnly[T Word] struct {
	c cell[T]
}

// ReadWrite is a register this core may read and write.
type ReadWrite[T Word] struct {
	c cell[T]
}

// NewReadOnly declares a read-only register at addr. See the package comment
// for what the caller is promising.
func NewReadOnly[T Word](addr uintptr) ReadOnly[T] {
	return ReadOnly[T]{cell[T]{hardware{}, addr}}
}

// NewWriteOnly declares a write-only register at addr.
func NewWriteOnly[T Word](addr uintptr) WriteOnly[T] {
	return WriteOnly[T]{cell[T]{hardware{}, addr}}
}

// NewReadWrite declares a read/write register at addr.
func NewReadWrite[T Word](addr uintptr) ReadWrite[T] {
	return ReadWrite[T]{cell[T]{hardware{}, addr}}
}

func (r ReadOnly[T]) Addr() uintptr { return r.c.addr }
func (r ReadOnly[T]) Size() uintptr { return sizeOf[T]() }

// Read performs one volatile load. Some registers change state when read.
func (r ReadOnly[T]) Read() T { return r.c.load() }

// On returns the same register on bus b.
func (r ReadOnly[T]) On(b Bus) ReadOnly[T] { return ReadOnly[T]{cell[T]{b, r.c.addr}} }

func (r ReadOnly[T]) Peek() uint32 { return uint32(r.c.load()) }

func (r ReadOnly[T]) bus() Bus                           { return r.c.bus }
func (r ReadOnly[T]) at(b Bus, addr uintptr) ReadOnly[T] { return ReadOnly[T]{cell[T]{b, addr}} }
func (r ReadOnly[T]) bind(b Bus) Handle                  { return r.On(b) }

func (w WriteOnly[T]) Addr() uintptr { return w.c.addr }
func (w WriteOnly[T]) Size() uintptr { return sizeOf[T]() }

// Write performs one volatile store of v. No other bits are preserved.
func (w WriteOnly[T]) Write(v T) { w.c.store(v) }

// On returns the same register on bus b.
func (w WriteOnly[T]) On(b Bus) WriteOnly[T] { return WriteOnly[T]{cell[T]{b, w.c.addr}} }

func (w WriteOnly[T]) Poke(v uint32) { w.c.store(narrow[T](w.c.addr, v)) }

func (w WriteOnly[T]) bus() Bus                            { return w.c.bus }
func (w WriteOnly[T]) at(b Bus, addr uintptr) WriteOnly[T] { return WriteOnly[T]{cell[T]{b, addr}} }
func (w WriteOnly[T]) bind(b Bus) Handle                   { return w.On(b) }

func (rw ReadWrite[T]) Addr() uintptr { return rw.c.addr }
func (rw ReadWrite[T]) Size() uintptr { return sizeOf[T]() }

// Read performs one volatile load.
func (rw ReadWrite[T]) Read() T { return rw.c.load() }

// Write performs one volatile store. Callers wanting to keep other bits must
// Read, merge and Write themselves.
func (rw ReadWrite[T]) Write(v T) { rw.c.store(v) }

// On returns the same register on bus b.
func (rw ReadWrite[T]) On(b Bus) ReadWrite[T] { return ReadWrite[T]{cell[T]{b, rw.c.addr}} }

func (rw ReadWrite[T]) Peek() uint32  { return uint32(rw.c.load()) }
func (rw ReadWrite[T]) Poke(v uint32) { rw.c.store(narrow[T](rw.c.addr, v)) }

func (rw ReadWrite[T]) bus() Bus                            { return rw.c.bus }
func (rw ReadWrite[T]) at(b Bus, addr uintptr) ReadWrite[T] { return ReadWrite[T]{cell[T]{b, addr}} }
func (rw ReadWrite[T]) bind(b Bus) Handle                   { return rw.On(b) }
