package volatile

import "sync"

// LoadHook runs after a load of the register at addr returned v. Its result
// is what the register holds afterwards (return v to leave it alone, 0 to
// model clear-on-read).
type LoadHook func(addr uintptr, v uint32) uint32

// StoreHook decides what a store of v over old leaves in the register at
// addr (return v for a plain store, old&^v for write-one-to-clear).
type StoreHook func(addr uintptr, old, v uint32) uint32

// Sparse is a little-endian, memory backed Bus. Bytes never written read as
// zero. Hooks are keyed by the exact address of the access, not by every
// byte it covers.
//
// Each access is atomic with respect to other accesses; nothing larger is.
type Sparse struct {
	mu     sync.Mutex
	cells  map[uintptr]byte
	loads  map[uintptr]LoadHook
	stores map[uintptr]StoreHook
	count  uint64
}

// NewSparse returns an empty bus. Unwritten bytes read as zero.
func NewSparse() *Sparse {
	return &Sparse{
		cells:  map[uintptr]byte{},
		loads:  map[uintptr]LoadHook{},
		stores: map[uintptr]StoreHook{},
	}
}

// OnLoad installs h for loads at addr, replacing any earlier hook.
func (s *Sparse) OnLoad(addr uintptr, h LoadHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads[addr] = h
}

// OnStore installs h for stores at addr, replacing any earlier hook.
func (s *Sparse) OnStore(addr uintptr, h StoreHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stores[addr] = h
}

// Transactions is the number of loads and stores performed so far.
func (s *Sparse) Transactions() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Bytes copies n bytes starting at addr without counting as an access.
func (s *Sparse) Bytes(addr uintptr, n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := make([]byte, n)
	for i := range b {
		b[i] = s.cells[addr+uintptr(i)]
	}
	return b
}

// SetBytes copies b to addr, bypassing hooks and the transaction count. It
// models the hardware changing state on its own.
func (s *Sparse) SetBytes(addr uintptr, b []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range b {
		s.cells[addr+uintptr(i)] = c
	}
}

func (s *Sparse) get(addr uintptr, size int) uint32 {
	var v uint32
	for i := size - 1; i >= 0; i-- {
		v = v<<8 | uint32(s.cells[addr+uintptr(i)])
	}
	return v
}

func (s *Sparse) put(addr uintptr, size int, v uint32) {
	for i := 0; i < size; i++ {
		s.cells[addr+uintptr(i)] = byte(v >> (8 * i))
	}
}

func (s *Sparse) load(addr uintptr, size int) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++
	v := s.get(addr, size)
	if h, ok := s.loads[addr]; ok {
		s.put(addr, size, h(addr, v))
	}
	return v
}

func (s *Sparse) store(addr uintptr, size int, v uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++
	if h, ok := s.stores[addr]; ok {
		v = h(addr, s.get(addr, size), v)
	}
	s.put(addr, size, v)
}

func (s *Sparse) Load8(addr uintptr) uint8   { return uint8(s.load(addr, 1)) }
func (s *Sparse) Load16(addr uintptr) uint16 { return uint16(s.load(addr, 2)) }
func (s *Sparse) Load32(addr uintptr) uint32 { return s.load(addr, 4) }

func (s *Sparse) Store8(addr uintptr, v uint8)   { s.store(addr, 1, uint32(v)) }
func (s *Sparse) Store16(addr uintptr, v uint16) { s.store(addr, 2, uint32(v)) }
func (s *Sparse) Store32(addr uintptr, v uint32) { s.store(addr, 4, v) }
