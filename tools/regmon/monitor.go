// Package regmon is a register monitor for host-side debugging. Both cores'
// handle sets are bound to simulated buses, and registers are peeked and
// poked by datasheet name through the dynamic handle view: whether a
// register may be read or written is still decided by its handle type.
package regmon

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dsio/hardware/nds"
	"dsio/hardware/nds/arm7"
	"dsio/hardware/nds/arm9"
	"dsio/hardware/volatile"
	"dsio/lib/trust"
)

var (
	ErrUnknownRegister = errors.New("unknown register")
	ErrNotReadable     = errors.New("register is not readable")
	ErrNotWritable     = errors.New("register is not writable")
	ErrIndex           = errors.New("bad index")
	ErrSyntax          = errors.New("syntax error")
	ErrUnknownCommand  = errors.New("unknown command")
	// ErrQuit is returned by Exec for the quit command.
	ErrQuit = errors.New("quit")
)

// NoIndex selects a plain register rather than a block element.
const NoIndex = -1

var lookups = [...]func(string) (volatile.Handle, bool){
	nds.ARM9: arm9.Lookup,
	nds.ARM7: arm7.Lookup,
}

// Monitor holds one simulated bus per core. It is not safe for concurrent
// use.
type Monitor struct {
	core   nds.Core
	sparse [2]*volatile.Sparse
	bus    [2]volatile.Bus
	out    io.Writer
	log    *trust.Logger
}

// New returns a monitor writing command output to out. With trace set every
// bus access is logged at debug level through log.
func New(out io.Writer, log *trust.Logger, trace bool) *Monitor {
	m := &Monitor{core: nds.ARM9, out: out, log: log}
	for _, c := range nds.Cores {
		s := volatile.NewSparse()
		m.sparse[c] = s
		m.bus[c] = s
		if trace {
			m.bus[c] = volatile.Trace(s, c.String(), log)
		}
		seed(s)
	}
	return m
}

// seed gives the simulated buses the reset state and side effects a program
// is most likely to trip over.
func seed(s *volatile.Sparse) {
	keys, _ := nds.Lookup("KEYINPUT")
	s.SetBytes(keys.Addr, []byte{0xFF, 0x03}) // active low: nothing pressed
	irq, _ := nds.Lookup("IF")
	s.OnStore(irq.Addr, func(_ uintptr, old, v uint32) uint32 { return old &^ v })
}

func (m *Monitor) Core() nds.Core { return m.core }

// SetCore selects the core used by commands that do not name one.
func (m *Monitor) SetCore(c nds.Core) { m.core = c }

// Sparse exposes the simulated bus behind core c.
func (m *Monitor) Sparse(c nds.Core) *volatile.Sparse { return m.sparse[c] }

// Resolve finds the register name on core c, bound to that core's bus. For a
// block, index selects the element; NoIndex returns the whole block.
func (m *Monitor) Resolve(c nds.Core, name string, index int) (volatile.Handle, error) {
	h, ok := lookups[c](name)
	if !ok {
		if r, known := nds.Lookup(name); known {
			return nil, fmt.Errorf("%w: %s is not accessible from %s", ErrUnknownRegister, r.Name, c)
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownRegister, name)
	}
	h = volatile.Rebind(h, m.bus[c])
	ix, isBlock := h.(volatile.Indexed)
	switch {
	case index == NoIndex:
		return h, nil
	case !isBlock:
		return nil, fmt.Errorf("%w: %s is not a block", ErrIndex, strings.ToUpper(name))
	case index < 0 || index >= ix.Len():
		return nil, fmt.Errorf("%w: %s[%d] out of range [0:%d]", ErrIndex, strings.ToUpper(name), index, ix.Len())
	}
	return ix.Elem(index), nil
}

func (m *Monitor) scalar(c nds.Core, name string, index int) (volatile.Handle, error) {
	h, err := m.Resolve(c, name, index)
	if err != nil {
		return nil, err
	}
	if ix, ok := h.(volatile.Indexed); ok {
		return nil, fmt.Errorf("%w: %s is a block of %d, give an index", ErrIndex, strings.ToUpper(name), ix.Len())
	}
	return h, nil
}

// Peek reads one register on core c.
func (m *Monitor) Peek(c nds.Core, name string, index int) (uint32, error) {
	h, err := m.scalar(c, name, index)
	if err != nil {
		return 0, err
	}
	p, ok := h.(volatile.Peeker)
	if !ok {
		return 0, fmt.Errorf("%w: %s on %s", ErrNotReadable, strings.ToUpper(name), c)
	}
	return p.Peek(), nil
}

// Poke writes one register on core c. The value must fit the register.
func (m *Monitor) Poke(c nds.Core, name string, index int, v uint32) error {
	h, err := m.scalar(c, name, index)
	if err != nil {
		return err
	}
	p, ok := h.(volatile.Poker)
	if !ok {
		return fmt.Errorf("%w: %s on %s", ErrNotWritable, strings.ToUpper(name), c)
	}
	if bits := 8 * h.Size(); bits < 32 && v>>bits != 0 {
		return fmt.Errorf("%w: %#x does not fit in %d bits", ErrSyntax, v, bits)
	}
	p.Poke(v)
	return nil
}

// parseRef splits NAME or NAME[i].
func parseRef(s string) (string, int, error) {
	name, rest, found := strings.Cut(s, "[")
	if !found {
		return s, NoIndex, nil
	}
	num, ok := strings.CutSuffix(rest, "]")
	if !ok || name == "" {
		return "", 0, fmt.Errorf("%w: expected NAME[index], got %q", ErrSyntax, s)
	}
	i, err := strconv.ParseInt(num, 0, 0)
	if err != nil {
		return "", 0, fmt.Errorf("%w: bad index %q", ErrSyntax, num)
	}
	if i < 0 {
		return "", 0, fmt.Errorf("%w: negative index %d", ErrIndex, i)
	}
	return name, int(i), nil
}

func parseValue(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.ReplaceAll(s, "_", ""), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: bad value %q", ErrSyntax, s)
	}
	return uint32(v), nil
}

// hex formats v with as many digits as the register is wide.
func hex(v uint32, size uintptr) string {
	return fmt.Sprintf("0x%0*X", int(2*size), v)
}
