package volatile

import (
	"bytes"
	"reflect"
	"strings"
	"sync"
	"testing"

	"dsio/lib/trust"
)

func TestReadWriteRoundTrip(t *testing.T) {
	bus := NewSparse()
	r := NewReadWrite[uint16](0x04000130).On(bus)
	if r.Addr() != 0x04000130 {
		t.Errorf("expected address 0x04000130 but got %#x", r.Addr())
	}
	if r.Size() != 2 {
		t.Errorf("expected size 2 but got %d", r.Size())
	}
	r.Write(0x03ff)
	if got := r.Read(); got != 0x03ff {
		t.Errorf("expected 0x03ff but got %#x", got)
	}
	if b := bus.Bytes(0x04000130, 3); !bytes.Equal(b, []byte{0xff, 0x03, 0x00}) {
		t.Errorf("expected little endian store touching two bytes, got % x", b)
	}
}

func TestWidthsDoNotSpill(t *testing.T) {
	bus := NewSparse()
	NewReadWrite[uint32](0x04000000).On(bus).Write(0xffffffff)
	NewWriteOnly[uint8](0x04000001).On(bus).Write(0x12)
	if got := NewReadOnly[uint32](0x04000000).On(bus).Read(); got != 0xffff12ff {
		t.Errorf("expected 0xffff12ff after byte store, got %#x", got)
	}
	NewWriteOnly[uint16](0x04000002).On(bus).Write(0)
	if got := NewReadOnly[uint32](0x04000000).On(bus).Read(); got != 0x000012ff {
		t.Errorf("expected 0x000012ff after halfword store, got %#x", got)
	}
}

type keys uint16

func TestNamedElementType(t *testing.T) {
	bus := NewSparse()
	r := NewReadWrite[keys](0x04000132).On(bus)
	r.Write(keys(0x4001))
	if got := r.Read(); got != keys(0x4001) {
		t.Errorf("expected 0x4001 but got %#x", got)
	}
}

func TestSameAddressTwoCores(t *testing.T) {
	bus := NewSparse()
	// one core sees the register read-only, the other read/write
	coreA := NewReadOnly[uint16](0x04000180).On(bus)
	coreB := NewReadWrite[uint16](0x04000180).On(bus)
	if coreA.Addr() != coreB.Addr() {
		t.Fatalf("expected the same address on both cores")
	}
	coreB.Write(0x0f0f)
	if got := coreB.Read(); got != 0x0f0f {
		t.Errorf("core B expected to read back 0x0f0f but got %#x", got)
	}
	if got := coreA.Read(); got != 0x0f0f {
		t.Errorf("core A expected to observe 0x0f0f but got %#x", got)
	}
}

func TestReadsAreNotCached(t *testing.T) {
	bus := NewSparse()
	clocks := NewReadOnly[uint32](0x04fffa20).On(bus)
	bus.OnLoad(0x04fffa20, func(_ uintptr, v uint32) uint32 { return v + 1 })
	for i := uint32(0); i < 4; i++ {
		if got := clocks.Read(); got != i {
			t.Errorf("read %d: expected %d but got %d", i, i, got)
		}
	}
	if n := bus.Transactions(); n != 4 {
		t.Errorf("expected 4 bus transactions but got %d", n)
	}
	bus.SetBytes(0x04fffa20, []byte{1, 2})
	if n := bus.Transactions(); n != 4 {
		t.Errorf("expected SetBytes not to count, got %d transactions", n)
	}
}

func TestClearOnReadAndWriteOneToClear(t *testing.T) {
	bus := NewSparse()
	status := NewReadWrite[uint32](0x04000214).On(bus)
	bus.OnStore(0x04000214, func(_ uintptr, old, v uint32) uint32 { return old &^ v })
	bus.OnLoad(0x04000200, func(uintptr, uint32) uint32 { return 0 })

	bus.SetBytes(0x04000214, []byte{0x09, 0, 0, 0})
	status.Write(0x1)
	if got := status.Read(); got != 0x8 {
		t.Errorf("expected write-one-to-clear to leave 0x8, got %#x", got)
	}

	latch := NewReadWrite[uint32](0x04000200).On(bus)
	latch.Write(0xaa)
	if got := latch.Read(); got != 0xaa {
		t.Errorf("expected first read 0xaa, got %#x", got)
	}
	if got := latch.Read(); got != 0 {
		t.Errorf("expected clear-on-read to leave 0, got %#x", got)
	}
}

func TestBlockGeometry(t *testing.T) {
	id := NewBlock[ReadOnly[uint8]](0x04fffa00, 16)
	if id.Len() != 16 || id.Stride() != 1 || id.Size() != 1 {
		t.Errorf("unexpected geometry len=%d stride=%d size=%d", id.Len(), id.Stride(), id.Size())
	}
	if a := id.Index(0).Addr(); a != 0x04fffa00 {
		t.Errorf("index 0: expected 0x04fffa00 but got %#x", a)
	}
	if a := id.Index(15).Addr(); a != 0x04fffa0f {
		t.Errorf("index 15: expected 0x04fffa0f but got %#x", a)
	}
	for i, r := range id.All() {
		if r.Addr() != 0x04fffa00+uintptr(i) {
			t.Errorf("index %d: expected %#x but got %#x", i, 0x04fffa00+uintptr(i), r.Addr())
		}
	}
	expectPanic(t, "index 16", func() { id.Index(16) })
	expectPanic(t, "index -1", func() { id.Index(-1) })
}

func TestSeriesStride(t *testing.T) {
	bus := NewSparse()
	sad := NewSeries[WriteOnly[uint32]](0x040000b0, 4, 0xc).On(bus)
	for i := 0; i < sad.Len(); i++ {
		want := 0x040000b0 + uintptr(i)*0xc
		if got := sad.Index(i).Addr(); got != want {
			t.Errorf("channel %d: expected %#x but got %#x", i, want, got)
		}
		sad.Index(i).Write(uint32(0x02000000 + i))
	}
	if got := bus.Load32(0x040000c8); got != 0x02000002 {
		t.Errorf("expected channel 2 store at 0x040000c8, got %#x", got)
	}
	expectPanic(t, "index 4", func() { sad.Index(4) })
}

func TestBadBlockGeometryPanics(t *testing.T) {
	expectPanic(t, "zero count", func() { NewBlock[ReadWrite[uint16]](0x05000000, 0) })
	expectPanic(t, "narrow stride", func() { NewSeries[ReadWrite[uint32]](0x040000b0, 4, 2) })
	expectPanic(t, "ragged stride", func() { NewSeries[ReadWrite[uint32]](0x040000b0, 4, 6) })
	expectPanic(t, "odd halfword stride", func() { NewSeries[ReadOnly[uint16]](0x04000100, 4, 3) })
}

func TestAligned(t *testing.T) {
	cases := []struct {
		v, n uintptr
		want bool
	}{
		{0x04000130, 2, true},
		{0x04000131, 2, false},
		{0x040000b0, 4, true},
		{12, 4, true},
		{6, 4, false},
		{8, 0, false},
	}
	for _, c := range cases {
		if got := Aligned(c.v, c.n); got != c.want {
			t.Errorf("Aligned(%#x, %d): expected %v", c.v, c.n, c.want)
		}
	}
}

func TestPokeRejectsWideValues(t *testing.T) {
	bus := NewSparse()
	b := Rebind(NewWriteOnly[uint8](0x04000301), bus).(Poker)
	h := Rebind(NewReadWrite[uint16](0x04000004), bus).(Poker)
	expectPanic(t, "u8 0x1ff", func() { b.Poke(0x1ff) })
	expectPanic(t, "u16 0x10000", func() { h.Poke(0x10000) })
	if n := bus.Transactions(); n != 0 {
		t.Errorf("expected a rejected poke not to touch the bus, got %d transactions", n)
	}
	b.Poke(0xff)
	h.Poke(0xffff)
	if got := bus.Load8(0x04000301); got != 0xff {
		t.Errorf("expected 0xff but got %#x", got)
	}
	if got := bus.Load16(0x04000004); got != 0xffff {
		t.Errorf("expected 0xffff but got %#x", got)
	}
}

type foreign struct{}

func (foreign) Addr() uintptr { return 0x04000000 }
func (foreign) Size() uintptr { return 4 }

func TestRebindForeignHandle(t *testing.T) {
	defer func() {
		msg, _ := recover().(string)
		if !strings.HasPrefix(msg, "volatile: cannot rebind") {
			t.Errorf("expected a volatile panic, got %q", msg)
		}
	}()
	Rebind(foreign{}, NewSparse())
}

func TestBlockInheritsBus(t *testing.T) {
	bus := NewSparse()
	pal := NewBlock[ReadWrite[uint16]](0x05000000, 256).On(bus)
	pal.Index(255).Write(0x7fff)
	if got := bus.Load16(0x050001fe); got != 0x7fff {
		t.Errorf("expected element 255 at 0x050001fe, got %#x", got)
	}
}

func TestMethodSets(t *testing.T) {
	cases := []struct {
		v           any
		read, write bool
	}{
		{ReadOnly[uint16]{}, true, false},
		{WriteOnly[uint16]{}, false, true},
		{ReadWrite[uint16]{}, true, true},
	}
	for _, c := range cases {
		typ := reflect.TypeOf(c.v)
		_, hasRead := typ.MethodByName("Read")
		_, hasWrite := typ.MethodByName("Write")
		if hasRead != c.read || hasWrite != c.write {
			t.Errorf("%s: expected read=%v write=%v, got read=%v write=%v",
				typ, c.read, c.write, hasRead, hasWrite)
		}
		_, isPeeker := c.v.(Peeker)
		_, isPoker := c.v.(Poker)
		if isPeeker != c.read || isPoker != c.write {
			t.Errorf("%s: expected peeker=%v poker=%v, got %v %v",
				typ, c.read, c.write, isPeeker, isPoker)
		}
	}
}

func TestDynamicView(t *testing.T) {
	bus := NewSparse()
	var h Handle = NewWriteOnly[uint32](0x04000188)
	h = Rebind(h, bus)
	p, ok := h.(Poker)
	if !ok {
		t.Fatalf("expected a write-only handle to be a Poker")
	}
	p.Poke(0xdeadbeef)
	if got := bus.Load32(0x04000188); got != 0xdeadbeef {
		t.Errorf("expected poke to reach the rebound bus, got %#x", got)
	}

	var blk Handle = NewBlock[ReadOnly[uint32]](0x04fffa20, 2)
	blk = Rebind(blk, bus)
	ix, ok := blk.(Indexed)
	if !ok {
		t.Fatalf("expected block to be Indexed")
	}
	bus.Store32(0x04fffa24, 7)
	if got := ix.Elem(1).(Peeker).Peek(); got != 7 {
		t.Errorf("expected 7 from element 1, got %d", got)
	}
	if _, ok := ix.Elem(0).(Poker); ok {
		t.Errorf("expected element of read-only block not to be a Poker")
	}
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	log := trust.New(&buf, "")
	log.SetLevel(trust.LevelDebug)
	bus := Trace(NewSparse(), "arm9", log)
	r := NewReadWrite[uint16](0x04000004).On(bus)
	r.Write(0x18)
	r.Read()
	out := buf.String()
	if !strings.Contains(out, "arm9 store16") || !strings.Contains(out, "arm9 load16") {
		t.Errorf("expected store16 and load16 lines, got:\n%s", out)
	}
}

func TestSparseConcurrentCores(t *testing.T) {
	bus := NewSparse()
	sync9 := NewReadWrite[uint16](0x04000180).On(bus)
	sync7 := NewReadWrite[uint16](0x04000182).On(bus)
	var wg sync.WaitGroup
	for _, r := range []ReadWrite[uint16]{sync9, sync7} {
		wg.Add(1)
		go func(r ReadWrite[uint16]) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				r.Write(uint16(i))
				r.Read()
			}
		}(r)
	}
	wg.Wait()
	if sync9.Read() != 999 || sync7.Read() != 999 {
		t.Errorf("expected both halves to end at 999, got %d %d", sync9.Read(), sync7.Read())
	}
	if n := bus.Transactions(); n != 4002 {
		t.Errorf("expected 4002 transactions, got %d", n)
	}
}

func expectPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected a panic", what)
		}
	}()
	fn()
}
