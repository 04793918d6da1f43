package regmon

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dsio/hardware/nds"
	"dsio/lib/trust"
)

func newMonitor(t *testing.T) (*Monitor, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return New(&out, trust.Discard(), false), &out
}

func TestPeekPoke(t *testing.T) {
	m, _ := newMonitor(t)
	if err := m.Poke(nds.ARM9, "dispcnt_main", NoIndex, 0x00010000); err != nil {
		t.Fatal(err)
	}
	v, err := m.Peek(nds.ARM9, "DISPCNT_MAIN", NoIndex)
	if err != nil || v != 0x00010000 {
		t.Errorf("expected 0x10000, got %#x %v", v, err)
	}
	if v, _ := m.Peek(nds.ARM7, "KEYINPUT", NoIndex); v != 0x03ff {
		t.Errorf("expected KEYINPUT to reset to 0x3ff, got %#x", v)
	}
	if err := m.Poke(nds.ARM9, "BG_PALETTE_MAIN", 255, 0x7fff); err != nil {
		t.Fatal(err)
	}
	if got := m.Sparse(nds.ARM9).Load16(0x050001fe); got != 0x7fff {
		t.Errorf("expected palette entry 255 at 0x050001fe, got %#x", got)
	}
	// the cores have separate buses
	if v, _ := m.Peek(nds.ARM7, "DISPSTAT", NoIndex); v != 0 {
		t.Errorf("expected arm7 DISPSTAT untouched, got %#x", v)
	}
}

func TestErrors(t *testing.T) {
	m, _ := newMonitor(t)
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"unknown", m.Poke(nds.ARM9, "NOPE", NoIndex, 0), ErrUnknownRegister},
		{"other core", m.Poke(nds.ARM9, "SPICNT", NoIndex, 0), ErrUnknownRegister},
		{"write read-only", m.Poke(nds.ARM9, "KEYINPUT", NoIndex, 1), ErrNotWritable},
		{"read write-only", func() error { _, err := m.Peek(nds.ARM7, "IPCFIFOSEND", NoIndex); return err }(), ErrNotReadable},
		{"index scalar", m.Poke(nds.ARM9, "IME", 0, 1), ErrIndex},
		{"index range", m.Poke(nds.ARM9, "DMAFILL", 4, 1), ErrIndex},
		{"block without index", m.Poke(nds.ARM9, "DMAFILL", NoIndex, 1), ErrIndex},
		{"too wide", m.Poke(nds.ARM7, "HALTCNT", NoIndex, 0x100), ErrSyntax},
		{"read-only block", m.Poke(nds.ARM9, "DIV_RESULT", 1, 1), ErrNotWritable},
	}
	for _, c := range cases {
		if !errors.Is(c.err, c.want) {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, c.err)
		}
	}
}

func TestWriteOneToClear(t *testing.T) {
	m, _ := newMonitor(t)
	m.Sparse(nds.ARM7).SetBytes(0x04000214, []byte{0x09, 0, 0, 0})
	if err := m.Poke(nds.ARM7, "IF", NoIndex, 1); err != nil {
		t.Fatal(err)
	}
	if v, _ := m.Peek(nds.ARM7, "IF", NoIndex); v != 0x8 {
		t.Errorf("expected acknowledging bit 0 to leave 0x8, got %#x", v)
	}
}

func TestCommands(t *testing.T) {
	m, out := newMonitor(t)
	script := []struct {
		line string
		want string
		err  error
	}{
		{"poke VCOUNT 0x00c0", "", nil},
		{"peek vcount", "VCOUNT = 0x00C0", nil},
		{"poke DMASAD[2] 0x02000000", "", nil},
		{"peek DMA2SAD", "", ErrNotReadable},
		{"poke TMCNT_L[1] 0xff00", "", nil},
		{"peek TM1CNT_L", "TM1CNT_L = 0xFF00", nil},
		{"peek NOCASH_EMUID[3]", "NOCASH_EMUID[3] = 0x00", nil},
		{"peek NOCASH_EMUID[16]", "", ErrIndex},
		{"peek NOCASH_EMUID[x]", "", ErrSyntax},
		{"dump SQRT_PARAM", "SQRT_PARAM[1] = 0x00000000", nil},
		{"dump KEYINPUT", "0x04000130 KEYINPUT = 0x03FF", nil},
		{"dump DMASAD", "", ErrNotReadable},
		{"info NOCASH_CHAROUT", "note: 8-bit in no$gba", nil},
		{"info DMASAD", "4 elements, 0xc apart", nil},
		{"list VRAMCNT", "VRAMCNT_A", nil},
		{"core arm7", "", nil},
		{"core", "arm7", nil},
		{"list VRAM", "VRAMSTAT", nil},
		{"poke SPIDATA 0x12", "", nil},
		{"poke", "", ErrSyntax},
		{"core arm11", "", ErrSyntax},
		{"frob", "", ErrUnknownCommand},
		{"# comment", "", nil},
		{"help", "peek NAME[i]", nil},
		{"quit", "", ErrQuit},
	}
	for _, s := range script {
		out.Reset()
		err := m.Exec(s.line)
		if s.err == nil && err != nil {
			t.Errorf("%q: unexpected error %v", s.line, err)
			continue
		}
		if s.err != nil && !errors.Is(err, s.err) {
			t.Errorf("%q: expected %v, got %v", s.line, s.err, err)
			continue
		}
		if !strings.Contains(out.String(), s.want) {
			t.Errorf("%q: expected %q in output:\n%s", s.line, s.want, out.String())
		}
	}
	out.Reset()
	m.Exec("list VRAMCNT")
	if out.Len() != 0 {
		t.Errorf("expected arm7 to have no VRAMCNT registers, got:\n%s", out.String())
	}
}

func TestServe(t *testing.T) {
	m, out := newMonitor(t)
	in := strings.Join([]string{
		"core arm7",
		"poke POSTFLG 1",
		"peek POSTFLG",
		"peek KEYCNT[0]",
		"quit",
		"peek POSTFLG",
	}, "\n")
	if err := m.Serve(Lines(strings.NewReader(in)), true); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	if strings.Count(s, "POSTFLG = 0x01") != 1 {
		t.Errorf("expected one POSTFLG line and nothing after quit, got:\n%s", s)
	}
	if !strings.Contains(s, "error: bad index: KEYCNT is not a block") {
		t.Errorf("expected the index error to be reported, got:\n%s", s)
	}
	if !strings.Contains(s, "arm7> ") {
		t.Errorf("expected an arm7 prompt, got:\n%s", s)
	}
}

func TestLua(t *testing.T) {
	m, out := newMonitor(t)
	err := m.RunScript("test.lua", `
		poke("arm9", "IPCSYNC", 0x0f00)
		print(peek("arm9", "IPCSYNC"))
		for i = 0, 3 do
			poke("arm9", "DMAFILL", i, 0x1000 + i)
		end
		print(peek("arm9", "DMA3FILL"))
		print(core("arm7"))
		print(core())
	`)
	if err != nil {
		t.Fatal(err)
	}
	want := "3840\n4099\narm9\narm7\n"
	if out.String() != want {
		t.Errorf("expected %q but got %q", want, out.String())
	}
	if m.Core() != nds.ARM7 {
		t.Errorf("expected the script to leave arm7 selected")
	}
}

func TestLuaErrors(t *testing.T) {
	m, _ := newMonitor(t)
	cases := map[string]string{
		`poke("arm9", "KEYINPUT", 1)`:   "not writable",
		`peek("arm9", "IPCFIFORECV")`:   "",
		`peek("arm7", "VRAMCNT_A")`:     "not accessible from arm7",
		`poke("arm11", "IME", 1)`:       "unknown core",
		`poke("arm9", "IME", -1)`:       "unsigned 32 bit",
		`poke("arm9", "DMAFILL", 9, 0)`: "out of range",
		`peek("arm9", "DIV_RESULT")`:    "give an index",
	}
	for src, want := range cases {
		err := m.RunScript("errors.lua", src)
		if want == "" {
			if err != nil {
				t.Errorf("%s: unexpected error %v", src, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Errorf("%s: expected error containing %q, got %v", src, want, err)
		}
	}
}

func TestRunFile(t *testing.T) {
	m, out := newMonitor(t)
	path := filepath.Join(t.TempDir(), "id.lua")
	src := `
		local s = ""
		for i = 0, 15 do
			local c = peek("arm9", "NOCASH_EMUID", i)
			if c ~= 0 then s = s .. string.char(c) end
		end
		print(s)
	`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	for i, c := range []byte("melonDS") {
		m.Sparse(nds.ARM9).Store8(0x04fffa00+uintptr(i), c)
	}
	if err := m.Exec("run " + path); err != nil {
		t.Fatal(err)
	}
	if out.String() != "melonDS\n" {
		t.Errorf("expected melonDS, got %q", out.String())
	}
}

func TestTrace(t *testing.T) {
	var out, logs bytes.Buffer
	log := trust.New(&logs, "")
	log.SetLevel(trust.LevelDebug)
	m := New(&out, log, true)
	if err := m.Exec("poke IME 1"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs.String(), "arm9 store32") {
		t.Errorf("expected a traced store, got:\n%s", logs.String())
	}
}
