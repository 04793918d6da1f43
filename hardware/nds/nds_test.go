package nds

import (
	"errors"
	"strings"
	"testing"
)

func TestTableValidates(t *testing.T) {
	if err := Validate(Registers()); err != nil {
		t.Fatalf("register table does not validate:\n%v", err)
	}
}

// documented is every register the hardware documentation lists, checked by
// hand against gbatek: address, width, element count, and access per core.
var documented = []struct {
	name       string
	addr       uintptr
	width      int
	count      int
	arm9, arm7 Access
}{
	{"DISPCNT_MAIN", 0x04000000, 32, 1, ReadWrite, NoAccess},
	{"DISPSTAT", 0x04000004, 16, 1, ReadWrite, ReadWrite},
	{"VCOUNT", 0x04000006, 16, 1, ReadWrite, ReadWrite},
	{"BG0CNT_MAIN", 0x04000008, 16, 1, ReadWrite, NoAccess},
	{"BG1CNT_MAIN", 0x0400000A, 16, 1, ReadWrite, NoAccess},
	{"BG2CNT_MAIN", 0x0400000C, 16, 1, ReadWrite, NoAccess},
	{"BG3CNT_MAIN", 0x0400000E, 16, 1, ReadWrite, NoAccess},
	{"BG0XOFS_MAIN", 0x04000010, 16, 1, Write, NoAccess},
	{"BG0YOFS_MAIN", 0x04000012, 16, 1, Write, NoAccess},
	{"BG1XOFS_MAIN", 0x04000014, 16, 1, Write, NoAccess},
	{"BG1YOFS_MAIN", 0x04000016, 16, 1, Write, NoAccess},
	{"BG2XOFS_MAIN", 0x04000018, 16, 1, Write, NoAccess},
	{"BG2YOFS_MAIN", 0x0400001A, 16, 1, Write, NoAccess},
	{"BG3XOFS_MAIN", 0x0400001C, 16, 1, Write, NoAccess},
	{"BG3YOFS_MAIN", 0x0400001E, 16, 1, Write, NoAccess},
	{"DISPCAPCNT", 0x04000064, 32, 1, ReadWrite, NoAccess},
	{"DISP_MMEM_FIFO", 0x04000068, 32, 1, Write, NoAccess},
	{"MASTER_BRIGHT_MAIN", 0x0400006C, 16, 1, ReadWrite, NoAccess},
	{"DMA0SAD", 0x040000B0, 32, 1, Write, Write},
	{"DMASAD", 0x040000B0, 32, 4, Write, Write},
	{"DMA0DAD", 0x040000B4, 32, 1, Write, Write},
	{"DMADAD", 0x040000B4, 32, 4, Write, Write},
	{"DMA0CNT_L", 0x040000B8, 16, 1, Write, Write},
	{"DMACNT_L", 0x040000B8, 16, 4, Write, Write},
	{"DMA0CNT_H", 0x040000BA, 16, 1, ReadWrite, ReadWrite},
	{"DMACNT_H", 0x040000BA, 16, 4, ReadWrite, ReadWrite},
	{"DMA1SAD", 0x040000BC, 32, 1, Write, Write},
	{"DMA1DAD", 0x040000C0, 32, 1, Write, Write},
	{"DMA1CNT_L", 0x040000C4, 16, 1, Write, Write},
	{"DMA1CNT_H", 0x040000C6, 16, 1, ReadWrite, ReadWrite},
	{"DMA2SAD", 0x040000C8, 32, 1, Write, Write},
	{"DMA2DAD", 0x040000CC, 32, 1, Write, Write},
	{"DMA2CNT_L", 0x040000D0, 16, 1, Write, Write},
	{"DMA2CNT_H", 0x040000D2, 16, 1, ReadWrite, ReadWrite},
	{"DMA3SAD", 0x040000D4, 32, 1, Write, Write},
	{"DMA3DAD", 0x040000D8, 32, 1, Write, Write},
	{"DMA3CNT_L", 0x040000DC, 16, 1, Write, Write},
	{"DMA3CNT_H", 0x040000DE, 16, 1, ReadWrite, ReadWrite},
	{"DMA0FILL", 0x040000E0, 32, 1, ReadWrite, NoAccess},
	{"DMAFILL", 0x040000E0, 32, 4, ReadWrite, NoAccess},
	{"DMA1FILL", 0x040000E4, 32, 1, ReadWrite, NoAccess},
	{"DMA2FILL", 0x040000E8, 32, 1, ReadWrite, NoAccess},
	{"DMA3FILL", 0x040000EC, 32, 1, ReadWrite, NoAccess},
	{"TM0CNT_L", 0x04000100, 16, 1, ReadWrite, ReadWrite},
	{"TMCNT_L", 0x04000100, 16, 4, ReadWrite, ReadWrite},
	{"TM0CNT_H", 0x04000102, 16, 1, ReadWrite, ReadWrite},
	{"TMCNT_H", 0x04000102, 16, 4, ReadWrite, ReadWrite},
	{"TM1CNT_L", 0x04000104, 16, 1, ReadWrite, ReadWrite},
	{"TM1CNT_H", 0x04000106, 16, 1, ReadWrite, ReadWrite},
	{"TM2CNT_L", 0x04000108, 16, 1, ReadWrite, ReadWrite},
	{"TM2CNT_H", 0x0400010A, 16, 1, ReadWrite, ReadWrite},
	{"TM3CNT_L", 0x0400010C, 16, 1, ReadWrite, ReadWrite},
	{"TM3CNT_H", 0x0400010E, 16, 1, ReadWrite, ReadWrite},
	{"KEYINPUT", 0x04000130, 16, 1, Read, Read},
	{"KEYCNT", 0x04000132, 16, 1, ReadWrite, ReadWrite},
	{"EXTKEYIN", 0x04000136, 16, 1, NoAccess, Read},
	{"IPCSYNC", 0x04000180, 16, 1, ReadWrite, ReadWrite},
	{"IPCFIFOCNT", 0x04000184, 16, 1, ReadWrite, ReadWrite},
	{"IPCFIFOSEND", 0x04000188, 32, 1, Write, Write},
	{"SPICNT", 0x040001C0, 16, 1, NoAccess, ReadWrite},
	{"SPIDATA", 0x040001C2, 16, 1, NoAccess, ReadWrite},
	{"WIFIWAITCNT", 0x04000206, 16, 1, NoAccess, ReadWrite},
	{"IME", 0x04000208, 32, 1, ReadWrite, ReadWrite},
	{"IE", 0x04000210, 32, 1, ReadWrite, ReadWrite},
	{"IF", 0x04000214, 32, 1, ReadWrite, ReadWrite},
	{"VRAMCNT_A", 0x04000240, 8, 1, Write, NoAccess},
	{"VRAMSTAT", 0x04000240, 8, 1, NoAccess, Read},
	{"VRAMCNT_B", 0x04000241, 8, 1, Write, NoAccess},
	{"WRAMSTAT", 0x04000241, 8, 1, NoAccess, Read},
	{"VRAMCNT_C", 0x04000242, 8, 1, Write, NoAccess},
	{"VRAMCNT_D", 0x04000243, 8, 1, Write, NoAccess},
	{"VRAMCNT_E", 0x04000244, 8, 1, Write, NoAccess},
	{"VRAMCNT_F", 0x04000245, 8, 1, Write, NoAccess},
	{"VRAMCNT_G", 0x04000246, 8, 1, Write, NoAccess},
	{"WRAMCNT", 0x04000247, 8, 1, ReadWrite, NoAccess},
	{"VRAMCNT_H", 0x04000248, 8, 1, Write, NoAccess},
	{"VRAMCNT_I", 0x04000249, 8, 1, Write, NoAccess},
	{"DIVCNT", 0x04000280, 16, 1, ReadWrite, NoAccess},
	{"DIV_NUMER", 0x04000290, 32, 2, ReadWrite, NoAccess},
	{"DIV_DENOM", 0x04000298, 32, 2, ReadWrite, NoAccess},
	{"DIV_RESULT", 0x040002A0, 32, 2, Read, NoAccess},
	{"DIVREM_RESULT", 0x040002A8, 32, 2, Read, NoAccess},
	{"SQRTCNT", 0x040002B0, 16, 1, ReadWrite, NoAccess},
	{"SQRT_RESULT", 0x040002B4, 32, 1, Read, NoAccess},
	{"SQRT_PARAM", 0x040002B8, 32, 2, ReadWrite, NoAccess},
	{"POSTFLG", 0x04000300, 8, 1, ReadWrite, ReadWrite},
	{"HALTCNT", 0x04000301, 8, 1, NoAccess, ReadWrite},
	{"POWCNT1", 0x04000304, 16, 1, ReadWrite, NoAccess},
	{"POWCNT2", 0x04000304, 16, 1, NoAccess, ReadWrite},
	{"DISPCNT_SUB", 0x04001000, 32, 1, ReadWrite, NoAccess},
	{"BG0CNT_SUB", 0x04001008, 16, 1, ReadWrite, NoAccess},
	{"BG1CNT_SUB", 0x0400100A, 16, 1, ReadWrite, NoAccess},
	{"BG2CNT_SUB", 0x0400100C, 16, 1, ReadWrite, NoAccess},
	{"BG3CNT_SUB", 0x0400100E, 16, 1, ReadWrite, NoAccess},
	{"BG0XOFS_SUB", 0x04001010, 16, 1, Write, NoAccess},
	{"BG0YOFS_SUB", 0x04001012, 16, 1, Write, NoAccess},
	{"BG1XOFS_SUB", 0x04001014, 16, 1, Write, NoAccess},
	{"BG1YOFS_SUB", 0x04001016, 16, 1, Write, NoAccess},
	{"BG2XOFS_SUB", 0x04001018, 16, 1, Write, NoAccess},
	{"BG2YOFS_SUB", 0x0400101A, 16, 1, Write, NoAccess},
	{"BG3XOFS_SUB", 0x0400101C, 16, 1, Write, NoAccess},
	{"BG3YOFS_SUB", 0x0400101E, 16, 1, Write, NoAccess},
	{"MASTER_BRIGHT_SUB", 0x0400106C, 16, 1, ReadWrite, NoAccess},
	{"IPCFIFORECV", 0x04100000, 32, 1, Read, Read},
	{"NOCASH_EMUID", 0x04FFFA00, 8, 16, Read, Read},
	{"NOCASH_STROUT_RAW", 0x04FFFA10, 32, 1, Write, Write},
	{"NOCASH_STROUT_PARAM", 0x04FFFA14, 32, 1, Write, Write},
	{"NOCASH_STROUT_PARAM_LF", 0x04FFFA18, 32, 1, Write, Write},
	{"NOCASH_CHAROUT", 0x04FFFA1C, 32, 1, Write, Write},
	{"NOCASH_CLOCKS", 0x04FFFA20, 32, 2, Read, Read},
	{"BG_PALETTE_MAIN", 0x05000000, 16, 256, ReadWrite, NoAccess},
	{"OBJ_PALETTE_MAIN", 0x05000200, 16, 256, ReadWrite, NoAccess},
	{"BG_PALETTE_SUB", 0x05000400, 16, 256, ReadWrite, NoAccess},
	{"OBJ_PALETTE_SUB", 0x05000600, 16, 256, ReadWrite, NoAccess},
	{"OAM_MAIN", 0x07000000, 16, 512, ReadWrite, NoAccess},
	{"OAM_SUB", 0x07000400, 16, 512, ReadWrite, NoAccess},
}

func TestDocumentedAddresses(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range documented {
		seen[d.name] = true
		r, ok := Lookup(d.name)
		if !ok {
			t.Errorf("%s: not in the table", d.name)
			continue
		}
		if r.Addr != d.addr || r.Width != d.width || r.Len() != d.count {
			t.Errorf("%s: expected %#08x/u%d x%d but got %#08x/u%d x%d",
				d.name, d.addr, d.width, d.count, r.Addr, r.Width, r.Len())
		}
		if got := r.Policy.For(ARM9); got != d.arm9 {
			t.Errorf("%s: expected arm9 access %s but got %s", d.name, d.arm9, got)
		}
		if got := r.Policy.For(ARM7); got != d.arm7 {
			t.Errorf("%s: expected arm7 access %s but got %s", d.name, d.arm7, got)
		}
	}
	for _, r := range Registers() {
		if !seen[r.Name] {
			t.Errorf("%s: in the table but not documented", r.Name)
		}
	}
}

func TestRegionBases(t *testing.T) {
	regions := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"BGPaletteMain", BGPaletteMain, 0x05000000},
		{"OBJPaletteMain", OBJPaletteMain, 0x05000200},
		{"BGPaletteSub", BGPaletteSub, 0x05000400},
		{"OBJPaletteSub", OBJPaletteSub, 0x05000600},
		{"BGRAMMain", BGRAMMain, 0x06000000},
		{"BGRAMSub", BGRAMSub, 0x06200000},
		{"OBJRAMMain", OBJRAMMain, 0x06400000},
		{"OBJRAMSub", OBJRAMSub, 0x06600000},
		{"OAMMain", OAMMain, 0x07000000},
		{"OAMSub", OAMSub, 0x07000400},
	}
	for _, r := range regions {
		if r.got != r.want {
			t.Errorf("%s: expected %#08x but got %#08x", r.name, r.want, r.got)
		}
	}
}

func TestLookupIgnoresCase(t *testing.T) {
	r, ok := Lookup("keyinput")
	if !ok || r.Name != "KEYINPUT" {
		t.Errorf("expected case insensitive lookup of KEYINPUT, got %v %v", r, ok)
	}
	if _, ok := Lookup("NOPE"); ok {
		t.Errorf("expected unknown register to be missing")
	}
}

func TestRegistersSorted(t *testing.T) {
	regs := Registers()
	for i := 1; i < len(regs); i++ {
		if regs[i-1].Addr > regs[i].Addr {
			t.Fatalf("%s (%#x) sorted after %s (%#x)", regs[i].Name, regs[i].Addr, regs[i-1].Name, regs[i-1].Addr)
		}
	}
	regs[0].Name = "CLOBBERED"
	if Registers()[0].Name == "CLOBBERED" {
		t.Errorf("expected Registers to return a copy")
	}
}

func TestSameAddressDifferentCores(t *testing.T) {
	cases := []struct {
		a, b       string
		arm9, arm7 Access
	}{
		{"VRAMCNT_A", "VRAMSTAT", Write, Read},
		{"POWCNT1", "POWCNT2", ReadWrite, ReadWrite},
		{"VRAMCNT_B", "WRAMSTAT", Write, Read},
	}
	for _, c := range cases {
		a, _ := Lookup(c.a)
		b, _ := Lookup(c.b)
		if a.Addr != b.Addr {
			t.Errorf("%s and %s: expected one address, got %#x and %#x", c.a, c.b, a.Addr, b.Addr)
		}
		if a.Policy.For(ARM9) != c.arm9 || a.VisibleTo(ARM7) {
			t.Errorf("%s: expected arm9=%s and invisible to arm7, got %s", c.a, c.arm9, a.Policy)
		}
		if b.Policy.For(ARM7) != c.arm7 || b.VisibleTo(ARM9) {
			t.Errorf("%s: expected arm7=%s and invisible to arm9, got %s", c.b, c.arm7, b.Policy)
		}
	}
}

func TestBlockGeometry(t *testing.T) {
	id, _ := Lookup("NOCASH_EMUID")
	if id.Len() != 16 || id.At(0) != 0x04FFFA00 || id.At(15) != 0x04FFFA0F {
		t.Errorf("unexpected emulator ID geometry %v", id)
	}
	if id.End() != 0x04FFFA10 {
		t.Errorf("expected emulator ID to end at 0x04fffa10, got %#x", id.End())
	}
	sad, _ := Lookup("DMASAD")
	for ch := 0; ch < 4; ch++ {
		scalar, _ := Lookup("DMA" + string(rune('0'+ch)) + "SAD")
		if sad.At(ch) != scalar.Addr {
			t.Errorf("DMASAD[%d]: expected %#x but got %#x", ch, scalar.Addr, sad.At(ch))
		}
	}
	keys, _ := Lookup("KEYINPUT")
	if keys.Len() != 1 || keys.IsBlock() {
		t.Errorf("expected KEYINPUT to be a plain register")
	}
	for _, i := range []int{-1, 16} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("At(%d): expected a panic", i)
				}
			}()
			id.At(i)
		}()
	}
}

func TestCharOutException(t *testing.T) {
	r, _ := Lookup("NOCASH_CHAROUT")
	if r.Width != 32 || r.Note == "" {
		t.Errorf("expected NOCASH_CHAROUT to stay a documented 32-bit exception, got u%d note=%q", r.Width, r.Note)
	}
}

func TestForCore(t *testing.T) {
	for _, c := range Cores {
		for _, r := range ForCore(c) {
			if !r.VisibleTo(c) {
				t.Errorf("%s: %s listed but not visible", c, r.Name)
			}
		}
	}
	for _, r := range ForCore(ARM9) {
		if r.Name == "SPICNT" || r.Name == "EXTKEYIN" {
			t.Errorf("arm9 should not see %s", r.Name)
		}
	}
}

func TestParse(t *testing.T) {
	for in, want := range map[string]Access{"": NoAccess, "-": NoAccess, "r": Read, "W": Write, " rw ": ReadWrite} {
		got, err := ParseAccess(in)
		if err != nil || got != want {
			t.Errorf("ParseAccess(%q): expected %s, got %s %v", in, want, got, err)
		}
	}
	if _, err := ParseAccess("x"); err == nil {
		t.Errorf("expected an error for access x")
	}
	if c, err := ParseCore("ARM7"); err != nil || c != ARM7 {
		t.Errorf("expected arm7, got %s %v", c, err)
	}
	if _, err := ParseCore("arm11"); err == nil {
		t.Errorf("expected an error for arm11")
	}
}

func TestValidateFindsProblems(t *testing.T) {
	cases := []struct {
		name string
		regs []Register
		want string
	}{
		{"width", []Register{mmio(0x04000000, "A", "A", 24, rw9, "")}, "width 24"},
		{"alignment", []Register{mmio(0x04000001, "A", "A", 16, rw9, "")}, "not aligned"},
		{"stride", []Register{block(0x04000000, "A", "A", 32, rw9, 4, 2, "")}, "smaller than"},
		{"stride multiple", []Register{block(0x04000000, "A", "A", 32, rw9, 4, 6, "")}, "multiple"},
		{"count", []Register{block(0x04000000, "A", "A", 32, rw9, -1, 0, "")}, "negative count"},
		{"no access", []Register{mmio(0x04000000, "A", "A", 32, Policy{}, "")}, "no core"},
		{"ident", []Register{mmio(0x04000000, "A", "a", 32, rw9, "")}, "exported"},
		{"reserved", []Register{mmio(0x04000000, "A", "Lookup", 32, rw9, "")}, "reserved"},
		{"duplicate", []Register{
			mmio(0x04000000, "A", "A", 32, rw9, ""),
			mmio(0x04000004, "A", "B", 32, rw9, ""),
		}, "duplicate name"},
		{"overlap width", []Register{
			mmio(0x04000000, "A", "A", 32, rw9, ""),
			mmio(0x04000002, "B", "B", 16, rw9, ""),
		}, "boundaries"},
		{"overlap access", []Register{
			mmio(0x04000000, "A", "A", 16, rw9, ""),
			mmio(0x04000000, "B", "B", 16, w9, ""),
		}, "access differs"},
		{"overlap block", []Register{
			block(0x04000000, "A", "A", 32, rwBoth, 4, 0xC, ""),
			mmio(0x0400000E, "B", "B", 16, rw7, ""),
		}, "arm7"},
	}
	for _, c := range cases {
		err := Validate(c.regs)
		if err == nil {
			t.Errorf("%s: expected an error", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Errorf("%s: expected %q in %v", c.name, c.want, err)
		}
	}

	// other cores and identical overlaps are fine
	ok := []Register{
		mmio(0x04000000, "A", "A", 16, w9, ""),
		mmio(0x04000000, "B", "B", 16, r7, ""),
		block(0x04000010, "C", "C", 32, rwBoth, 2, 8, ""),
		mmio(0x04000018, "D", "D", 32, rwBoth, ""),
	}
	if err := Validate(ok); err != nil {
		t.Errorf("expected a clean table, got %v", err)
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	err := Validate([]Register{
		mmio(0x04000001, "A", "A", 16, rw9, ""),
		mmio(0x04000000, "B", "B", 12, rw9, ""),
	})
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) || len(joined.Unwrap()) != 2 {
		t.Errorf("expected two joined errors, got %v", err)
	}
}
