package nds

const gbatek = "https://www.problemkaputt.de/gbatek.htm"

const (
	secVRAM    = gbatek + "#dsmemorycontrolvram"
	secWRAM    = gbatek + "#dsmemorycontrolwram"
	secVideo   = gbatek + "#dsvideostuff"
	secCapture = gbatek + "#dsvideocaptureandmainmemorydisplaymode"
	secMemory  = gbatek + "#dsmemorymaps"
	secDMA     = gbatek + "#dsdmatransfers"
	secTimers  = gbatek + "#dstimers"
	secIRQ     = gbatek + "#dsinterrupts"
	secMaths   = gbatek + "#dsmaths"
	secIPC     = gbatek + "#dsinterprocesscommunicationipc"
	secKeypad  = gbatek + "#dskeypad"
	secSPI     = gbatek + "#dsserialperipheralinterfacebusspi"
	secPower   = gbatek + "#dspowercontrol"
	secDebug   = gbatek + "#dsdebugregistersemulatordevkits"
)

var (
	w9     = Policy{ARM9: Write}
	rw9    = Policy{ARM9: ReadWrite}
	r7     = Policy{ARM7: Read}
	rw7    = Policy{ARM7: ReadWrite}
	rBoth  = Policy{ARM9: Read, ARM7: Read}
	wBoth  = Policy{ARM9: Write, ARM7: Write}
	rwBoth = Policy{ARM9: ReadWrite, ARM7: ReadWrite}
)

func mmio(addr uintptr, name, ident string, width int, p Policy, desc string) Register {
	return Register{Name: name, Ident: ident, Addr: addr, Width: width, Policy: p, Description: desc}
}

func block(addr uintptr, name, ident string, width int, p Policy, count int, stride uintptr, desc string) Register {
	r := mmio(addr, name, ident, width, p, desc)
	r.Count, r.Stride = count, stride
	return r
}

func (r Register) note(n string) Register {
	r.Note = n
	return r
}

func section(url string, rows ...Register) []Register {
	for i := range rows {
		rows[i].Section = url
	}
	return rows
}

func concat(groups ...[]Register) []Register {
	var out []Register
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Memory regions, exposed as raw addresses only.
const (
	BGPaletteMain  uintptr = 0x0500_0000
	OBJPaletteMain uintptr = 0x0500_0200
	BGPaletteSub   uintptr = 0x0500_0400
	OBJPaletteSub  uintptr = 0x0500_0600
	BGRAMMain      uintptr = 0x0600_0000
	BGRAMSub       uintptr = 0x0620_0000
	OBJRAMMain     uintptr = 0x0640_0000
	OBJRAMSub      uintptr = 0x0660_0000
	OAMMain        uintptr = 0x0700_0000
	OAMSub         uintptr = 0x0700_0400
)

var table = concat(
	section(secVRAM,
		mmio(0x0400_0240, "VRAMSTAT", "VRAMStat", 8, r7, "VRAM Bank Status"),
		mmio(0x0400_0240, "VRAMCNT_A", "VRAMCntA", 8, w9, "VRAM-A Bank Control"),
		mmio(0x0400_0241, "VRAMCNT_B", "VRAMCntB", 8, w9, "VRAM-B Bank Control"),
		mmio(0x0400_0242, "VRAMCNT_C", "VRAMCntC", 8, w9, "VRAM-C Bank Control"),
		mmio(0x0400_0243, "VRAMCNT_D", "VRAMCntD", 8, w9, "VRAM-D Bank Control"),
		mmio(0x0400_0244, "VRAMCNT_E", "VRAMCntE", 8, w9, "VRAM-E Bank Control"),
		mmio(0x0400_0245, "VRAMCNT_F", "VRAMCntF", 8, w9, "VRAM-F Bank Control"),
		mmio(0x0400_0246, "VRAMCNT_G", "VRAMCntG", 8, w9, "VRAM-G Bank Control"),
		mmio(0x0400_0248, "VRAMCNT_H", "VRAMCntH", 8, w9, "VRAM-H Bank Control"),
		mmio(0x0400_0249, "VRAMCNT_I", "VRAMCntI", 8, w9, "VRAM-I Bank Control"),
	),
	section(secWRAM,
		mmio(0x0400_0241, "WRAMSTAT", "WRAMStat", 8, r7, "Shared WRAM Bank Status"),
		mmio(0x0400_0247, "WRAMCNT", "WRAMCnt", 8, rw9, "Shared WRAM Bank Control"),
	),
	section(secVideo,
		mmio(0x0400_0000, "DISPCNT_MAIN", "DispCntMain", 32, rw9, "Main Display Control"),
		mmio(0x0400_1000, "DISPCNT_SUB", "DispCntSub", 32, rw9, "Sub Display Control"),
		mmio(0x0400_0008, "BG0CNT_MAIN", "BG0CntMain", 16, rw9, "Main Background 0 Control"),
		mmio(0x0400_1008, "BG0CNT_SUB", "BG0CntSub", 16, rw9, "Sub Background 0 Control"),
		mmio(0x0400_000A, "BG1CNT_MAIN", "BG1CntMain", 16, rw9, "Main Background 1 Control"),
		mmio(0x0400_100A, "BG1CNT_SUB", "BG1CntSub", 16, rw9, "Sub Background 1 Control"),
		mmio(0x0400_000C, "BG2CNT_MAIN", "BG2CntMain", 16, rw9, "Main Background 2 Control"),
		mmio(0x0400_100C, "BG2CNT_SUB", "BG2CntSub", 16, rw9, "Sub Background 2 Control"),
		mmio(0x0400_000E, "BG3CNT_MAIN", "BG3CntMain", 16, rw9, "Main Background 3 Control"),
		mmio(0x0400_100E, "BG3CNT_SUB", "BG3CntSub", 16, rw9, "Sub Background 3 Control"),
		mmio(0x0400_0010, "BG0XOFS_MAIN", "BG0XOfsMain", 16, w9, "Main Background 0 X Offset"),
		mmio(0x0400_1010, "BG0XOFS_SUB", "BG0XOfsSub", 16, w9, "Sub Background 0 X Offset"),
		mmio(0x0400_0012, "BG0YOFS_MAIN", "BG0YOfsMain", 16, w9, "Main Background 0 Y Offset"),
		mmio(0x0400_1012, "BG0YOFS_SUB", "BG0YOfsSub", 16, w9, "Sub Background 0 Y Offset"),
		mmio(0x0400_0014, "BG1XOFS_MAIN", "BG1XOfsMain", 16, w9, "Main Background 1 X Offset"),
		mmio(0x0400_1014, "BG1XOFS_SUB", "BG1XOfsSub", 16, w9, "Sub Background 1 X Offset"),
		mmio(0x0400_0016, "BG1YOFS_MAIN", "BG1YOfsMain", 16, w9, "Main Background 1 Y Offset"),
		mmio(0x0400_1016, "BG1YOFS_SUB", "BG1YOfsSub", 16, w9, "Sub Background 1 Y Offset").
			note("historically published as BG2YOFS_SUB; the address is background 1's"),
		mmio(0x0400_0018, "BG2XOFS_MAIN", "BG2XOfsMain", 16, w9, "Main Background 2 X Offset"),
		mmio(0x0400_1018, "BG2XOFS_SUB", "BG2XOfsSub", 16, w9, "Sub Background 2 X Offset"),
		mmio(0x0400_001A, "BG2YOFS_MAIN", "BG2YOfsMain", 16, w9, "Main Background 2 Y Offset"),
		mmio(0x0400_101A, "BG2YOFS_SUB", "BG2YOfsSub", 16, w9, "Sub Background 2 Y Offset"),
		mmio(0x0400_001C, "BG3XOFS_MAIN", "BG3XOfsMain", 16, w9, "Main Background 3 X Offset"),
		mmio(0x0400_101C, "BG3XOFS_SUB", "BG3XOfsSub", 16, w9, "Sub Background 3 X Offset"),
		mmio(0x0400_001E, "BG3YOFS_MAIN", "BG3YOfsMain", 16, w9, "Main Background 3 Y Offset"),
		mmio(0x0400_101E, "BG3YOFS_SUB", "BG3YOfsSub", 16, w9, "Sub Background 3 Y Offset"),
		// each core has its own DISPSTAT
		mmio(0x0400_0004, "DISPSTAT", "DispStat", 16, rwBoth, "Display Status"),
		mmio(0x0400_0006, "VCOUNT", "VCount", 16, rwBoth, "Vertical Counter"),
		mmio(0x0400_006C, "MASTER_BRIGHT_MAIN", "MasterBrightMain", 16, rw9, "Main Master Brightness Up/Down"),
		mmio(0x0400_106C, "MASTER_BRIGHT_SUB", "MasterBrightSub", 16, rw9, "Sub Master Brightness Up/Down"),
	),
	section(secCapture,
		mmio(0x0400_0064, "DISPCAPCNT", "DispCapCnt", 32, rw9, "Display Capture Control"),
		mmio(0x0400_0068, "DISP_MMEM_FIFO", "DispMMemFIFO", 32, w9, "Main Memory Display FIFO"),
	),
	section(secMemory,
		block(BGPaletteMain, "BG_PALETTE_MAIN", "BGPaletteMain", 16, rw9, 256, 2, "Main Background Palette"),
		block(OBJPaletteMain, "OBJ_PALETTE_MAIN", "OBJPaletteMain", 16, rw9, 256, 2, "Main Object Palette"),
		block(BGPaletteSub, "BG_PALETTE_SUB", "BGPaletteSub", 16, rw9, 256, 2, "Sub Background Palette"),
		block(OBJPaletteSub, "OBJ_PALETTE_SUB", "OBJPaletteSub", 16, rw9, 256, 2, "Sub Object Palette"),
		block(OAMMain, "OAM_MAIN", "OAMMain", 16, rw9, 512, 2, "Main Object Attribute Memory"),
		block(OAMSub, "OAM_SUB", "OAMSub", 16, rw9, 512, 2, "Sub Object Attribute Memory"),
	),
	section(secDMA,
		mmio(0x0400_00B0, "DMA0SAD", "DMA0SAD", 32, wBoth, "DMA 0 Source Address"),
		mmio(0x0400_00BC, "DMA1SAD", "DMA1SAD", 32, wBoth, "DMA 1 Source Address"),
		mmio(0x0400_00C8, "DMA2SAD", "DMA2SAD", 32, wBoth, "DMA 2 Source Address"),
		mmio(0x0400_00D4, "DMA3SAD", "DMA3SAD", 32, wBoth, "DMA 3 Source Address"),
		mmio(0x0400_00B4, "DMA0DAD", "DMA0DAD", 32, wBoth, "DMA 0 Destination Address"),
		mmio(0x0400_00C0, "DMA1DAD", "DMA1DAD", 32, wBoth, "DMA 1 Destination Address"),
		mmio(0x0400_00CC, "DMA2DAD", "DMA2DAD", 32, wBoth, "DMA 2 Destination Address"),
		mmio(0x0400_00D8, "DMA3DAD", "DMA3DAD", 32, wBoth, "DMA 3 Destination Address"),
		mmio(0x0400_00B8, "DMA0CNT_L", "DMA0CntL", 16, wBoth, "DMA 0 Word Count"),
		mmio(0x0400_00C4, "DMA1CNT_L", "DMA1CntL", 16, wBoth, "DMA 1 Word Count"),
		mmio(0x0400_00D0, "DMA2CNT_L", "DMA2CntL", 16, wBoth, "DMA 2 Word Count"),
		mmio(0x0400_00DC, "DMA3CNT_L", "DMA3CntL", 16, wBoth, "DMA 3 Word Count"),
		mmio(0x0400_00BA, "DMA0CNT_H", "DMA0CntH", 16, rwBoth, "DMA 0 Control"),
		mmio(0x0400_00C6, "DMA1CNT_H", "DMA1CntH", 16, rwBoth, "DMA 1 Control"),
		mmio(0x0400_00D2, "DMA2CNT_H", "DMA2CntH", 16, rwBoth, "DMA 2 Control"),
		mmio(0x0400_00DE, "DMA3CNT_H", "DMA3CntH", 16, rwBoth, "DMA 3 Control"),
		mmio(0x0400_00E0, "DMA0FILL", "DMA0Fill", 32, rw9, "DMA 0 Filldata"),
		mmio(0x0400_00E4, "DMA1FILL", "DMA1Fill", 32, rw9, "DMA 1 Filldata"),
		mmio(0x0400_00E8, "DMA2FILL", "DMA2Fill", 32, rw9, "DMA 2 Filldata"),
		mmio(0x0400_00EC, "DMA3FILL", "DMA3Fill", 32, rw9, "DMA 3 Filldata"),
		block(0x0400_00B0, "DMASAD", "DMASAD", 32, wBoth, 4, 0xC, "DMA Source Address, by channel"),
		block(0x0400_00B4, "DMADAD", "DMADAD", 32, wBoth, 4, 0xC, "DMA Destination Address, by channel"),
		block(0x0400_00B8, "DMACNT_L", "DMACntL", 16, wBoth, 4, 0xC, "DMA Word Count, by channel"),
		block(0x0400_00BA, "DMACNT_H", "DMACntH", 16, rwBoth, 4, 0xC, "DMA Control, by channel"),
		block(0x0400_00E0, "DMAFILL", "DMAFill", 32, rw9, 4, 4, "DMA Filldata, by channel"),
	),
	section(secTimers,
		mmio(0x0400_0100, "TM0CNT_L", "TM0CntL", 16, rwBoth, "Timer 0 Counter/Reload"),
		mmio(0x0400_0104, "TM1CNT_L", "TM1CntL", 16, rwBoth, "Timer 1 Counter/Reload"),
		mmio(0x0400_0108, "TM2CNT_L", "TM2CntL", 16, rwBoth, "Timer 2 Counter/Reload"),
		mmio(0x0400_010C, "TM3CNT_L", "TM3CntL", 16, rwBoth, "Timer 3 Counter/Reload"),
		mmio(0x0400_0102, "TM0CNT_H", "TM0CntH", 16, rwBoth, "Timer 0 Control"),
		mmio(0x0400_0106, "TM1CNT_H", "TM1CntH", 16, rwBoth, "Timer 1 Control"),
		mmio(0x0400_010A, "TM2CNT_H", "TM2CntH", 16, rwBoth, "Timer 2 Control"),
		mmio(0x0400_010E, "TM3CNT_H", "TM3CntH", 16, rwBoth, "Timer 3 Control"),
		block(0x0400_0100, "TMCNT_L", "TMCntL", 16, rwBoth, 4, 4, "Timer Counter/Reload, by timer"),
		block(0x0400_0102, "TMCNT_H", "TMCntH", 16, rwBoth, 4, 4, "Timer Control, by timer"),
	),
	section(secIRQ,
		mmio(0x0400_0208, "IME", "IME", 32, rwBoth, "Interrupt Master Enable"),
		mmio(0x0400_0210, "IE", "IE", 32, rwBoth, "Interrupt Enable"),
		mmio(0x0400_0214, "IF", "IF", 32, rwBoth, "Interrupt Request Flags").
			note("writing 1 to a bit acknowledges it"),
	),
	section(secMaths,
		mmio(0x0400_0280, "DIVCNT", "DivCnt", 16, rw9, "Division Control"),
		block(0x0400_0290, "DIV_NUMER", "DivNumer", 32, rw9, 2, 4, "Division Numerator").
			note("64-bit register, low word first"),
		block(0x0400_0298, "DIV_DENOM", "DivDenom", 32, rw9, 2, 4, "Division Denominator").
			note("64-bit register, low word first"),
		block(0x0400_02A0, "DIV_RESULT", "DivResult", 32, Policy{ARM9: Read}, 2, 4, "Division Quotient").
			note("64-bit register, low word first"),
		block(0x0400_02A8, "DIVREM_RESULT", "DivRemResult", 32, Policy{ARM9: Read}, 2, 4, "Division Remainder").
			note("64-bit register, low word first"),
		mmio(0x0400_02B0, "SQRTCNT", "SqrtCnt", 16, rw9, "Square Root Control"),
		mmio(0x0400_02B4, "SQRT_RESULT", "SqrtResult", 32, Policy{ARM9: Read}, "Square Root Result"),
		block(0x0400_02B8, "SQRT_PARAM", "SqrtParam", 32, rw9, 2, 4, "Square Root Parameter").
			note("64-bit register, low word first"),
	),
	section(secIPC,
		mmio(0x0400_0180, "IPCSYNC", "IPCSync", 16, rwBoth, "IPC Synchronize"),
		mmio(0x0400_0184, "IPCFIFOCNT", "IPCFIFOCnt", 16, rwBoth, "IPC Fifo Control"),
		mmio(0x0400_0188, "IPCFIFOSEND", "IPCFIFOSend", 32, wBoth, "IPC Send Fifo"),
		mmio(0x0410_0000, "IPCFIFORECV", "IPCFIFORecv", 32, rBoth, "IPC Receive Fifo"),
	),
	section(secKeypad,
		mmio(0x0400_0130, "KEYINPUT", "KeyInput", 16, rBoth, "Key Input"),
		mmio(0x0400_0132, "KEYCNT", "KeyCnt", 16, rwBoth, "Key Interrupt Control"),
		mmio(0x0400_0136, "EXTKEYIN", "ExtKeyIn", 16, r7, "Extra Key Input"),
	),
	section(secSPI,
		mmio(0x0400_01C0, "SPICNT", "SPICnt", 16, rw7, "SPI Bus Control/Status"),
		mmio(0x0400_01C2, "SPIDATA", "SPIData", 16, rw7, "SPI Bus Data/Strobe"),
	),
	section(secPower,
		mmio(0x0400_0304, "POWCNT1", "PowCnt1", 16, rw9, "Graphics Power Control"),
		mmio(0x0400_0304, "POWCNT2", "PowCnt2", 16, rw7, "Sound/Wifi Power Control"),
		mmio(0x0400_0206, "WIFIWAITCNT", "WifiWaitCnt", 16, rw7, "Wifi Waitstate Control"),
		mmio(0x0400_0301, "HALTCNT", "HaltCnt", 8, rw7, "Low Power Mode Control"),
		mmio(0x0400_0300, "POSTFLG", "PostFlg", 8, rwBoth, "Post Boot Flag"),
	),
	section(secDebug,
		block(0x04FF_FA00, "NOCASH_EMUID", "NocashEmuID", 8, rBoth, 16, 1, "Nocash Emulator ID"),
		mmio(0x04FF_FA10, "NOCASH_STROUT_RAW", "NocashStrOutRaw", 32, wBoth, "Nocash String Out (raw)"),
		mmio(0x04FF_FA14, "NOCASH_STROUT_PARAM", "NocashStrOutParam", 32, wBoth, "Nocash String Out (with %params)"),
		mmio(0x04FF_FA18, "NOCASH_STROUT_PARAM_LF", "NocashStrOutParamLF", 32, wBoth, "Nocash String Out (with %params and linefeed)"),
		mmio(0x04FF_FA1C, "NOCASH_CHAROUT", "NocashCharOut", 32, wBoth, "Nocash Character Out").
			note("8-bit in no$gba; declared 32-bit because melonDS only accepts word stores here"),
		block(0x04FF_FA20, "NOCASH_CLOCKS", "NocashClocks", 32, rBoth, 2, 4, "Nocash Clock Cycles").
			note("64-bit counter, low word first"),
	),
)
