//go:build tinygo

// Keypad runs on the ARM9 and reports button changes once per frame on the
// emulator's debug console (no$gba and melonDS both implement it).
package main

import "dsio/hardware/nds/arm9"

var buttons = [...]string{"A", "B", "SELECT", "START", "RIGHT", "LEFT", "UP", "DOWN", "R", "L"}

func debug(s string) {
	for i := 0; i < len(s); i++ {
		arm9.NocashCharOut.Write(uint32(s[i]))
	}
}

func waitVBlank() {
	for arm9.DispStat.Read()&1 != 0 {
	}
	for arm9.DispStat.Read()&1 == 0 {
	}
}

func main() {
	arm9.PowCnt1.Write(arm9.PowCnt1.Read() | 1) // both LCDs on
	debug("keypad: running\n")
	last := arm9.KeyInput.Read()
	for {
		waitVBlank()
		keys := arm9.KeyInput.Read()
		changed := keys ^ last
		for i, name := range buttons {
			if changed&(1<<i) == 0 {
				continue
			}
			// active low
			if keys&(1<<i) == 0 {
				debug(name + " down\n")
			} else {
				debug(name + " up\n")
			}
		}
		last = keys
	}
}
