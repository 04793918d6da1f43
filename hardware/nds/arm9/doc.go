// Package arm9 declares the MMIO registers the main CPU may touch, one typed
// volatile handle each. A register the ARM9 cannot access is not declared
// here at all, and a register it may only read has no Write method. Several
// addresses are also declared in package arm7 with a different capability.
package arm9

//go:generate go run dsio/tools/regdec/cmd/regdec -core arm9 -o registers.go
