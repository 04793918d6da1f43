// Package arm7 declares the MMIO registers the sub CPU may touch. See package
// arm9 for how the handles are laid out.
package arm7

//go:generate go run dsio/tools/regdec/cmd/regdec -core arm7 -o registers.go
