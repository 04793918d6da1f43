package regdec

import (
	"fmt"
	"io"

	"dsio/hardware/nds"
)

// Decl is one package level handle in a generated core package.
type Decl struct {
	Ident  string
	Name   string
	Ctor   string // NewReadOnly, NewWriteOnly, NewReadWrite, NewBlock or NewSeries
	Handle string // element handle type, e.g. volatile.ReadOnly[uint16]
	Width  int
	Addr   uintptr
	Count  int
	Stride uintptr // only set for NewSeries
	Doc    []string
}

// Expr is the initializer of the declaration.
func (d Decl) Expr() string {
	switch d.Ctor {
	case "NewBlock":
		return fmt.Sprintf("volatile.NewBlock[%s](0x%08X, %d)", d.Handle, d.Addr, d.Count)
	case "NewSeries":
		return fmt.Sprintf("volatile.NewSeries[%s](0x%08X, %d, 0x%X)", d.Handle, d.Addr, d.Count, d.Stride)
	}
	return fmt.Sprintf("volatile.%s[uint%d](0x%08X)", d.Ctor, d.Width, d.Addr)
}

var handleTypes = map[nds.Access]string{
	nds.Read:      "ReadOnly",
	nds.Write:     "WriteOnly",
	nds.ReadWrite: "ReadWrite",
}

// Plan returns the declarations for core c, sorted by address.
func Plan(c nds.Core) []Decl {
	var out []Decl
	for _, r := range nds.ForCore(c) {
		out = append(out, declFor(r, c))
	}
	return out
}

func declFor(r nds.Register, c nds.Core) Decl {
	kind := handleTypes[r.Policy.For(c)]
	d := Decl{
		Ident:  r.Ident,
		Name:   r.Name,
		Handle: fmt.Sprintf("volatile.%s[uint%d]", kind, r.Width),
		Width:  r.Width,
		Addr:   r.Addr,
		Doc:    []string{fmt.Sprintf("%s is %s, %s.", r.Ident, r.Name, r.Description)},
	}
	switch {
	case !r.IsBlock():
		d.Ctor = "New" + kind
	case r.Stride == 0 || r.Stride == r.Size():
		d.Ctor, d.Count = "NewBlock", r.Count
	default:
		d.Ctor, d.Count, d.Stride = "NewSeries", r.Count, r.Stride
	}
	d.Doc = append(d.Doc, "Access: "+r.Policy.String())
	if r.Note != "" {
		d.Doc = append(d.Doc, "Note: "+r.Note+".")
	}
	if r.Section != "" {
		d.Doc = append(d.Doc, "See "+r.Section)
	}
	return d
}

// Dump writes a human readable version of the plan (debugging use only).
func Dump(w io.Writer, c nds.Core) error {
	for _, d := range Plan(c) {
		if _, err := fmt.Fprintf(w, "%-24s %-20s %s\n", d.Name, d.Ident, d.Expr()); err != nil {
			return err
		}
	}
	return nil
}
