// Package regdec turns the DS register table into per-core Go packages of
// typed volatile handles. Each core package declares only what that core may
// touch, with the handle type carrying the capability, so a policy violation
// is a compile error in the code that uses it.
package regdec

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"text/template"

	"dsio/hardware/nds"
)

// UserOptions come from the command line.
type UserOptions struct {
	Core    nds.Core
	Pkg     string // package to emit generated code into
	OutTags string // build constraint, copied verbatim to the output
	Import  string // package that has the volatile handles
	Source  string // recorded in the header
}

// DefaultImport is the handle package of this module.
const DefaultImport = "dsio/hardware/volatile"

type templateGroup struct {
	preamble *template.Template
	decl     *template.Template
	lookup   *template.Template
}

func createOutputTemplates() *templateGroup {
	return &templateGroup{
		preamble: template.Must(template.New("preamble").Parse(preambleTemplateText)),
		decl:     template.Must(template.New("decl").Parse(declTemplateText)),
		lookup:   template.Must(template.New("lookup").Parse(lookupTemplateText)),
	}
}

type fileData struct {
	UserOptions
	Decls []Decl
}

// Generate writes the gofmt'ed handle declarations for opts.Core to w. It
// refuses to generate anything from a table that does not validate.
func Generate(w io.Writer, opts UserOptions) error {
	if err := nds.Validate(nds.Registers()); err != nil {
		return fmt.Errorf("register table: %w", err)
	}
	if opts.Pkg == "" {
		opts.Pkg = opts.Core.String()
	}
	if opts.Import == "" {
		opts.Import = DefaultImport
	}
	if opts.Source == "" {
		opts.Source = "dsio/hardware/nds"
	}
	data := fileData{UserOptions: opts, Decls: Plan(opts.Core)}

	group := createOutputTemplates()
	var output bytes.Buffer
	if err := group.preamble.Execute(&output, data); err != nil {
		return fmt.Errorf("failed to execute the preamble template: %w", err)
	}
	for _, d := range data.Decls {
		if err := group.decl.Execute(&output, d); err != nil {
			return fmt.Errorf("failed to execute the declaration template for %s: %w", d.Name, err)
		}
	}
	if err := group.lookup.Execute(&output, data); err != nil {
		return fmt.Errorf("failed to execute the lookup template: %w", err)
	}
	src, err := format.Source(output.Bytes())
	if err != nil {
		return fmt.Errorf("generated source for %s does not format: %w", opts.Core, err)
	}
	_, err = w.Write(src)
	return err
}

const preambleTemplateText = `// Code generated by regdec from {{.Source}}; DO NOT EDIT.
{{if .OutTags}}
//go:build {{.OutTags}}
{{end}}
package {{.Pkg}}

import (
	"strings"

	"{{.Import}}"
)
`

const declTemplateText = `
{{range .Doc}}// {{.}}
{{end}}var {{.Ident}} = {{.Expr}}
`

const lookupTemplateText = `
// Lookup returns the {{.Core}} handle for a register name, ignoring case.
func Lookup(name string) (volatile.Handle, bool) {
	switch strings.ToUpper(name) {
{{- range .Decls}}
	case "{{.Name}}":
		return {{.Ident}}, true
{{- end}}
	}
	return nil, false
}

// Names lists the {{.Core}} registers in address order.
func Names() []string {
	return []string{
{{- range .Decls}}
		"{{.Name}}",
{{- end}}
	}
}
`
