// Package typecheck type-checks Go snippets against this module's packages,
// read from source. Tests use it to show that a misuse does not build.
package typecheck

import (
	"bufio"
	"errors"
	"fmt"
	"go/ast"
	"go/build"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"
)

// Module locates the enclosing module of the working directory.
type Module struct {
	Root string // directory holding go.mod
	Path string // module path
}

// FindModule walks up from dir to the nearest go.mod.
func FindModule(dir string) (Module, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return Module{}, err
	}
	for {
		gomod := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(gomod); err == nil {
			path, err := modulePath(gomod)
			if err != nil {
				return Module{}, err
			}
			return Module{Root: dir, Path: path}, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Module{}, errors.New("typecheck: no go.mod found")
		}
		dir = parent
	}
}

func modulePath(gomod string) (string, error) {
	fp, err := os.Open(gomod)
	if err != nil {
		return "", err
	}
	defer fp.Close()
	sc := bufio.NewScanner(fp)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if rest, ok := strings.CutPrefix(line, "module"); ok {
			return strings.Trim(strings.TrimSpace(rest), `"`), nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("typecheck: %s has no module line", gomod)
}

// Checker type-checks snippets. Module packages are parsed from disk with
// the default build context; everything else comes from the source importer.
type Checker struct {
	mod  Module
	fset *token.FileSet
	std  types.Importer
	pkgs map[string]*types.Package
}

func NewChecker(mod Module) *Checker {
	fset := token.NewFileSet()
	return &Checker{
		mod:  mod,
		fset: fset,
		std:  importer.ForCompiler(fset, "source", nil),
		pkgs: map[string]*types.Package{},
	}
}

func (c *Checker) Import(path string) (*types.Package, error) {
	if pkg, ok := c.pkgs[path]; ok {
		return pkg, nil
	}
	rel, ok := strings.CutPrefix(path, c.mod.Path+"/")
	if !ok {
		return c.std.Import(path)
	}
	bp, err := build.Default.ImportDir(filepath.Join(c.mod.Root, filepath.FromSlash(rel)), 0)
	if err != nil {
		return nil, err
	}
	var files []*ast.File
	for _, name := range bp.GoFiles {
		f, err := parser.ParseFile(c.fset, filepath.Join(bp.Dir, name), nil, 0)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	conf := types.Config{Importer: c}
	pkg, err := conf.Check(path, c.fset, files, nil)
	if err != nil {
		return nil, err
	}
	c.pkgs[path] = pkg
	return pkg, nil
}

// Check type-checks src as a single file package and returns every type
// error found, or nil when it builds.
func (c *Checker) Check(src string) []error {
	f, err := parser.ParseFile(c.fset, "snippet.go", src, 0)
	if err != nil {
		return []error{err}
	}
	var errs []error
	conf := types.Config{
		Importer: c,
		Error:    func(err error) { errs = append(errs, err) },
	}
	conf.Check("snippet", c.fset, []*ast.File{f}, nil)
	return errs
}
