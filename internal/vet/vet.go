// Package vet statically checks Go sources that use assumptions.
//
// It reports build-time findings for malformed directive comments,
// template/argument arity mismatches at assume call sites, and the
// documented caller hazard: side-effecting expressions in an eagerly
// evaluated condition.
package vet

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"go/types"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sufield/assume/internal/directive"
)

// Diagnostic is one finding in one source position.
type Diagnostic struct {
	Pos     token.Position
	Message string
	// Hazard marks usage-contract warnings (side-effecting
	// conditions); non-hazard diagnostics are outright errors.
	Hazard bool
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Pos, d.Message)
}

// Files runs the checks over the given paths. Directories are walked
// for .go files; hidden and underscore-prefixed entries are skipped.
func Files(paths ...string) ([]Diagnostic, error) {
	var diags []Diagnostic
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.IsDir() {
			ds, err := File(path)
			if err != nil {
				return nil, err
			}
			diags = append(diags, ds...)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			name := d.Name()
			if d.IsDir() {
				if p != path && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "testdata") {
					return filepath.SkipDir
				}
				return nil
			}
			if !strings.HasSuffix(name, ".go") {
				return nil
			}
			ds, err := File(p)
			if err != nil {
				return err
			}
			diags = append(diags, ds...)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", path, err)
		}
	}
	return diags, nil
}

// File checks a single Go source file. A file the parser rejects is
// itself a finding; it never aborts a multi-file run.
func File(path string) ([]Diagnostic, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return []Diagnostic{parseFailure(path, err)}, nil
	}
	var diags []Diagnostic
	diags = append(diags, commentDirectives(fset, f)...)
	diags = append(diags, callSites(fset, f)...)
	return diags, nil
}

// parseFailure converts a parser error into a positioned diagnostic,
// keeping the first syntax error's location when one is available.
func parseFailure(path string, err error) Diagnostic {
	var list scanner.ErrorList
	if errors.As(err, &list) && len(list) > 0 {
		return Diagnostic{Pos: list[0].Pos, Message: list[0].Msg}
	}
	return Diagnostic{Pos: token.Position{Filename: path}, Message: err.Error()}
}

// commentDirectives validates //assume(...) comments against the
// invocation grammar.
func commentDirectives(fset *token.FileSet, f *ast.File) []Diagnostic {
	var diags []Diagnostic
	for _, group := range f.Comments {
		for _, c := range group.List {
			text := strings.TrimSpace(strings.TrimPrefix(c.Text, "//"))
			if !strings.HasPrefix(text, "assume(") {
				continue
			}
			if _, err := directive.Parse(text); err != nil {
				diags = append(diags, Diagnostic{
					Pos:     fset.Position(c.Pos()),
					Message: err.Error(),
				})
			}
		}
	}
	return diags
}

// callSites checks calls to the assume package surface.
func callSites(fset *token.FileSet, f *ast.File) []Diagnostic {
	var diags []Diagnostic
	ast.Inspect(f, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		pkg, ok := sel.X.(*ast.Ident)
		if !ok || pkg.Name != "assume" {
			return true
		}
		var formatAt int
		switch sel.Sel.Name {
		case "That", "Holds":
			formatAt = 1
		case "Never", "Failf":
			formatAt = 0
		default:
			return true
		}

		if sel.Sel.Name == "That" && len(call.Args) > 0 {
			if fn := calledIn(call.Args[0]); fn != "" {
				diags = append(diags, Diagnostic{
					Pos:     fset.Position(call.Args[0].Pos()),
					Message: fmt.Sprintf("condition calls %s; optimized builds do not evaluate assumptions, hoist the call or use assume.Holds", fn),
					Hazard:  true,
				})
			}
		}

		if call.Ellipsis.IsValid() || len(call.Args) <= formatAt {
			return true
		}
		lit, ok := call.Args[formatAt].(*ast.BasicLit)
		if !ok || lit.Kind != token.STRING {
			return true
		}
		tmpl, err := strconv.Unquote(lit.Value)
		if err != nil {
			return true
		}
		if err := directive.CheckArity(tmpl, len(call.Args)-formatAt-1); err != nil {
			diags = append(diags, Diagnostic{
				Pos:     fset.Position(lit.Pos()),
				Message: err.Error(),
			})
		}
		return true
	})
	return diags
}

// calledIn returns the first non-builtin function call inside an
// expression, or "" when there is none. Purely syntactic: without type
// information a conversion like uid(x) still reads as a call, which is
// acceptable for a hazard warning.
func calledIn(e ast.Expr) string {
	var name string
	ast.Inspect(e, func(n ast.Node) bool {
		if name != "" {
			return false
		}
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		if id, ok := call.Fun.(*ast.Ident); ok && pureBuiltin[id.Name] {
			return true
		}
		name = types.ExprString(call.Fun)
		return false
	})
	return name
}

// pureBuiltin lists builtins and predeclared types whose call syntax
// cannot have side effects.
var pureBuiltin = map[string]bool{
	"len": true, "cap": true, "min": true, "max": true,
	"real": true, "imag": true, "complex": true,
	"bool": true, "string": true, "byte": true, "rune": true, "any": true,
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"uintptr": true, "float32": true, "float64": true,
	"complex64": true, "complex128": true,
}
