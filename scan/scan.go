// Package scan extracts annotation directives from Go source files.
//
// A directive is a comment line beginning with `@`, e.g.
//
//	// @serde(rename = "user_id", skip)
//	type User struct { ... }
//
// Directives in the doc comment of a type, function, method, const, var or
// struct field become Outer attributes bound to that declaration. A line
// beginning with `@!` anywhere in the file becomes an Inner, file-scoped
// attribute.
package scan

import (
	"fmt"
	"go/ast"
	goparser "go/parser"
	"go/token"
	"path/filepath"
	"strings"

	"github.com/boncheolgu/annometa"
	"github.com/boncheolgu/annometa/parse"
)

// FileAnnotations holds every directive found in one Go file.
type FileAnnotations struct {
	Path string

	// Names lists annotated declarations in source order. Struct fields
	// are named "Type.Field" and methods "Receiver.Method".
	Names []string

	decls map[string][]annometa.Attribute
	inner []annometa.Attribute
}

// Decl returns the outer attributes bound to the named declaration.
func (f *FileAnnotations) Decl(name string) []annometa.Attribute {
	return f.decls[name]
}

// Inner returns the file-scoped attributes.
func (f *FileAnnotations) Inner() []annometa.Attribute {
	return f.inner
}

func (f *FileAnnotations) bind(name string, attrs []annometa.Attribute) {
	if len(attrs) == 0 {
		return
	}
	if _, seen := f.decls[name]; !seen {
		f.Names = append(f.Names, name)
	}
	f.decls[name] = append(f.decls[name], attrs...)
}

// PackageAnnotations aggregates the files of one directory.
type PackageAnnotations struct {
	Dir   string
	Files []*FileAnnotations
}

// Decl returns the outer attributes bound to the named declaration across
// all files of the package, in file order.
func (p *PackageAnnotations) Decl(name string) []annometa.Attribute {
	var attrs []annometa.Attribute
	for _, f := range p.Files {
		attrs = append(attrs, f.Decl(name)...)
	}
	return attrs
}

// File parses one Go source file and collects its annotation directives.
// A malformed directive aborts the scan with an error carrying the
// file:line position.
func File(path string) (*FileAnnotations, error) {
	fset := token.NewFileSet()
	node, err := goparser.ParseFile(fset, path, nil, goparser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse file: %w", err)
	}
	return collect(fset, path, node)
}

// Package scans all Go files in a directory (non-recursively), skipping
// _test.go files.
func Package(dir string) (*PackageAnnotations, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return nil, fmt.Errorf("glob package files: %w", err)
	}

	pkg := &PackageAnnotations{Dir: dir}
	for _, file := range matches {
		if strings.HasSuffix(file, "_test.go") {
			continue
		}
		fa, err := File(file)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", file, err)
		}
		pkg.Files = append(pkg.Files, fa)
	}
	return pkg, nil
}

func collect(fset *token.FileSet, path string, node *ast.File) (*FileAnnotations, error) {
	out := &FileAnnotations{
		Path:  path,
		decls: make(map[string][]annometa.Attribute),
	}

	// Inner directives may sit in any comment group, including doc
	// comments; outer directives are picked up per declaration below.
	for _, cg := range node.Comments {
		for _, line := range directiveLines(cg) {
			if !strings.HasPrefix(line.text, "@!") {
				continue
			}
			attr, err := parse.Parse(line.text)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", fset.Position(line.pos), err)
			}
			out.inner = append(out.inner, attr)
		}
	}

	for _, decl := range node.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			attrs, err := outerAttrs(fset, d.Doc)
			if err != nil {
				return nil, err
			}
			out.bind(funcName(d), attrs)

		case *ast.GenDecl:
			declAttrs, err := outerAttrs(fset, d.Doc)
			if err != nil {
				return nil, err
			}
			for _, spec := range d.Specs {
				if err := collectSpec(fset, out, d, spec, declAttrs); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}

func collectSpec(fset *token.FileSet, out *FileAnnotations, decl *ast.GenDecl, spec ast.Spec, declAttrs []annometa.Attribute) error {
	switch s := spec.(type) {
	case *ast.TypeSpec:
		attrs, err := outerAttrs(fset, s.Doc)
		if err != nil {
			return err
		}
		// The GenDecl doc belongs to the spec only when it is the sole one.
		if len(decl.Specs) == 1 {
			attrs = append(declAttrs, attrs...)
		}
		out.bind(s.Name.Name, attrs)

		if st, ok := s.Type.(*ast.StructType); ok {
			if err := collectFields(fset, out, s.Name.Name, st); err != nil {
				return err
			}
		}

	case *ast.ValueSpec:
		attrs, err := outerAttrs(fset, s.Doc)
		if err != nil {
			return err
		}
		if len(decl.Specs) == 1 {
			attrs = append(declAttrs, attrs...)
		}
		for _, name := range s.Names {
			out.bind(name.Name, attrs)
		}
	}
	return nil
}

func collectFields(fset *token.FileSet, out *FileAnnotations, typeName string, st *ast.StructType) error {
	for _, field := range st.Fields.List {
		attrs, err := outerAttrs(fset, field.Doc)
		if err != nil {
			return err
		}
		for _, name := range field.Names {
			out.bind(typeName+"."+name.Name, attrs)
		}
	}
	return nil
}

// outerAttrs parses the outer directives of one doc comment. Inner
// directives (`@!`) are left to the file-level pass.
func outerAttrs(fset *token.FileSet, doc *ast.CommentGroup) ([]annometa.Attribute, error) {
	var attrs []annometa.Attribute
	for _, line := range directiveLines(doc) {
		if strings.HasPrefix(line.text, "@!") {
			continue
		}
		attr, err := parse.Parse(line.text)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fset.Position(line.pos), err)
		}
		attrs = append(attrs, attr)
	}
	return attrs, nil
}

type commentLine struct {
	text string
	pos  token.Pos
}

// directiveLines splits a comment group into trimmed lines and keeps those
// that look like directives.
func directiveLines(cg *ast.CommentGroup) []commentLine {
	if cg == nil {
		return nil
	}
	var lines []commentLine
	for _, c := range cg.List {
		text := c.Text
		switch {
		case strings.HasPrefix(text, "//"):
			text = strings.TrimPrefix(text, "//")
		case strings.HasPrefix(text, "/*"):
			text = strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")
		}
		for _, raw := range strings.Split(text, "\n") {
			trimmed := strings.TrimSpace(raw)
			if strings.HasPrefix(trimmed, "@") {
				lines = append(lines, commentLine{text: trimmed, pos: c.Pos()})
			}
		}
	}
	return lines
}

func funcName(d *ast.FuncDecl) string {
	if d.Recv == nil || len(d.Recv.List) == 0 {
		return d.Name.Name
	}
	recv := d.Recv.List[0].Type
	if star, ok := recv.(*ast.StarExpr); ok {
		recv = star.X
	}
	// Generic receivers carry their type parameters in an index expression.
	switch r := recv.(type) {
	case *ast.IndexExpr:
		recv = r.X
	case *ast.IndexListExpr:
		recv = r.X
	}
	if ident, ok := recv.(*ast.Ident); ok {
		return ident.Name + "." + d.Name.Name
	}
	return d.Name.Name
}
