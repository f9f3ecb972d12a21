package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/boncheolgu/annometa"
)

// Get looks up the first literal value at an annotation path, in
// declaration order.
type Get struct {
	Targets []string `arg:"" name:"target" help:"Go files or package directories to scan" type:"path"`
	Path    string   `help:"Dotted annotation path, e.g. serde.rename" required:"" short:"p" env:"ANNOMETA_PATH"`
	As      string   `help:"Coerce the value to a type" enum:"lit,string,int,uint,float,bool" default:"lit"`
	Decl    string   `help:"Restrict the query to a single declaration" short:"d"`
}

// Run is called by Kong when the get command is executed.
func (g *Get) Run(logger *slog.Logger) error {
	path := strings.Split(g.Path, ".")

	decls, err := scanTargets(g.Targets)
	if err != nil {
		return err
	}

	for _, name := range decls.names {
		if g.Decl != "" && name != g.Decl {
			continue
		}
		lit, ok := annometa.Value(decls.attrs[name], path...)
		if !ok {
			continue
		}
		logger.Debug("value found", "decl", name, "path", g.Path, "kind", lit.Kind.String())
		return printLit(lit, g.As)
	}

	return fmt.Errorf("no value at @%s", g.Path)
}

func printLit(lit annometa.Lit, as string) error {
	switch as {
	case "string":
		v, err := annometa.Cast[string](lit)
		if err != nil {
			return err
		}
		fmt.Println(v)
	case "int":
		v, err := annometa.Cast[int64](lit)
		if err != nil {
			return err
		}
		fmt.Println(v)
	case "uint":
		v, err := annometa.Cast[uint64](lit)
		if err != nil {
			return err
		}
		fmt.Println(v)
	case "float":
		v, err := annometa.Cast[float64](lit)
		if err != nil {
			return err
		}
		fmt.Println(v)
	case "bool":
		v, err := annometa.Cast[bool](lit)
		if err != nil {
			return err
		}
		fmt.Println(v)
	default:
		fmt.Println(lit.String())
	}
	return nil
}
