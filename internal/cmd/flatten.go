package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	toml "github.com/pelletier/go-toml"
	"golang.org/x/term"
	yaml "gopkg.in/yaml.v3"

	"github.com/boncheolgu/annometa"
)

// Flatten collects annotations into a flattened key/value map per
// declaration and encodes it as JSON, YAML or TOML.
type Flatten struct {
	Targets   []string `arg:"" name:"target" help:"Go files or package directories to scan" type:"path"`
	Separator string   `help:"Key separator for nested annotations" default:"." env:"ANNOMETA_SEPARATOR"`
	Format    string   `help:"Output format" enum:"json,yaml,toml" default:"json" short:"f"`
	Output    string   `help:"Destination file path (defaults to stdout)" short:"o"`
	Decl      string   `help:"Restrict the output to a single declaration" short:"d"`
}

// Run is called by Kong when the flatten command is executed.
func (f *Flatten) Run(logger *slog.Logger) error {
	decls, err := scanTargets(f.Targets)
	if err != nil {
		return err
	}

	root := map[string]any{}
	for _, name := range decls.names {
		if f.Decl != "" && name != f.Decl {
			continue
		}
		flat, err := annometa.Flatten(decls.attrs[name], f.Separator)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		root[name] = litMapValues(flat)
	}

	if f.Decl != "" && len(root) == 0 {
		return fmt.Errorf("declaration %q carries no annotations", f.Decl)
	}
	logger.Debug("flatten complete", "declarations", len(root))

	w := io.Writer(os.Stdout)
	pretty := term.IsTerminal(int(os.Stdout.Fd()))
	if f.Output != "" {
		out, err := os.Create(f.Output)
		if err != nil {
			return err
		}
		defer out.Close()
		w = out
		pretty = true
	}

	return encodeMap(w, f.Format, root, pretty)
}

// litMapValues converts a flattened literal map into plain Go values so any
// of the encoders can handle it.
func litMapValues(flat map[string][]annometa.Lit) map[string][]any {
	out := make(map[string][]any, len(flat))
	for key, lits := range flat {
		values := make([]any, 0, len(lits))
		for _, lit := range lits {
			values = append(values, lit.Value())
		}
		out[key] = values
	}
	return out
}

func encodeMap(w io.Writer, format string, data any, pretty bool) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(data)
	default:
		enc := json.NewEncoder(w)
		if pretty {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(data)
	}
}
