package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/boncheolgu/annometa"
)

// Check reports which declarations carry an annotation path.
type Check struct {
	Targets []string `arg:"" name:"target" help:"Go files or package directories to scan" type:"path"`
	Path    string   `help:"Dotted annotation path, e.g. serde.skip" required:"" short:"p" env:"ANNOMETA_PATH"`
	Decl    string   `help:"Restrict the query to a single declaration" short:"d"`
}

// Run is called by Kong when the check command is executed.
func (c *Check) Run(logger *slog.Logger) error {
	path := strings.Split(c.Path, ".")

	decls, err := scanTargets(c.Targets)
	if err != nil {
		return err
	}
	logger.Debug("scan complete", "files", decls.files, "decls", len(decls.names))

	matched := 0
	for _, name := range decls.names {
		if c.Decl != "" && name != c.Decl {
			continue
		}
		if annometa.Contains(decls.attrs[name], path...) {
			fmt.Println(name)
			matched++
		}
	}

	if matched == 0 {
		return fmt.Errorf("no declaration carries @%s", c.Path)
	}
	logger.Info("annotation present", "path", c.Path, "declarations", matched)
	return nil
}
