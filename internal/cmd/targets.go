package cmd

import (
	"fmt"
	"os"

	"github.com/boncheolgu/annometa"
	"github.com/boncheolgu/annometa/scan"
)

// declSet holds the annotated declarations of all scanned targets, merged
// across files, in scan order.
type declSet struct {
	names []string
	attrs map[string][]annometa.Attribute
	files int
}

func (d *declSet) bind(name string, attrs []annometa.Attribute) {
	if _, seen := d.attrs[name]; !seen {
		d.names = append(d.names, name)
	}
	d.attrs[name] = append(d.attrs[name], attrs...)
}

// scanTargets resolves positional arguments into scanned declarations.
// Directories are scanned as packages, everything else as a single file.
func scanTargets(targets []string) (*declSet, error) {
	out := &declSet{attrs: make(map[string][]annometa.Attribute)}

	addFile := func(f *scan.FileAnnotations) {
		out.files++
		for _, name := range f.Names {
			out.bind(name, f.Decl(name))
		}
	}

	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			pkg, err := scan.Package(target)
			if err != nil {
				return nil, err
			}
			for _, f := range pkg.Files {
				addFile(f)
			}
			continue
		}
		f, err := scan.File(target)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", target, err)
		}
		addFile(f)
	}

	return out, nil
}
