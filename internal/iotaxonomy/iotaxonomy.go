// Package iotaxonomy reads taxonomy release files. A taxonomy file has
// one label per line.
package iotaxonomy

import (
	"bufio"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gncamtrap/pkg/taxonomy"
)

// Read returns non-empty lines of a taxonomy file.
func Read(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, TaxonomyReadError(path, err)
	}
	defer f.Close()

	var res []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		res = append(res, line)
	}
	if err = sc.Err(); err != nil {
		return nil, TaxonomyReadError(path, err)
	}
	return res, nil
}

// Load reads a taxonomy file and builds an ancestor index from it.
func Load(path string) (*taxonomy.Index, error) {
	lines, err := Read(path)
	if err != nil {
		return nil, err
	}

	idx, err := taxonomy.New(lines)
	if err != nil {
		return nil, err
	}

	slog.Info("Taxonomy loaded",
		"path", path,
		"labels", len(lines),
		"keys", idx.Len(),
	)
	return idx, nil
}
