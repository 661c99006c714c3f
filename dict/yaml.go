package dict

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/braillekit/bzp/cell"
)

// yamlTable is the on-disk shape of an external pattern source. Cells are
// given in braille dot notation, one string per cell:
//
//	contractions:
//	  - pattern: the
//	    dots: ["2346"]
//	  - pattern: tion
//	    dots: ["56", "1345"]
type yamlTable struct {
	Contractions []yamlEntry `yaml:"contractions"`
}

type yamlEntry struct {
	Pattern string   `yaml:"pattern"`
	Dots    []string `yaml:"dots"`
}

// LoadYAML builds a dictionary from a YAML pattern source.
//
// The loaded table passes through the same fail-fast validation as New, so
// a file with duplicate patterns or ambiguous replacements is rejected at
// load time, not discovered during decompression.
func LoadYAML(r io.Reader) (*Dictionary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read pattern source: %w", err)
	}

	var table yamlTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse pattern source: %w", err)
	}

	entries := make([]Entry, 0, len(table.Contractions))
	for _, ye := range table.Contractions {
		cells := make([]cell.Symbol, 0, len(ye.Dots))
		for _, dots := range ye.Dots {
			s, err := cell.FromDots(dots)
			if err != nil {
				return nil, fmt.Errorf("pattern %q: %w", ye.Pattern, err)
			}
			cells = append(cells, s)
		}

		entries = append(entries, Entry{Pattern: ye.Pattern, Cells: cells})
	}

	return New(entries)
}
