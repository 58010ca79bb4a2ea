package pattern

import (
	"fmt"

	"github.com/katalvlaran/lvlife/life"
	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a pattern.
// Either Alive or Cells (or both) describe the live cells. With Cells alone,
// Rows and Cols default to the picture's size.
type Document struct {
	Name  string   `yaml:"name"`
	Rows  int      `yaml:"rows"`
	Cols  int      `yaml:"cols"`
	Alive [][]int  `yaml:"alive,omitempty"`
	Cells []string `yaml:"cells,omitempty"`
}

// Pattern is a decoded, validated seed grid.
type Pattern struct {
	Name string
	Grid *life.Grid
}

// ParseYAML decodes and validates a YAML pattern document.
func ParseYAML(data []byte) (*Pattern, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return doc.Build()
}

// Build validates doc and converts it into a Pattern.
func (doc *Document) Build() (*Pattern, error) {
	rows, cols := doc.Rows, doc.Cols
	if len(doc.Cells) > 0 {
		if rows == 0 {
			rows = len(doc.Cells)
		}
		if cols == 0 {
			cols = len(doc.Cells[0])
		}
		if rows != len(doc.Cells) {
			return nil, fmt.Errorf("%w: rows=%d but cells has %d lines", ErrDimensions, rows, len(doc.Cells))
		}
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: rows=%d cols=%d", ErrDimensions, rows, cols)
	}
	if rows > MaxCells/cols {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrDimensions, rows, cols, MaxCells)
	}

	g, err := life.NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	for r, line := range doc.Cells {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: cells line %d has %d cells, want %d", ErrCellCount, r, len(line), cols)
		}
		for c, ch := range []byte(line) {
			switch ch {
			case '#', 'O', 'o', '1':
				g.Set(r, c, life.Alive)
			case '.', '0':
			default:
				return nil, fmt.Errorf("%w: cells line %d col %d: unexpected %q", ErrSyntax, r, c, ch)
			}
		}
	}
	for i, rc := range doc.Alive {
		if len(rc) != 2 {
			return nil, fmt.Errorf("%w: alive[%d] has %d values, want [row, col]", ErrSyntax, i, len(rc))
		}
		if !g.InBounds(rc[0], rc[1]) {
			return nil, fmt.Errorf("%w: alive[%d] = (%d,%d) on %dx%d", ErrCoordinate, i, rc[0], rc[1], rows, cols)
		}
		g.Set(rc[0], rc[1], life.Alive)
	}

	return &Pattern{Name: doc.Name, Grid: g}, nil
}

// MarshalYAML encodes g as a Document listing its live cells.
func MarshalYAML(name string, g *life.Grid) ([]byte, error) {
	doc := Document{Name: name, Rows: g.Rows(), Cols: g.Cols()}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.At(r, c) {
				doc.Alive = append(doc.Alive, []int{r, c})
			}
		}
	}

	return yaml.Marshal(&doc)
}
