package pattern

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlife/life"
)

// MaxCells bounds rows×cols for decoded patterns.
const MaxCells = 1 << 26

// ParseText reads a grid in the text format: rows, cols, then rows×cols booleans.
// Tokens after the last cell are rejected.
func ParseText(r io.Reader) (*life.Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	rows, err := readDim(sc, "rows")
	if err != nil {
		return nil, err
	}
	cols, err := readDim(sc, "cols")
	if err != nil {
		return nil, err
	}

	if rows > MaxCells/cols {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrDimensions, rows, cols, MaxCells)
	}

	cells := make([]bool, 0, rows*cols)
	for len(cells) < rows*cols && sc.Scan() {
		v, err := parseBool(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", len(cells), err)
		}
		cells = append(cells, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pattern: read: %w", err)
	}
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("%w: got %d values for %dx%d", ErrCellCount, len(cells), rows, cols)
	}
	if sc.Scan() {
		return nil, fmt.Errorf("%w: trailing token %q after %d cells", ErrCellCount, sc.Text(), rows*cols)
	}

	return life.FromCells(rows, cols, cells)
}

// FormatText writes g in the text format ParseText reads, one grid row per line.
func FormatText(w io.Writer, g *life.Grid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.Rows(), g.Cols())
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if c > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatBool(g.At(r, c)))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func readDim(sc *bufio.Scanner, name string) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("pattern: read %s: %w", name, err)
		}
		return 0, fmt.Errorf("%w: missing %s", ErrDimensions, name)
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrSyntax, name, sc.Text())
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive, got %d", ErrDimensions, name, n)
	}

	return n, nil
}

func parseBool(tok string) (bool, error) {
	switch strings.ToLower(tok) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}

	return false, fmt.Errorf("%w: %q is not a boolean", ErrSyntax, tok)
}
