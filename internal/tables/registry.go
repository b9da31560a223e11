package tables

import (
	"fmt"
	"strconv"

	"github.com/abhisek/mathskills/internal/skilltree"
)

// For returns the builder of a category.
func For(c skilltree.Category) (Builder, error) {
	switch c {
	case skilltree.CategoryNumbers:
		return numbers, nil
	case skilltree.CategoryAddition:
		return addition, nil
	case skilltree.CategorySubtraction:
		return subtraction, nil
	case skilltree.CategoryMultiplication:
		return multiplication, nil
	case skilltree.CategoryDivision:
		return division, nil
	default:
		return nil, fmt.Errorf("no table for category %q", c)
	}
}

// numbers: 2 rows of 10, counting 1..20.
var numbers = gridBuilder{
	category: skilltree.CategoryNumbers,
	tiers:    []string{"numbers <= 10", "numbers <= 20", "numbers <= 100"},
	labels: func() [][]string {
		return grid(0, 1, func(r int) (int, int) { return 1, 10 }, func(r, c int) string {
			return strconv.Itoa(c + r*10)
		})
	},
}

// addition: rows 1..20 as second addend, columns 1..10 as first.
var addition = gridBuilder{
	category: skilltree.CategoryAddition,
	tiers:    []string{"addition <= 10", "addition <= 20"},
	labels: func() [][]string {
		return grid(1, 20, func(r int) (int, int) { return 1, 10 }, func(r, c int) string {
			return fmt.Sprintf("%d+%d", c, r)
		})
	},
}

// subtraction: triangular, row r holds r-1 .. r-r.
var subtraction = gridBuilder{
	category: skilltree.CategorySubtraction,
	tiers:    []string{"subtraction <= 10", "subtraction <= 20"},
	labels: func() [][]string {
		return grid(1, 20, func(r int) (int, int) { return 1, r }, func(r, c int) string {
			return fmt.Sprintf("%d-%d", r, c)
		})
	},
}

// multiplication: rows 0..20, columns 0..10.
var multiplication = gridBuilder{
	category: skilltree.CategoryMultiplication,
	tiers:    []string{"multiplication1", "multiplication2"},
	labels: func() [][]string {
		return grid(0, 20, func(r int) (int, int) { return 0, 10 }, func(r, c int) string {
			return fmt.Sprintf("%dx%d", c, r)
		})
	},
}

// division: rows are divisors 1..10, columns quotients 0..10.
var division = gridBuilder{
	category: skilltree.CategoryDivision,
	tiers:    []string{"division1"},
	labels: func() [][]string {
		return grid(1, 10, func(r int) (int, int) { return 0, 10 }, func(r, c int) string {
			return fmt.Sprintf("%d/%d", c*r, r)
		})
	},
}

// grid generates rows first..last; cols gives each row's column range.
func grid(first, last int, cols func(r int) (int, int), label func(r, c int) string) [][]string {
	out := make([][]string, 0, last-first+1)
	for r := first; r <= last; r++ {
		lo, hi := cols(r)
		row := make([]string, 0, hi-lo+1)
		for c := lo; c <= hi; c++ {
			row = append(row, label(r, c))
		}
		out = append(out, row)
	}
	return out
}
