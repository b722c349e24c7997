package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const Size = 3

// Mark is the state of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

var ErrUnknownMark = errors.New("unknown mark")

var (
	// WinLines - rows first, then columns, then the two diagonals.
	WinLines = [8][3]Action{
		{{0, 0}, {0, 1}, {0, 2}},
		{{1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {2, 1}, {2, 2}},
		{{0, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}},
		{{0, 2}, {1, 2}, {2, 2}},
		{{0, 0}, {1, 1}, {2, 2}},
		{{0, 2}, {1, 1}, {2, 0}},
	}
)

func (that Mark) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Opponent returns the other side. Empty stays Empty.
func (that Mark) Opponent() Mark {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (that Mark) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.String())
}

func (that *Mark) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal mark: %w", err)
	}

	switch raw {
	case "":
		*that = Empty
	case "X":
		*that = X
	case "O":
		*that = O
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMark, raw)
	}

	return nil
}

// Action identifies a cell by row and column.
type Action struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Action) Valid() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

// Index - row-major position of the cell, 0..8.
func (that Action) Index() int {
	return that.Row*Size + that.Col
}

func (that Action) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Board is a 3x3 grid. It is a value: assigning it copies every cell.
type Board [Size][Size]Mark

func (that Board) At(a Action) Mark {
	return that[a.Row][a.Col]
}

// Empties returns the number of empty cells.
func (that Board) Empties() int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == Empty {
				count++
			}
		}
	}

	return count
}

func (that Board) String() string {
	var sb strings.Builder
	for i, row := range that {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			if cell == Empty {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(cell.String())
		}
	}

	return sb.String()
}
