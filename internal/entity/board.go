package entity

import (
	"encoding/json"
	"fmt"
)

const (
	PlayerNum  = 2
	BoardWidth = 3
	BoardDepth = 3

	DiceMin = 1
	DiceMax = 6
)

// Cell is a single board slot: either empty or holding a die face.
// The zero value is an empty cell.
type Cell struct {
	face uint8
}

// Die returns a cell holding the given face value. It panics if the value is outside [DiceMin, DiceMax].
func Die(value int) Cell {
	if !IsValidDice(value) {
		panic(fmt.Sprintf("entity: dice value %d out of range", value))
	}

	return Cell{face: uint8(value)}
}

func IsValidDice(value int) bool {
	return value >= DiceMin && value <= DiceMax
}

func (that Cell) IsEmpty() bool {
	return that.face == 0
}

// Value returns the die face and true, or 0 and false for an empty cell.
func (that Cell) Value() (int, bool) {
	if that.IsEmpty() {
		return 0, false
	}

	return int(that.face), true
}

func (that Cell) String() string {
	if that.IsEmpty() {
		return " "
	}

	return fmt.Sprintf("%d", that.face)
}

func (that Cell) MarshalJSON() ([]byte, error) {
	if that.IsEmpty() {
		return []byte("null"), nil
	}

	return json.Marshal(int(that.face))
}

func (that *Cell) UnmarshalJSON(data []byte) error {
	var face *int
	if err := json.Unmarshal(data, &face); err != nil {
		return fmt.Errorf("failed to unmarshal cell: %w", err)
	}

	if face == nil {
		*that = Cell{}
		return nil
	}

	if !IsValidDice(*face) {
		return fmt.Errorf("cell value %d out of range", *face)
	}

	*that = Die(*face)

	return nil
}

// Column holds dice by depth, depth 0 filled first. Filled cells are always
// contiguous from depth 0.
type Column [BoardDepth]Cell

func (that Column) Count() int {
	count := 0
	for _, cell := range that {
		if !cell.IsEmpty() {
			count++
		}
	}

	return count
}

func (that Column) IsFull() bool {
	return that.Count() == BoardDepth
}

// Push drops a die into the lowest empty depth. It reports false when the column is full.
func (that *Column) Push(value int) bool {
	for depth := range that {
		if that[depth].IsEmpty() {
			that[depth] = Die(value)
			return true
		}
	}

	return false
}

// RemoveValue drops every die showing value, packs the rest towards depth 0
// keeping their order, and returns how many dice were removed.
func (that *Column) RemoveValue(value int) int {
	var packed Column

	kept := 0
	for _, cell := range that {
		face, ok := cell.Value()
		if !ok || face == value {
			continue
		}

		packed[kept] = cell
		kept++
	}

	removed := that.Count() - kept
	*that = packed

	return removed
}

// Score sums count*count*face over every face present in the column.
func (that Column) Score() int {
	var counts [DiceMax + 1]int
	for _, cell := range that {
		if face, ok := cell.Value(); ok {
			counts[face]++
		}
	}

	score := 0
	for face := DiceMin; face <= DiceMax; face++ {
		score += counts[face] * counts[face] * face
	}

	return score
}

type Board [BoardWidth]Column

func (that Board) DiceCount() int {
	count := 0
	for column := range that {
		count += that[column].Count()
	}

	return count
}

func (that Board) Score() int {
	score := 0
	for column := range that {
		score += that[column].Score()
	}

	return score
}

func (that Board) IsFull() bool {
	return that.DiceCount() == BoardWidth*BoardDepth
}

func IsValidColumn(column int) bool {
	return column >= 0 && column < BoardWidth
}

func IsValidPlayer(player int) bool {
	return player >= 0 && player < PlayerNum
}

// Opponent returns the other player index.
func Opponent(player int) int {
	return (player + 1) % PlayerNum
}
