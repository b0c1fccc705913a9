package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func column(values ...int) Column {
	var col Column
	for _, value := range values {
		col.Push(value)
	}

	return col
}

func TestCell(t *testing.T) {
	t.Run("Zero value is empty", func(t *testing.T) {
		// Given: a zero cell
		var cell Cell

		// When: reading its value
		value, ok := cell.Value()

		// Then: it should be empty
		assert.True(t, cell.IsEmpty())
		assert.False(t, ok)
		assert.Equal(t, 0, value)
	})

	t.Run("Die holds its face", func(t *testing.T) {
		cell := Die(5)

		value, ok := cell.Value()

		assert.False(t, cell.IsEmpty())
		assert.True(t, ok)
		assert.Equal(t, 5, value)
	})

	t.Run("Die panics out of range", func(t *testing.T) {
		assert.Panics(t, func() { Die(0) })
		assert.Panics(t, func() { Die(7) })
	})

	t.Run("Empty cells encode as null", func(t *testing.T) {
		// Given: a column with one die
		col := column(3)

		// When: encoding it as JSON
		data, err := json.Marshal(col)
		require.NoError(t, err)

		// Then: empty slots should be null
		assert.JSONEq(t, `[3, null, null]`, string(data))

		var decoded Column
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, col, decoded)
	})

	t.Run("Decoding rejects faces out of range", func(t *testing.T) {
		var cell Cell

		err := json.Unmarshal([]byte("9"), &cell)

		require.Error(t, err)
		assert.True(t, cell.IsEmpty())
	})
}

func TestColumn_Push(t *testing.T) {
	t.Run("Fills the lowest empty depth", func(t *testing.T) {
		// Given: an empty column
		var col Column

		// When: pushing two dice
		require.True(t, col.Push(2))
		require.True(t, col.Push(6))

		// Then: they should sit at depth 0 and 1
		assert.Equal(t, Column{Die(2), Die(6), {}}, col)
		assert.Equal(t, 2, col.Count())
		assert.False(t, col.IsFull())
	})

	t.Run("Full column rejects a die", func(t *testing.T) {
		// Given: a full column
		col := column(1, 2, 3)
		require.True(t, col.IsFull())

		// When: pushing another die
		ok := col.Push(4)

		// Then: it should be rejected and the column unchanged
		assert.False(t, ok)
		assert.Equal(t, column(1, 2, 3), col)
	})
}

func TestColumn_RemoveValue(t *testing.T) {
	testCases := []struct {
		name     string
		column   Column
		value    int
		expected Column
		removed  int
	}{
		{
			name:     "Removes a single match and packs",
			column:   column(4, 2, 5),
			value:    4,
			expected: column(2, 5),
			removed:  1,
		},
		{
			name:     "Removes every match keeping order of the rest",
			column:   column(3, 1, 3),
			value:    3,
			expected: column(1),
			removed:  2,
		},
		{
			name:     "Clears the column when all dice match",
			column:   column(6, 6, 6),
			value:    6,
			expected: Column{},
			removed:  3,
		},
		{
			name:     "Leaves the column alone without matches",
			column:   column(1, 2),
			value:    5,
			expected: column(1, 2),
			removed:  0,
		},
		{
			name:     "Empty column stays empty",
			column:   Column{},
			value:    1,
			expected: Column{},
			removed:  0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			col := tc.column

			removed := col.RemoveValue(tc.value)

			assert.Equal(t, tc.removed, removed)
			assert.Equal(t, tc.expected, col)
			assertPacked(t, col)
		})
	}
}

func TestColumn_Score(t *testing.T) {
	testCases := []struct {
		name     string
		column   Column
		expected int
	}{
		{name: "Empty", column: Column{}, expected: 0},
		{name: "Three of a kind", column: column(5, 5, 5), expected: 45},
		{name: "Three distinct", column: column(1, 4, 6), expected: 11},
		{name: "Pair and empty", column: column(3, 3), expected: 12},
		{name: "Pair and single", column: column(2, 6, 2), expected: 14},
		{name: "Single", column: column(6), expected: 6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			col := tc.column
			assert.Equal(t, tc.expected, col.Score())
		})
	}
}

func TestBoard(t *testing.T) {
	// Given: a board with dice in every column
	board := Board{column(2, 2), column(1, 3, 5), column(4)}

	// Then: counts and score should cover every column
	assert.Equal(t, 6, board.DiceCount())
	assert.Equal(t, 8+9+4, board.Score())
	assert.False(t, board.IsFull())

	full := Board{column(1, 1, 1), column(2, 2, 2), column(3, 3, 3)}
	assert.True(t, full.IsFull())
	assert.Equal(t, 9*(1+2+3), full.Score())
}

func TestBoard_QueriesOnCopies(t *testing.T) {
	// Given: boards held by value in a map, whose elements are not addressable
	boards := map[string]Board{
		"player0": {column(2, 2), column(1, 3, 5), column(4)},
	}

	// Then: read-only queries should work on them directly
	assert.Equal(t, 2, boards["player0"][0].Count())
	assert.True(t, boards["player0"][1].IsFull())
	assert.Equal(t, 8, boards["player0"][0].Score())
	assert.Equal(t, 6, boards["player0"].DiceCount())
	assert.Equal(t, 21, boards["player0"].Score())
	assert.False(t, boards["player0"].IsFull())
}

func TestCompareScores(t *testing.T) {
	assert.Equal(t, ResultPlayer0Win, CompareScores(10, 9))
	assert.Equal(t, ResultPlayer1Win, CompareScores(9, 10))
	assert.Equal(t, ResultDraw, CompareScores(7, 7))

	assert.Equal(t, 0, ResultPlayer0Win.Winner())
	assert.Equal(t, 1, ResultPlayer1Win.Winner())
	assert.Equal(t, -1, ResultDraw.Winner())
	assert.Equal(t, -1, ResultNotOver.Winner())
}

func TestResult_Text(t *testing.T) {
	for _, result := range []Result{ResultNotOver, ResultPlayer0Win, ResultPlayer1Win, ResultDraw} {
		t.Run(result.String(), func(t *testing.T) {
			text, err := result.MarshalText()
			require.NoError(t, err)

			var decoded Result
			require.NoError(t, decoded.UnmarshalText(text))
			assert.Equal(t, result, decoded)
		})
	}

	t.Run("Unknown result is an error", func(t *testing.T) {
		var decoded Result
		err := json.Unmarshal([]byte(`"player2_win"`), &decoded)

		require.Error(t, err)
		assert.Equal(t, ResultNotOver, decoded)
	})
}

func assertPacked(t *testing.T, col Column) {
	t.Helper()

	seenEmpty := false
	for depth, cell := range col {
		if cell.IsEmpty() {
			seenEmpty = true
			continue
		}

		assert.False(t, seenEmpty, "die at depth %d follows an empty slot", depth)
	}
}
