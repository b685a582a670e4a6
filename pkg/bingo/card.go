package bingo

import (
	"math/rand"
)

// Size is the width and height of a bingo card
const Size = 5

// MaxNumber is the highest callable bingo number
const MaxNumber = 75

// columnNames are the traditional column letters
var columnNames = [Size]string{"B", "I", "N", "G", "O"}

// Card represents a 5x5 bingo card. Each column draws from its traditional
// range (B 1-15, I 16-30, N 31-45, G 46-60, O 61-75) and the center square
// is free. Squares are addressed [row][col]; the free square holds 0.
type Card struct {
	Numbers [Size][Size]int
	Marked  [Size][Size]bool
}

// NewCard generates a random card with the center square pre-marked
func NewCard() *Card {
	card := &Card{}

	for col := 0; col < Size; col++ {
		low := col*15 + 1
		perm := rand.Perm(15)
		for row := 0; row < Size; row++ {
			card.Numbers[row][col] = low + perm[row]
		}
	}

	// Free center square
	card.Numbers[Size/2][Size/2] = 0
	card.Marked[Size/2][Size/2] = true

	return card
}

// Contains reports whether the number appears on the card
func (c *Card) Contains(number int) bool {
	_, _, ok := c.find(number)
	return ok
}

// Mark daubs the number if it appears on the card and reports whether it did
func (c *Card) Mark(number int) bool {
	row, col, ok := c.find(number)
	if !ok {
		return false
	}
	c.Marked[row][col] = true
	return true
}

// MarkAll daubs every called number present on the card
func (c *Card) MarkAll(numbers []int) {
	for _, number := range numbers {
		c.Mark(number)
	}
}

func (c *Card) find(number int) (int, int, bool) {
	if number < 1 || number > MaxNumber {
		return 0, 0, false
	}
	// The column is determined by the number's range
	col := (number - 1) / 15
	for row := 0; row < Size; row++ {
		if c.Numbers[row][col] == number {
			return row, col, true
		}
	}
	return 0, 0, false
}

// ColumnName returns the traditional letter for a column index
func ColumnName(col int) string {
	if col < 0 || col >= Size {
		return "?"
	}
	return columnNames[col]
}

// Caller draws bingo numbers 1-75 in random order without repeats
type Caller struct {
	remaining []int
	called    []int
}

// NewCaller creates a caller with a freshly shuffled set of numbers
func NewCaller() *Caller {
	remaining := rand.Perm(MaxNumber)
	for i := range remaining {
		remaining[i]++
	}
	return &Caller{
		remaining: remaining,
		called:    make([]int, 0, MaxNumber),
	}
}

// Draw calls the next number. The second return is false once all 75
// numbers have been called.
func (c *Caller) Draw() (int, bool) {
	if len(c.remaining) == 0 {
		return 0, false
	}
	number := c.remaining[0]
	c.remaining = c.remaining[1:]
	c.called = append(c.called, number)
	return number, true
}

// Called returns the numbers drawn so far, in call order
func (c *Caller) Called() []int {
	called := make([]int, len(c.called))
	copy(called, c.called)
	return called
}
