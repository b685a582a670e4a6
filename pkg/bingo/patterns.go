package bingo

// Pattern represents a winning arrangement of marked squares
type Pattern string

const (
	PatternRow      Pattern = "ROW"
	PatternColumn   Pattern = "COLUMN"
	PatternDiagonal Pattern = "DIAGONAL"
	PatternCorners  Pattern = "FOUR_CORNERS"
	PatternBlackout Pattern = "BLACKOUT"
)

// CheckWin reports the best winning pattern on the card, if any. Blackout
// outranks the others; four corners outranks lines.
func (c *Card) CheckWin() (Pattern, bool) {
	if c.isBlackout() {
		return PatternBlackout, true
	}
	if c.hasCorners() {
		return PatternCorners, true
	}
	if c.hasDiagonal() {
		return PatternDiagonal, true
	}
	if c.hasRow() {
		return PatternRow, true
	}
	if c.hasColumn() {
		return PatternColumn, true
	}
	return "", false
}

// HasWin reports whether any winning pattern is covered
func (c *Card) HasWin() bool {
	_, ok := c.CheckWin()
	return ok
}

func (c *Card) isBlackout() bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if !c.Marked[row][col] {
				return false
			}
		}
	}
	return true
}

func (c *Card) hasCorners() bool {
	return c.Marked[0][0] && c.Marked[0][Size-1] && c.Marked[Size-1][0] && c.Marked[Size-1][Size-1]
}

func (c *Card) hasDiagonal() bool {
	main, anti := true, true
	for i := 0; i < Size; i++ {
		if !c.Marked[i][i] {
			main = false
		}
		if !c.Marked[i][Size-1-i] {
			anti = false
		}
	}
	return main || anti
}

func (c *Card) hasRow() bool {
	for row := 0; row < Size; row++ {
		complete := true
		for col := 0; col < Size; col++ {
			if !c.Marked[row][col] {
				complete = false
				break
			}
		}
		if complete {
			return true
		}
	}
	return false
}

func (c *Card) hasColumn() bool {
	for col := 0; col < Size; col++ {
		complete := true
		for row := 0; row < Size; row++ {
			if !c.Marked[row][col] {
				complete = false
				break
			}
		}
		if complete {
			return true
		}
	}
	return false
}
