// ABOUTME: Deterministic crossword grid layout
// ABOUTME: Greedy placement that maximizes intersections with already placed words

package crossword

import (
	"sort"

	"quizzer-app-api/core/domain"
)

type cell struct {
	row, col int
}

type placement struct {
	word   domain.WordClue
	row    int // unnormalized, may be negative
	col    int
	across bool
}

// Layout places words on a crossword grid. The first (longest) word is
// laid across at the origin; every further word must intersect an
// already placed one. Words that cannot be placed are skipped.
// Coordinates in the result are 1-based.
func Layout(words []domain.WordClue) domain.CrosswordLayout {
	ordered := make([]domain.WordClue, len(words))
	copy(ordered, words)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Answer) > len(ordered[j].Answer)
	})

	grid := map[cell]byte{}
	var placed []placement

	for _, w := range ordered {
		if w.Answer == "" {
			continue
		}
		if len(placed) == 0 {
			p := placement{word: w, row: 0, col: 0, across: true}
			placed = append(placed, p)
			write(grid, p)
			continue
		}
		if p, ok := bestPlacement(grid, w); ok {
			placed = append(placed, p)
			write(grid, p)
		}
	}

	return normalize(placed)
}

func write(grid map[cell]byte, p placement) {
	for i := 0; i < len(p.word.Answer); i++ {
		grid[letterCell(p, i)] = p.word.Answer[i]
	}
}

func letterCell(p placement, i int) cell {
	if p.across {
		return cell{p.row, p.col + i}
	}
	return cell{p.row + i, p.col}
}

// bestPlacement tries to anchor each letter of the word on a matching
// grid letter, in both orientations, and keeps the candidate with the
// most intersections. Ties resolve by grid position so the layout is
// stable for a given word list.
func bestPlacement(grid map[cell]byte, w domain.WordClue) (placement, bool) {
	cells := make([]cell, 0, len(grid))
	for c := range grid {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].row != cells[j].row {
			return cells[i].row < cells[j].row
		}
		return cells[i].col < cells[j].col
	})

	var best placement
	bestScore := 0
	for _, anchor := range cells {
		for i := 0; i < len(w.Answer); i++ {
			if grid[anchor] != w.Answer[i] {
				continue
			}
			for _, across := range []bool{true, false} {
				var p placement
				p.word = w
				p.across = across
				if across {
					p.row = anchor.row
					p.col = anchor.col - i
				} else {
					p.row = anchor.row - i
					p.col = anchor.col
				}
				score := fit(grid, p)
				if score > bestScore {
					best = p
					bestScore = score
				}
			}
		}
	}
	return best, bestScore > 0
}

// fit returns the number of intersections, or 0 if the placement is
// illegal. A legal placement matches every occupied cell it crosses,
// touches no parallel neighbor except at intersections, and has empty
// cells immediately before and after the word.
func fit(grid map[cell]byte, p placement) int {
	before, after := letterCell(p, -1), letterCell(p, len(p.word.Answer))
	if _, ok := grid[before]; ok {
		return 0
	}
	if _, ok := grid[after]; ok {
		return 0
	}

	intersections := 0
	for i := 0; i < len(p.word.Answer); i++ {
		c := letterCell(p, i)
		if existing, ok := grid[c]; ok {
			if existing != p.word.Answer[i] {
				return 0
			}
			intersections++
			continue
		}
		// a fresh cell may not sit flush against another word
		var side1, side2 cell
		if p.across {
			side1 = cell{c.row - 1, c.col}
			side2 = cell{c.row + 1, c.col}
		} else {
			side1 = cell{c.row, c.col - 1}
			side2 = cell{c.row, c.col + 1}
		}
		if _, ok := grid[side1]; ok {
			return 0
		}
		if _, ok := grid[side2]; ok {
			return 0
		}
	}
	return intersections
}

// normalize shifts placements to 1-based coordinates and assigns clue
// numbers in row-major start order, sharing a number when an across and
// a down word start on the same cell.
func normalize(placed []placement) domain.CrosswordLayout {
	if len(placed) == 0 {
		return domain.CrosswordLayout{}
	}

	minRow, minCol := placed[0].row, placed[0].col
	maxRow, maxCol := placed[0].row, placed[0].col
	for _, p := range placed {
		last := letterCell(p, len(p.word.Answer)-1)
		if p.row < minRow {
			minRow = p.row
		}
		if p.col < minCol {
			minCol = p.col
		}
		if last.row > maxRow {
			maxRow = last.row
		}
		if last.col > maxCol {
			maxCol = last.col
		}
	}

	sort.SliceStable(placed, func(i, j int) bool {
		if placed[i].row != placed[j].row {
			return placed[i].row < placed[j].row
		}
		if placed[i].col != placed[j].col {
			return placed[i].col < placed[j].col
		}
		return placed[i].across && !placed[j].across
	})

	layout := domain.CrosswordLayout{
		Rows: maxRow - minRow + 1,
		Cols: maxCol - minCol + 1,
	}
	numbers := map[cell]int{}
	next := 1
	for _, p := range placed {
		start := cell{p.row, p.col}
		number, ok := numbers[start]
		if !ok {
			number = next
			numbers[start] = number
			next++
		}
		orientation := "down"
		if p.across {
			orientation = "across"
		}
		layout.Result = append(layout.Result, domain.PlacedWord{
			Answer:      p.word.Answer,
			Hint:        p.word.Hint,
			Row:         p.row - minRow + 1,
			Col:         p.col - minCol + 1,
			Orientation: orientation,
			Position:    number,
		})
	}
	return layout
}
