package ui

import (
	"fmt"
	"strings"

	"github.com/samdwyer/battleship/internal/board"
	"github.com/samdwyer/battleship/internal/player"
)

// BoardText renders a fleet as plain text, one row per line.
func BoardText(b *board.Board) string {
	return gridText(b.Size(), func(p board.Point) rune {
		return b.Cell(p).Rune()
	})
}

// ViewText renders an attack view as plain text. Unknown cells show as water.
func ViewText(v *player.AttackView) string {
	return gridText(v.Size(), func(p board.Point) rune {
		switch v.At(p) {
		case player.MarkHit:
			return board.CellHit.Rune()
		case player.MarkMiss:
			return board.CellMiss.Rune()
		default:
			return board.CellEmpty.Rune()
		}
	})
}

func gridText(size int, cell func(board.Point) rune) string {
	var sb strings.Builder

	sb.WriteString(strings.Repeat(" ", labelWidth))
	for col := 0; col < size; col++ {
		sb.WriteRune(columnLabel(col))
		if col < size-1 {
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte('\n')

	for row := 0; row < size; row++ {
		fmt.Fprintf(&sb, "%2d ", row+1)
		for col := 0; col < size; col++ {
			sb.WriteRune(cell(board.Pt(col, row)))
			if col < size-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
