package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/battleship/internal/board"
	"github.com/samdwyer/battleship/internal/player"
)

// Layout, in terminal cells.
const (
	cellWidth  = 2
	labelWidth = 3
	boardGap   = 6
	boardTop   = 2
)

// Renderer handles drawing frames to the screen.
type Renderer struct {
	screen *Screen
	styles Styles
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, styles Styles) *Renderer {
	return &Renderer{screen: screen, styles: styles}
}

// Render draws a whole frame: title, menu, both boards, message and footer.
func (r *Renderer) Render(frame player.Frame) {
	r.screen.Clear()

	if frame.Title != "" {
		r.screen.DrawText(0, 0, frame.Title, r.styles.Title)
	}

	y := boardTop
	if frame.Menu != nil {
		y = r.drawMenu(y, frame.Menu)
	}

	size := 0
	switch {
	case frame.Own != nil:
		size = frame.Own.Size()
	case frame.Target != nil:
		size = frame.Target.Size()
	}
	if size > 0 {
		x := 0
		if frame.Own != nil {
			r.drawOwn(x, y, frame)
			x += boardWidth(size) + boardGap
		}
		if frame.Target != nil {
			r.drawTarget(x, y, frame)
		}
		y += size + 3
	}

	if frame.Message != "" {
		r.screen.DrawText(0, y, frame.Message, r.styles.Text)
	}

	if frame.Footer != "" {
		_, height := r.screen.Size()
		footerY := max(y+2, height-1)
		r.screen.DrawText(0, footerY, frame.Footer, r.styles.Miss)
	}

	r.screen.Show()
}

// drawMenu draws the menu at row y and returns the next free row.
func (r *Renderer) drawMenu(y int, menu *player.Menu) int {
	if menu.Title != "" {
		r.screen.DrawText(0, y, menu.Title, r.styles.Title)
		y += 2
	}
	for i, option := range menu.Options {
		if i == menu.Selected {
			r.screen.DrawText(0, y, "> "+option, r.styles.Cursor)
		} else {
			r.screen.DrawText(0, y, "  "+option, r.styles.Text)
		}
		y++
	}
	return y + 1
}

// drawOwn draws the acting player's fleet with any placement preview.
func (r *Renderer) drawOwn(x, y int, frame player.Frame) {
	b := frame.Own
	r.drawGrid(x, y, "Your fleet", b.Size(), func(p board.Point) (rune, tcell.Style) {
		if frame.Preview != nil && frame.Preview.Contains(p) {
			if frame.PreviewValid {
				return 'S', r.styles.Preview
			}
			return 'S', r.styles.Invalid
		}
		state := b.Cell(p)
		return state.Rune(), r.cellStyle(state)
	})
}

// drawTarget draws what is known about the opponent, highlighting the cursor.
func (r *Renderer) drawTarget(x, y int, frame player.Frame) {
	v := frame.Target
	r.drawGrid(x, y, "Enemy waters", v.Size(), func(p board.Point) (rune, tcell.Style) {
		ch, style := r.markCell(v.At(p))
		if frame.Cursor != nil && *frame.Cursor == p {
			style = r.styles.Cursor
		}
		return ch, style
	})
}

// drawGrid draws a labelled size x size grid with column letters and row numbers.
func (r *Renderer) drawGrid(x, y int, label string, size int, cell func(board.Point) (rune, tcell.Style)) {
	r.screen.DrawText(x+labelWidth, y, label, r.styles.Text)

	for col := 0; col < size; col++ {
		r.screen.SetContent(x+labelWidth+col*cellWidth, y+1, columnLabel(col), r.styles.Text)
	}

	for row := 0; row < size; row++ {
		r.screen.DrawText(x, y+2+row, fmt.Sprintf("%2d ", row+1), r.styles.Text)
		for col := 0; col < size; col++ {
			ch, style := cell(board.Pt(col, row))
			r.screen.SetContent(x+labelWidth+col*cellWidth, y+2+row, ch, style)
		}
	}
}

func (r *Renderer) cellStyle(state board.CellState) tcell.Style {
	switch state {
	case board.CellShip:
		return r.styles.Ship
	case board.CellHit:
		return r.styles.Hit
	case board.CellMiss:
		return r.styles.Miss
	default:
		return r.styles.Water
	}
}

func (r *Renderer) markCell(m player.Mark) (rune, tcell.Style) {
	switch m {
	case player.MarkHit:
		return board.CellHit.Rune(), r.styles.Hit
	case player.MarkMiss:
		return board.CellMiss.Rune(), r.styles.Miss
	default:
		return board.CellEmpty.Rune(), r.styles.Water
	}
}

func boardWidth(size int) int {
	return labelWidth + size*cellWidth
}

func columnLabel(col int) rune {
	return rune('A' + col)
}
