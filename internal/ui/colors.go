package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/battleship/internal/config"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid red component in %s: %w", hex, err)
	}

	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid green component in %s: %w", hex, err)
	}

	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid blue component in %s: %w", hex, err)
	}

	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}

// Styles holds the resolved tcell styles for every kind of cell.
type Styles struct {
	Water   tcell.Style
	Ship    tcell.Style
	Hit     tcell.Style
	Miss    tcell.Style
	Cursor  tcell.Style
	Preview tcell.Style
	Invalid tcell.Style
	Title   tcell.Style
	Text    tcell.Style
}

// NewStyles parses the theme colors.
func NewStyles(theme config.Theme) (Styles, error) {
	fg := func(name, hex string) (tcell.Style, error) {
		c, err := ParseHexColor(hex)
		if err != nil {
			return tcell.StyleDefault, fmt.Errorf("theme %s: %w", name, err)
		}
		return tcell.StyleDefault.Foreground(c), nil
	}

	var s Styles
	var err error
	if s.Water, err = fg("water", theme.Water); err != nil {
		return Styles{}, err
	}
	if s.Ship, err = fg("ship", theme.Ship); err != nil {
		return Styles{}, err
	}
	if s.Hit, err = fg("hit", theme.Hit); err != nil {
		return Styles{}, err
	}
	if s.Miss, err = fg("miss", theme.Miss); err != nil {
		return Styles{}, err
	}
	if s.Preview, err = fg("preview", theme.Preview); err != nil {
		return Styles{}, err
	}
	if s.Invalid, err = fg("invalid", theme.Invalid); err != nil {
		return Styles{}, err
	}
	if s.Title, err = fg("title", theme.Title); err != nil {
		return Styles{}, err
	}
	cursor, err := ParseHexColor(theme.Cursor)
	if err != nil {
		return Styles{}, fmt.Errorf("theme cursor: %w", err)
	}

	s.Hit = s.Hit.Bold(true)
	s.Preview = s.Preview.Bold(true)
	s.Invalid = s.Invalid.Bold(true)
	s.Title = s.Title.Bold(true)
	s.Cursor = tcell.StyleDefault.Background(cursor).Foreground(tcell.ColorBlack)
	s.Text = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	return s, nil
}
