package gui

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/termtris/pkg/mino"
)

// Terminal safe color palette is available here
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name    string      `json:"name"`
	I       tcell.Color `json:"i"`
	O       tcell.Color `json:"o"`
	T       tcell.Color `json:"t"`
	S       tcell.Color `json:"s"`
	Z       tcell.Color `json:"z"`
	J       tcell.Color `json:"j"`
	L       tcell.Color `json:"l"`
	Border  tcell.Color `json:"border"`
	Empty   tcell.Color `json:"empty"`
	Label   tcell.Color `json:"label"`
	Value   tcell.Color `json:"value"`
	Flash   tcell.Color `json:"flash"`
	Message tcell.Color `json:"message"`
}

// ThemeHex is the serializable form of a Theme
type ThemeHex struct {
	Name    string `json:"name"`
	I       string `json:"i"`
	O       string `json:"o"`
	T       string `json:"t"`
	S       string `json:"s"`
	Z       string `json:"z"`
	J       string `json:"j"`
	L       string `json:"l"`
	Border  string `json:"border"`
	Empty   string `json:"empty"`
	Label   string `json:"label"`
	Value   string `json:"value"`
	Flash   string `json:"flash"`
	Message string `json:"message"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.I.Hex()),
		fmtHex(t.O.Hex()),
		fmtHex(t.T.Hex()),
		fmtHex(t.S.Hex()),
		fmtHex(t.Z.Hex()),
		fmtHex(t.J.Hex()),
		fmtHex(t.L.Hex()),
		fmtHex(t.Border.Hex()),
		fmtHex(t.Empty.Hex()),
		fmtHex(t.Label.Hex()),
		fmtHex(t.Value.Hex()),
		fmtHex(t.Flash.Hex()),
		fmtHex(t.Message.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.I),
		tcell.GetColor(t.O),
		tcell.GetColor(t.T),
		tcell.GetColor(t.S),
		tcell.GetColor(t.Z),
		tcell.GetColor(t.J),
		tcell.GetColor(t.L),
		tcell.GetColor(t.Border),
		tcell.GetColor(t.Empty),
		tcell.GetColor(t.Label),
		tcell.GetColor(t.Value),
		tcell.GetColor(t.Flash),
		tcell.GetColor(t.Message),
	}
}

// KindColor returns the color a kind is drawn with
func (t Theme) KindColor(k mino.Kind) tcell.Color {
	switch k {
	case mino.KindI:
		return t.I
	case mino.KindO:
		return t.O
	case mino.KindT:
		return t.T
	case mino.KindS:
		return t.S
	case mino.KindZ:
		return t.Z
	case mino.KindJ:
		return t.J
	case mino.KindL:
		return t.L
	default:
		return t.Empty
	}
}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	return Theme{}, errors.New("theme: no theme found")
}

// LoadTheme reads a JSON list of ThemeHex from path and returns the one named
// want
func LoadTheme(path, want string) (Theme, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: failed to read %s: %w", path, err)
	}

	var themes []ThemeHex
	err = json.Unmarshal(data, &themes)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: failed to parse %s: %w", path, err)
	}

	return ImportThemes(want, themes)
}

// ThemeBasic is the default theme, using guideline piece colors
var ThemeBasic = Theme{
	"basic",            // Name
	tcell.Color51,      // I
	tcell.Color226,     // O
	tcell.Color129,     // T
	tcell.Color46,      // S
	tcell.Color196,     // Z
	tcell.Color21,      // J
	tcell.Color208,     // L
	tcell.Color247,     // Border
	tcell.Color236,     // Empty
	tcell.Color247,     // Label
	tcell.ColorDefault, // Value
	tcell.Color255,     // Flash
	tcell.Color160,     // Message
}
