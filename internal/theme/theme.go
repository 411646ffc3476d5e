package theme

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"

	"hslight/internal/highlight"
)

// Style describes how one category is painted.
type Style struct {
	Fg        string `toml:"fg"`
	Bold      bool   `toml:"bold"`
	Italic    bool   `toml:"italic"`
	Underline bool   `toml:"underline"`
}

// Theme maps output categories to terminal styles. Categories missing from
// a theme render unstyled.
type Theme struct {
	Name   string           `toml:"name"`
	Styles map[string]Style `toml:"styles"`

	colors [highlight.CategoryCount + 1]*color.Color
}

var fgColors = map[string]color.Attribute{
	"black":          color.FgBlack,
	"red":            color.FgRed,
	"green":          color.FgGreen,
	"yellow":         color.FgYellow,
	"blue":           color.FgBlue,
	"magenta":        color.FgMagenta,
	"cyan":           color.FgCyan,
	"white":          color.FgWhite,
	"bright-black":   color.FgHiBlack,
	"bright-red":     color.FgHiRed,
	"bright-green":   color.FgHiGreen,
	"bright-yellow":  color.FgHiYellow,
	"bright-blue":    color.FgHiBlue,
	"bright-magenta": color.FgHiMagenta,
	"bright-cyan":    color.FgHiCyan,
	"bright-white":   color.FgHiWhite,
}

// Default returns the built-in theme.
func Default() *Theme {
	t := &Theme{
		Name: "default",
		Styles: map[string]Style{
			"Keyword":     {Fg: "blue", Bold: true},
			"Pragma":      {Fg: "magenta"},
			"Symbol":      {Fg: "cyan"},
			"Variable":    {},
			"Constructor": {Fg: "yellow"},
			"Operator":    {Fg: "cyan"},
			"Char":        {Fg: "green"},
			"String":      {Fg: "green"},
			"Integer":     {Fg: "red"},
			"Rational":    {Fg: "red"},
			"Comment":     {Fg: "bright-black", Italic: true},
		},
	}
	if err := t.compile(); err != nil {
		panic(err) // built-in theme must be valid
	}
	return t
}

// Load reads a theme from a TOML file. Unknown style keys or color names
// fail the load.
func Load(path string) (*Theme, error) {
	t := &Theme{}
	meta, err := toml.DecodeFile(path, t)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("theme %s: unknown key %q", path, undecoded[0].String())
	}
	if err := t.compile(); err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	return t, nil
}

func (t *Theme) compile() error {
	for name, st := range t.Styles {
		cat, ok := categoryByName(name)
		if !ok {
			return fmt.Errorf("unknown category %q", name)
		}
		attrs := make([]color.Attribute, 0, 4)
		if st.Fg != "" {
			fg, ok := fgColors[st.Fg]
			if !ok {
				return fmt.Errorf("category %q: unknown color %q", name, st.Fg)
			}
			attrs = append(attrs, fg)
		}
		if st.Bold {
			attrs = append(attrs, color.Bold)
		}
		if st.Italic {
			attrs = append(attrs, color.Italic)
		}
		if st.Underline {
			attrs = append(attrs, color.Underline)
		}
		if len(attrs) > 0 {
			t.colors[cat] = color.New(attrs...)
		}
	}
	return nil
}

func categoryByName(name string) (highlight.Category, bool) {
	for i := 1; i <= highlight.CategoryCount; i++ {
		if c := highlight.Category(i); c.String() == name {
			return c, true
		}
	}
	return 0, false
}

// Sprint renders one token. Unstyled categories and disabled color pass
// the text through unchanged.
func (t *Theme) Sprint(tok highlight.Token) string {
	c := t.colors[tok.Category]
	if c == nil {
		return tok.Text
	}
	return c.Sprint(tok.Text)
}
