package formatter

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ConsoleFixedWidth is a type for outputting trees to a console with
// a fixed width font.
//
// If Colored is set, key labels are colored depending on the role of their
// node (root, inner node or leaf). Colors are emitted regardless of whether
// the output device is a terminal; clients decide, usually by consulting
// ConfigFromTerminal.
type ConsoleFixedWidth struct {
	Colored bool
	colors  map[Role]*color.Color
}

// NewConsoleFixedWidthFormat creates a new formatter. It is to be used for consoles
// with a fixed width font.
//
// colors is a map from node roles to colors, used for display. It may contain
// just a subset of the roles. If colors is nil, a default palette is used.
func NewConsoleFixedWidthFormat(colors map[Role]*color.Color) *ConsoleFixedWidth {
	fw := &ConsoleFixedWidth{}
	if colors == nil {
		fw.colors = makeDefaultPalette()
	} else {
		fw.colors = colors
	}
	return fw
}

func makeDefaultPalette() map[Role]*color.Color {
	palette := map[Role]*color.Color{
		RootRole:  color.New(color.FgRed, color.Bold),
		InnerRole: color.New(color.FgBlue),
		LeafRole:  color.New(color.FgGreen),
	}
	for _, c := range palette {
		c.EnableColor()
	}
	return palette
}

// Preamble is called by the output driver before a tree will be formatted.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Preamble(w io.Writer) {}

// Postamble will be called after a tree has been formatted.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Postamble(w io.Writer) {}

// StyledKey is called by the formatting driver to output the label of a key.
// It uses colors to visualize the role of the key's node.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) StyledKey(s string, role Role, w io.Writer) {
	if fw.Colored {
		if c, ok := fw.colors[role]; ok {
			c.Fprint(w, s)
			return
		}
	}
	io.WriteString(w, s)
}

// Edge outputs the glyphs connecting a node to its parent.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Edge(s string, w io.Writer) {
	io.WriteString(w, s)
}

// Newline will be called at the end of every node's line.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Newline(w io.Writer) {
	io.WriteString(w, "\n")
}

var _ Format = &ConsoleFixedWidth{}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Colors are switched on
// for terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Color = true
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 65
		} else if w > 10 {
			config.LineWidth = w - 1
		} else {
			config.LineWidth = 10
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
