package colour

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Light is a light-side card colour. The zero value None marks a wild card
// whose colour has not been chosen yet.
type Light string

const (
	None   Light = ""
	Red    Light = "RED"
	Yellow Light = "YELLOW"
	Green  Light = "GREEN"
	Blue   Light = "BLUE"
)

// Dark is a dark-side card colour. The zero value DarkNone marks an
// uncoloured wild stack card.
type Dark string

const (
	DarkNone Dark = ""
	Orange   Dark = "ORANGE"
	Pink     Dark = "PINK"
	Purple   Dark = "PURPLE"
	Teal     Dark = "TEAL"
)

// Lights lists every choosable light colour in declaration order.
var Lights = []Light{Red, Yellow, Green, Blue}

// Darks lists every choosable dark colour in declaration order.
var Darks = []Dark{Orange, Pink, Purple, Teal}

var Stdout io.Writer = color.Output

var lightPainters = map[Light]func(string, ...interface{}) string{
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
}

var darkPainters = map[Dark]func(string, ...interface{}) string{
	Orange: color.New(color.FgYellow).SprintfFunc(),
	Pink:   color.New(color.FgHiMagenta).SprintfFunc(),
	Purple: color.New(color.FgMagenta).SprintfFunc(),
	Teal:   color.New(color.FgHiCyan).SprintfFunc(),
}

func (c Light) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Light) Paintf(format string, args ...interface{}) string {
	painter := lightPainters[c]
	if painter == nil {
		return fmt.Sprintf(format, args...)
	}
	return painter(format, args...)
}

func (c Light) String() string {
	if c == None {
		return "(no colour)"
	}
	return c.Paint(string(c))
}

func (c Dark) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Dark) Paintf(format string, args ...interface{}) string {
	painter := darkPainters[c]
	if painter == nil {
		return fmt.Sprintf(format, args...)
	}
	return painter(format, args...)
}

func (c Dark) String() string {
	if c == DarkNone {
		return "(no colour)"
	}
	return c.Paint(string(c))
}

// ByName resolves a light colour from its canonical upper-case name.
func ByName(name string) (Light, error) {
	for _, light := range Lights {
		if string(light) == name {
			return light, nil
		}
	}
	return None, fmt.Errorf("invalid colour '%s'", name)
}

// DarkByName resolves a dark colour from its canonical upper-case name.
func DarkByName(name string) (Dark, error) {
	for _, dark := range Darks {
		if string(dark) == name {
			return dark, nil
		}
	}
	return DarkNone, fmt.Errorf("invalid colour '%s'", name)
}
