package card

import (
	"fmt"

	"github.com/unoflip/server/uno/card/colour"
)

// Side selects which face of the deck is in play.
type Side string

const (
	SideLight Side = "LIGHT"
	SideDark  Side = "DARK"
)

// Value is a light-side face value.
type Value string

const (
	One         Value = "ONE"
	Two         Value = "TWO"
	Three       Value = "THREE"
	Four        Value = "FOUR"
	Five        Value = "FIVE"
	Six         Value = "SIX"
	Seven       Value = "SEVEN"
	Eight       Value = "EIGHT"
	Nine        Value = "NINE"
	DrawOne     Value = "DRAW_ONE"
	Reverse     Value = "REVERSE"
	Skip        Value = "SKIP"
	Wild        Value = "WILD"
	WildDrawTwo Value = "WILD_DRAW_TWO"
	Flip        Value = "FLIP"
)

// Values lists every light face value.
var Values = []Value{
	One, Two, Three, Four, Five, Six, Seven, Eight, Nine,
	DrawOne, Reverse, Skip, Wild, WildDrawTwo, Flip,
}

// DarkValue is a dark-side face value.
type DarkValue string

const (
	DarkOne   DarkValue = "ONE"
	DarkTwo   DarkValue = "TWO"
	DarkThree DarkValue = "THREE"
	DarkFour  DarkValue = "FOUR"
	DarkFive  DarkValue = "FIVE"
	DarkSix   DarkValue = "SIX"
	DarkSeven DarkValue = "SEVEN"
	DarkEight DarkValue = "EIGHT"
	DarkNine  DarkValue = "NINE"
	DarkFlip  DarkValue = "FLIP"
	DrawFive  DarkValue = "DRAW_FIVE"
	SkipAll   DarkValue = "SKIP_ALL"
	WildStack DarkValue = "WILD_STACK"
)

// DarkValues lists every dark face value.
var DarkValues = []DarkValue{
	DarkOne, DarkTwo, DarkThree, DarkFour, DarkFive,
	DarkSix, DarkSeven, DarkEight, DarkNine,
	DarkFlip, DrawFive, SkipAll, WildStack,
}

// Card carries both faces at once; the active Side of the game decides which
// face's colour and value govern legality, effects and scoring. Wild faces
// keep their colour unset until a play-time colour choice fixes it.
type Card struct {
	LightColour colour.Light `json:"lightColour,omitempty"`
	LightValue  Value        `json:"lightValue"`
	DarkColour  colour.Dark  `json:"darkColour,omitempty"`
	DarkValue   DarkValue    `json:"darkValue"`
}

func New(lightColour colour.Light, lightValue Value, darkColour colour.Dark, darkValue DarkValue) Card {
	return Card{
		LightColour: lightColour,
		LightValue:  lightValue,
		DarkColour:  darkColour,
		DarkValue:   darkValue,
	}
}

// Equal compares all four fields, including chosen wild colours.
func (c Card) Equal(other Card) bool {
	return c == other
}

// IsWild reports whether the active face is a wild value.
func (c Card) IsWild(side Side) bool {
	if side == SideLight {
		return c.LightValue == Wild || c.LightValue == WildDrawTwo
	}
	return c.DarkValue == WildStack
}

var lightNumbers = map[Value]int{
	One: 1, Two: 2, Three: 3, Four: 4, Five: 5,
	Six: 6, Seven: 7, Eight: 8, Nine: 9,
}

var darkNumbers = map[DarkValue]int{
	DarkOne: 1, DarkTwo: 2, DarkThree: 3, DarkFour: 4, DarkFive: 5,
	DarkSix: 6, DarkSeven: 7, DarkEight: 8, DarkNine: 9,
}

// Number returns the numeral of the active face, false for action and wild
// values.
func (c Card) Number(side Side) (int, bool) {
	if side == SideLight {
		n, ok := lightNumbers[c.LightValue]
		return n, ok
	}
	n, ok := darkNumbers[c.DarkValue]
	return n, ok
}

// Describe renders the active face for the terminal.
func (c Card) Describe(side Side) string {
	if side == SideLight {
		if c.IsWild(side) {
			return fmt.Sprintf("[%s]", c.LightValue)
		}
		return c.LightColour.Paintf("[%s %s]", string(c.LightColour), string(c.LightValue))
	}
	if c.IsWild(side) {
		return fmt.Sprintf("[%s]", c.DarkValue)
	}
	return c.DarkColour.Paintf("[%s %s]", string(c.DarkColour), string(c.DarkValue))
}
