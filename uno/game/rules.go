package game

import (
	"github.com/unoflip/server/uno/card"
	"github.com/unoflip/server/uno/card/colour"
)

// Playable decides whether candidateCard may be played on topCard under the
// rules of the given side. Wild faces are always playable. Otherwise the
// active-side colour or the active-side value must match; a colour match
// requires both colours to be set, so an unchosen wild never matches by
// colour.
func Playable(candidateCard card.Card, topCard card.Card, side card.Side) bool {
	if candidateCard.IsWild(side) {
		return true
	}

	if side == card.SideLight {
		sameColour := topCard.LightColour != colour.None &&
			candidateCard.LightColour != colour.None &&
			candidateCard.LightColour == topCard.LightColour
		return sameColour || candidateCard.LightValue == topCard.LightValue
	}

	sameColour := topCard.DarkColour != colour.DarkNone &&
		candidateCard.DarkColour != colour.DarkNone &&
		candidateCard.DarkColour == topCard.DarkColour
	return sameColour || candidateCard.DarkValue == topCard.DarkValue
}

var lightScores = map[card.Value]int{
	card.DrawOne:     10,
	card.Skip:        20,
	card.Reverse:     20,
	card.Wild:        40,
	card.WildDrawTwo: 50,
}

var darkScores = map[card.DarkValue]int{
	card.DrawFive:  20,
	card.DarkFlip:  20,
	card.SkipAll:   30,
	card.WildStack: 60,
}

// ScoreValue returns the points the active face of c is worth to a round
// winner. Numerals score their face value. A light FLIP scores nothing.
func ScoreValue(c card.Card, side card.Side) int {
	if number, ok := c.Number(side); ok {
		return number
	}
	if side == card.SideLight {
		return lightScores[c.LightValue]
	}
	return darkScores[c.DarkValue]
}

// IsActionCard reports whether the active face is anything other than a
// plain numeral.
func IsActionCard(c card.Card, side card.Side) bool {
	_, isNumber := c.Number(side)
	return !isNumber
}
