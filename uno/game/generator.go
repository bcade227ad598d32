package game

import (
	"math/rand"
	"time"

	"github.com/unoflip/server/uno/card"
	"github.com/unoflip/server/uno/card/colour"
)

// Generator produces random cards on demand. There is no physical deck:
// draws are independent and infinite. The two faces of a generated card are
// drawn independently of each other.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator() *Generator {
	return NewSeededGenerator(time.Now().UnixNano())
}

// NewSeededGenerator builds a deterministic generator for tests.
func NewSeededGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// DrawOne generates one card. Wild faces are left uncoloured until a player
// picks a colour at play time.
func (g *Generator) DrawOne() card.Card {
	lightValue := card.Values[g.rng.Intn(len(card.Values))]
	lightColour := colour.None
	if lightValue != card.Wild && lightValue != card.WildDrawTwo {
		lightColour = colour.Lights[g.rng.Intn(len(colour.Lights))]
	}

	darkValue := card.DarkValues[g.rng.Intn(len(card.DarkValues))]
	darkColour := colour.DarkNone
	if darkValue != card.WildStack {
		darkColour = colour.Darks[g.rng.Intn(len(colour.Darks))]
	}

	return card.New(lightColour, lightValue, darkColour, darkValue)
}

// Draw generates amount cards.
func (g *Generator) Draw(amount int) []card.Card {
	cards := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		cards = append(cards, g.DrawOne())
	}
	return cards
}
