package game

import (
	"github.com/unoflip/server/uno/card"
)

// Hand holds a player's cards in acquisition order; the order is part of the
// displayed state, so removal preserves it.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCard(c card.Card) {
	h.cards = append(h.cards, c)
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Clear() {
	h.cards = h.cards[:0]
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Contains(c card.Card) bool {
	for _, cardInHand := range h.cards {
		if cardInHand.Equal(c) {
			return true
		}
	}
	return false
}

func (h *Hand) PlayableCards(topCard card.Card, side card.Side) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h.cards {
		if Playable(candidateCard, topCard, side) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

// RemoveCard removes the first card equal to c, keeping the order of the
// rest. Removing a card that is not in the hand is a no-op.
func (h *Hand) RemoveCard(c card.Card) {
	for index, cardInHand := range h.cards {
		if cardInHand.Equal(c) {
			h.cards = append(h.cards[:index], h.cards[index+1:]...)
			return
		}
	}
}

func (h *Hand) Size() int {
	return len(h.cards)
}
