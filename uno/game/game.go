package game

import (
	"github.com/google/uuid"
	"github.com/unoflip/server/uno/card"
	"github.com/unoflip/server/uno/card/colour"
)

const (
	// ScoreToWin is the cumulative score that ends the match.
	ScoreToWin = 500
	// StartingHandSize is the number of cards dealt to each player at the
	// start of a round.
	StartingHandSize = 7
)

// Game is the aggregate root of the engine: players and their hands, the
// discard top, the turn tracker, the active side, the wild stack sub-state
// and the cumulative scores. Every public command runs to completion on the
// calling goroutine; the engine is not safe for concurrent use.
//
// Commands in the undoable set record exactly one checkpoint before
// mutating, regardless of how many sub-mutations they perform.
type Game struct {
	id              uuid.UUID
	players         []*Player
	cycler          *Cycler
	topCard         *card.Card
	side            card.Side
	wildStackActive bool
	wildStackColour colour.Dark
	scores          map[string]int
	generator       *Generator
	history         *History
	listeners       []Listener
}

// New builds an empty game around the given card source. A nil generator
// gets a time-seeded one.
func New(generator *Generator) *Game {
	if generator == nil {
		generator = NewGenerator()
	}
	return &Game{
		id:        uuid.New(),
		cycler:    NewCycler(0),
		side:      card.SideLight,
		scores:    map[string]int{},
		generator: generator,
		history:   NewHistory(),
	}
}

func (g *Game) ID() uuid.UUID {
	return g.id
}

func (g *Game) Players() []*Player {
	players := make([]*Player, len(g.players))
	copy(players, g.players)
	return players
}

func (g *Game) CurrentPlayer() *Player {
	return g.players[g.cycler.Current()]
}

// NextPlayer returns the player one seat ahead in the current direction,
// without advancing.
func (g *Game) NextPlayer() *Player {
	return g.players[g.cycler.Next()]
}

func (g *Game) CurrentIndex() int {
	return g.cycler.Current()
}

func (g *Game) Direction() int {
	return g.cycler.Direction()
}

// TopCard is nil only before the first round starts.
func (g *Game) TopCard() *card.Card {
	return g.topCard
}

// SetTopCard replaces the discard top directly, bypassing a play.
func (g *Game) SetTopCard(c card.Card) {
	placed := c
	g.topCard = &placed
}

func (g *Game) Side() card.Side {
	return g.side
}

func (g *Game) WildStackActive() bool {
	return g.wildStackActive
}

func (g *Game) WildStackColour() colour.Dark {
	return g.wildStackColour
}

// Scores returns a copy of the cumulative scores keyed by player name.
func (g *Game) Scores() map[string]int {
	scores := make(map[string]int, len(g.scores))
	for name, score := range g.scores {
		scores[name] = score
	}
	return scores
}

func (g *Game) History() *History {
	return g.history
}

// AddPlayer seats a new player and initializes their cumulative score. The
// turn pointer and direction are preserved.
func (g *Game) AddPlayer(name string, ai bool) {
	g.players = append(g.players, NewPlayer(name, ai))
	g.scores[name] = 0
	current, direction := g.cycler.Current(), g.cycler.Direction()
	g.cycler = NewCycler(len(g.players))
	g.cycler.Restore(current, direction)
}

func (g *Game) checkpoint() {
	g.history.Record(g.Capture())
}

// PlayCard removes the card from the current player's hand and makes it the
// discard top. Legality is the caller's responsibility (IsPlayable); an
// unchecked card only ever changes hand membership, never corrupts state.
// Effects and turn advancement are separate calls issued by the caller.
func (g *Game) PlayCard(c card.Card) {
	g.checkpoint()
	g.CurrentPlayer().Hand().RemoveCard(c)
	played := c
	g.topCard = &played
	g.notify()
}

// DrawCard deals one generated card to the current player.
func (g *Game) DrawCard() {
	g.checkpoint()
	g.CurrentPlayer().Hand().AddCard(g.generator.DrawOne())
	g.notify()
}

// DrawOne makes the next player (by direction) draw exactly one card and
// returns it for display.
func (g *Game) DrawOne() card.Card {
	g.checkpoint()
	drawn := g.generator.DrawOne()
	g.NextPlayer().Hand().AddCard(drawn)
	g.notify()
	return drawn
}

// Reverse flips the direction of play.
func (g *Game) Reverse() {
	g.checkpoint()
	g.cycler.Reverse()
	g.notify()
}

// Skip advances two seats in the current direction, skipping the next
// player's turn.
func (g *Game) Skip() {
	g.checkpoint()
	g.cycler.Skip()
	g.notify()
}

// Advance moves the turn to the next player.
func (g *Game) Advance() {
	g.checkpoint()
	g.cycler.Advance()
	g.notify()
}

// Wild fixes the chosen colour onto the top card's light face. The caller
// guarantees a colour was chosen.
func (g *Game) Wild(chosen colour.Light) {
	if g.topCard == nil {
		return
	}
	g.checkpoint()
	g.topCard.LightColour = chosen
	g.notify()
}

// WildDrawTwo fixes the chosen colour, deals two cards to the next player
// and skips them. One checkpoint covers the whole command.
func (g *Game) WildDrawTwo(chosen colour.Light) []card.Card {
	if g.topCard == nil {
		return nil
	}
	g.checkpoint()
	g.topCard.LightColour = chosen
	drawnCards := g.generator.Draw(2)
	g.NextPlayer().Hand().AddCards(drawnCards)
	g.cycler.Skip()
	g.notify()
	return drawnCards
}

// Flip toggles the active side. If the new side's face of the top card is a
// wild value, the top card is re-drawn until the active face is non-wild;
// each iteration replaces the whole card, so the value on display may change
// too.
func (g *Game) Flip() {
	g.checkpoint()
	if g.side == card.SideDark {
		g.side = card.SideLight
		for g.topCard != nil && (g.topCard.LightValue == card.Wild || g.topCard.LightValue == card.WildDrawTwo) {
			drawn := g.generator.DrawOne()
			g.topCard = &drawn
		}
	} else {
		g.side = card.SideDark
		for g.topCard != nil && g.topCard.DarkValue == card.WildStack {
			drawn := g.generator.DrawOne()
			g.topCard = &drawn
		}
	}
	g.notify()
}

// DrawFive deals five cards to the next player and skips their turn.
func (g *Game) DrawFive() {
	g.checkpoint()
	g.NextPlayer().Hand().AddCards(g.generator.Draw(5))
	g.cycler.Skip()
	g.notify()
}

// SkipAll skips every other player by leaving the turn where it is. No state
// changes; observers are still told so the display refreshes.
func (g *Game) SkipAll() {
	g.notify()
}

// SetInitWildStack starts a wild stack chain: the chosen colour goes onto
// the top card's dark face, the chain is armed and the turn moves to the
// victim.
func (g *Game) SetInitWildStack(chosen colour.Dark) {
	if g.topCard == nil {
		return
	}
	g.checkpoint()
	g.topCard.DarkColour = chosen
	g.wildStackActive = true
	g.wildStackColour = chosen
	g.cycler.Advance()
	g.notify()
}

// WildStack deals one card to the victim. A draw matching the target colour
// resolves the chain and returns true; the caller keeps invoking until it
// does. The turn pointer stays with the victim on resolution.
func (g *Game) WildStack() bool {
	if !g.wildStackActive {
		return false
	}
	g.checkpoint()
	drawn := g.generator.DrawOne()
	g.CurrentPlayer().Hand().AddCard(drawn)
	if drawn.DarkColour != colour.DarkNone && drawn.DarkColour == g.wildStackColour {
		g.wildStackActive = false
		g.wildStackColour = colour.DarkNone
		g.notify()
		return true
	}
	g.notify()
	return false
}

// NewRound clears every hand, deals fresh starting hands, picks a non-wild
// light top card and resets side, turn and direction. History does not
// survive a round boundary.
func (g *Game) NewRound() {
	for _, player := range g.players {
		player.Hand().Clear()
		player.Hand().AddCards(g.generator.Draw(StartingHandSize))
	}
	for {
		drawn := g.generator.DrawOne()
		if drawn.LightValue != card.Wild && drawn.LightValue != card.WildDrawTwo {
			g.topCard = &drawn
			break
		}
	}
	g.side = card.SideLight
	g.cycler = NewCycler(len(g.players))
	g.wildStackActive = false
	g.wildStackColour = colour.DarkNone
	g.history.Clear()
	g.notify()
}

// NewGame replaces the player list and scores wholesale and resets side,
// turn and direction. History does not survive.
func (g *Game) NewGame(names []string, aiFlags []bool) {
	g.players = g.players[:0]
	g.scores = map[string]int{}
	for index, name := range names {
		g.players = append(g.players, NewPlayer(name, aiFlags[index]))
		g.scores[name] = 0
	}
	g.side = card.SideLight
	g.cycler = NewCycler(len(g.players))
	g.wildStackActive = false
	g.wildStackColour = colour.DarkNone
	g.history.Clear()
	g.notify()
}

// GetScore computes the round score the winner earns: the summed card values
// of every other player's hand under the current side's table.
func (g *Game) GetScore(winner *Player) int {
	score := 0
	for _, player := range g.players {
		if player == winner {
			continue
		}
		for _, c := range player.Hand().Cards() {
			score += ScoreValue(c, g.side)
		}
	}
	return score
}

// CheckWinner banks the winner's round score and reports whether any player
// has reached the match threshold.
func (g *Game) CheckWinner(winner *Player) bool {
	g.scores[winner.Name()] += g.GetScore(winner)
	for _, player := range g.players {
		if g.scores[player.Name()] >= ScoreToWin {
			return true
		}
	}
	return false
}

// IsPlayable checks the candidate against the current top card under the
// active side's rules.
func (g *Game) IsPlayable(c card.Card) bool {
	if c.IsWild(g.side) {
		return true
	}
	if g.topCard == nil {
		return false
	}
	return Playable(c, *g.topCard, g.side)
}

// PlayableCards lists the cards in the player's hand that may be played now,
// in hand order.
func (g *Game) PlayableCards(player *Player) []card.Card {
	var playable []card.Card
	for _, c := range player.Hand().Cards() {
		if g.IsPlayable(c) {
			playable = append(playable, c)
		}
	}
	return playable
}

func (g *Game) HasPlayableCard(player *Player) bool {
	return len(g.PlayableCards(player)) > 0
}

func (g *Game) CurrentHasPlayableCard() bool {
	return g.HasPlayableCard(g.CurrentPlayer())
}

// CurrentHandEmpty reports whether the current player has emptied their
// hand, ending the round.
func (g *Game) CurrentHandEmpty() bool {
	return g.CurrentPlayer().Hand().Empty()
}

// ChooseAICard picks the card an AI seat plays: the first action or wild
// card among the playable ones, else the first playable card, else nil.
// Deterministic given hand order.
func (g *Game) ChooseAICard(player *Player) *card.Card {
	playable := g.PlayableCards(player)
	if len(playable) == 0 {
		return nil
	}
	best := playable[0]
	for _, candidate := range playable[1:] {
		if !IsActionCard(best, g.side) && IsActionCard(candidate, g.side) {
			best = candidate
			break
		}
	}
	return &best
}

func (g *Game) ChooseAICardForCurrent() *card.Card {
	return g.ChooseAICard(g.CurrentPlayer())
}

// Undo rewinds the last undoable command. Returns false, leaving state
// untouched, when there is nothing to undo.
func (g *Game) Undo() bool {
	restored, ok := g.history.Undo(g.Capture())
	if !ok {
		return false
	}
	g.restore(restored)
	g.notify()
	return true
}

// Redo replays the most recently undone command. Returns false when there
// is nothing to redo.
func (g *Game) Redo() bool {
	restored, ok := g.history.Redo(g.Capture())
	if !ok {
		return false
	}
	g.restore(restored)
	g.notify()
	return true
}
