package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/unoflip/server/uno/card"
	"github.com/unoflip/server/uno/card/colour"
)

// PlayerState is the snapshotted form of one seat.
type PlayerState struct {
	Name string      `json:"name"`
	AI   bool        `json:"ai"`
	Hand []card.Card `json:"hand"`
}

// Snapshot is a full deep copy of the engine state: the unit pushed onto the
// history stacks and written by the savegame codec. It shares nothing with
// the live game it was captured from.
type Snapshot struct {
	GameID          uuid.UUID      `json:"gameId"`
	Players         []PlayerState  `json:"players"`
	CurrentPlayer   int            `json:"currentPlayer"`
	Direction       int            `json:"direction"`
	TopCard         *card.Card     `json:"topCard,omitempty"`
	Side            card.Side      `json:"side"`
	WildStackActive bool           `json:"wildStackActive"`
	WildStackColour colour.Dark    `json:"wildStackColour,omitempty"`
	Scores          map[string]int `json:"scores"`
}

// Validate checks the structural invariants of a snapshot before it may
// replace live state.
func (s Snapshot) Validate() error {
	if len(s.Players) == 0 {
		return fmt.Errorf("snapshot has no players")
	}
	if s.CurrentPlayer < 0 || s.CurrentPlayer >= len(s.Players) {
		return fmt.Errorf("current player %d out of range [0,%d)", s.CurrentPlayer, len(s.Players))
	}
	if s.Direction != clockwise && s.Direction != counterclockwise {
		return fmt.Errorf("invalid direction %d", s.Direction)
	}
	if s.Side != card.SideLight && s.Side != card.SideDark {
		return fmt.Errorf("invalid side %q", s.Side)
	}
	if s.WildStackActive {
		if s.WildStackColour == colour.DarkNone {
			return fmt.Errorf("wild stack active without a target colour")
		}
		if s.Side != card.SideDark {
			return fmt.Errorf("wild stack active on the light side")
		}
	}
	for _, player := range s.Players {
		score, ok := s.Scores[player.Name]
		if !ok {
			return fmt.Errorf("no score entry for player %q", player.Name)
		}
		if score < 0 {
			return fmt.Errorf("negative score %d for player %q", score, player.Name)
		}
	}
	if len(s.Scores) != len(s.Players) {
		return fmt.Errorf("score entries (%d) do not match players (%d)", len(s.Scores), len(s.Players))
	}
	return nil
}

// Capture deep-copies the live state into a Snapshot.
func (g *Game) Capture() Snapshot {
	players := make([]PlayerState, 0, len(g.players))
	for _, player := range g.players {
		players = append(players, PlayerState{
			Name: player.Name(),
			AI:   player.AI(),
			Hand: player.Hand().Cards(),
		})
	}

	scores := make(map[string]int, len(g.scores))
	for name, score := range g.scores {
		scores[name] = score
	}

	var topCard *card.Card
	if g.topCard != nil {
		copied := *g.topCard
		topCard = &copied
	}

	return Snapshot{
		GameID:          g.id,
		Players:         players,
		CurrentPlayer:   g.cycler.Current(),
		Direction:       g.cycler.Direction(),
		TopCard:         topCard,
		Side:            g.side,
		WildStackActive: g.wildStackActive,
		WildStackColour: g.wildStackColour,
		Scores:          scores,
	}
}

// restore replaces the live state with a snapshot. History stacks are left
// alone; Apply and the undo/redo paths manage them.
func (g *Game) restore(s Snapshot) {
	if s.GameID != uuid.Nil {
		g.id = s.GameID
	}

	g.players = make([]*Player, 0, len(s.Players))
	for _, state := range s.Players {
		player := NewPlayer(state.Name, state.AI)
		player.Hand().AddCards(state.Hand)
		g.players = append(g.players, player)
	}

	g.scores = make(map[string]int, len(s.Scores))
	for name, score := range s.Scores {
		g.scores[name] = score
	}

	g.cycler = NewCycler(len(g.players))
	g.cycler.Restore(s.CurrentPlayer, s.Direction)

	g.topCard = nil
	if s.TopCard != nil {
		copied := *s.TopCard
		g.topCard = &copied
	}

	g.side = s.Side
	g.wildStackActive = s.WildStackActive
	g.wildStackColour = s.WildStackColour
}

// Apply validates a snapshot and installs it as the live state, as after
// loading a saved game. Both history stacks are cleared: a restored game is
// not undoable past the load boundary.
func (g *Game) Apply(s Snapshot) error {
	if err := s.Validate(); err != nil {
		return err
	}
	g.restore(s)
	g.history.Clear()
	g.notify()
	return nil
}
