package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unoflip/server/uno/card"
	"github.com/unoflip/server/uno/card/colour"
	"github.com/unoflip/server/uno/game"
)

func newTwoPlayerGame(seed int64) *game.Game {
	g := game.New(game.NewSeededGenerator(seed))
	g.AddPlayer("A", false)
	g.AddPlayer("B", false)
	return g
}

func playerByName(g *game.Game, name string) *game.Player {
	for _, player := range g.Players() {
		if player.Name() == name {
			return player
		}
	}
	return nil
}

var redThree = card.New(colour.Red, card.Three, colour.Orange, card.DarkThree)

func TestPlayCardSetsTopCard(t *testing.T) {
	g := newTwoPlayerGame(1)
	g.CurrentPlayer().Hand().AddCard(redThree)

	g.PlayCard(redThree)

	require.NotNil(t, g.TopCard())
	assert.True(t, g.TopCard().Equal(redThree))
	assert.False(t, g.CurrentPlayer().Hand().Contains(redThree))
}

func TestUndoSimpleCard(t *testing.T) {
	g := newTwoPlayerGame(2)
	current := g.CurrentPlayer()
	current.Hand().AddCard(redThree)

	g.PlayCard(redThree)
	require.True(t, g.Undo())

	assert.True(t, g.CurrentPlayer().Hand().Contains(redThree))
	assert.Nil(t, g.TopCard())
}

func TestRedoSimpleCard(t *testing.T) {
	g := newTwoPlayerGame(3)
	greenFour := card.New(colour.Green, card.Four, colour.Teal, card.DarkFour)
	g.CurrentPlayer().Hand().AddCard(greenFour)

	g.PlayCard(greenFour)
	require.True(t, g.Undo())
	require.True(t, g.Redo())

	assert.False(t, g.CurrentPlayer().Hand().Contains(greenFour))
	require.NotNil(t, g.TopCard())
	assert.True(t, g.TopCard().Equal(greenFour))
}

func TestDrawOneGivesNextPlayerOneCard(t *testing.T) {
	g := newTwoPlayerGame(4)
	next := g.NextPlayer()
	before := g.Capture()

	drawn := g.DrawOne()

	assert.Equal(t, 1, next.Hand().Size())
	assert.True(t, next.Hand().Contains(drawn))

	require.True(t, g.Undo())
	assert.Equal(t, before, g.Capture())
}

func TestUndoInverseProperty(t *testing.T) {
	scenarios := []struct {
		description string
		setup       func(g *game.Game)
		command     func(g *game.Game)
	}{
		{
			description: "play_card",
			setup:       func(g *game.Game) { g.CurrentPlayer().Hand().AddCard(redThree) },
			command:     func(g *game.Game) { g.PlayCard(redThree) },
		},
		{
			description: "draw_card",
			command:     func(g *game.Game) { g.DrawCard() },
		},
		{
			description: "draw_one",
			command:     func(g *game.Game) { g.DrawOne() },
		},
		{
			description: "reverse",
			command:     func(g *game.Game) { g.Reverse() },
		},
		{
			description: "skip",
			command:     func(g *game.Game) { g.Skip() },
		},
		{
			description: "advance",
			command:     func(g *game.Game) { g.Advance() },
		},
		{
			description: "wild",
			setup: func(g *game.Game) {
				g.SetTopCard(card.New(colour.None, card.Wild, colour.Teal, card.DarkFive))
			},
			command: func(g *game.Game) { g.Wild(colour.Green) },
		},
		{
			description: "wild_draw_two",
			setup: func(g *game.Game) {
				g.SetTopCard(card.New(colour.None, card.WildDrawTwo, colour.Teal, card.DarkFive))
			},
			command: func(g *game.Game) { g.WildDrawTwo(colour.Blue) },
		},
		{
			description: "flip",
			setup:       func(g *game.Game) { g.SetTopCard(redThree) },
			command:     func(g *game.Game) { g.Flip() },
		},
		{
			description: "draw_five",
			command:     func(g *game.Game) { g.DrawFive() },
		},
		{
			description: "set_init_wild_stack",
			setup: func(g *game.Game) {
				g.Flip()
				g.SetTopCard(card.New(colour.Red, card.Seven, colour.DarkNone, card.WildStack))
			},
			command: func(g *game.Game) { g.SetInitWildStack(colour.Pink) },
		},
		{
			description: "wild_stack",
			setup: func(g *game.Game) {
				g.Flip()
				g.SetTopCard(card.New(colour.Red, card.Seven, colour.DarkNone, card.WildStack))
				g.SetInitWildStack(colour.Pink)
			},
			command: func(g *game.Game) { g.WildStack() },
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			g := newTwoPlayerGame(10)
			if scenario.setup != nil {
				scenario.setup(g)
			}
			before := g.Capture()

			scenario.command(g)
			require.True(t, g.Undo())

			require.Equal(t, before, g.Capture())
		})
	}
}

func TestRedoReplayProperty(t *testing.T) {
	g := newTwoPlayerGame(11)
	g.SetTopCard(card.New(colour.None, card.WildDrawTwo, colour.Teal, card.DarkFive))

	g.WildDrawTwo(colour.Blue)
	after := g.Capture()

	require.True(t, g.Undo())
	require.True(t, g.Redo())
	require.Equal(t, after, g.Capture())
}

func TestFlipUndoRedoRestoresSide(t *testing.T) {
	g := newTwoPlayerGame(12)
	g.SetTopCard(redThree)
	require.Equal(t, card.SideLight, g.Side())

	g.Flip()
	require.Equal(t, card.SideDark, g.Side())

	require.True(t, g.Undo())
	assert.Equal(t, card.SideLight, g.Side())

	require.True(t, g.Redo())
	assert.Equal(t, card.SideDark, g.Side())
}

func TestFlipRedrawsWildTopCard(t *testing.T) {
	t.Run("to_dark", func(t *testing.T) {
		g := newTwoPlayerGame(13)
		g.SetTopCard(card.New(colour.Red, card.Seven, colour.DarkNone, card.WildStack))

		g.Flip()

		require.Equal(t, card.SideDark, g.Side())
		require.NotNil(t, g.TopCard())
		assert.NotEqual(t, card.WildStack, g.TopCard().DarkValue)
	})

	t.Run("to_light", func(t *testing.T) {
		g := newTwoPlayerGame(14)
		g.Flip()
		g.SetTopCard(card.New(colour.None, card.Wild, colour.Teal, card.DarkFive))

		g.Flip()

		require.Equal(t, card.SideLight, g.Side())
		require.NotNil(t, g.TopCard())
		assert.NotEqual(t, card.Wild, g.TopCard().LightValue)
		assert.NotEqual(t, card.WildDrawTwo, g.TopCard().LightValue)
	})

	t.Run("without_top_card_only_toggles", func(t *testing.T) {
		g := newTwoPlayerGame(15)
		g.Flip()
		require.Equal(t, card.SideDark, g.Side())
		require.Nil(t, g.TopCard())
	})
}

func TestTurnArithmetic(t *testing.T) {
	g := game.New(game.NewSeededGenerator(16))
	g.AddPlayer("A", false)
	g.AddPlayer("B", false)
	g.AddPlayer("C", false)

	require.Equal(t, "A", g.CurrentPlayer().Name())
	require.Equal(t, "B", g.NextPlayer().Name())

	g.Advance()
	require.Equal(t, "B", g.CurrentPlayer().Name())

	g.Skip()
	require.Equal(t, "A", g.CurrentPlayer().Name())

	g.Reverse()
	require.Equal(t, "C", g.NextPlayer().Name())
	g.Advance()
	require.Equal(t, "C", g.CurrentPlayer().Name())
}

func TestWildDrawTwoIsOneCheckpoint(t *testing.T) {
	g := newTwoPlayerGame(17)
	g.SetTopCard(card.New(colour.None, card.WildDrawTwo, colour.Teal, card.DarkFive))
	before := g.Capture()
	require.Equal(t, 0, g.History().UndoLen())

	drawnCards := g.WildDrawTwo(colour.Blue)

	require.Len(t, drawnCards, 2)
	assert.Equal(t, colour.Blue, g.TopCard().LightColour)
	assert.Equal(t, 2, playerByName(g, "B").Hand().Size())
	// skipping B lands the turn back on A in a two player game
	assert.Equal(t, "A", g.CurrentPlayer().Name())
	require.Equal(t, 1, g.History().UndoLen())

	require.True(t, g.Undo())
	require.Equal(t, before, g.Capture())
}

func TestDrawFiveSkipsVictim(t *testing.T) {
	g := game.New(game.NewSeededGenerator(18))
	g.AddPlayer("A", false)
	g.AddPlayer("B", false)
	g.AddPlayer("C", false)

	g.DrawFive()

	assert.Equal(t, 5, playerByName(g, "B").Hand().Size())
	assert.Equal(t, "C", g.CurrentPlayer().Name())
	require.Equal(t, 1, g.History().UndoLen())
}

func TestSkipAllKeepsTurnAndHistory(t *testing.T) {
	g := newTwoPlayerGame(19)
	g.SkipAll()
	assert.Equal(t, "A", g.CurrentPlayer().Name())
	assert.Equal(t, 0, g.History().UndoLen())
}

func TestWildStackChain(t *testing.T) {
	g := newTwoPlayerGame(20)
	g.Flip()
	g.SetTopCard(card.New(colour.Red, card.Seven, colour.DarkNone, card.WildStack))

	g.SetInitWildStack(colour.Pink)

	require.True(t, g.WildStackActive())
	assert.Equal(t, colour.Pink, g.WildStackColour())
	assert.Equal(t, colour.Pink, g.TopCard().DarkColour)
	require.Equal(t, "B", g.CurrentPlayer().Name())

	victim := g.CurrentPlayer()
	resolved := false
	for i := 0; i < 10000; i++ {
		if g.WildStack() {
			resolved = true
			break
		}
	}
	require.True(t, resolved, "wild stack never resolved")

	assert.False(t, g.WildStackActive())
	assert.Equal(t, colour.DarkNone, g.WildStackColour())
	// resolving the chain leaves the turn with the victim
	assert.Equal(t, "B", g.CurrentPlayer().Name())

	handCards := victim.Hand().Cards()
	require.NotEmpty(t, handCards)
	assert.Equal(t, colour.Pink, handCards[len(handCards)-1].DarkColour)
}

func TestWildStackInactiveIsNoop(t *testing.T) {
	g := newTwoPlayerGame(21)
	require.False(t, g.WildStack())
	assert.Equal(t, 0, g.History().UndoLen())
	assert.Equal(t, 0, g.CurrentPlayer().Hand().Size())
}

func TestNewRound(t *testing.T) {
	g := newTwoPlayerGame(22)
	g.CurrentPlayer().Hand().AddCard(redThree)
	g.Advance()
	g.Reverse()
	g.Flip()

	g.NewRound()

	for _, player := range g.Players() {
		assert.Equal(t, game.StartingHandSize, player.Hand().Size())
	}
	require.NotNil(t, g.TopCard())
	assert.NotEqual(t, card.Wild, g.TopCard().LightValue)
	assert.NotEqual(t, card.WildDrawTwo, g.TopCard().LightValue)
	assert.Equal(t, card.SideLight, g.Side())
	assert.Equal(t, 0, g.CurrentIndex())
	assert.Equal(t, 1, g.Direction())
	assert.False(t, g.History().CanUndo())
}

func TestNewGame(t *testing.T) {
	g := newTwoPlayerGame(23)
	g.DrawCard()

	g.NewGame([]string{"C", "D", "E"}, []bool{false, true, true})

	require.Len(t, g.Players(), 3)
	assert.Equal(t, "C", g.CurrentPlayer().Name())
	assert.True(t, playerByName(g, "D").AI())
	assert.Equal(t, map[string]int{"C": 0, "D": 0, "E": 0}, g.Scores())
	assert.False(t, g.History().CanUndo())
}

func TestScoreAdditivity(t *testing.T) {
	g := newTwoPlayerGame(24)
	winner := playerByName(g, "A")
	loser := playerByName(g, "B")
	loser.Hand().AddCards([]card.Card{
		card.New(colour.Red, card.Nine, colour.Orange, card.DarkOne),
		card.New(colour.Blue, card.Skip, colour.Pink, card.DarkTwo),
		card.New(colour.None, card.Wild, colour.Teal, card.DarkThree),
	})
	// the winner's own cards never count
	winner.Hand().AddCard(card.New(colour.None, card.WildDrawTwo, colour.Teal, card.DarkFive))

	roundScore := g.GetScore(winner)
	require.Equal(t, 9+20+40, roundScore)

	prior := g.Scores()["A"]
	matchOver := g.CheckWinner(winner)
	assert.False(t, matchOver)
	assert.Equal(t, prior+roundScore, g.Scores()["A"])
}

func TestScoreUsesActiveSide(t *testing.T) {
	g := newTwoPlayerGame(25)
	winner := playerByName(g, "A")
	loser := playerByName(g, "B")
	loser.Hand().AddCard(card.New(colour.Red, card.Nine, colour.DarkNone, card.WildStack))

	require.Equal(t, 9, g.GetScore(winner))
	g.Flip()
	require.Equal(t, 60, g.GetScore(winner))
}

func TestCheckWinnerThreshold(t *testing.T) {
	g := newTwoPlayerGame(26)
	winner := playerByName(g, "A")
	loser := playerByName(g, "B")
	for i := 0; i < 10; i++ {
		loser.Hand().AddCard(card.New(colour.None, card.WildDrawTwo, colour.Teal, card.DarkFive))
	}

	require.Equal(t, game.ScoreToWin, g.GetScore(winner))
	assert.True(t, g.CheckWinner(winner))
	assert.Equal(t, game.ScoreToWin, g.Scores()["A"])
}

func TestIsPlayableBeforeFirstRound(t *testing.T) {
	g := newTwoPlayerGame(27)
	require.Nil(t, g.TopCard())
	assert.True(t, g.IsPlayable(card.New(colour.None, card.Wild, colour.Teal, card.DarkFive)))
	assert.False(t, g.IsPlayable(redThree))
}

func TestPlayableCardHelpers(t *testing.T) {
	g := newTwoPlayerGame(28)
	g.SetTopCard(card.New(colour.Blue, card.Seven, colour.Orange, card.DarkOne))
	player := g.CurrentPlayer()
	player.Hand().AddCards([]card.Card{
		card.New(colour.Red, card.Five, colour.Pink, card.DarkNine),
		card.New(colour.Blue, card.Two, colour.Pink, card.DarkNine),
	})

	require.Equal(t, []card.Card{
		card.New(colour.Blue, card.Two, colour.Pink, card.DarkNine),
	}, g.PlayableCards(player))
	assert.True(t, g.HasPlayableCard(player))
	assert.True(t, g.CurrentHasPlayableCard())
	assert.False(t, g.HasPlayableCard(playerByName(g, "B")))
}

func TestChooseAICard(t *testing.T) {
	t.Run("prefers_the_first_action_card", func(t *testing.T) {
		g := newTwoPlayerGame(29)
		g.SetTopCard(card.New(colour.Blue, card.Seven, colour.Orange, card.DarkOne))
		player := g.CurrentPlayer()
		player.Hand().AddCards([]card.Card{
			card.New(colour.Blue, card.Five, colour.Pink, card.DarkNine),
			card.New(colour.Blue, card.Skip, colour.Pink, card.DarkNine),
			card.New(colour.None, card.Wild, colour.Teal, card.DarkFive),
		})

		chosen := g.ChooseAICard(player)
		require.NotNil(t, chosen)
		assert.True(t, chosen.Equal(card.New(colour.Blue, card.Skip, colour.Pink, card.DarkNine)))
	})

	t.Run("falls_back_to_the_first_playable_card", func(t *testing.T) {
		g := newTwoPlayerGame(30)
		g.SetTopCard(card.New(colour.Blue, card.Seven, colour.Orange, card.DarkOne))
		player := g.CurrentPlayer()
		player.Hand().AddCards([]card.Card{
			card.New(colour.Blue, card.Five, colour.Pink, card.DarkNine),
			card.New(colour.Blue, card.Two, colour.Pink, card.DarkNine),
		})

		chosen := g.ChooseAICard(player)
		require.NotNil(t, chosen)
		assert.True(t, chosen.Equal(card.New(colour.Blue, card.Five, colour.Pink, card.DarkNine)))
	})

	t.Run("returns_nil_without_a_playable_card", func(t *testing.T) {
		g := newTwoPlayerGame(31)
		g.SetTopCard(card.New(colour.Blue, card.Seven, colour.Orange, card.DarkOne))
		player := g.CurrentPlayer()
		player.Hand().AddCard(card.New(colour.Red, card.Five, colour.Pink, card.DarkNine))

		require.Nil(t, g.ChooseAICard(player))
		require.Nil(t, g.ChooseAICardForCurrent())
	})
}

func TestPlayCardWithUncheckedCardIsHarmless(t *testing.T) {
	g := newTwoPlayerGame(32)
	g.CurrentPlayer().Hand().AddCard(redThree)
	notHeld := card.New(colour.Green, card.Nine, colour.Teal, card.DarkNine)

	g.PlayCard(notHeld)

	assert.Equal(t, 1, g.CurrentPlayer().Hand().Size())
	assert.True(t, g.TopCard().Equal(notHeld))
	require.True(t, g.Undo())
	assert.Nil(t, g.TopCard())
}

type recordingListener struct {
	changes int
	lastTop *card.Card
}

func (l *recordingListener) GameChanged(g *game.Game) {
	l.changes++
	l.lastTop = g.TopCard()
}

func TestListeners(t *testing.T) {
	g := newTwoPlayerGame(33)
	listener := &recordingListener{}
	g.AddListener(listener)
	g.AddListener(listener) // registering twice must not double notifications
	g.CurrentPlayer().Hand().AddCard(redThree)

	g.PlayCard(redThree)

	require.Equal(t, 1, listener.changes)
	require.NotNil(t, listener.lastTop)
	assert.True(t, listener.lastTop.Equal(redThree))

	g.RemoveListener(listener)
	g.DrawCard()
	assert.Equal(t, 1, listener.changes)
}

func TestUndoRedoOnEmptyStacks(t *testing.T) {
	g := newTwoPlayerGame(34)
	assert.False(t, g.Undo())
	assert.False(t, g.Redo())
}

func TestNewCommandClearsRedo(t *testing.T) {
	g := newTwoPlayerGame(35)
	g.DrawCard()
	require.True(t, g.Undo())
	require.True(t, g.History().CanRedo())

	g.DrawCard()
	assert.False(t, g.History().CanRedo())
	assert.False(t, g.Redo())
}
