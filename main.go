package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/unoflip/server/config"
	"github.com/unoflip/server/uno/card"
	"github.com/unoflip/server/uno/card/colour"
	"github.com/unoflip/server/uno/game"
	"github.com/unoflip/server/uno/savegame"
	"github.com/unoflip/server/uno/ui"
)

var turnCommands = []string{"draw", "undo", "redo", "save", "load", "quit"}

func main() {
	cfg := config.Load()
	cfg.ApplyLogLevel()

	ui.Message.Welcome()
	g := game.New(nil)
	logrus.WithField("gameId", g.ID()).Debug("session started")

	names, aiFlags := collectPlayers()
	g.NewGame(names, aiFlags)
	g.NewRound()

	run(g, cfg)
}

func collectPlayers() ([]string, []bool) {
	count := ui.PromptIntegerInRange(2, 4, "How many players? (2-4)")
	names := make([]string, 0, count)
	aiFlags := make([]bool, 0, count)
	for i := 0; i < count; i++ {
		name := ui.PromptString(fmt.Sprintf("Name of player %d:", i+1))
		names = append(names, name)
		aiFlags = append(aiFlags, ui.PromptYesNo(fmt.Sprintf("Is %s controlled by the computer?", name)))
	}
	return names, aiFlags
}

func run(g *game.Game, cfg config.Config) {
	for {
		if g.WildStackActive() {
			resolveWildStack(g)
		}

		ui.Message.TurnStarted(g)
		player := g.CurrentPlayer()
		if !player.AI() {
			ui.Message.Hand(g, player)
		}

		playable := g.PlayableCards(player)
		if len(playable) == 0 {
			ui.Message.PlayerHasNoMatchingCards(player.Name())
			g.DrawCard()
			g.Advance()
			continue
		}

		var chosen card.Card
		if player.AI() {
			chosen = *g.ChooseAICard(player)
		} else {
			selected, command := ui.PromptCardSelection(playable, g.Side(), turnCommands)
			if command != "" {
				if handleCommand(g, cfg, command) {
					return
				}
				continue
			}
			chosen = selected
		}

		g.PlayCard(chosen)
		ui.Message.PlayerPlayedCard(g, player.Name(), chosen)

		advanceAfter := applyEffects(g, chosen, player)

		if player.Hand().Empty() {
			if finishRound(g, player) {
				return
			}
			continue
		}

		if advanceAfter {
			g.Advance()
		}
	}
}

// handleCommand dispatches a non-card turn input; returns true when the
// session should end.
func handleCommand(g *game.Game, cfg config.Config, command string) bool {
	switch command {
	case "draw":
		g.DrawCard()
		g.Advance()
	case "undo":
		if !g.Undo() {
			ui.Message.NothingToUndo()
		}
	case "redo":
		if !g.Redo() {
			ui.Message.NothingToRedo()
		}
	case "save":
		if err := savegame.Save(cfg.SavePath, g.Capture()); err != nil {
			logrus.WithError(err).Error("save failed")
		}
	case "load":
		snapshot, err := savegame.Load(cfg.SavePath)
		if err != nil {
			logrus.WithError(err).Error("load failed")
			return false
		}
		if err := g.Apply(snapshot); err != nil {
			logrus.WithError(err).Error("load failed")
		}
	case "quit":
		return true
	}
	return false
}

// applyEffects performs the played card's action under the active side and
// reports whether the controller still owes a plain turn advance.
func applyEffects(g *game.Game, c card.Card, player *game.Player) bool {
	if g.Side() == card.SideLight {
		switch c.LightValue {
		case card.DrawOne:
			victim := g.NextPlayer().Name()
			g.DrawOne()
			ui.Message.PlayerDrewCards(victim, 1)
			return true
		case card.Reverse:
			g.Reverse()
			ui.Message.TurnOrderReversed()
			return true
		case card.Skip:
			skipped := g.NextPlayer().Name()
			g.Skip()
			ui.Message.PlayerTurnSkipped(skipped)
			return false
		case card.Wild:
			chosen := pickLightColour(player)
			g.Wild(chosen)
			ui.Message.ColourPicked(player.Name(), chosen)
			return true
		case card.WildDrawTwo:
			chosen := pickLightColour(player)
			victim := g.NextPlayer().Name()
			g.WildDrawTwo(chosen)
			ui.Message.ColourPicked(player.Name(), chosen)
			ui.Message.PlayerDrewCards(victim, 2)
			ui.Message.PlayerTurnSkipped(victim)
			return false
		case card.Flip:
			g.Flip()
			ui.Message.SideFlipped(g.Side())
			return true
		}
		return true
	}

	switch c.DarkValue {
	case card.DarkFlip:
		g.Flip()
		ui.Message.SideFlipped(g.Side())
		return true
	case card.DrawFive:
		victim := g.NextPlayer().Name()
		g.DrawFive()
		ui.Message.PlayerDrewCards(victim, 5)
		ui.Message.PlayerTurnSkipped(victim)
		return false
	case card.SkipAll:
		g.SkipAll()
		ui.Message.AllTurnsSkipped(player.Name())
		return false
	case card.WildStack:
		chosen := pickDarkColour(player)
		victim := g.NextPlayer().Name()
		g.SetInitWildStack(chosen)
		ui.Message.DarkColourPicked(player.Name(), chosen)
		ui.Message.WildStackStarted(victim, chosen)
		return false
	}
	return true
}

func resolveWildStack(g *game.Game) {
	victim := g.CurrentPlayer()
	for {
		resolved := g.WildStack()
		ui.Message.PlayerDrewCards(victim.Name(), 1)
		if resolved {
			ui.Message.WildStackResolved(victim.Name())
			return
		}
	}
}

// finishRound banks the round score; returns true when the match is over.
func finishRound(g *game.Game, winner *game.Player) bool {
	roundScore := g.GetScore(winner)
	matchOver := g.CheckWinner(winner)
	ui.Message.RoundWon(winner.Name(), roundScore)
	ui.Message.Scoreboard(g)
	if matchOver {
		ui.Message.MatchWon(winner.Name())
		return true
	}
	g.NewRound()
	return false
}

func pickLightColour(player *game.Player) colour.Light {
	if !player.AI() {
		return ui.PromptLightColour()
	}
	counts := make(map[colour.Light]int)
	for _, c := range player.Hand().Cards() {
		if c.LightColour != colour.None {
			counts[c.LightColour]++
		}
	}
	best := colour.Lights[0]
	for _, candidate := range colour.Lights {
		if counts[candidate] > counts[best] {
			best = candidate
		}
	}
	return best
}

func pickDarkColour(player *game.Player) colour.Dark {
	if !player.AI() {
		return ui.PromptDarkColour()
	}
	counts := make(map[colour.Dark]int)
	for _, c := range player.Hand().Cards() {
		if c.DarkColour != colour.DarkNone {
			counts[c.DarkColour]++
		}
	}
	best := colour.Darks[0]
	for _, candidate := range colour.Darks {
		if counts[candidate] > counts[best] {
			best = candidate
		}
	}
	return best
}
