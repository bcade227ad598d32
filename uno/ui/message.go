package ui

import (
	"fmt"
	"strings"

	"github.com/unoflip/server/uno/card"
	"github.com/unoflip/server/uno/card/colour"
	"github.com/unoflip/server/uno/game"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) Welcome() {
	Printfln(
		"WELCOME TO %s%s%s %s!",
		colour.Red.Paint("U"),
		colour.Yellow.Paint("N"),
		colour.Blue.Paint("O"),
		colour.Purple.Paint("FLIP"),
	)
}

func (m MessageWriter) TurnStarted(g *game.Game) {
	player := g.CurrentPlayer()
	lines := []string{
		fmt.Sprintf("--- %s side ---", g.Side()),
		fmt.Sprintf("Top card: %s", describeTop(g)),
		fmt.Sprintf("It's %s's turn!", player.Name()),
	}
	Printlns(lines)
}

func describeTop(g *game.Game) string {
	if g.TopCard() == nil {
		return "(none)"
	}
	return g.TopCard().Describe(g.Side())
}

func (m MessageWriter) Hand(g *game.Game, player *game.Player) {
	cards := player.Hand().Cards()
	described := make([]string, 0, len(cards))
	for _, c := range cards {
		described = append(described, c.Describe(g.Side()))
	}
	Printfln("%s's hand: %s", player.Name(), strings.Join(described, " "))
}

func (m MessageWriter) PlayerPlayedCard(g *game.Game, playerName string, c card.Card) {
	Printfln("%s played %s!", playerName, c.Describe(g.Side()))
}

func (m MessageWriter) PlayerDrewCards(playerName string, amount int) {
	if amount == 1 {
		Printfln("%s drew a card!", playerName)
	} else {
		Printfln("%s drew %d cards!", playerName, amount)
	}
}

func (m MessageWriter) PlayerHasNoMatchingCards(playerName string) {
	Printfln("%s has no playable card and draws one!", playerName)
}

func (m MessageWriter) TurnOrderReversed() {
	Println("Turn order has been reversed!")
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) {
	Printfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) AllTurnsSkipped(playerName string) {
	Printfln("Everyone is skipped, %s plays again!", playerName)
}

func (m MessageWriter) SideFlipped(side card.Side) {
	Printfln("The deck flipped to the %s side!", side)
}

func (m MessageWriter) ColourPicked(playerName string, chosen colour.Light) {
	Printfln("%s picked colour %s!", playerName, chosen)
}

func (m MessageWriter) DarkColourPicked(playerName string, chosen colour.Dark) {
	Printfln("%s picked colour %s!", playerName, chosen)
}

func (m MessageWriter) WildStackStarted(victimName string, chosen colour.Dark) {
	Printfln("%s must draw until a %s card appears!", victimName, chosen)
}

func (m MessageWriter) WildStackResolved(victimName string) {
	Printfln("%s drew the target colour, the stack is over!", victimName)
}

func (m MessageWriter) RoundWon(playerName string, roundScore int) {
	Printfln("%s wins the round and scores %d points!", playerName, roundScore)
}

func (m MessageWriter) Scoreboard(g *game.Game) {
	lines := []string{"Scores:"}
	for _, player := range g.Players() {
		lines = append(lines, fmt.Sprintf("  %s: %d", player.Name(), g.Scores()[player.Name()]))
	}
	Printlns(lines)
}

func (m MessageWriter) MatchWon(playerName string) {
	Printfln("%s wins the match!", playerName)
}

func (m MessageWriter) NothingToUndo() {
	Println("Nothing to undo!")
}

func (m MessageWriter) NothingToRedo() {
	Println("Nothing to redo!")
}
