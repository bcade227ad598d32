package ui

import (
	"fmt"
	"strings"

	"github.com/unoflip/server/uno/card"
	"github.com/unoflip/server/uno/card/colour"
)

func PromptString(message string) string {
	for {
		Println(message)
		var input string
		_, err := fmt.Scanln(&input)
		if err != nil {
			Println("Invalid text input")
			continue
		}
		return input
	}
}

func promptInteger(message string) int {
	for {
		Println(message)
		var input int
		_, err := fmt.Scanln(&input)
		if err != nil {
			Println("Invalid number input")
			continue
		}
		return input
	}
}

func promptUppercaseString(message string) string {
	input := PromptString(message)
	return strings.ToUpper(input)
}

func PromptIntegerInRange(minimum int, maximum int, message string) int {
	for {
		input := promptInteger(message)
		if input < minimum || input > maximum {
			Printfln("Input out of range (minimum: %d, maximum: %d)", minimum, maximum)
			continue
		}
		return input
	}
}

func PromptYesNo(message string) bool {
	for {
		input := promptUppercaseString(fmt.Sprintf("%s (y/n)", message))
		switch input {
		case "Y", "YES":
			return true
		case "N", "NO":
			return false
		}
		Printfln("Please answer y or n")
	}
}

// PromptCardSelection labels the given cards A, B, C... and returns the
// chosen one. The extra commands (undo/redo/save/draw...) are handed back
// verbatim for the caller to dispatch.
func PromptCardSelection(cards []card.Card, side card.Side, commands []string) (card.Card, string) {
	sequence := runeSequence{}
	labels := make([]string, 0, len(cards))
	cardOptions := make(map[string]card.Card, len(cards))
	for _, c := range cards {
		label := string(sequence.next())
		labels = append(labels, label)
		cardOptions[label] = c
	}

	lines := []string{"Select a card to play:"}
	for index, label := range labels {
		lines = append(lines, fmt.Sprintf("  %s (enter %s)", cards[index].Describe(side), label))
	}
	if len(commands) > 0 {
		lines = append(lines, fmt.Sprintf("Or a command: %s", strings.Join(commands, ", ")))
	}
	message := strings.Join(lines, "\n")

	for {
		input := promptUppercaseString(message)
		if selected, found := cardOptions[input]; found {
			return selected, ""
		}
		for _, command := range commands {
			if strings.EqualFold(command, input) {
				return card.Card{}, strings.ToLower(input)
			}
		}
		Printfln("No card assigned to '%s'", input)
	}
}

func PromptLightColour() colour.Light {
	names := make([]string, 0, len(colour.Lights))
	for _, light := range colour.Lights {
		names = append(names, light.String())
	}
	message := fmt.Sprintf("Select a colour: %s", strings.Join(names, ", "))
	for {
		input := promptUppercaseString(message)
		chosen, err := colour.ByName(input)
		if err != nil {
			Printfln("Unknown colour '%s'", input)
			continue
		}
		return chosen
	}
}

func PromptDarkColour() colour.Dark {
	names := make([]string, 0, len(colour.Darks))
	for _, dark := range colour.Darks {
		names = append(names, dark.String())
	}
	message := fmt.Sprintf("Select a colour: %s", strings.Join(names, ", "))
	for {
		input := promptUppercaseString(message)
		chosen, err := colour.DarkByName(input)
		if err != nil {
			Printfln("Unknown colour '%s'", input)
			continue
		}
		return chosen
	}
}
