package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/arcanaland/war/internal/card"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [card]",
	Short: "Display information about a card and how it fares in War",
	Long: `Show displays a card and the cards it beats and ties with.
Use codes like 'AS', '10h', 'qd' or long names like 'ace_of_spades'.

Examples:
  war show AS
  war show 10h
  war show seven_of_diamonds`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := card.Parse(args[0])
		if err != nil {
			return fmt.Errorf("error getting card: %w", err)
		}

		displayCard(cmd.OutOrStdout(), c)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

// terminalWidth returns the width of out, or 80 when it is not a terminal
func terminalWidth(out io.Writer) int {
	if f, ok := out.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}

// displayCard prints the card, its rank position and its matchups
func displayCard(out io.Writer, c card.Card) {
	var beats, ties []string
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			other := card.New(rank, suit)
			switch {
			case other == c:
			case c.Beats(other):
				beats = append(beats, other.Pretty())
			case c.Ties(other):
				ties = append(ties, other.Pretty())
			}
		}
	}

	face := colorize.New(colorize.FgHiWhite, colorize.Bold)
	if c.Suit.Red() {
		face = colorize.New(colorize.FgHiRed, colorize.Bold)
	}

	label := colorize.CyanString
	infoWidth := terminalWidth(out) - 12

	fmt.Fprintln(out)
	fmt.Fprintln(out, "  "+label("Card:  ")+face.Sprint(c.Pretty())+" "+colorize.HiWhiteString(c.Name()))
	fmt.Fprintln(out, "  "+label("Code:  ")+colorize.HiWhiteString(c.String()))
	fmt.Fprintln(out, "  "+label("Rank:  ")+colorize.HiWhiteString("%s (%d of %d)", c.Rank.Name(), int(c.Rank)-1, len(card.Ranks)))
	fmt.Fprintln(out, "  "+label("Suit:  ")+colorize.HiWhiteString("%s · %s", c.Suit.Name(), c.Suit.Symbol()))

	fmt.Fprintln(out, "  "+label("Beats: ")+colorize.HiWhiteString("%d cards", len(beats)))
	for _, line := range wrapText(strings.Join(beats, " "), infoWidth) {
		fmt.Fprintln(out, "         "+line)
	}
	fmt.Fprintln(out, "  "+label("Ties:  ")+colorize.HiWhiteString(strings.Join(ties, " ")))
	fmt.Fprintln(out)
}
