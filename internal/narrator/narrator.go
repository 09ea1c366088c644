// Package narrator turns game journal events into console output.
package narrator

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arcanaland/war/internal/card"
	"github.com/arcanaland/war/internal/game"
	colorize "github.com/fatih/color"
	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// Narrator prints a running commentary of a game
type Narrator struct {
	out     io.Writer
	player1 string
	player2 string
	quiet   bool

	round int

	header  *colorize.Color
	name    *colorize.Color
	red     *colorize.Color
	plain   *colorize.Color
	war     *colorize.Color
	winner  *colorize.Color
	comment *colorize.Color
}

// Option configures a Narrator
type Option func(*Narrator)

// Quiet limits output to the deal and the final summary
func Quiet(quiet bool) Option {
	return func(n *Narrator) { n.quiet = quiet }
}

// NoColor disables ANSI colors
func NoColor(off bool) Option {
	return func(n *Narrator) {
		if off {
			n.disableColor()
		}
	}
}

// New creates a narrator writing to out. Colors are disabled when out is
// not a terminal.
func New(out io.Writer, player1, player2 string, opts ...Option) *Narrator {
	n := &Narrator{
		out:     out,
		player1: player1,
		player2: player2,
		header:  colorize.New(colorize.FgCyan, colorize.Bold),
		name:    colorize.New(colorize.FgHiWhite),
		red:     colorize.New(colorize.FgHiRed),
		plain:   colorize.New(colorize.FgHiWhite),
		war:     colorize.New(colorize.FgYellow, colorize.Bold),
		winner:  colorize.New(colorize.FgGreen),
		comment: colorize.New(colorize.FgHiBlack),
	}
	if !IsTerminal(out) {
		n.disableColor()
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (n *Narrator) disableColor() {
	for _, c := range []*colorize.Color{n.header, n.name, n.red, n.plain, n.war, n.winner, n.comment} {
		c.DisableColor()
	}
}

// Title prints the banner shown before a game
func (n *Narrator) Title() {
	n.println(n.header.Sprint("Card Game: War"))
	n.println(n.header.Sprint("=================") + "\n")
}

// Handle prints the narration for one event
func (n *Narrator) Handle(e game.Event) {
	if e.Kind == game.EventDealt {
		n.printf("%s received %d cards\n", n.name.Sprint(e.Player), e.Cards)
		return
	}
	if n.quiet {
		return
	}

	switch e.Kind {
	case game.EventPlay:
		if e.Round != n.round {
			n.round = e.Round
			n.println(n.header.Sprintf("\n--- Round %d ---", e.Round))
		}
		n.printf("%s plays: %s\n", n.name.Sprint(e.Player), n.card(e.Card))
	case game.EventRoundWon:
		n.println(n.winner.Sprintf("%s wins this round!", e.Player))
		n.score(e)
	case game.EventWar:
		n.println(n.war.Sprintf("War! Each player plays %d cards...", game.WarDiscards))
	case game.EventDiscard:
		n.println(n.comment.Sprintf("%s puts %d cards face down", e.Player, e.Cards))
	case game.EventWarWon:
		n.println(n.winner.Sprintf("%s wins the war!", e.Player))
		n.score(e)
	case game.EventWarTie:
		n.println(n.war.Sprint("Both players don't have enough cards for War. Tie."))
		n.score(e)
	case game.EventForfeit:
		n.println(n.war.Sprintf("%s doesn't have enough cards for War. %s wins automatically.",
			e.Player, n.opponent(e.Player)))
		n.score(e)
	}
}

// Summary prints the final result in a box
func (n *Narrator) Summary(res game.Result) {
	var b strings.Builder
	if res.Tie() {
		b.WriteString("It's a Tie!\n")
	} else {
		score := res.Score1
		if res.Winner == res.Player2 {
			score = res.Score2
		}
		fmt.Fprintf(&b, "Winner: %s with %d points!\n", res.Winner, score)
	}
	fmt.Fprintf(&b, "Final score: %s %d - %s %d\n", res.Player1, res.Score1, res.Player2, res.Score2)
	fmt.Fprintf(&b, "Rounds: %d  Wars: %d  Forfeits: %d", res.Rounds, res.Wars, res.Forfeits)

	box := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1).
		WithTitle("GAME OVER").WithTitleTopCenter()
	n.println()
	n.println(box.Sprint(b.String()))
}

func (n *Narrator) score(e game.Event) {
	n.printf("Score: %s %d - %s %d\n", n.player1, e.Score1, n.player2, e.Score2)
}

func (n *Narrator) opponent(name string) string {
	if name == n.player1 {
		return n.player2
	}
	return n.player1
}

func (n *Narrator) card(c card.Card) string {
	if c.Suit.Red() {
		return n.red.Sprint(c.Pretty())
	}
	return n.plain.Sprint(c.Pretty())
}

func (n *Narrator) printf(format string, args ...interface{}) {
	fmt.Fprintf(n.out, format, args...)
}

func (n *Narrator) println(args ...interface{}) {
	fmt.Fprintln(n.out, args...)
}
