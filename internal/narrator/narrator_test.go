package narrator

import (
	"bytes"
	"testing"

	"github.com/arcanaland/war/internal/card"
	"github.com/arcanaland/war/internal/deck"
	"github.com/arcanaland/war/internal/game"
	"github.com/arcanaland/war/internal/player"
	"github.com/stretchr/testify/assert"
)

func TestNarratesRoundsAndWars(t *testing.T) {
	var out bytes.Buffer
	n := New(&out, "Victor", "Florian")

	n.Handle(game.Event{Kind: game.EventDealt, Player: "Victor", Cards: 26})
	n.Handle(game.Event{Kind: game.EventPlay, Round: 1, Player: "Victor", Card: card.New(card.Ten, card.Hearts)})
	n.Handle(game.Event{Kind: game.EventPlay, Round: 1, Player: "Florian", Card: card.New(card.Ten, card.Spades)})
	n.Handle(game.Event{Kind: game.EventWar, Round: 1, Depth: 1})
	n.Handle(game.Event{Kind: game.EventForfeit, Round: 1, Depth: 1, Player: "Florian", Cards: 2, Points: 100, Score1: 100})

	text := out.String()
	assert.Contains(t, text, "Victor received 26 cards")
	assert.Contains(t, text, "--- Round 1 ---")
	assert.Contains(t, text, "Victor plays: 10♥")
	assert.Contains(t, text, "Florian plays: 10♠")
	assert.Contains(t, text, "War! Each player plays 3 cards...")
	assert.Contains(t, text, "Florian doesn't have enough cards for War. Victor wins automatically.")
	assert.Contains(t, text, "Score: Victor 100 - Florian 0")
	assert.NotContains(t, text, "\x1b[")
}

func TestQuietOnlyReportsDeal(t *testing.T) {
	var out bytes.Buffer
	n := New(&out, "Victor", "Florian", Quiet(true))

	n.Handle(game.Event{Kind: game.EventDealt, Player: "Florian", Cards: 26})
	n.Handle(game.Event{Kind: game.EventPlay, Round: 1, Player: "Victor", Card: card.New(card.Two, card.Clubs)})
	n.Handle(game.Event{Kind: game.EventRoundWon, Round: 1, Player: "Victor", Points: 1, Score1: 1})

	assert.Equal(t, "Florian received 26 cards\n", out.String())
}

func TestSummary(t *testing.T) {
	var out bytes.Buffer
	n := New(&out, "Victor", "Florian", NoColor(true))
	n.Summary(game.Result{Player1: "Victor", Player2: "Florian", Score1: 2, Score2: 24, Winner: "Florian", Rounds: 26})

	text := out.String()
	assert.Contains(t, text, "Winner: Florian with 24 points!")
	assert.Contains(t, text, "Final score: Victor 2 - Florian 24")

	out.Reset()
	n.Summary(game.Result{Player1: "Victor", Player2: "Florian"})
	assert.Contains(t, out.String(), "It's a Tie!")
}

func TestNarratesWholeGame(t *testing.T) {
	var out bytes.Buffer
	p1, p2 := player.NewHuman("Victor"), player.NewAutomated("Florian")
	n := New(&out, p1.Name(), p2.Name())

	g := game.New(p1, p2, deck.NewFixed(deck.Build()), game.WithObserver(n.Handle))
	n.Summary(g.Play())

	text := out.String()
	assert.Contains(t, text, "--- Round 26 ---")
	assert.Contains(t, text, "Victor plays: K♠")
	assert.Contains(t, text, "Florian plays: A♠")
	assert.Contains(t, text, "Winner: Florian with 24 points!")
}
