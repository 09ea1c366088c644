package player

import (
	"testing"

	"github.com/arcanaland/war/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayCardIsLastInFirstOut(t *testing.T) {
	p := NewHuman("Victor")
	first := card.New(card.Two, card.Clubs)
	second := card.New(card.King, card.Hearts)
	p.ReceiveCard(first)
	p.ReceiveCard(second)

	c, ok := p.PlayCard()
	require.True(t, ok)
	assert.Equal(t, second, c)

	c, ok = p.PlayCard()
	require.True(t, ok)
	assert.Equal(t, first, c)

	_, ok = p.PlayCard()
	assert.False(t, ok)
	assert.Equal(t, 0, p.HandSize())
}

func TestKindsBehaveTheSame(t *testing.T) {
	human := NewHuman("Victor")
	bot := NewAutomated("Florian")
	for _, c := range []card.Card{card.New(card.Five, card.Spades), card.New(card.Nine, card.Diamonds)} {
		human.ReceiveCard(c)
		bot.ReceiveCard(c)
	}

	assert.Equal(t, Human, human.Kind())
	assert.Equal(t, Automated, bot.Kind())
	assert.Equal(t, "Florian", bot.Name())

	for human.HandSize() > 0 {
		hc, _ := human.PlayCard()
		bc, _ := bot.PlayCard()
		assert.Equal(t, hc, bc)
	}
}

func TestScoreStartsAtZero(t *testing.T) {
	assert.Equal(t, 0, NewAutomated("x").Score)
}

func TestForfeitEmptiesHand(t *testing.T) {
	p := NewAutomated("Florian")
	p.ReceiveCard(card.New(card.Ace, card.Spades))
	p.ReceiveCard(card.New(card.Ace, card.Hearts))

	assert.Equal(t, 2, p.Forfeit())
	assert.Equal(t, 0, p.HandSize())
	assert.Equal(t, 0, p.Forfeit())
}

type bottomCard struct{}

func (bottomCard) Choose([]card.Card) int { return 0 }

func TestWithStrategy(t *testing.T) {
	p := NewAutomated("Florian").WithStrategy(bottomCard{})
	bottom := card.New(card.Three, card.Clubs)
	p.ReceiveCard(bottom)
	p.ReceiveCard(card.New(card.Queen, card.Clubs))

	c, ok := p.PlayCard()
	require.True(t, ok)
	assert.Equal(t, bottom, c)
	assert.Equal(t, 1, p.HandSize())
}
