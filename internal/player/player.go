package player

import "github.com/arcanaland/war/internal/card"

// Kind tags who controls a player
type Kind int

const (
	Human Kind = iota
	Automated
)

func (k Kind) String() string {
	switch k {
	case Human:
		return "human"
	case Automated:
		return "automated"
	}
	return "unknown"
}

// Strategy picks which card of a hand to play. It returns an index into hand.
// Both kinds currently play the top card.
type Strategy interface {
	Choose(hand []card.Card) int
}

// TopCard plays the most recently received card
type TopCard struct{}

func (TopCard) Choose(hand []card.Card) int {
	return len(hand) - 1
}

// Player holds a name, a hand and a score
type Player struct {
	name     string
	kind     Kind
	strategy Strategy

	hand  []card.Card
	Score int
}

// New creates a player with an empty hand and the top-card strategy
func New(name string, kind Kind) *Player {
	return &Player{name: name, kind: kind, strategy: TopCard{}}
}

// NewHuman creates a human-controlled player
func NewHuman(name string) *Player {
	return New(name, Human)
}

// NewAutomated creates a computer-controlled player
func NewAutomated(name string) *Player {
	return New(name, Automated)
}

// WithStrategy replaces the card selection strategy
func (p *Player) WithStrategy(s Strategy) *Player {
	if s != nil {
		p.strategy = s
	}
	return p
}

func (p *Player) Name() string { return p.name }
func (p *Player) Kind() Kind   { return p.kind }

// PlayCard removes and returns a card chosen by the strategy, by default the
// top of the hand. ok is false when the hand is empty.
func (p *Player) PlayCard() (c card.Card, ok bool) {
	n := len(p.hand)
	if n == 0 {
		return card.Card{}, false
	}
	i := p.strategy.Choose(p.hand)
	if i < 0 || i >= n {
		i = n - 1
	}
	c = p.hand[i]
	p.hand = append(p.hand[:i], p.hand[i+1:]...)
	return c, true
}

// ReceiveCard puts c on top of the hand
func (p *Player) ReceiveCard(c card.Card) {
	p.hand = append(p.hand, c)
}

// Forfeit empties the hand and returns the number of cards lost
func (p *Player) Forfeit() int {
	n := len(p.hand)
	p.hand = p.hand[:0]
	return n
}

// HandSize returns the number of cards in hand
func (p *Player) HandSize() int {
	return len(p.hand)
}

// Hand returns a copy of the hand, bottom first
func (p *Player) Hand() []card.Card {
	return append([]card.Card(nil), p.hand...)
}

func (p *Player) String() string {
	return p.name
}
