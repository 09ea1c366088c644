package deck

import (
	"math/rand"
	"time"

	"github.com/arcanaland/war/internal/card"
)

// Size is the number of cards in a full deck
const Size = 52

// Deck is an ordered pile of cards. The top of the deck is the end of the slice.
type Deck struct {
	cards []card.Card
	rng   *rand.Rand

	// order, when set, replaces the standard build and disables shuffling
	order []card.Card
}

// New creates a full deck shuffled with rng
func New(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	d := &Deck{rng: rng}
	d.Reset()
	return d
}

// NewSeeded creates a full deck whose shuffles are reproducible for a seed
func NewSeeded(seed int64) *Deck {
	return New(rand.New(rand.NewSource(seed)))
}

// NewFixed creates a deck holding exactly the given cards with shuffling
// disabled. order[0] is the top card, i.e. the first one drawn.
func NewFixed(order []card.Card) *Deck {
	d := &Deck{order: make([]card.Card, len(order))}
	for i, c := range order {
		d.order[len(order)-1-i] = c
	}
	d.Reset()
	return d
}

// Build returns the 52 cards in suit-major, rank-minor order
func Build() []card.Card {
	cards := make([]card.Card, 0, Size)
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			cards = append(cards, card.New(rank, suit))
		}
	}
	return cards
}

// Reset discards the current contents, rebuilds the deck and shuffles it
func (d *Deck) Reset() {
	if d.order != nil {
		d.cards = append(d.cards[:0], d.order...)
		return
	}
	d.cards = append(d.cards[:0], Build()...)
	d.Shuffle()
}

// Shuffle permutes the deck in place. A fixed-order deck is left untouched.
func (d *Deck) Shuffle() {
	if d.order != nil || d.rng == nil {
		return
	}
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card. ok is false when the deck is empty.
func (d *Deck) Draw() (c card.Card, ok bool) {
	n := len(d.cards)
	if n == 0 {
		return card.Card{}, false
	}
	c = d.cards[n-1]
	d.cards = d.cards[:n-1]
	return c, true
}

// Len returns the number of cards left
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the deck contents, bottom first
func (d *Deck) Cards() []card.Card {
	return append([]card.Card(nil), d.cards...)
}

// Fixed reports whether the deck replays a fixed order
func (d *Deck) Fixed() bool {
	return d.order != nil
}
