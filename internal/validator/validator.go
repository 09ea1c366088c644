package validator

import (
	"fmt"

	"github.com/arcanaland/war/internal/card"
	"github.com/arcanaland/war/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	DeckPath string
	Results  ValidationResults
}

func NewValidator(deckPath string) *Validator {
	return &Validator{
		DeckPath: deckPath,
		Results:  ValidationResults{},
	}
}

// Validate checks that the deck order file lists every card of a standard
// deck exactly once. Only an unreadable file is returned as an error.
func (v *Validator) Validate() (ValidationResults, error) {
	f, err := deck.LoadOrderFile(v.DeckPath)
	if err != nil {
		return v.Results, err
	}

	if f.Deck.Name == "" {
		v.Results.Warnings = append(v.Results.Warnings, "deck.name is not set")
	}

	var cards []card.Card
	for i, code := range f.Deck.Cards {
		c, err := card.Parse(code)
		if err != nil {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("card %d: %v", i+1, err))
			continue
		}
		cards = append(cards, c)
	}

	v.validateCards(cards, len(f.Deck.Cards))
	return v.Results, nil
}

// ValidateCards runs the composition checks on an in-memory deck
func ValidateCards(cards []card.Card) ValidationResults {
	v := &Validator{}
	v.validateCards(cards, len(cards))
	return v.Results
}

func (v *Validator) validateCards(cards []card.Card, listed int) {
	if listed != deck.Size {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("deck lists %d cards, expected %d", listed, deck.Size))
	}

	seen := make(map[card.Card]int, len(cards))
	for _, c := range cards {
		seen[c]++
	}

	for _, c := range deck.Build() {
		switch n := seen[c]; {
		case n == 0:
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("missing card: %s", c))
		case n > 1:
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("duplicate card: %s (%d copies)", c, n))
		}
	}
}
