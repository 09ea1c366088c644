package deck

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/war/internal/card"
)

// OrderFile is a deck order stored as TOML:
//
//	[deck]
//	name = "all tens first"
//	cards = ["10C", "10D", ...]
//
// Cards are listed top first.
type OrderFile struct {
	Deck OrderSection `toml:"deck"`
}

type OrderSection struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Cards       []string `toml:"cards"`
}

// LoadOrderFile decodes a deck order file without checking its contents
func LoadOrderFile(path string) (*OrderFile, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("deck file not found: %s", path)
	}

	var f OrderFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("error parsing deck file: %w", err)
	}
	return &f, nil
}

// ParseCards converts the listed codes to cards
func (f *OrderFile) ParseCards() ([]card.Card, error) {
	cards := make([]card.Card, 0, len(f.Deck.Cards))
	for i, code := range f.Deck.Cards {
		c, err := card.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// WriteOrderFile encodes cards (top first) into a deck order file
func WriteOrderFile(path, name string, cards []card.Card) error {
	f := OrderFile{Deck: OrderSection{Name: name}}
	for _, c := range cards {
		f.Deck.Cards = append(f.Deck.Cards, c.String())
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating deck file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(f); err != nil {
		return fmt.Errorf("error encoding deck file: %w", err)
	}
	return nil
}
