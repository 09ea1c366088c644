package card

import (
	"fmt"
	"strings"
)

// Rank is a card rank, ordered low to high with Ace high
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank from lowest to highest
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankCodes = map[Rank]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7", Eight: "8",
	Nine: "9", Ten: "10", Jack: "J", Queen: "Q", King: "K", Ace: "A",
}

var rankNames = map[Rank]string{
	Two: "two", Three: "three", Four: "four", Five: "five", Six: "six", Seven: "seven",
	Eight: "eight", Nine: "nine", Ten: "ten", Jack: "jack", Queen: "queen", King: "king", Ace: "ace",
}

// String returns the short code of the rank (2-10, J, Q, K, A)
func (r Rank) String() string {
	if code, ok := rankCodes[r]; ok {
		return code
	}
	return "?"
}

// Name returns the spelled-out rank
func (r Rank) Name() string {
	return rankNames[r]
}

// Suit is a card suit. Suits never take part in comparisons.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists every suit in deck-building order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// String returns the one-letter suit code
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	}
	return "?"
}

// Name returns the spelled-out suit
func (s Suit) Name() string {
	switch s {
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	}
	return ""
}

// Symbol returns the unicode pip for the suit
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	}
	return "•"
}

// Red reports whether the suit is printed in red
func (s Suit) Red() bool {
	return s == Diamonds || s == Hearts
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// New builds a card from a rank and a suit
func New(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Compare orders two cards by rank only. It returns -1, 0 or +1.
func Compare(a, b Card) int {
	switch {
	case a.Rank < b.Rank:
		return -1
	case a.Rank > b.Rank:
		return 1
	}
	return 0
}

// Beats reports whether c outranks other
func (c Card) Beats(other Card) bool {
	return Compare(c, other) > 0
}

// Ties reports whether c and other have the same rank
func (c Card) Ties(other Card) bool {
	return Compare(c, other) == 0
}

// String returns the card code, e.g. "10H" or "AS"
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Pretty returns the card with its suit symbol, e.g. "10♥"
func (c Card) Pretty() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// Name returns the long name of the card, e.g. "ten of hearts"
func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", c.Rank.Name(), c.Suit.Name())
}

// Parse reads a card code such as "AS", "10h", "qd" or "ace_of_spades"
func Parse(code string) (Card, error) {
	s := strings.ToUpper(strings.TrimSpace(code))
	if s == "" {
		return Card{}, fmt.Errorf("empty card code")
	}

	if parts := strings.Split(strings.ToLower(s), "_of_"); len(parts) == 2 {
		return parseLong(parts[0], parts[1], code)
	}

	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card code: %q", code)
	}

	suitCode := s[len(s)-1:]
	rankCode := s[:len(s)-1]

	suit, ok := suitFromCode(suitCode)
	if !ok {
		return Card{}, fmt.Errorf("invalid suit in card code: %q", code)
	}
	for r, rc := range rankCodes {
		if rc == rankCode {
			return New(r, suit), nil
		}
	}
	if rankCode == "T" {
		return New(Ten, suit), nil
	}
	return Card{}, fmt.Errorf("invalid rank in card code: %q", code)
}

func parseLong(rankName, suitName, code string) (Card, error) {
	var rank Rank
	for r, n := range rankNames {
		if n == rankName {
			rank = r
		}
	}
	if rank == 0 {
		return Card{}, fmt.Errorf("invalid rank in card name: %q", code)
	}
	for _, s := range Suits {
		if s.Name() == suitName {
			return New(rank, s), nil
		}
	}
	return Card{}, fmt.Errorf("invalid suit in card name: %q", code)
}

func suitFromCode(code string) (Suit, bool) {
	for _, s := range Suits {
		if s.String() == code {
			return s, true
		}
	}
	return 0, false
}
