package game

import (
	"github.com/arcanaland/war/internal/card"
	"github.com/google/uuid"
)

// EventKind identifies a decision recorded in the game journal
type EventKind int

const (
	EventDealt    EventKind = iota // a player's hand after dealing
	EventPlay                      // a face-up card played
	EventRoundWon                  // a round won on a single comparison
	EventWar                       // equal ranks started a war
	EventDiscard                   // face-down cards put away during a war
	EventWarWon                    // a war decided by a face-up comparison
	EventWarTie                    // both players too short to fight a war
	EventForfeit                   // a player too short to fight lost their hand
	EventGameOver                  // final scores
)

func (k EventKind) String() string {
	switch k {
	case EventDealt:
		return "dealt"
	case EventPlay:
		return "play"
	case EventRoundWon:
		return "round_won"
	case EventWar:
		return "war"
	case EventDiscard:
		return "discard"
	case EventWarWon:
		return "war_won"
	case EventWarTie:
		return "war_tie"
	case EventForfeit:
		return "forfeit"
	case EventGameOver:
		return "game_over"
	}
	return "unknown"
}

// Event is one entry of the game journal.
//
// Player names the acting player: the one who played, discarded, won or
// forfeited. For EventGameOver it names the winner and is empty on a tie.
type Event struct {
	GameID uuid.UUID
	Kind   EventKind
	Round  int
	Depth  int // war nesting, 0 outside a war

	Player string
	Card   card.Card
	Cards  int // cards dealt, discarded or forfeited
	Points int // points awarded by this event

	Score1 int
	Score2 int
}
