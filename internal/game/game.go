package game

import (
	"github.com/arcanaland/war/internal/card"
	"github.com/arcanaland/war/internal/deck"
	"github.com/arcanaland/war/internal/logger"
	"github.com/arcanaland/war/internal/player"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// RoundPoints is awarded for winning a round or a war
	RoundPoints = 1
	// ForfeitBonus is awarded when the opponent cannot afford a war
	ForfeitBonus = 100
	// WarDiscards is the number of face-down cards each player puts away in a war
	WarDiscards = 3
	// WarMinHand is the hand size needed to fight a war
	WarMinHand = WarDiscards + 1
)

// State is the phase the game is in
type State int

const (
	NotStarted State = iota
	Dealing
	RoundInProgress
	WarInProgress
	GameOver
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Dealing:
		return "dealing"
	case RoundInProgress:
		return "round"
	case WarInProgress:
		return "war"
	case GameOver:
		return "game_over"
	}
	return "unknown"
}

// Game runs War between two players with one deck
type Game struct {
	ID uuid.UUID

	player1 *player.Player
	player2 *player.Player
	deck    *deck.Deck

	state  State
	round  int
	wars   int
	events []Event

	observer func(Event)
	log      *zap.SugaredLogger
}

// Option configures a Game
type Option func(*Game)

// WithObserver registers a callback invoked for every journal event
func WithObserver(fn func(Event)) Option {
	return func(g *Game) { g.observer = fn }
}

// WithLogger sets the logger used for lifecycle messages
func WithLogger(log *zap.SugaredLogger) Option {
	return func(g *Game) {
		if log != nil {
			g.log = log
		}
	}
}

// WithID fixes the game id instead of generating one
func WithID(id uuid.UUID) Option {
	return func(g *Game) { g.ID = id }
}

// New creates a game between p1 and p2 using d. If d is nil a freshly
// shuffled deck is created.
func New(p1, p2 *player.Player, d *deck.Deck, opts ...Option) *Game {
	if d == nil {
		d = deck.New(nil)
	}
	g := &Game{
		ID:      uuid.New(),
		player1: p1,
		player2: p2,
		deck:    d,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.With("game", g.ID.String())
	return g
}

func (g *Game) Player1() *player.Player { return g.player1 }
func (g *Game) Player2() *player.Player { return g.player2 }
func (g *Game) Deck() *deck.Deck        { return g.deck }
func (g *Game) State() State            { return g.state }
func (g *Game) Round() int              { return g.round }

// Events returns a copy of the journal
func (g *Game) Events() []Event {
	return append([]Event(nil), g.events...)
}

// Over reports whether either hand is empty
func (g *Game) Over() bool {
	return g.player1.HandSize() == 0 || g.player2.HandSize() == 0
}

// Deal shuffles the deck and hands out cards alternately, one to each player,
// until the deck cannot yield a pair. A card left without a partner is discarded.
func (g *Game) Deal() {
	g.state = Dealing
	g.deck.Shuffle()

	for {
		c1, ok := g.deck.Draw()
		if !ok {
			break
		}
		c2, ok := g.deck.Draw()
		if !ok {
			g.log.Debugw("odd card left undealt", "card", c1.String())
			break
		}
		g.player1.ReceiveCard(c1)
		g.player2.ReceiveCard(c2)
	}

	for _, p := range []*player.Player{g.player1, g.player2} {
		g.record(Event{Kind: EventDealt, Player: p.Name(), Cards: p.HandSize()})
	}
	g.log.Infow("cards dealt",
		g.player1.Name(), g.player1.HandSize(),
		g.player2.Name(), g.player2.HandSize())
}

// PlayRound has each player play their top card. The higher rank scores a
// point and equal ranks go to war. If either hand is empty nothing happens.
func (g *Game) PlayRound() {
	if g.Over() {
		return
	}
	g.round++
	g.state = RoundInProgress

	c1, _ := g.player1.PlayCard()
	c2, _ := g.player2.PlayCard()
	g.record(Event{Kind: EventPlay, Player: g.player1.Name(), Card: c1})
	g.record(Event{Kind: EventPlay, Player: g.player2.Name(), Card: c2})

	switch card.Compare(c1, c2) {
	case 1:
		g.award(EventRoundWon, g.player1, RoundPoints, 0)
	case -1:
		g.award(EventRoundWon, g.player2, RoundPoints, 0)
	default:
		g.resolveWar(c1, c2, 1)
		g.state = RoundInProgress
	}
}

// resolveWar settles a tie between c1 and c2. Each player puts WarDiscards
// cards face down and plays one more; another tie recurses.
func (g *Game) resolveWar(c1, c2 card.Card, depth int) {
	g.state = WarInProgress
	g.wars++
	g.record(Event{Kind: EventWar, Depth: depth, Card: c1})
	g.log.Debugw("war", "round", g.round, "depth", depth, "tied", c1.Rank.String())

	short1 := g.player1.HandSize() < WarMinHand
	short2 := g.player2.HandSize() < WarMinHand
	switch {
	case short1 && short2:
		g.record(Event{Kind: EventWarTie, Depth: depth})
		return
	case short1:
		g.forfeit(g.player1, g.player2, depth)
		return
	case short2:
		g.forfeit(g.player2, g.player1, depth)
		return
	}

	// Hands are at least WarMinHand here, so every discard succeeds. An
	// empty hand would simply discard nothing.
	for _, p := range []*player.Player{g.player1, g.player2} {
		discarded := 0
		for i := 0; i < WarDiscards; i++ {
			if _, ok := p.PlayCard(); ok {
				discarded++
			}
		}
		g.record(Event{Kind: EventDiscard, Depth: depth, Player: p.Name(), Cards: discarded})
	}

	w1, ok1 := g.player1.PlayCard()
	w2, ok2 := g.player2.PlayCard()
	if !ok1 || !ok2 {
		return
	}
	g.record(Event{Kind: EventPlay, Depth: depth, Player: g.player1.Name(), Card: w1})
	g.record(Event{Kind: EventPlay, Depth: depth, Player: g.player2.Name(), Card: w2})

	switch card.Compare(w1, w2) {
	case 1:
		g.award(EventWarWon, g.player1, RoundPoints, depth)
	case -1:
		g.award(EventWarWon, g.player2, RoundPoints, depth)
	default:
		g.resolveWar(w1, w2, depth+1)
	}
}

func (g *Game) forfeit(loser, winner *player.Player, depth int) {
	lost := loser.Forfeit()
	winner.Score += ForfeitBonus
	g.record(Event{Kind: EventForfeit, Depth: depth, Player: loser.Name(), Cards: lost, Points: ForfeitBonus})
	g.log.Infow("forfeit", "loser", loser.Name(), "cards", lost, "winner", winner.Name())
}

func (g *Game) award(kind EventKind, p *player.Player, points, depth int) {
	p.Score += points
	g.record(Event{Kind: kind, Depth: depth, Player: p.Name(), Points: points})
}

// Play deals, plays rounds until a hand runs out and returns the result
func (g *Game) Play() Result {
	g.log.Infow("game started", "player1", g.player1.Name(), "player2", g.player2.Name())
	g.Deal()
	for !g.Over() {
		g.PlayRound()
	}
	return g.Finish()
}

// Finish ends the game and reports the final scores
func (g *Game) Finish() Result {
	g.state = GameOver
	res := Result{
		GameID:  g.ID,
		Player1: g.player1.Name(),
		Player2: g.player2.Name(),
		Score1:  g.player1.Score,
		Score2:  g.player2.Score,
		Rounds:  g.round,
		Wars:    g.wars,
	}
	for _, e := range g.events {
		if e.Kind == EventForfeit {
			res.Forfeits++
		}
	}
	switch {
	case res.Score1 > res.Score2:
		res.Winner = res.Player1
	case res.Score2 > res.Score1:
		res.Winner = res.Player2
	}

	g.record(Event{Kind: EventGameOver, Player: res.Winner})
	g.log.Infow("game over", "winner", res.Winner, "rounds", res.Rounds, "wars", res.Wars,
		"score1", res.Score1, "score2", res.Score2)
	return res
}

func (g *Game) record(e Event) {
	e.GameID = g.ID
	if e.Round == 0 {
		e.Round = g.round
	}
	e.Score1 = g.player1.Score
	e.Score2 = g.player2.Score
	g.events = append(g.events, e)
	if g.observer != nil {
		g.observer(e)
	}
}

// Result summarises a finished game. Winner is empty on a tie.
type Result struct {
	GameID   uuid.UUID
	Player1  string
	Player2  string
	Score1   int
	Score2   int
	Winner   string
	Rounds   int
	Wars     int
	Forfeits int
}

// Tie reports whether the scores are level
func (r Result) Tie() bool {
	return r.Winner == ""
}
