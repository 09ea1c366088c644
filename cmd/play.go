package cmd

import (
	"fmt"
	"time"

	"github.com/arcanaland/war/internal/card"
	"github.com/arcanaland/war/internal/config"
	"github.com/arcanaland/war/internal/deck"
	"github.com/arcanaland/war/internal/game"
	"github.com/arcanaland/war/internal/logger"
	"github.com/arcanaland/war/internal/narrator"
	"github.com/arcanaland/war/internal/player"
	"github.com/arcanaland/war/internal/validator"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// The table is fixed: one human and one automated player
const (
	humanName     = "Victor"
	automatedName = "Florian"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one game of War",
	Long: `Play deals a deck between Victor and Florian and plays rounds until one hand
is empty, narrating every card.

The deck is shuffled with --seed (or the configured seed, or the clock).
Use --deck to replay a saved deck order instead; shuffling is then disabled.

Examples:
  war play
  war play --seed 42 --quiet
  war play --deck sorted`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("seed") {
			cfg.Seed, _ = cmd.Flags().GetInt64("seed")
		}
		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			cfg.Quiet = true
		}
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			cfg.NoColor = true
		}
		deckName, _ := cmd.Flags().GetString("deck")
		if deckName == "" {
			deckName = cfg.DefaultDeck
		}

		log, err := logger.New(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer log.Sync()

		d, err := buildDeck(deckName, cfg.Seed, log)
		if err != nil {
			return err
		}

		p1 := player.NewHuman(humanName)
		p2 := player.NewAutomated(automatedName)
		n := narrator.New(cmd.OutOrStdout(), p1.Name(), p2.Name(),
			narrator.Quiet(cfg.Quiet), narrator.NoColor(cfg.NoColor))

		g := game.New(p1, p2, d, game.WithObserver(n.Handle), game.WithLogger(log))
		n.Title()
		n.Summary(g.Play())
		return nil
	},
}

// buildDeck returns the saved deck order named deckName, or a shuffled deck
// when deckName is empty.
func buildDeck(deckName string, seed int64, log *zap.SugaredLogger) (*deck.Deck, error) {
	if deckName == "" {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		log.Infow("shuffling deck", "seed", seed)
		return deck.NewSeeded(seed), nil
	}

	deckPath, err := config.GetDeckPath(deckName)
	if err != nil {
		return nil, err
	}
	order, err := loadDeckOrder(deckPath)
	if err != nil {
		return nil, err
	}
	log.Infow("using fixed deck order", "path", deckPath)
	return deck.NewFixed(order), nil
}

// loadDeckOrder reads and validates a deck order file
func loadDeckOrder(deckPath string) ([]card.Card, error) {
	results, err := validator.NewValidator(deckPath).Validate()
	if err != nil {
		return nil, err
	}
	if !results.Valid() {
		return nil, fmt.Errorf("deck %s is not a full deck: %s", deckPath, results.Errors[0])
	}

	f, err := deck.LoadOrderFile(deckPath)
	if err != nil {
		return nil, err
	}
	return f.ParseCards()
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().Int64P("seed", "s", 0, "Seed for the shuffle (0 picks one from the clock)")
	playCmd.Flags().StringP("deck", "d", "", "Play a saved deck order from your deck library or a path to one")
	playCmd.Flags().BoolP("quiet", "q", false, "Only print the deal and the final result")
	playCmd.Flags().Bool("no-color", false, "Disable colored output")
}
