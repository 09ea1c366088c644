package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arcanaland/war/internal/card"
	"github.com/arcanaland/war/internal/config"
	"github.com/arcanaland/war/internal/deck"
	"github.com/spf13/cobra"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage saved deck orders in your deck library",
	Long: `Commands for managing saved deck orders. A deck order lists all 52 cards
top first and replays the same game every time it is played.`,
}

// deckListCmd represents the deck list command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List saved deck orders in your deck library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDeckLibraryPath()

		// Check if deck library exists
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Fprintf(out, "Deck library at %s does not exist.\n", libraryPath)
			fmt.Fprintln(out, "Run 'war deck init' to create it.")
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading deck library: %w", err)
		}

		found := 0
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
				continue
			}

			f, err := deck.LoadOrderFile(filepath.Join(libraryPath, entry.Name()))
			if err != nil {
				// Not a deck order, skip
				continue
			}
			found++

			name := strings.TrimSuffix(entry.Name(), ".toml")
			if name == cfg.DefaultDeck || entry.Name() == cfg.DefaultDeck {
				fmt.Fprintf(out, "* %s (%s) [DEFAULT]\n", name, f.Deck.Name)
			} else {
				fmt.Fprintf(out, "  %s (%s)\n", name, f.Deck.Name)
			}
		}

		if found == 0 {
			fmt.Fprintln(out, "No deck orders found in your deck library.")
			fmt.Fprintln(out, "Save one with 'war deck save <name>'.")
		}
		return nil
	},
}

// deckSaveCmd writes a shuffled deck order to the library
var deckSaveCmd = &cobra.Command{
	Use:   "save [deck_name]",
	Short: "Shuffle a deck and save its order",
	Long: `Save shuffles a fresh deck (with --seed when given) and writes its order to
your deck library so the same game can be replayed with 'war play --deck'.
Use --sorted to save the unshuffled suit-by-suit order instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckName := args[0]
		libraryPath := config.GetDeckLibraryPath()
		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating deck library: %w", err)
		}

		seed, _ := cmd.Flags().GetInt64("seed")
		sorted, _ := cmd.Flags().GetBool("sorted")

		order := deck.Build()
		description := "sorted"
		if !sorted {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			order = topFirst(deck.NewSeeded(seed))
			description = fmt.Sprintf("seed %d", seed)
		}

		deckPath := filepath.Join(libraryPath, deckName+".toml")
		if err := deck.WriteOrderFile(deckPath, description, order); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deck order saved to: %s\n", deckPath)
		return nil
	},
}

// deckShowCmd prints a deck order
var deckShowCmd = &cobra.Command{
	Use:   "show [deck_name]",
	Short: "Print the cards of a saved deck order, top first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckPath, err := config.GetDeckPath(args[0])
		if err != nil {
			return err
		}

		order, err := loadDeckOrder(deckPath)
		if err != nil {
			return err
		}

		codes := make([]string, len(order))
		for i, c := range order {
			codes[i] = c.Pretty()
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(codes, " "))
		return nil
	},
}

// deckSetDefaultCmd represents the deck set-default command
var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [deck_name]",
	Short: "Set the deck order played by default (\"\" to shuffle again)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckName := args[0]

		if deckName != "" {
			// Try to load the deck to make sure it's valid
			deckPath, err := config.GetDeckPath(deckName)
			if err != nil {
				return err
			}
			if _, err := loadDeckOrder(deckPath); err != nil {
				return fmt.Errorf("not a valid deck order: %w", err)
			}
		}

		if err := config.SetDefaultDeck(deckName); err != nil {
			return fmt.Errorf("error setting default deck: %w", err)
		}

		if deckName == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "Default deck cleared, games will be shuffled.")
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Default deck set to: %s\n", deckName)
		}
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the deck library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDeckLibraryPath()

		// Create the deck library directory if it doesn't exist
		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating deck library: %w", err)
		}

		fmt.Fprintln(out, "Deck library initialized at:", libraryPath)

		// Initialize config
		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// topFirst returns the deck contents in draw order
func topFirst(d *deck.Deck) []card.Card {
	cards := d.Cards()
	for i, j := 0, len(cards)-1; i < j; i, j = i+1, j-1 {
		cards[i], cards[j] = cards[j], cards[i]
	}
	return cards
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckSaveCmd)
	deckCmd.AddCommand(deckShowCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)
	deckCmd.AddCommand(deckInitCmd)

	deckSaveCmd.Flags().Int64P("seed", "s", 0, "Seed for the shuffle (0 picks one from the clock)")
	deckSaveCmd.Flags().Bool("sorted", false, "Save the unshuffled order")
}
