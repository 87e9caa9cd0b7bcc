package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/CandleCat666/DB-dnd-suporter/internal/store"
)

var (
	charPlayer     string
	charRace       string
	charClass      string
	charBackground string
	charForce      bool
)

var charCmd = &cobra.Command{
	Use:   "char",
	Short: "Manage saved character cards",
}

var charNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Save a character card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := store.NewCharacterStore(cfg.CharsDir)
		c := store.Character{
			Name:       args[0],
			Player:     charPlayer,
			Race:       charRace,
			Class:      charClass,
			Background: charBackground,
		}
		path, err := st.Save(c, charForce)
		if errors.Is(err, store.ErrExists) {
			return fmt.Errorf("%s already exists; pass --force to overwrite", path)
		}
		if err != nil {
			return err
		}
		fmt.Printf("saved %s\n", path)
		return nil
	},
}

var charShowCmd = &cobra.Command{
	Use:   "show <name|file>",
	Short: "Print a saved character card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := store.NewCharacterStore(cfg.CharsDir)
		path := args[0]
		if _, err := os.Stat(path); err != nil {
			path = filepath.Join(cfg.CharsDir, store.SafeFileName(args[0])+".json")
		}
		c, err := st.Load(path)
		if err != nil {
			return err
		}
		fmt.Printf("name: %s\n", c.Name)
		fmt.Printf("player: %s\n", c.Player)
		fmt.Printf("race: %s\n", c.Race)
		fmt.Printf("class: %s\n", c.Class)
		fmt.Printf("background: %s\n", c.Background)
		return nil
	},
}

var charListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved characters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st := store.NewCharacterStore(cfg.CharsDir)
		names, err := st.List()
		if err != nil {
			return err
		}
		for _, nm := range names {
			fmt.Println(nm)
		}
		return nil
	},
}

func init() {
	charNewCmd.Flags().StringVar(&charPlayer, "player", "", "Player name")
	charNewCmd.Flags().StringVar(&charRace, "race", "", "Race name")
	charNewCmd.Flags().StringVar(&charClass, "class", "", "Class name")
	charNewCmd.Flags().StringVar(&charBackground, "background", "", "Background name")
	charNewCmd.Flags().BoolVar(&charForce, "force", false, "Overwrite an existing character file")
	charCmd.AddCommand(charNewCmd)
	charCmd.AddCommand(charShowCmd)
	charCmd.AddCommand(charListCmd)
	rootCmd.AddCommand(charCmd)
}
