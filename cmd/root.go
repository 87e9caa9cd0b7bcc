package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CandleCat666/DB-dnd-suporter/api"
	"github.com/CandleCat666/DB-dnd-suporter/internal/config"
	"github.com/CandleCat666/DB-dnd-suporter/internal/editor"
	"github.com/CandleCat666/DB-dnd-suporter/internal/logging"
	"github.com/CandleCat666/DB-dnd-suporter/internal/store"
)

var (
	flagDataDir  string
	flagCharsDir string
	flagSchema   string
	flagLogLevel string

	cfg   config.Config
	kinds []api.Kind
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Directory holding the entity JSON files")
	rootCmd.PersistentFlags().StringVar(&flagCharsDir, "chars-dir", "", "Directory holding saved characters")
	rootCmd.PersistentFlags().StringVarP(&flagSchema, "schema", "s", "", "Path to an HCL schema file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

var rootCmd = &cobra.Command{
	Use:           "rpgdb",
	Short:         "Edit and look up tabletop-RPG reference data and characters",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		if flagDataDir != "" {
			c.DataDir = flagDataDir
		}
		if flagCharsDir != "" {
			c.CharsDir = flagCharsDir
		}
		if flagSchema != "" {
			c.SchemaFile = flagSchema
		}
		if flagLogLevel != "" {
			c.LogLevel = flagLogLevel
		}
		logging.Setup(c.LogLevel)
		cfg = c
		kinds, err = c.Kinds()
		return err
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func kindByName(name string) (api.Kind, error) {
	for _, k := range kinds {
		if k.Name == name {
			return k, nil
		}
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.Name
	}
	return api.Kind{}, fmt.Errorf("unknown kind %q (have %v)", name, names)
}

func dataStore() *store.Store {
	return store.New(cfg.DataDir)
}

func openSession(kindName string) (*editor.Session, error) {
	kind, err := kindByName(kindName)
	if err != nil {
		return nil, err
	}
	return editor.Open(kind, dataStore()), nil
}
