package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CandleCat666/DB-dnd-suporter/internal/merge"
)

var (
	importNameColumn string
	importOnConflict string
)

var importCmd = &cobra.Command{
	Use:   "import <kind> <file.csv>",
	Short: "Merge CSV rows into a kind's data file",
	Long: `Merge CSV rows into a kind's data file.

The CSV encoding and delimiter are detected automatically. A second row
holding header descriptions is skipped. Rows collide on the name column;
--on-conflict picks whether an existing record is overwritten, the row
skipped, or the row kept under "name (2)", "name (3)", and so on.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		policy, err := merge.ParsePolicy(importOnConflict)
		if err != nil {
			return err
		}
		sess, err := openSession(args[0])
		if err != nil {
			return err
		}
		counts, err := sess.ImportCSV(args[1], importNameColumn, policy)
		if err != nil {
			return err
		}
		if err := sess.Save(); err != nil {
			return err
		}
		fmt.Printf("import done: %s\n", counts)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <kind> <path>",
	Short: "Write a kind's records to another JSON file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(args[0])
		if err != nil {
			return err
		}
		if err := sess.SaveAs(args[1]); err != nil {
			return err
		}
		fmt.Printf("wrote %d record(s) to %s\n", sess.Len(), args[1])
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importNameColumn, "name-column", "", "CSV column holding the record name (default: \"name\")")
	importCmd.Flags().StringVar(&importOnConflict, "on-conflict", string(merge.Overwrite), "overwrite, skip or rename")
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
}
