package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/CandleCat666/DB-dnd-suporter/internal/record"
)

var listFilter string

var listCmd = &cobra.Command{
	Use:   "list <kind>",
	Short: "List record names of a kind",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(args[0])
		if err != nil {
			return err
		}
		names := sess.Names(listFilter)
		for _, nm := range names {
			fmt.Println(nm)
		}
		fmt.Fprintf(os.Stderr, "%d record(s)\n", len(names))
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <kind> <name>",
	Short: "Show all fields of one record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(args[0])
		if err != nil {
			return err
		}
		rec, err := sess.Get(args[1])
		if err != nil {
			return err
		}
		printRecord(rec)
		return nil
	},
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Dump every kind as a table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st := dataStore()
		for _, kind := range kinds {
			set := st.Load(kind.File)
			fmt.Printf("== %s (%s) ==\n", kind.Name, kind.File)
			if set.Len() == 0 {
				fmt.Println("(no data)")
				continue
			}
			printTable(set.Records())
		}
		return nil
	},
}

func printRecord(rec record.Record) {
	for _, k := range rec.Keys() {
		fmt.Printf("%s: %s\n", k, rec.GetString(k))
	}
}

// printTable renders records with a header made of every key seen, in
// encounter order.
func printTable(records []record.Record) {
	var cols []string
	seen := make(map[string]struct{})
	for _, r := range records {
		for _, k := range r.Keys() {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			cols = append(cols, k)
		}
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for i, c := range cols {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, c)
	}
	fmt.Fprintln(w)
	for _, r := range records {
		for i, c := range cols {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, r.GetString(c))
		}
		fmt.Fprintln(w)
	}
	_ = w.Flush()
}

func init() {
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "Case-insensitive substring filter")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(browseCmd)
}
