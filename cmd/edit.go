package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <kind> <name>",
	Short: "Create a record with schema defaults",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(args[0])
		if err != nil {
			return err
		}
		rec, err := sess.Add(args[1])
		if err != nil {
			return err
		}
		if err := sess.Save(); err != nil {
			return err
		}
		fmt.Printf("added %q\n", rec.Name())
		return nil
	},
}

var dupCmd = &cobra.Command{
	Use:   "dup <kind> <name>",
	Short: "Duplicate a record under a fresh name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(args[0])
		if err != nil {
			return err
		}
		rec, err := sess.Duplicate(args[1])
		if err != nil {
			return err
		}
		if err := sess.Save(); err != nil {
			return err
		}
		fmt.Printf("duplicated as %q\n", rec.Name())
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <kind> <name>",
	Short: "Delete a record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(args[0])
		if err != nil {
			return err
		}
		if err := sess.Delete(args[1]); err != nil {
			return err
		}
		if err := sess.Save(); err != nil {
			return err
		}
		fmt.Printf("deleted %q\n", args[1])
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <kind> <name> <key=value>...",
	Short: "Update record fields",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(args[0])
		if err != nil {
			return err
		}
		updates := make(map[string]string, len(args)-2)
		for _, kv := range args[2:] {
			key, value, ok := strings.Cut(kv, "=")
			if !ok {
				return fmt.Errorf("expected key=value, got %q", kv)
			}
			if _, known := sess.Kind.Field(key); !known {
				return fmt.Errorf("kind %q has no field %q", sess.Kind.Name, key)
			}
			updates[key] = value
		}
		rec, err := sess.Update(args[1], updates)
		if err != nil {
			return err
		}
		if err := sess.Save(); err != nil {
			return err
		}
		fmt.Printf("saved %q\n", rec.Name())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(dupCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(setCmd)
}
