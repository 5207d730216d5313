package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apperrors "github.com/vibecoding/vibenotes/internal/errors"
	"github.com/vibecoding/vibenotes/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Merge notes from an export file",
	Long: `Import merges a previously exported JSON file into the collection.
Notes whose id already exists are skipped; malformed records are
dropped silently. Nothing is ever overwritten.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fatal("Error reading import file", err)
		}
		env, err := store.ParseEnvelope(data)
		if err != nil {
			fatal("Error parsing import file", err)
		}

		a, err := newApp()
		if err != nil {
			fatal("Error opening note store", err)
		}
		defer a.close()

		result, err := a.store.ImportMerge(env)
		if err != nil && !apperrors.Is(err, apperrors.ErrStorage) {
			fatal("Error importing notes", err)
		}
		if err != nil {
			fmt.Println(a.theme().Warning.Render("Warning: imported notes kept in memory but could not be saved"))
		}
		fmt.Printf("Imported %d notes, skipped %d duplicates (%d records)\n",
			result.Imported, result.Skipped, result.Total)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
