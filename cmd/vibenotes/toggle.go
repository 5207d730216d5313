package main

import (
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/vibecoding/vibenotes/internal/errors"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle [id]",
	Short: "Cycle a note's todo state",
	Long: `Toggle advances the note one step through its todo cycle:
plain note -> active todo -> completed todo -> plain note.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fatal("Error opening note store", err)
		}
		defer a.close()

		note, err := a.store.CycleTodoState(args[0])
		if err != nil && !apperrors.Is(err, apperrors.ErrStorage) {
			fatal("Error toggling note", err)
		}
		if err != nil {
			fmt.Println(a.theme().Warning.Render("Warning: change kept in memory but could not be saved"))
		}
		fmt.Printf("%s is now a %s\n", note.DisplayTitle(), note.TodoState())
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}
