package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	apperrors "github.com/vibecoding/vibenotes/internal/errors"
	"github.com/vibecoding/vibenotes/internal/models"
)

var priorityCmd = &cobra.Command{
	Use:   "priority [id] [0-3]",
	Short: "Set a note's Eisenhower priority",
	Long: `Priority assigns one of the four Eisenhower quadrants:
  0  urgent & important
  1  not urgent & important
  2  urgent & not important
  3  not urgent & not important`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		p, err := strconv.Atoi(args[1])
		if err != nil {
			fatal("Error", fmt.Errorf("priority must be a number 0-3: %w", err))
		}

		a, err := newApp()
		if err != nil {
			fatal("Error opening note store", err)
		}
		defer a.close()

		note, err := a.store.SetPriority(args[0], models.Priority(p))
		if err != nil && !apperrors.Is(err, apperrors.ErrStorage) {
			fatal("Error setting priority", err)
		}
		if err != nil {
			fmt.Println(a.theme().Warning.Render("Warning: change kept in memory but could not be saved"))
		}
		fmt.Printf("%s: %s\n", note.DisplayTitle(), note.Priority.Label())
	},
}

func init() {
	rootCmd.AddCommand(priorityCmd)
}
