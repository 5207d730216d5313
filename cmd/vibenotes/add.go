package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/vibecoding/vibenotes/internal/errors"
	"github.com/vibecoding/vibenotes/internal/models"
	"github.com/vibecoding/vibenotes/internal/store"
)

var (
	addTitle    string
	addTags     string
	addTodo     bool
	addPriority int
)

var addCmd = &cobra.Command{
	Use:   "add [content]",
	Short: "Add a new note",
	Long: `Add creates a note from the given content. Without --title the first
line of the content becomes the title. Tags are comma-separated and
normalized to lowercase.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fatal("Error opening note store", err)
		}
		defer a.close()

		draft := store.NoteDraft{
			Title:   addTitle,
			Content: strings.Join(args, " "),
			Tags:    addTags,
		}
		if cmd.Flags().Changed("todo") {
			draft.IsTodo = &addTodo
		}
		if cmd.Flags().Changed("priority") {
			p := models.Priority(addPriority)
			draft.Priority = &p
			t := true
			draft.IsTodo = &t
		}

		note, err := a.store.Add(draft)
		if err != nil && !apperrors.Is(err, apperrors.ErrStorage) {
			fatal("Error adding note", err)
		}
		if err != nil {
			fmt.Println(a.theme().Warning.Render("Warning: note kept in memory but could not be saved"))
		}
		fmt.Printf("Note added: %s (%s)\n", note.DisplayTitle(), note.ID)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addTitle, "title", "", "Note title (defaults to the first content line)")
	addCmd.Flags().StringVar(&addTags, "tags", "", "Comma-separated tags")
	addCmd.Flags().BoolVar(&addTodo, "todo", false, "Mark the note as an active todo")
	addCmd.Flags().IntVar(&addPriority, "priority", 0, "Eisenhower priority 0-3 (implies --todo)")
}
