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
	editTitle    string
	editTags     string
	editTodo     bool
	editDone     bool
	editPriority int
)

var editCmd = &cobra.Command{
	Use:   "edit [id] [content]",
	Short: "Edit an existing note",
	Long: `Edit replaces a note's content, and with it the title and tags. Todo
state and priority only change when the matching flags are given. The
note keeps its id and creation time.`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fatal("Error opening note store", err)
		}
		defer a.close()

		draft := store.NoteDraft{
			Title:   editTitle,
			Content: strings.Join(args[1:], " "),
			Tags:    editTags,
		}
		if cmd.Flags().Changed("todo") {
			draft.IsTodo = &editTodo
		}
		if cmd.Flags().Changed("done") {
			draft.IsCompleted = &editDone
		}
		if cmd.Flags().Changed("priority") {
			p := models.Priority(editPriority)
			draft.Priority = &p
		}

		note, err := a.store.Update(args[0], draft)
		if err != nil && !apperrors.Is(err, apperrors.ErrStorage) {
			fatal("Error updating note", err)
		}
		if err != nil {
			fmt.Println(a.theme().Warning.Render("Warning: change kept in memory but could not be saved"))
		}
		fmt.Printf("Note updated: %s\n", note.DisplayTitle())
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title (defaults to the first content line)")
	editCmd.Flags().StringVar(&editTags, "tags", "", "Comma-separated tags (replaces existing tags)")
	editCmd.Flags().BoolVar(&editTodo, "todo", false, "Set or clear the todo flag")
	editCmd.Flags().BoolVar(&editDone, "done", false, "Set or clear the completed flag")
	editCmd.Flags().IntVar(&editPriority, "priority", 0, "Eisenhower priority 0-3")
}
