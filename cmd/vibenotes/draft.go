package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vibecoding/vibenotes/internal/models"
)

var (
	draftTitle string
	draftTags  string
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Manage the saved note draft",
	Long: `Draft keeps one in-progress note around between sessions. Save it,
show it, promote it to a real note, or throw it away.`,
}

var draftSaveCmd = &cobra.Command{
	Use:   "save [content]",
	Short: "Save a draft",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fatal("Error opening note store", err)
		}
		defer a.close()

		err = a.store.SaveDraft(models.Draft{
			Title:   draftTitle,
			Content: strings.Join(args, " "),
			Tags:    draftTags,
		})
		if err != nil {
			fatal("Error saving draft", err)
		}
		fmt.Println("Draft saved.")
	},
}

var draftShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved draft",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fatal("Error opening note store", err)
		}
		defer a.close()

		d, ok := a.store.LoadDraft()
		if !ok {
			fmt.Println("No draft saved.")
			return
		}
		theme := a.theme()
		if d.Title != "" {
			fmt.Println(theme.Title.Render(d.Title))
		}
		fmt.Println(d.Content)
		if d.Tags != "" {
			fmt.Println(theme.Tag.Render(d.Tags))
		}
		fmt.Println(theme.Meta.Render("saved " + humanize.Time(d.Timestamp)))
	},
}

var draftClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard the saved draft",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fatal("Error opening note store", err)
		}
		defer a.close()

		if err := a.store.ClearDraft(); err != nil {
			fatal("Error clearing draft", err)
		}
		fmt.Println("Draft cleared.")
	},
}

func init() {
	rootCmd.AddCommand(draftCmd)
	draftCmd.AddCommand(draftSaveCmd, draftShowCmd, draftClearCmd)
	draftSaveCmd.Flags().StringVar(&draftTitle, "title", "", "Draft title")
	draftSaveCmd.Flags().StringVar(&draftTags, "tags", "", "Comma-separated tags")
}
