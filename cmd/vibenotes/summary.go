package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var summaryJSON bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show stats, key points and the tag cloud",
	Long: `Summary derives a snapshot over the whole collection: note and todo
counters, the highest-signal sentences from the last month of notes,
and tag usage weighted by frequency.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fatal("Error opening note store", err)
		}
		defer a.close()

		snap := a.insight.Snapshot()

		if summaryJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(snap); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		theme := a.theme()
		fmt.Println(theme.Title.Render("Overview"))
		fmt.Printf("  %d notes, %d active todos, %d completed, %d tags\n",
			snap.Stats.TotalNotes, snap.Stats.ActiveTodos,
			snap.Stats.CompletedTodos, snap.Stats.UniqueTags)

		if len(snap.KeyPoints) > 0 {
			fmt.Println()
			fmt.Println(theme.Title.Render("Key points"))
			for _, kp := range snap.KeyPoints {
				fmt.Printf("  • %s\n", kp.Text)
				fmt.Printf("    %s\n", theme.Meta.Render(kp.NoteTitle+", "+kp.RelativeDate))
			}
		}

		if len(snap.TagCloud) > 0 {
			fmt.Println()
			fmt.Println(theme.Title.Render("Tags"))
			var parts []string
			for _, tw := range snap.TagCloud {
				parts = append(parts, fmt.Sprintf("%s(%d)", theme.Tag.Render("#"+tw.Tag), tw.Count))
			}
			fmt.Printf("  %s\n", strings.Join(parts, " "))
		}
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "Output in JSON format")
}
