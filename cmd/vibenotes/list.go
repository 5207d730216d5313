package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vibecoding/vibenotes/internal/search"
)

var (
	listSearch string
	listWindow string
	listTags   []string
	listTodo   string
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, optionally filtered",
	Long: `List shows notes newest first. Filters combine: a note must match the
time window, the selected tags, the todo filter and the search text all
at once. Search matches are highlighted.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		window := search.TimeWindow(listWindow)
		if !window.Valid() {
			fatal("Error", fmt.Errorf("unknown time window %q (all, today, week, month)", listWindow))
		}
		todo := search.TodoFilter(listTodo)
		if !todo.Valid() {
			fatal("Error", fmt.Errorf("unknown todo filter %q (all, todos, active, completed)", listTodo))
		}

		a, err := newApp()
		if err != nil {
			fatal("Error opening note store", err)
		}
		defer a.close()

		notes := a.engine.Apply(a.store.Notes(), search.Query{
			Text:   listSearch,
			Window: window,
			Tags:   listTags,
			Todo:   todo,
		})

		if listJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(notes); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		if len(notes) == 0 {
			fmt.Println("No notes found.")
			return
		}

		theme := a.theme()
		for _, n := range notes {
			title := n.DisplayTitle()
			if listSearch != "" {
				title = search.Highlight(title, listSearch, "\x00", "\x01")
			}
			title = theme.Title.Render(title)
			title = decorateMatches(title, theme)

			fmt.Printf("%s %s  %s\n", theme.todoBadge(n), title, theme.Meta.Render(n.ID))
			meta := humanize.Time(n.CreatedAt)
			if n.IsTodo {
				meta += "  " + n.Priority.ShortLabel()
			}
			if len(n.Tags) > 0 {
				meta += "  " + theme.Tag.Render("#"+strings.Join(n.Tags, " #"))
			}
			fmt.Printf("    %s\n", theme.Meta.Render(meta))
		}
	},
}

// decorateMatches swaps the placeholder markers inserted before styling
// for the theme's match style. Styling after highlighting would break
// the byte offsets, so the markers go in first.
func decorateMatches(s string, theme Theme) string {
	for {
		start := strings.IndexByte(s, '\x00')
		end := strings.IndexByte(s, '\x01')
		if start < 0 || end < 0 || end < start {
			return s
		}
		s = s[:start] + theme.Match.Render(s[start+1:end]) + s[end+1:]
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listSearch, "search", "", "Case-insensitive search over title, content and tags")
	listCmd.Flags().StringVar(&listWindow, "window", "all", "Time window: all, today, week, month")
	listCmd.Flags().StringSliceVar(&listTags, "tag", nil, "Only notes carrying at least one of these tags (repeatable)")
	listCmd.Flags().StringVar(&listTodo, "todo", "all", "Todo filter: all, todos, active, completed")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
