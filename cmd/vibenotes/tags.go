package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List every tag in use",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fatal("Error opening note store", err)
		}
		defer a.close()

		tags := a.store.AllTags()
		if len(tags) == 0 {
			fmt.Println("No tags yet.")
			return
		}
		sort.Strings(tags)
		theme := a.theme()
		for _, t := range tags {
			fmt.Println(theme.Tag.Render("#" + t))
		}
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}
