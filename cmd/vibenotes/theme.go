package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark]",
	Short: "Show or set the color theme",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fatal("Error opening note store", err)
		}
		defer a.close()

		if len(args) == 0 {
			fmt.Println(a.theme().Name)
			return
		}
		if err := a.store.SetTheme(args[0]); err != nil {
			fatal("Error setting theme", err)
		}
		fmt.Printf("Theme set to %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
