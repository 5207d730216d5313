package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fatal("Error opening note store", err)
		}
		defer a.close()

		removed, err := a.store.Delete(args[0])
		if err != nil {
			fmt.Println(a.theme().Warning.Render("Warning: deletion kept in memory but could not be saved"))
		}
		if !removed {
			fmt.Printf("No note with id %s\n", args[0])
			return
		}
		fmt.Printf("Note deleted: %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
