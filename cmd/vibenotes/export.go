package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/vibecoding/vibenotes/internal/models"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all notes to a JSON file",
	Long: `Export writes every note into a versioned JSON envelope. Without
--out the file is named vibe-coding-notes-YYYY-MM-DD.json in the
current directory.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fatal("Error opening note store", err)
		}
		defer a.close()

		env := a.store.ExportAll()
		data, err := json.MarshalIndent(env, "", "  ")
		if err != nil {
			fatal("Error encoding export", err)
		}

		out := exportOut
		if out == "" {
			out = models.ExportFileName(time.Now())
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			fatal("Error writing export file", err)
		}

		abs, _ := filepath.Abs(out)
		fmt.Printf("Exported %d notes to %s\n", len(env.Notes), abs)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file path")
}
