package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/studyloop/studyloop/internal/app"
)

// runApp collects the flags and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	logPath, _ := cmd.Flags().GetString("log")
	packsDir, _ := cmd.Flags().GetString("packs")
	userID, _ := cmd.Flags().GetString("user")
	templateID, _ := cmd.Flags().GetString("template")
	verbose, _ := cmd.Flags().GetBool("verbose")
	noTour, _ := cmd.Flags().GetBool("no-tour")

	return app.Run(app.Options{
		DBPath:     dbPath,
		LogPath:    logPath,
		PacksDir:   packsDir,
		UserID:     userID,
		TemplateID: templateID,
		Verbose:    verbose,
		NoTour:     noTour,
	})
}
