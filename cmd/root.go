package cmd

import (
	"github.com/spf13/cobra"
	"github.com/studyloop/studyloop/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studyloop",
	Short: "Terminal study planner with a guided tour",
	Long:  "Studyloop — a terminal study planner that walks new users through its features with Loopy, the onboarding guide.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYLOOP_DB env var)")
	rootCmd.PersistentFlags().String("log", "", "Path to log file (overrides STUDYLOOP_LOG env var)")
	rootCmd.PersistentFlags().String("user", "", "Profile to run as")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().String("packs", "", "Directory of extra tour template packs")
	rootCmd.Flags().String("template", "", "Tour template to run (default: auto-assigned)")
	rootCmd.Flags().Bool("no-tour", false, "Start without the onboarding tour")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STUDYLOOP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
