package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/studyloop/studyloop/internal/app"
	"github.com/studyloop/studyloop/internal/store"
	"github.com/studyloop/studyloop/internal/templates"
	"github.com/studyloop/studyloop/internal/tour"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset onboarding progress to the first step",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		userID, _ := cmd.Flags().GetString("user")
		if userID == "" {
			userID = app.DefaultUserID
		}

		gen := templates.NewManager(nil).Generate(userID, "", nil)
		if gen == nil {
			return fmt.Errorf("no tour template resolved")
		}

		mgr := tour.NewManager(gen.Steps, gen.Config, tour.Deps{
			Progress: st.ProgressRepo(),
		})
		if _, err := mgr.Restart(cmd.Context(), userID); err != nil {
			return err
		}

		fmt.Printf("Tour progress for %q reset.\n", userID)
		return nil
	},
}
