package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/studyloop/studyloop/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show onboarding analytics",
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

		events, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("event repo: %w", err)
		}

		byAction, err := events.ActionCounts(cmd.Context())
		if err != nil {
			return err
		}
		byStep, err := events.StepCounts(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println("Events by action:")
		printCounts(byAction)
		fmt.Println()
		fmt.Println("Events by step:")
		printCounts(byStep)
		return nil
	},
}

func printCounts(counts map[string]int) {
	if len(counts) == 0 {
		fmt.Println("  (none)")
		return
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-24s %d\n", k, counts[k])
	}
}
