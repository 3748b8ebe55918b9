package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fxfmt/internal/store"
)

var (
	historyLimit int
	historyDB    string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent formatting requests",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		path := historyDB
		if path == "" {
			path = cfg.History.Path
		}

		s, err := store.NewSQLite(path)
		if err != nil {
			return err
		}
		defer s.Close()

		entries, err := s.Recent(historyLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("no history")
			return nil
		}

		for _, e := range entries {
			fmt.Printf("#%d  %s  [%s]\n", e.ID, e.CreatedAt, e.Kind)
			fmt.Printf("  %s\n", e.Formula)
			if e.Kind == store.KindSimplify && e.Simplified != "" {
				fmt.Printf("  -> %s\n", e.Simplified)
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum entries to show")
	historyCmd.Flags().StringVar(&historyDB, "db", "", "history database path (defaults to config)")
}
