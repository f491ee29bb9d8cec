package main

import (
	"fmt"
	"strings"

	"github.com/dshills/qcalc/internal/profile"
	"github.com/spf13/cobra"
)

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List built-in difficulty profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfiles()
		},
	}
}

func runProfiles() error {
	names, err := profile.List()
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}
	for _, name := range names {
		p, err := profile.LoadBuiltin(name)
		if err != nil {
			return fmt.Errorf("failed to load profile %q: %w", name, err)
		}
		fmt.Printf("%-12s %s\n", name, strings.TrimSpace(p.Description))
	}
	return nil
}
