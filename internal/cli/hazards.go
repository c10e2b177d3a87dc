// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/hazard-keeper/internal/session"
	"github.com/MKhiriev/hazard-keeper/models"
)

func (a *app) hazardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hazards",
		Short: "List and edit hazard records",
	}

	list := guarded(&cobra.Command{
		Use:   "list",
		Short: "List hazards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overdueOnly, _ := cmd.Flags().GetBool("overdue")

			hazards := a.services.HazardService.List(cmd.Context())
			if overdueOnly {
				filtered := hazards[:0:0]
				for _, h := range hazards {
					if h.Overdue() {
						filtered = append(filtered, h)
					}
				}
				hazards = filtered
			}
			return printHazards(cmd.OutOrStdout(), hazards)
		},
	}, session.RouteHazards)
	list.Flags().Bool("overdue", false, "Only show overdue hazards")

	lock := guarded(&cobra.Command{
		Use:   "lock <id>",
		Short: "Toggle the manual lock of a hazard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			h, ok := findHazard(a.services.HazardService.ToggleLock(cmd.Context(), id), id)
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s No hazard with id %d; nothing changed\n", warnMark("!"), id)
				return nil
			}

			state := "unlocked"
			if h.ManualLock {
				state = "locked"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Hazard %d %s\n", okMark("✓"), id, state)
			return nil
		},
	}, session.RouteHazards)

	edit := guarded(&cobra.Command{
		Use:   "edit <id>",
		Short: "Change the responsible person or deadline of a hazard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var patch models.HazardPatch
			if cmd.Flags().Changed("person") {
				person, _ := cmd.Flags().GetString("person")
				patch.ResponsiblePerson = &person
			}
			if cmd.Flags().Changed("deadline") {
				deadline, _ := cmd.Flags().GetString("deadline")
				patch.Deadline = &deadline
			}
			if patch.Empty() {
				return fmt.Errorf("%w: pass --person or --deadline", ErrNothingToChange)
			}

			hazards, err := a.services.HazardService.Edit(cmd.Context(), id, patch)
			if err != nil {
				return fmt.Errorf("edit hazard %d: %w", id, err)
			}

			h, ok := findHazard(hazards, id)
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s No hazard with id %d; nothing changed\n", warnMark("!"), id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Hazard %d: responsible %s, deadline %s, overdue %d days\n",
				okMark("✓"), id, dash(h.ResponsiblePerson), dash(h.Deadline), h.OverdueDays)
			return nil
		},
	}, session.RouteHazards)
	edit.Flags().String("person", "", "New responsible person")
	edit.Flags().String("deadline", "", "New deadline (YYYY-MM-DD)")

	refresh := guarded(&cobra.Command{
		Use:   "refresh",
		Short: "Recompute overdue days of unlocked hazards for today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hazards := a.services.HazardService.RefreshOverdue(cmd.Context())

			overdue := 0
			for _, h := range hazards {
				if h.Overdue() {
					overdue++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Refreshed %d hazards, %d overdue\n", okMark("✓"), len(hazards), overdue)
			return nil
		},
	}, session.RouteHazards)

	cmd.AddCommand(list, lock, edit, refresh)
	return cmd
}

func findHazard(hazards []models.Hazard, id int64) (models.Hazard, bool) {
	for _, h := range hazards {
		if h.ID == id {
			return h, true
		}
	}
	return models.Hazard{}, false
}
