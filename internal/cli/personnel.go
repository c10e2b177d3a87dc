// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/hazard-keeper/internal/session"
)

func (a *app) personnelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "personnel",
		Short: "Manage the personnel roster (administrators only)",
	}

	list := guarded(&cobra.Command{
		Use:   "list",
		Short: "List personnel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printPersonnel(cmd.OutOrStdout(), a.services.PersonnelService.List(cmd.Context()))
		},
	}, session.RoutePersonnel)

	rm := guarded(&cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a roster entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			before := len(a.services.PersonnelService.List(cmd.Context()))
			after := len(a.services.PersonnelService.Delete(cmd.Context(), id))
			if after == before {
				fmt.Fprintf(cmd.OutOrStdout(), "%s No personnel with id %d\n", warnMark("!"), id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted personnel %d\n", okMark("✓"), id)
			return nil
		},
	}, session.RoutePersonnel)

	cmd.AddCommand(list, rm)
	return cmd
}
