// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/hazard-keeper/internal/session"
	"github.com/MKhiriev/hazard-keeper/models"
)

func (a *app) usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Administer credentials (administrators only)",
	}

	list := guarded(&cobra.Command{
		Use:   "list",
		Short: "List credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printUsers(cmd.OutOrStdout(), a.services.UserService.List(cmd.Context()))
		},
	}, session.RouteUsers)

	add := guarded(&cobra.Command{
		Use:   "add <username> <password>",
		Short: "Add a credential",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, _ := cmd.Flags().GetString("role")

			u, err := a.services.UserService.Add(cmd.Context(), args[0], args[1], models.Role(role))
			if err != nil {
				return fmt.Errorf("add user: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added user %d: %s (%s)\n", okMark("✓"), u.ID, u.Username, u.Role)
			return nil
		},
	}, session.RouteUsers)
	add.Flags().String("role", string(models.RoleUser), "Role: admin or user")

	rm := guarded(&cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			before := len(a.services.UserService.List(cmd.Context()))
			if len(a.services.UserService.Remove(cmd.Context(), id)) == before {
				fmt.Fprintf(cmd.OutOrStdout(), "%s No user with id %d\n", warnMark("!"), id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted user %d\n", okMark("✓"), id)
			return nil
		},
	}, session.RouteUsers)

	role := guarded(&cobra.Command{
		Use:   "role <id> <admin|user>",
		Short: "Set the role of a credential",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			users, err := a.services.UserService.SetRole(cmd.Context(), id, models.Role(args[1]))
			if err != nil {
				return fmt.Errorf("set role: %w", err)
			}
			return a.reportRole(cmd, users, id)
		},
	}, session.RouteUsers)

	toggle := guarded(&cobra.Command{
		Use:   "toggle <id>",
		Short: "Switch a credential between admin and user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.reportRole(cmd, a.services.UserService.ToggleRole(cmd.Context(), id), id)
		},
	}, session.RouteUsers)

	cmd.AddCommand(list, add, rm, role, toggle)
	return cmd
}

func (a *app) reportRole(cmd *cobra.Command, users []models.User, id int64) error {
	for _, u := range users {
		if u.ID == id {
			fmt.Fprintf(cmd.OutOrStdout(), "%s User %d (%s) is now %s\n", okMark("✓"), u.ID, u.Username, u.Role)
			return nil
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s No user with id %d\n", warnMark("!"), id)
	return nil
}
