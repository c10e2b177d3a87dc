// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/hazard-keeper/internal/session"
)

func (a *app) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import an .xlsx export into the stored collections",
	}

	cmd.AddCommand(guarded(&cobra.Command{
		Use:   "hazards <file.xlsx>",
		Short: "Merge a hazard export into the hazard table",
		Long: `Merge a hazard export into the hazard table.

Rows are matched by their document number. Matched records keep their id;
locked records are left untouched. Rows without a document number follow
import.empty_key_policy.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			before := len(a.services.HazardService.List(cmd.Context()))
			hazards, err := a.services.HazardService.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Imported %s: %d hazards (%d new)\n",
				okMark("✓"), args[0], len(hazards), len(hazards)-before)
			return nil
		},
	}, session.RouteHazards))

	cmd.AddCommand(guarded(&cobra.Command{
		Use:   "personnel <file.xlsx>",
		Short: "Merge a roster export into the personnel list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			before := len(a.services.PersonnelService.List(cmd.Context()))
			personnel, err := a.services.PersonnelService.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Imported %s: %d people (%d new)\n",
				okMark("✓"), args[0], len(personnel), len(personnel)-before)
			return nil
		},
	}, session.RoutePersonnel))

	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored collections as .xlsx",
	}

	cmd.AddCommand(guarded(&cobra.Command{
		Use:   "hazards <out.xlsx>",
		Short: "Write the hazard table to a workbook that can be imported again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}

			err = a.services.HazardService.Export(cmd.Context(), f)
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				return fmt.Errorf("export hazards: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Exported hazards to %s\n", okMark("✓"), args[0])
			return nil
		},
	}, session.RouteHazards))

	return cmd
}
