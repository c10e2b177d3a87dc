// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/hazard-keeper/internal/session"
	"github.com/MKhiriev/hazard-keeper/internal/workers"
)

func (a *app) watchCmd() *cobra.Command {
	return guarded(&cobra.Command{
		Use:   "watch [dir]",
		Short: "Import workbooks dropped into a directory",
		Long: `Watch a drop directory and import every .xlsx placed in it.

Hazard exports go into <dir>/hazards, roster exports into <dir>/personnel
(administrators only). Imported files are moved to processed/, files that
fail to import to failed/. Stops on SIGINT or SIGTERM.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.cfg.Import.WatchDir
			if len(args) == 1 {
				dir = args[0]
			}
			if dir == "" {
				return ErrNoWatchDir
			}

			handlers := workers.ImportHandlers{
				Hazards: func(ctx context.Context, path string) error {
					_, err := a.services.HazardService.ImportFile(ctx, path)
					return err
				},
			}
			if a.gate.Allowed(a.session, session.RoutePersonnel) {
				handlers.Personnel = func(ctx context.Context, path string) error {
					_, err := a.services.PersonnelService.ImportFile(ctx, path)
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			watcher := workers.NewImportWatcher(dir, a.cfg.Import.Debounce, handlers, a.logger)
			fmt.Fprintf(cmd.OutOrStdout(), "Watching %s\n", filepath.Join(dir, workers.HazardsDir))
			if handlers.Personnel != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Watching %s\n", filepath.Join(dir, workers.PersonnelDir))
			}

			return workers.NewWorkers(watcher).Run(ctx)
		},
	}, session.RouteHazards)
}
