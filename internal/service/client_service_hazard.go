// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/MKhiriev/hazard-keeper/internal/importer"
	"github.com/MKhiriev/hazard-keeper/internal/logger"
	"github.com/MKhiriev/hazard-keeper/internal/reconcile"
	"github.com/MKhiriev/hazard-keeper/internal/store"
	"github.com/MKhiriev/hazard-keeper/internal/validators"
	"github.com/MKhiriev/hazard-keeper/models"
)

type hazardService struct {
	hazards   store.HazardRepository
	validator validators.Validator
	opts      ImportOptions

	mu     *sync.Mutex
	logger *logger.Logger
}

func NewHazardService(hazards store.HazardRepository, validator validators.Validator, opts ImportOptions, mu *sync.Mutex, logger *logger.Logger) HazardService {
	return &hazardService{hazards: hazards, validator: validator, opts: opts.withDefaults(), mu: mu, logger: logger}
}

func (s *hazardService) Import(ctx context.Context, rows []models.Row) ([]models.Hazard, error) {
	ctx, log := s.opts.batchContext(ctx, s.logger, "hazards")

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.hazards.GetAllHazards(ctx)
	seq := reconcile.NewSequence(s.hazards.LastHazardID(ctx))
	for _, h := range existing {
		seq.Observe(h.ID)
	}

	merged, err := reconcile.Hazards(existing, rows, reconcile.Options{
		Today:    s.opts.Clock(),
		EmptyKey: s.opts.EmptyKeyPolicy,
		Seq:      seq,
	})
	if err != nil {
		log.Warn().Err(err).Int("rows", len(rows)).Msg("hazard import rejected")
		return nil, err
	}

	s.hazards.SaveHazards(ctx, merged)
	s.hazards.SaveLastHazardID(ctx, seq.Last())
	log.Info().
		Int("rows", len(rows)).
		Int("before", len(existing)).
		Int("after", len(merged)).
		Msg("hazards imported")

	return merged, nil
}

func (s *hazardService) ImportReader(ctx context.Context, r io.Reader) ([]models.Hazard, error) {
	rows, err := importer.ReadRows(r)
	if err != nil {
		return nil, err
	}
	return s.Import(ctx, rows)
}

func (s *hazardService) ImportFile(ctx context.Context, path string) ([]models.Hazard, error) {
	rows, err := importer.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Str("path", path).Int("rows", len(rows)).Msg("hazard workbook read")
	return s.Import(ctx, rows)
}

func (s *hazardService) Edit(ctx context.Context, id int64, patch models.HazardPatch) ([]models.Hazard, error) {
	if err := s.validator.Validate(ctx, patch); err != nil {
		return nil, mapValidationError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	hazards := reconcile.Edit(s.hazards.GetAllHazards(ctx), id, patch, s.opts.Clock())
	s.hazards.SaveHazards(ctx, hazards)
	s.logger.Info().Int64("hazard_id", id).Msg("hazard edited")

	return hazards, nil
}

func (s *hazardService) ToggleLock(ctx context.Context, id int64) []models.Hazard {
	s.mu.Lock()
	defer s.mu.Unlock()

	hazards := reconcile.ToggleLock(s.hazards.GetAllHazards(ctx), id)
	s.hazards.SaveHazards(ctx, hazards)
	s.logger.Info().Int64("hazard_id", id).Msg("hazard lock toggled")

	return hazards
}

func (s *hazardService) RefreshOverdue(ctx context.Context) []models.Hazard {
	s.mu.Lock()
	defer s.mu.Unlock()

	hazards := reconcile.RefreshOverdue(s.hazards.GetAllHazards(ctx), s.opts.Clock())
	s.hazards.SaveHazards(ctx, hazards)

	return hazards
}

func (s *hazardService) Export(ctx context.Context, w io.Writer) error {
	return importer.WriteHazards(w, s.hazards.GetAllHazards(ctx))
}

func (s *hazardService) List(ctx context.Context) []models.Hazard {
	return s.hazards.GetAllHazards(ctx)
}

// ImportOptions configures both import services.
type ImportOptions struct {
	EmptyKeyPolicy reconcile.EmptyKeyPolicy
	// Clock defaults to time.Now.
	Clock func() time.Time
	// BatchIDs defaults to UUIDv7 generation.
	BatchIDs interface{ Generate() string }
}
