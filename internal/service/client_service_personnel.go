// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"
	"sync"

	"github.com/MKhiriev/hazard-keeper/internal/importer"
	"github.com/MKhiriev/hazard-keeper/internal/logger"
	"github.com/MKhiriev/hazard-keeper/internal/reconcile"
	"github.com/MKhiriev/hazard-keeper/internal/store"
	"github.com/MKhiriev/hazard-keeper/models"
)

type personnelService struct {
	personnel store.PersonnelRepository
	opts      ImportOptions

	mu     *sync.Mutex
	logger *logger.Logger
}

func NewPersonnelService(personnel store.PersonnelRepository, opts ImportOptions, mu *sync.Mutex, logger *logger.Logger) PersonnelService {
	return &personnelService{personnel: personnel, opts: opts.withDefaults(), mu: mu, logger: logger}
}

func (s *personnelService) Import(ctx context.Context, rows []models.Row) ([]models.Personnel, error) {
	ctx, log := s.opts.batchContext(ctx, s.logger, "personnel")

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.personnel.GetAllPersonnel(ctx)
	seq := reconcile.NewSequence(s.personnel.LastPersonnelID(ctx))
	for _, p := range existing {
		seq.Observe(p.ID)
	}

	merged, err := reconcile.Personnel(existing, rows, reconcile.Options{
		EmptyKey: s.opts.EmptyKeyPolicy,
		Seq:      seq,
	})
	if err != nil {
		log.Warn().Err(err).Int("rows", len(rows)).Msg("personnel import rejected")
		return nil, err
	}

	s.personnel.SavePersonnel(ctx, merged)
	s.personnel.SaveLastPersonnelID(ctx, seq.Last())
	log.Info().
		Int("rows", len(rows)).
		Int("before", len(existing)).
		Int("after", len(merged)).
		Msg("personnel imported")

	return merged, nil
}

func (s *personnelService) ImportReader(ctx context.Context, r io.Reader) ([]models.Personnel, error) {
	rows, err := importer.ReadRows(r)
	if err != nil {
		return nil, err
	}
	return s.Import(ctx, rows)
}

func (s *personnelService) ImportFile(ctx context.Context, path string) ([]models.Personnel, error) {
	rows, err := importer.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return s.Import(ctx, rows)
}

func (s *personnelService) Delete(ctx context.Context, id int64) []models.Personnel {
	s.mu.Lock()
	defer s.mu.Unlock()

	personnel := reconcile.DeletePersonnel(s.personnel.GetAllPersonnel(ctx), id)
	s.personnel.SavePersonnel(ctx, personnel)
	s.logger.Info().Int64("personnel_id", id).Msg("personnel entry deleted")

	return personnel
}

func (s *personnelService) List(ctx context.Context) []models.Personnel {
	return s.personnel.GetAllPersonnel(ctx)
}
