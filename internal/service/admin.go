package service

import (
	"context"

	"github.com/rs/zerolog"
)

// Resetter is the storage capability behind the full-reset operation.
type Resetter interface {
	Reset(ctx context.Context) error
}

type adminService struct {
	store Resetter
	log   zerolog.Logger
}

func NewAdminService(store Resetter, logger zerolog.Logger) AdminService {
	l := logger.With().Str("module", "service").Str("component", "admin").Logger()
	return &adminService{store: store, log: l}
}

// Reset destroys every row and re-creates the empty schema. Irreversible;
// confirmation is the caller's concern.
func (s *adminService) Reset(ctx context.Context) error {
	if err := s.store.Reset(ctx); err != nil {
		s.log.Error().Err(err).Msg("store reset failed")
		return err
	}
	s.log.Warn().Msg("store reset: all data destroyed")
	return nil
}
