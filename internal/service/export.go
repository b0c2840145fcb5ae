package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/crichub/cricket-stats-service/internal/model"
	"github.com/crichub/cricket-stats-service/internal/repository"
)

// csvHeader matches the scores table's column order.
var csvHeader = []string{"id", "match_id", "innings", "over", "ball", "batter", "bowler", "runs", "is_four", "is_six", "is_wicket"}

type exportService struct {
	scores repository.ScoreRepository
	log    zerolog.Logger
}

func NewExportService(scores repository.ScoreRepository, logger zerolog.Logger) ExportService {
	l := logger.With().Str("module", "service").Str("component", "export").Logger()
	return &exportService{scores: scores, log: l}
}

// ExportMatch writes the match's delivery log as CSV to destination.
// A match without recorded balls produces a header-only file, not an error.
func (s *exportService) ExportMatch(ctx context.Context, matchID int64, destination string) (int, error) {
	if err := validateExportArgs(matchID, destination); err != nil {
		return 0, err
	}

	f, err := os.Create(destination)
	if err != nil {
		s.log.Error().Err(err).Str("destination", destination).Msg("export destination not writable")
		return 0, fmt.Errorf("%w: %v", ErrExportIO, err)
	}

	rows, werr := s.writeCSV(ctx, matchID, f)
	cerr := f.Close()
	if werr != nil {
		return 0, werr
	}
	if cerr != nil {
		return 0, fmt.Errorf("%w: %v", ErrExportIO, cerr)
	}
	s.log.Info().Int64("match_id", matchID).Str("destination", destination).Int("rows", rows).Msg("match exported")
	return rows, nil
}

// WriteMatch streams the same CSV to w, backing download-style delivery.
func (s *exportService) WriteMatch(ctx context.Context, matchID int64, w io.Writer) (int, error) {
	if matchID <= 0 {
		return 0, NewInvalidInputError([]FieldError{{Field: "match_id", Message: "must be > 0"}})
	}
	return s.writeCSV(ctx, matchID, w)
}

func (s *exportService) writeCSV(ctx context.Context, matchID int64, w io.Writer) (int, error) {
	balls, err := s.scores.ListByMatch(ctx, matchID)
	if err != nil {
		return 0, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrExportIO, err)
	}
	for _, b := range balls {
		if err := cw.Write(csvRecord(b)); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrExportIO, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrExportIO, err)
	}
	return len(balls), nil
}

func csvRecord(b model.Ball) []string {
	return []string{
		strconv.FormatInt(b.ID, 10),
		strconv.FormatInt(b.MatchID, 10),
		strconv.Itoa(b.Innings),
		strconv.Itoa(b.Over),
		strconv.Itoa(b.Ball),
		b.Batter,
		b.Bowler,
		strconv.Itoa(b.Runs),
		boolFlag(b.IsFour),
		boolFlag(b.IsSix),
		boolFlag(b.IsWicket),
	}
}

// boolFlag serializes flags as 0/1 the way the store holds them.
func boolFlag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func validateExportArgs(matchID int64, destination string) error {
	var ferrs []FieldError
	if matchID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "match_id", Message: "must be > 0"})
	}
	if destination == "" {
		ferrs = append(ferrs, FieldError{Field: "destination", Message: "must not be empty"})
	}
	return NewInvalidInputError(ferrs)
}
