package service

import (
	"strings"

	"github.com/crichub/cricket-stats-service/internal/repository"
)

const (
	minOvers = 1
	maxOvers = 50
	// Over index is 0-based and bounded by the longest permitted match.
	maxOverIndex  = 50
	ballsPerOver  = 6
	maxRunsOffBat = 6
)

func normalizePage(p repository.Page) repository.Page {
	limit := p.Limit
	offset := p.Offset
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return repository.Page{Limit: limit, Offset: offset}
}

// normalizeTossChoice maps any casing of bat/bowl onto the stored form.
// Anything else comes back empty.
func normalizeTossChoice(choice string) string {
	switch strings.ToLower(strings.TrimSpace(choice)) {
	case "bat":
		return "Bat"
	case "bowl":
		return "Bowl"
	default:
		return ""
	}
}

// validateName checks the shared non-empty rule for player and team names and
// returns the trimmed value.
func validateName(field, raw string) (string, []FieldError) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", []FieldError{{Field: field, Message: "must not be empty"}}
	}
	return name, nil
}
