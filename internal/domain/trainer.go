package domain

import (
	"fmt"
	"strings"
	"time"
)

// Language a training language from the closed enumeration
type Language string

const (
	LanguageEnglish Language = "English"
	LanguageMalay   Language = "Malay"
	LanguageChinese Language = "Chinese"
)

// SupportedLanguages closed enumeration of training languages
var SupportedLanguages = []Language{LanguageEnglish, LanguageMalay, LanguageChinese}

// ParseLanguage resolves s case-insensitively against SupportedLanguages.
func ParseLanguage(s string) (Language, error) {
	for _, l := range SupportedLanguages {
		if strings.EqualFold(strings.TrimSpace(s), string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: unsupported language %q", ErrInvalidInput, s)
}

// ParseLanguages parses a list, dropping duplicates and keeping input order.
func ParseLanguages(values []string) ([]Language, error) {
	out := make([]Language, 0, len(values))
	seen := make(map[Language]struct{}, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		l, err := ParseLanguage(v)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out, nil
}

// TrainerStatus represents the lifecycle status of a trainer
type TrainerStatus string

const (
	TrainerStatusActive   TrainerStatus = "active"
	TrainerStatusInactive TrainerStatus = "inactive"
)

// IsValid returns true for a known status
func (s TrainerStatus) IsValid() bool {
	return s == TrainerStatusActive || s == TrainerStatusInactive
}

// Trainer represents a trainer who runs merchant training sessions
type Trainer struct {
	ID        int64
	Name      string
	Languages []Language
	Locations []string // free-text region names
	Status    TrainerStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the trainer may receive new assignments
func (t *Trainer) IsActive() bool {
	return t.Status == TrainerStatusActive
}

// ServesLocation reports whether any of the trainer's location strings contains location.
// Matching is a case-insensitive substring test: a trainer listed for
// "Kuala Lumpur, Selangor" serves both "Kuala Lumpur" and "selangor".
func (t *Trainer) ServesLocation(location string) bool {
	needle := strings.ToLower(strings.TrimSpace(location))
	if needle == "" {
		return true
	}
	for _, loc := range t.Locations {
		if strings.Contains(strings.ToLower(loc), needle) {
			return true
		}
	}
	return false
}

// SpeaksAnyOf reports whether the trainer shares at least one language with required.
// An empty requirement is always satisfied.
func (t *Trainer) SpeaksAnyOf(required []Language) bool {
	if len(required) == 0 {
		return true
	}
	for _, want := range required {
		for _, have := range t.Languages {
			if want == have {
				return true
			}
		}
	}
	return false
}

// MatchesRequirements applies the location rule (Onsite only) and the language rule
func (t *Trainer) MatchesRequirements(mode TrainingMode, location string, languages []Language) bool {
	if mode == TrainingModeOnsite && location != "" && !t.ServesLocation(location) {
		return false
	}
	return t.SpeaksAnyOf(languages)
}
