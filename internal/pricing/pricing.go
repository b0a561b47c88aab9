// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

// Package pricing computes price quotes for the survey package.
// The calculation is pure, all constants come from configuration.
package pricing

import (
	"errors"

	"github.com/oleg-github-collab/KooKooha/internal/model"
)

// Config holds the externally supplied pricing constants. The defaults
// mirror the backend configuration.
type Config struct {
	BasePriceCents                  int `toml:"base_price_cents"`
	PricePerAdditionalPersonCents   int `toml:"price_per_additional_person_cents"`
	PricePerAdditionalCriteriaCents int `toml:"price_per_additional_criteria_cents"`
	BaseTeamSize                    int `toml:"base_team_size"`
	BaseCriteriaCount               int `toml:"base_criteria_count"`
	MaxTeamSize                     int `toml:"max_team_size"`
	MaxCriteriaCount                int `toml:"max_criteria_count"`
}

func DefaultConfig() Config {
	return Config{
		BasePriceCents:                  75000,
		PricePerAdditionalPersonCents:   7500,
		PricePerAdditionalCriteriaCents: 15000,
		BaseTeamSize:                    4,
		BaseCriteriaCount:               2,
		MaxTeamSize:                     1000,
		MaxCriteriaCount:                50,
	}
}

func (c Config) Validate() error {
	if c.BasePriceCents <= 0 {
		return errors.New("pricing: base_price_cents must be positive")
	}
	if c.PricePerAdditionalPersonCents < 0 || c.PricePerAdditionalCriteriaCents < 0 {
		return errors.New("pricing: per-unit prices must not be negative")
	}
	if c.BaseTeamSize < 1 || c.BaseCriteriaCount < 1 {
		return errors.New("pricing: base counts must be at least 1")
	}
	if c.MaxTeamSize < c.BaseTeamSize {
		return errors.New("pricing: max_team_size below base_team_size")
	}
	if c.MaxCriteriaCount < c.BaseCriteriaCount {
		return errors.New("pricing: max_criteria_count below base_criteria_count")
	}
	return nil
}

func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

type Calculator struct {
	cfg Config
}

// Quote computes the price breakdown for a team size and criteria
// count. Inputs are clamped to the configured bounds, mirroring the
// range controls on the page. The total never drops below the base
// price and grows monotonically in both inputs.
func (c *Calculator) Quote(peopleCount, criteriaCount int) model.PriceQuote {
	peopleCount = clamp(peopleCount, 1, c.cfg.MaxTeamSize)
	criteriaCount = clamp(criteriaCount, 1, c.cfg.MaxCriteriaCount)

	additionalPeople := max(0, peopleCount-c.cfg.BaseTeamSize)
	additionalCriteria := max(0, criteriaCount-c.cfg.BaseCriteriaCount)

	peopleCents := additionalPeople * c.cfg.PricePerAdditionalPersonCents
	criteriaCents := additionalCriteria * c.cfg.PricePerAdditionalCriteriaCents

	return model.PriceQuote{
		PeopleCount:             peopleCount,
		CriteriaCount:           criteriaCount,
		BasePriceCents:          c.cfg.BasePriceCents,
		AdditionalPeopleCents:   peopleCents,
		AdditionalCriteriaCents: criteriaCents,
		TotalCents:              c.cfg.BasePriceCents + peopleCents + criteriaCents,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
