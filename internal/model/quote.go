// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

package model

import "fmt"

// PriceQuote is the price breakdown for a team size and criteria selection.
// It is derived state, recomputed on every request and never persisted.
type PriceQuote struct {
	PeopleCount             int `json:"people_count"`
	CriteriaCount           int `json:"criteria_count"`
	BasePriceCents          int `json:"base_price_cents"`
	AdditionalPeopleCents   int `json:"additional_people_cents"`
	AdditionalCriteriaCents int `json:"additional_criteria_cents"`
	TotalCents              int `json:"total_cents"`
}

// TotalEuro renders the total as a euro amount, e.g. "750.00".
func (q PriceQuote) TotalEuro() string { return euro(q.TotalCents) }

func (q PriceQuote) BaseEuro() string { return euro(q.BasePriceCents) }

func (q PriceQuote) AdditionalPeopleEuro() string { return euro(q.AdditionalPeopleCents) }

func (q PriceQuote) AdditionalCriteriaEuro() string { return euro(q.AdditionalCriteriaCents) }

func euro(cents int) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// HasAdditionalPeople reports whether the people surcharge line should show.
func (q PriceQuote) HasAdditionalPeople() bool {
	return q.AdditionalPeopleCents > 0
}

// HasAdditionalCriteria reports whether the criteria surcharge line should show.
func (q PriceQuote) HasAdditionalCriteria() bool {
	return q.AdditionalCriteriaCents > 0
}
