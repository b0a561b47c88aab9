// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

package pricing

import (
	"testing"
)

func TestCalculator_Quote(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	tt := []struct {
		name          string
		people        int
		criteria      int
		wantTotal     int
		wantPeople    int
		wantCriteria  int
		wantAddPeople int
		wantAddCrit   int
	}{
		{
			name:         "base package",
			people:       4,
			criteria:     2,
			wantTotal:    75000,
			wantPeople:   4,
			wantCriteria: 2,
		},
		{
			name:         "below base still costs base",
			people:       1,
			criteria:     1,
			wantTotal:    75000,
			wantPeople:   1,
			wantCriteria: 1,
		},
		{
			name:          "additional people and criteria",
			people:        10,
			criteria:      5,
			wantTotal:     165000,
			wantPeople:    10,
			wantCriteria:  5,
			wantAddPeople: 45000,
			wantAddCrit:   45000,
		},
		{
			name:          "clamped to the upper bounds",
			people:        5000,
			criteria:      200,
			wantTotal:     75000 + 996*7500 + 48*15000,
			wantPeople:    1000,
			wantCriteria:  50,
			wantAddPeople: 996 * 7500,
			wantAddCrit:   48 * 15000,
		},
		{
			name:         "zero input clamps to one",
			people:       0,
			criteria:     0,
			wantTotal:    75000,
			wantPeople:   1,
			wantCriteria: 1,
		},
		{
			name:         "negative input clamps to one",
			people:       -3,
			criteria:     -1,
			wantTotal:    75000,
			wantPeople:   1,
			wantCriteria: 1,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			q := calc.Quote(tc.people, tc.criteria)
			if q.TotalCents != tc.wantTotal {
				t.Fatalf("total: got %d, want %d", q.TotalCents, tc.wantTotal)
			}
			if q.PeopleCount != tc.wantPeople || q.CriteriaCount != tc.wantCriteria {
				t.Fatalf("counts: got %d/%d, want %d/%d", q.PeopleCount, q.CriteriaCount, tc.wantPeople, tc.wantCriteria)
			}
			if q.AdditionalPeopleCents != tc.wantAddPeople {
				t.Fatalf("additional people: got %d, want %d", q.AdditionalPeopleCents, tc.wantAddPeople)
			}
			if q.AdditionalCriteriaCents != tc.wantAddCrit {
				t.Fatalf("additional criteria: got %d, want %d", q.AdditionalCriteriaCents, tc.wantAddCrit)
			}
			if sum := q.BasePriceCents + q.AdditionalPeopleCents + q.AdditionalCriteriaCents; sum != q.TotalCents {
				t.Fatalf("breakdown does not sum up: %d != %d", sum, q.TotalCents)
			}
		})
	}
}

func TestCalculator_QuoteMonotonic(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	prev := calc.Quote(1, 2).TotalCents
	for people := 2; people <= 20; people++ {
		cur := calc.Quote(people, 2).TotalCents
		if cur < prev {
			t.Fatalf("total dropped from %d to %d at %d people", prev, cur, people)
		}
		prev = cur
	}

	prev = calc.Quote(4, 1).TotalCents
	for criteria := 2; criteria <= 20; criteria++ {
		cur := calc.Quote(4, criteria).TotalCents
		if cur < prev {
			t.Fatalf("total dropped from %d to %d at %d criteria", prev, cur, criteria)
		}
		prev = cur
	}
}

func TestConfig_Validate(t *testing.T) {
	tt := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "zero base price", mutate: func(c *Config) { c.BasePriceCents = 0 }, wantErr: true},
		{name: "negative per person", mutate: func(c *Config) { c.PricePerAdditionalPersonCents = -1 }, wantErr: true},
		{name: "zero base team size", mutate: func(c *Config) { c.BaseTeamSize = 0 }, wantErr: true},
		{name: "max below base", mutate: func(c *Config) { c.MaxTeamSize = 2 }, wantErr: true},
		{name: "max criteria below base", mutate: func(c *Config) { c.MaxCriteriaCount = 1 }, wantErr: true},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected an error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
