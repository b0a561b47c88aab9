// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

package server

import (
	"context"

	"github.com/oleg-github-collab/KooKooha/internal/lens"
	"github.com/oleg-github-collab/KooKooha/internal/model"
	"github.com/oleg-github-collab/KooKooha/internal/pricing"
)

// localQuoter computes quotes from the configured constants without
// leaving the process.
type localQuoter struct {
	calc *pricing.Calculator
}

func (q localQuoter) Quote(_ context.Context, peopleCount, criteriaCount int) (model.PriceQuote, error) {
	return q.calc.Quote(peopleCount, criteriaCount), nil
}

// backendQuoter defers to the Human Lens API, which owns the billing
// truth. Use it when the configured constants may drift from the
// backend deployment.
type backendQuoter struct {
	client *lens.Client
}

func (q backendQuoter) Quote(ctx context.Context, peopleCount, criteriaCount int) (model.PriceQuote, error) {
	quote, err := q.client.CalculatePrice(ctx, peopleCount, criteriaCount)
	if err != nil {
		return model.PriceQuote{}, err
	}
	return *quote, nil
}
