// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

package db

import (
	"context"

	"github.com/google/uuid"

	"github.com/oleg-github-collab/KooKooha/internal/model"
)

type LeadStore interface {
	CreateLead(context.Context, *model.Lead) (uuid.UUID, error)
	GetLeadByID(context.Context, uuid.UUID) (*model.Lead, error)
	ListLeads(context.Context) ([]*model.Lead, error)
	LeadsByKind(context.Context, model.LeadKind) ([]*model.Lead, error)
}
