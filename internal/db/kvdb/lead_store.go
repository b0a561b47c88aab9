// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

package kvdb

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel/trace"

	"github.com/oleg-github-collab/KooKooha/internal/model"
)

const bucketLead = "lead_store"

func NewLeadStore(db *bolt.DB) (*LeadStore, error) {
	return &LeadStore{db: db}, db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketLead))
		return err
	})
}

type LeadStore struct {
	db *bolt.DB
}

func (l *LeadStore) CreateLead(ctx context.Context, lead *model.Lead) (uuid.UUID, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "CreateLead")
	defer span.End()

	if lead.ID == uuid.Nil {
		span.AddEvent("uuid is nil, generate a new id")
		lead.ID = uuid.New()
	}
	now := time.Now()
	lead.CreatedAt = &now

	j, err := json.Marshal(lead)
	if err != nil {
		return uuid.Nil, err
	}

	span.AddEvent("Update bucket")
	return lead.ID, l.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketLead)).Put(lead.ID[:], j)
	})
}

func (l *LeadStore) GetLeadByID(ctx context.Context, id uuid.UUID) (*model.Lead, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "GetLeadByID")
	defer span.End()

	span.AddEvent("View bucket")
	lead := &model.Lead{}
	return lead, l.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(bucketLead)).Get(id[:])
		if raw == nil {
			err := errors.New("lead not found")
			span.RecordError(err)
			return err
		}
		return json.Unmarshal(raw, lead)
	})
}

func (l *LeadStore) ListLeads(ctx context.Context) ([]*model.Lead, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListLeads")
	defer span.End()

	span.AddEvent("View bucket")
	leads := make([]*model.Lead, 0)
	err := l.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketLead)).ForEach(func(_, v []byte) error {
			lead := &model.Lead{}
			if err := json.Unmarshal(v, lead); err != nil {
				span.RecordError(err)
				return err
			}
			leads = append(leads, lead)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sortLeads(leads)
	return leads, nil
}

func (l *LeadStore) LeadsByKind(ctx context.Context, kind model.LeadKind) ([]*model.Lead, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "LeadsByKind")
	defer span.End()

	all, err := l.ListLeads(ctx)
	if err != nil {
		return nil, err
	}
	leads := make([]*model.Lead, 0, len(all))
	for _, lead := range all {
		if lead.Kind == kind {
			leads = append(leads, lead)
		}
	}
	return leads, nil
}

func sortLeads(leads []*model.Lead) {
	sort.Slice(leads, func(i, j int) bool {
		switch {
		case leads[i].CreatedAt == nil:
			return false
		case leads[j].CreatedAt == nil:
			return true
		}
		return leads[i].CreatedAt.After(*leads[j].CreatedAt)
	})
}
