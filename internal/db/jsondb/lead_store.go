// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

package jsondb

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/oleg-github-collab/KooKooha/internal/model"
)

// LeadStore is an implementation of the LeadStore interface that
// stores relayed form submissions in a JSON file.
type LeadStore struct {
	filename string
	mu       sync.RWMutex
	leads    map[uuid.UUID]*model.Lead
}

// NewLeadStore creates a new LeadStore instance.
func NewLeadStore(filename string) (*LeadStore, error) {
	store := &LeadStore{
		filename: filename,
		leads:    make(map[uuid.UUID]*model.Lead),
	}

	if err := store.loadFromFile(); err != nil {
		return nil, err
	}
	return store, nil
}

// CreateLead adds a new lead to the store and stores it in the JSON file.
func (l *LeadStore) CreateLead(ctx context.Context, lead *model.Lead) (uuid.UUID, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "CreateLead")
	defer span.End()

	span.AddEvent("Lock")
	l.mu.Lock()
	defer span.AddEvent("Unlock")
	defer l.mu.Unlock()

	if lead.ID == uuid.Nil {
		lead.ID = uuid.New()
	}

	if _, ok := l.leads[lead.ID]; ok {
		err := errors.New("lead already exists")
		span.RecordError(err)
		return uuid.Nil, err
	}

	now := time.Now()
	lead.CreatedAt = &now
	l.leads[lead.ID] = lead

	span.AddEvent("save to file")
	if err := l.saveToFile(ctx); err != nil {
		return uuid.Nil, err
	}

	return lead.ID, nil
}

// GetLeadByID retrieves a lead by ID from the store.
func (l *LeadStore) GetLeadByID(ctx context.Context, id uuid.UUID) (*model.Lead, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "GetLeadByID")
	defer span.End()

	span.AddEvent("RLock")
	l.mu.RLock()
	defer span.AddEvent("RUnlock")
	defer l.mu.RUnlock()

	lead, ok := l.leads[id]
	if !ok {
		err := errors.New("lead not found")
		span.RecordError(err)
		return nil, err
	}

	return lead, nil
}

// ListLeads returns all leads in the store, newest first.
func (l *LeadStore) ListLeads(ctx context.Context) ([]*model.Lead, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListLeads")
	defer span.End()

	span.AddEvent("RLock")
	l.mu.RLock()
	defer span.AddEvent("RUnlock")
	defer l.mu.RUnlock()

	leadList := make([]*model.Lead, 0, len(l.leads))
	for _, lead := range l.leads {
		leadList = append(leadList, lead)
	}
	sortLeads(leadList)

	return leadList, nil
}

// LeadsByKind returns all leads of the given kind, newest first.
func (l *LeadStore) LeadsByKind(ctx context.Context, kind model.LeadKind) ([]*model.Lead, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "LeadsByKind")
	defer span.End()

	span.AddEvent("RLock")
	l.mu.RLock()
	defer span.AddEvent("RUnlock")
	defer l.mu.RUnlock()

	var leadList []*model.Lead
	for _, lead := range l.leads {
		if lead.Kind == kind {
			leadList = append(leadList, lead)
		}
	}
	sortLeads(leadList)

	return leadList, nil
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

// saveToFile saves the current lead store to the JSON file.
func (l *LeadStore) saveToFile(ctx context.Context) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "SaveToFile")
	defer span.End()

	fileData, err := json.MarshalIndent(l.leads, "", "  ")
	if err != nil {
		span.RecordError(err)
		return err
	}

	if err := os.WriteFile(l.filename, fileData, 0644); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// loadFromFile loads lead data from the JSON file into the store.
func (l *LeadStore) loadFromFile() error {
	if _, err := os.Stat(l.filename); os.IsNotExist(err) {
		// File does not exist, no leads to load
		return nil
	}

	fileData, err := os.ReadFile(l.filename)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return json.Unmarshal(fileData, &l.leads)
}
