// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

package kvdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/oleg-github-collab/KooKooha/internal/model"
)

func testDB(t *testing.T) *bolt.DB {
	t.Helper()
	db, err := bolt.Open(filepath.Join(t.TempDir(), "test.db"), 0600, nil)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLeadStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	store, err := NewLeadStore(testDB(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, err := store.CreateLead(ctx, &model.Lead{
		Kind:    model.LeadKindContact,
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Tell me more",
		Locale:  "en",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("expected a generated id")
	}

	lead, err := store.GetLeadByID(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lead.Name != "Ada" || lead.Kind != model.LeadKindContact || lead.Locale != "en" {
		t.Fatalf("unexpected lead: %+v", lead)
	}
	if lead.CreatedAt == nil {
		t.Fatal("CreatedAt not set")
	}

	if _, err := store.GetLeadByID(ctx, uuid.New()); err == nil {
		t.Fatal("expected an error for an unknown id")
	}
}

func TestLeadStore_ListAndFilter(t *testing.T) {
	ctx := context.Background()
	store, err := NewLeadStore(testDB(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seed := []*model.Lead{
		{Kind: model.LeadKindContact, Email: "one@example.com"},
		{Kind: model.LeadKindWaitlist, Email: "two@example.com"},
		{Kind: model.LeadKindNewsletter, Email: "three@example.com"},
	}
	for _, lead := range seed {
		if _, err := store.CreateLead(ctx, lead); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	all, err := store.ListLeads(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != len(seed) {
		t.Fatalf("list: got %d leads, want %d", len(all), len(seed))
	}

	newsletter, err := store.LeadsByKind(ctx, model.LeadKindNewsletter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(newsletter) != 1 || newsletter[0].Email != "three@example.com" {
		t.Fatalf("newsletter: got %+v", newsletter)
	}
}
