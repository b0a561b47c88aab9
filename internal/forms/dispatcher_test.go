// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

package forms

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/oleg-github-collab/KooKooha/internal/model"
)

type fakeSubmitter struct {
	mu      sync.Mutex
	calls   int
	err     error
	block   chan struct{}
	started chan struct{}
}

func (f *fakeSubmitter) SubmitLead(ctx context.Context, _ *model.Lead) error {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return f.err
}

func (f *fakeSubmitter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeLeadStore struct {
	mu    sync.Mutex
	leads []*model.Lead
}

func (f *fakeLeadStore) CreateLead(_ context.Context, lead *model.Lead) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.leads = append(f.leads, lead)
	return uuid.New(), nil
}

func (f *fakeLeadStore) GetLeadByID(_ context.Context, _ uuid.UUID) (*model.Lead, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeLeadStore) ListLeads(_ context.Context) ([]*model.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.leads, nil
}

func (f *fakeLeadStore) LeadsByKind(_ context.Context, _ model.LeadKind) ([]*model.Lead, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeLeadStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.leads)
}

func TestDispatcher_SubmitInvalid(t *testing.T) {
	tt := []struct {
		name      string
		sub       Submission
		wantField string
	}{
		{
			name:      "waitlist with broken email",
			sub:       WaitlistSubmission{Email: "not-an-email"},
			wantField: "email",
		},
		{
			name:      "newsletter without email",
			sub:       NewsletterSubmission{},
			wantField: "email",
		},
		{
			name:      "contact without message",
			sub:       ContactSubmission{Name: "Ada", Email: "ada@example.com"},
			wantField: "message",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			submitter := &fakeSubmitter{}
			store := &fakeLeadStore{}
			d := NewDispatcher(submitter, store)

			res := d.Submit(context.Background(), "en", tc.sub)
			if res.State != StateInvalid {
				t.Fatalf("state: got %s, want invalid", res.State)
			}
			if res.Reason != model.ErrorReasonValidation {
				t.Fatalf("reason: got %v, want validation", res.Reason)
			}
			if _, ok := res.FieldErrors[tc.wantField]; !ok {
				t.Fatalf("missing field error for %q, got %v", tc.wantField, res.FieldErrors)
			}
			if submitter.callCount() != 0 {
				t.Fatal("invalid submission must not reach the backend")
			}
			if store.count() != 0 {
				t.Fatal("invalid submission must not be stored")
			}
		})
	}
}

func TestDispatcher_SubmitSuccess(t *testing.T) {
	submitter := &fakeSubmitter{}
	store := &fakeLeadStore{}
	d := NewDispatcher(submitter, store)

	sub := ContactSubmission{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Tell me more",
	}
	res := d.Submit(context.Background(), "de", sub)
	if res.State != StateSettled || res.Outcome != OutcomeSuccess {
		t.Fatalf("got state %s outcome %d, want settled success", res.State, res.Outcome)
	}
	if submitter.callCount() != 1 {
		t.Fatalf("backend calls: got %d, want 1", submitter.callCount())
	}
	if store.count() != 1 {
		t.Fatalf("stored leads: got %d, want 1", store.count())
	}
	lead := store.leads[0]
	if lead.Kind != model.LeadKindContact || lead.Locale != "de" || lead.Email != "ada@example.com" {
		t.Fatalf("unexpected lead: %+v", lead)
	}
}

func TestDispatcher_SubmitFailure(t *testing.T) {
	submitter := &fakeSubmitter{err: errors.New("connection refused")}
	store := &fakeLeadStore{}
	d := NewDispatcher(submitter, store)

	res := d.Submit(context.Background(), "en", WaitlistSubmission{Email: "ada@example.com"})
	if res.State != StateSettled || res.Outcome != OutcomeFailure {
		t.Fatalf("got state %s outcome %d, want settled failure", res.State, res.Outcome)
	}
	if res.Reason != model.ErrorReasonProcess {
		t.Fatalf("reason: got %v, want process", res.Reason)
	}
	if store.count() != 0 {
		t.Fatal("failed submission must not be stored")
	}
}

func TestDispatcher_SubmitSupersedes(t *testing.T) {
	submitter := &fakeSubmitter{
		block:   make(chan struct{}),
		started: make(chan struct{}, 2),
	}
	store := &fakeLeadStore{}
	d := NewDispatcher(submitter, store)

	results := make(chan Result, 1)
	go func() {
		results <- d.Submit(context.Background(), "en", WaitlistSubmission{Email: "first@example.com"})
	}()
	<-submitter.started

	// The second attempt for the same form cancels the first one.
	go func() {
		res := d.Submit(context.Background(), "en", WaitlistSubmission{Email: "second@example.com"})
		if res.Outcome != OutcomeSuccess {
			t.Errorf("second attempt: got outcome %d, want success", res.Outcome)
		}
	}()
	<-submitter.started
	close(submitter.block)

	first := <-results
	if first.Outcome != OutcomeCancelled {
		t.Fatalf("first attempt: got outcome %d, want cancelled", first.Outcome)
	}
}

func TestDispatcher_KindsDoNotInterfere(t *testing.T) {
	submitter := &fakeSubmitter{
		block:   make(chan struct{}),
		started: make(chan struct{}, 2),
	}
	store := &fakeLeadStore{}
	d := NewDispatcher(submitter, store)

	results := make(chan Result, 2)
	go func() {
		results <- d.Submit(context.Background(), "en", WaitlistSubmission{Email: "a@example.com"})
	}()
	<-submitter.started
	go func() {
		results <- d.Submit(context.Background(), "en", NewsletterSubmission{Email: "b@example.com"})
	}()
	<-submitter.started
	close(submitter.block)

	for i := 0; i < 2; i++ {
		if res := <-results; res.Outcome != OutcomeSuccess {
			t.Fatalf("got outcome %d, want success for both kinds", res.Outcome)
		}
	}
}
