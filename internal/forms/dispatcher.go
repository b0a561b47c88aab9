// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

package forms

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/oleg-github-collab/KooKooha/internal/db"
	"github.com/oleg-github-collab/KooKooha/internal/model"
)

type State int

const (
	StateIdle State = iota
	StateValidating
	StateInvalid
	StateSubmitting
	StateSettled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateInvalid:
		return "invalid"
	case StateSubmitting:
		return "submitting"
	case StateSettled:
		return "settled"
	}
	return "unknown"
}

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSuccess
	OutcomeFailure
	OutcomeCancelled
)

// Result is the terminal state of one submission attempt.
type Result struct {
	State       State
	Outcome     Outcome
	Reason      model.ErrorReason
	FieldErrors map[string]string
}

// Submitter relays a validated lead to the backend.
type Submitter interface {
	SubmitLead(context.Context, *model.Lead) error
}

func NewDispatcher(submitter Submitter, store db.LeadStore) *Dispatcher {
	return &Dispatcher{
		submitter: submitter,
		store:     store,
		logger:    slog.Default().WithGroup("forms"),
		inflight:  make(map[model.LeadKind]*attempt),
	}
}

// Dispatcher drives the submission state machine. At most one attempt
// per form kind is in flight, a newer attempt cancels the older one.
type Dispatcher struct {
	submitter Submitter
	store     db.LeadStore
	logger    *slog.Logger

	mu       sync.Mutex
	inflight map[model.LeadKind]*attempt
}

type attempt struct {
	cancel context.CancelFunc
}

// Submit runs one attempt to completion and returns its terminal state.
// Entered values are the caller's to keep on failure, only a success
// clears the form.
func (d *Dispatcher) Submit(ctx context.Context, locale string, sub Submission) Result {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Dispatcher.Submit")
	defer span.End()
	span.SetAttributes(attribute.String("form", sub.Kind().String()))

	span.AddEvent("validating")
	if err := sub.Validate(); err != nil {
		span.AddEvent("invalid")
		return Result{
			State:       StateInvalid,
			Reason:      model.ErrorReasonValidation,
			FieldErrors: fieldErrors(err),
		}
	}

	span.AddEvent("submitting")
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a := &attempt{cancel: cancel}
	d.begin(sub.Kind(), a)
	defer d.finish(sub.Kind(), a)

	lead := sub.Lead(locale)
	if err := d.submitter.SubmitLead(ctx, lead); err != nil {
		if errors.Is(err, context.Canceled) {
			span.AddEvent("superseded")
			return Result{State: StateSettled, Outcome: OutcomeCancelled}
		}
		span.RecordError(err)
		d.logger.ErrorContext(ctx, "lead relay failed", "form", sub.Kind().String(), "error", err)
		return Result{State: StateSettled, Outcome: OutcomeFailure, Reason: model.ErrorReasonProcess}
	}

	// The relay succeeded, keeping a local copy is best effort.
	if _, err := d.store.CreateLead(ctx, lead); err != nil {
		span.RecordError(err)
		d.logger.WarnContext(ctx, "could not store lead", "form", sub.Kind().String(), "error", err)
	}

	span.AddEvent("settled")
	return Result{State: StateSettled, Outcome: OutcomeSuccess}
}

// begin registers the attempt and supersedes a pending one.
func (d *Dispatcher) begin(kind model.LeadKind, a *attempt) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if prev, ok := d.inflight[kind]; ok {
		prev.cancel()
	}
	d.inflight[kind] = a
}

func (d *Dispatcher) finish(kind model.LeadKind, a *attempt) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.inflight[kind] == a {
		delete(d.inflight, kind)
	}
}

func fieldErrors(err error) map[string]string {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for field, ferr := range verrs {
		out[field] = ferr.Error()
	}
	return out
}
