// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

// Package lens is the HTTP client for the Human Lens backend API.
package lens

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/oleg-github-collab/KooKooha/internal/model"
)

// ErrRejected marks a request the backend refused (4xx). It is the
// validation-style failure, distinct from transport or server errors.
var ErrRejected = errors.New("lens: request rejected")

const (
	defaultTimeout = 15 * time.Second

	pathCalculate = "/api/v1/payments/calculate"
	pathCheckout  = "/api/v1/payments/checkout"
)

// LeadPaths holds the relay paths per form kind. The documented API has
// no lead routes yet, so they stay configurable.
type LeadPaths struct {
	Contact    string `toml:"contact"`
	Waitlist   string `toml:"waitlist"`
	Newsletter string `toml:"newsletter"`
}

func DefaultLeadPaths() LeadPaths {
	return LeadPaths{
		Contact:    "/api/v1/leads/contact",
		Waitlist:   "/api/v1/leads/waitlist",
		Newsletter: "/api/v1/leads/newsletter",
	}
}

func NewClient(baseURL string, paths LeadPaths, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		paths:   paths,
		client:  &http.Client{Timeout: timeout},
	}
}

type Client struct {
	baseURL string
	paths   LeadPaths
	client  *http.Client
}

// CheckoutSession is the backend's answer to a checkout request.
type CheckoutSession struct {
	SessionID  string `json:"session_id"`
	SessionURL string `json:"session_url"`
	PaymentID  int    `json:"payment_id"`
}

type checkoutRequest struct {
	TeamSize      int    `json:"team_size"`
	CriteriaCount int    `json:"criteria_count"`
	SuccessURL    string `json:"success_url"`
	CancelURL     string `json:"cancel_url"`
}

type calculateRequest struct {
	TeamSize      int `json:"team_size"`
	CriteriaCount int `json:"criteria_count"`
}

type calculateResponse struct {
	BasePriceCents         int `json:"base_price_cents"`
	AdditionalPeopleCost   int `json:"additional_people_cost"`
	AdditionalCriteriaCost int `json:"additional_criteria_cost"`
	TotalPriceCents        int `json:"total_price_cents"`
}

// CalculatePrice asks the backend for an authoritative quote.
func (c *Client) CalculatePrice(ctx context.Context, peopleCount, criteriaCount int) (*model.PriceQuote, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Client.CalculatePrice")
	defer span.End()
	span.SetAttributes(attribute.Int("people", peopleCount), attribute.Int("criteria", criteriaCount))

	var resp calculateResponse
	err := c.post(ctx, pathCalculate, calculateRequest{
		TeamSize:      peopleCount,
		CriteriaCount: criteriaCount,
	}, &resp)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return &model.PriceQuote{
		PeopleCount:             peopleCount,
		CriteriaCount:           criteriaCount,
		BasePriceCents:          resp.BasePriceCents,
		AdditionalPeopleCents:   resp.AdditionalPeopleCost,
		AdditionalCriteriaCents: resp.AdditionalCriteriaCost,
		TotalCents:              resp.TotalPriceCents,
	}, nil
}

// CreateCheckoutSession creates a checkout session for the selection
// and returns the URL the customer is redirected to.
func (c *Client) CreateCheckoutSession(ctx context.Context, peopleCount, criteriaCount int, successURL, cancelURL string) (*CheckoutSession, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Client.CreateCheckoutSession")
	defer span.End()

	session := &CheckoutSession{}
	err := c.post(ctx, pathCheckout, checkoutRequest{
		TeamSize:      peopleCount,
		CriteriaCount: criteriaCount,
		SuccessURL:    successURL,
		CancelURL:     cancelURL,
	}, session)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return session, nil
}

// SubmitLead relays a validated form submission to the backend.
func (c *Client) SubmitLead(ctx context.Context, lead *model.Lead) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Client.SubmitLead")
	defer span.End()
	span.SetAttributes(attribute.String("kind", lead.Kind.String()))

	var path string
	switch lead.Kind {
	case model.LeadKindContact:
		path = c.paths.Contact
	case model.LeadKindWaitlist:
		path = c.paths.Waitlist
	case model.LeadKindNewsletter:
		path = c.paths.Newsletter
	default:
		err := fmt.Errorf("no relay path for lead kind %q", lead.Kind)
		span.RecordError(err)
		return err
	}

	if err := c.post(ctx, path, lead, nil); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return fmt.Errorf("%w: %s returned %d", ErrRejected, path, resp.StatusCode)
	default:
		return fmt.Errorf("%s returned %d", path, resp.StatusCode)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", path, err)
	}
	return nil
}
