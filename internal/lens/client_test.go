// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

package lens

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oleg-github-collab/KooKooha/internal/model"
)

func TestClient_CalculatePrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/payments/calculate" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		var req struct {
			TeamSize      int `json:"team_size"`
			CriteriaCount int `json:"criteria_count"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.TeamSize != 10 || req.CriteriaCount != 5 {
			t.Errorf("unexpected request: %+v", req)
		}
		json.NewEncoder(w).Encode(map[string]int{
			"base_price_cents":         75000,
			"additional_people_cost":   45000,
			"additional_criteria_cost": 45000,
			"total_price_cents":        165000,
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, DefaultLeadPaths(), 0)
	quote, err := client.CalculatePrice(context.Background(), 10, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &model.PriceQuote{
		PeopleCount:             10,
		CriteriaCount:           5,
		BasePriceCents:          75000,
		AdditionalPeopleCents:   45000,
		AdditionalCriteriaCents: 45000,
		TotalCents:              165000,
	}
	if *quote != *want {
		t.Fatalf("quote: got %+v, want %+v", quote, want)
	}
}

func TestClient_CreateCheckoutSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/payments/checkout" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var req struct {
			SuccessURL string `json:"success_url"`
			CancelURL  string `json:"cancel_url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.SuccessURL == "" || req.CancelURL == "" {
			t.Errorf("missing redirect URLs: %+v", req)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"session_id":  "cs_test_123",
			"session_url": "https://pay.example.com/cs_test_123",
			"payment_id":  42,
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, DefaultLeadPaths(), 0)
	session, err := client.CreateCheckoutSession(context.Background(), 4, 2,
		"https://example.com/?checkout=success", "https://example.com/?checkout=cancelled")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.SessionID != "cs_test_123" || session.PaymentID != 42 {
		t.Fatalf("unexpected session: %+v", session)
	}
	if session.SessionURL != "https://pay.example.com/cs_test_123" {
		t.Fatalf("unexpected session url: %s", session.SessionURL)
	}
}

func TestClient_SubmitLead(t *testing.T) {
	tt := []struct {
		name     string
		kind     model.LeadKind
		wantPath string
	}{
		{name: "contact", kind: model.LeadKindContact, wantPath: "/api/v1/leads/contact"},
		{name: "waitlist", kind: model.LeadKindWaitlist, wantPath: "/api/v1/leads/waitlist"},
		{name: "newsletter", kind: model.LeadKindNewsletter, wantPath: "/api/v1/leads/newsletter"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			var gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.WriteHeader(http.StatusCreated)
			}))
			defer srv.Close()

			client := NewClient(srv.URL, DefaultLeadPaths(), 0)
			err := client.SubmitLead(context.Background(), &model.Lead{
				Kind:  tc.kind,
				Email: "ada@example.com",
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotPath != tc.wantPath {
				t.Fatalf("path: got %s, want %s", gotPath, tc.wantPath)
			}
		})
	}
}

func TestClient_SubmitLeadUnknownKind(t *testing.T) {
	client := NewClient("http://localhost:0", DefaultLeadPaths(), 0)
	if err := client.SubmitLead(context.Background(), &model.Lead{}); err == nil {
		t.Fatal("expected an error for an unknown lead kind")
	}
}

func TestClient_PostStatusHandling(t *testing.T) {
	tt := []struct {
		name         string
		status       int
		wantErr      bool
		wantRejected bool
	}{
		{name: "created", status: http.StatusCreated},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, wantErr: true, wantRejected: true},
		{name: "not found", status: http.StatusNotFound, wantErr: true, wantRejected: true},
		{name: "server error", status: http.StatusInternalServerError, wantErr: true},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: true},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			client := NewClient(srv.URL, DefaultLeadPaths(), 0)
			err := client.SubmitLead(context.Background(), &model.Lead{
				Kind:  model.LeadKindWaitlist,
				Email: "ada@example.com",
			})
			if tc.wantErr && err == nil {
				t.Fatal("expected an error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantRejected != errors.Is(err, ErrRejected) {
				t.Fatalf("rejected: got %v, want %v (err: %v)", errors.Is(err, ErrRejected), tc.wantRejected, err)
			}
		})
	}
}
