// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type LeadKind int

const (
	LeadKindUnknown LeadKind = iota
	LeadKindContact
	LeadKindWaitlist
	LeadKindNewsletter
)

func (k LeadKind) String() string {
	switch k {
	case LeadKindContact:
		return "contact"
	case LeadKindWaitlist:
		return "waitlist"
	case LeadKindNewsletter:
		return "newsletter"
	}
	return "unknown"
}

// ParseLeadKind maps a route segment to a LeadKind.
func ParseLeadKind(s string) (LeadKind, error) {
	switch s {
	case "contact":
		return LeadKindContact, nil
	case "waitlist":
		return LeadKindWaitlist, nil
	case "newsletter":
		return LeadKindNewsletter, nil
	}
	return LeadKindUnknown, fmt.Errorf("unknown lead kind %q", s)
}

// Lead is a successfully relayed form submission, kept for the admin
// overview. Failed or superseded attempts are never stored.
type Lead struct {
	ID        uuid.UUID  `json:"id" form:"-"`
	Kind      LeadKind   `json:"kind" form:"-"`
	CreatedAt *time.Time `json:"created_at" form:"-"`
	Name      string     `json:"name" form:"name"`
	Email     string     `json:"email" form:"email"`
	Company   string     `json:"company" form:"company"`
	Message   string     `json:"message" form:"message"`
	Locale    string     `json:"locale" form:"-"`
}
