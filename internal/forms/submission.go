// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

// Package forms validates and relays the landing page forms. Every
// submission runs through the same state machine:
//
//	Idle -> Validating -> Invalid            (field errors, nothing sent)
//	Idle -> Validating -> Submitting -> Settled (success or failure)
//
// A new attempt for the same form supersedes a pending one.
package forms

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/oleg-github-collab/KooKooha/internal/model"
)

// Submission is one parsed form payload.
type Submission interface {
	Kind() model.LeadKind
	Validate() error
	Lead(locale string) *model.Lead
}

type ContactSubmission struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Company string `json:"company" form:"company"`
	Message string `json:"message" form:"message"`
}

func (s ContactSubmission) Kind() model.LeadKind { return model.LeadKindContact }

func (s ContactSubmission) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.Email, validation.Required, is.Email),
		validation.Field(&s.Message, validation.Required),
	)
}

func (s ContactSubmission) Lead(locale string) *model.Lead {
	return &model.Lead{
		Kind:    model.LeadKindContact,
		Name:    s.Name,
		Email:   s.Email,
		Company: s.Company,
		Message: s.Message,
		Locale:  locale,
	}
}

type WaitlistSubmission struct {
	Email string `json:"email" form:"email"`
}

func (s WaitlistSubmission) Kind() model.LeadKind { return model.LeadKindWaitlist }

func (s WaitlistSubmission) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Email, validation.Required, is.Email),
	)
}

func (s WaitlistSubmission) Lead(locale string) *model.Lead {
	return &model.Lead{
		Kind:   model.LeadKindWaitlist,
		Email:  s.Email,
		Locale: locale,
	}
}

type NewsletterSubmission struct {
	Email string `json:"email" form:"email"`
}

func (s NewsletterSubmission) Kind() model.LeadKind { return model.LeadKindNewsletter }

func (s NewsletterSubmission) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Email, validation.Required, is.Email),
	)
}

func (s NewsletterSubmission) Lead(locale string) *model.Lead {
	return &model.Lead{
		Kind:   model.LeadKindNewsletter,
		Email:  s.Email,
		Locale: locale,
	}
}
