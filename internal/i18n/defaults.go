// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

package i18n

import (
	"context"

	"github.com/oleg-github-collab/KooKooha/internal/db"
	"github.com/oleg-github-collab/KooKooha/internal/model"
)

// Defaults returns the built-in locale documents. English is complete,
// German and Ukrainian are intentionally partial and rely on the
// resolver's fallback chain.
func Defaults() map[string]*model.Translation {
	return map[string]*model.Translation{
		"en": {
			Language:   "English",
			FlagImgSrc: "/static/img/flags/en.svg",
			Navigation: model.TranslationNavigation{
				About:      "About",
				HowItWorks: "How it works",
				Pricing:    "Pricing",
				Contact:    "Contact",
			},
			Hero: model.TranslationHero{
				Title:        "See your organization through a human lens",
				Subtitle:     "Anonymous team surveys, honest analytics and clear actions for healthier companies.",
				CTAPrimary:   "Get started",
				CTASecondary: "Learn more",
			},
			Pricing: model.TranslationPricing{
				Title:                   "Simple pricing",
				Subtitle:                "One base package, pay only for what grows with you.",
				LabelTeamSize:           "Team size",
				LabelCriteria:           "Survey criteria",
				LabelBasePackage:        "Base package",
				LabelAdditionalPeople:   "Additional people",
				LabelAdditionalCriteria: "Additional criteria",
				LabelTotal:              "Total",
				ButtonCheckout:          "Secure checkout",
			},
			Contact: model.TranslationContact{
				Title:              "Talk to us",
				LabelInputName:     "Name",
				LabelInputEmail:    "Email",
				LabelInputCompany:  "Company",
				LabelInputMessage:  "Message",
				PlaceholderName:    "Jane Doe",
				PlaceholderEmail:   "jane@example.com",
				PlaceholderMessage: "Tell us about your team",
				ButtonSubmit:       "Send message",
				MessageSuccess:     "Thanks! We will get back to you shortly.",
			},
			Waitlist: model.TranslationWaitlist{
				Title:            "Join the waitlist",
				PlaceholderEmail: "you@company.com",
				ButtonJoin:       "Join",
				MessageSuccess:   "You are on the list!",
			},
			Newsletter: model.TranslationNewsletter{
				Title:            "Stay in the loop",
				PlaceholderEmail: "you@company.com",
				ButtonSubscribe:  "Subscribe",
				MessageSuccess:   "Subscribed. Welcome aboard!",
			},
			Footer: model.TranslationFooter{
				Tagline: "People analytics with a human touch.",
				Imprint: "Imprint",
				Privacy: "Privacy",
			},
			Error: model.TranslationError{
				Title:      "Something went wrong",
				Validation: "Please check the highlighted fields.",
				Process:    "We could not process your request. Please try again.",
			},
			Success: model.TranslationSuccess{
				Title: "Success",
			},
		},
		"de": {
			Language:   "Deutsch",
			FlagImgSrc: "/static/img/flags/de.svg",
			Navigation: model.TranslationNavigation{
				About:      "Über uns",
				HowItWorks: "So funktioniert es",
				Pricing:    "Preise",
				Contact:    "Kontakt",
			},
			Hero: model.TranslationHero{
				Title:      "Ihre Organisation durch eine menschliche Linse",
				Subtitle:   "Anonyme Team-Umfragen, ehrliche Analysen und klare Maßnahmen für gesündere Unternehmen.",
				CTAPrimary: "Jetzt starten",
			},
			Pricing: model.TranslationPricing{
				Title:                   "Transparente Preise",
				LabelTeamSize:           "Teamgröße",
				LabelCriteria:           "Umfragekriterien",
				LabelBasePackage:        "Basispaket",
				LabelAdditionalPeople:   "Zusätzliche Personen",
				LabelAdditionalCriteria: "Zusätzliche Kriterien",
				LabelTotal:              "Gesamt",
				ButtonCheckout:          "Zur Kasse",
			},
			Contact: model.TranslationContact{
				Title:             "Sprechen Sie mit uns",
				LabelInputName:    "Name",
				LabelInputEmail:   "E-Mail",
				LabelInputCompany: "Unternehmen",
				LabelInputMessage: "Nachricht",
				ButtonSubmit:      "Nachricht senden",
				MessageSuccess:    "Danke! Wir melden uns in Kürze.",
			},
			Waitlist: model.TranslationWaitlist{
				Title:          "Auf die Warteliste",
				ButtonJoin:     "Eintragen",
				MessageSuccess: "Sie stehen auf der Liste!",
			},
			Error: model.TranslationError{
				Validation: "Bitte überprüfen Sie die markierten Felder.",
				Process:    "Ihre Anfrage konnte nicht verarbeitet werden. Bitte versuchen Sie es erneut.",
			},
			Success: model.TranslationSuccess{
				Title: "Erfolg",
			},
		},
		"uk": {
			Language:   "Українська",
			FlagImgSrc: "/static/img/flags/uk.svg",
			Navigation: model.TranslationNavigation{
				About:      "Про нас",
				HowItWorks: "Як це працює",
				Pricing:    "Ціни",
				Contact:    "Контакти",
			},
			Hero: model.TranslationHero{
				Title:      "Погляньте на свою організацію крізь людську лінзу",
				Subtitle:   "Анонімні опитування команд, чесна аналітика та зрозумілі дії для здорових компаній.",
				CTAPrimary: "Почати",
			},
			Pricing: model.TranslationPricing{
				Title:            "Прості ціни",
				LabelTeamSize:    "Розмір команди",
				LabelCriteria:    "Критерії опитування",
				LabelBasePackage: "Базовий пакет",
				LabelTotal:       "Разом",
				ButtonCheckout:   "Оплатити",
			},
			Contact: model.TranslationContact{
				Title:          "Звʼяжіться з нами",
				ButtonSubmit:   "Надіслати",
				MessageSuccess: "Дякуємо! Ми скоро звʼяжемося з вами.",
			},
			Error: model.TranslationError{
				Validation: "Будь ласка, перевірте виділені поля.",
				Process:    "Не вдалося обробити запит. Спробуйте ще раз.",
			},
		},
	}
}

// SeedDefaults writes the built-in documents for every language the
// store does not know yet. Existing documents are left untouched.
func SeedDefaults(ctx context.Context, store db.TranslationStore) error {
	known, err := store.ListLanguages(ctx)
	if err != nil {
		return err
	}
	exists := make(map[string]bool, len(known))
	for _, lang := range known {
		exists[lang] = true
	}
	for lang, translation := range Defaults() {
		if exists[lang] {
			continue
		}
		if err := store.CreateLanguage(ctx, lang, translation); err != nil {
			return err
		}
	}
	return nil
}
