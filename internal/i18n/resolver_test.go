// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

package i18n

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"testing"

	"github.com/oleg-github-collab/KooKooha/internal/model"
)

type memStore struct {
	docs map[string]*model.Translation
}

func newMemStore(docs map[string]*model.Translation) *memStore {
	return &memStore{docs: docs}
}

func (m *memStore) ListLanguages(_ context.Context) ([]string, error) {
	langs := make([]string, 0, len(m.docs))
	for lang := range m.docs {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs, nil
}

func (m *memStore) ByLanguage(_ context.Context, lang string) (*model.Translation, error) {
	t, ok := m.docs[lang]
	if !ok {
		return nil, fmt.Errorf("unknown language: %s", lang)
	}
	return t, nil
}

func (m *memStore) CreateLanguage(_ context.Context, lang string, t *model.Translation) error {
	if _, ok := m.docs[lang]; ok {
		return fmt.Errorf("language exists: %s", lang)
	}
	m.docs[lang] = t
	return nil
}

func (m *memStore) UpdateLanguages(_ context.Context, ts map[string]*model.Translation) error {
	for lang, t := range ts {
		m.docs[lang] = t
	}
	return nil
}

func testStore() *memStore {
	return newMemStore(map[string]*model.Translation{
		"en": {
			Language:   "English",
			FlagImgSrc: "/static/img/flags/en.svg",
			Hero:       model.TranslationHero{Title: "See your team clearly", Subtitle: "People analytics"},
			Contact:    model.TranslationContact{Title: "Contact us", ButtonSubmit: "Send"},
		},
		"de": {
			Language:   "Deutsch",
			FlagImgSrc: "/static/img/flags/de.svg",
			Hero:       model.TranslationHero{Title: "Ihr Team klar sehen"},
		},
	})
}

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	resolver := NewResolver(testStore(), "en")

	tt := []struct {
		name         string
		tag          string
		wantTitle    string
		wantSubtitle string
		wantSubmit   string
	}{
		{
			name:         "default locale",
			tag:          "en",
			wantTitle:    "See your team clearly",
			wantSubtitle: "People analytics",
			wantSubmit:   "Send",
		},
		{
			name:         "partial locale keeps own values and fills gaps",
			tag:          "de",
			wantTitle:    "Ihr Team klar sehen",
			wantSubtitle: "People analytics",
			wantSubmit:   "Send",
		},
		{
			name:         "unknown tag falls back to default",
			tag:          "fr",
			wantTitle:    "See your team clearly",
			wantSubtitle: "People analytics",
			wantSubmit:   "Send",
		},
		{
			name:         "empty tag resolves default",
			tag:          "",
			wantTitle:    "See your team clearly",
			wantSubtitle: "People analytics",
			wantSubmit:   "Send",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolver.Resolve(ctx, tc.tag)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Hero.Title != tc.wantTitle {
				t.Fatalf("hero title: got %q, want %q", got.Hero.Title, tc.wantTitle)
			}
			if got.Hero.Subtitle != tc.wantSubtitle {
				t.Fatalf("hero subtitle: got %q, want %q", got.Hero.Subtitle, tc.wantSubtitle)
			}
			if got.Contact.ButtonSubmit != tc.wantSubmit {
				t.Fatalf("contact submit: got %q, want %q", got.Contact.ButtonSubmit, tc.wantSubmit)
			}
		})
	}
}

func TestResolver_ResolveIdempotent(t *testing.T) {
	ctx := context.Background()
	resolver := NewResolver(testStore(), "en")

	first, err := resolver.Resolve(ctx, "de")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := resolver.Resolve(ctx, "de")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("resolving the same tag twice returned different documents")
	}
}

func TestResolver_Known(t *testing.T) {
	ctx := context.Background()
	resolver := NewResolver(testStore(), "en")

	if !resolver.Known(ctx, "de") {
		t.Fatal("expected de to be known")
	}
	if resolver.Known(ctx, "fr") {
		t.Fatal("expected fr to be unknown")
	}
}

func TestResolver_Lookup(t *testing.T) {
	ctx := context.Background()
	resolver := NewResolver(testStore(), "en")

	tt := []struct {
		name   string
		tag    string
		key    string
		want   string
		wantOK bool
	}{
		{name: "own value", tag: "de", key: "hero.title", want: "Ihr Team klar sehen", wantOK: true},
		{name: "fallback value", tag: "de", key: "contact.button_submit", want: "Send", wantOK: true},
		{name: "zero value key exists", tag: "en", key: "hero.cta_primary", want: "", wantOK: true},
		{name: "unknown key", tag: "en", key: "hero.nope", wantOK: false},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, ok, err := resolver.Lookup(ctx, tc.tag, tc.key)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tc.wantOK)
			}
			if got != tc.want {
				t.Fatalf("value: got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolver_Options(t *testing.T) {
	ctx := context.Background()
	resolver := NewResolver(testStore(), "en")

	options, err := resolver.Options(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []model.LanguageOption{
		{Lang: "de", Name: "Deutsch", FlagImgSrc: "/static/img/flags/de.svg"},
		{Lang: "en", Name: "English", FlagImgSrc: "/static/img/flags/en.svg"},
	}
	if !reflect.DeepEqual(options, want) {
		t.Fatalf("options: got %+v, want %+v", options, want)
	}
}

func TestSeedDefaults(t *testing.T) {
	ctx := context.Background()
	store := newMemStore(map[string]*model.Translation{
		"en": {Language: "Custom English", Hero: model.TranslationHero{Title: "custom"}},
	})

	if err := SeedDefaults(ctx, store); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The existing document must survive seeding.
	en, err := store.ByLanguage(ctx, "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if en.Hero.Title != "custom" {
		t.Fatalf("seeding overwrote an existing locale: %q", en.Hero.Title)
	}

	langs, err := store.ListLanguages(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"de", "en", "uk"}
	if !reflect.DeepEqual(langs, want) {
		t.Fatalf("languages after seeding: got %v, want %v", langs, want)
	}
}
