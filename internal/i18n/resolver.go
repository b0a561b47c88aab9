// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

// Package i18n resolves locale documents from the translation store.
// Locales may be partial, lookups fall back per key: requested locale,
// then the default locale, then the zero value.
package i18n

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jeremywohl/flatten/v2"
	"go.opentelemetry.io/otel/trace"

	"github.com/oleg-github-collab/KooKooha/internal/db"
	"github.com/oleg-github-collab/KooKooha/internal/model"
)

const DefaultLanguage = "en"

func NewResolver(store db.TranslationStore, defaultTag string) *Resolver {
	if defaultTag == "" {
		defaultTag = DefaultLanguage
	}
	return &Resolver{store: store, defaultTag: defaultTag}
}

type Resolver struct {
	store      db.TranslationStore
	defaultTag string
}

// DefaultTag returns the tag of the fallback locale.
func (r *Resolver) DefaultTag() string {
	return r.defaultTag
}

// Known reports whether the store has a document for the given tag.
func (r *Resolver) Known(ctx context.Context, tag string) bool {
	_, err := r.store.ByLanguage(ctx, tag)
	return err == nil
}

func (r *Resolver) Languages(ctx context.Context) ([]string, error) {
	return r.store.ListLanguages(ctx)
}

// Options lists the selectable languages for the language switcher.
func (r *Resolver) Options(ctx context.Context) ([]model.LanguageOption, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Resolver.Options")
	defer span.End()

	langs, err := r.store.ListLanguages(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]model.LanguageOption, 0, len(langs))
	for _, lang := range langs {
		translation, err := r.store.ByLanguage(ctx, lang)
		if err != nil {
			span.RecordError(err)
			continue
		}
		options = append(options, model.LanguageOption{
			Lang:       lang,
			Name:       translation.Language,
			FlagImgSrc: translation.FlagImgSrc,
		})
	}
	return options, nil
}

// Resolve returns a complete translation document for the given tag.
// Fields missing from a partial locale are filled from the default
// locale. An unknown tag resolves to the default document, so rendering
// never fails on a bad language cookie.
func (r *Resolver) Resolve(ctx context.Context, tag string) (*model.Translation, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Resolver.Resolve")
	defer span.End()

	base, err := r.store.ByLanguage(ctx, r.defaultTag)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("default locale %q: %w", r.defaultTag, err)
	}
	if tag == "" || tag == r.defaultTag {
		return base, nil
	}

	requested, err := r.store.ByLanguage(ctx, tag)
	if err != nil {
		span.AddEvent("unknown locale, falling back to default")
		return base, nil
	}

	merged, err := overlay(base, requested)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("overlay locale %q: %w", tag, err)
	}
	return merged, nil
}

// Lookup returns the localized string for a dotted key, walking the
// fallback chain. The second return reports whether the key exists in
// the default locale at all.
func (r *Resolver) Lookup(ctx context.Context, tag, key string) (string, bool, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Resolver.Lookup")
	defer span.End()

	translation, err := r.Resolve(ctx, tag)
	if err != nil {
		return "", false, err
	}
	flat, err := flattenTranslation(translation)
	if err != nil {
		span.RecordError(err)
		return "", false, err
	}
	val, ok := flat[key]
	return val, ok, nil
}

// Flatten returns every locale as a dotted-key map, used by the admin
// translations table.
func (r *Resolver) Flatten(ctx context.Context) (map[string]map[string]string, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Resolver.Flatten")
	defer span.End()

	langs, err := r.store.ListLanguages(ctx)
	if err != nil {
		return nil, err
	}
	translations := make(map[string]map[string]string, len(langs))
	for _, lang := range langs {
		translation, err := r.store.ByLanguage(ctx, lang)
		if err != nil {
			span.RecordError(err)
			continue
		}
		flat, err := flattenTranslation(translation)
		if err != nil {
			span.RecordError(err)
			continue
		}
		translations[lang] = flat
	}
	return translations, nil
}

func flattenTranslation(t *model.Translation) (map[string]string, error) {
	out, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	flattened, err := flatten.FlattenString(string(out), "", flatten.DotStyle)
	if err != nil {
		return nil, err
	}
	result := make(map[string]string)
	if err := json.Unmarshal([]byte(flattened), &result); err != nil {
		return nil, err
	}
	return result, nil
}

// overlay lays the requested document over the base document. Empty
// strings in the overlay keep the base value.
func overlay(base, over *model.Translation) (*model.Translation, error) {
	baseMap, err := toMap(base)
	if err != nil {
		return nil, err
	}
	overMap, err := toMap(over)
	if err != nil {
		return nil, err
	}
	mergeMaps(baseMap, overMap)

	raw, err := json.Marshal(baseMap)
	if err != nil {
		return nil, err
	}
	merged := &model.Translation{}
	if err := json.Unmarshal(raw, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

func toMap(t *model.Translation) (map[string]any, error) {
	raw, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	m := make(map[string]any)
	return m, json.Unmarshal(raw, &m)
}

func mergeMaps(dst, src map[string]any) {
	for key, val := range src {
		switch v := val.(type) {
		case map[string]any:
			if sub, ok := dst[key].(map[string]any); ok {
				mergeMaps(sub, v)
				continue
			}
			dst[key] = v
		case string:
			if v != "" {
				dst[key] = v
			}
		default:
			if val != nil {
				dst[key] = val
			}
		}
	}
}
