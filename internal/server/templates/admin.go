// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

package templates

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/oleg-github-collab/KooKooha/internal/db"
	"github.com/oleg-github-collab/KooKooha/internal/i18n"
	"github.com/oleg-github-collab/KooKooha/internal/model"
	"github.com/oleg-github-collab/KooKooha/internal/parser/form"
)

func NewAdminHandler(resolver *i18n.Resolver, lStore db.LeadStore) *AdminHandler {
	coreTemplates := []string{"main.style.html"}
	adminTemplates := []string{
		"admin.html",
		"admin.translations.html",
		"admin.leads.html",
	}

	return &AdminHandler{
		tmplAdmin: template.Must(template.ParseFS(templates, append(adminTemplates, coreTemplates...)...)),
		resolver:  resolver,
		lStore:    lStore,
		logger:    slog.Default().WithGroup("http"),
	}
}

type AdminHandler struct {
	tmplAdmin *template.Template
	resolver  *i18n.Resolver
	lStore    db.LeadStore
	logger    *slog.Logger
}

func (a *AdminHandler) RenderAdminOverview(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "AdminHandler.RenderAdminOverview")
	defer span.End()

	translations, err := a.resolver.Flatten(ctx)
	if err != nil {
		span.RecordError(err)
		a.logger.ErrorContext(ctx, "could not flatten translations", "error", err)
		c.String(http.StatusInternalServerError, "could not flatten translations")
		return
	}

	leads, err := a.lStore.ListLeads(ctx)
	if err != nil {
		span.RecordError(err)
		a.logger.ErrorContext(ctx, "could not list leads", "error", err)
		c.String(http.StatusInternalServerError, "could not list leads")
		return
	}

	status := struct {
		Total      int
		Contact    int
		Waitlist   int
		Newsletter int
	}{}
	for _, lead := range leads {
		status.Total++
		switch lead.Kind {
		case model.LeadKindContact:
			status.Contact++
		case model.LeadKindWaitlist:
			status.Waitlist++
		case model.LeadKindNewsletter:
			status.Newsletter++
		}
	}

	err = a.tmplAdmin.Execute(c.Writer, gin.H{
		"translations": translations,
		"leads":        leads,
		"status":       status,
	})
	if err != nil {
		span.RecordError(err)
		a.logger.ErrorContext(ctx, "unable to execute admin template", "error", err)
	}
}

type TranslationHandler struct {
	tStore db.TranslationStore
}

func NewTranslationHandler(tStore db.TranslationStore) *TranslationHandler {
	return &TranslationHandler{tStore: tStore}
}

// UpdateLanguage takes the admin translations form, keys shaped as
// <lang>.<dotted-field>, and writes the updated documents back.
func (t *TranslationHandler) UpdateLanguage(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "TranslationHandler.UpdateLanguage")
	defer span.End()

	if err := c.Request.ParseForm(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	span.AddEvent("Read form entries", trace.WithAttributes(attribute.Int("count", len(c.Request.Form))))

	translationFormByLanguage := map[string]url.Values{}
	for key, value := range c.Request.Form {
		language, field, ok := strings.Cut(key, ".")
		if !ok {
			err := fmt.Errorf("%q is not a valid key for updating language translations, expecting <lang>.<field>", key)
			span.RecordError(err)
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		if _, err := t.tStore.ByLanguage(ctx, language); err != nil {
			err := fmt.Errorf("cannot find language %q: %w", language, err)
			span.RecordError(err)
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		translation, ok := translationFormByLanguage[language]
		if !ok {
			translation = make(url.Values)
		}
		translation[field] = value
		translationFormByLanguage[language] = translation
	}

	translations := map[string]*model.Translation{}
	for language, translationForm := range translationFormByLanguage {
		var tr model.Translation
		if err := form.Unmarshal(translationForm, &tr); err != nil {
			err := fmt.Errorf("unmarshal translation from form for language %q: %w", language, err)
			span.RecordError(err)
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		translations[language] = &tr
	}

	if err := t.tStore.UpdateLanguages(ctx, translations); err != nil {
		err := fmt.Errorf("update languages in store: %w", err)
		span.RecordError(err)
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
