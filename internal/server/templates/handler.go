package templates

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/oleg-github-collab/KooKooha/internal/forms"
	"github.com/oleg-github-collab/KooKooha/internal/i18n"
	"github.com/oleg-github-collab/KooKooha/internal/lens"
	"github.com/oleg-github-collab/KooKooha/internal/model"
	"github.com/oleg-github-collab/KooKooha/internal/parser/form"
)

//go:embed *.html
var templates embed.FS

// LangCookie is the single persisted piece of client state, the
// selected locale tag.
const LangCookie = "kookooha_lang"

const cookieMaxAge = 365 * 24 * 60 * 60

// Quoter computes a price breakdown for a selection. The local
// implementation uses configured constants, the backend one asks the
// Human Lens API.
type Quoter interface {
	Quote(ctx context.Context, peopleCount, criteriaCount int) (model.PriceQuote, error)
}

// Checkouter creates a checkout session and returns the redirect URL.
type Checkouter interface {
	CreateCheckoutSession(ctx context.Context, peopleCount, criteriaCount int, successURL, cancelURL string) (*lens.CheckoutSession, error)
}

func NewPageHandler(
	resolver *i18n.Resolver,
	quoter Quoter,
	checkout Checkouter,
	dispatcher *forms.Dispatcher,
) *PageHandler {
	coreTemplates := []string{"main.html", "footer.html", "main.style.html"}
	landingTemplates := []string{
		"nav.html",
		"hero.html",
		"pricing.html",
		"pricing.quote.html",
		"contact.html",
		"waitlist.html",
		"newsletter.html",
		"language-select.html",
	}

	return &PageHandler{
		tmplLanding: template.Must(template.ParseFS(templates, append(coreTemplates, landingTemplates...)...)),
		resolver:    resolver,
		quoter:      quoter,
		checkout:    checkout,
		dispatcher:  dispatcher,
		logger:      slog.Default().WithGroup("http"),
	}
}

type PageHandler struct {
	tmplLanding *template.Template
	resolver    *i18n.Resolver
	quoter      Quoter
	checkout    Checkouter
	dispatcher  *forms.Dispatcher
	logger      *slog.Logger
}

// locale picks the request locale: explicit query beats the cookie,
// the cookie beats the default.
func (p *PageHandler) locale(c *gin.Context) string {
	if lang := c.Query("lang"); lang != "" {
		return lang
	}
	if lang, err := c.Cookie(LangCookie); err == nil && lang != "" {
		return lang
	}
	return p.resolver.DefaultTag()
}

func (p *PageHandler) RenderLanding(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "PageHandler.RenderLanding")
	defer span.End()

	lang := p.locale(c)
	translation, err := p.resolver.Resolve(ctx, lang)
	if err != nil {
		span.RecordError(err)
		p.logger.ErrorContext(ctx, "could not resolve locale", "lang", lang, "error", err)
		c.String(http.StatusInternalServerError, "could not resolve locale")
		return
	}

	people := intQuery(c, "people", 4)
	criteria := intQuery(c, "criteria", 2)
	quote, err := p.quoter.Quote(ctx, people, criteria)
	if err != nil {
		span.RecordError(err)
		p.logger.ErrorContext(ctx, "could not compute quote", "error", err)
		c.String(http.StatusInternalServerError, "could not compute quote")
		return
	}

	languageOptions, err := p.resolver.Options(ctx)
	if err != nil {
		span.RecordError(err)
		p.logger.ErrorContext(ctx, "could not list languages", "error", err)
		c.String(http.StatusInternalServerError, "could not list languages")
		return
	}

	err = p.tmplLanding.Execute(c.Writer, gin.H{
		"lang":            lang,
		"translation":     translation,
		"quote":           quote,
		"languageOptions": languageOptions,
	})
	if err != nil {
		span.RecordError(err)
		p.logger.ErrorContext(ctx, "unable to execute landing template", "error", err)
	}
}

// SwitchLanguage persists the chosen locale and sends the visitor back.
// An unknown tag is a silent no-op, the current locale survives.
func (p *PageHandler) SwitchLanguage(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "PageHandler.SwitchLanguage")
	defer span.End()

	tag := c.Param("tag")
	if p.resolver.Known(ctx, tag) {
		c.SetCookie(LangCookie, tag, cookieMaxAge, "/", "", false, true)
	} else {
		span.AddEvent("unknown locale, keeping current")
		p.logger.WarnContext(ctx, "unknown locale requested", "lang", tag)
	}

	target := "/"
	if ref := c.Request.Referer(); ref != "" {
		if u, err := url.Parse(ref); err == nil && u.Path != "" {
			target = u.Path
		}
	}
	c.Redirect(http.StatusSeeOther, target)
}

// Quote recomputes the price breakdown for the slider values. htmx
// requests get the fragment, everyone else gets JSON.
func (p *PageHandler) Quote(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "PageHandler.Quote")
	defer span.End()

	people := intQuery(c, "people", 4)
	criteria := intQuery(c, "criteria", 2)
	quote, err := p.quoter.Quote(ctx, people, criteria)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		p.logger.ErrorContext(ctx, "could not compute quote", "error", err)
		c.String(http.StatusBadGateway, "could not compute quote")
		return
	}

	if c.Request.Header.Get("Hx-Request") != "true" {
		c.JSON(http.StatusOK, quote)
		return
	}

	translation, err := p.resolver.Resolve(ctx, p.locale(c))
	if err != nil {
		span.RecordError(err)
		c.String(http.StatusInternalServerError, "could not resolve locale")
		return
	}
	p.renderFragment(ctx, c, "pricing.quote.html", "PRICING_QUOTE", gin.H{
		"translation": translation,
		"quote":       quote,
	})
}

// Submit drives one form through the submission state machine and
// answers with a localized toast fragment.
func (p *PageHandler) Submit(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "PageHandler.Submit")
	defer span.End()

	kind, err := model.ParseLeadKind(c.Param("kind"))
	if err != nil {
		span.RecordError(err)
		c.String(http.StatusNotFound, "unknown form")
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		span.RecordError(err)
		p.logger.ErrorContext(ctx, "could not parse form", "error", err)
		c.String(http.StatusBadRequest, "could not parse form")
		return
	}

	sub, err := parseSubmission(kind, c.Request.PostForm)
	if err != nil {
		span.RecordError(err)
		p.logger.ErrorContext(ctx, "could not parse submission", "form", kind.String(), "error", err)
		c.String(http.StatusBadRequest, "could not parse submission")
		return
	}

	lang := p.locale(c)
	translation, err := p.resolver.Resolve(ctx, lang)
	if err != nil {
		span.RecordError(err)
		c.String(http.StatusInternalServerError, "could not resolve locale")
		return
	}

	result := p.dispatcher.Submit(ctx, lang, sub)
	switch {
	case result.State == forms.StateInvalid:
		c.Status(http.StatusUnprocessableEntity)
		p.renderFragment(ctx, c, "toast.error.html", "TOAST_ERROR", gin.H{
			"Title":       translation.Error.Title,
			"Message":     translation.Error.Validation,
			"FieldErrors": result.FieldErrors,
		})
	case result.Outcome == forms.OutcomeCancelled:
		// Superseded by a newer attempt, that one answers the visitor.
		c.Status(http.StatusNoContent)
	case result.Outcome == forms.OutcomeFailure:
		c.Status(http.StatusBadGateway)
		p.renderFragment(ctx, c, "toast.error.html", "TOAST_ERROR", gin.H{
			"Title":   translation.Error.Title,
			"Message": translation.Error.Process,
		})
	default:
		c.Status(http.StatusOK)
		p.renderFragment(ctx, c, "toast.success.html", "TOAST_SUCCESS", gin.H{
			"Title":   translation.Success.Title,
			"Message": successMessage(kind, translation),
		})
	}
}

// Checkout creates a checkout session at the backend and redirects the
// visitor to the returned payment page.
func (p *PageHandler) Checkout(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "PageHandler.Checkout")
	defer span.End()

	if err := c.Request.ParseForm(); err != nil {
		span.RecordError(err)
		c.String(http.StatusBadRequest, "could not parse form")
		return
	}
	people := intForm(c, "people", 4)
	criteria := intForm(c, "criteria", 2)

	base := baseURL(c)
	session, err := p.checkout.CreateCheckoutSession(ctx, people, criteria,
		base+"/?checkout=success", base+"/?checkout=cancelled")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		p.logger.ErrorContext(ctx, "could not create checkout session", "error", err)

		translation, tErr := p.resolver.Resolve(ctx, p.locale(c))
		if tErr != nil {
			c.String(http.StatusBadGateway, "could not create checkout session")
			return
		}
		status := http.StatusBadGateway
		if errors.Is(err, lens.ErrRejected) {
			status = http.StatusBadRequest
		}
		c.Status(status)
		p.renderFragment(ctx, c, "toast.error.html", "TOAST_ERROR", gin.H{
			"Title":   translation.Error.Title,
			"Message": translation.Error.Process,
		})
		return
	}

	c.Redirect(http.StatusSeeOther, session.SessionURL)
}

func (p *PageHandler) renderFragment(ctx context.Context, c *gin.Context, file, name string, data gin.H) {
	wrapperTemplate, _ := template.New("wrapper").Parse(fmt.Sprintf("{{ template %q .}}", name))
	t, err := wrapperTemplate.ParseFS(templates, file)
	if err != nil {
		p.logger.ErrorContext(ctx, "unable to parse fragment template", "file", file, "error", err)
		return
	}
	if err := t.Execute(c.Writer, data); err != nil {
		p.logger.ErrorContext(ctx, "unable to execute fragment template", "file", file, "error", err)
	}
}

func parseSubmission(kind model.LeadKind, values url.Values) (forms.Submission, error) {
	switch kind {
	case model.LeadKindContact:
		var sub forms.ContactSubmission
		if err := form.Unmarshal(values, &sub); err != nil {
			return nil, err
		}
		return sub, nil
	case model.LeadKindWaitlist:
		var sub forms.WaitlistSubmission
		if err := form.Unmarshal(values, &sub); err != nil {
			return nil, err
		}
		return sub, nil
	case model.LeadKindNewsletter:
		var sub forms.NewsletterSubmission
		if err := form.Unmarshal(values, &sub); err != nil {
			return nil, err
		}
		return sub, nil
	}
	return nil, fmt.Errorf("unknown lead kind %q", kind)
}

func successMessage(kind model.LeadKind, t *model.Translation) string {
	switch kind {
	case model.LeadKindWaitlist:
		return t.Waitlist.MessageSuccess
	case model.LeadKindNewsletter:
		return t.Newsletter.MessageSuccess
	}
	return t.Contact.MessageSuccess
}

func intQuery(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return v
}

func intForm(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.PostForm(key))
	if err != nil {
		return fallback
	}
	return v
}

func baseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || strings.EqualFold(c.Request.Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
