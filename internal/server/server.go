// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

package server

import (
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	"github.com/oleg-github-collab/KooKooha/internal/config"
	"github.com/oleg-github-collab/KooKooha/internal/db"
	"github.com/oleg-github-collab/KooKooha/internal/forms"
	"github.com/oleg-github-collab/KooKooha/internal/i18n"
	"github.com/oleg-github-collab/KooKooha/internal/lens"
	"github.com/oleg-github-collab/KooKooha/internal/pricing"
	"github.com/oleg-github-collab/KooKooha/internal/server/templates"
)

//go:embed all:static
var staticFS embed.FS

func NewServer(
	cfg *config.Config,
	tStore db.TranslationStore,
	lStore db.LeadStore,
) *Server {
	client := lens.NewClient(
		cfg.Lens.BaseURL,
		cfg.Lens.Leads,
		time.Duration(cfg.Lens.TimeoutSeconds)*time.Second,
	)

	var quoter templates.Quoter = localQuoter{calc: pricing.NewCalculator(cfg.Pricing.Config)}
	if cfg.Pricing.Authority == config.PricingAuthorityBackend {
		quoter = backendQuoter{client: client}
	}

	return &Server{
		logger: slog.Default().WithGroup("http"),
		cfg:    cfg,
		tStore: tStore,
		lStore: lStore,
		client: client,
		quoter: quoter,
		// The dispatcher tracks in-flight attempts per form kind and
		// must outlive individual requests.
		dispatcher: forms.NewDispatcher(client, lStore),
		resolver:   i18n.NewResolver(tStore, cfg.I18n.DefaultLocale),
	}
}

type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	tStore     db.TranslationStore
	lStore     db.LeadStore
	client     *lens.Client
	quoter     templates.Quoter
	dispatcher *forms.Dispatcher
	resolver   *i18n.Resolver
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	mux := gin.New()
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	middlewares := []gin.HandlerFunc{
		sloggin.NewWithConfig(s.logger,
			sloggin.Config{
				DefaultLevel:     slog.LevelInfo,
				ClientErrorLevel: slog.LevelWarn,
				ServerErrorLevel: slog.LevelError,
			},
		),
		gin.Recovery(), otelgin.Middleware(s.cfg.Server.ServiceName), slogAddTraceAttributes,
	}

	adminArea := mux.Group("/admin")
	adminArea.Use(append(middlewares, gin.BasicAuth(gin.Accounts{
		s.cfg.Admin.Username: s.cfg.Admin.Password,
	}))...)

	var staticDir fs.FS
	var err error
	switch {
	case s.cfg.Server.StaticDir != "":
		staticDir = os.DirFS(s.cfg.Server.StaticDir)
	default:
		staticDir, err = fs.Sub(staticFS, "static")
		if err != nil {
			panic(err)
		}
	}

	mux.StaticFS("/static", http.FS(fs.FS(staticDir)))
	mux.Use(middlewares...)

	pageHandler := templates.NewPageHandler(s.resolver, s.quoter, s.client, s.dispatcher)
	mux.GET("/", pageHandler.RenderLanding)
	mux.GET("/lang/:tag", pageHandler.SwitchLanguage)
	mux.GET("/pricing/quote", pageHandler.Quote)
	mux.POST("/pricing/checkout", pageHandler.Checkout)
	mux.POST("/forms/:kind", pageHandler.Submit)

	mux.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	adminHandler := templates.NewAdminHandler(s.resolver, s.lStore)
	adminArea.GET("/", adminHandler.RenderAdminOverview)

	translations := templates.NewTranslationHandler(s.tStore)
	adminArea.POST("/translations", translations.UpdateLanguage)

	mux.NoRoute(notFound)

	mux.ServeHTTP(w, r)
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"code": "PAGE_NOT_FOUND", "message": "Page not found"})
}

func slogAddTraceAttributes(c *gin.Context) {
	sloggin.AddCustomAttributes(c,
		slog.String("trace-id", trace.SpanFromContext(c.Request.Context()).SpanContext().TraceID().String()),
	)
	sloggin.AddCustomAttributes(c,
		slog.String("span-id", trace.SpanFromContext(c.Request.Context()).SpanContext().SpanID().String()),
	)
	c.Next()
}
