package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/finsync/mailer/internal/application/informative"
	"github.com/finsync/mailer/internal/application/notification"
	"github.com/finsync/mailer/internal/application/verification"
	"github.com/finsync/mailer/internal/config"
	"github.com/finsync/mailer/internal/email"
	"github.com/finsync/mailer/internal/pkg/coalesce"
	"github.com/finsync/mailer/internal/transport/http/handler"
	appmiddleware "github.com/finsync/mailer/internal/transport/http/middleware"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var triggerMw func(http.Handler) http.Handler
	if deps.TriggerVerifier != nil {
		triggerMw = appmiddleware.TriggerAuth(deps.TriggerVerifier)
	} else {
		triggerMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10 — applied to the public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	renderer := email.NewRenderer(cfg.Year)

	// deps.Assets stays out of the dispatcher entirely when nil; assigning a
	// nil pointer into the interface field would defeat its nil checks.
	var assets notification.AssetResolver
	if deps.Assets != nil {
		assets = deps.Assets
	}

	verificationSvc := verification.NewService(verification.ServiceDeps{
		Users:    deps.UserRepo,
		Mailer:   deps.Mailer,
		Renderer: renderer,
		BaseURL:  cfg.VerificationBaseURL,
		From:     cfg.FromOnboarding,
	})
	alertSvc := notification.NewService(notification.ServiceDeps{
		Users:     deps.UserRepo,
		Mailer:    deps.Mailer,
		SMS:       deps.SMSSender,
		Assets:    assets,
		Renderer:  renderer,
		From:      cfg.FromAlerts,
		BrandLogo: coalesce.String(cfg.LogoURL, config.DefaultLogoURL),
	})
	informativeSvc := informative.NewService(informative.ServiceDeps{
		Mailer:      deps.Mailer,
		Renderer:    renderer,
		DefaultFrom: cfg.FromInfo,
		// No baked-in default here: without a configured logo the
		// informative template falls back to the wordmark.
		BrandLogo: cfg.LogoURL,
	})

	healthH := handler.NewHealthHandler()
	informativeH := handler.NewInformativeHandler(informativeSvc)
	verificationH := handler.NewVerificationHandler(verificationSvc, renderer)
	triggersH := handler.NewTriggersHandler(verificationSvc, alertSvc, deps.UserRepo, deps.NotificationRepo)

	// ── Public routes ────────────────────────────────────────────────────
	r.Route("/send_informative", func(r chi.Router) {
		r.MethodNotAllowed(informativeH.MethodNotAllowed)
		r.With(sensitiveRL.Limit).Post("/", informativeH.Send)
	})
	r.With(sensitiveRL.Limit).Get("/handle_verification_click", verificationH.Click)

	// ── Account-system webhooks ──────────────────────────────────────────
	r.Route("/triggers", func(r chi.Router) {
		r.Use(triggerMw)
		r.Post("/users/{userId}", triggersH.UserCreated)
		r.Post("/notifications/users/{userId}/{notificationId}", triggersH.NotificationCreated)
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health-check/{action}", healthH.Ping)
		r.Post("/health-check/{action}", healthH.Ping)
	})

	return r
}
