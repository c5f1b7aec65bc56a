package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"stonebranch/internal/config"
	"stonebranch/internal/contact"
	"stonebranch/internal/handlers"
	"stonebranch/internal/insights"
	"stonebranch/internal/mailer"
	"stonebranch/internal/middleware"
	sentryutil "stonebranch/internal/sentry"
	"stonebranch/internal/turnstile"
)

func main() {
	// Load configuration from .env and environment variables
	config.Load()

	// Initialize Sentry (non-blocking if SENTRY_DSN is empty)
	sentryutil.Init()
	defer sentryutil.Flush()

	// Load insights articles. The site runs fine without them, so a load
	// failure is only reported, not fatal.
	if err := insights.LoadAll(config.Cfg.InsightsDir); err != nil {
		log.Printf("insights: %v", err)
		sentryutil.CaptureMessage("insights failed to load: "+err.Error(), sentryutil.LevelWarning(), nil)
	}

	// Contact submission pipeline. A missing secret or API key leaves the
	// corresponding dependency nil; the service reports misconfiguration
	// instead of calling out.
	svc := &contact.Service{
		To:      config.Cfg.ContactToEmail,
		From:    config.Cfg.ContactFromEmail,
		ReplyTo: config.Cfg.ContactReplyTo,
	}
	if config.Cfg.TurnstileSecretKey != "" {
		svc.Verifier = turnstile.NewVerifier(config.Cfg.TurnstileSecretKey)
	}
	if config.Cfg.ResendAPIKey != "" {
		svc.Mail = mailer.NewClient(config.Cfg.ResendAPIKey)
	}
	contactAPI := handlers.NewContactAPI(svc)

	// Rate limiter from config
	limiter := handlers.NewRateLimiter(
		config.Cfg.RateLimitRPS,
		config.Cfg.RateLimitBurst,
		time.Second,
	)

	mux := http.NewServeMux()

	// API routes
	mux.HandleFunc("/api/contact", contactAPI.Handle)
	mux.HandleFunc("/api/health", handlers.HealthHandler)

	// Pages
	mux.HandleFunc("/about", handlers.AboutHandler)
	mux.HandleFunc("/ventures", handlers.VenturesHandler)
	mux.HandleFunc("/automation", handlers.AutomationHandler)
	mux.HandleFunc("/automation/overview.pdf", handlers.OverviewPDFHandler)
	mux.HandleFunc("/automation-examples", handlers.AutomationExamplesHandler)
	mux.HandleFunc("/contact", handlers.ContactPageHandler)
	mux.HandleFunc("/insights", handlers.InsightsListHandler)
	mux.HandleFunc("/insights/", handlers.InsightsArticleHandler)

	// SEO routes
	mux.HandleFunc("/sitemap.xml", handlers.SitemapHandler)
	mux.HandleFunc("/robots.txt", handlers.RobotsTxtHandler)

	// Static assets; everything else under / is the home page or a 404
	fs := http.FileServer(http.Dir("static"))
	mux.Handle("/static/", http.StripPrefix("/static/", fs))
	mux.HandleFunc("/", handlers.HomeHandler)

	// Wrap with middleware: Recovery → SecurityHeaders → Gzip (if enabled) → Rate Limiter
	var handler http.Handler = limiter.Middleware(mux)
	if config.Cfg.GzipEnabled {
		handler = middleware.Gzip(handler)
	}
	handler = middleware.SecurityHeaders(handler)
	handler = middleware.Recovery(handler)

	fmt.Printf("Stonebranch running on http://localhost:%s\n", config.Cfg.Port)
	log.Fatal(http.ListenAndServe(":"+config.Cfg.Port, handler))
}
