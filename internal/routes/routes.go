package routes

import (
	"net/http"
	"net/netip"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"UMS_TALENTA_BACK-END/internal/config"
	"UMS_TALENTA_BACK-END/internal/handlers"
	"UMS_TALENTA_BACK-END/internal/middleware"
	"UMS_TALENTA_BACK-END/internal/models"
)

// Handlers groups everything the router mounts
type Handlers struct {
	Auth         *handlers.AuthHandler
	Google       *handlers.GoogleAuthHandler // nil when Google sign-in is not configured
	Health       *handlers.HealthHandler
	Profile      *handlers.ProfileHandler
	MyTalent     *handlers.MyTalentHandler
	Talents      *handlers.TalentHandler
	Endorsements *handlers.EndorsementHandler
	Admin        *handlers.AdminHandler
}

// Options carries the cross-cutting dependencies of the route table
type Options struct {
	JWT            *config.JWTConfig
	RateLimit      config.RateLimitConfig
	Media          config.MediaConfig
	QueryTimeout   time.Duration
	Limiter        middleware.Counter
	Logger         *zap.Logger
	TrustedProxies []netip.Prefix // nil: forwarded headers are ignored
}

// NewRouter configures all application routes
func NewRouter(h Handlers, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP(opts.TrustedProxies))
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)

	// Health check routes
	r.Get("/healthz", h.Health.HealthCheck)
	r.Get("/livez", h.Health.LivenessCheck)
	r.Get("/readyz", h.Health.ReadinessCheck)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	if opts.Media.Root != "" {
		prefix := "/" + strings.Trim(opts.Media.URLPrefix, "/")
		r.Handle(prefix+"/*", http.StripPrefix(prefix+"/", http.FileServer(http.Dir(opts.Media.Root))))
	}

	authRequired := middleware.AuthMiddleware(opts.JWT)
	authLimit := middleware.RateLimiter(opts.Limiter, opts.RateLimit.AuthLimit, opts.RateLimit.AuthWindow,
		opts.RateLimit.AuthBlock, "ratelimit:auth", opts.Logger)

	r.Route("/api", func(r chi.Router) {
		if opts.QueryTimeout > 0 {
			r.Use(chimw.Timeout(opts.QueryTimeout))
		}

		// Authentication routes
		r.Route("/auth", func(r chi.Router) {
			r.With(authLimit).Post("/register", h.Auth.Register)
			r.With(authLimit).Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
			if h.Google != nil {
				r.Get("/google/login", h.Google.GoogleLogin)
				r.Get("/google/callback", h.Google.GoogleCallback)
			}
		})
		r.With(authRequired).Get("/me", h.Auth.Me)

		r.Route("/talents", func(r chi.Router) {
			r.Route("/me", func(r chi.Router) {
				r.Use(authRequired)

				r.Get("/profile", h.Profile.GetMe)
				r.Put("/profile", h.Profile.Update)
				r.Patch("/profile", h.Profile.Update)
				r.Post("/photo", h.Profile.UploadPhoto)

				r.Get("/skills", h.MyTalent.ListSkills)
				r.Post("/skills", h.MyTalent.CreateSkill)
				r.Get("/skills/{id}", h.MyTalent.GetSkill)
				r.Put("/skills/{id}", h.MyTalent.UpdateSkill)
				r.Patch("/skills/{id}", h.MyTalent.UpdateSkill)
				r.Delete("/skills/{id}", h.MyTalent.DeleteSkill)

				r.Get("/experiences", h.MyTalent.ListExperiences)
				r.Post("/experiences", h.MyTalent.CreateExperience)
				r.Get("/experiences/{id}", h.MyTalent.GetExperience)
				r.Put("/experiences/{id}", h.MyTalent.UpdateExperience)
				r.Patch("/experiences/{id}", h.MyTalent.UpdateExperience)
				r.Delete("/experiences/{id}", h.MyTalent.DeleteExperience)

				r.Get("/projects", h.MyTalent.ListProjects)
				r.Post("/projects", h.MyTalent.CreateProject)
				r.Get("/projects/{id}", h.MyTalent.GetProject)
				r.Put("/projects/{id}", h.MyTalent.UpdateProject)
				r.Patch("/projects/{id}", h.MyTalent.UpdateProject)
				r.Delete("/projects/{id}", h.MyTalent.DeleteProject)

				r.Get("/social-links", h.MyTalent.ListSocialLinks)
				r.Post("/social-links", h.MyTalent.CreateSocialLink)
				r.Get("/social-links/{id}", h.MyTalent.GetSocialLink)
				r.Put("/social-links/{id}", h.MyTalent.UpdateSocialLink)
				r.Patch("/social-links/{id}", h.MyTalent.UpdateSocialLink)
				r.Delete("/social-links/{id}", h.MyTalent.DeleteSocialLink)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(authRequired, middleware.RequireRole(models.RoleAdmin))
				r.Get("/talents", h.Admin.List)
				r.Post("/talents/{id}/activate", h.Admin.Activate)
				r.Post("/talents/{id}/deactivate", h.Admin.Deactivate)
				r.Delete("/talents/{id}", h.Admin.Delete)
			})

			r.Get("/public", h.Talents.List)
			r.Get("/latest", h.Talents.Latest)
			r.Get("/statistics", h.Talents.Statistics)
			r.Get("/top", h.Talents.Top)
			r.Get("/top-talents", h.Talents.Top)
			r.With(middleware.OptionalAuth(opts.JWT)).Get("/{id}", h.Talents.Detail)

			r.With(authRequired).Post("/{id}/skills/{skillID}/endorse", h.Endorsements.Endorse)
			r.Get("/{id}/skills/{skillID}/endorsements", h.Endorsements.List)
		})
	})

	r.Get("/", rootHandler)
	return r
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("UMS Talenta backend is running."))
}
