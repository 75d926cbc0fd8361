package router

import (
	"net/http"
	"time"

	"pet-health-dashboard/internal/dashboard"
	"pet-health-dashboard/internal/domain/health"
	"pet-health-dashboard/internal/middleware"
	"pet-health-dashboard/internal/platform/logger"
	"pet-health-dashboard/internal/platform/observability"

	_ "pet-health-dashboard/docs" // registra la definición swagger

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si no viene, stub en memoria sembrado con StubSeed.
	Backend  *dashboard.Backend
	StubSeed uint64

	Alerts      health.GeneratorConfig
	CORSOrigins []string

	Logger  logger.Logger          // nil => Nop
	Metrics *observability.Metrics // nil => registry nuevo

	// Now fija el reloj de todo el dashboard (tests).
	Now func() time.Time
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = observability.NewMetrics()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(m.Middleware)
	r.Use(middleware.CORS(opts.CORSOrigins))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var backend dashboard.Backend
	if opts.Backend != nil {
		backend = *opts.Backend
	} else {
		backend = StubBackend(now(), opts.StubSeed)
	}

	svc := dashboard.NewService(backend, dashboard.Options{
		Alerts: opts.Alerts,
		Now:    opts.Now,
		OnAlert: func(a health.Alert) {
			m.AlertGenerated(string(a.Type), string(a.Severity))
		},
	})
	views := dashboard.NewViews(svc, now)

	dashboard.RegisterRoutes(r, svc, views, log.With(map[string]any{"component": "http"}))

	return r
}
