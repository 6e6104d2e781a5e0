// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	articlesfeature "github.com/gatherhub/gatherhub/internal/app/features/articles"
	dashboardfeature "github.com/gatherhub/gatherhub/internal/app/features/dashboard"
	groupsfeature "github.com/gatherhub/gatherhub/internal/app/features/groups"
	healthfeature "github.com/gatherhub/gatherhub/internal/app/features/health"
	usersfeature "github.com/gatherhub/gatherhub/internal/app/features/users"
	"github.com/gatherhub/gatherhub/internal/app/system/auth"
	"github.com/gatherhub/gatherhub/internal/app/system/dbguard"
	"github.com/gatherhub/gatherhub/internal/app/system/httpjson"
)

// BuildHandler constructs the root HTTP handler for the service.
//
// The health endpoint sits outside the availability guard so probes
// keep answering (and reporting the store state) while the store is
// down. Everything else passes through the guard and is answered with
// a 503 envelope when the store cannot be reached.
func BuildHandler(cfg AppConfig, guard *dbguard.Guard, logger *zap.Logger) http.Handler {
	db := guard.Database(cfg.MongoDatabase)

	var verifier auth.Verifier
	if cfg.TokenHMACSecret != "" {
		verifier = auth.NewHMACVerifier(cfg.TokenHMACSecret)
	} else {
		logger.Warn("no token secret configured; only fallback identity headers will authenticate")
	}
	resolver := auth.NewResolver(verifier, logger)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", auth.HeaderUserEmail, auth.HeaderUserUID},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.NotFound(httpjson.NotFound)
	r.MethodNotAllowed(httpjson.MethodNotAllowed)

	// Health check endpoint for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(guard, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Data routes behind the availability guard.
	r.Group(func(gr chi.Router) {
		gr.Use(guard.Middleware)

		groupsfeature.Register(gr, groupsfeature.NewHandler(db, logger), resolver)
		articlesfeature.Register(gr, articlesfeature.NewHandler(db, logger), resolver)
		usersfeature.Register(gr, usersfeature.NewHandler(db, logger))
		dashboardfeature.Register(gr, dashboardfeature.NewHandler(db, logger))
	})

	return r
}
