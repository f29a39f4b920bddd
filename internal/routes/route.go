package routes

import (
	"net/http"

	"area-directory/internal/config"
	"area-directory/internal/handlers"
	"area-directory/internal/logger"
	mdlwr "area-directory/internal/middleware"
	"area-directory/internal/services"
	"area-directory/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/uptrace/bun"
)

func NewRouter(db *bun.DB, cfg *config.Config, logr *logger.Logger) http.Handler {
	r := chi.NewRouter()

	// Basic middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(mdlwr.AccessLog(logr.Logger))

	// CORS middleware with config
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	providerStore := store.NewProviderStore(db)
	areaStore := store.NewServiceAreaStore(db)

	providerSvc := services.NewProviderService(providerStore)
	areaSvc := services.NewServiceAreaService(areaStore)
	searchSvc := services.NewSearchService(areaStore)

	providerHandler := handlers.NewProviderHandler(providerSvc, cfg, logr.Logger)
	areaHandler := handlers.NewServiceAreaHandler(areaSvc, cfg, logr.Logger)
	searchHandler := handlers.NewSearchHandler(searchSvc, logr.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("ok"))
		if err != nil {
			return
		}
	})

	r.Route("/providers", func(r chi.Router) {
		r.Post("/", providerHandler.CreateProvider)
		r.Get("/", providerHandler.ListProviders)
		r.Get("/{id}", providerHandler.GetProvider)
		r.Put("/{id}", providerHandler.UpdateProvider)
		r.Delete("/{id}", providerHandler.DeleteProvider)

		r.Post("/{id}/service_areas/", areaHandler.CreateServiceArea)
	})

	r.Route("/service_areas", func(r chi.Router) {
		r.Get("/", areaHandler.ListServiceAreas)
		r.Get("/{id}", areaHandler.GetServiceArea)
		r.Put("/{id}", areaHandler.UpdateServiceArea)
		r.Delete("/{id}", areaHandler.DeleteServiceArea)
	})

	r.Get("/search/", searchHandler.Search)

	return r
}
