package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"macrolib/internal/domain"
	"macrolib/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	RegisteredModels() []string
	Instances(ctx context.Context, modelType string) ([]domain.Model, error)
	AddModel(ctx context.Context, modelType string, args map[string]any) (domain.Model, error)
	EditModel(ctx context.Context, modelType, id string, changes map[string]any) (domain.Model, error)
	RemoveModel(ctx context.Context, modelType, id string) (domain.Model, error)
}

func modelView(m domain.Model) types.ModelView {
	return types.ModelView{ID: m.ID(), ModelName: m.ModelName(), Attrs: m.Attrs()}
}

// decodeBag reads a JSON object body into an attribute bag, enforcing the
// Content-Type and body-size limits.
func decodeBag(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return nil, false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var bag map[string]any
	if err := json.NewDecoder(r.Body).Decode(&bag); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return nil, false
	}
	if bag == nil {
		bag = map[string]any{}
	}
	return bag, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil && zlog != nil {
		zlog.Error().Err(err).Msg("encode response")
	}
}

// NewMux builds the router: model-type listing, per-type lifecycle endpoints,
// health, and metrics.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	r.Use(MetricsMiddleware)
	r.Use(requestLogger)

	// Registered model types, in registration order.
	r.Get("/models", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.ModelTypesResponse{Models: svc.RegisteredModels()})
	})

	// Stored instances of one model type.
	r.Get("/models/{modelType}", func(w http.ResponseWriter, r *http.Request) {
		models, err := svc.Instances(r.Context(), chi.URLParam(r, "modelType"))
		if err != nil {
			writeError(w, err)
			return
		}
		views := make([]types.ModelView, 0, len(models))
		for _, m := range models {
			views = append(views, modelView(m))
		}
		writeJSON(w, http.StatusOK, types.InstancesResponse{Instances: views})
	})

	// Create a model: runs the add workflow for the type.
	r.Post("/models/{modelType}", func(w http.ResponseWriter, r *http.Request) {
		args, ok := decodeBag(w, r)
		if !ok {
			return
		}
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		m, err := svc.AddModel(ctx, chi.URLParam(r, "modelType"), args)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, modelView(m))
	})

	// Edit a stored model's attributes.
	r.Patch("/models/{modelType}/{id}", func(w http.ResponseWriter, r *http.Request) {
		changes, ok := decodeBag(w, r)
		if !ok {
			return
		}
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		m, err := svc.EditModel(ctx, chi.URLParam(r, "modelType"), chi.URLParam(r, "id"), changes)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, modelView(m))
	})

	// Remove a stored model.
	r.Delete("/models/{modelType}/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		m, err := svc.RemoveModel(ctx, chi.URLParam(r, "modelType"), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, modelView(m))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}
