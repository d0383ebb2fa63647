package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"activities-service/internal/model"
	"activities-service/internal/service"
)

// RosterService описывает операции над списками участников, нужные обработчикам.
type RosterService interface {
	ListActivities(ctx context.Context) ([]model.Activity, error)
	SignUp(ctx context.Context, activityName, email string) (model.Confirmation, error)
	Unregister(ctx context.Context, activityName, email string) (model.Confirmation, error)
}

// Options задаёт внешние части роутера: статику, CORS и метрики.
type Options struct {
	StaticDir      string
	AllowedOrigins []string
	// Metrics отдаётся на /metrics, если не nil.
	Metrics http.Handler
}

type Handler struct {
	Roster RosterService
	Log    *slog.Logger
	opts   Options
}

func NewHandler(roster RosterService, log *slog.Logger, opts Options) *Handler {
	return &Handler{
		Roster: roster,
		Log:    log,
		opts:   opts,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", h.handleRoot)
	r.Get("/health", h.handleHealth)
	if h.opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.opts.Metrics)
	}
	if h.opts.StaticDir != "" {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(h.opts.StaticDir))))
	}

	r.Route("/activities", func(r chi.Router) {
		r.Get("/", h.handleActivitiesList)
		r.Post("/{activityName}/signup", h.handleSignUp)
		r.Post("/{activityName}/unregister", h.handleUnregister)
	})

	return r
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, handlerName string, err error) {
	var appErr *service.AppError
	if !errors.As(err, &appErr) {
		appErr = service.ErrInternal("internal error", err)
	}

	level := slog.LevelWarn
	if appErr.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.Log.LogAttrs(r.Context(), level, "handler error",
		slog.String("handler", handlerName),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	message := appErr.Message
	if appErr.Status >= http.StatusInternalServerError {
		message = "internal error"
	}
	h.writeJSON(w, appErr.Status, errorResponse{Detail: message})
}

// requestLogger пишет одну строку на запрос со статусом и длительностью.
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		h.Log.LogAttrs(r.Context(), slog.LevelDebug, "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
