package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/datecheck/pkg/httpserver"
	"github.com/dmitrymomot/datecheck/pkg/i18n"
	"github.com/dmitrymomot/datecheck/pkg/logger"
	"github.com/dmitrymomot/datecheck/pkg/model"
	"github.com/dmitrymomot/datecheck/pkg/multiparam"
	"github.com/dmitrymomot/datecheck/pkg/requestid"
	"github.com/dmitrymomot/datecheck/pkg/temporal"
	"github.com/dmitrymomot/datecheck/pkg/validator"
)

const maxBodySize = 1 << 20

type Handler struct {
	schema     *model.Schema
	logger     *slog.Logger
	translator *i18n.Translator
}

type Option func(*Handler)

// WithTranslator replaces the built-in message translations.
func WithTranslator(tr *i18n.Translator) Option {
	return func(h *Handler) {
		if tr != nil {
			h.translator = tr
		}
	}
}

func NewHandler(s *model.Schema, log *slog.Logger, opts ...Option) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	h := &Handler{
		schema:     s,
		logger:     log.With(logger.Component("httpapi")),
		translator: i18n.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.CleanPath)

	r.Get("/health", httpserver.HealthHandler(h.logger))
	r.Get("/schema", h.describe)
	r.Post("/parse", h.parse)
	r.Post("/validate", h.validate)
	return r
}

type parseRequest struct {
	Value string `json:"value"`
	Mode  string `json:"mode"`
}

type parseResponse struct {
	Mode  string `json:"mode"`
	Value string `json:"value"`
}

func (h *Handler) parse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	mode := temporal.ModeDate
	if req.Mode != "" {
		m, err := temporal.ParseMode(req.Mode)
		if err != nil {
			status, detail := classify(err)
			h.writeJSON(w, r, status, Response{Error: detail})
			return
		}
		mode = m
	}

	v, err := h.schema.Parser().Parse(req.Value, mode)
	if err != nil {
		h.logger.DebugContext(r.Context(), "parse failed", logger.Mode(mode), logger.Input(req.Value), logger.Error(err))
		status, detail := classify(err)
		h.writeJSON(w, r, status, Response{Error: detail})
		return
	}
	h.writeJSON(w, r, http.StatusOK, Response{Data: parseResponse{Mode: mode.String(), Value: v.String()}})
}

type validateResponse struct {
	Valid  bool              `json:"valid"`
	Values map[string]string `json:"values"`
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	rec := h.schema.New()
	if err := multiparam.Bind(r, rec); err != nil {
		var batch *multiparam.AssignmentErrors
		if errors.As(err, &batch) {
			h.logger.InfoContext(r.Context(), "assignment failed", logger.Errors(batch.Unwrap()...))
		} else {
			h.logger.InfoContext(r.Context(), "assignment failed", logger.Error(err))
		}
		status, detail := classify(err)
		h.writeJSON(w, r, status, Response{Error: detail})
		return
	}

	err := rec.Save()
	h.logger.InfoContext(r.Context(), "record validated",
		slog.String("schema", h.schema.Name()),
		slog.Bool("valid", err == nil),
		logger.Duration(time.Since(start)),
	)

	data := validateResponse{Valid: err == nil, Values: rec.Values()}
	if err != nil {
		if verrs := validator.ExtractValidationErrors(err); verrs != nil {
			lang := h.translator.Negotiate(r.Header.Get("Accept-Language"))
			w.Header().Set("Content-Language", lang.String())
			err = h.translator.Localize(lang, verrs)
		}
		status, detail := classify(err)
		h.writeJSON(w, r, status, Response{Data: data, Error: detail})
		return
	}
	h.writeJSON(w, r, http.StatusOK, Response{Data: data})
}

type attributeInfo struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Validated bool   `json:"validated"`
}

func (h *Handler) describe(w http.ResponseWriter, r *http.Request) {
	validated := make(map[string]bool)
	for _, name := range h.schema.Registry().Fields() {
		validated[name] = true
	}

	attrs := h.schema.Attributes()
	out := make([]attributeInfo, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, attributeInfo{Name: a.Name, Kind: a.Kind.String(), Validated: validated[a.Name]})
	}
	h.writeJSON(w, r, http.StatusOK, Response{Data: map[string]any{"name": h.schema.Name(), "attributes": out}})
}
