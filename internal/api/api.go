/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/friendsincode/openhours/internal/hours"
)

// API exposes the open-hours HTTP handlers.
type API struct {
	hours        *hours.Service
	defaultScope string
	logger       zerolog.Logger
}

// New creates the API router wrapper.
func New(hoursSvc *hours.Service, defaultScope string, logger zerolog.Logger) *API {
	return &API{
		hours:        hoursSvc,
		defaultScope: defaultScope,
		logger:       logger,
	}
}

// Routes mounts the API onto a chi router.
func (a *API) Routes(r chi.Router) {
	r.Get("/healthz", a.handleHealth)
	r.Route("/v1/hours", func(r chi.Router) {
		r.Get("/check", a.handleCheck)
	})
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCheck runs one open-hours evaluation. The scope comes from the
// query string, falling back to the configured default. The response is
// always bundle shaped: either the decision payload or the error payload,
// both with HTTP 200, because the consuming call-flow platform branches on
// the ErrorOccured field rather than on status codes.
func (a *API) handleCheck(w http.ResponseWriter, r *http.Request) {
	scope := r.URL.Query().Get("scope")
	if scope == "" {
		scope = a.defaultScope
	}

	decision, err := a.hours.Check(r.Context(), scope)
	if err != nil {
		a.logger.Error().Err(err).Str("scope", scope).Msg("open-hours check failed")
		writeJSON(w, http.StatusOK, ErrorPayload{
			ErrorOccured: FlagTrue,
			ErrorMessage: "Problem occured during execution. Kindly try again.",
		})
		return
	}

	writeJSON(w, http.StatusOK, NewDecisionPayload(decision))
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
