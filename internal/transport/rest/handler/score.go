package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/e-dsin/maturity-sub005/internal/service"
	"github.com/e-dsin/maturity-sub005/internal/transport/rest/middleware"
)

// ScoreHandler handles score and interpretation read endpoints.
type ScoreHandler struct {
	scoreSvc  *service.ScoreService
	interpSvc *service.InterpretationService
}

// NewScoreHandler creates a new score handler.
func NewScoreHandler(scoreSvc *service.ScoreService, interpSvc *service.InterpretationService) *ScoreHandler {
	return &ScoreHandler{
		scoreSvc:  scoreSvc,
		interpSvc: interpSvc,
	}
}

// ComputeFormScore handles GET /v1/forms/{formId}/score.
func (h *ScoreHandler) ComputeFormScore(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	res, err := h.scoreSvc.ComputeFormScore(r.Context(), p, mux.Vars(r)["formId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GetFormAnalysis handles GET /v1/forms/{formId}/analysis.
func (h *ScoreHandler) GetFormAnalysis(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	analysis, err := h.scoreSvc.GetFormAnalysis(r.Context(), p, mux.Vars(r)["formId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if analysis == nil {
		writeError(w, http.StatusNotFound, "no analysis recorded")
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// ListAnalyses handles GET /v1/analyses.
func (h *ScoreHandler) ListAnalyses(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	analyses, err := h.scoreSvc.ListAnalyses(r.Context(), p)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"analyses": analyses})
}

// ListEnterpriseHistory handles GET /v1/enterprises/{enterpriseId}/history.
func (h *ScoreHandler) ListEnterpriseHistory(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	history, err := h.scoreSvc.ListEnterpriseHistory(r.Context(), p, mux.Vars(r)["enterpriseId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"history": history})
}

// InterpretForm handles GET /v1/forms/{formId}/interpretation.
func (h *ScoreHandler) InterpretForm(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	interp, err := h.interpSvc.InterpretForm(r.Context(), p, mux.Vars(r)["formId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if interp == nil {
		writeError(w, http.StatusNotFound, "no analysis recorded")
		return
	}
	writeJSON(w, http.StatusOK, interp)
}

// Interpret handles GET /v1/interpretation?fonction=global&score=37.
func (h *ScoreHandler) Interpret(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	fonction := r.URL.Query().Get("fonction")
	if fonction == "" {
		writeError(w, http.StatusBadRequest, "fonction is required")
		return
	}
	score, err := strconv.ParseFloat(r.URL.Query().Get("score"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "score must be a number")
		return
	}

	interp, err := h.interpSvc.Interpret(r.Context(), p, fonction, score)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, interp)
}
