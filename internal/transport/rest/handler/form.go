package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/e-dsin/maturity-sub005/internal/model"
	"github.com/e-dsin/maturity-sub005/internal/service"
	"github.com/e-dsin/maturity-sub005/internal/transport/rest/middleware"
)

// FormHandler handles form lifecycle endpoints.
type FormHandler struct {
	formSvc *service.FormService
}

// NewFormHandler creates a new form handler.
func NewFormHandler(formSvc *service.FormService) *FormHandler {
	return &FormHandler{formSvc: formSvc}
}

// CreateFormRequest is the request body for opening a form.
type CreateFormRequest struct {
	QuestionnaireID string `json:"questionnaireId"`
	ApplicationID   string `json:"applicationId"`
	EnterpriseID    string `json:"enterpriseId,omitempty"`
}

// SaveAnswerRequest is the request body for recording one answer.
type SaveAnswerRequest struct {
	QuestionID string `json:"questionId"`
	Value      int    `json:"value"`
	Commentary string `json:"commentary,omitempty"`
}

// Create handles POST /v1/forms.
func (h *FormHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CreateFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.formSvc.Create(r.Context(), p, &model.Form{
		QuestionnaireID: req.QuestionnaireID,
		ApplicationID:   req.ApplicationID,
		EnterpriseID:    req.EnterpriseID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"formId": id})
}

// Get handles GET /v1/forms/{formId}.
func (h *FormHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	form, err := h.formSvc.Get(r.Context(), p, mux.Vars(r)["formId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, form)
}

// List handles GET /v1/forms.
func (h *FormHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	forms, err := h.formSvc.List(r.Context(), p)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"forms": forms})
}

// SaveAnswer handles PUT /v1/forms/{formId}/answers.
func (h *FormHandler) SaveAnswer(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req SaveAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.formSvc.SaveAnswer(r.Context(), p, mux.Vars(r)["formId"], req.QuestionID, req.Value, req.Commentary)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// Submit handles POST /v1/forms/{formId}/submit.
func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	analysis, err := h.formSvc.Submit(r.Context(), p, mux.Vars(r)["formId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// Validate handles POST /v1/forms/{formId}/validate.
func (h *FormHandler) Validate(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.formSvc.Validate(r.Context(), p, mux.Vars(r)["formId"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "validated"})
}
