package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/brookeadam/vms-helper/internal/classifier"
	"github.com/brookeadam/vms-helper/internal/llm"
	"github.com/brookeadam/vms-helper/internal/narrative"
	"github.com/brookeadam/vms-helper/internal/partner"
	"github.com/brookeadam/vms-helper/internal/reference"
	"github.com/brookeadam/vms-helper/internal/selection"
	"github.com/brookeadam/vms-helper/internal/session"
	"github.com/brookeadam/vms-helper/pkg/types"
)

// APIHandlers contains HTTP handlers for the REST API.
type APIHandlers struct {
	table      *reference.Table
	classifier *classifier.Classifier
	partners   *partner.Resolver
	suggester  *llm.Suggester
	renderer   *narrative.Renderer
	sessions   *session.Cache
	hub        *PreviewHub
}

// NewAPIHandlers creates a new APIHandlers instance. The hub is
// optional; when present, every rendered sentence is also broadcast to
// live-preview clients.
func NewAPIHandlers(tbl *reference.Table, cls *classifier.Classifier, partners *partner.Resolver, sug *llm.Suggester, rend *narrative.Renderer, hub *PreviewHub) *APIHandlers {
	return &APIHandlers{
		table:      tbl,
		classifier: cls,
		partners:   partners,
		suggester:  sug,
		renderer:   rend,
		sessions:   session.NewCache(),
		hub:        hub,
	}
}

// ListCategories handles GET /api/reference/categories.
func (h *APIHandlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, CategoriesResponse{Categories: h.table.Categories()})
}

// ListSubcategories handles GET /api/reference/subcategories?category=.
func (h *APIHandlers) ListSubcategories(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		respondError(w, http.StatusBadRequest, "missing category parameter", nil)
		return
	}

	subs := h.table.Subcategories(category)
	if len(subs) == 0 {
		respondError(w, http.StatusNotFound, fmt.Sprintf("unknown category %q", category), nil)
		return
	}

	respondJSON(w, http.StatusOK, SubcategoriesResponse{Category: category, Subcategories: subs})
}

// Classify handles POST /api/classify - run the rule-based classifier
// and partner qualification over one submission.
func (h *APIHandlers) Classify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result := h.classifier.Classify(req.Task)

	// Partner qualification refines the subcategory when the partner
	// resolver lands on the same category. A category with zero rows
	// is a configuration problem, not a bad request.
	if !result.IsEmpty() {
		cat, sub, err := h.partners.Resolve(req.Task, req.Organization, req.Location, h.table)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "partner resolution failed", err)
			return
		}
		if cat == result.Category {
			result.Subcategory = sub
		}
	}

	sessionID := h.sessionFor(req.SessionID)
	h.sessions.Put(sessionID, result)

	respondJSON(w, http.StatusOK, ClassifyResponse{
		SessionID:        sessionID,
		Category:         result.Category,
		Subcategory:      result.Subcategory,
		Reasoning:        result.Reasoning,
		CategoryIndex:    selection.ResolveIndex(result.Category, h.table.Categories()),
		SubcategoryIndex: selection.ResolveIndex(result.Subcategory, h.table.Subcategories(result.Category)),
		Subcategories:    h.table.Subcategories(result.Category),
	})
}

// Suggest handles POST /api/suggest - one AI suggestion attempt.
// Provider failures are not errors at the HTTP level: the response
// carries the advisory string and the client continues manually.
func (h *APIHandlers) Suggest(w http.ResponseWriter, r *http.Request) {
	var req SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if strings.TrimSpace(req.Task) == "" {
		respondError(w, http.StatusBadRequest, "task text is required", nil)
		return
	}

	sessionID := h.sessionFor(req.SessionID)

	result, err := h.suggester.Suggest(r.Context(), req.Task, h.table)
	if err != nil {
		advisory := "AI suggestion failed."
		var failure *llm.SuggestionFailure
		if errors.As(err, &failure) {
			advisory = failure.Advisory()
		}
		log.Printf("suggest: session %s: %v", sessionID, err)
		respondJSON(w, http.StatusOK, SuggestResponse{SessionID: sessionID, Advisory: advisory})
		return
	}

	// The latest suggestion replaces whatever the session held before.
	h.sessions.Put(sessionID, *result)

	respondJSON(w, http.StatusOK, SuggestResponse{
		SessionID:        sessionID,
		Suggestion:       result,
		CategoryIndex:    selection.ResolveIndex(result.Category, h.table.Categories()),
		SubcategoryIndex: selection.ResolveIndex(result.Subcategory, h.table.Subcategories(result.Category)),
		Subcategories:    h.table.Subcategories(result.Category),
	})
}

// Render handles POST /api/render - produce the summary sentence for
// the confirmed selection. With ?download=1 the sentence is returned
// as a text/plain attachment instead of JSON.
func (h *APIHandlers) Render(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Category == "" || req.Subcategory == "" {
		respondError(w, http.StatusBadRequest, "category and subcategory are required", nil)
		return
	}

	var rules, activityType string
	if row, ok := h.table.Row(req.Category, req.Subcategory); ok {
		rules = row.Rules
		activityType = row.ActivityType
	}

	sentence := h.renderer.Render(narrative.Input{
		Category:     types.ParseCategory(req.Category),
		Subcategory:  req.Subcategory,
		ActivityType: activityType,
		Activity: types.ActivityContext{
			TaskText:     req.Task,
			Organization: req.Organization,
			Location:     req.Location,
		},
	})

	if h.hub != nil {
		h.hub.Broadcast(PreviewMessage{Type: "preview", Sentence: sentence})
	}

	if r.URL.Query().Get("download") == "1" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="vms_summary.txt"`)
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, sentence)
		return
	}

	respondJSON(w, http.StatusOK, RenderResponse{Sentence: sentence, Rules: rules})
}

// Health handles GET /api/health.
func (h *APIHandlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"healthy","rows":%d}`, h.table.Len())
}

// sessionFor returns the given session ID, minting a new one when the
// client has none yet.
func (h *APIHandlers) sessionFor(id string) string {
	if id != "" {
		return id
	}
	return h.sessions.NewSession()
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers already sent; nothing left but to log.
		log.Printf("failed to encode JSON response: %v", err)
	}
}

// respondError writes an error response with the given status code.
func respondError(w http.ResponseWriter, statusCode int, message string, err error) {
	errResp := ErrorResponse{
		Error: message,
		Code:  http.StatusText(statusCode),
	}

	if err != nil {
		errResp.Details = map[string]interface{}{
			"error": err.Error(),
		}
	}

	respondJSON(w, statusCode, errResp)
}
