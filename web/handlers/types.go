// Package handlers provides HTTP handlers and middleware for the VMS
// Helper web UI.
package handlers

import "github.com/brookeadam/vms-helper/pkg/types"

// ErrorResponse is the standard error response format for the API.
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ClassifyRequest is the request format for POST /api/classify.
type ClassifyRequest struct {
	SessionID    string `json:"session_id,omitempty"`
	Task         string `json:"task"`
	Organization string `json:"organization,omitempty"`
	Location     string `json:"location,omitempty"`
}

// ClassifyResponse is the response format for POST /api/classify.
// CategoryIndex and SubcategoryIndex are positions into Categories and
// Subcategories suitable for pre-selecting form dropdowns.
type ClassifyResponse struct {
	SessionID        string   `json:"session_id"`
	Category         string   `json:"category"`
	Subcategory      string   `json:"subcategory"`
	Reasoning        string   `json:"reasoning,omitempty"`
	CategoryIndex    int      `json:"category_index"`
	SubcategoryIndex int      `json:"subcategory_index"`
	Subcategories    []string `json:"subcategories"`
}

// SuggestRequest is the request format for POST /api/suggest.
type SuggestRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Task      string `json:"task"`
}

// SuggestResponse is the response format for POST /api/suggest. When
// the provider fails, Advisory carries the user-visible explanation
// and Suggestion is nil; the client falls back to manual selection.
type SuggestResponse struct {
	SessionID        string                      `json:"session_id"`
	Suggestion       *types.ClassificationResult `json:"suggestion,omitempty"`
	Advisory         string                      `json:"advisory,omitempty"`
	CategoryIndex    int                         `json:"category_index"`
	SubcategoryIndex int                         `json:"subcategory_index"`
	Subcategories    []string                    `json:"subcategories,omitempty"`
}

// RenderRequest is the request format for POST /api/render. Category
// and Subcategory are the user's confirmed (possibly overridden)
// selections, not the raw suggestion.
type RenderRequest struct {
	Task         string `json:"task"`
	Organization string `json:"organization,omitempty"`
	Location     string `json:"location,omitempty"`
	Category     string `json:"category"`
	Subcategory  string `json:"subcategory"`
}

// RenderResponse is the response format for POST /api/render. Rules is
// the reference row's advisory text, shown alongside the sentence.
type RenderResponse struct {
	Sentence string `json:"sentence"`
	Rules    string `json:"rules,omitempty"`
}

// CategoriesResponse is the response format for GET /api/reference/categories.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// SubcategoriesResponse is the response format for
// GET /api/reference/subcategories.
type SubcategoriesResponse struct {
	Category      string   `json:"category"`
	Subcategories []string `json:"subcategories"`
}
