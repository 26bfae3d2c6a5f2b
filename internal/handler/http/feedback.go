package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/myinhand/payroll-calculator/internal/feedback"
	"github.com/myinhand/payroll-calculator/internal/handler/http/response"
)

// FeedbackHandler exposes the feedback and likes endpoints.
type FeedbackHandler struct {
	svc *feedback.Service
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(svc *feedback.Service) *FeedbackHandler {
	return &FeedbackHandler{svc: svc}
}

type submitFeedbackRequest struct {
	User string `json:"user"`
	Text string `json:"text"`
}

// Submit handles POST /feedback.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	entry, err := h.svc.Submit(r.Context(), req.User, req.Text)
	if err != nil {
		if errors.Is(err, feedback.ErrEmptyText) {
			response.ValidationError(w, map[string]string{"text": "feedback text is required"})
			return
		}
		response.InternalServerError(w, "failed to store feedback")
		return
	}
	response.Created(w, "feedback stored", entry)
}

// List handles GET /feedback, most recent first.
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "failed to list feedback")
		return
	}
	if entries == nil {
		entries = []feedback.Entry{}
	}
	response.Success(w, entries)
}

type likesResponse struct {
	Likes int64 `json:"likes"`
}

// Likes handles GET /likes.
func (h *FeedbackHandler) Likes(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.Likes(r.Context())
	if err != nil {
		response.InternalServerError(w, "failed to read like count")
		return
	}
	response.Success(w, likesResponse{Likes: count})
}

type likeRequest struct {
	// AlreadyLiked is the client-persisted flag; when true the counter is
	// left untouched and the current total is returned.
	AlreadyLiked bool `json:"already_liked"`
}

// Like handles POST /likes.
func (h *FeedbackHandler) Like(w http.ResponseWriter, r *http.Request) {
	var req likeRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "invalid request body", nil)
			return
		}
	}

	count, err := h.svc.Like(r.Context(), req.AlreadyLiked)
	if err != nil {
		response.InternalServerError(w, "failed to increment likes")
		return
	}
	response.Success(w, likesResponse{Likes: count})
}
