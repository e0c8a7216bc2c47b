package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/vedzkun/applytics/internal/history"
	"github.com/vedzkun/applytics/internal/schemas"
)

// HistoryItemResponse represents the response for history mutations.
type HistoryItemResponse struct {
	OK   bool         `json:"ok"`
	Item history.Item `json:"item"`
}

// HistoryOKResponse represents the response for history update and delete.
type HistoryOKResponse struct {
	OK bool `json:"ok"`
}

// handleListHistory returns all saved history items, newest first.
func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.List(r.Context())
	if err != nil {
		log.Printf("history list failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load history")
		return
	}
	s.jsonResponse(w, http.StatusOK, items)
}

// handleSaveHistory validates and persists a history item. Missing id and
// date are filled in before schema validation so generated items pass.
func (s *Server) handleSaveHistory(w http.ResponseWriter, r *http.Request) {
	var item history.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid history item")
		return
	}
	if item.ID == "" {
		item.ID = history.NewID()
	}
	if item.Date == "" {
		item.Date = time.Now().Format(history.DateLayout)
	}

	document, err := json.Marshal(item)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid history item")
		return
	}
	if err := schemas.ValidateHistoryItem(document); err != nil {
		var verr *schemas.ValidationError
		if errors.As(err, &verr) {
			s.errorResponse(w, http.StatusBadRequest, verr.Error())
			return
		}
		log.Printf("history schema validation failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to validate history item")
		return
	}

	saved, err := s.store.Save(r.Context(), item)
	if err != nil {
		log.Printf("history save failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save history item")
		return
	}
	s.jsonResponse(w, http.StatusOK, HistoryItemResponse{OK: true, Item: saved})
}

// handleUpdateHistory merges the given fields into an existing item.
func (s *Server) handleUpdateHistory(w http.ResponseWriter, r *http.Request) {
	var item history.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid history item")
		return
	}
	if item.ID == "" {
		s.errorResponse(w, http.StatusBadRequest, "Missing id")
		return
	}
	if err := s.store.Update(r.Context(), item); err != nil {
		var missing *history.ErrMissingID
		if errors.As(err, &missing) {
			s.errorResponse(w, http.StatusBadRequest, "Missing id")
			return
		}
		log.Printf("history update failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update history item")
		return
	}
	s.jsonResponse(w, http.StatusOK, HistoryOKResponse{OK: true})
}

// handleDeleteHistory removes the item named by the id query parameter.
func (s *Server) handleDeleteHistory(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "Missing id")
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		log.Printf("history delete failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete history item")
		return
	}
	s.jsonResponse(w, http.StatusOK, HistoryOKResponse{OK: true})
}
