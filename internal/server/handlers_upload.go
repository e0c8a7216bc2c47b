package server

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/vedzkun/applytics/internal/ingestion"
)

// maxUploadSize caps uploaded resume files at 10MB.
const maxUploadSize = 10 << 20

// UploadResponse represents the response for /api/upload
type UploadResponse struct {
	Success  bool   `json:"success"`
	Text     string `json:"text"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// handleUpload accepts a resume file (PDF or DOCX) and returns its extracted text.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "File too large. Maximum size is 10MB.")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		s.errorResponse(w, http.StatusBadRequest, "File too large. Maximum size is 10MB.")
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".pdf" && ext != ".docx" {
		s.errorResponse(w, http.StatusBadRequest, "Invalid file type. Please upload a PDF file.")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}

	var text string
	switch ext {
	case ".pdf":
		text, err = ingestion.ExtractPDF(data)
	case ".docx":
		text, err = ingestion.ExtractDOCX(data)
	}
	if err != nil || strings.TrimSpace(text) == "" {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Could not extract text from PDF. The file may be empty or image-based.")
		return
	}

	s.jsonResponse(w, http.StatusOK, UploadResponse{
		Success:  true,
		Text:     text,
		Filename: header.Filename,
		Size:     header.Size,
	})
}
