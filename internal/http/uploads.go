package httpapi

import (
	"net/http"

	"ciencia-backend-go/internal/services"
)

const maxUploadBytes = 10 << 20

type UploadResponse struct {
	URL string `json:"url"`
}

func (s *Server) UploadCover(w http.ResponseWriter, r *http.Request) {
	s.handleUpload(w, r, services.BucketCovers)
}

func (s *Server) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	s.handleUpload(w, r, services.BucketPhotos)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request, bucket string) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid upload")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "O arquivo é obrigatório.")
		return
	}
	defer func() { _ = file.Close() }()

	reference, err := services.SaveUpload(s.Config.MediaStoragePath, bucket, header.Filename, file)
	if mapServiceError(w, err) {
		return
	}
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusCreated, UploadResponse{URL: reference})
}
