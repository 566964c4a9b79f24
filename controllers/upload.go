package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/bashafinder/backend/models"
	"github.com/bashafinder/backend/storage"
	"github.com/gorilla/mux"
)

const maxUploadBytes = 10 << 20

var allowedBuckets = map[string]bool{
	"profile-pictures": true,
	"property-images":  true,
}

// UploadFile stores a multipart file in the given bucket and returns its
// public URL. Filenames get a timestamp prefix so repeated uploads of the
// same file never collide.
func UploadFile(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(string)
		if !ok {
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		if store == nil {
			http.Error(w, "Uploads are not configured", http.StatusServiceUnavailable)
			return
		}

		bucket := mux.Vars(r)["bucket"]
		if !allowedBuckets[bucket] {
			http.Error(w, "Unknown bucket", http.StatusNotFound)
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, "Invalid upload", http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file field is required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		filename := fmt.Sprintf("%s/%d%s", userID, time.Now().UnixNano(), filepath.Ext(header.Filename))
		publicURL, err := store.Upload(r.Context(), bucket, filename, file, header.Header.Get("Content-Type"))
		if err != nil {
			log.Printf("Upload to %s failed: %v", bucket, err)
			http.Error(w, "Upload failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Message: "File uploaded",
			Data:    map[string]string{"url": publicURL},
		})
	}
}
