// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/Amareteklay/adapticus-backend/internal/models"
)

const maxUploadSize = 50 << 20 // 50 MB

// allowedMediaTypes lists the content types accepted for upload.
var allowedMediaTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"application/pdf": true,
	"audio/mpeg":      true,
	"audio/ogg":       true,
	"video/mp4":       true,
	"video/webm":      true,
}

// kindFromType maps a sniffed content type to a media kind.
func kindFromType(contentType string) models.MediaKind {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return models.MediaImage
	case strings.HasPrefix(contentType, "audio/"):
		return models.MediaAudio
	case strings.HasPrefix(contentType, "video/"):
		return models.MediaVideo
	case contentType == "application/pdf":
		return models.MediaDocument
	}
	return models.MediaOther
}

func extensionFromType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	case "application/pdf":
		return ".pdf"
	case "audio/mpeg":
		return ".mp3"
	case "audio/ogg":
		return ".ogg"
	case "video/mp4":
		return ".mp4"
	case "video/webm":
		return ".webm"
	}
	return ""
}

// MediaUpload handles POST /admin/api/media. The file goes to object
// storage under a date-partitioned key; the row records dimensions for
// raster images.
func (a *Admin) MediaUpload(w http.ResponseWriter, r *http.Request) {
	if a.storage == nil {
		respondError(w, r, http.StatusServiceUnavailable, "Object storage is not configured.")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, r, http.StatusRequestEntityTooLarge, "File too large. Maximum size is 50 MB.")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "No file provided.")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		respondError(w, r, http.StatusRequestEntityTooLarge, "File too large. Maximum size is 50 MB.")
		return
	}

	// Sniff the content type from the first 512 bytes.
	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		respondError(w, r, http.StatusInternalServerError, "Failed to read file.")
		return
	}
	contentType := http.DetectContentType(sniffBuf[:n])

	// DetectContentType reports SVGs as XML or plain text.
	if strings.HasSuffix(strings.ToLower(header.Filename), ".svg") &&
		(strings.Contains(contentType, "xml") || strings.Contains(contentType, "text/plain")) {
		contentType = "image/svg+xml"
	}

	if !allowedMediaTypes[contentType] {
		respondError(w, r, http.StatusBadRequest, fmt.Sprintf("File type %q is not allowed.", contentType))
		return
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to process file.")
		return
	}
	fileBytes, err := io.ReadAll(file)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to read file.")
		return
	}

	now := time.Now()
	ext := filepath.Ext(header.Filename)
	if ext == "" {
		ext = extensionFromType(contentType)
	}
	key := fmt.Sprintf("media/%d/%02d/%s%s", now.Year(), now.Month(), uuid.NewString(), ext)

	ctx := r.Context()
	if err := a.storage.Upload(ctx, key, contentType, bytes.NewReader(fileBytes), int64(len(fileBytes))); err != nil {
		slog.Error("s3 upload failed", "error", err, "key", key)
		respondError(w, r, http.StatusInternalServerError, "Failed to upload file.")
		return
	}

	sum := sha256.Sum256(fileBytes)
	asset := &models.MediaAsset{
		Kind:       kindFromType(contentType),
		StorageKey: key,
		Checksum:   hex.EncodeToString(sum[:]),
		AltText:    r.FormValue("alt_text"),
		Caption:    r.FormValue("caption"),
	}

	// Probe raster dimensions; vector and non-image files stay unsized.
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(fileBytes)); err == nil {
		asset.Width = &cfg.Width
		asset.Height = &cfg.Height
	}

	created, err := a.media.Create(asset)
	if err != nil {
		slog.Error("media db insert failed", "error", err, "key", key)
		respondError(w, r, http.StatusInternalServerError, "Failed to save file metadata.")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]any{
		"id":       created.ID,
		"kind":     created.Kind,
		"url":      a.storage.FileURL(created.StorageKey),
		"filename": header.Filename,
		"size":     len(fileBytes),
		"type":     contentType,
	})
}

// MediaDelete handles DELETE /admin/api/media/{id}, removing both the
// object and its row.
func (a *Admin) MediaDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid media ID.")
		return
	}

	asset, err := a.media.FindByID(id)
	if err != nil {
		slog.Error("find media failed", "error", err, "id", id)
		respondError(w, r, http.StatusInternalServerError, "Failed to delete media.")
		return
	}
	if asset == nil {
		respondError(w, r, http.StatusNotFound, "Media not found.")
		return
	}

	if a.storage != nil {
		if err := a.storage.Delete(r.Context(), asset.StorageKey); err != nil {
			slog.Warn("s3 delete failed", "error", err, "key", asset.StorageKey)
		}
	}

	if err := a.media.Delete(id); err != nil {
		slog.Error("delete media failed", "error", err, "id", id)
		respondError(w, r, http.StatusInternalServerError, "Failed to delete media.")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
