package noteservice

import (
	"context"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/notura/notura/internal/apperr"
	"github.com/notura/notura/internal/models"
)

// defaultImageExt is used when the original filename carries no extension.
const defaultImageExt = "png"

// SaveImage stores image bytes on disk and records their metadata, optionally
// associated with a note. The stored filename is system-generated; the
// caller's original name is kept as metadata only.
func (s *Service) SaveImage(_ context.Context, data []byte, originalName, mimeType string, noteID *string) (*models.Image, error) {
	id := uuid.NewString()
	ext := strings.TrimPrefix(filepath.Ext(originalName), ".")
	if ext == "" {
		ext = defaultImageExt
	}
	now := time.Now().UTC()
	filename := fmt.Sprintf("%s_%d.%s", id, now.Unix(), ext)

	path, err := s.files.Write(filename, data)
	if err != nil {
		return nil, fmt.Errorf("write image %s: %v: %w", filename, err, apperr.ErrStorageIO)
	}
	img := &models.Image{
		ID:           id,
		Filename:     filename,
		OriginalName: originalName,
		FilePath:     path,
		Size:         int64(len(data)),
		MimeType:     mimeType,
		CreatedAt:    now,
	}
	if err := s.store.InsertImage(img, noteID); err != nil {
		return nil, err
	}
	s.notify("image.created", id)
	return img, nil
}

// GetImage returns an image's metadata together with its payload encoded as
// a data URL.
func (s *Service) GetImage(_ context.Context, id string) (*models.ImageWithData, error) {
	img, err := s.store.GetImage(id)
	if err != nil {
		return nil, err
	}
	data, err := s.files.Read(img.Filename)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %v: %w", img.Filename, err, apperr.ErrStorageIO)
	}
	return &models.ImageWithData{
		Image:   *img,
		DataURL: fmt.Sprintf("data:%s;base64,%s", img.MimeType, base64.StdEncoding.EncodeToString(data)),
	}, nil
}

// ListImages returns metadata for every stored image.
func (s *Service) ListImages(_ context.Context) ([]models.Image, error) {
	return s.store.ListImages()
}

// ListImagesForNote returns metadata for the images associated with a note.
func (s *Service) ListImagesForNote(_ context.Context, noteID string) ([]models.Image, error) {
	return s.store.ListImagesForNote(noteID)
}

// DeleteImage removes an image's file and metadata. A failed file removal is
// logged and does not block the metadata delete; the metadata row is the
// source of truth for existence.
func (s *Service) DeleteImage(_ context.Context, id string) error {
	img, err := s.store.GetImage(id)
	if err != nil {
		return err
	}
	if err := s.files.Remove(img.Filename); err != nil {
		s.logger.Warn("removing image file", "filename", img.Filename, "error", err)
	}
	if err := s.store.DeleteImage(id); err != nil {
		return err
	}
	s.notify("image.deleted", id)
	return nil
}

// SetImageAssociation links or unlinks an image and a note.
func (s *Service) SetImageAssociation(_ context.Context, imageID, noteID string, used bool) error {
	if err := s.store.SetImageAssociation(imageID, noteID, used); err != nil {
		return err
	}
	s.notify("note.updated", noteID)
	return nil
}
