package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"provider_map/internal/config"
	"provider_map/internal/storage"
	"provider_map/pkg/apperrors"
)

type UploadService interface {
	SavePhoto(ctx context.Context, file *multipart.FileHeader) (string, error)
}

type UploadServiceImpl struct {
	files       storage.Storage
	maxSize     int64
	allowedExts map[string]struct{}
}

func NewUploadService(files storage.Storage, cfg config.UploadConfig) UploadService {
	allowed := make(map[string]struct{}, len(cfg.AllowedExts))
	for _, ext := range cfg.AllowedExts {
		allowed[strings.ToLower(ext)] = struct{}{}
	}
	return &UploadServiceImpl{
		files:       files,
		maxSize:     cfg.MaxSize,
		allowedExts: allowed,
	}
}

// SavePhoto проверяет расширение и размер, сохраняет файл под
// случайным именем и возвращает публичный URL.
func (s *UploadServiceImpl) SavePhoto(ctx context.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := s.allowedExts[ext]; !ok {
		return "", apperrors.ErrInvalidFileType
	}
	if file.Size > s.maxSize {
		return "", apperrors.ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer src.Close()

	name := fmt.Sprintf("%s%s", uuid.NewString(), ext)
	if err := s.files.Save(ctx, name, io.LimitReader(src, s.maxSize+1)); err != nil {
		return "", apperrors.InternalError(err)
	}

	return s.files.URL(name), nil
}
