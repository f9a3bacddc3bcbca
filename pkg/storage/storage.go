package storage

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// Storage представляет файловое хранилище для загруженных студентами
// файлов и аватаров
type Storage struct {
	basePath    string
	maxFileSize int64
}

// NewStorage создает новое файловое хранилище
func NewStorage(basePath string, maxFileSize int64) (*Storage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &Storage{
		basePath:    basePath,
		maxFileSize: maxFileSize,
	}, nil
}

// SaveFile сохраняет загруженный файл и возвращает путь к нему
func (s *Storage) SaveFile(file *multipart.FileHeader, userID uuid.UUID, category string) (string, error) {
	if file.Size > s.maxFileSize {
		return "", fmt.Errorf("file size exceeds maximum allowed size")
	}

	fileExt := filepath.Ext(file.Filename)
	fileName := uuid.New().String() + fileExt
	filePath := filepath.Join(s.basePath, "users", userID.String(), category, fileName)

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return "", fmt.Errorf("failed to create file directory: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to copy file: %w", err)
	}

	// Для изображений создаем миниатюру
	if strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		if err := s.createThumbnail(filePath); err != nil {
			log.Printf("failed to create thumbnail: %v", err)
		}
	}

	return filePath, nil
}

// SaveAvatar сохраняет аватар пользователя, приводя изображение
// к квадрату 256x256, и возвращает путь к нему
func (s *Storage) SaveAvatar(file *multipart.FileHeader, userID uuid.UUID) (string, error) {
	if file.Size > s.maxFileSize {
		return "", fmt.Errorf("file size exceeds maximum allowed size")
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	avatar := imaging.Fill(img, 256, 256, imaging.Center, imaging.Lanczos)

	avatarPath := filepath.Join(s.basePath, "users", userID.String(), "avatar.jpg")
	if err := os.MkdirAll(filepath.Dir(avatarPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create avatar directory: %w", err)
	}
	if err := imaging.Save(avatar, avatarPath, imaging.JPEGQuality(85)); err != nil {
		return "", fmt.Errorf("failed to save avatar: %w", err)
	}

	return avatarPath, nil
}

// createThumbnail создает миниатюру изображения 300x300
func (s *Storage) createThumbnail(filePath string) error {
	img, err := imaging.Open(filePath)
	if err != nil {
		return err
	}

	thumbnail := imaging.Resize(img, 300, 300, imaging.Lanczos)
	thumbPath := s.ThumbnailPath(filePath)
	return imaging.Save(thumbnail, thumbPath, imaging.JPEGQuality(85))
}

// ThumbnailPath возвращает путь к миниатюре файла
func (s *Storage) ThumbnailPath(filePath string) string {
	return strings.Replace(filePath, filepath.Ext(filePath), "_thumb.jpg", 1)
}

// DeleteFile удаляет файл и его миниатюру
func (s *Storage) DeleteFile(filePath string) error {
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	if err := os.Remove(s.ThumbnailPath(filePath)); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to delete thumbnail: %v", err)
	}

	return nil
}
