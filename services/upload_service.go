//go:generate go run go.uber.org/mock/mockgen -source=upload_service.go -destination=../mocks/servicemocks/mock_upload_service.go -package=servicemocks
package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"team-chat/domain/mimetypes"
	"team-chat/errors"
	"team-chat/observability"
	"team-chat/repositories"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// AllowedImageTypes are the only uploads accepted as message images.
var AllowedImageTypes = mimetypes.Images

type IUploadService interface {
	GenerateUploadURL(ctx context.Context, userID string) (string, error)
	Store(ctx context.Context, token, contentType string, body io.Reader) (string, error)
	Open(ctx context.Context, storageID string) (repositories.StoredFile, error)
	URL(storageID string) string
}

type UploadConfig struct {
	BaseURL  string
	TokenTTL time.Duration
	MaxBytes int64
}

// UploadService implements the two-step upload: the client asks for a
// single-use url, then posts the raw bytes to it and gets a storage id back.
type UploadService struct {
	log        *slog.Logger
	files      repositories.IFileRepository
	monitoring *observability.MonitoringManager
	config     UploadConfig
}

func NewUploadService(log *slog.Logger, files repositories.IFileRepository,
	monitoring *observability.MonitoringManager, config UploadConfig) *UploadService {
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	return &UploadService{log: log, files: files, monitoring: monitoring, config: config}
}

func (s *UploadService) GenerateUploadURL(_ context.Context, userID string) (string, error) {
	token := uuid.NewString()
	if err := s.files.SaveUploadToken(token, userID, s.config.TokenTTL); err != nil {
		return "", fmt.Errorf("save upload token: %w", err)
	}
	return s.config.BaseURL + "/upload/" + token, nil
}

// Store consumes the token, then checks that the declared type is an allowed
// image and that the sniffed content agrees with it.
func (s *UploadService) Store(_ context.Context, token, contentType string, body io.Reader) (string, error) {
	ownerID, err := s.files.ConsumeUploadToken(token)
	if err != nil {
		return "", err
	}
	declared, ok := allowedType(contentType)
	if !ok {
		return "", fmt.Errorf("%w: %s", errors.ErrUnsupportedMedia, contentType)
	}

	data, err := io.ReadAll(io.LimitReader(body, s.config.MaxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.config.MaxBytes {
		return "", errors.ErrUploadTooLarge
	}
	detected := mimetype.Detect(data)
	if _, ok := mimetypes.Matches(detected.String(), declared); !ok {
		s.log.Warn("Upload rejected", "declared", declared, "detected", detected.String())
		return "", fmt.Errorf("%w: declared %s, detected %s", errors.ErrContentTypeMismatch, declared, detected.String())
	}

	file := repositories.StoredFile{
		StorageID:   uuid.NewString(),
		ContentType: string(declared),
		OwnerID:     ownerID,
		Data:        bytes.Clone(data),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.files.StoreFile(file); err != nil {
		return "", fmt.Errorf("store file: %w", err)
	}
	s.monitoring.IncrUploadedBytes(uint64(len(data)))
	return file.StorageID, nil
}

func (s *UploadService) Open(_ context.Context, storageID string) (repositories.StoredFile, error) {
	return s.files.GetFile(storageID)
}

func (s *UploadService) CheckAttachment(storageID, userID string) error {
	file, err := s.files.GetFile(storageID)
	if err != nil {
		return err
	}
	if file.OwnerID != userID {
		return errors.ErrFileNotOwned
	}
	return nil
}

func (s *UploadService) URL(storageID string) string {
	return s.config.BaseURL + "/files/" + storageID
}

func allowedType(contentType string) (mimetypes.MIME, bool) {
	return lo.Find(AllowedImageTypes, func(m mimetypes.MIME) bool {
		_, ok := mimetypes.Matches(contentType, m)
		return ok
	})
}
