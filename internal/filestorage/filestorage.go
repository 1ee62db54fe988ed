package filestorage

import (
	"context"
	"io"

	"harborhr/backend/pkg/config"
	hlog "harborhr/backend/pkg/log"

	"go.uber.org/zap"
)

// FileStorageProvider defines an interface for benefit-form backup storage.
type FileStorageProvider interface {
	// UploadFile uploads a file under objectName and returns the stored object key.
	UploadFile(ctx context.Context, objectName string, fileContent io.Reader) (storedObjectName string, err error)
	DeleteFile(ctx context.Context, objectName string) error
}

// DefaultFileStorageProvider holds the initialized default provider.
var DefaultFileStorageProvider FileStorageProvider

// InitFileStorage initializes the default file storage provider based on configuration.
// Sem provedor configurado, os backups de formulários ficam desabilitados; o
// restante da aplicação segue funcionando.
func InitFileStorage() error {
	providerType := config.Cfg.FileStorageProvider
	hlog.L.Info("Initializing file storage", zap.String("provider_type", providerType))

	switch providerType {
	case "s3":
		provider, err := InitializeS3Provider()
		if err != nil {
			hlog.L.Error("Failed to initialize S3 storage provider. Benefit form backups via S3 disabled.", zap.Error(err))
		} else if provider != nil {
			DefaultFileStorageProvider = provider
		}
	case "gcs":
		provider, err := InitializeGCSProvider()
		if err != nil {
			hlog.L.Error("Failed to initialize GCS storage provider. Benefit form backups via GCS disabled.", zap.Error(err))
		} else if provider != nil {
			DefaultFileStorageProvider = provider
		}
	case "":
		hlog.L.Info("FILE_STORAGE_PROVIDER not set. Benefit form backups disabled.")
	default:
		hlog.L.Warn("Unsupported FILE_STORAGE_PROVIDER. Benefit form backups disabled.", zap.String("provider_type", providerType))
	}

	if DefaultFileStorageProvider != nil {
		hlog.L.Info("File storage provider initialized successfully.", zap.String("provider_type", providerType))
	}
	return nil // Falha de storage não bloqueia o startup da aplicação.
}
