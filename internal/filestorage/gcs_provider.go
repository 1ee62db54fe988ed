package filestorage

import (
	"context"
	"fmt"
	"io"
	"os"

	"harborhr/backend/pkg/config"
	hlog "harborhr/backend/pkg/log"

	"cloud.google.com/go/storage"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GCSStorageProvider implements FileStorageProvider using Google Cloud Storage.
type GCSStorageProvider struct {
	client     *storage.Client
	bucketName string
}

// InitializeGCSProvider initializes the Google Cloud Storage client and configuration.
// Retorna nil, nil se o GCS não estiver configurado para não bloquear o início da app.
func InitializeGCSProvider() (*GCSStorageProvider, error) {
	ctx := context.Background()

	projectID := config.Cfg.GCSProjectID
	bucketName := config.Cfg.GCSBucketName

	if projectID == "" || bucketName == "" {
		hlog.L.Warn("GCS_PROJECT_ID or GCS_BUCKET_NAME not set in config. Benefit form backups to GCS disabled.")
		return nil, nil
	}

	// GOOGLE_APPLICATION_CREDENTIALS é lido automaticamente pela biblioteca
	// cliente; em ambientes GCP a conta de serviço associada é usada.
	var opts []option.ClientOption
	if credsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		hlog.L.Error("Failed to create Google Cloud Storage client.", zap.Error(err))
		return nil, fmt.Errorf("failed to create Google Cloud Storage client: %w", err)
	}

	hlog.L.Info("Google Cloud Storage provider initialized",
		zap.String("projectID", projectID), zap.String("bucketName", bucketName))

	return &GCSStorageProvider{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// UploadFile carrega um arquivo para o GCS e retorna a chave do objeto.
func (g *GCSStorageProvider) UploadFile(ctx context.Context, objectName string, fileContent io.Reader) (string, error) {
	if g == nil || g.client == nil || g.bucketName == "" {
		return "", fmt.Errorf("GCS provider not initialized or configured correctly")
	}

	wc := g.client.Bucket(g.bucketName).Object(objectName).NewWriter(ctx)
	if _, err := io.Copy(wc, fileContent); err != nil {
		_ = wc.Close()
		return "", fmt.Errorf("failed to write file to GCS (bucket: %s, object: %s): %w", g.bucketName, objectName, err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize GCS upload (bucket: %s, object: %s): %w", g.bucketName, objectName, err)
	}

	return objectName, nil
}

// DeleteFile remove um objeto do bucket.
func (g *GCSStorageProvider) DeleteFile(ctx context.Context, objectName string) error {
	if g == nil || g.client == nil || g.bucketName == "" {
		return fmt.Errorf("GCS provider not initialized or configured correctly")
	}

	if err := g.client.Bucket(g.bucketName).Object(objectName).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete file from GCS (bucket: %s, object: %s): %w", g.bucketName, objectName, err)
	}
	return nil
}
