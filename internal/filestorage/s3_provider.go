package filestorage

import (
	"context"
	"fmt"
	"io"

	"harborhr/backend/pkg/config"
	hlog "harborhr/backend/pkg/log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsGoConfig "github.com/aws/aws-sdk-go-v2/config" // Alias para evitar conflito com pkg/config
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// S3StorageProvider implements FileStorageProvider using Amazon S3.
type S3StorageProvider struct {
	client     *s3.Client
	uploader   *manager.Uploader
	bucketName string
	region     string
}

// InitializeS3Provider initializes the S3 client and configuration.
// Retorna nil, nil se o S3 não estiver configurado para não bloquear o início da app.
func InitializeS3Provider() (*S3StorageProvider, error) {
	bucket := config.Cfg.AWSS3Bucket
	region := config.Cfg.AWSRegion

	if bucket == "" || region == "" {
		hlog.L.Warn("AWS_S3_BUCKET or AWS_REGION not set. Benefit form backups to S3 disabled.")
		return nil, nil
	}

	// Credenciais vêm do ambiente (variáveis ou IAM role).
	sdkConfig, err := awsGoConfig.LoadDefaultConfig(context.TODO(), awsGoConfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config for S3: %w", err)
	}

	s3Client := s3.NewFromConfig(sdkConfig)
	uploader := manager.NewUploader(s3Client)

	hlog.L.Info("Amazon S3 storage provider initialized",
		zap.String("bucket", bucket), zap.String("region", region))

	return &S3StorageProvider{
		client:     s3Client,
		uploader:   uploader,
		bucketName: bucket,
		region:     region,
	}, nil
}

// UploadFile carrega um arquivo para o S3 e retorna a chave do objeto.
func (s *S3StorageProvider) UploadFile(ctx context.Context, objectName string, fileContent io.Reader) (string, error) {
	if s == nil || s.client == nil || s.uploader == nil || s.bucketName == "" {
		return "", fmt.Errorf("S3 provider not initialized or configured correctly")
	}

	// O S3 Upload Manager lida com multipart uploads automaticamente para arquivos maiores.
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(objectName),
		Body:   fileContent,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3 (bucket: %s, key: %s): %w", s.bucketName, objectName, err)
	}

	return objectName, nil
}

// DeleteFile remove um objeto do bucket.
func (s *S3StorageProvider) DeleteFile(ctx context.Context, objectName string) error {
	if s == nil || s.client == nil || s.bucketName == "" {
		return fmt.Errorf("S3 provider not initialized or configured correctly")
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(objectName),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3 (bucket: %s, key: %s): %w", s.bucketName, objectName, err)
	}
	return nil
}
