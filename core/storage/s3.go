package storage

import (
	"context"
	"time"

	"vetcare-api/core/config"
	"vetcare-api/core/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader hands out presigned PUT URLs for gallery images. The API never
// proxies image bytes; clients upload directly against the returned URL.
type Uploader struct {
	presigner *s3.PresignClient
	bucket    string
	ttl       time.Duration
}

func NewUploader(cfg config.StorageConfig) *Uploader {
	awsCfg := aws.Config{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
	}

	client := s3.NewFromConfig(awsCfg)
	return &Uploader{
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.Bucket,
		ttl:       time.Duration(cfg.PresignTTLMins) * time.Minute,
	}
}

// PresignPut returns a URL the client can PUT an object to, valid for the
// configured TTL.
func (u *Uploader) PresignPut(ctx context.Context, key, contentType string) (string, error) {
	req, err := u.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(u.ttl))
	if err != nil {
		logger.Error("Storage:PresignPut:Error", "error", err, "key", key)
		return "", err
	}
	return req.URL, nil
}
