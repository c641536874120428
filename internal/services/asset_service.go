// internal/services/asset_service.go
package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/artwork-storefront/internal/config"
)

// AssetService turns stored image references into URLs a browser can load.
// Catalog rows may hold either absolute URLs or bare object keys in the asset
// bucket; only the latter are rewritten.
type AssetService struct {
	s3Client   *s3.S3
	bucket     string
	region     string
	cdnBaseURL string
	presignTTL time.Duration
}

func NewAssetService(cfg config.AWSConfig) (*AssetService, error) {
	svc := &AssetService{
		bucket:     cfg.S3Bucket,
		region:     cfg.Region,
		cdnBaseURL: strings.TrimRight(cfg.CloudFrontURL, "/"),
		presignTTL: time.Duration(cfg.PresignTTL) * time.Minute,
	}
	if svc.presignTTL <= 0 {
		svc.presignTTL = time.Hour
	}

	if cfg.AccessKeyID == "" || cfg.S3Bucket == "" {
		// Keys resolve through the CDN or the public bucket URL only
		return svc, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	svc.s3Client = s3.New(sess)
	return svc, nil
}

// ResolveURL is safe on a nil receiver, which leaves every value untouched.
func (s *AssetService) ResolveURL(value string) string {
	ref := strings.TrimSpace(value)
	if s == nil || ref == "" || isAbsoluteURL(ref) {
		return ref
	}

	key := strings.TrimLeft(ref, "/")
	switch {
	case s.cdnBaseURL != "":
		return fmt.Sprintf("%s/%s", s.cdnBaseURL, key)
	case s.s3Client != nil:
		url, err := s.presign(key)
		if err != nil {
			logrus.WithError(err).WithField("key", key).Warn("Failed to presign asset URL")
			return ref
		}
		return url
	case s.bucket != "":
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
	default:
		return ref
	}
}

func (s *AssetService) presign(key string) (string, error) {
	req, _ := s.s3Client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})

	url, err := req.Presign(s.presignTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return url, nil
}

func isAbsoluteURL(ref string) bool {
	lower := strings.ToLower(ref)
	for _, prefix := range []string{"http://", "https://", "//", "data:"} {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
