package media

import (
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// S3Config selects the bucket photos go to. PublicBaseURL, when set,
// replaces the bucket URL in returned links (a CDN in front of the bucket).
type S3Config struct {
	Bucket        string
	Region        string
	Folder        string
	PublicBaseURL string
}

type s3Uploader interface {
	UploadWithContext(ctx aws.Context, input *s3manager.UploadInput, opts ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error)
}

// S3Uploader stores photos in an S3 bucket through the managed uploader.
type S3Uploader struct {
	uploader s3Uploader
	cfg      S3Config
	logger   *zap.Logger
}

func NewS3Uploader(cfg S3Config, logger *zap.Logger) (*S3Uploader, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket is required")
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create aws session")
	}

	return newS3Uploader(s3manager.NewUploader(sess), cfg, logger), nil
}

func newS3Uploader(uploader s3Uploader, cfg S3Config, logger *zap.Logger) *S3Uploader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &S3Uploader{uploader: uploader, cfg: cfg, logger: logger}
}

func (u *S3Uploader) Upload(ctx context.Context, name string, content io.Reader) (string, error) {
	key := objectKey(u.cfg.Folder, name)

	out, err := u.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		ACL:    aws.String("public-read"),
		Bucket: aws.String(u.cfg.Bucket),
		Key:    aws.String(key),
		Body:   content,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to upload %s to s3", name)
	}

	u.logger.Info("Uploaded image", zap.String("provider", ProviderS3), zap.String("key", key))

	if u.cfg.PublicBaseURL != "" {
		return strings.TrimRight(u.cfg.PublicBaseURL, "/") + "/" + key, nil
	}
	return out.Location, nil
}
