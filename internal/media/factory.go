package media

import (
	"fmt"

	"go.uber.org/zap"
)

// Config selects and configures the upload provider.
type Config struct {
	Provider   string
	Cloudinary CloudinaryConfig
	S3         S3Config
}

// New builds the uploader for cfg.Provider; an empty provider means none.
func New(cfg Config, logger *zap.Logger) (Uploader, error) {
	switch cfg.Provider {
	case "", ProviderNone:
		return Noop{}, nil
	case ProviderCloudinary:
		u, err := NewCloudinaryUploader(cfg.Cloudinary, logger)
		if err != nil {
			return nil, err
		}
		return u, nil
	case ProviderS3:
		u, err := NewS3Uploader(cfg.S3, logger)
		if err != nil {
			return nil, err
		}
		return u, nil
	}
	return nil, fmt.Errorf("unknown media provider %q", cfg.Provider)
}
