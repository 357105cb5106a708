package media

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const cloudinaryBaseURL = "https://api.cloudinary.com/v1_1"

// CloudinaryConfig holds the account credentials of an image upload.
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
	BaseURL   string
	Timeout   time.Duration
}

// CloudinaryUploader posts images to the Cloudinary upload API with a signed request.
type CloudinaryUploader struct {
	client *resty.Client
	cfg    CloudinaryConfig
	now    func() time.Time
	logger *zap.Logger
}

type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func NewCloudinaryUploader(cfg CloudinaryConfig, logger *zap.Logger) (*CloudinaryUploader, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, errors.New("cloudinary cloud name, api key and api secret are required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = cloudinaryBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout)

	return &CloudinaryUploader{
		client: client,
		cfg:    cfg,
		now:    time.Now,
		logger: logger,
	}, nil
}

// Upload sends content as a multipart image upload and returns the secure URL.
func (u *CloudinaryUploader) Upload(ctx context.Context, name string, content io.Reader) (string, error) {
	timestamp := strconv.FormatInt(u.now().Unix(), 10)

	params := map[string]string{
		"timestamp": timestamp,
	}
	if u.cfg.Folder != "" {
		params["folder"] = u.cfg.Folder
	}

	form := map[string]string{
		"api_key":   u.cfg.APIKey,
		"signature": u.sign(params),
	}
	for k, v := range params {
		form[k] = v
	}

	var out cloudinaryResponse
	resp, err := u.client.R().
		SetContext(ctx).
		SetFileReader("file", name, content).
		SetFormData(form).
		SetResult(&out).
		SetError(&out).
		Post("/" + u.cfg.CloudName + "/image/upload")
	if err != nil {
		return "", errors.Wrap(err, "cloudinary upload request failed")
	}

	if resp.IsError() {
		msg := resp.Status()
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		return "", errors.Errorf("cloudinary upload rejected: %s", msg)
	}
	if out.SecureURL == "" {
		return "", errors.New("cloudinary response has no secure_url")
	}

	u.logger.Info("Uploaded image", zap.String("provider", ProviderCloudinary), zap.String("public_id", out.PublicID))
	return out.SecureURL, nil
}

// sign follows the Cloudinary scheme: sorted "k=v" pairs joined by "&",
// suffixed with the secret and SHA-1 hashed.
func (u *CloudinaryUploader) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + u.cfg.APISecret))
	return hex.EncodeToString(sum[:])
}
