package configs

import "github.com/spf13/viper"

const (
	// DefaultUploadMaxSizeBytes caps a single uploaded file at 10 MB.
	DefaultUploadMaxSizeBytes = 10 * 1024 * 1024
	// DefaultQuotaBytes is the per-user storage allowance (100 MB).
	DefaultQuotaBytes = 100 * 1024 * 1024
)

// UploadConfig holds the upload acceptance policy and the per-user quota.
type UploadConfig struct {
	AllowedTypes []string `mapstructure:"allowed_types"`
	MaxSizeBytes int64    `mapstructure:"max_size_bytes" rule:"min=1"`
	QuotaBytes   int64    `mapstructure:"quota_bytes"    rule:"min=1"`
}

func (c *UploadConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("upload.allowed_types", []string{
		"image/jpeg",
		"image/png",
		"image/webp",
		"application/pdf",
	})
	v.SetDefault("upload.max_size_bytes", DefaultUploadMaxSizeBytes)
	v.SetDefault("upload.quota_bytes", DefaultQuotaBytes)
}
