package configs

import (
	"fmt"

	"github.com/spf13/viper"
)

// BlobConfig holds the S3-compatible object store settings.
type BlobConfig struct {
	Type            string `mapstructure:"type"              rule:"oneof=minio memory"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	BucketName      string `mapstructure:"bucket_name"`
	Region          string `mapstructure:"region"`
}

const (
	DefaultBlobType            = "minio"
	DefaultBlobEndpoint        = "localhost:9000"
	DefaultBlobAccessKeyID     = "minioadmin"
	DefaultBlobSecretAccessKey = "minioadmin"
	DefaultBlobUseSSL          = false
	DefaultBlobBucketName      = "cloudnest"
	DefaultBlobRegion          = "us-east-1"
)

// GetEndpointURL returns the endpoint with the scheme implied by UseSSL.
func (c *BlobConfig) GetEndpointURL() string {
	scheme := "http"
	if c.UseSSL {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s", scheme, c.Endpoint)
}

func (c *BlobConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("blob.type", DefaultBlobType)
	v.SetDefault("blob.endpoint", DefaultBlobEndpoint)
	v.SetDefault("blob.access_key_id", DefaultBlobAccessKeyID)
	v.SetDefault("blob.secret_access_key", DefaultBlobSecretAccessKey)
	v.SetDefault("blob.use_ssl", DefaultBlobUseSSL)
	v.SetDefault("blob.bucket_name", DefaultBlobBucketName)
	v.SetDefault("blob.region", DefaultBlobRegion)
}
