package blob

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/google/uuid"

	"github.com/cotishq/cloudnest/pkg/configs"
	nlog "github.com/cotishq/cloudnest/pkg/log"
)

// MinioStore stores objects in an S3-compatible bucket via minio-go.
type MinioStore struct {
	client *minio.Client
	bucket string
	// baseURL prefixes public object URLs, e.g. http://localhost:9000.
	baseURL string
}

// NewMinioStore connects to the configured endpoint and creates the bucket
// when it does not exist yet.
func NewMinioStore(ctx context.Context, cfg *configs.BlobConfig) (Store, error) {
	endpoint := cfg.Endpoint
	useSSL := cfg.UseSSL
	// Allow a full scheme endpoint (http:// or https://).
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		endpoint = u.Host
		if u.Scheme == "https" {
			useSSL = true
		}
	}

	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: useSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	cli.SetAppInfo(configs.AppName, configs.AppVersion)

	exists, err := cli.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.BucketName, err)
	}

	if !exists {
		if err := cli.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.BucketName, err)
		}

		nlog.Logger().Info().Str("bucket", cfg.BucketName).Msg("bucket created")
	}

	scheme := "http"
	if useSSL {
		scheme = "https"
	}

	nlog.Logger().Info().Str("endpoint", cfg.Endpoint).Str("bucket", cfg.BucketName).Msg("blob store connected")

	return &MinioStore{
		client:  cli,
		bucket:  cfg.BucketName,
		baseURL: fmt.Sprintf("%s://%s", scheme, endpoint),
	}, nil
}

// Put writes the object under a fresh uuid-named key inside the owner's
// scope, so uploads with the same display name never collide.
func (s *MinioStore) Put(ctx context.Context, in PutInput) (PutResult, error) {
	object := uuid.NewString()
	if ext := path.Ext(in.Name); ext != "" {
		object += ext
	}

	key := ScopedKey(in.OwnerID, in.ParentID, object)

	_, err := s.client.PutObject(ctx, s.bucket, key, in.Reader, in.Size, minio.PutObjectOptions{
		ContentType: in.ContentType,
	})
	if err != nil {
		return PutResult{}, fmt.Errorf("put object %s: %w", key, err)
	}

	return PutResult{
		Key: key,
		URL: fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, key),
	}, nil
}

// Delete removes the object; a missing key is treated as already deleted.
func (s *MinioStore) Delete(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return nil
		}

		return fmt.Errorf("remove object %s: %w", key, err)
	}

	return nil
}

// FindKeyByName scans the owner's prefix for an object whose final segment
// matches name.
func (s *MinioStore) FindKeyByName(ctx context.Context, ownerID, name string) (string, error) {
	prefix := fmt.Sprintf("%s/%s/", configs.AppName, ownerID)

	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return "", fmt.Errorf("list objects under %s: %w", prefix, obj.Err)
		}

		if strings.EqualFold(path.Base(obj.Key), name) {
			return obj.Key, nil
		}
	}

	return "", ErrKeyNotFound
}

// HealthCheck verifies connectivity by probing the bucket.
func (s *MinioStore) HealthCheck(ctx context.Context) error {
	_, err := s.client.BucketExists(ctx, s.bucket)
	return err
}

func (s *MinioStore) Close() error {
	return nil
}

func init() {
	RegisterFactory("minio", NewMinioStore)
}
