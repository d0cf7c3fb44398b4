// Where: internal/infra/sitemapio/s3.go
// What: S3-backed object storage for site map documents.
// Why: Encapsulate SDK configuration, including S3-compatible local endpoints.
package sitemapio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultAWSRegion = "us-east-1"

// S3API is the subset of the S3 client used here.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Options configures the S3 client. Empty fields fall back to the
// default AWS configuration chain.
type S3Options struct {
	Endpoint     string
	Region       string
	UsePathStyle bool
	AccessKey    string
	SecretKey    string
}

// NewS3Client builds an S3 client from opts.
func NewS3Client(ctx context.Context, opts S3Options) (*s3.Client, error) {
	region := opts.Region
	if region == "" {
		region = defaultAWSRegion
	}
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		creds := credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")
		loadOpts = append(loadOpts, config.WithCredentialsProvider(creds))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return s3.NewFromConfig(cfg, func(options *s3.Options) {
		if opts.Endpoint != "" {
			options.BaseEndpoint = aws.String(opts.Endpoint)
		}
		options.UsePathStyle = opts.UsePathStyle
	}), nil
}

// S3ObjectStore adapts an S3 client to ObjectStore.
type S3ObjectStore struct {
	client S3API
}

func NewS3ObjectStore(client S3API) *S3ObjectStore {
	return &S3ObjectStore{client: client}
}

func (s *S3ObjectStore) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	if s.client == nil {
		return nil, fmt.Errorf("s3 client is nil")
	}
	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

func (s *S3ObjectStore) PutObject(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	if s.client == nil {
		return fmt.Errorf("s3 client is nil")
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	return err
}

// LazyS3ObjectStore defers client construction until the first remote
// access, so local-only runs never touch AWS configuration.
type LazyS3ObjectStore struct {
	opts    S3Options
	newAPI  func(context.Context, S3Options) (S3API, error)
	once    sync.Once
	store   *S3ObjectStore
	initErr error
}

func NewLazyS3ObjectStore(opts S3Options) *LazyS3ObjectStore {
	return &LazyS3ObjectStore{
		opts: opts,
		newAPI: func(ctx context.Context, opts S3Options) (S3API, error) {
			client, err := NewS3Client(ctx, opts)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	}
}

func (l *LazyS3ObjectStore) resolve(ctx context.Context) (*S3ObjectStore, error) {
	l.once.Do(func() {
		client, err := l.newAPI(ctx, l.opts)
		if err != nil {
			l.initErr = err
			return
		}
		l.store = NewS3ObjectStore(client)
	})
	return l.store, l.initErr
}

func (l *LazyS3ObjectStore) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	store, err := l.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return store.GetObject(ctx, bucket, key)
}

func (l *LazyS3ObjectStore) PutObject(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	store, err := l.resolve(ctx)
	if err != nil {
		return err
	}
	return store.PutObject(ctx, bucket, key, body, contentType)
}
