// Package storage uploads profile media to S3-compatible object storage.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Provider represents the S3-compatible storage provider
type Provider string

const (
	ProviderAWS    Provider = "aws"
	ProviderWasabi Provider = "wasabi"
)

// WasabiEndpoints maps regions to Wasabi endpoints
var WasabiEndpoints = map[string]string{
	"us-east-1":      "s3.us-east-1.wasabisys.com",
	"us-east-2":      "s3.us-east-2.wasabisys.com",
	"us-west-1":      "s3.us-west-1.wasabisys.com",
	"eu-central-1":   "s3.eu-central-1.wasabisys.com",
	"eu-west-1":      "s3.eu-west-1.wasabisys.com",
	"ap-southeast-1": "s3.ap-southeast-1.wasabisys.com",
}

// Config holds configuration for S3-compatible storage
type Config struct {
	Provider        Provider
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string

	// Wasabi-specific endpoint, e.g. "s3.ap-southeast-1.wasabisys.com".
	// Resolved from WasabiEndpoints when empty.
	WasabiEndpoint string
}

// IsConfigured reports whether enough settings are present to build a client.
func (c Config) IsConfigured() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != "" && c.Region != "" && c.Bucket != ""
}

// Client wraps the S3 API for media uploads.
type Client struct {
	api      *s3.Client
	bucket   string
	endpoint string
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if !cfg.IsConfigured() {
		return nil, fmt.Errorf("storage: incomplete S3 configuration")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: load aws config: %w", err)
	}

	endpoint := ""
	if cfg.Provider == ProviderWasabi {
		endpoint = cfg.WasabiEndpoint
		if endpoint == "" {
			endpoint = WasabiEndpoints[cfg.Region]
		}
		if endpoint == "" {
			return nil, fmt.Errorf("storage: no Wasabi endpoint for region %s", cfg.Region)
		}
	}

	api := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String("https://" + endpoint)
		}
	})

	return &Client{api: api, bucket: cfg.Bucket, endpoint: endpoint}, nil
}

// Upload stores body under key and returns the object's public URL.
func (c *Client) Upload(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	key = strings.TrimPrefix(key, "/")

	_, err := c.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("storage: put object: %w", err)
	}

	return c.ObjectURL(key), nil
}

// ObjectURL builds the public URL for an uploaded key.
func (c *Client) ObjectURL(key string) string {
	if c.endpoint != "" {
		return fmt.Sprintf("https://%s/%s/%s", c.endpoint, c.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", c.bucket, key)
}
