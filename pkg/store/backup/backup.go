package backup

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/de-tools/assistant-migrator/pkg/models/domain"
	"github.com/spf13/afero"
)

const s3Scheme = "s3://"

// Sink stores one backup document under a name.
type Sink interface {
	Write(ctx context.Context, name string, payload []byte) error
}

// NewSink picks the S3 sink for s3://bucket/prefix locations and the local
// filesystem otherwise.
func NewSink(ctx context.Context, location string) (Sink, error) {
	if location == "" {
		return nil, fmt.Errorf("%w: backup directory is empty", domain.ErrConfig)
	}
	if !strings.HasPrefix(location, s3Scheme) {
		return NewFileSink(afero.NewOsFs(), location), nil
	}

	bucket, prefix, err := parseS3Location(location)
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load aws config: %w", domain.ErrConfig, err)
	}
	return NewS3Sink(s3.NewFromConfig(cfg), bucket, prefix), nil
}

func parseS3Location(location string) (string, string, error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("%w: backup location %q: %w", domain.ErrConfig, location, err)
	}
	if u.Host == "" {
		return "", "", fmt.Errorf("%w: backup location %q has no bucket", domain.ErrConfig, location)
	}
	return u.Host, strings.Trim(u.Path, "/"), nil
}
