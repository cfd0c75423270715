package backup

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/de-tools/assistant-migrator/pkg/models/domain"
	"github.com/rs/zerolog"
)

// PutObjectAPI is the part of *s3.Client an S3Sink uses.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Sink struct {
	client PutObjectAPI
	bucket string
	prefix string
}

func NewS3Sink(client PutObjectAPI, bucket, prefix string) *S3Sink {
	return &S3Sink{client: client, bucket: bucket, prefix: prefix}
}

func (s *S3Sink) Write(ctx context.Context, name string, payload []byte) error {
	key := path.Join(s.prefix, name)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("%w: put s3://%s/%s: %w", domain.ErrBackupWrite, s.bucket, key, err)
	}

	zerolog.Ctx(ctx).Debug().Str("bucket", s.bucket).Str("key", key).Msg("backup uploaded")
	return nil
}
