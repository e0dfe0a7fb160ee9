// Package mirror copies the released binary to an S3 bucket.
package mirror

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
	"github.com/thirukguru/cmake-release/model"
	awssts "github.com/thirukguru/cmake-release/service/awssts"
	"github.com/thirukguru/cmake-release/shared/spinner"
)

const contentType = "application/octet-stream"

// NewService creates a mirror uploading to bucket under prefix.
func NewService(cfg aws.Config, bucket, prefix string) Service {
	return NewServiceWithClients(s3.NewFromConfig(cfg), awssts.NewService(cfg), bucket, prefix)
}

// NewServiceWithClients creates a mirror on existing clients.
func NewServiceWithClients(client S3ClientAPI, identity awssts.Service, bucket, prefix string) Service {
	return &service{
		client:   client,
		identity: identity,
		bucket:   bucket,
		prefix:   strings.Trim(prefix, "/"),
		spinner:  spinner.Start,
	}
}

// ObjectKey returns "<prefix>/<tag>/<artifactName>", without a leading slash.
func ObjectKey(prefix string, plan model.ReleasePlan) string {
	return strings.TrimPrefix(path.Join(strings.Trim(prefix, "/"), plan.Tag, plan.ArtifactName), "/")
}

func (s *service) Upload(ctx context.Context, plan model.ReleasePlan, artifact model.Artifact) (*Upload, error) {
	if s.bucket == "" {
		return nil, errors.New("mirror: bucket is required")
	}

	account, err := s.identity.GetAccountID(ctx)
	if err != nil {
		return nil, fmt.Errorf("mirror: %w", err)
	}

	f, err := os.Open(artifact.Path)
	if err != nil {
		return nil, fmt.Errorf("mirror: open artifact: %w", err)
	}
	defer f.Close()

	key := ObjectKey(s.prefix, plan)
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			"tag":     plan.Tag,
			"project": plan.Project,
		},
	}
	if artifact.Size > 0 {
		input.ContentLength = aws.Int64(artifact.Size)
	}
	if artifact.Checksum != "" {
		input.Metadata["sha256"] = artifact.Checksum
	}

	stop := s.spinner(fmt.Sprintf(" Uploading %s to s3://%s...", plan.ArtifactName, s.bucket))
	_, err = s.client.PutObject(ctx, input)
	stop()
	if err != nil {
		return nil, fmt.Errorf("mirror: put s3://%s/%s: %w", s.bucket, key, err)
	}

	uri := fmt.Sprintf("s3://%s/%s", s.bucket, key)
	log.Debug().Str("uri", uri).Str("account", account).Msg("artifact mirrored")
	return &Upload{URI: uri, AccountID: account}, nil
}
