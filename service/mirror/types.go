package mirror

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/thirukguru/cmake-release/model"
	awssts "github.com/thirukguru/cmake-release/service/awssts"
)

// S3ClientAPI is the interface for the AWS S3 client methods used by the service.
type S3ClientAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type service struct {
	client   S3ClientAPI
	identity awssts.Service
	bucket   string
	prefix   string
	spinner  func(suffix string) func()
}

// Upload describes a mirrored artifact.
type Upload struct {
	URI       string
	AccountID string
}

// Service is the interface for copying release artifacts to S3.
type Service interface {
	Upload(ctx context.Context, plan model.ReleasePlan, artifact model.Artifact) (*Upload, error)
}
