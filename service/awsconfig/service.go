// Package awsconfig loads the AWS configuration used by the artifact mirror.
package awsconfig

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
)

// NewService creates a new AWS configuration service.
func NewService() Service {
	return &service{}
}

// GetAWSCfg loads the default config chain, optionally pinned to a region
// and shared profile. Credentials are resolved eagerly so an MFA prompt
// happens before any spinner starts.
func (s *service) GetAWSCfg(ctx context.Context, region, profile string) (aws.Config, error) {
	cfg, err := config.LoadDefaultConfig(ctx, loadOptions(region, profile)...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load AWS config: %w", err)
	}

	if cfg.Credentials != nil {
		if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
			return aws.Config{}, fmt.Errorf("failed to retrieve credentials: %w", err)
		}
	}
	return cfg, nil
}

func loadOptions(region, profile string) []func(*config.LoadOptions) error {
	var opts []func(*config.LoadOptions) error

	// Unset values fall back to AWS_REGION / AWS_PROFILE and ~/.aws/config.
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	opts = append(opts, config.WithAssumeRoleCredentialOptions(func(o *stscreds.AssumeRoleOptions) {
		o.TokenProvider = stscreds.StdinTokenProvider
	}))
	return opts
}
