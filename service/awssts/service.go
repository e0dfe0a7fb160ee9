// Package awssts resolves the AWS account the artifact mirror uploads as.
package awssts

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// NewService creates a new STS service.
func NewService(awsconfig aws.Config) Service {
	return &service{client: sts.NewFromConfig(awsconfig)}
}

// NewServiceWithClient creates an STS service on an existing client.
func NewServiceWithClient(client STSClientAPI) Service {
	return &service{client: client}
}

func (s *service) GetAccountID(ctx context.Context) (string, error) {
	out, err := s.client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("get caller identity: %w", err)
	}
	account := aws.ToString(out.Account)
	if account == "" {
		return "", errors.New("get caller identity: empty account")
	}
	return account, nil
}
