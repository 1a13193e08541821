package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"dashboard-api/pkg/resource"
)

var Config aws.Config

// Init loads the AWS configuration. Custom endpoint and static credentials
// support LocalStack; without them the default credential chain applies.
func Init(ctx context.Context) error {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(resource.GetString("app.cloud.aws-region")),
	}

	if accessKey := resource.GetString("app.cloud.aws-access-key-id"); accessKey != "" {
		secretKey := resource.GetString("app.cloud.aws-secret-access-key")
		if secretKey != "" {
			opts = append(opts, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")))
		}
	}

	if endpoint := resource.GetString("app.cloud.aws-endpoint"); endpoint != "" {
		opts = append(opts, config.WithBaseEndpoint(endpoint))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	Config = cfg
	return nil
}
