// Package mainconfig centralizes AWS SDK initialization for the binaries, so
// the SES wiring stays in one place.
package mainconfig

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"

	appconfig "github.com/buburuebi/healthcare-booking/internal/config"
)

// LoadAWSConfig loads the AWS SDK configuration for the configured region.
// Credentials come from the default chain (env, shared config, instance role).
func LoadAWSConfig(ctx context.Context, cfg *appconfig.Config) (aws.Config, error) {
	var loaders []func(*config.LoadOptions) error
	if cfg.AWSRegion != "" {
		loaders = append(loaders, config.WithRegion(cfg.AWSRegion))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return aws.Config{}, err
	}
	return awsCfg, nil
}
