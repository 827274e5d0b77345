package s3

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/defaults"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
)

const (
	// DefaultRegion is used when no region is configured. It is also the
	// region S3-compatible services (Minio, Ceph etc.) expect.
	DefaultRegion = "us-east-1"

	MaxRetriesDefault = 15
)

// Config carries the parsed storage settings. Credential fields are an
// optional static override of the default AWS credential chain.
type Config struct {
	Region         string
	Endpoint       string
	ForcePathStyle bool
	MaxRetries     int

	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

func (config *Config) regionOrDefault() string {
	if config.Region == "" {
		return DefaultRegion
	}
	return config.Region
}

func (config *Config) maxRetriesOrDefault() int {
	if config.MaxRetries <= 0 {
		return MaxRetriesDefault
	}
	return config.MaxRetries
}

func configWithSettings(s *session.Session, config *Config) *aws.Config {
	awsConfig := request.WithRetryer(s.Config,
		NewConnResetRetryer(client.DefaultRetryer{NumMaxRetries: config.maxRetriesOrDefault()}))

	if config.AccessKeyID != "" && config.SecretAccessKey != "" {
		provider := &credentials.StaticProvider{Value: credentials.Value{
			AccessKeyID:     config.AccessKeyID,
			SecretAccessKey: config.SecretAccessKey,
			SessionToken:    config.SessionToken,
		}}
		providers := make([]credentials.Provider, 0)
		providers = append(providers, provider)
		providers = append(providers, defaults.CredProviders(awsConfig, defaults.Handlers())...)
		newCredentials := credentials.NewCredentials(&credentials.ChainProvider{
			VerboseErrors: aws.BoolValue(awsConfig.CredentialsChainVerboseErrors),
			Providers:     providers,
		})
		awsConfig = awsConfig.WithCredentials(newCredentials)
	}

	if config.Endpoint != "" {
		awsConfig = awsConfig.WithEndpoint(config.Endpoint)
	}
	awsConfig.S3ForcePathStyle = aws.Bool(config.ForcePathStyle)

	return awsConfig.WithRegion(config.regionOrDefault())
}

func createSession(config *Config) (*session.Session, error) {
	s, err := session.NewSession()
	if err != nil {
		return nil, err
	}
	s.Config = configWithSettings(s, config)
	return s, nil
}
