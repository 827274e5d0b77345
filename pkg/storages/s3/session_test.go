package s3

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	config := &Config{}

	assert.Equal(t, DefaultRegion, config.regionOrDefault())
	assert.Equal(t, MaxRetriesDefault, config.maxRetriesOrDefault())

	config = &Config{Region: "eu-west-1", MaxRetries: 3}
	assert.Equal(t, "eu-west-1", config.regionOrDefault())
	assert.Equal(t, 3, config.maxRetriesOrDefault())
}

func TestConfigWithSettings(t *testing.T) {
	s, err := session.NewSession()
	require.NoError(t, err)

	awsConfig := configWithSettings(s, &Config{
		Endpoint:       "http://localhost:9000",
		ForcePathStyle: true,
	})

	assert.Equal(t, DefaultRegion, aws.StringValue(awsConfig.Region))
	assert.Equal(t, "http://localhost:9000", aws.StringValue(awsConfig.Endpoint))
	assert.True(t, aws.BoolValue(awsConfig.S3ForcePathStyle))
	assert.IsType(t, &ConnResetRetryer{}, awsConfig.Retryer)
}
