package internal_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wal-g/tracelog"

	"github.com/s3sweep/s3sweep/internal"
)

func TestConfigureSelectionLimitsDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	limits, err := internal.ConfigureSelectionLimits()

	require.NoError(t, err)
	assert.Equal(t, internal.DefaultMaxSelections, limits.MaxSelections)
	assert.Equal(t, internal.DefaultProtectedNames, limits.ProtectedNames)
}

func TestConfigureSelectionLimitsOverrides(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.Set(internal.MaxSelectSetting, "2")
	viper.Set(internal.ProtectedNamesSetting, "alpha, beta,,")

	limits, err := internal.ConfigureSelectionLimits()

	require.NoError(t, err)
	assert.Equal(t, 2, limits.MaxSelections)
	assert.Equal(t, []string{"alpha", "beta"}, limits.ProtectedNames)
}

func TestConfigureSelectionLimitsRejectsMalformedCount(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.Set(internal.MaxSelectSetting, "five")

	_, err := internal.ConfigureSelectionLimits()

	require.Error(t, err)
	assert.Contains(t, err.Error(), internal.MaxSelectSetting)
}

func TestConfigureSelectionLimitsRejectsNonPositiveCount(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.Set(internal.MaxSelectSetting, "0")

	_, err := internal.ConfigureSelectionLimits()

	assert.Error(t, err)
}

func TestConfigureLogging(t *testing.T) {
	viper.Reset()
	defer func() {
		viper.Reset()
		_ = tracelog.UpdateLogLevel(tracelog.NormalLogLevel)
	}()

	assert.NoError(t, internal.ConfigureLogging())

	viper.Set(internal.LogLevelSetting, tracelog.DevelLogLevel)
	assert.NoError(t, internal.ConfigureLogging())

	viper.Set(internal.LogLevelSetting, "TRACE")
	assert.Error(t, internal.ConfigureLogging())
}

func TestConfigureBucketClientRejectsMalformedSettings(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.Set(internal.ForcePathStyleSetting, "yes-please")

	_, err := internal.ConfigureBucketClient()

	require.Error(t, err)
	assert.Contains(t, err.Error(), internal.ForcePathStyleSetting)
}

func TestConfigureBucketClientMalformedRetries(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.Set(internal.MaxRetriesSetting, "many")

	_, err := internal.ConfigureBucketClient()

	require.Error(t, err)
	assert.Contains(t, err.Error(), internal.MaxRetriesSetting)
}
