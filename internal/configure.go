package internal

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/wal-g/tracelog"

	"github.com/s3sweep/s3sweep/pkg/storages/s3"
	"github.com/s3sweep/s3sweep/pkg/storages/storage"
)

// ConfigureLogging applies the configured log level before any handler runs.
func ConfigureLogging() error {
	if logLevel, ok := LookupConfigValue(LogLevelSetting); ok {
		return tracelog.UpdateLogLevel(logLevel)
	}
	return nil
}

func ConfigureBucketClient() (storage.BucketClient, error) {
	config, err := configureStorage()
	if err != nil {
		return nil, err
	}
	client, err := s3.NewClient(config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to configure bucket client")
	}
	return client, nil
}

func configureStorage() (*s3.Config, error) {
	config := &s3.Config{}
	config.Region, _ = LookupConfigValue(RegionSetting)
	config.Endpoint, _ = LookupConfigValue(EndpointSetting)
	config.AccessKeyID, _ = LookupConfigValue(AccessKeyIDSetting)
	config.SecretAccessKey, _ = LookupConfigValue(SecretAccessKeySetting)
	config.SessionToken, _ = LookupConfigValue(SessionTokenSetting)

	if forcePathStyleRaw, ok := LookupConfigValue(ForcePathStyleSetting); ok {
		forcePathStyle, err := strconv.ParseBool(forcePathStyleRaw)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s", ForcePathStyleSetting)
		}
		config.ForcePathStyle = forcePathStyle
	}

	if maxRetriesRaw, ok := LookupConfigValue(MaxRetriesSetting); ok {
		maxRetries, err := strconv.Atoi(maxRetriesRaw)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s", MaxRetriesSetting)
		}
		config.MaxRetries = maxRetries
	}

	return config, nil
}

// ConfigureSelectionLimits builds the validator limits from settings,
// falling back to the built-in defaults.
func ConfigureSelectionLimits() (SelectionLimits, error) {
	limits := SelectionLimits{
		MaxSelections:  DefaultMaxSelections,
		ProtectedNames: DefaultProtectedNames,
	}

	if maxSelectRaw, ok := LookupConfigValue(MaxSelectSetting); ok {
		maxSelect, err := strconv.Atoi(maxSelectRaw)
		if err != nil {
			return SelectionLimits{}, errors.Wrapf(err, "failed to parse %s", MaxSelectSetting)
		}
		if maxSelect <= 0 {
			return SelectionLimits{}, errors.Errorf("%s must be positive, got %d", MaxSelectSetting, maxSelect)
		}
		limits.MaxSelections = maxSelect
	}

	if protectedNamesRaw, ok := LookupConfigValue(ProtectedNamesSetting); ok {
		limits.ProtectedNames = splitProtectedNames(protectedNamesRaw)
	}

	return limits, nil
}

func splitProtectedNames(raw string) []string {
	names := make([]string, 0)
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}
