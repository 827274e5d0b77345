package internal

import (
	"os"

	"github.com/spf13/viper"
	"github.com/wal-g/tracelog"
)

const (
	RegionSetting         = "S3SWEEP_REGION"
	EndpointSetting       = "S3SWEEP_S3_ENDPOINT"
	ForcePathStyleSetting = "S3SWEEP_S3_FORCE_PATH_STYLE"
	MaxRetriesSetting     = "S3SWEEP_S3_MAX_RETRIES"
	MaxSelectSetting      = "S3SWEEP_MAX_SELECT"
	ProtectedNamesSetting = "S3SWEEP_PROTECTED_NAMES"
	LogLevelSetting       = "S3SWEEP_LOG_LEVEL"

	AccessKeyIDSetting     = "AWS_ACCESS_KEY_ID"
	SecretAccessKeySetting = "AWS_SECRET_ACCESS_KEY"
	SessionTokenSetting    = "AWS_SESSION_TOKEN"
)

// CfgFile is bound to the --config persistent flag.
var CfgFile string

// InitConfig reads in the config file if one is found and merges the
// environment. Settings keys double as environment variable names, so a
// plain environment-only setup needs no file at all.
func InitConfig() {
	if CfgFile != "" {
		viper.SetConfigFile(CfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".s3sweep")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		tracelog.DebugLogger.Printf("Using config file: %s", viper.ConfigFileUsed())
	}
}

func LookupConfigValue(key string) (value string, ok bool) {
	if viper.IsSet(key) {
		return viper.GetString(key), true
	}
	return os.LookupEnv(key)
}
