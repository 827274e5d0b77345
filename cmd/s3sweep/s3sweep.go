package s3sweep

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/s3sweep/s3sweep/internal"
)

const shortDescription = "Interactive bulk removal tool for S3 buckets"

// These variables are here only to show current version. They are set in makefile during build process
var Version = "devel"
var GitRevision = "devel"
var BuildDate = "devel"

var RootCmd = &cobra.Command{
	Use:     "s3sweep",
	Short:   shortDescription,
	Version: Version + "\t" + GitRevision + "\t" + BuildDate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(internal.InitConfig)

	RootCmd.PersistentFlags().StringVar(&internal.CfgFile, "config", "", "config file (default is $HOME/.s3sweep.yaml)")
	RootCmd.InitDefaultVersionFlag()
}
