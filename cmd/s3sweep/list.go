package s3sweep

import (
	"github.com/spf13/cobra"
	"github.com/wal-g/tracelog"

	"github.com/s3sweep/s3sweep/internal"
)

const (
	listShortDescription = "Prints all buckets visible to the caller"

	prettyFlag = "pretty"
	jsonFlag   = "json"
)

var (
	pretty = false
	inJSON = false
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: listShortDescription,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := internal.ConfigureLogging()
		tracelog.ErrorLogger.FatalOnError(err)

		client, err := internal.ConfigureBucketClient()
		tracelog.ErrorLogger.FatalOnError(err)

		internal.DefaultHandleBucketList(client, pretty, inJSON)
	},
}

func init() {
	RootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&pretty, prettyFlag, false, "Prints the list in a table")
	listCmd.Flags().BoolVar(&inJSON, jsonFlag, false, "Prints the list in JSON format")
}
