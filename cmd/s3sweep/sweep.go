package s3sweep

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/wal-g/tracelog"

	"github.com/s3sweep/s3sweep/internal"
	"github.com/s3sweep/s3sweep/internal/prompt"
)

const (
	sweepShortDescription = "Empties and deletes interactively selected buckets"

	confirmFlag = "confirm"
)

var confirmed = false

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: sweepShortDescription,
	Args:  cobra.NoArgs,
	Run:   runSweep,
}

func runSweep(cmd *cobra.Command, args []string) {
	err := internal.ConfigureLogging()
	tracelog.ErrorLogger.FatalOnError(err)

	client, err := internal.ConfigureBucketClient()
	tracelog.ErrorLogger.FatalOnError(err)

	limits, err := internal.ConfigureSelectionLimits()
	tracelog.ErrorLogger.FatalOnError(err)

	handler := internal.NewSweepHandler(client, prompt.NewSurveyPrompter(),
		internal.NewSelectionValidator(limits), os.Stdout)

	err = handler.HandleSweep(confirmed)
	if internal.IsCancelledError(err) {
		os.Exit(1)
	}
	tracelog.ErrorLogger.FatalOnError(err)
}

func init() {
	RootCmd.AddCommand(sweepCmd)
	sweepCmd.Flags().BoolVar(&confirmed, confirmFlag, false, "Skips the confirmation prompt")
}
