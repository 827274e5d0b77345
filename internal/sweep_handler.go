package internal

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/table"
	"github.com/pkg/errors"
	"github.com/wal-g/tracelog"

	"github.com/s3sweep/s3sweep/internal/prompt"
	"github.com/s3sweep/s3sweep/pkg/storages/storage"
)

const confirmHelpMessage = "There's no turning back from here"

// CancelledError marks an operator-declined run. It is terminal but not a
// failure: nothing was deleted.
type CancelledError struct {
	error
}

func newCancelledError() CancelledError {
	return CancelledError{errors.New("cancelled by operator")}
}

func IsCancelledError(err error) bool {
	_, ok := errors.Cause(err).(CancelledError)
	return ok
}

// SweepHandler drives the interactive workflow: enumerate, select with live
// validation, confirm, then hand off to the delete handler and report.
type SweepHandler struct {
	client    storage.BucketClient
	prompter  prompt.Prompter
	validator *SelectionValidator
	output    io.Writer
}

func NewSweepHandler(
	client storage.BucketClient,
	prompter prompt.Prompter,
	validator *SelectionValidator,
	output io.Writer,
) *SweepHandler {
	return &SweepHandler{
		client:    client,
		prompter:  prompter,
		validator: validator,
		output:    output,
	}
}

// HandleSweep returns an error only when the run could not start
// (enumeration failure) or was cancelled. Per-bucket failures during
// execution are reported and summarized but still count as a completed run.
func (h *SweepHandler) HandleSweep(confirmed bool) error {
	fmt.Fprintln(h.output, "Finding buckets...")
	buckets, err := h.client.ListBuckets()
	if err != nil {
		return errors.Wrap(err, "failed to list buckets")
	}
	if len(buckets) == 0 {
		fmt.Fprintln(h.output, "No buckets found")
		return nil
	}

	selected, err := h.selectBuckets(buckets)
	if err != nil {
		return err
	}

	fmt.Fprintf(h.output, "Deleting %d buckets\n\t - %s\n", len(selected), strings.Join(selected, "\n\t - "))

	if !confirmed {
		proceed, err := h.prompter.Confirm(
			fmt.Sprintf("Do you wish to proceed? This action will delete %d buckets", len(selected)),
			false, confirmHelpMessage)
		if err != nil || !proceed {
			fmt.Fprintln(h.output, "Quitting")
			return newCancelledError()
		}
	}

	results := NewDeleteHandler(h.client, h.output).HandleDeleteBuckets(selected)
	WriteSweepSummary(results, h.output)
	fmt.Fprintln(h.output, "Done!")
	return nil
}

func (h *SweepHandler) selectBuckets(buckets []string) ([]string, error) {
	selected, err := h.prompter.MultiSelect("Select buckets to be removed", buckets, h.validator.Validate)
	if err != nil {
		tracelog.DebugLogger.Printf("selection prompt aborted: %v", err)
		fmt.Fprintln(h.output, "Quitting")
		return nil, newCancelledError()
	}
	// The prompt enforces validity on submit; re-check so a misbehaving
	// prompter implementation can't smuggle an invalid selection through.
	if err := h.validator.Validate(selected); err != nil {
		return nil, err
	}
	return selected, nil
}

func WriteSweepSummary(results []BucketResult, output io.Writer) {
	writer := table.NewWriter()
	writer.SetOutputMirror(output)
	defer writer.Render()
	writer.AppendHeader(table.Row{"#", "Bucket", "Result"})
	for i, result := range results {
		writer.AppendRow(table.Row{i, result.Bucket, result.Describe()})
	}
}
