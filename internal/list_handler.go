package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/jedib0t/go-pretty/table"
	"github.com/wal-g/tracelog"

	"github.com/s3sweep/s3sweep/pkg/storages/storage"
)

type InfoLogger interface {
	Println(v ...interface{})
}

type ErrorLogger interface {
	FatalOnError(err error)
}

type Logging struct {
	InfoLogger  InfoLogger
	ErrorLogger ErrorLogger
}

func DefaultHandleBucketList(client storage.BucketClient, pretty, inJSON bool) {
	getBucketsFunc := func() ([]string, error) {
		return client.ListBuckets()
	}
	writeBucketListFunc := func(buckets []string) {
		switch {
		case inJSON:
			err := WriteJSONBucketList(buckets, os.Stdout)
			tracelog.ErrorLogger.FatalOnError(err)
		case pretty:
			WritePrettyBucketList(buckets, os.Stdout)
		default:
			WriteBucketList(buckets, os.Stdout)
		}
	}
	logging := Logging{
		InfoLogger:  tracelog.InfoLogger,
		ErrorLogger: tracelog.ErrorLogger,
	}

	HandleBucketList(getBucketsFunc, writeBucketListFunc, logging)
}

func HandleBucketList(
	getBucketsFunc func() ([]string, error),
	writeBucketListFunc func([]string),
	logging Logging,
) {
	buckets, err := getBucketsFunc()
	logging.ErrorLogger.FatalOnError(err)

	if len(buckets) == 0 {
		logging.InfoLogger.Println("No buckets found")
		return
	}

	writeBucketListFunc(buckets)
}

func WriteBucketList(buckets []string, output io.Writer) {
	writer := tabwriter.NewWriter(output, 0, 0, 1, ' ', 0)
	defer writer.Flush()
	fmt.Fprintln(writer, "name")
	for _, bucket := range buckets {
		fmt.Fprintf(writer, "%v\n", bucket)
	}
}

func WritePrettyBucketList(buckets []string, output io.Writer) {
	writer := table.NewWriter()
	writer.SetOutputMirror(output)
	defer writer.Render()
	writer.AppendHeader(table.Row{"#", "Name"})
	for i, bucket := range buckets {
		writer.AppendRow(table.Row{i, bucket})
	}
}

func WriteJSONBucketList(buckets []string, output io.Writer) error {
	encoder := json.NewEncoder(output)
	return encoder.Encode(buckets)
}
