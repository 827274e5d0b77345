package main

import (
	"github.com/s3sweep/s3sweep/cmd/s3sweep"
)

func main() {
	s3sweep.Execute()
}
