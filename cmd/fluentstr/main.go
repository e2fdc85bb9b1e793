package main

import (
	"os"

	"github.com/Gobd/fluentstr/cmd/fluentstr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
