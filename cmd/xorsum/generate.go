package main

import (
	"fmt"
	"time"

	"github.com/Redundancy/go-xorsum/filechecksum"
	"github.com/urfave/cli/v2"
)

// generate prints the checking data of a single file
func generate(c *cli.Context, filename string) error {
	if filename == "" {
		return usageError("Invalid file name")
	}

	logger.Debug("generating checking data", "path", filename)

	start := time.Now()

	f, size, err := openInput(filename)
	if err != nil {
		logCompletion(filename, start, -1, err)
		return processingError(filename, err)
	}
	defer f.Close()

	checkingData, err := filechecksum.NewFileChecksumGenerator(logger).GenerateSized(filename, f, size)
	logCompletion(filename, start, size, err)

	if err != nil {
		return processingError(filename, err)
	}

	fmt.Fprintf(c.App.Writer, "Result: %v\n", checkingData)
	return nil
}
