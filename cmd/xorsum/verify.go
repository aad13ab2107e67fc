package main

import (
	"fmt"
	"time"

	"github.com/Redundancy/go-xorsum/filechecksum"
	"github.com/Redundancy/go-xorsum/fingerprint"
	"github.com/urfave/cli/v2"
)

// verify checks a single file against checking data generated earlier
func verify(c *cli.Context, filename string, checkingData string) error {
	if filename == "" {
		return usageError("Invalid file name")
	}

	if len(checkingData) != fingerprint.Size {
		return usageError(
			fmt.Sprintf(
				"Invalid XOR checking data size %v. It must be %v bytes.",
				len(checkingData),
				fingerprint.Size,
			),
		)
	}

	if _, err := fingerprint.Decode(checkingData); err != nil {
		return usageError("Invalid XOR checking data: " + err.Error())
	}

	logger.Debug("verifying checking data", "path", filename)

	start := time.Now()

	f, size, err := openInput(filename)
	if err != nil {
		logCompletion(filename, start, -1, err)
		return processingError(filename, err)
	}
	defer f.Close()

	err = filechecksum.NewFileChecksumGenerator(logger).VerifySized(filename, f, size, checkingData)
	logCompletion(filename, start, size, err)

	if err != nil {
		return processingError(filename, err)
	}

	fmt.Fprintln(c.App.Writer, "Data file is equal to the checking data.")
	return nil
}
