package main

import (
	"os"

	"go.uber.org/zap"
)

func main() {
	logger := zap.NewExample()
	defer logger.Sync()

	if err := newRootCommand(logger).Execute(); err != nil {
		os.Exit(1)
	}
}
