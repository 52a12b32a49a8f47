package main

import (
	"fmt"
	"os"

	"github.com/tomaszpagacz/GPT-data-platform/internal/application"
	"github.com/tomaszpagacz/GPT-data-platform/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger, err := logging.New()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	return application.New(logger, os.Stdout, os.Stderr).Run(args)
}
