package main

import (
	"os"

	"github.com/firefly-engineering/steamdirs/cmd"
	"github.com/firefly-engineering/steamdirs/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
