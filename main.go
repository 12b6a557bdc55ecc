package main

import (
	"os"

	"github.com/firefly-engineering/packcfg/cmd"
	"github.com/firefly-engineering/packcfg/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
