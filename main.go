package main

import (
	"os"

	"github.com/firefly-engineering/lan-address-gen/cmd"
	"github.com/firefly-engineering/lan-address-gen/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
