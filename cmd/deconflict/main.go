package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/danieljhkim/deconflict/internal/cli"
	"github.com/danieljhkim/deconflict/internal/engine"
)

var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		if errors.Is(err, engine.ErrConflict) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
