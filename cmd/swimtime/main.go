package main

import (
	"os"

	"github.com/ryuuhei0729/swimtime/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
