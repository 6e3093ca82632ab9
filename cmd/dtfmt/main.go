package main

import (
	"os"

	"github.com/ndewijer/datetime-formatter/cmd/dtfmt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
