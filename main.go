package main

import (
	"os"

	"github.com/autonomy414941/devtoolbox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
