package main

import (
	"os"

	"github.com/servicecordiale/cordiale/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
