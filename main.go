package main

import (
	"os"

	"github.com/misaki/drillbox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
