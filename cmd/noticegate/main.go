package main

import (
	"os"

	"github.com/solatis/noticegate/cmd/noticegate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
