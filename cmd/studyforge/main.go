package main

import (
	"os"

	"github.com/studyforge/studyforge/cmd/studyforge/cmd"
)

func main() {
	if err := cmd.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
