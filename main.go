package main

import (
	"os"

	"github.com/mungbws1031/leo-study/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
