package main

import (
	"os"

	"github.com/stackwatch/check-elastic-stack/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
