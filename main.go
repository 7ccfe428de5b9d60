package main

import (
	"os"

	"github.com/vipcxj/progression/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
