package main

import (
	"os"

	"github.com/scan-io-git/smelly/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
