package main

import (
	"os"

	"ezc/pkg/ezc"
)

func main() {
	os.Exit(ezc.Main())
}
