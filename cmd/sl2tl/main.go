package main

import (
	"os"

	"github.com/sl2tl/sl2tl/cmd/sl2tl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
