package main

import (
	"fmt"
	"os"

	"github.com/atinylittleshell/launchbox/internal/styles"
)

var BUILD_VERSION = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.ERROR(err.Error()))
		os.Exit(1)
	}
}
