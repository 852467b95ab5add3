package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/copyconfig/cmd/copyconfig"
	"github.com/arthur-debert/copyconfig/internal/version"
)

func main() {
	rootCmd := copyconfig.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "COPY-CONFIG",
		Section: "1",
		Source:  "copy-config " + version.Version,
		Manual:  "copy-config manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
