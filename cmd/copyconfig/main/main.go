package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/copyconfig/cmd/copyconfig"
	"github.com/arthur-debert/copyconfig/pkg/style"
)

func main() {
	rootCmd := copyconfig.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf(copyconfig.MsgErrorPrefix, err)))
		os.Exit(1)
	}
}
