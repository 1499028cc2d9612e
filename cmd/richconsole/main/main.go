package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/richconsole/cmd/richconsole"
	"github.com/arthur-debert/richconsole/pkg/ui"
)

func main() {
	rootCmd := richconsole.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		errorStyle := ui.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf(richconsole.MsgErrorFormat, err)))
		os.Exit(1)
	}
}
