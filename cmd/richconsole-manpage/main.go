package main

import (
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/richconsole/cmd/richconsole"
	"github.com/arthur-debert/richconsole/internal/version"
	"github.com/arthur-debert/richconsole/pkg/logging"
)

func main() {
	logging.SetupLogger(0)
	rootCmd := richconsole.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "RICHCONSOLE",
		Section: "1",
		Source:  "richconsole " + version.Version,
		Manual:  "richconsole manual",
	}

	logging.Must(doc.GenMan(rootCmd, header, os.Stdout), "Error generating man page")
}
