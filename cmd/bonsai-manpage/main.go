// Command bonsai-manpage renders the bonsai man page. With -dir it writes
// one page per command (bonsai.1, bonsai-check.1, ...) into that directory.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/bonsai/cmd/bonsai"
	"github.com/arthur-debert/bonsai/internal/version"
)

func main() {
	dir := flag.String("dir", "", "write a page per command into this directory")
	flag.Parse()

	rootCmd := bonsai.NewRootCmd()
	header := &doc.GenManHeader{
		Title:   "BONSAI",
		Section: "1",
		Source:  "bonsai " + version.Version,
		Manual:  "bonsai manual",
	}

	var err error
	if *dir != "" {
		if err = os.MkdirAll(*dir, 0755); err == nil {
			err = doc.GenManTree(rootCmd, header, *dir)
		}
	} else {
		err = doc.GenMan(rootCmd, header, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
