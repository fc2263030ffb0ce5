// Command bonsai-completions writes shell completion scripts for packaging.
//
//	bonsai-completions <shell>       print one script to stdout
//	bonsai-completions -dir <path>   write every script into path
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/bonsai/cmd/bonsai"
	"github.com/spf13/cobra"
)

type generator struct {
	file string
	gen  func(*cobra.Command, io.Writer) error
}

var generators = map[string]generator{
	"bash": {"bonsai.bash", func(c *cobra.Command, w io.Writer) error { return c.GenBashCompletionV2(w, true) }},
	"zsh":  {"_bonsai", func(c *cobra.Command, w io.Writer) error { return c.GenZshCompletion(w) }},
	"fish": {"bonsai.fish", func(c *cobra.Command, w io.Writer) error { return c.GenFishCompletion(w, true) }},
	"powershell": {"bonsai.ps1", func(c *cobra.Command, w io.Writer) error {
		return c.GenPowerShellCompletionWithDesc(w)
	}},
}

func shells() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func main() {
	dir := flag.String("dir", "", "write every completion script into this directory")
	flag.Parse()

	if *dir != "" {
		if err := writeAll(*dir); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s <%s> | -dir <path>\n", os.Args[0], joinShells())
		os.Exit(1)
	}

	shell := flag.Arg(0)
	g, ok := generators[shell]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown shell: %s\nSupported shells: %s\n", shell, joinShells())
		os.Exit(1)
	}
	if err := g.gen(bonsai.NewRootCmd(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating %s completion: %v\n", shell, err)
		os.Exit(1)
	}
}

func writeAll(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, shell := range shells() {
		g := generators[shell]
		path := filepath.Join(dir, g.file)
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := g.gen(bonsai.NewRootCmd(), f); err != nil {
			_ = f.Close()
			return fmt.Errorf("generating %s completion: %w", shell, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

func joinShells() string {
	return strings.Join(shells(), "|")
}
