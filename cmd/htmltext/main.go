// Command htmltext converts HTML from a file or stdin to plain text.
//
// Usage:
//
//	htmltext [-options opts.yaml] [-width 80] [-base selector] [file]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/htmltext"
)

func main() {
	optionsFile := flag.String("options", "", "YAML file with conversion options")
	width := flag.Int("width", 0, "target line width (overrides the options file)")
	base := flag.String("base", "", "base element selector (overrides the options file)")
	flag.Parse()

	if err := run(*optionsFile, *width, *base, flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, "htmltext:", err)
		os.Exit(1)
	}
}

func run(optionsFile string, width int, base, inputFile string) error {
	var opts htmltext.Options
	if optionsFile != "" {
		data, err := os.ReadFile(optionsFile)
		if err != nil {
			return err
		}
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return fmt.Errorf("parse options: %w", err)
		}
	}
	if width != 0 {
		opts.Wrap.Width = width
	}
	if base != "" {
		opts.BaseElements = []string{base}
	}

	var in io.Reader = os.Stdin
	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	text, err := htmltext.FromReader(in, &opts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, text)
	return err
}
