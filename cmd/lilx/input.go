package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pauldmccarthy/lilx"
)

// readInput returns the XML text from the first argument, or stdin when
// no file is given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		input, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return input, nil
	}

	input, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return input, nil
}

// parseOptions builds parse options from the persistent flags.
func parseOptions() []lilx.Option {
	var opts []lilx.Option
	if flagSingleQuotes {
		opts = append(opts, lilx.SingleQuotes())
	}
	if flagMaxToken > 0 {
		opts = append(opts, lilx.MaxTokenLength(flagMaxToken))
	}
	if flagMaxDepth > 0 {
		opts = append(opts, lilx.MaxDepth(flagMaxDepth))
	}
	if flagVerbose {
		opts = append(opts, lilx.WithTrace(log.Debugf))
	}
	return opts
}

// parseArgs reads the input and parses it into a tree.
func parseArgs(args []string) (*lilx.Element, error) {
	input, err := readInput(args)
	if err != nil {
		return nil, err
	}
	return lilx.Parse(input, parseOptions()...)
}
