package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	resultColor = color.New(color.FgGreen)
	okColor     = color.New(color.FgGreen, color.Bold)
	errorColor  = color.New(color.FgRed, color.Bold)
	detailColor = color.New(color.FgCyan)
)

// convertFunc converts one value to its other representation.
type convertFunc func(string) (string, error)

// runConvert dispatches a conversion subcommand: explicit file beats a
// positional argument, and with neither the values stream in from stdin.
func runConvert(args []string, file string, convert convertFunc) {
	switch {
	case file != "":
		if err := convertFile(file, convert); err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", errorColor.Sprint("Error:"), err)
			os.Exit(1)
		}
	case len(args) == 1:
		convertSingle(args[0], convert)
	default:
		if err := convertLines(os.Stdin, convert); err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", errorColor.Sprint("Error:"), err)
			os.Exit(1)
		}
	}
}

// convertSingle converts one value and exits non-zero on failure.
func convertSingle(value string, convert convertFunc) {
	out, err := convert(strings.TrimSpace(value))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorColor.Sprint("Error:"), err)
		os.Exit(1)
	}
	fmt.Println(resultColor.Sprint(out))
}

// convertLines converts newline-delimited values. Blank lines are skipped;
// a bad line is reported to stderr and does not stop the remaining lines.
// Output preserves input order.
func convertLines(r io.Reader, convert convertFunc) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		out, err := convert(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %s - %v\n", errorColor.Sprint("Error:"), line, err)
			continue
		}
		fmt.Println(resultColor.Sprint(out))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

func convertFile(path string, convert convertFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	defer f.Close()
	return convertLines(f, convert)
}
