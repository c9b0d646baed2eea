// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	cesr "github.com/blinklabs-io/gocesr"
	"github.com/blinklabs-io/gocesr/group"
	"github.com/blinklabs-io/gocesr/stream"
	"github.com/spf13/pflag"
)

type globalFlags struct {
	flagset  *pflag.FlagSet
	input    string
	output   string
	maxDepth int
	stream   bool
	noBinary bool
	debug    bool
}

func newGlobalFlags(stderr io.Writer) *globalFlags {
	f := &globalFlags{
		flagset: pflag.NewFlagSet("cesr-dump", pflag.ContinueOnError),
	}
	f.flagset.SetOutput(stderr)
	f.flagset.StringVarP(
		&f.input,
		"input",
		"i",
		"-",
		"input file, or - for stdin. files ending in .zst are decompressed",
	)
	f.flagset.StringVarP(
		&f.output,
		"output",
		"o",
		outputText,
		"output format: text, json or yaml",
	)
	f.flagset.IntVar(
		&f.maxDepth,
		"max-depth",
		group.DefaultMaxDepth,
		"maximum nesting depth of frames",
	)
	f.flagset.BoolVar(
		&f.stream,
		"stream",
		false,
		"decode incrementally as input arrives instead of reading it all first",
	)
	f.flagset.BoolVar(
		&f.noBinary,
		"no-binary",
		false,
		"reject binary domain groups",
	)
	f.flagset.BoolVarP(&f.debug, "debug", "d", false, "enable debug logging")
	return f
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	f := newGlobalFlags(stderr)
	if err := f.flagset.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "failed to parse command args: %s\n", err)
		return 1
	}
	if len(f.flagset.Args()) > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", f.flagset.Args())
		return 1
	}
	printer, err := newPrinter(f.output, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return 1
	}
	defer printer.Close()

	logLevel := slog.LevelInfo
	if f.debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}),
	)
	parser := cesr.NewParser(
		cesr.WithLogger(logger),
		cesr.WithMaxDepth(f.maxDepth),
		cesr.WithBinary(!f.noBinary),
	)

	input, err := openInput(f.input, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "failed to open input: %s\n", err)
		return 1
	}
	defer input.Close()

	if f.stream {
		err = dumpStream(input, parser, logger, printer)
	} else {
		err = dumpAll(input, parser, printer)
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return 1
	}
	return 0
}

func dumpAll(input io.Reader, parser *cesr.Parser, printer *printer) error {
	data, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	msgs, rest := parser.DecodeMessageList(data)
	for _, msg := range msgs {
		if err := printer.Print(msg); err != nil {
			return err
		}
	}
	if len(rest) > 0 {
		_, _, decErr := parser.DecodeMessage(rest)
		return fmt.Errorf(
			"%d undecoded bytes at offset %d: %w",
			len(rest),
			len(data)-len(rest),
			decErr,
		)
	}
	return nil
}

func dumpStream(
	input io.Reader,
	parser *cesr.Parser,
	logger *slog.Logger,
	printer *printer,
) error {
	r := stream.NewReader(
		input,
		stream.WithParser(parser),
		stream.WithLogger(logger),
	)
	r.Start()
	defer r.Stop()
	var printErr error
	for msg := range r.MessageChan() {
		if printErr != nil {
			continue
		}
		if err := printer.Print(msg); err != nil {
			printErr = err
			r.Stop()
		}
	}
	if printErr != nil {
		return printErr
	}
	if err, ok := <-r.ErrorChan(); ok {
		return err
	}
	stats := r.Stats()
	logger.Debug(
		"stream complete",
		"messages",
		stats.Messages,
		"bytes",
		stats.BytesRead,
	)
	return nil
}
