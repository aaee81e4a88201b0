/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command dxenigma encodes and decodes messages on a rotor machine.
//
// Usage:
//
//	dxenigma [-yaml] [-group N] [-log-level LEVEL] CONFIG [INPUT [OUTPUT]]
//	dxenigma [-yaml] -dump FORMAT CONFIG
//
// CONFIG describes the machine, in text form, in YAML form (with -yaml or a
// .yaml/.yml extension) or in JSON form (.json extension). INPUT defaults
// to standard input and OUTPUT to standard output. The input starts with a
// setting line ("* ...") and alternates settings and messages.
//
// With -dump the configuration is validated and written to standard output
// in FORMAT (text, yaml or json) instead of processing messages.
//
// DXENIGMA_LOG_LEVEL and DXENIGMA_GROUP_SIZE set the defaults of
// -log-level and -group.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"dirpx.dev/dxenigma/dxcore/enigma"
	"dirpx.dev/dxenigma/dxcore/model"
	"dirpx.dev/dxenigma/dxcore/model/machine"
	"github.com/caarlos0/env/v11"
)

// envConfig holds the defaults taken from the environment.
type envConfig struct {
	LogLevel  string `env:"DXENIGMA_LOG_LEVEL" envDefault:"warn"`
	GroupSize int    `env:"DXENIGMA_GROUP_SIZE" envDefault:"5"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, nil); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run is main without the process globals. A nil environ reads the process
// environment.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, environ map[string]string) error {
	var cfg envConfig
	if err := parseEnv(&cfg, environ); err != nil {
		return err
	}

	fs := flag.NewFlagSet("dxenigma", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: dxenigma [flags] CONFIG [INPUT [OUTPUT]]")
		fs.PrintDefaults()
	}
	yamlConfig := fs.Bool("yaml", false, "read CONFIG as YAML")
	group := fs.Int("group", cfg.GroupSize, "symbols per output group (0 disables grouping)")
	logLevel := fs.String("log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	dump := fs.String("dump", "", "write CONFIG in this format (text, yaml, json) and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 || fs.NArg() > 3 {
		fs.Usage()
		return errors.New("only 1, 2, or 3 command-line arguments allowed")
	}

	var dumpFormat enigma.Format
	if *dump != "" {
		f, err := enigma.ParseFormat(*dump)
		if err != nil {
			return err
		}
		if fs.NArg() != 1 {
			return errors.New("-dump takes only CONFIG")
		}
		dumpFormat = f
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q", *logLevel)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	path := fs.Arg(0)
	mcfg, err := loadConfig(path, *yamlConfig)
	if err != nil {
		return err
	}
	logger.DebugContext(ctx, "configuration loaded",
		slog.String("path", path),
		slog.String("schema", mcfg.EffectiveVersion().String()),
		slog.String("config", model.SafeString(mcfg, false)))

	if dumpFormat != "" {
		data, err := enigma.EncodeConfig(mcfg, dumpFormat)
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	}

	m, err := enigma.Build(mcfg)
	if err != nil {
		return err
	}

	in := stdin
	if fs.NArg() > 1 {
		f, err := os.Open(fs.Arg(1))
		if err != nil {
			return fmt.Errorf("could not open %s: %w", fs.Arg(1), err)
		}
		defer f.Close()
		in = f
	}

	p := enigma.NewProcessor(enigma.NewSession(m))
	p.GroupSize = *group
	p.Logger = logger

	if fs.NArg() < 3 {
		return p.Process(ctx, in, stdout)
	}
	f, err := os.Create(fs.Arg(2))
	if err != nil {
		return fmt.Errorf("could not open %s: %w", fs.Arg(2), err)
	}
	return closeOutput(f, fs.Arg(2), p.Process(ctx, in, f))
}

// closeOutput closes the output file and returns err, or the close error
// when err is nil.
func closeOutput(c io.Closer, name string, err error) error {
	if cerr := c.Close(); cerr != nil && err == nil {
		return fmt.Errorf("could not close %s: %w", name, cerr)
	}
	return err
}

func parseEnv(cfg *envConfig, environ map[string]string) error {
	var err error
	if environ == nil {
		err = env.Parse(cfg)
	} else {
		err = env.ParseWithOptions(cfg, env.Options{Environment: environ})
	}
	if err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func loadConfig(path string, yamlConfig bool) (machine.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return machine.Config{}, fmt.Errorf("could not open %s: %w", path, err)
	}

	format := enigma.FormatOf(path)
	if yamlConfig {
		format = enigma.FormatYAML
	}
	return enigma.DecodeConfig(data, format)
}
