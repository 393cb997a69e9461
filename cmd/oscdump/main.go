// oscdump decodes encoded control messages and prints one diagnostic
// line per message. Inputs are binary files holding one message each, or
// hex lines (one message per line) with -hex.
package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/danmuck/oscwire/internal/dump"
	"github.com/danmuck/oscwire/internal/logging"
)

type options struct {
	config string
	hex    bool
	hexSet bool
}

func main() {
	opts, files := parseArgs()

	cfg := defaultDumpConfig()
	if opts.config != "" {
		loaded, err := loadDumpConfig(opts.config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "oscdump: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if opts.hexSet {
		cfg.Hex = opts.hex
	}
	if cfg.LogLevel != "" && os.Getenv(logging.EnvLogLevel) == "" {
		os.Setenv(logging.EnvLogLevel, cfg.LogLevel)
	}

	logger := logging.ConfigureRuntime()

	if err := run(cfg, files, logger); err != nil {
		fmt.Fprintf(os.Stderr, "oscdump: %v\n", err)
		os.Exit(1)
	}
}

func parseArgs() (options, []string) {
	var opts options
	flag.StringVar(&opts.config, "config", "", "path to oscdump TOML config")
	flag.BoolVar(&opts.hex, "hex", false, "treat inputs as hex lines, one message per line")
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "hex" {
			opts.hexSet = true
		}
	})
	return opts, flag.Args()
}

func run(cfg dumpConfig, files []string, logger zerolog.Logger) error {
	if cfg.Hex {
		return runHex(files, logger)
	}
	return runBinary(files, logger)
}

// runBinary treats every input file as one complete message. Files are
// read and decoded concurrently; output keeps argument order.
func runBinary(files []string, logger zerolog.Logger) error {
	if len(files) == 0 {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		return dump.Fprint(os.Stdout, raw)
	}

	lines := make([]string, len(files))
	errs := make([]error, len(files))
	var g errgroup.Group
	for i, path := range files {
		i, path := i, path // per-iteration copies; required while go.mod targets go < 1.22
		g.Go(func() error {
			raw, err := os.ReadFile(path)
			if err != nil {
				errs[i] = err
				return nil
			}
			line, err := dump.Line(raw)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", path, err)
				return nil
			}
			lines[i] = line
			return nil
		})
	}
	g.Wait()

	failed := false
	for i, line := range lines {
		if errs[i] != nil {
			logger.Error().Err(errs[i]).Str("input", files[i]).Msg("decode failed")
			failed = true
			continue
		}
		fmt.Println(line)
	}
	if failed {
		return errors.New("one or more inputs failed")
	}
	return nil
}

// runHex reads hex-encoded messages, one per line, from the given files
// or stdin. Every line is attempted even when earlier lines fail.
func runHex(files []string, logger zerolog.Logger) error {
	if len(files) == 0 {
		return dumpHexStream(os.Stdin, "stdin", logger)
	}
	failed := false
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			logger.Error().Err(err).Str("input", path).Msg("open failed")
			failed = true
			continue
		}
		err = dumpHexStream(f, path, logger)
		f.Close()
		if err != nil {
			failed = true
		}
	}
	if failed {
		return errors.New("one or more inputs failed")
	}
	return nil
}

func dumpHexStream(r io.Reader, name string, logger zerolog.Logger) error {
	scanner := bufio.NewScanner(r)
	failed := false
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		raw, err := hex.DecodeString(text)
		if err != nil {
			logger.Error().Err(err).Str("input", name).Int("line", lineNo).Msg("bad hex input")
			failed = true
			continue
		}
		if err := dump.Fprint(os.Stdout, raw); err != nil {
			logger.Error().Err(err).Str("input", name).Int("line", lineNo).Msg("decode failed")
			failed = true
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if failed {
		return fmt.Errorf("%s: one or more messages failed", name)
	}
	return nil
}
