// Command der dumps and round-trips DER/BER encoded ASN.1 values from the
// command line, on top of the strix.dev/der/ber and strix.dev/der/tlv
// packages.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

type options struct {
	mode    string
	path    string
	basic   bool
	watch   bool
	config  string
	verbose bool
}

func main() {
	opts := parseFlags()
	log := newLogger(opts.verbose)

	cfg, err := loadFileConfig(opts.config)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	cfg.applyFlags(&opts)
	if opts.watch {
		opts.mode = "watch"
	}

	switch opts.mode {
	case "dump":
		if err := runDump(opts, log); err != nil {
			fatalf("%v", err)
		}
	case "roundtrip":
		if err := runRoundtrip(opts, log); err != nil {
			fatalf("%v", err)
		}
	case "watch":
		if opts.path == "" {
			fatalf("watch requires -path to be a directory")
		}
		if err := runWatch(opts, log); err != nil {
			fatalf("%v", err)
		}
	default:
		fatalf("unknown mode %q (supported: dump | roundtrip | watch)", opts.mode)
	}
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.mode, "mode", "dump", "mode: dump | roundtrip | watch")
	flag.StringVar(&opts.path, "path", "", "path to a DER/BER file, or a directory in watch mode")
	flag.BoolVar(&opts.basic, "basic", false, "accept Basic Encoding Rules (indefinite length, non-minimal forms) instead of strict DER")
	flag.BoolVar(&opts.watch, "watch", false, "poll -path for changes and re-dump on update")
	flag.StringVar(&opts.config, "config", "der.toml", "optional TOML config profile; missing file is not an error")
	flag.BoolVar(&opts.verbose, "v", false, "verbose (debug-level) logging")
	flag.Parse()
	return opts
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", "der").Logger()
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "der: "+format+"\n", args...)
	os.Exit(1)
}
