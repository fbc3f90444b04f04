package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"strix.dev/der/ber"
)

// runRoundtrip parses opts.path and re-serializes the parsed tree, failing
// if the result does not byte-exactly match the input. This exercises
// Serializer.WriteNode against every value in the file.
func runRoundtrip(opts options, log zerolog.Logger) error {
	if opts.path == "" {
		return fmt.Errorf("roundtrip requires -path")
	}
	data, err := os.ReadFile(opts.path)
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.path, err)
	}
	root, err := ber.Parse(data, ruleSet(opts))
	if err != nil {
		return fmt.Errorf("parse %s: %w", opts.path, err)
	}
	s := ber.NewSerializer()
	s.WriteNode(root)
	if !bytes.Equal(s.Bytes(), data) {
		return fmt.Errorf("round trip mismatch: %d bytes in, %d bytes out", len(data), s.Len())
	}
	log.Info().Str("path", opts.path).Int("bytes", len(data)).Msg("round trip OK")
	fmt.Println("OK")
	return nil
}
