package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"strix.dev/der/ber"
	"strix.dev/der/tlv"
)

func ruleSet(opts options) tlv.RuleSet {
	if opts.basic {
		return tlv.Basic
	}
	return tlv.Distinguished
}

func runDump(opts options, log zerolog.Logger) error {
	if opts.path == "" {
		return fmt.Errorf("dump requires -path")
	}
	data, err := os.ReadFile(opts.path)
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.path, err)
	}
	root, err := ber.Parse(data, ruleSet(opts))
	if err != nil {
		return fmt.Errorf("parse %s: %w", opts.path, err)
	}
	log.Debug().Str("path", opts.path).Int("bytes", len(data)).Msg("parsed")
	dumpNode(root, 0)
	return nil
}

// dumpNode writes a human-readable tree of n to stdout, indenting one level
// per depth of nesting.
func dumpNode(n ber.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if n.Constructed() {
		fmt.Printf("%s%s {\n", indent, n.Tag())
		it := n.Children()
		for !it.Done() {
			dumpNode(it.Next(), depth+1)
		}
		fmt.Printf("%s}\n", indent)
		return
	}
	fmt.Printf("%s%s\n", indent, n.Raw())
}
