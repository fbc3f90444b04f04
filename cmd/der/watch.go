package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"strix.dev/der/ber"
)

// watchPollInterval is how often runWatch rescans opts.path for changed
// files.
const watchPollInterval = 2 * time.Second

// runWatch polls a directory for .der/.ber files and re-dumps any file
// whose modification time has advanced since it was last parsed; a file
// whose modification time is unchanged is not parsed again. Each parse runs
// through a singleflight.Group keyed by path; the scan runs in a single
// goroutine, so calls for the same path never overlap and every call parses.
func runWatch(opts options, log zerolog.Logger) error {
	var group singleflight.Group
	seen := map[string]time.Time{}

	for {
		entries, err := os.ReadDir(opts.path)
		if err != nil {
			return fmt.Errorf("read dir %s: %w", opts.path, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ext := filepath.Ext(entry.Name())
			if ext != ".der" && ext != ".ber" {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				log.Warn().Err(err).Str("file", entry.Name()).Msg("stat failed")
				continue
			}
			path := filepath.Join(opts.path, entry.Name())
			if last, ok := seen[path]; ok && !info.ModTime().After(last) {
				continue
			}
			seen[path] = info.ModTime()

			_, err, shared := group.Do(path, func() (any, error) {
				data, err := os.ReadFile(path)
				if err != nil {
					return nil, err
				}
				root, err := ber.Parse(data, ruleSet(opts))
				if err != nil {
					return nil, err
				}
				dumpNode(root, 0)
				return nil, nil
			})
			if err != nil {
				log.Warn().Err(err).Str("file", path).Msg("parse failed")
				continue
			}
			log.Info().Str("file", path).Bool("shared", shared).Msg("dumped")
		}
		time.Sleep(watchPollInterval)
	}
}
