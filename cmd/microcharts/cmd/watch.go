// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"cogentcore.org/microcharts/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch renders the chart file of the given config, and renders it again
// each time the file is written, until ctx is done. Render errors after
// the first render are logged and do not stop watching. If rendered is
// non-nil, it is called after each render attempt with its error.
func Watch(ctx context.Context, cfg *Config, rendered func(error)) error {
	in, err := cfg.InputPath()
	if err != nil {
		return err
	}
	if err := Render(cfg); err != nil {
		return err
	}
	if rendered != nil {
		rendered(nil)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()
	// editors often replace the file, so the directory is watched
	dir := filepath.Dir(in)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	name := filepath.Clean(in)
	slog.Info("watching chart file", "input", in)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != name || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			slog.Debug("chart file changed", "event", ev)
			err := errors.Log(Render(cfg))
			if rendered != nil {
				rendered(err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
