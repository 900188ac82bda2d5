// Copyright Kieran C., 2026. All rights reserved.

// Package watch converts TrueKey exports as they appear in a directory.
// Useful when exports are dropped into a sync folder one vault at a time.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Kieran-C/truekey-migrate/pkg/types"
)

// debounce delays conversion after the last write event so a file still
// being copied in is not read half-finished.
const debounce = 500 * time.Millisecond

// Converter is invoked once per settled export file.
type Converter func(path string) error

// Watch runs an fsnotify watcher on dir and invokes convert for each
// created or modified .csv file, debounced per path, until ctx is
// cancelled. Files that look like this tool's own output are ignored so a
// conversion does not trigger itself.
func Watch(ctx context.Context, dir string, logger *slog.Logger, convert Converter) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return err
	}
	logger.Info("watch: started", slog.String("dir", dir))

	var mu sync.Mutex
	pending := make(map[string]*time.Timer)
	ready := make(chan string)

	schedule := func(path string) {
		mu.Lock()
		defer mu.Unlock()
		if t, ok := pending[path]; ok {
			t.Reset(debounce)
			return
		}
		pending[path] = time.AfterFunc(debounce, func() {
			select {
			case ready <- path:
			case <-ctx.Done():
			}
		})
	}

	defer func() {
		mu.Lock()
		defer mu.Unlock()
		for _, t := range pending {
			t.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			logger.Info("watch: stopped")
			return nil

		case path := <-ready:
			mu.Lock()
			delete(pending, path)
			mu.Unlock()

			if err := convert(path); err != nil {
				logger.Warn("watch: conversion failed",
					slog.String("path", path),
					slog.String("error", err.Error()))
				continue
			}
			logger.Info("watch: converted", slog.String("path", path))

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !strings.EqualFold(filepath.Ext(ev.Name), ".csv") || IsOutputPath(ev.Name) {
				continue
			}
			schedule(ev.Name)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch: watcher error", slog.String("error", err.Error()))
		}
	}
}

// IsOutputPath reports whether path looks like a file this tool wrote:
// a format or notes suffix before the .csv extension, as produced by the
// convert command's default naming.
func IsOutputPath(path string) bool {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for _, f := range types.Formats {
		if strings.HasSuffix(base, "."+string(f)) {
			return true
		}
	}
	return strings.HasSuffix(base, ".notes")
}
