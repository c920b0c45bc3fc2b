// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

type FileWatcher interface {
	Start() error
	Stop() error
}

const (
	fileWatcherLoggerPrefix = "file-watcher"
)

type FileWatcherData struct {
	log      *logger.L
	channels WatcherChannel
	watcher  *fsnotify.Watcher
	filePath string
}

type WatcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

func newWatcherChannel() WatcherChannel {
	return WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

func newFileWatcher(targetFile string, log *logger.L, channels WatcherChannel) (*FileWatcherData, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if !util.EnsureFileExists(filePath) {
		return nil, fmt.Errorf("%q: %w", filePath, fault.ErrMissingInputFile)
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &FileWatcherData{
		log:      log,
		watcher:  watcher,
		channels: channels,
		filePath: filePath,
	}, nil
}

// Start - watch the directory holding the file so that editors which
// replace the file are still seen
func (w *FileWatcherData) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	go w.loop()

	return nil
}

// Stop - release the watcher, this ends the event loop
func (w *FileWatcherData) Stop() error {
	return w.watcher.Close()
}

func (w *FileWatcherData) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.log.Debugf("file event: %v", event)

			if filepath.Clean(event.Name) != w.filePath {
				continue
			}

			if watcherEventFileRemove(event) {
				w.log.Warnf("file %s removed, stop", w.filePath)
				w.sendEvent(w.channels.remove, "remove")
				return
			}

			if watcherEventFileChange(event) {
				w.log.Info("sending file change event…")
				w.sendEvent(w.channels.change, "change")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

func (w *FileWatcherData) isChannelFull(ch chan<- struct{}) bool {
	return len(ch) == cap(ch)
}

// changes are coalesced: a full channel already has a pending event
func (w *FileWatcherData) sendEvent(ch chan<- struct{}, name string) {
	if !w.isChannelFull(ch) {
		ch <- struct{}{}
	} else {
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
