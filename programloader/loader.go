// This file is part of Hakka.
//
// Hakka is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hakka is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hakka.  If not, see <https://www.gnu.org/licenses/>.

package programloader

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/hakka/hakka/curated"
	"github.com/hakka/hakka/logger"
)

// Sentinal error patterns.
const (
	LoaderError  = "programloader: %v"
	EmptyProgram = "programloader: %s is empty"
	NotWatchable = "programloader: the built-in program cannot be watched"
)

// BuiltinName is the name reported for the built-in program.
const BuiltinName = "built-in"

// Loader specifies the program to load.
type Loader struct {
	// filename of the program. the empty string indicates the built-in
	// program. http and https URLs are also accepted
	Filename string
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{Filename: strings.TrimSpace(filename)}
}

// IsBuiltin returns true if the loader refers to the built-in program.
func (ld Loader) IsBuiltin() bool {
	return ld.Filename == ""
}

// ShortName returns the program filename without path or extension.
func (ld Loader) ShortName() string {
	if ld.IsBuiltin() {
		return BuiltinName
	}
	n := filepath.Base(ld.Filename)
	return strings.TrimSuffix(n, filepath.Ext(n))
}

func (ld Loader) scheme() string {
	u, err := url.Parse(ld.Filename)
	if err != nil {
		return "file"
	}
	return u.Scheme
}

// Load the program data. Every call reads the program afresh.
func (ld Loader) Load() ([]byte, error) {
	if ld.IsBuiltin() {
		return Builtin(), nil
	}

	var data []byte
	var err error

	switch ld.scheme() {
	case "http", "https":
		var resp *http.Response
		resp, err = http.Get(ld.Filename)
		if err != nil {
			return nil, curated.Errorf(LoaderError, err)
		}
		defer resp.Body.Close()
		data, err = io.ReadAll(resp.Body)
	default:
		data, err = os.ReadFile(ld.Filename)
	}

	if err != nil {
		return nil, curated.Errorf(LoaderError, err)
	}

	if len(data) == 0 {
		return nil, curated.Errorf(EmptyProgram, ld.Filename)
	}

	logger.Logf("programloader", "loaded %s (%d bytes)", ld.ShortName(), len(data))

	return data, nil
}

// Watch the program file for changes. A value is sent on the returned
// channel every time the file is written or replaced. Watching stops and the
// channel is closed when the context is cancelled.
//
// The parent directory is watched rather than the file itself so that
// editors that replace the file on save are noticed.
func (ld Loader) Watch(ctx context.Context) (<-chan struct{}, error) {
	if ld.IsBuiltin() || ld.scheme() == "http" || ld.scheme() == "https" {
		return nil, curated.Errorf(NotWatchable)
	}

	abs, err := filepath.Abs(ld.Filename)
	if err != nil {
		return nil, curated.Errorf(LoaderError, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, curated.Errorf(LoaderError, err)
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, curated.Errorf(LoaderError, err)
	}

	changed := make(chan struct{}, 1)

	go func() {
		defer watcher.Close()
		defer close(changed)

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}

				// a change that has not yet been collected is good enough
				select {
				case changed <- struct{}{}:
				default:
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Log("programloader", err)
			}
		}
	}()

	return changed, nil
}
