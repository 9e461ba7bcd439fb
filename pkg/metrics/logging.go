// Copyright (C) 2026  comphack authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package metrics

import (
	"sync"
	"time"

	"github.com/comphack/lobbycore/pkg/log"
)

var (
	mu          sync.Mutex
	ticker      *time.Ticker
	done        chan struct{}
	logDuration = time.Minute
)

// SetLoggingDuration changes how often EnableLogging snapshots the
// registry. It has no effect once a ticker is already running; call it
// before EnableLogging.
func SetLoggingDuration(d time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	if d > 0 {
		logDuration = d
	}
}

// EnableLogging starts a background goroutine that logs a snapshot of
// every registered group once per logDuration.
func EnableLogging() {
	mu.Lock()
	defer mu.Unlock()
	if ticker != nil {
		return
	}
	ticker = time.NewTicker(logDuration)
	done = make(chan struct{})
	go logLoop(ticker, done)
	log.Infof("enabled metrics logging with duration %v", logDuration)
}

// DisableLogging stops the background logging goroutine, if running.
func DisableLogging() {
	mu.Lock()
	defer mu.Unlock()
	if ticker == nil {
		return
	}
	ticker.Stop()
	close(done)
	ticker = nil
	log.Infof("disabled metrics logging")
}

func logLoop(t *time.Ticker, done chan struct{}) {
	for {
		select {
		case <-t.C:
			LogSnapshot()
		case <-done:
			return
		}
	}
}
