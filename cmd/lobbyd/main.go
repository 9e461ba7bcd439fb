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

// Command lobbyd runs the lobby server: it accepts connections, drives
// each through the Diffie-Hellman handshake, and dispatches decoded
// commands from the steady-state frame stream to a pool of workers.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/comphack/lobbycore/pkg/config"
	"github.com/comphack/lobbycore/pkg/lobby"
	"github.com/comphack/lobbycore/pkg/log"
	"github.com/comphack/lobbycore/pkg/metrics"
)

const (
	queueCapacity = 4096
	workerCount   = 8
)

func main() {
	log.SetFormatter(&log.DaemonFormatter{})

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}

	queue := lobby.NewQueue(queueCapacity)
	listener, err := lobby.NewListener(cfg.Addr(), cfg.DHPrime, queue)
	if err != nil {
		log.Errorf("failed to bind %s: %v", cfg.Addr(), err)
		os.Exit(1)
	}
	log.Infof("lobbyd listening on %s", listener.Addr())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics.EnableLogging()
	defer metrics.DisableLogging()

	for i := 0; i < workerCount; i++ {
		go runWorker(ctx, queue, i)
	}

	if err := listener.Serve(ctx); err != nil {
		log.Errorf("listener stopped: %v", err)
		os.Exit(1)
	}
	log.Infof("lobbyd shutting down")
}

// runWorker drains decoded commands off the shared queue until ctx is
// cancelled. Command-specific handling is intentionally left as a single
// dispatch point for whatever application logic sits above the framing
// layer.
func runWorker(ctx context.Context, queue *lobby.Queue, id int) {
	for {
		msg, err := queue.Dequeue(ctx)
		if err != nil {
			return
		}
		handleMessage(id, msg)
	}
}

func handleMessage(workerID int, msg lobby.Message) {
	log.WithFields(log.Fields{
		"worker": workerID,
		"connID": msg.ConnID,
		"code":   fmt.Sprintf("%#04x", msg.Code),
		"size":   msg.Body.Size(),
	}).Debugf("dispatching command")
}
