// SPDX-License-Identifier: MIT

// Command cspath answers time-constrained cheapest-path queries.
//
//	cspath solve < input.txt         # one "cost time" line per record
//	cspath serve --addr :8080        # POST /v1/solve, /healthz, /metrics
//	cspath gen -n 50 -c 10 | cspath solve --inf-edge-threshold 1000000
//	cspath config init > cspath.yaml # print the default configuration
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cspath:", err)
		os.Exit(1)
	}
}
