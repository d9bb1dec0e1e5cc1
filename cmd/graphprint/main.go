// SPDX-License-Identifier: MIT
// Command graphprint compares the walk-count embedding and color refinement
// on every graph of n vertices and reports which graphs each fails to tell
// apart.
//
//	graphprint run --source exhaustive --max 6
//	graphprint export --n 8 --embedding walk --format mathematica
//	graphprint embed 'Ch' 'C~'
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
