// File: cmd/pingpongd/main.go
// License: Apache-2.0
//
// pingpongd serves the fixed ping-pong routes over plain HTTP/1.1 until
// interrupted. Only a bind failure exits non-zero.

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hiperf-bench/pingpong/server"
)

func main() {
	port := flag.Int("port", 8000, "TCP port to listen on")
	flag.Parse()

	srv := server.NewServer(nil, server.WithPort(*port))

	if err := srv.Listen(); err != nil {
		log.Printf("pingpong: startup failed: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown()
	}()

	log.Printf("pingpong: press Ctrl+C to stop")
	if err := srv.Serve(); err != nil {
		log.Printf("pingpong: serve: %v", err)
		os.Exit(1)
	}
}
