package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/botirk38/docsim"
	"github.com/botirk38/docsim/config"
	"github.com/botirk38/docsim/logging"
	"github.com/botirk38/docsim/options"
)

const (
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxRequestSize = 10 * 1024 * 1024
)

func main() {
	configPath := flag.String("config", "", "Configuration file path")
	addr := flag.String("addr", "", "Listen address (overrides server.addr)")
	readTimeout := flag.Duration("read-timeout", DefaultReadTimeout, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", DefaultWriteTimeout, "HTTP write timeout")
	maxRequestSize := flag.Int("max-request-size", DefaultMaxRequestSize, "Maximum request size in bytes")
	flag.Parse()

	if err := run(*configPath, *addr, *readTimeout, *writeTimeout, *maxRequestSize); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, addr string, readTimeout, writeTimeout time.Duration, maxRequestSize int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	logger, err := logging.New(cfg.Logging())
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts, err := cfg.Options(ctx)
	if err != nil {
		return err
	}
	engine, err := docsim.New(append(opts, options.WithLogger(logger))...)
	if err != nil {
		return err
	}
	defer engine.Close()

	srv := newServer(engine, logger, writeTimeout)
	server := &fasthttp.Server{
		Handler:               srv.handle,
		Name:                  "docsimd",
		ReadTimeout:           readTimeout,
		WriteTimeout:          writeTimeout,
		MaxRequestBodySize:    maxRequestSize,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down server")
		if err := server.Shutdown(); err != nil {
			logger.Error("error during server shutdown", "error", err)
		}
	}()

	logger.Info("server listening",
		"address", cfg.Server.Addr,
		"backend", engine.Backend(),
		"threshold", engine.Threshold().String())
	if err := server.ListenAndServe(cfg.Server.Addr); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
