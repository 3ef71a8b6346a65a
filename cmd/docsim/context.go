package main

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/botirk38/docsim"
	"github.com/botirk38/docsim/batch"
	"github.com/botirk38/docsim/config"
	"github.com/botirk38/docsim/logging"
	"github.com/botirk38/docsim/options"
)

type globalFlags struct {
	config    string
	verbose   bool
	json      bool
	threshold float64
	backend   string
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig loads the config file once and applies flag overrides.
func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if c.flags.verbose {
			cfg.Log.Verbose = true
		}
		if backend := strings.ToLower(strings.TrimSpace(c.flags.backend)); backend != "" {
			cfg.Engine.Backend = backend
		}
		if cmd.Flags().Changed("threshold") {
			threshold := c.flags.threshold
			cfg.Engine.Threshold = &threshold
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// session bundles what a command needs to compare documents.
type session struct {
	cfg    *config.Config
	engine *docsim.Engine
	runner *batch.Runner
	logger *logging.Logger
}

func (s *session) Close() error {
	err := s.engine.Close()
	if lerr := s.logger.Close(); err == nil {
		err = lerr
	}
	return err
}

// withSession builds the engine from config, runs fn and releases it.
func (c *commandContext) withSession(cmd *cobra.Command, fn func(context.Context, *session) error) error {
	cfg, err := c.ensureConfig(cmd)
	if err != nil {
		return err
	}

	logCfg := cfg.Logging()
	logCfg.Async = false
	if logCfg.File == "" {
		logCfg.Output = cmd.ErrOrStderr()
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	ctx := cmd.Context()
	opts, err := cfg.Options(ctx)
	if err != nil {
		_ = logger.Close()
		return err
	}
	engine, err := docsim.New(append(opts, options.WithLogger(logger))...)
	if err != nil {
		_ = logger.Close()
		return err
	}
	runner, err := batch.NewRunner(engine, cfg.Batch.Workers, logger)
	if err != nil {
		_ = engine.Close()
		_ = logger.Close()
		return err
	}

	s := &session{cfg: cfg, engine: engine, runner: runner, logger: logger}
	defer s.Close()

	logger.Debug("engine ready", "backend", engine.Backend(), "threshold", engine.Threshold().String())
	return fn(ctx, s)
}
