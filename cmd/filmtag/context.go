package main

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"filmtag/internal/config"
	"filmtag/internal/ingest"
	"filmtag/internal/logging"
	"filmtag/internal/rolls"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the run logger once, tagged with a run identifier so
// log lines from one batch can be correlated.
func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, _ := c.ensureConfig()
		logger, err := logging.NewFromConfig(cfg, os.Stderr)
		if err != nil {
			logger = slog.Default()
		}
		c.logger = logger.With(slog.String("run_id", uuid.NewString()))
	})
	return c.logger
}

// loadStore ingests every given logbook document into a fresh store.
func (c *commandContext) loadStore(paths []string) (*rolls.Store, error) {
	store := rolls.NewStore()
	if err := ingest.LoadFiles(store, paths); err != nil {
		return nil, err
	}
	return store, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
