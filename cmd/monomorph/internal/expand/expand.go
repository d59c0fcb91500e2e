package expand

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/specforge/monomorph/config"
	"github.com/specforge/monomorph/model"
	"github.com/specforge/monomorph/sink"
	"github.com/specforge/monomorph/transform"
)

type Cmd struct {
	Input    string   `arg:"" help:"Input model (JSON or YAML)." type:"existingfile"`
	Out      string   `help:"Output file (default: standard output)." short:"o"`
	Config   string   `help:"Configuration file (YAML or JSON)." short:"c" type:"existingfile"`
	Set      []string `help:"Override a configuration value." placeholder:"KEY=VALUE"`
	LogLevel string   `help:"Log level (debug, info, warn, error). Overrides the configuration." name:"log-level"`
}

func (c *Cmd) Run(ctx context.Context) error {
	return c.run(ctx, os.Stdout, os.Stderr)
}

func (c *Cmd) run(ctx context.Context, stdout, stderr io.Writer) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	m, err := model.ReadFile(c.Input)
	if err != nil {
		return fmt.Errorf("read model: %w", err)
	}

	expanded, err := transform.ExpandGenerics(m, cfg.ExpandOptions(logger)...)
	if err != nil {
		return fmt.Errorf("expand generics: %w", err)
	}

	out, name := c.destination(stdout, cfg)
	if err := sink.WriteModel(ctx, out, name, expanded, cfg.Output.Indent); err != nil {
		return fmt.Errorf("write model: %w", err)
	}

	logger.Debug("wrote model", slog.String("output", name))
	return nil
}

func (c *Cmd) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config, c.Set)
	if err != nil {
		return nil, err
	}
	if c.LogLevel != "" {
		cfg.LogLevel = c.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// destination returns the sink for the output and the name to write to it.
func (c *Cmd) destination(stdout io.Writer, cfg *config.Config) (sink.Sink, string) {
	if c.Out == "" || c.Out == "-" {
		return sink.NewWriterSink(stdout), "-"
	}
	fs := sink.NewFilesystemSink(filepath.Dir(c.Out))
	fs.Overwrite = cfg.Output.Overwrite
	return fs, filepath.ToSlash(filepath.Base(c.Out))
}
