package check

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specforge/monomorph/config"
	"github.com/specforge/monomorph/model"
	"github.com/specforge/monomorph/transform"
)

type Cmd struct {
	Input  string   `arg:"" help:"Model to check (JSON or YAML)." type:"existingfile"`
	Expand bool     `help:"Expand generics before checking." short:"e"`
	Config string   `help:"Configuration file used by --expand (YAML or JSON)." short:"c" type:"existingfile"`
	Set    []string `help:"Override a configuration value." placeholder:"KEY=VALUE"`
}

func (c *Cmd) Run() error {
	return c.run(os.Stdout, os.Stderr)
}

func (c *Cmd) run(stdout, stderr io.Writer) error {
	cfg, err := config.Load(c.Config, c.Set)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	m, err := model.ReadFile(c.Input)
	if err != nil {
		return fmt.Errorf("read model: %w", err)
	}
	fmt.Fprintf(stdout, "✓ %d endpoints, %d types\n", len(m.Endpoints), m.Types.Len())

	if c.Expand {
		m, err = transform.ExpandGenerics(m, cfg.ExpandOptions(logger)...)
		if err != nil {
			return fmt.Errorf("expand generics: %w", err)
		}
		fmt.Fprintf(stdout, "✓ Expanded to %d types\n", m.Types.Len())
	}

	errs := m.Validate()
	if len(errs) == 0 {
		fmt.Fprintln(stdout, "✓ All types resolvable, no generics")
		return nil
	}
	for _, err := range errs {
		fmt.Fprintf(stdout, "✗ %v\n", err)
	}
	return fmt.Errorf("%d problems found", len(errs))
}
