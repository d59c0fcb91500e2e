package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/specforge/monomorph/cmd/monomorph/internal/check"
	"github.com/specforge/monomorph/cmd/monomorph/internal/expand"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Expand  expand.Cmd `cmd:"" help:"Expand generics into concrete types."`
	Check   check.Cmd  `cmd:"" help:"Check that a model is closed and free of generics."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli := &CLI{}
	kctx := kong.Parse(cli,
		kong.Name("monomorph"),
		kong.Description("Expand generic types of an API schema model."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}
