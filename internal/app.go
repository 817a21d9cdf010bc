package internal

import (
	"context"

	"refoundly/internal/cli"
	"refoundly/internal/config"
	"refoundly/internal/knowledge"
	"refoundly/internal/logging"

	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Options() fx.Option {
	return fx.Options(
		logger.Module(),
		logger.WithFxDefaultLogger(),
		config.Module(),
		logging.Module(),
		knowledge.Module(),
		cli.Module(),
	)
}

func Run() error {
	var runner *cli.Runner

	app := fx.New(
		Options(),
		fx.Populate(&runner),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		_ = app.Stop(ctx)
	}()

	return runner.Execute()
}
