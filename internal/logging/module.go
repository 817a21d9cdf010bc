package logging

import (
	"context"
	"os"

	"refoundly/internal/config"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Module tees the application logger into cfg.LogFile. The decorator is
// registered at the root scope so every module sees the file-backed logger.
func Module() fx.Option {
	return fx.Options(
		fx.Provide(func(cfg config.Config) (*os.File, error) {
			return OpenLogFile(cfg.LogFile)
		}),
		fx.Decorate(func(base *zap.Logger, cfg config.Config, file *os.File) *zap.Logger {
			if file == nil {
				return base
			}
			return Tee(base, zapcore.AddSync(file), Level(cfg.Debug))
		}),
		fx.Module(
			"logging",
			fx.Invoke(func(lc fx.Lifecycle, logger *zap.Logger, file *os.File) {
				if file == nil {
					return
				}
				lc.Append(fx.Hook{
					OnStop: func(_ context.Context) error {
						_ = logger.Sync()
						return file.Close()
					},
				})
			}),
		),
	)
}
