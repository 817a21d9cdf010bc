package knowledge

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module(
		"knowledge",
		fx.Provide(NewLoader),
	)
}
