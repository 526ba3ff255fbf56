package app

import (
	"time"

	"go.uber.org/fx"

	"exusiai.dev/hystats/internal/app/appconfig"
	"exusiai.dev/hystats/internal/app/appcontext"
	"exusiai.dev/hystats/internal/pkg/logger"
	"exusiai.dev/hystats/internal/service"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because the fx event logger itself needs them configured first
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Services
		service.Module(),

		// fx Extra Options
		fx.StartTimeout(1 * time.Second),
		fx.StopTimeout(5 * time.Second),
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
