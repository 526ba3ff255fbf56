package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"exusiai.dev/hystats/cmd/app/cli/inspect"
	"exusiai.dev/hystats/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "hystats",
		Usage:       "query Hypixel stats payloads",
		Description: "Reads Hypixel API player or stats payloads from a file or stdin and answers questions about unlocked packages.",
		Version:     bininfo.Describe(),
		Commands:    inspect.Commands(),
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
