package inspect

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "exusiai.dev/hystats/cmd/app/cli"
	"exusiai.dev/hystats/internal/service"
)

type CommandDeps struct {
	fx.In

	Inspector *service.Inspector
}

func depsFn() CommandDeps {
	var deps CommandDeps
	cliapp.Start(fx.Populate(&deps))
	return deps
}

const (
	flagFile     = "file"
	flagCategory = "category"
	flagJSON     = "json"
)

func fileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagFile,
		Aliases: []string{"f"},
		Usage:   "payload to read; use - for stdin",
		Value:   service.StdinPath,
	}
}

func categoryFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagCategory,
		Aliases: []string{"c"},
		Usage:   "stats category to inspect, e.g. Bedwars; empty treats the payload as the category (or HYSTATS_DEFAULT_CATEGORY when set)",
	}
}

func Commands() []*cli.Command {
	return commands(depsFn)
}

func commands(depsFn func() CommandDeps) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "packages",
			Usage: "list the packages unlocked in a stats category",
			Flags: []cli.Flag{
				fileFlag(),
				categoryFlag(),
				&cli.BoolFlag{Name: flagJSON, Usage: "print a JSON array instead of one package per line"},
			},
			Action: func(ctx *cli.Context) error {
				deps := depsFn()
				pkgs, err := deps.Inspector.Packages(log.Logger.WithContext(ctx.Context), ctx.String(flagFile), ctx.String(flagCategory))
				if err != nil {
					return err
				}
				if ctx.Bool(flagJSON) {
					return json.NewEncoder(ctx.App.Writer).Encode(pkgs)
				}
				for _, pkg := range pkgs {
					fmt.Fprintln(ctx.App.Writer, pkg)
				}
				return nil
			},
		},
		{
			Name:      "has-package",
			Usage:     "check whether a package is unlocked; exits with status 1 when it is not",
			ArgsUsage: "NAME",
			Flags:     []cli.Flag{fileFlag(), categoryFlag()},
			Action: func(ctx *cli.Context) error {
				if ctx.NArg() != 1 {
					return cli.Exit("expect exactly one package name", 2)
				}
				deps := depsFn()
				has, err := deps.Inspector.HasPackage(log.Logger.WithContext(ctx.Context), ctx.String(flagFile), ctx.String(flagCategory), ctx.Args().First())
				if err != nil {
					return err
				}
				fmt.Fprintln(ctx.App.Writer, strconv.FormatBool(has))
				if !has {
					return cli.Exit("", 1)
				}
				return nil
			},
		},
		{
			Name:  "categories",
			Usage: "list the stats categories present in a player payload",
			Flags: []cli.Flag{fileFlag()},
			Action: func(ctx *cli.Context) error {
				deps := depsFn()
				names, err := deps.Inspector.Categories(log.Logger.WithContext(ctx.Context), ctx.String(flagFile))
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Fprintln(ctx.App.Writer, name)
				}
				return nil
			},
		},
	}
}
