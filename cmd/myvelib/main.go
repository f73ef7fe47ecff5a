package main

import (
	"fmt"
	"os"

	"github.com/codegangsta/cli"

	"github.com/pietrodll/school-projects/internal/clui"
	"github.com/pietrodll/school-projects/internal/common/config"
	"github.com/pietrodll/school-projects/internal/common/logger"
	"github.com/pietrodll/school-projects/internal/service"
)

func main() {
	app := cli.NewApp()
	app.Name = "myvelib"
	app.Usage = "simulate a municipal bike-rental network"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "setup-file, s",
			Usage:  "command script replayed before the interactive session",
			EnvVar: "MYVELIB_SETUP_FILE",
		},
		cli.StringFlag{
			Name:   "script-dir, d",
			Usage:  "directory the runtest command resolves file names against",
			Value:  "eval",
			EnvVar: "MYVELIB_SCRIPT_DIR",
		},
	}
	app.Action = run
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	logger.SetServiceName("myvelib")
	cfg.Print()

	manager := service.NewNetworkManager(cfg)
	controller := clui.NewController(manager, os.Stdin, os.Stdout, ctx.String("script-dir"))

	if setupFile := ctx.String("setup-file"); setupFile != "" {
		if err := controller.RunScript(setupFile); err != nil {
			return fmt.Errorf("replaying setup file: %w", err)
		}
	}
	controller.Interactive()
	return nil
}
