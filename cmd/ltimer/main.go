package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

var version = "dev"

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		fmt.Printf("ltimer: %s\n", err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "ltimer",
		HelpName:  "ltimer",
		Usage:     "exercise a hierarchical timing wheel",
		Version:   version,
		UsageText: "ltimer <command> [arguments...]",
		Commands: []cli.Command{
			{
				Name:    "simulate",
				Aliases: []string{"s"},
				Usage:   "schedule random timers on a virtual clock and check every firing tick",
				Action:  simulate,
				Flags:   simulateFlags,
			},
			{
				Name:    "run",
				Aliases: []string{"r"},
				Usage:   "schedule random timers on a real-time driver",
				Action:  run,
				Flags:   runFlags,
			},
		},
	}
}
