package main

import (
	"os"

	"github.com/ayoisaiah/lapwatch/app"
	"github.com/ayoisaiah/lapwatch/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	if err := run(os.Args); err != nil {
		report.Quit(err)
	}
}
