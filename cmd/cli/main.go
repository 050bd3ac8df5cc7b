package main

import (
	"context"
	"log"
	"os"

	"github.com/johnp-05/sumativatr1/internal/buildinfo"
	"github.com/johnp-05/sumativatr1/internal/client/cli"
	"github.com/johnp-05/sumativatr1/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
