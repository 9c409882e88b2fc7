package main

import (
	"github.com/urfave/cli"

	"sphereflake/internal/config"
	"sphereflake/internal/log"
)

var logger = log.New("sphereflake")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

// applySettings copies the global flags into the runtime settings.
func applySettings(ctx *cli.Context) {
	config.SetWindowSize(ctx.GlobalInt("width"), ctx.GlobalInt("height"))
	config.SetCacheBudget(ctx.GlobalInt("cache"))
}
