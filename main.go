package main

import (
	"github.com/mediagrab/mediagrab/cmd"
	"github.com/mediagrab/mediagrab/config"
	"github.com/mediagrab/mediagrab/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	cmd.Execute()
}
