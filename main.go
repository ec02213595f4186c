// Package main is the entry point for the tunesearch application.
package main

import (
	"github.com/samber/lo"
	"github.com/tunesearch-cli/tunesearch/cmd"
	"github.com/tunesearch-cli/tunesearch/config"
	"github.com/tunesearch-cli/tunesearch/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
