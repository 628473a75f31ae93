package main

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/synalter/internal/runner"
)

func main() {
	cliOpts := runner.ParseFlags()

	synRunner, err := runner.New(cliOpts)
	if err != nil {
		gologger.Fatal().Msgf("could not create runner: %s\n", err)
	}
	defer synRunner.Close()

	if err := synRunner.Run(); err != nil {
		gologger.Error().Msgf("failed to generate variants got %v", err)
	}
}
