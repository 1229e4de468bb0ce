package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/minercars/minercars/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Best effort: a missing .env file is fine.
	godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion. It only takes over when the shell is
// asking for completions, otherwise it is a no-op.
func completion() {
	flags := map[string]complete.Predictor{
		"dir": predict.Dirs("*"),
	}
	sub := func(p complete.Predictor) *complete.Command {
		return &complete.Command{Flags: flags, Args: p}
	}
	mcars := &complete.Command{
		Flags: flags,
		Sub: map[string]*complete.Command{
			"login":      sub(predict.Nothing),
			"logout":     sub(predict.Nothing),
			"register":   sub(predict.Nothing),
			"cars":       sub(predict.Nothing),
			"add-car":    sub(predict.Nothing),
			"remove-car": sub(predict.Nothing),
			"buy":        sub(predict.Nothing),
			"return":     sub(predict.Nothing),
			"tickets":    sub(predict.Nothing),
			"revenue":    sub(predict.Something),
			"topic":      sub(predict.Set{"readme", "purchasing", "returns", "membership", "revenue", "*"}),
		},
	}
	mcars.Complete("mcars")
}
