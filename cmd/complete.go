package cmd

import (
	"flag"

	"github.com/etnz/founder"
	"github.com/etnz/founder/date"
	"github.com/etnz/founder/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the commands registered in
// commander. Installed with COMP_INSTALL=1.
func Completion(commander *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub: map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{
			"store":    predict.Something,
			"currency": predict.Set{"USD", "EUR", "GBP", "CHF", "JPY", "CAD"},
			"v":        predict.Nothing,
		},
	}
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		sub := &complete.Command{Flags: map[string]complete.Predictor{}, Args: args(c.Name())}
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		fs.VisitAll(func(f *flag.Flag) { sub.Flags[f.Name] = flagValues(f.Name) })
		root.Sub[c.Name()] = sub
	})
	return root
}

func flagValues(name string) complete.Predictor {
	switch name {
	case "p":
		return predict.Set(date.Periods)
	case "d":
		return predict.Set{"0d", "-1d", "-1w", "-1m"}
	case "category":
		return predict.Set(founder.Categories)
	case "format":
		return predict.Set{"json", "yaml"}
	default:
		return predict.Something
	}
}

func args(command string) complete.Predictor {
	switch command {
	case "rm":
		var domains predict.Set
		for _, d := range founder.Domains {
			domains = append(domains, string(d))
		}
		return domains
	case "move":
		var statuses predict.Set
		for _, s := range founder.Statuses {
			statuses = append(statuses, string(s))
		}
		return statuses
	case "topic":
		topics, _ := docs.GetAllTopics()
		return predict.Set(topics)
	default:
		return predict.Nothing
	}
}
