package cmd

import (
	"github.com/etnz/stocktracker/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion installs shell completion for the application. It must run
// before flag parsing: when the shell asks for completions the process
// serves them and exits.
func Completion(name string) {
	topics, _ := docs.GetAllTopics()

	tradeFlags := map[string]complete.Predictor{
		"s": predict.Nothing,
		"q": predict.Nothing,
		"p": predict.Nothing,
		"d": predict.Nothing,
		"m": predict.Nothing,
	}

	tree := &complete.Command{
		Flags: map[string]complete.Predictor{
			"dir":      predict.Dirs("*"),
			"ledger":   predict.Nothing,
			"currency": predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
			"v":        predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"buy":  {Flags: tradeFlags},
			"sell": {Flags: tradeFlags},
			"portfolio": {Flags: map[string]complete.Predictor{
				"d": predict.Nothing,
				"u": predict.Nothing,
			}},
			"update": {},
			"log": {Flags: map[string]complete.Predictor{
				"s": predict.Nothing,
			}},
			"summary": {Flags: map[string]complete.Predictor{
				"d": predict.Nothing,
				"o": predict.Files("*.json"),
				"u": predict.Nothing,
			}},
			"quote": {},
			"watch": {Flags: map[string]complete.Predictor{
				"every": predict.Nothing,
			}},
			"fmt":   {},
			"topic": {Args: predict.Set(topics)},
		},
	}
	tree.Complete(name)
}
