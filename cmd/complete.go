package cmd

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete installs shell completion for the bkr binary. It must run before
// flag parsing: in completion mode it prints the candidates and exits.
func Complete() {
	session := map[string]complete.Predictor{
		"l":        predict.Something,
		"d":        predict.Something,
		"t":        predict.Set{"cash", "tournament"},
		"location": predict.Something,
		"stake":    predict.Something,
		"b":        predict.Something,
		"c":        predict.Something,
		"n":        predict.Nothing,
	}
	report := map[string]complete.Predictor{
		"l": predict.Something,
		"t": predict.Set{"all", "cash", "tournament"},
	}

	cmd := &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-dir": predict.Dirs("*"),
			"currency":   predict.Set{"USD", "EUR", "GBP"},
			"v":          predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"add": {Flags: session},
			"edit": {Flags: map[string]complete.Predictor{
				"id": predict.Something,
				"l":  predict.Something, "d": predict.Something,
				"t": predict.Set{"cash", "tournament"},
				"location": predict.Something, "stake": predict.Something,
				"b": predict.Something, "c": predict.Something, "n": predict.Nothing,
			}},
			"delete": {Flags: map[string]complete.Predictor{
				"id": predict.Something,
				"l":  predict.Something,
			}},
			"log":      {Flags: report},
			"summary":  {Flags: report},
			"stakes":   {Flags: report},
			"bankroll": {Flags: report},
			"fmt": {Flags: map[string]complete.Predictor{
				"l": predict.Something,
			}},
			"import": {Flags: map[string]complete.Predictor{
				"l":    predict.Something,
				"f":    predict.Files("*.json"),
				"path": predict.Something,
			}},
			"export": {Flags: map[string]complete.Predictor{
				"l": predict.Something,
				"o": predict.Files("*.csv"),
				"t": predict.Set{"all", "cash", "tournament"},
			}},
			"topic":  {Args: predict.Set{"readme", "ledger", "reports", "*"}},
			"assist": {Flags: map[string]complete.Predictor{"l": predict.Something}},
		},
	}
	cmd.Complete("bkr")
}
