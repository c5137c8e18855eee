// Package obslog wraps sirupsen/logrus the way the corset CLI
// sets its level from a flag: one *logrus.Logger built per run, its level
// parsed straight from the --log-level string, plus Run, which returns an
// entry tagged with the run's tuning knobs for the driver to log through.
package obslog

import (
	"github.com/sirupsen/logrus"
)

// New builds a logger at the given level (any string logrus.ParseLevel
// accepts: "debug", "info", "warn", "error", …); an unparsable level
// falls back to info rather than failing the run.
func New(level string) *logrus.Logger {
	log := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

// Run returns a per-run logger carrying the invocation's n, fixedDigits,
// maxNumFeats, and workers as structured fields, so every subsequent log
// line from this run is already tagged with the parameters that produced it.
func Run(log *logrus.Logger, n, fixedDigits, maxNumFeats, workers int) *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"n":             n,
		"fixed_digits":  fixedDigits,
		"max_num_feats": maxNumFeats,
		"workers":       workers,
	})
}
