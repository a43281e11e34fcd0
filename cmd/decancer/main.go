/*
Command decancer cures text from confusable Unicode characters.

    decancer cure "vＥⓡ𝔂 𝔽𝕌Ňℕｙ ţ乇𝕏𝓣"          # very funny text
    decancer censor -w hello < chat.log
    decancer find hello "wow heellllo"         # 4	12	heellllo

Options are read from a YAML configuration file (flag --config or
environment variable DECANCER_CONFIGURATION_PATH) and may be overridden
from the command line.
*/
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Debugf("decancer: %v", err)
		os.Exit(1)
	}
}
