package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/npillmayer/decancer"
	"github.com/npillmayer/decancer/cache"
	"github.com/npillmayer/decancer/locale"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app is the state shared by the sub-commands.
type app struct {
	configPath string
	flags      []string
	useLocale  bool
	logLevel   string
	filler     string
	words      []string
	config     *Configuration
	opts       decancer.Options
	curer      *cache.Curer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "decancer",
		Short: "`decancer` cures text from confusable Unicode characters",
		Long: "`decancer` cures text from confusable Unicode characters, homoglyphs, " +
			"Zalgo and bidi tricks. Texts are taken from the arguments, or line by line from stdin.",
		SilenceUsage:      true,
		PersistentPreRunE: a.configure,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.curer != nil {
				a.curer.Stop()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().StringSliceVarP(&a.flags, "options", "o", nil, "cure options, e.g. retain_greek,retain_capitalization")
	root.PersistentFlags().BoolVarP(&a.useLocale, "locale", "l", false, "retain the writing system of the user's locale")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (panic, fatal, error, warning, info, debug)")

	cureCmd := &cobra.Command{
		Use:   "cure [text...]",
		Short: "`cure` prints cured texts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.eachText(cmd, args, func(out io.Writer, cured decancer.CuredString) error {
				_, err := fmt.Fprintln(out, cured)
				return err
			})
		},
	}
	censorCmd := &cobra.Command{
		Use:   "censor [text...]",
		Short: "`censor` prints cured texts with words censored",
		RunE: func(cmd *cobra.Command, args []string) error {
			words := a.config.Censor.Words
			if cmd.Flags().Changed("word") {
				words = a.words
			}
			if cmd.Flags().Changed("filler") {
				a.config.Censor.Filler = a.filler
			}
			filler, err := a.config.filler()
			if err != nil {
				return err
			}
			if len(words) == 0 {
				return errors.New("no words to censor")
			}
			return a.eachText(cmd, args, func(out io.Writer, cured decancer.CuredString) error {
				censored, err := cured.CensorMultiple(words, filler)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, censored)
				return err
			})
		},
	}
	censorCmd.Flags().StringSliceVarP(&a.words, "word", "w", nil, "word to censor, may be repeated")
	censorCmd.Flags().StringVarP(&a.filler, "filler", "f", "*", "filler character")
	findCmd := &cobra.Command{
		Use:   "find <needle> [text...]",
		Short: "`find` prints the byte ranges of similar looking occurrences of needle",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			needle := args[0]
			return a.eachText(cmd, args[1:], func(out io.Writer, cured decancer.CuredString) error {
				for _, m := range cured.Find(needle).All() {
					if _, err := fmt.Fprintf(out, "%d\t%d\t%s\n", m.Start, m.End, cured.String()[m.Start:m.End]); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	root.AddCommand(cureCmd, censorCmd, findCmd)
	return root
}

// configure merges configuration file and command line flags, and sets up
// logging and the curer.
func (a *app) configure(cmd *cobra.Command, args []string) error {
	config, err := resolveConfiguration(a.configPath)
	if err != nil {
		return errors.Wrap(err, "configuration error")
	}
	a.config = config
	if cmd.Flags().Changed("log-level") {
		config.Log.Level = a.logLevel
	}
	if err = configureLogging(config); err != nil {
		return err
	}
	a.opts = config.Options
	if cmd.Flags().Changed("options") {
		if a.opts, err = decancer.OptionsFromFlags(a.flags...); err != nil {
			return err
		}
	}
	if a.useLocale || config.Locale {
		a.opts |= locale.Options()
	}
	logrus.WithField("options", a.opts).Debug("decancer configured")
	a.curer = cache.New(cache.Configure().Size(config.Cache.Size).TTL(config.Cache.TTL))
	return nil
}

func configureLogging(config *Configuration) error {
	level, err := logrus.ParseLevel(config.Log.Level)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	logrus.SetLevel(level)
	switch config.Log.Formatter {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	case "text", "":
		logrus.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	default:
		return fmt.Errorf("unsupported logging formatter: %q", config.Log.Formatter)
	}
	return nil
}

// eachText cures the texts given as arguments, or every line of stdin if
// there are none, and hands the results to f.
func (a *app) eachText(cmd *cobra.Command, args []string, f func(io.Writer, decancer.CuredString) error) error {
	out := cmd.OutOrStdout()
	handle := func(text string) error {
		cured, err := a.curer.Cure(text, a.opts)
		if errors.Is(err, decancer.ErrLevelExplicitOverflow) || errors.Is(err, decancer.ErrLevelImplicitOverflow) {
			logrus.WithError(err).Warn("cannot reorder text, curing without bidi")
			cured, err = a.curer.Cure(text, a.opts.DisableBidi())
		}
		if err != nil {
			return err
		}
		return f(out, cured)
	}
	if len(args) > 0 {
		for _, text := range args {
			if err := handle(text); err != nil {
				return err
			}
		}
		return nil
	}
	n := 0
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		n++
		if err := handle(strings.TrimSuffix(scanner.Text(), "\r")); err != nil {
			return errors.Wrapf(err, "line %d", n)
		}
	}
	logrus.WithField("lines", n).Debug("stdin done")
	return scanner.Err()
}
