package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	adakgc "github.com/hongbinye/AdaKGC"
)

// config carries environment defaults for the CLI flags.
type config struct {
	AppEnv    string `env:"APP_ENV" envDefault:"local"`
	MatchMode string `env:"ADAKGC_MATCH_MODE" envDefault:"normal"`
	Verbose   bool   `env:"ADAKGC_VERBOSE" envDefault:"false"`
}

func main() {
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "parse environment: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCommand(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(cfg config) *cobra.Command {
	var (
		task      string
		goldPath  string
		predPath  string
		matchMode string
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:          "adakgc-eval",
		Short:        "Score entity, relation and event extraction output against gold annotations",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cfg.AppEnv)
			opts := adakgc.Options{
				MatchMode: adakgc.MatchMode(matchMode),
				Verbose:   verbose,
				Logger:    &logger,
			}
			results, err := evaluate(task, goldPath, predPath, opts)
			if err != nil {
				logger.Error().Err(err).Str("task", task).Msg("evaluation failed")
				return err
			}
			out, err := json.MarshalIndent(results, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&task, "task", "entity", "extraction task to score: entity, relation or event")
	cmd.Flags().StringVar(&goldPath, "gold", "", "path to the gold corpus JSON file")
	cmd.Flags().StringVar(&predPath, "pred", "", "path to the prediction corpus JSON file")
	cmd.Flags().StringVar(&matchMode, "match-mode", cfg.MatchMode, "matching semantics: set, normal or multimatch")
	cmd.Flags().BoolVar(&verbose, "verbose", cfg.Verbose, "emit per-example diagnostics")
	_ = cmd.MarkFlagRequired("gold")
	_ = cmd.MarkFlagRequired("pred")
	return cmd
}

func evaluate(task, goldPath, predPath string, opts adakgc.Options) (adakgc.Result, error) {
	switch task {
	case "entity":
		var gold [][]adakgc.EntitySpan
		if err := readJSON(goldPath, &gold); err != nil {
			return nil, err
		}
		var pred []adakgc.EntityPrediction
		if err := readJSON(predPath, &pred); err != nil {
			return nil, err
		}
		if err := checkLengths(len(gold), len(pred)); err != nil {
			return nil, err
		}
		scorer := adakgc.NewEntityScorer(opts)
		return scorer.EvalInstanceList(scorer.LoadGoldList(gold), scorer.LoadPredList(pred))

	case "relation":
		var gold [][]adakgc.RelationRecord
		if err := readJSON(goldPath, &gold); err != nil {
			return nil, err
		}
		var pred []adakgc.RelationPrediction
		if err := readJSON(predPath, &pred); err != nil {
			return nil, err
		}
		if err := checkLengths(len(gold), len(pred)); err != nil {
			return nil, err
		}
		scorer := adakgc.NewRelationScorer(opts)
		goldInstances, err := scorer.LoadGoldList(gold)
		if err != nil {
			return nil, err
		}
		return scorer.EvalInstanceList(goldInstances, scorer.LoadPredList(pred))

	case "event":
		var gold [][]adakgc.EventRecord
		if err := readJSON(goldPath, &gold); err != nil {
			return nil, err
		}
		var pred []adakgc.EventPrediction
		if err := readJSON(predPath, &pred); err != nil {
			return nil, err
		}
		if err := checkLengths(len(gold), len(pred)); err != nil {
			return nil, err
		}
		scorer := adakgc.NewEventScorer(opts)
		return scorer.EvalInstanceList(scorer.LoadGoldList(gold), scorer.LoadPredList(pred))

	default:
		return nil, fmt.Errorf("unknown task %q, want entity, relation or event", task)
	}
}

func checkLengths(gold, pred int) error {
	if gold != pred {
		return fmt.Errorf("gold corpus has %d examples, prediction corpus has %d", gold, pred)
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func newLogger(appEnv string) zerolog.Logger {
	if appEnv == "local" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
