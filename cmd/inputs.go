package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"data-gate/internal/reconcile"
	"data-gate/internal/schema"
	"data-gate/internal/source"
	"data-gate/internal/table"
	"data-gate/internal/types"
)

// inputFlags are the rule and data file flags shared by the commands that
// reconcile a file.
type inputFlags struct {
	rules string
	sheet string
	file  string
}

func (in *inputFlags) register(c *cobra.Command, withFile bool) {
	c.Flags().StringVarP(&in.rules, "rules", "r", "", "rules workbook (xlsx) or rule sheet (csv)")
	c.Flags().StringVarP(&in.sheet, "sheet", "s", "", "rule sheet name (default is the first sheet)")
	c.MarkFlagRequired("rules")
	if withFile {
		c.Flags().StringVarP(&in.file, "file", "f", "", "data file to check (csv or xlsx)")
		c.MarkFlagRequired("file")
	}
}

// session holds everything loaded for one command run.
type session struct {
	loader *source.Loader
	vocab  *types.Vocabulary
	rules  *schema.RuleSet
	table  *table.Table
}

func openSession(in *inputFlags) (*session, error) {
	loader, err := source.NewLoader(GetInputOptions(), source.NewCache(0), *Logger)
	if err != nil {
		return nil, fmt.Errorf("invalid input options: %w", err)
	}
	vocab, err := GetActiveVocabulary()
	if err != nil {
		return nil, err
	}
	Logger.Debug().Str("vocabulary", vocab.Name()).Str("input", loader.Options().String()).Msg("settings")

	rules, _, err := loader.LoadRules(in.rules, in.sheet)
	if err != nil {
		return nil, err
	}
	s := &session{loader: loader, vocab: vocab, rules: rules}

	if in.file != "" {
		if s.table, err = loader.LoadTable(in.file); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// reconcile runs the engine over the loaded table. onVerdict may be nil.
func (s *session) reconcile(onVerdict func(reconcile.Verdict)) *reconcile.Report {
	opts := GetEngineOptions()
	if onVerdict != nil {
		opts = append(opts, reconcile.WithObserver(onVerdict))
	}
	report := reconcile.NewEngine(s.vocab, opts...).Reconcile(s.rules, s.table)

	summary := report.Summary()
	Logger.Info().
		Bool("ok", report.OK()).
		Int("columns", len(s.table.Columns)).
		Int("passing", summary[reconcile.StatusOK]).
		Int("missing", summary[reconcile.StatusMissingColumn]).
		Int("unexpected", summary[reconcile.StatusUnexpectedColumn]).
		Msg("reconciliation finished")
	return report
}

// expectedVerdicts is the number of verdicts reconcile will emit.
func (s *session) expectedVerdicts() int {
	present := make(map[string]bool, len(s.table.Columns))
	for _, c := range s.table.Columns {
		present[schema.Canonical(c.Name)] = true
	}
	n := len(s.table.Columns)
	for _, e := range s.rules.Entries() {
		if !present[e.Canonical()] {
			n++
		}
	}
	return n
}
