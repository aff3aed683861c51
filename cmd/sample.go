package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"data-gate/internal/engine"
	"data-gate/internal/project"
)

var (
	sampleInputs inputFlags
	sampleOut    string
	sampleSeed   int64
	nullEvery    int
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate a data file that passes a rule sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := GetExportOptions()
		if err != nil {
			return err
		}
		rows := viper.GetInt("sample.rows")
		if rows < 0 {
			return fmt.Errorf("rows must not be negative, got %d", rows)
		}

		s, err := openSession(&sampleInputs)
		if err != nil {
			return err
		}

		Logger.Info().Int("rows", rows).Str("sheet", s.rules.Sheet).Msg("generating sample")
		start := time.Now()

		progress := uiprogress.New()
		progress.SetOut(os.Stderr)
		progress.Start()
		bar := progress.AddBar(rows).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Generating: "
		})

		sample, err := engine.Generate(s.rules, s.vocab, rows, engine.Options{
			Seed:      sampleSeed,
			NullEvery: nullEvery,
			OnRow:     func() { bar.Incr() },
		})
		progress.Stop()
		if err != nil {
			return err
		}

		// The sample must pass its own rule sheet.
		s.table = sample.Table
		report := s.reconcile(nil)
		if !report.OK() {
			Logger.Warn().Msg("generated sample does not pass the rule sheet")
		}

		if err := writeExport(cmd.OutOrStdout(), sampleOut, func(w io.Writer) error {
			return project.Export(w, report, sample.Table, opts)
		}); err != nil {
			return err
		}
		Logger.Info().Str("out", sampleOut).Dur("elapsed", time.Since(start)).Msg("sample written")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(sampleCmd)

	sampleInputs.register(sampleCmd, false)
	sampleCmd.Flags().Int("rows", 100, "number of rows to generate")
	sampleCmd.Flags().StringVar(&sampleOut, "out", "-", `output file ("-" for stdout)`)
	sampleCmd.Flags().Int64Var(&sampleSeed, "seed", 0, "random seed (0 picks one)")
	sampleCmd.Flags().IntVar(&nullEvery, "null-every", 0, "leave every n-th value of non-key columns empty")

	viper.BindPFlag("sample.rows", sampleCmd.Flags().Lookup("rows"))
}
