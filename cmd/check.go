package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"data-gate/internal/reconcile"
)

var (
	checkInputs inputFlags
	strict      bool
	outputFmt   string
)

// reportRow is the serialized form of a verdict.
type reportRow struct {
	ExpectedColumn string `json:"expected_column" yaml:"expected_column"`
	ActualColumn   string `json:"actual_column" yaml:"actual_column"`
	ExpectedType   string `json:"expected_type" yaml:"expected_type"`
	ActualType     string `json:"actual_type" yaml:"actual_type"`
	TargetColumn   string `json:"target_column,omitempty" yaml:"target_column,omitempty"`
	Status         string `json:"status" yaml:"status"`
}

type reportDoc struct {
	RunID string      `json:"run_id" yaml:"run_id"`
	Sheet string      `json:"sheet" yaml:"sheet"`
	File  string      `json:"file" yaml:"file"`
	OK    bool        `json:"ok" yaml:"ok"`
	Rows  []reportRow `json:"columns" yaml:"columns"`
}

func newReportDoc(file string, r *reconcile.Report) reportDoc {
	doc := reportDoc{RunID: RunID, Sheet: r.Sheet, File: file, OK: r.OK()}
	for _, v := range r.Verdicts {
		doc.Rows = append(doc.Rows, reportRow{
			ExpectedColumn: v.ExpectedColumn,
			ActualColumn:   v.ActualColumn,
			ExpectedType:   v.ExpectedType,
			ActualType:     v.ActualType,
			TargetColumn:   v.TargetColumn,
			Status:         v.Status.String(),
		})
	}
	return doc
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Reconcile a data file against a rule sheet and print the report",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch outputFmt {
		case "table", "yaml", "json":
		default:
			return fmt.Errorf("unknown output format %q (expected table, yaml or json)", outputFmt)
		}

		s, err := openSession(&checkInputs)
		if err != nil {
			return err
		}

		start := time.Now()
		var report *reconcile.Report
		if outputFmt == "table" {
			progress := uiprogress.New()
			progress.SetOut(os.Stderr)
			progress.Start()
			bar := progress.AddBar(s.expectedVerdicts()).AppendCompleted().PrependElapsed()
			bar.PrependFunc(func(b *uiprogress.Bar) string {
				return "Checking columns: "
			})
			report = s.reconcile(func(reconcile.Verdict) { bar.Incr() })
			progress.Stop()
		} else {
			report = s.reconcile(nil)
		}
		Logger.Debug().Dur("elapsed", time.Since(start)).Msg("check done")

		doc := newReportDoc(checkInputs.file, report)
		if err := writeReport(cmd.OutOrStdout(), outputFmt, doc); err != nil {
			return err
		}

		if viper.GetBool("check.strict") && !report.OK() {
			return errRejected
		}
		return nil
	},
}

func writeReport(w io.Writer, format string, doc reportDoc) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	data := pterm.TableData{{"#", "Expected Column", "Actual Column", "Expected Type", "Actual Type", "Status"}}
	for i, row := range doc.Rows {
		data = append(data, []string{
			strconv.Itoa(i + 1), row.ExpectedColumn, row.ActualColumn, row.ExpectedType, row.ActualType, row.Status,
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithWriter(w).WithData(data).Render(); err != nil {
		return err
	}

	if doc.OK {
		pterm.Success.WithWriter(w).Printfln("%s passed all checks against sheet %s", doc.File, doc.Sheet)
	} else {
		pterm.Error.WithWriter(w).Printfln("%s does not match sheet %s", doc.File, doc.Sheet)
	}
	return nil
}

func init() {
	RootCmd.AddCommand(checkCmd)

	checkInputs.register(checkCmd, true)
	checkCmd.Flags().BoolVar(&strict, "strict", false, "exit with status 1 when the file does not pass")
	checkCmd.Flags().StringVarP(&outputFmt, "output", "o", "table", "report format (table, yaml, json)")

	viper.BindPFlag("check.strict", checkCmd.Flags().Lookup("strict"))
}
