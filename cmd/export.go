package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"data-gate/internal/project"
)

var (
	exportInputs inputFlags
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the passing columns of a data file to a new delimited file",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := GetExportOptions()
		if err != nil {
			return err
		}

		s, err := openSession(&exportInputs)
		if err != nil {
			return err
		}
		report := s.reconcile(nil)
		if !report.OK() {
			Logger.Warn().Msg("file does not match the rule sheet, exporting only matching columns")
		}

		if err := writeExport(cmd.OutOrStdout(), exportOut, func(w io.Writer) error {
			return project.Export(w, report, s.table, opts)
		}); err != nil {
			return err
		}
		Logger.Info().
			Str("out", exportOut).
			Int("columns", len(report.Passing())).
			Int("rows", s.table.Rows()).
			Msg("export written")
		return nil
	},
}

// writeExport runs write against the named file, or against stdout for "-".
func writeExport(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func init() {
	RootCmd.AddCommand(exportCmd)

	exportInputs.register(exportCmd, true)
	exportCmd.Flags().StringVar(&exportOut, "out", "-", `output file ("-" for stdout)`)
}
