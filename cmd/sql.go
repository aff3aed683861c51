package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"data-gate/internal/dialect"
	"data-gate/internal/project"
)

var (
	sqlInputs     inputFlags
	targetTable   string
	sqlSource     string
	targetColumns bool
	truncate      bool
)

var sqlCmd = &cobra.Command{
	Use:   "sql",
	Short: "Print the advisory DELETE + INSERT ... SELECT statement for a data file",
	Long: `Print the statement that would load the passing columns of a data file
into the target table. Nothing is executed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := dialect.GetDialect(viper.GetString("sql.dialect"))
		if err != nil {
			return err
		}

		s, err := openSession(&sqlInputs)
		if err != nil {
			return err
		}
		report := s.reconcile(nil)
		if !report.OK() {
			Logger.Warn().Msg("file does not match the rule sheet, statement covers only matching columns")
		}

		stmt, err := project.SQL(report, targetTable, project.SQLOptions{
			Dialect:          d,
			Source:           sqlSource,
			UseTargetColumns: targetColumns,
			Truncate:         truncate,
		})
		if errors.Is(err, project.ErrNoPassingColumns) {
			return fmt.Errorf("cannot build a statement for %s: %w", targetTable, err)
		}
		if err != nil {
			return err
		}

		Logger.Info().Str("dialect", d.Name()).Str("table", targetTable).Msg("statement generated")
		fmt.Fprintln(cmd.OutOrStdout(), stmt)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(sqlCmd)

	sqlInputs.register(sqlCmd, true)
	sqlCmd.Flags().StringVarP(&targetTable, "table", "t", "", "target table name")
	sqlCmd.Flags().String("dialect", "ansi", "identifier quoting dialect (ansi, postgres, mysql, mssql, oracle)")
	sqlCmd.Flags().StringVar(&sqlSource, "source", project.DefaultSource, "relation the INSERT selects from")
	sqlCmd.Flags().BoolVar(&targetColumns, "target-columns", false, "list the rules' target columns in the INSERT column list")
	sqlCmd.Flags().BoolVar(&truncate, "truncate", false, "empty the table with TRUNCATE instead of DELETE")
	sqlCmd.MarkFlagRequired("table")

	viper.BindPFlag("sql.dialect", sqlCmd.Flags().Lookup("dialect"))
}
