package main

import (
	"fmt"
	"os"

	"github.com/johnxli92/retirement-planner/internal/calculation"
	"github.com/johnxli92/retirement-planner/internal/config"
	"github.com/johnxli92/retirement-planner/internal/output"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Run a year-by-year projection from a plan config",
	Long: "Loads a YAML plan configuration, simulates one year per age from current_age " +
		"through end_age and renders the resulting table.",
	RunE: runProject,
}

var (
	projectConfigFile string
	projectFormat     string
	projectToFile     bool
	projectAtAge      int
	projectVerbose    bool
)

func init() {
	projectCmd.Flags().StringVarP(&projectConfigFile, "config", "c", "", "Path to plan YAML file (required)")
	projectCmd.Flags().StringVarP(&projectFormat, "format", "f", "console", "Output format: console, csv, retirement-csv, json")
	projectCmd.Flags().BoolVar(&projectToFile, "write-file", false, "Write the report to a timestamped file instead of stdout")
	projectCmd.Flags().IntVar(&projectAtAge, "at-age", 0, "Also print the headline metrics for a single age")
	projectCmd.Flags().BoolVarP(&projectVerbose, "verbose", "v", false, "Enable debug logging")

	if err := projectCmd.MarkFlagRequired("config"); err != nil {
		panic(fmt.Sprintf("failed to mark config flag as required: %v", err))
	}

	rootCmd.AddCommand(projectCmd)
}

func runProject(_ *cobra.Command, _ []string) error {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if projectVerbose {
		log.SetLevel(logrus.DebugLevel)
	}

	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(projectConfigFile)
	if err != nil {
		return err
	}
	log.Debugf("loaded plan: ages %d-%d-%d, order %s", cfg.CurrentAge, cfg.RetireAge, cfg.EndAge, cfg.WithdrawalOrder)

	engine := calculation.NewProjectionEngine()
	engine.SetLogger(&logrusAdapter{log})

	result, err := engine.RunPlan(cfg)
	if err != nil {
		return err
	}

	if projectAtAge != 0 {
		rec := result.RecordAtAge(projectAtAge)
		if rec == nil {
			return fmt.Errorf("age %d is outside the projected range %d-%d", projectAtAge, cfg.CurrentAge, cfg.EndAge)
		}
		fmt.Printf("Age %d: balance %s, withdrawal %s, net income %s\n",
			rec.Age,
			output.FormatCurrency(rec.TotalBalance),
			output.FormatCurrency(rec.WithdrawalTotal),
			output.FormatCurrency(rec.NetIncomeAfterTax))
	}

	if projectToFile {
		filename, err := output.GenerateReport(result, projectFormat)
		if err != nil {
			return err
		}
		log.Infof("report written to %s", filename)
		return nil
	}

	f := output.GetFormatterByName(projectFormat)
	if f == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, projectFormat)
	}
	data, err := f.Format(result)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// logrusAdapter bridges the calculation.Logger interface to a logrus logger.
type logrusAdapter struct {
	log *logrus.Logger
}

func (la *logrusAdapter) Debugf(format string, args ...any) { la.log.Debugf(format, args...) }
func (la *logrusAdapter) Infof(format string, args ...any)  { la.log.Infof(format, args...) }
func (la *logrusAdapter) Warnf(format string, args ...any)  { la.log.Warnf(format, args...) }
func (la *logrusAdapter) Errorf(format string, args ...any) { la.log.Errorf(format, args...) }
