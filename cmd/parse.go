package cmd

import (
	"context"
	"io"
	"io/ioutil"

	"github.com/jensneuse/abstractlogger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TykTechnologies/graphql-syntax/pkg/astparser"
	"github.com/TykTechnologies/graphql-syntax/pkg/operationreport"
)

type parseConfig struct {
	Format      string
	Limits      astparser.Limits
	Concurrency int
}

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <file>...",
	Short: "parse prints the syntax tree of one or more GraphQL documents",
	Long: `parse reads every file, parses them concurrently and prints one syntax tree per file.

If a document cannot be parsed the GraphQL errors object of the first failing file
is printed instead and the command exits with a non-zero status.`,
	Example: "graphql-syntax parse --format json schema.graphql operations.graphql",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config := parseConfig{
			Format: viper.GetString(configFormat),
			Limits: astparser.Limits{
				MaxDepth:  viper.GetInt(configMaxDepth),
				MaxFields: viper.GetInt(configMaxFields),
			},
			Concurrency: viper.GetInt(configConcurrency),
		}
		return runParse(context.Background(), cmd.OutOrStdout(), config, args)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().String(configFormat, formatSpew, "output format, one of spew, json, yaml")
	parseCmd.Flags().Int(configConcurrency, 4, "number of documents parsed at the same time, 0 parses all at once")

	_ = viper.BindPFlag(configFormat, parseCmd.Flags().Lookup(configFormat))
	_ = viper.BindPFlag(configConcurrency, parseCmd.Flags().Lookup(configConcurrency))
}

func runParse(ctx context.Context, out io.Writer, config parseConfig, fileNames []string) error {

	dump, err := dumperFor(config.Format)
	if err != nil {
		return err
	}

	sources := make([]string, len(fileNames))
	for i, fileName := range fileNames {
		data, err := ioutil.ReadFile(fileName)
		if err != nil {
			return errors.Wrap(err, "parse")
		}
		sources[i] = string(data)
	}

	logger.Debug("parse",
		abstractlogger.Strings("files", fileNames),
		abstractlogger.Int("concurrency", config.Concurrency),
		abstractlogger.Int("maxDepth", config.Limits.MaxDepth),
		abstractlogger.Int("maxFields", config.Limits.MaxFields),
	)

	documents, err := astparser.ParseConcurrently(ctx, sources, config.Concurrency, astparser.WithLimits(config.Limits))
	if err != nil {
		return reportParseError(out, fileNames, err)
	}

	for i := range documents {
		if err := dump(out, fileNames[i], documents[i]); err != nil {
			return errors.Wrapf(err, "dump %s", fileNames[i])
		}
	}

	return nil
}

// reportParseError prints the GraphQL errors object for err and returns err annotated with the failing file
func reportParseError(out io.Writer, fileNames []string, err error) error {

	report := operationreport.Report{}
	astparser.AddReportError(&report, err)

	errorsJSON, jsonErr := report.ErrorsJSON()
	if jsonErr != nil {
		return errors.Wrap(jsonErr, "rendering errors")
	}
	if _, writeErr := out.Write(append(errorsJSON, '\n')); writeErr != nil {
		return writeErr
	}

	var sourceErr *astparser.SourceError
	if errors.As(err, &sourceErr) {
		logger.Error("parse",
			abstractlogger.String("file", fileNames[sourceErr.Index]),
			abstractlogger.Error(sourceErr.Err),
		)
		return errors.Wrapf(sourceErr.Err, "parse %s", fileNames[sourceErr.Index])
	}

	return errors.Wrap(err, "parse")
}
