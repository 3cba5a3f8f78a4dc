package cmd

import (
	"fmt"
	"io"
	"io/ioutil"

	"github.com/jensneuse/abstractlogger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/TykTechnologies/graphql-syntax/pkg/lexer"
	"github.com/TykTechnologies/graphql-syntax/pkg/lexer/token"
)

// lexCmd represents the lex command
var lexCmd = &cobra.Command{
	Use:     "lex <file>",
	Short:   "lex prints the tokens of a GraphQL document, one per line",
	Example: "graphql-syntax lex starwars.schema.graphql",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLex(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(out io.Writer, fileName string) error {

	data, err := ioutil.ReadFile(fileName)
	if err != nil {
		return errors.Wrap(err, "lex")
	}

	logger.Debug("lex",
		abstractlogger.String("file", fileName),
		abstractlogger.Int("size", len(data)),
	)

	l := lexer.New(string(data))

	for {
		tok, err := l.Read()
		if err != nil {
			return errors.Wrapf(err, "lex %s", fileName)
		}
		if _, err := fmt.Fprintln(out, tok.String()); err != nil {
			return err
		}
		if tok.Kind == token.End {
			return nil
		}
	}
}
