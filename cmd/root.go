/*
Copyright © 2019 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/jensneuse/abstractlogger"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configLogLevel    = "log-level"
	configMaxDepth    = "max-depth"
	configMaxFields   = "max-fields"
	configConcurrency = "concurrency"
	configFormat      = "format"
)

var (
	cfgFile string
	logger  abstractlogger.Logger = abstractlogger.NoopLogger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "graphql-syntax",
	Short: "graphql-syntax lexes and parses GraphQL documents",
	Long: `graphql-syntax turns GraphQL documents into tokens or a syntax tree.

Configuration is read from flags, GRAPHQL_SYNTAX_* environment variables
and $HOME/.graphql-syntax.yaml, in this order of precedence.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configured, err := newLogger(viper.GetString(configLogLevel))
		if err != nil {
			return err
		}
		logger = configured
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.graphql-syntax.yaml)")
	rootCmd.PersistentFlags().String(configLogLevel, "warn", "log level, one of debug, info, warn, error")
	rootCmd.PersistentFlags().Int(configMaxDepth, 0, "maximum nesting of braces, brackets and parentheses, 0 disables the limit")
	rootCmd.PersistentFlags().Int(configMaxFields, 0, "maximum number of field selections per document, 0 disables the limit")

	_ = viper.BindPFlag(configLogLevel, rootCmd.PersistentFlags().Lookup(configLogLevel))
	_ = viper.BindPFlag(configMaxDepth, rootCmd.PersistentFlags().Lookup(configMaxDepth))
	_ = viper.BindPFlag(configMaxFields, rootCmd.PersistentFlags().Lookup(configMaxFields))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".graphql-syntax")
	}

	viper.SetEnvPrefix("GRAPHQL_SYNTAX")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
