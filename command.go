package inlinetest

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// NewCommand generates a new CLI running the registered test files.
func NewCommand(
	name string,
	description string,
	version string,
) *cobra.Command {

	cobra.OnInitialize(func() {
		viper.SetEnvPrefix(name)
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	})

	var rootCmd = &cobra.Command{
		Use:           name,
		Short:         description,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {

			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			if path := viper.GetString("env-file"); path != "" {
				if err := godotenv.Load(path); err != nil {
					return errors.Wrapf(err, "unable to load env file '%s'", path)
				}
			}

			logger, err := newLogger(viper.GetString("log-level"))
			if err != nil {
				return err
			}
			zap.ReplaceGlobals(logger)

			return nil
		},
	}

	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("env-file", "", "Path to a file of KEY=VALUE pairs to load in the environment")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Prints the version and exit.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version) // nolint
		},
	}

	var cmdList = &cobra.Command{
		Use:           "list FILE...",
		Aliases:       []string{"ls"},
		Short:         "List the tests and hooks of the given files.",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := NewPrinter(cmd.OutOrStdout(), !viper.GetBool("no-color"), false)
			return listTests(NewDriver(NewLoader(), printer), args, viper.GetString("tag"))
		},
	}

	cmdList.Flags().StringP("tag", "t", "", "Only list tests with the given tag")

	var cmdRunTests = &cobra.Command{
		Use:           "run FILE...",
		Aliases:       []string{"test"},
		Short:         "Run the tests of the given files",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {

			tag := viper.GetString("tag")
			printer := NewPrinter(cmd.OutOrStdout(), !viper.GetBool("no-color"), viper.GetBool("verbose"))

			start := time.Now()
			total := NewDriver(NewLoader(), printer).Run(args, tag)

			if path := viper.GetString("report"); path != "" {
				if err := writeReport(path, newReport(args, tag, total, time.Since(start), time.Now())); err != nil {
					return err
				}
			}

			if ExitCode(total) != 0 {
				return ErrTestsFailed
			}

			return nil
		},
	}

	cmdRunTests.Flags().StringP("tag", "t", "", "Only run tests with the given tag")
	cmdRunTests.Flags().StringP("report", "r", "", "Write a JSON report of the run at the given path")
	cmdRunTests.Flags().BoolP("verbose", "V", false, "Show the stack of panicking tests")

	rootCmd.AddCommand(
		versionCmd,
		cmdList,
		cmdRunTests,
	)

	return rootCmd
}

// Execute executes the command and returns the process exit code:
// 0 if every test passed, 1 otherwise.
func Execute(cmd *cobra.Command) int {

	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, ErrTestsFailed) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err) // nolint
		}
		return 1
	}

	return 0
}
