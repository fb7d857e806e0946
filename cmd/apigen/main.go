package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	cli "github.com/adi-family/apigen/internal/cli"
)

func main() {
	root := &cobra.Command{
		Use:   "apigen",
		Short: "Generate typed API clients from OpenAPI documents",
	}

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newGeneratorsCmd())

	if err := root.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func newGenerateCmd() *cobra.Command {
	var configPath string
	var source string
	var output string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run every enabled generation from the config",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunGenerate(cli.RunGenerateParams{
				ConfigPath: configPath,
				Source:     source,
				Output:     output,
				Verbose:    verbose,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the apigen config file")
	cmd.Flags().StringVarP(&source, "spec", "s", "", "Input document, overrides the config input source")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory, overrides the config output")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func newValidateCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "validate <spec>",
		Short: "Parse an input document and report what it contains",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunValidate(args[0], format, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "Input format, detected from the extension when empty")
	return cmd
}

func newInspectCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "inspect <spec>",
		Short: "Dump the intermediate representation as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunInspect(args[0], format, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "Input format, detected from the extension when empty")
	return cmd
}

func newGeneratorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generators",
		Short: "List the registered generators",
		Run: func(cmd *cobra.Command, args []string) {
			cli.RunGenerators(cmd.OutOrStdout())
		},
	}
}
