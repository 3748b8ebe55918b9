package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fxfmt/pkg/fxfmt"
)

var (
	simplifyProvider string
	simplifyModel    string
	simplifyOllama   string
	simplifyIndent   int
	simplifyStream   bool
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify [formula]",
	Short: "Beautify a formula and ask the AI for a simpler version",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := readFormula(args)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		indent := simplifyIndent
		if !cmd.Flags().Changed("indent") {
			indent = cfg.Format.Indent
		}

		opts, err := engineOptions(cfg, simplifyProvider, simplifyModel, simplifyOllama, indent, simplifyStream)
		if err != nil {
			return err
		}
		e := fxfmt.New(opts...)
		defer e.Close()

		result, err := e.Simplify(f)
		if err != nil {
			return err
		}

		if simplifyStream {
			// The streamed reply already went to stdout.
			fmt.Println()
		}
		fmt.Println(result.Pretty)
		fmt.Println()
		color.New(color.FgCyan).Println(result.Simplified)
		fmt.Println(result.Comment)
		return nil
	},
}

func init() {
	simplifyCmd.Flags().StringVar(&simplifyProvider, "provider", "", "LLM provider: anthropic, ollama, or openrouter")
	simplifyCmd.Flags().StringVar(&simplifyModel, "model", "", "LLM model name")
	simplifyCmd.Flags().StringVar(&simplifyOllama, "ollama", "", "Ollama API URL")
	simplifyCmd.Flags().IntVar(&simplifyIndent, "indent", 4, "spaces per indentation level")
	simplifyCmd.Flags().BoolVar(&simplifyStream, "stream", false, "stream the model reply")
}
