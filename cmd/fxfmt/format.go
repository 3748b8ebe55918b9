package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fxfmt/pkg/fxfmt"
)

var formatIndent int

var formatCmd = &cobra.Command{
	Use:   "format [formula]",
	Short: "Beautify a formula with indentation and line breaks",
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
		indent := formatIndent
		if !cmd.Flags().Changed("indent") {
			indent = cfg.Format.Indent
		}

		e := fxfmt.New(
			fxfmt.WithIndentSize(indent),
			fxfmt.WithMaxDepth(cfg.Format.MaxDepth),
		)
		defer e.Close()

		pretty, err := e.Format(f)
		if err != nil {
			return err
		}
		fmt.Println(pretty)
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [formula]",
	Short: "Validate a formula's structure",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := readFormula(args)
		if err != nil {
			return err
		}

		e := fxfmt.New()
		defer e.Close()

		if err := e.Validate(f); err != nil {
			return err
		}
		okColor.Println("ok")
		return nil
	},
}

func init() {
	formatCmd.Flags().IntVar(&formatIndent, "indent", 4, "spaces per indentation level")
}
