package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yarlson/go-procedure/internal/scenario"
)

func newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print <success|error|warning|info> <action> <description>",
		Short: "Print a one-shot status line",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(cmd, scenario.MessageKind(args[0]), args[1], args[2])
		},
	}
}

func runPrint(cmd *cobra.Command, kind scenario.MessageKind, action, description string) error {
	if !kind.IsValid() {
		return fmt.Errorf("unknown kind %q: expected success, error, warning or info", kind)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	scenario.PrintMessage(newPrinter(cmd, cfg), scenario.Message{
		Kind:        kind,
		Action:      action,
		Description: description,
	})
	return nil
}
