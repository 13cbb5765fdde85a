package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/wary"
	"github.com/dhamidi/wary/display"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a file (or stdin) as UTF-8, pinpointing the first broken sequence",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(os.Stdin)
			}
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			if _, terr := wary.New(data).Bounded().Text(); terr != nil {
				if details, ok := terr.(wary.Details); ok {
					fmt.Fprint(os.Stderr, display.New(details).WithBanner(true).String())
				}
				return fmt.Errorf("invalid UTF-8")
			}
			fmt.Printf("valid UTF-8 (%d bytes)\n", len(data))
			return nil
		},
	}
}
