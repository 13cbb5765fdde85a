package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/wary"
	"github.com/dhamidi/wary/classfile"
	"github.com/dhamidi/wary/display"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <classfile>",
		Short: "Parse a class file header and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, err := classfile.ParseFile(args[0])
			if err != nil {
				if details, ok := err.(wary.Details); ok {
					fmt.Fprint(os.Stderr, display.New(details).WithBanner(true).String())
					return fmt.Errorf("invalid class file: %s", args[0])
				}
				return err
			}

			fmt.Printf("class:     %s\n", cf.ClassName())
			if super := cf.SuperClassName(); super != "" {
				fmt.Printf("super:     %s\n", super)
			}
			if ifaces := cf.InterfaceNames(); len(ifaces) > 0 {
				fmt.Printf("implements: %s\n", strings.Join(ifaces, ", "))
			}
			fmt.Printf("version:   %s\n", cf.Version())
			fmt.Printf("constants: %d\n", len(cf.ConstantPool))
			return nil
		},
	}
}
