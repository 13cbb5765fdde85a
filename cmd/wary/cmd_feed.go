package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/wary"
	"github.com/dhamidi/wary/classfile"
	"github.com/dhamidi/wary/display"
)

var feedLog = commonlog.GetLogger("wary.feed")

func newFeedCmd() *cobra.Command {
	var chunk int

	cmd := &cobra.Command{
		Use:   "feed <classfile>",
		Short: "Replay a class file as a growing stream, retrying on demand",
		Long: `Feed parses the class file header from a buffer that starts out
holding only the first chunk and grows by exactly as many bytes as the
parser asks for, demonstrating the retry requirements a streaming
consumer would follow.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read class file: %w", err)
			}

			have := chunk
			if have > len(data) {
				have = len(data)
			}
			attempts := 0
			for {
				attempts++
				cf, _, err := classfile.ParsePartial(data[:have])
				if err == nil {
					feedLog.Infof("parsed %s in %d attempts", cf.ClassName(), attempts)
					fmt.Printf("parsed %s (version %s) after %d attempts, %d of %d bytes\n",
						cf.ClassName(), cf.Version(), attempts, have, len(data))
					return nil
				}
				r, ok := err.(wary.Retryable)
				if !ok || r.IsFatal() {
					if details, ok := err.(wary.Details); ok {
						fmt.Fprint(os.Stderr, display.New(details).WithBanner(true).String())
					}
					return fmt.Errorf("invalid class file: %s", args[0])
				}
				need := r.RetryRequirement().ContinueAfter()
				feedLog.Infof("attempt %d: have %d bytes, parser needs %s", attempts, have, r.RetryRequirement())
				if have+need > len(data) {
					return fmt.Errorf("stream ended %d bytes short", have+need-len(data))
				}
				have += need
			}
		},
	}
	cmd.Flags().IntVarP(&chunk, "chunk", "c", 8, "initial number of bytes available to the parser")
	return cmd
}
