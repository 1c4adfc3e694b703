package cli

import (
	"fmt"

	"github.com/aryankumar/kubetab/internal/output"
	"github.com/aryankumar/kubetab/pkg/version"
	"github.com/spf13/cobra"
)

// newVersionCmd creates the version command
func newVersionCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Display detailed version information for kubetab",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(cmd, opts)
		},
	}

	return cmd
}

func runVersion(cmd *cobra.Command, opts *rootOptions) error {
	info := version.Get()
	settings := opts.settings

	// Without an explicit format print the human-readable form
	if settings == nil || (!cmd.Flags().Changed("output") && settings.Output == string(output.FormatTable)) {
		fmt.Fprintln(cmd.OutOrStdout(), info.String())
		return nil
	}

	format, err := output.ParseFormat(settings.Output)
	if err != nil {
		return err
	}

	formatter := output.NewFormatter(format,
		output.WithNoColor(settings.NoColor),
		output.WithNoHeaders(settings.NoHeaders),
	)
	if err := formatter.Format(cmd.OutOrStdout(), info.Row()); err != nil {
		return fmt.Errorf("failed to write version info: %w", err)
	}
	return nil
}
