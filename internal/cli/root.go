package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aryankumar/kubetab/internal/args"
	"github.com/aryankumar/kubetab/internal/config"
	"github.com/aryankumar/kubetab/internal/dispatch"
	"github.com/aryankumar/kubetab/internal/kubectl"
	"github.com/aryankumar/kubetab/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// rootOptions holds flag values and the loaded settings for one invocation
type rootOptions struct {
	configFile string
	namespace  string
	kubeconfig string
	output     string
	verbose    bool
	noColor    bool
	noHeaders  bool
	strict     bool
	minify     bool

	settings *config.Settings
}

// Execute runs the root command with the provided context
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd creates the root command
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	tree := kubectl.New(nil).Tree()

	rootCmd := &cobra.Command{
		Use:   "kubetab [command path]",
		Short: "kubetab - View kubeconfig files as structured records",
		Long: `kubetab reads a kubeconfig file and renders it as ordered, structured
records in table, JSON or YAML form. It never contacts a cluster.

The kubeconfig is taken from --kubeconfig, then $KUBECONFIG, then
$HOME/.kube/config.

Commands:
` + usageLines(tree),
		Example: `  kubetab config view
  kubetab config view --minify -o yaml
  kubetab config get-contexts --kubeconfig ./dev.yaml`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runRoot(cmd, opts, args)
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return tree.Complete(args), cobra.ShellCompDirectiveNoFileComp
		},
	}

	// Define persistent flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "settings file (default is $HOME/.kubetab.yaml)")
	flags.StringVarP(&opts.namespace, args.OptionNamespace, "n", "", "namespace for the request")
	flags.StringVar(&opts.kubeconfig, args.OptionKubeconfig, "", "path to kubeconfig file (default is $KUBECONFIG or $HOME/.kube/config)")
	flags.StringVarP(&opts.output, "output", "o", "", "output format (table, json, yaml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output with debug logging")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&opts.noHeaders, "no-headers", false, "omit table headers")
	flags.BoolVar(&opts.strict, "strict", false, "reject namespaces that are not valid DNS-1123 labels")
	flags.BoolVar(&opts.minify, "minify", false, "reduce config view to the current context")

	rootCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(output.FormatTable), string(output.FormatJSON), string(output.FormatYAML)}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd(opts))
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// initConfig loads the settings file, merges flags over it and sets up logging
func initConfig(cmd *cobra.Command, opts *rootOptions) error {
	manager := config.NewManager(opts.configFile)
	settings, err := manager.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		settings.Output = opts.output
	}
	if flags.Changed("no-color") {
		settings.NoColor = opts.noColor
	}
	if flags.Changed("no-headers") {
		settings.NoHeaders = opts.noHeaders
	}
	if flags.Changed("strict") {
		settings.StrictNamespace = opts.strict
	}
	opts.settings = settings

	// Setup structured logging
	setupLogging(cmd.ErrOrStderr(), opts.verbose, settings.NoColor)
	if manager.ConfigFileUsed() != "" {
		slog.Debug("loaded settings", "file", manager.ConfigFileUsed())
	}

	return nil
}

// setupLogging configures structured logging with slog
func setupLogging(w io.Writer, verbose, noColor bool) {
	// Set log level based on verbose flag
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if noColor {
		// Use JSON handler for no-color mode
		handler = slog.NewJSONHandler(w, opts)
	} else {
		// Use text handler for colored output
		handler = slog.NewTextHandler(w, opts)
	}

	// Set default logger
	slog.SetDefault(slog.New(handler))

	if verbose {
		slog.Debug("verbose logging enabled")
	}
}

// runRoot dispatches the positional arguments through the command tree
func runRoot(cmd *cobra.Command, opts *rootOptions, positional []string) error {
	format, err := output.ParseFormat(opts.settings.Output)
	if err != nil {
		return err
	}

	k := kubectl.New(slog.Default())
	call := callInfo(cmd.Flags(), positional)

	res, ok, err := k.Run(cmd.Context(), call, kubectl.Options{
		Args:   args.Options{StrictNamespace: opts.settings.StrictNamespace},
		Minify: opts.minify,
	})
	if err != nil {
		return err
	}
	if !ok {
		printUsage(cmd.ErrOrStderr(), k.Tree(), positional)
		return nil
	}

	return writeResult(cmd.OutOrStdout(), res, output.NewFormatter(format,
		output.WithNoColor(opts.settings.NoColor),
		output.WithNoHeaders(opts.settings.NoHeaders),
	))
}

// callInfo describes the invocation the way the argument resolver expects.
// Only options the user actually set are passed as named values.
func callInfo(flags *pflag.FlagSet, positional []string) args.CallInfo {
	call := args.CallInfo{
		Named:      make(map[string]interface{}),
		Positional: make([]interface{}, len(positional)),
	}

	for _, name := range []string{args.OptionNamespace, args.OptionKubeconfig} {
		if flags.Changed(name) {
			call.Named[name] = flags.Lookup(name).Value.String()
		}
	}
	for i, p := range positional {
		call.Positional[i] = p
	}

	return call
}

func writeResult(w io.Writer, res dispatch.Result, formatter output.Formatter) error {
	if res.List {
		return formatter.FormatList(w, res.Rows)
	}

	for i, r := range res.Rows {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := formatter.Format(w, r); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// printUsage is the fallback for a command path that names no command. A
// group prefix such as "config" lists its subcommands instead.
func printUsage(w io.Writer, tree *dispatch.Tree, tokens []string) {
	path := strings.Join(tokens, " ")

	if node := tree.Lookup(tokens); node != nil && len(node.Children) > 0 {
		fmt.Fprintf(w, "%q requires a subcommand\n\nAvailable subcommands:\n", path)
		for _, child := range node.Children {
			fmt.Fprintf(w, "  %-24s %s\n", path+" "+child.Name, child.Summary)
		}
		return
	}

	fmt.Fprintf(w, "unknown command %q\n", path)

	if suggestions := tree.Suggest(tokens); len(suggestions) > 0 {
		prefix := matchedPrefix(tree, tokens)
		fmt.Fprintln(w, "\nDid you mean this?")
		for _, s := range suggestions {
			fmt.Fprintf(w, "\t%s\n", strings.Join(append(prefix[:len(prefix):len(prefix)], s), " "))
		}
	}

	fmt.Fprintln(w, "\nAvailable commands:")
	fmt.Fprint(w, usageLines(tree))
}

// matchedPrefix returns the longest leading run of tokens that names a node
func matchedPrefix(tree *dispatch.Tree, tokens []string) []string {
	for i := len(tokens); i > 0; i-- {
		if tree.Lookup(tokens[:i]) != nil {
			return tokens[:i]
		}
	}
	return nil
}

// usageLines lists every executable command path with its summary
func usageLines(tree *dispatch.Tree) string {
	var sb strings.Builder
	for _, path := range tree.Paths() {
		summary := ""
		if node := tree.Lookup(path); node != nil {
			summary = node.Summary
		}
		fmt.Fprintf(&sb, "  %-24s %s\n", strings.Join(path, " "), summary)
	}
	return sb.String()
}
