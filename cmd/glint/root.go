package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/grindlemire/glint"
)

var (
	// Root command flags
	logPath string

	rootCmd = &cobra.Command{
		Use:               "glint",
		Short:             "Demo applications for the glint terminal UI runtime",
		Run:               runRoot,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "write diagnostics to this file")

	rootCmd.AddCommand(counterCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(mouseCmd)
}

func runRoot(cmd *cobra.Command, args []string) {
	cmd.Help()
}

// runApp runs a demo application with the options shared by every
// subcommand. It refuses to start when stdout is not a terminal, since
// the runtime takes over the screen.
func runApp[A any](app glint.Application[A]) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	var opts []glint.Option
	if logPath != "" {
		logger, err := glint.NewLogger(logPath)
		if err != nil {
			return err
		}
		defer logger.Close()
		opts = append(opts, glint.WithLogger(logger))
	}

	return glint.Run(app, opts...)
}
