// Package cmd provides the command-line interface for the d1shell application.
// It parses startup arguments with the Cobra CLI framework, builds the
// immutable session configuration, and hands control to the interactive
// command loop.
package cmd

import (
	"fmt"
	"os"

	"d1shell/cli/internal/config"
	xerrors "d1shell/cli/internal/errors"
	"d1shell/cli/internal/executor"
	"d1shell/cli/internal/launcher"
	"d1shell/cli/internal/repl"
	"d1shell/cli/internal/session"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	localFlag   bool
	remoteFlag  bool
	showVersion bool
)

// rootCmd is the whole CLI: d1shell takes a database name and starts the shell.
var rootCmd = &cobra.Command{
	Use:   "d1shell <database>",
	Short: "Interactive SQL shell for Cloudflare D1 databases",
	Long: `d1shell starts an interactive SQL shell against a Cloudflare D1 database.
Statements are executed through the wrangler CLI; d1shell picks the right
package-manager launcher for wrangler based on the project's lockfile.

Inside the shell, type .help for the available dot-commands. Everything
else is forwarded verbatim as SQL.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("d1shell %s\n", Version)
			return nil
		}
		if len(args) < 1 {
			return xerrors.New(xerrors.InvalidArgs, "database name is required")
		}
		if len(args) > 1 {
			return xerrors.New(xerrors.InvalidArgs, "expected exactly one database name")
		}

		cfg, err := config.LoadOrDefault()
		if err != nil {
			pterm.Println(pterm.NewStyle(pterm.FgYellow).Sprint("⚠️  Ignoring unreadable " + config.FileName))
			cfg = config.Config{}
		}
		local, remote := localFlag, remoteFlag
		if !local && !remote {
			switch cfg.Locality {
			case "local":
				local = true
			case "remote":
				remote = true
			}
		}

		sess, err := session.New(args[0], local, remote)
		if err != nil {
			return err
		}

		command := cfg.Wrangler
		if len(command) == 0 {
			command = launcher.Command()
		}
		exec := executor.New(sess, command, cfg.Debug)

		target := "default"
		if flag := sess.Locality.Flag(); flag != "" {
			target = flag[2:]
		}
		pterm.Println()
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Database: ") + pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint(sess.Database))
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Target:   ") + pterm.NewStyle(pterm.FgLightBlue).Sprint(target))
		pterm.Println(pterm.NewStyle(pterm.FgGray).Sprint("Type .help for commands, .exit to leave."))
		pterm.Println()

		return repl.New(sess, exec, os.Stdin, os.Stdout).Run()
	},
}

// Execute runs the CLI application.
// Startup errors are printed to stderr and terminate with exit code 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&localFlag, "local", "l", false, "Execute against the local development database")
	rootCmd.Flags().BoolVarP(&remoteFlag, "remote", "r", false, "Execute against the deployed remote database")
	rootCmd.MarkFlagsMutuallyExclusive("local", "remote")
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
}
