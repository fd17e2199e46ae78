// Package repl implements the interactive command loop of the shell.
// It reads one line at a time, interprets dot-commands locally, and forwards
// everything else verbatim as SQL to the executor. The loop has exactly two
// states: prompting and executing; execution blocks the loop until the
// subprocess finishes, whatever the outcome.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"d1shell/cli/internal/executor"
	"d1shell/cli/internal/logging"
	"d1shell/cli/internal/render"
	"d1shell/cli/internal/session"

	"github.com/pterm/pterm"
)

// REPL drives one interactive shell session.
type REPL struct {
	sess *session.Session
	exec *executor.Executor
	in   io.Reader
	out  io.Writer
}

// New creates a REPL reading lines from in and writing results to out.
func New(sess *session.Session, exec *executor.Executor, in io.Reader, out io.Writer) *REPL {
	return &REPL{sess: sess, exec: exec, in: in, out: out}
}

// Run processes lines until .exit, .quit, or end of input.
// An interrupt prints a hint and restores the prompt instead of quitting.
func (r *REPL) Run() error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer func() {
		signal.Stop(sig)
		close(sig)
	}()
	go func() {
		for range sig {
			fmt.Fprintln(r.out)
			fmt.Fprintln(r.out, pterm.NewStyle(pterm.FgYellow).Sprint("Interrupted. Type .exit or press Ctrl+D to leave the shell."))
			r.prompt()
		}
	}()

	scanner := bufio.NewScanner(r.in)
	r.prompt()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			r.prompt()
			continue
		}
		if strings.HasPrefix(line, ".") {
			if quit := r.dispatch(line); quit {
				return nil
			}
		} else {
			r.execute(line)
		}
		r.prompt()
	}
	// End of input follows the .exit path.
	fmt.Fprintln(r.out)
	return scanner.Err()
}

// dispatch handles a dot-command line; it reports whether the shell should quit.
func (r *REPL) dispatch(line string) bool {
	fields := strings.Fields(line)
	name := strings.ToLower(fields[0])
	switch name {
	case ".exit", ".quit":
		return true
	case ".help":
		r.printHelp()
	case ".tables":
		r.execute(tablesSQL)
	case ".schema":
		table := ""
		if len(fields) > 1 {
			table = fields[1]
		}
		r.execute(schemaSQL(table))
	default:
		fmt.Fprintln(r.out, pterm.NewStyle(pterm.FgYellow).Sprintf("Unknown command %s. Type .help for available commands.", name))
	}
	return false
}

// execute runs one SQL statement and renders the outcome. Every failure is
// reported as a single line; the loop always returns to the prompt.
func (r *REPL) execute(sql string) {
	batches, err := r.exec.Execute(sql)
	if err != nil {
		fmt.Fprintln(r.out, pterm.NewStyle(pterm.FgRed).Sprint("❌ "+logging.PresentError("execution failed", err)))
		return
	}
	render.Batches(r.out, batches)
}

func (r *REPL) prompt() {
	fmt.Fprint(r.out, pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprintf("%s> ", r.sess.Database))
}

func (r *REPL) printHelp() {
	fmt.Fprintln(r.out, "Commands:")
	fmt.Fprintln(r.out, "  .exit, .quit     Leave the shell")
	fmt.Fprintln(r.out, "  .help            Show this message")
	fmt.Fprintln(r.out, "  .tables          List user tables")
	fmt.Fprintln(r.out, "  .schema [name]   Show CREATE TABLE text for one table, or all tables")
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Anything else is executed as a SQL statement against the database.")
}
