// Package executor builds and runs wrangler d1 execute invocations.
// Each submitted statement becomes one synchronous subprocess call: stdout is
// captured and parsed as JSON, stderr and stdin are inherited so wrangler's
// own progress output and prompts reach the user directly.
package executor

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	xerrors "d1shell/cli/internal/errors"
	"d1shell/cli/internal/logging"
	"d1shell/cli/internal/session"

	"atomicgo.dev/cursor"
)

// debugEnv echoes the exact command line before execution when set.
const debugEnv = "D1SHELL_DEBUG"

// Runner executes a command and returns its captured stdout.
// It is a seam so tests can simulate wrangler output without spawning.
type Runner func(name string, args ...string) ([]byte, error)

// Batch is one entry of wrangler's JSON response array, corresponding to
// one executed statement. Results and Meta stay raw so the rendered dump
// preserves field order and nesting exactly as returned.
type Batch struct {
	Success bool            `json:"success"`
	Results json.RawMessage `json:"results"`
	Meta    json.RawMessage `json:"meta"`
}

// Rows splits the batch's result set into individual row documents.
// Malformed or absent results yield an empty slice.
func (b Batch) Rows() []json.RawMessage {
	if len(b.Results) == 0 {
		return nil
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(b.Results, &rows); err != nil {
		return nil
	}
	return rows
}

// HasMeta reports whether the batch carries any metadata worth showing.
func (b Batch) HasMeta() bool {
	if len(b.Meta) == 0 {
		return false
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b.Meta, &m); err != nil {
		return false
	}
	return len(m) > 0
}

// Executor runs SQL statements for one session through the wrangler CLI.
type Executor struct {
	// Run executes the subprocess; replaced in tests.
	Run Runner

	sess    *session.Session
	command []string
	debug   bool
}

// New creates an Executor for the session. command is the argv head that
// launches wrangler (launcher selection or config override); debug echoes
// each command line before execution.
func New(sess *session.Session, command []string, debug bool) *Executor {
	return &Executor{
		Run:     runSubprocess,
		sess:    sess,
		command: command,
		debug:   debug || os.Getenv(debugEnv) != "",
	}
}

// Argv returns the full invocation for one SQL statement.
func (e *Executor) Argv(sql string) []string {
	argv := append([]string(nil), e.command...)
	argv = append(argv, "d1", "execute", e.sess.Database)
	if flag := e.sess.Locality.Flag(); flag != "" {
		argv = append(argv, flag)
	}
	return append(argv, "--json", "--command", sql)
}

// Execute runs one SQL statement and returns the parsed result batches.
// Spawn failures, nonzero exits, and non-JSON output all come back as
// typed errors; the caller reports them and keeps the shell running.
func (e *Executor) Execute(sql string) ([]Batch, error) {
	argv := e.Argv(sql)
	if e.debug {
		fmt.Fprintln(os.Stderr, logging.Mask("> "+strings.Join(argv, " ")))
	}

	cursor.Hide()
	out, err := e.Run(argv[0], argv[1:]...)
	cursor.Show()
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return nil, xerrors.Wrap(xerrors.ToolFailed, "wrangler exited with an error", err)
		}
		return nil, xerrors.Wrap(xerrors.SpawnFailed, "could not start wrangler", err)
	}

	var batches []Batch
	if err := json.Unmarshal(out, &batches); err != nil {
		return nil, xerrors.Wrap(xerrors.BadResponse, "wrangler returned unexpected output", err)
	}
	return batches, nil
}

// runSubprocess is the production Runner. Stdout is captured for parsing;
// stderr and stdin are inherited from the shell process.
func runSubprocess(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stderr = os.Stderr
	return cmd.Output()
}
