package executor

import (
	"errors"
	"os/exec"
	"reflect"
	"testing"

	xerrors "d1shell/cli/internal/errors"
	"d1shell/cli/internal/session"
)

func newTestExecutor(t *testing.T, local, remote bool, run Runner) *Executor {
	t.Helper()
	sess, err := session.New("staging-db", local, remote)
	if err != nil {
		t.Fatal(err)
	}
	e := New(sess, []string{"npx", "wrangler"}, false)
	if run != nil {
		e.Run = run
	}
	return e
}

func TestArgv(t *testing.T) {
	tests := []struct {
		name   string
		local  bool
		remote bool
		want   []string
	}{
		{
			name: "default locality",
			want: []string{"npx", "wrangler", "d1", "execute", "staging-db", "--json", "--command", "SELECT 1;"},
		},
		{
			name:  "local",
			local: true,
			want:  []string{"npx", "wrangler", "d1", "execute", "staging-db", "--local", "--json", "--command", "SELECT 1;"},
		},
		{
			name:   "remote",
			remote: true,
			want:   []string{"npx", "wrangler", "d1", "execute", "staging-db", "--remote", "--json", "--command", "SELECT 1;"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestExecutor(t, tt.local, tt.remote, nil)
			got := e.Argv("SELECT 1;")
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Argv() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExecuteParsesBatches(t *testing.T) {
	e := newTestExecutor(t, false, false, func(name string, args ...string) ([]byte, error) {
		return []byte(`[{"success":true,"results":[{"id":1}],"meta":{}}]`), nil
	})

	batches, err := e.Execute("SELECT * FROM users;")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if len(batches) != 1 {
		t.Fatalf("Execute() returned %d batches, want 1", len(batches))
	}
	b := batches[0]
	if !b.Success {
		t.Error("Success = false, want true")
	}
	rows := b.Rows()
	if len(rows) != 1 {
		t.Fatalf("Rows() returned %d rows, want 1", len(rows))
	}
	if string(rows[0]) != `{"id":1}` {
		t.Errorf("row = %s, want {\"id\":1}", rows[0])
	}
	if b.HasMeta() {
		t.Error("HasMeta() = true for empty meta, want false")
	}
}

func TestExecuteFailedBatch(t *testing.T) {
	e := newTestExecutor(t, false, false, func(name string, args ...string) ([]byte, error) {
		return []byte(`[{"success":false,"results":[],"meta":{"error":"no such table"}}]`), nil
	})

	batches, err := e.Execute("SELECT * FROM missing;")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	b := batches[0]
	if b.Success {
		t.Error("Success = true, want false")
	}
	if len(b.Rows()) != 0 {
		t.Errorf("Rows() = %v, want empty", b.Rows())
	}
	if !b.HasMeta() {
		t.Error("HasMeta() = false, want true")
	}
}

func TestExecuteErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		run  Runner
		want xerrors.Kind
	}{
		{
			name: "nonzero exit",
			run: func(name string, args ...string) ([]byte, error) {
				return nil, &exec.ExitError{}
			},
			want: xerrors.ToolFailed,
		},
		{
			name: "spawn failure",
			run: func(name string, args ...string) ([]byte, error) {
				return nil, errors.New("executable file not found in $PATH")
			},
			want: xerrors.SpawnFailed,
		},
		{
			name: "non-json output",
			run: func(name string, args ...string) ([]byte, error) {
				return []byte("wrangler requires a newer node version"), nil
			},
			want: xerrors.BadResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestExecutor(t, false, false, tt.run)
			_, err := e.Execute("SELECT 1;")
			if err == nil {
				t.Fatal("Execute() expected error, got nil")
			}
			e2, ok := err.(*xerrors.E)
			if !ok {
				t.Fatalf("Execute() error type = %T, want *errors.E", err)
			}
			if e2.Kind != tt.want {
				t.Errorf("error kind = %v, want %v", e2.Kind, tt.want)
			}
		})
	}
}
