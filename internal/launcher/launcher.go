// Package launcher picks how to invoke the wrangler binary.
// When the shell already runs under a package-manager script the binary is
// on PATH and is invoked directly. Otherwise the package manager in use is
// inferred from the nearest lockfile, walking up from the working directory,
// and the matching runner is used to launch wrangler without a global install.
package launcher

import (
	"os"
	"path/filepath"
)

// userAgentEnv is set by npm-compatible package managers when they run a script.
const userAgentEnv = "npm_config_user_agent"

// probe maps a lockfile marker to the command head that launches wrangler.
// Order matters: more specific package managers are checked first.
type probe struct {
	marker  string
	command []string
}

var probes = []probe{
	{"pnpm-lock.yaml", []string{"pnpm", "exec", "wrangler"}},
	{"yarn.lock", []string{"yarn", "wrangler"}},
	{"bun.lockb", []string{"bunx", "wrangler"}},
	{"package-lock.json", []string{"npx", "wrangler"}},
	{"deno.lock", []string{"deno", "run", "-A", "npm:wrangler"}},
}

// fallback launches wrangler without any project install.
var fallback = []string{"npx", "wrangler"}

// Command returns the argv head used to invoke wrangler, starting the
// lockfile search from the current working directory.
func Command() []string {
	wd, err := os.Getwd()
	if err != nil {
		return append([]string(nil), fallback...)
	}
	return CommandFrom(wd)
}

// CommandFrom returns the argv head used to invoke wrangler, starting the
// lockfile search from dir. If the process already runs under a package
// manager, wrangler is on PATH and is invoked directly.
func CommandFrom(dir string) []string {
	if os.Getenv(userAgentEnv) != "" {
		return []string{"wrangler"}
	}
	for d := dir; ; d = filepath.Dir(d) {
		for _, p := range probes {
			if fileExists(filepath.Join(d, p.marker)) {
				return append([]string(nil), p.command...)
			}
		}
		if filepath.Dir(d) == d {
			break
		}
	}
	return append([]string(nil), fallback...)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
