// Package session holds the immutable per-process shell configuration.
// A Session is constructed once from startup arguments and passed by
// reference into the command loop and the executor; there is no other
// process-wide state.
package session

import (
	xerrors "d1shell/cli/internal/errors"
)

// Locality selects whether wrangler targets a local or remote D1 instance.
type Locality int

const (
	// LocalityDefault lets wrangler pick its own default target.
	LocalityDefault Locality = iota
	// LocalityLocal targets the local development database.
	LocalityLocal
	// LocalityRemote targets the deployed remote database.
	LocalityRemote
)

// Flag returns the wrangler command-line flag for the locality,
// or an empty string for the default target.
func (l Locality) Flag() string {
	switch l {
	case LocalityLocal:
		return "--local"
	case LocalityRemote:
		return "--remote"
	default:
		return ""
	}
}

// Session is the read-only configuration for one shell run.
type Session struct {
	Database string
	Locality Locality
}

// New builds a Session from startup arguments.
// An empty database name or both locality flags at once are startup
// errors and abort before the shell starts.
func New(database string, local, remote bool) (*Session, error) {
	if database == "" {
		return nil, xerrors.New(xerrors.InvalidArgs, "database name is required")
	}
	if local && remote {
		return nil, xerrors.New(xerrors.InvalidArgs, "--local and --remote are mutually exclusive")
	}
	loc := LocalityDefault
	switch {
	case local:
		loc = LocalityLocal
	case remote:
		loc = LocalityRemote
	}
	return &Session{Database: database, Locality: loc}, nil
}
