// File: audit.go
// Role: auditTrail is the optional, opt-in append-only log of raw input
// lines (§6 "Persistent state"). Grounded on
// original_source/external/node_estimator.py's main_loop, which
// unconditionally truncates then appends every input line to a fixed path;
// here it is off by default and tagged with a run ID so separate runs
// against the same path are distinguishable.

package driver

import (
	"fmt"
	"os"

	"github.com/google/uuid"
)

// auditTrail appends raw input lines to a file, re-opening it in append
// mode on every write (§5: "opened in append mode per write; partial writes
// are tolerated"). A nil *auditTrail is a valid no-op.
type auditTrail struct {
	path string
}

// newAuditTrail creates path if needed and appends a run-ID header, keeping
// the lines of earlier runs. An empty path disables the audit trail entirely.
func newAuditTrail(path string) (*auditTrail, error) {
	if path == "" {
		return nil, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("driver: opening audit trail %q: %w", path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "# run %s\n", uuid.NewString()); err != nil {
		return nil, fmt.Errorf("driver: writing audit trail header: %w", err)
	}

	return &auditTrail{path: path}, nil
}

// append writes line (expected to already end in a newline) to the audit
// file. A partial write is tolerated: the error is returned for the caller
// to log, not to abort the driver loop.
func (a *auditTrail) append(line string) error {
	if a == nil {
		return nil
	}

	f, err := os.OpenFile(a.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("driver: reopening audit trail %q: %w", a.path, err)
	}
	defer f.Close()

	_, err = f.WriteString(line)

	return err
}
