// File: driver.go
// Role: Run is the line-delimited JSON loop (§5, §6): one goroutine, no
// concurrency, reading stdin one line at a time and writing one response
// line per estimate request. Ordering of outputs matches ordering of
// estimate-request inputs exactly, since every call to the engine completes
// before the next line is read.

package driver

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/noderank/rank"
)

// Options configures a Run invocation.
type Options struct {
	// AuditPath, when non-empty, enables the opt-in audit trail (§6).
	AuditPath string

	// Logger receives diagnostics for malformed input and degenerate
	// records (§7 "transient input error"). The zero value discards
	// everything.
	Logger zerolog.Logger
}

// Run reads newline-delimited JSON records from in, dispatches each to
// engine, and writes one response line to out per estimate-request record.
// It returns nil on clean EOF and a non-nil error only when the audit trail
// cannot be opened or for a fatal failure on the input or output stream
// (§7 "Fatal").
func Run(engine *rank.Engine, in io.Reader, out io.Writer, opts Options) error {
	audit, err := newAuditTrail(opts.AuditPath)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	writer := bufio.NewWriter(out)
	defer writer.Flush()

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		if err := audit.append(line + "\n"); err != nil {
			opts.Logger.Warn().Err(err).Msg("audit trail write failed")
		}

		if err := dispatch(engine, line, writer, opts.Logger); err != nil {
			opts.Logger.Warn().Err(err).Str("line", line).Msg("failed to process input line")
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("driver: reading input: %w", err)
	}

	return writer.Flush()
}

// dispatch classifies one decoded line and routes it to the engine.
// Malformed or unrecognized lines are reported via the logger and
// otherwise ignored, per §7's transient-input-error policy.
func dispatch(engine *rank.Engine, line string, out *bufio.Writer, log zerolog.Logger) error {
	sample, req, err := decodeRecord([]byte(line))
	if err != nil {
		log.Debug().Err(err).Str("line", line).Msg("DEBUG: invalid input message")

		return nil
	}

	switch {
	case sample != nil:
		return engine.Learn(*sample)

	case req != nil:
		scores, ready := engine.Ranking()
		if engine.NodeCount() < req.Estimate {
			ready = false
		}
		response := formatResponse(req.ID, scores, ready)
		_, werr := fmt.Fprintln(out, response)

		return werr

	default:
		return nil
	}
}
