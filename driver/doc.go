// Package driver implements the line-delimited JSON protocol loop (§6): it
// reads one JSON record per line from stdin, classifies it as a learn
// record or an estimate-request record by exact key-set match, dispatches
// it to a rank.Engine, and writes a semicolon-separated response line for
// every estimate request.
//
// Grounded on original_source/external/node_estimator.py's main_loop: same
// key-set classification, same unconditional per-line audit-trail append
// (made opt-in here via Options.AuditPath), same "NOT READY" sentinel
// response. Diagnostic logging uses zerolog, in place of the original's
// plain stderr prints, to match this module's ambient logging stack.
package driver
