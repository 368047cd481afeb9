// File: record.go
// Role: classify and decode one input line into a learn record or an
// estimate-request record, by exact key-set match (§6).

package driver

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/noderank/model"
)

// ErrUnrecognizedRecord is returned when a line's key set matches neither
// the learn nor the estimate-request shape.
var ErrUnrecognizedRecord = errors.New("driver: unrecognized record key set")

// estimateRequest is an estimate-request record: {estimate, id}.
type estimateRequest struct {
	Estimate int `json:"estimate"`
	ID       int `json:"id"`
}

var (
	learnKeys    = map[string]struct{}{"node": {}, "task": {}, "rchar": {}, "target": {}}
	estimateKeys = map[string]struct{}{"estimate": {}, "id": {}}
)

// decodeRecord parses one JSON line and returns either a non-nil *model.Sample
// or a non-nil *estimateRequest, never both. A line whose key set matches
// neither shape yields ErrUnrecognizedRecord; a line that isn't valid JSON
// yields the underlying json error.
func decodeRecord(line []byte) (*model.Sample, *estimateRequest, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(line, &raw); err != nil {
		return nil, nil, err
	}

	switch {
	case keySetEquals(raw, learnKeys):
		var s model.Sample
		if err := json.Unmarshal(line, &s); err != nil {
			return nil, nil, fmt.Errorf("driver: decoding learn record: %w", err)
		}

		return &s, nil, nil

	case keySetEquals(raw, estimateKeys):
		var req estimateRequest
		if err := json.Unmarshal(line, &req); err != nil {
			return nil, nil, fmt.Errorf("driver: decoding estimate-request record: %w", err)
		}

		return nil, &req, nil

	default:
		return nil, nil, ErrUnrecognizedRecord
	}
}

// keySetEquals reports whether raw's key set is exactly want.
func keySetEquals(raw map[string]json.RawMessage, want map[string]struct{}) bool {
	if len(raw) != len(want) {
		return false
	}
	for k := range raw {
		if _, ok := want[k]; !ok {
			return false
		}
	}

	return true
}
