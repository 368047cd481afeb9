// File: response.go
// Role: formatResponse renders a ranking (or its absence) as the
// semicolon-separated estimate-response line (§6).

package driver

import (
	"sort"
	"strconv"
	"strings"
)

const notReady = "NOT READY"

// formatResponse renders "<id>;node1=score1;..." or "<id>;NOT READY".
// Nodes are emitted in lexicographic order for a deterministic line.
func formatResponse(id int, scores map[string]float64, ready bool) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(id))

	if !ready {
		b.WriteByte(';')
		b.WriteString(notReady)

		return b.String()
	}

	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		b.WriteByte(';')
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(scores[name], 'g', -1, 64))
	}

	return b.String()
}
