// Package ids generates prefixed opaque entity ids (art_, sub_, trk_, don_).
package ids

import (
	"strings"

	"github.com/google/uuid"
)

// New returns prefix + n hex chars of a fresh UUID. The prefix makes ids
// self-describing in logs and callback payloads.
func New(prefix string, n int) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > len(hex) {
		n = len(hex)
	}
	return prefix + hex[:n]
}
