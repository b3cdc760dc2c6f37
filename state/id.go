package state

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID produces an opaque activity ID: a base36 millisecond timestamp
// followed by a random suffix. The time prefix makes IDs sort in creation
// order, which restore relies on to rebuild display order; the random
// suffix makes collisions within one process astronomically unlikely.
func NewID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
	return ts + suffix
}
