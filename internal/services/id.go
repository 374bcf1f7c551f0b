package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newRecordID builds a namespaced record id: prefix, creation timestamp in
// unix millis, and a short random suffix. Ids are unique per entity and
// immutable once assigned.
func newRecordID(prefix string, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s_%d_%s", prefix, now.UnixMilli(), suffix)
}
