package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewNumber generates the human-readable order number shown to staff and
// customers, e.g. "ORD-20260828-9F3A1C". Uniqueness is backed by the unique
// index on the orders table; the random suffix makes collisions within a day
// vanishingly unlikely.
func NewNumber(now time.Time) string {
	raw := uuid.New()
	suffix := strings.ToUpper(fmt.Sprintf("%x", raw[:3]))
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}
