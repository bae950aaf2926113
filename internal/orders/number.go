package orders

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// Order numbers look like ORD-20260209-ABCD: the server-local calendar date
// plus four random uppercase alphanumerics. Collisions are possible within a
// day and are caught by the unique index on orders.order_number; the creation
// service regenerates and retries.
const orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const orderNumberSuffixLen = 4

// NewOrderNumber generates a public order number for the given moment.
func NewOrderNumber(now time.Time) (string, error) {
	suffix := make([]byte, orderNumberSuffixLen)
	max := big.NewInt(int64(len(orderNumberAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generating order number suffix: %w", err)
		}
		suffix[i] = orderNumberAlphabet[n.Int64()]
	}
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix), nil
}
