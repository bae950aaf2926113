package orders

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderNumberPattern = regexp.MustCompile(`^ORD-\d{8}-[A-Z0-9]{4}$`)

func TestNewOrderNumberFormat(t *testing.T) {
	now := time.Date(2026, 2, 9, 14, 30, 0, 0, time.Local)
	number, err := NewOrderNumber(now)
	require.NoError(t, err)

	assert.Regexp(t, orderNumberPattern, number)
	assert.True(t, strings.HasPrefix(number, "ORD-20260209-"))
}

func TestNewOrderNumberDistribution(t *testing.T) {
	now := time.Now()
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		number, err := NewOrderNumber(now)
		require.NoError(t, err)
		require.Regexp(t, orderNumberPattern, number)
		seen[number] = struct{}{}
	}
	// 36^4 suffixes: a handful of birthday collisions is possible, near-total
	// overlap is not.
	assert.Greater(t, len(seen), 990)
}
