package idtheory_test

import (
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theory-cloud/idtheory"
	"github.com/theory-cloud/idtheory/testkit"
)

var objectIDShape = regexp.MustCompile(`^[0-9a-f]{24}$`)

func TestNewObjectIDFieldLayout(t *testing.T) {
	g := idtheory.New(
		idtheory.WithClock(testkit.FixedClock{Instant: time.Unix(0x65a1b2c3, 0)}),
		idtheory.WithMachineID(0xabcdef),
		idtheory.WithProcessID(0x1234),
		idtheory.WithCounterSeed(41),
	)

	// Counter increments on every call, including the first.
	assert.Equal(t, strings.Join([]string{"65a1b2c3", "abcdef", "1234", "00002a"}, ""), g.NewObjectID())
	assert.Equal(t, "65a1b2c3abcdef123400002b", g.NewObjectID())
}

func TestNewObjectIDCounterWraps(t *testing.T) {
	g := idtheory.New(
		idtheory.WithClock(testkit.FixedClock{Instant: time.Unix(0x00000001, 0)}),
		idtheory.WithMachineID(0),
		idtheory.WithProcessID(0),
		idtheory.WithCounterSeed(0xffffff),
	)
	assert.Equal(t, "00000001000000"+"0000"+"000000", g.NewObjectID())
	assert.Equal(t, "00000001000000"+"0000"+"000001", g.NewObjectID())
}

func TestNewObjectIDTimestampWraps(t *testing.T) {
	past32Bits := time.Unix(0x1_0000_0001, 0)
	g := idtheory.New(
		idtheory.WithClock(testkit.FixedClock{Instant: past32Bits}),
		idtheory.WithMachineID(0xcccccc),
		idtheory.WithProcessID(0xdddd),
		idtheory.WithCounterSeed(0),
	)
	assert.Equal(t, "00000001"+"cccccc"+"dddd"+"000001", g.NewObjectID())
}

func TestNewObjectIDDistinctAcrossCalls(t *testing.T) {
	g := idtheory.New()
	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		id := g.NewObjectID()
		require.Regexp(t, objectIDShape, id)
		_, dup := seen[id]
		require.False(t, dup, "duplicate object id %s", id)
		seen[id] = struct{}{}
	}
}

func TestNewObjectIDDistinctUnderConcurrency(t *testing.T) {
	const workers, perWorker = 8, 512

	g := idtheory.New()
	ids := make(chan string, workers*perWorker)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				ids <- g.NewObjectID()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{}, workers*perWorker)
	for id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "duplicate object id %s", id)
		seen[id] = struct{}{}
	}
	require.Len(t, seen, workers*perWorker)
}

func TestNewPrefixedID(t *testing.T) {
	g := idtheory.New()

	shape := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{24}$`)

	tests := []struct {
		namespace string
		prefix    string
	}{
		{"users", "1483a5e9"},
		{"payments", "65d29b32"},
		{"tenant-42", "4a5b4acc"},
		{"", "00000000"},
	}
	for _, tt := range tests {
		id := g.NewPrefixedID(tt.namespace)
		require.Regexp(t, shape, id, "namespace %q", tt.namespace)
		assert.Equal(t, tt.prefix, id[:8], "namespace %q", tt.namespace)
	}

	// Deterministic prefix, fresh suffix.
	first := g.NewPrefixedID("users")
	second := g.NewPrefixedID("users")
	assert.Equal(t, first[:9], second[:9])
	assert.NotEqual(t, first, second)
}
