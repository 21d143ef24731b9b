package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

type payload struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Tags  []string `json:"tags"`
}

// Both implementations must satisfy the same contract, so every case
// runs against each.
func eachStore(t *testing.T, run func(t *testing.T, kv KV)) {
	t.Run("memory", func(t *testing.T) {
		run(t, NewMemoryStore())
	})
	t.Run("bolt", func(t *testing.T) {
		s, err := OpenBolt(filepath.Join(t.TempDir(), "test.db"), zaptest.NewLogger(t))
		if err != nil {
			t.Fatalf("OpenBolt: %v", err)
		}
		defer s.Close()
		run(t, s)
	})
}

func TestRoundTrip(t *testing.T) {
	eachStore(t, func(t *testing.T, kv KV) {
		in := payload{Name: "NPK 15-15-15", Count: 50, Tags: []string{"a", "b"}}
		kv.Set("k", in)

		out := payload{}
		assert.True(t, kv.Get("k", &out))
		assert.Equal(t, in, out)
	})
}

func TestGetMissingKeyKeepsDefault(t *testing.T) {
	eachStore(t, func(t *testing.T, kv KV) {
		out := payload{Name: "default"}
		assert.False(t, kv.Get("missing", &out))
		assert.Equal(t, "default", out.Name)
	})
}

func TestGetUndecodableValueKeepsDefault(t *testing.T) {
	eachStore(t, func(t *testing.T, kv KV) {
		// A value of the wrong shape must not clobber the caller's default.
		kv.Set("k", "just a string")

		out := payload{Name: "default", Count: 7}
		assert.False(t, kv.Get("k", &out))
		assert.Equal(t, payload{Name: "default", Count: 7}, out)
	})
}

func TestGetPartiallyDecodableValueKeepsDefault(t *testing.T) {
	eachStore(t, func(t *testing.T, kv KV) {
		// A value that decodes field by field until one mismatched type
		// must not leak the fields that did decode into the default.
		kv.Set("k", map[string]interface{}{
			"name":  "corrupt",
			"count": "not a number",
		})

		out := payload{Name: "default", Count: 7}
		assert.False(t, kv.Get("k", &out))
		assert.Equal(t, payload{Name: "default", Count: 7}, out)
	})
}

func TestRemoveIsIdempotent(t *testing.T) {
	eachStore(t, func(t *testing.T, kv KV) {
		kv.Set("k", payload{Name: "x"})
		kv.Remove("k")
		kv.Remove("k")

		out := payload{}
		assert.False(t, kv.Get("k", &out))
	})
}

func TestSetOverwrites(t *testing.T) {
	eachStore(t, func(t *testing.T, kv KV) {
		kv.Set("k", payload{Name: "first"})
		kv.Set("k", payload{Name: "second"})

		out := payload{}
		assert.True(t, kv.Get("k", &out))
		assert.Equal(t, "second", out.Name)
	})
}

func TestBoltSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	logger := zaptest.NewLogger(t)

	s, err := OpenBolt(path, logger)
	if err != nil {
		t.Fatalf("OpenBolt: %v", err)
	}
	s.Set("k", payload{Name: "durable", Count: 3})
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = OpenBolt(path, logger)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	out := payload{}
	assert.True(t, s.Get("k", &out))
	assert.Equal(t, "durable", out.Name)
	assert.Equal(t, 3, out.Count)
}
