package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var payload struct {
		TTL Duration `json:"ttl"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"ttl":"1h"}`), &payload))
	assert.Equal(t, time.Hour, payload.TTL.Duration)

	require.NoError(t, json.Unmarshal([]byte(`{"ttl":60000000000}`), &payload))
	assert.Equal(t, time.Minute, payload.TTL.Duration)

	assert.Error(t, json.Unmarshal([]byte(`{"ttl":"bogus"}`), &payload))
	assert.Error(t, json.Unmarshal([]byte(`{"ttl":true}`), &payload))
}

func TestDuration_MarshalJSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(Duration{90 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
