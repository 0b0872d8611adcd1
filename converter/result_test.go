package converter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultJSONSerialization(t *testing.T) {
	in := Result{
		Markdown: "hello\n",
		Warnings: []Warning{
			{Type: WarningFetchFailed, Subject: "https://example.com/a.png", Message: "fetch returned status 404"},
		},
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Result
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestResultOmitsEmptyWarnings(t *testing.T) {
	data, err := json.Marshal(Result{Markdown: "x"})
	require.NoError(t, err)

	assert.Equal(t, `{"markdown":"x"}`, string(data))
}
