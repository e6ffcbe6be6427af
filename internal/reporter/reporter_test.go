package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aleister1102/recapurl/internal/config"
	"github.com/aleister1102/recapurl/internal/recap"
)

func parse(t *testing.T, rawURL string) *recap.Report {
	t.Helper()
	report, err := recap.Parse(rawURL)
	require.NoError(t, err)
	return report
}

func TestNewReporter(t *testing.T) {
	_, err := NewReporter(config.NewDefaultReporterConfig())
	assert.NoError(t, err)

	_, err = NewReporter(config.ReporterConfig{Format: "YAML"})
	assert.NoError(t, err)

	_, err = NewReporter(config.ReporterConfig{Format: "xml"})
	assert.Error(t, err)

	_, err = NewReporter(config.ReporterConfig{Indent: -1})
	assert.Error(t, err)
}

func TestWriteReport_JSON(t *testing.T) {
	r, err := NewReporter(config.NewDefaultReporterConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.WriteReport(&buf, parse(t, "https://teams.microsoft.com/recap?driveId=abc&driveItemId=xyz&threadId=%E4%BC%9A%E8%AE%AE&x=<a>")))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "{\n  \"sourceUrl\""))
	assert.Contains(t, out, `"driveItem": "/v1.0/drives/abc/items/xyz"`)
	assert.Contains(t, out, `"threadId": "会议"`)
	assert.Contains(t, out, `"fileUrl": null`)
	assert.Contains(t, out, `x=<a>`)
	assert.Contains(t, out, `"warnings": []`)

	last := -1
	for _, key := range []string{`"sourceUrl"`, `"urlMeta"`, `"scheme"`, `"host"`, `"path"`, `"identifiers"`, `"graphHints"`, `"warnings"`} {
		idx := strings.Index(out, key)
		assert.Greater(t, idx, last, key)
		last = idx
	}

	var decoded recap.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "abc", *decoded.Identifiers.DriveID)
}

func TestWriteReport_CompactJSON(t *testing.T) {
	r, err := NewReporter(config.ReporterConfig{Format: FormatJSON, Indent: 0})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.WriteReport(&buf, parse(t, "https://evil.example.com/recap")))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), `"graphHints":{}`)
}

func TestWriteReport_YAML(t *testing.T) {
	r, err := NewReporter(config.ReporterConfig{Format: FormatYAML, Indent: 2})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.WriteReport(&buf, parse(t, "https://evil.example.com/recap?organizerId=u1")))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "sourceUrl: "))
	assert.Contains(t, out, "driveId: null")
	assert.Contains(t, out, "onlineMeetingsRoot: /v1.0/users/u1/onlineMeetings")
	assert.Contains(t, out, "- URL host is not teams.microsoft.com")

	var generic map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &generic))
	assert.Len(t, generic["warnings"], 3)
}

func TestWriteBatch(t *testing.T) {
	r, err := NewReporter(config.NewDefaultReporterConfig())
	require.NoError(t, err)

	entries := []BatchEntry{
		{Line: 1, SourceURL: "https://evil.example.com/recap", Report: parse(t, "https://evil.example.com/recap")},
		{Line: 3, SourceURL: "bad", Error: "could not derive graph hints"},
	}

	var buf bytes.Buffer
	require.NoError(t, r.WriteBatch(&buf, entries))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Contains(t, decoded[0], "report")
	assert.NotContains(t, decoded[0], "error")
	assert.NotContains(t, decoded[1], "report")
	assert.Equal(t, "could not derive graph hints", decoded[1]["error"])
}

func TestWriteBatch_Empty(t *testing.T) {
	r, err := NewReporter(config.NewDefaultReporterConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.WriteBatch(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}
