package timeline

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/chatflow/internal/preview"
	"github.com/san-kum/chatflow/internal/reveal"
)

func TestRecord_HiScenario(t *testing.T) {
	rec, err := Record("Hi", preview.Options{Interval: 10 * time.Millisecond}, 0)
	require.NoError(t, err)

	var got []string
	for _, f := range rec.Frames {
		got = append(got, f.PhaseName+"@"+ms(f.At)+":"+f.Displayed)
	}
	assert.Equal(t, []string{"typing@0:", "streaming@0:", "streaming@10:H", "done@20:Hi"}, got)
}

func TestRecord_PhaseBoundaries(t *testing.T) {
	script := strings.Repeat("token ", 20)
	opts := preview.DefaultOptions()
	rec, err := Record(script, opts, 0)
	require.NoError(t, err)

	streaming, ok := rec.PhaseStart(preview.Streaming)
	require.True(t, ok)
	assert.Equal(t, opts.TypingDelay, streaming)

	done, ok := rec.PhaseStart(preview.Done)
	require.True(t, ok)
	assert.Equal(t, opts.TypingDelay+time.Duration(len(script))*opts.Interval, done)

	last := preview.Typing
	for _, f := range rec.Frames {
		require.GreaterOrEqual(t, f.Phase, last)
		last = f.Phase
	}
	final := rec.Final()
	assert.True(t, final.Done)
	assert.Equal(t, script, final.Displayed)
}

func TestRecord_InvalidOptions(t *testing.T) {
	_, err := Record("x", preview.Options{}, 0)
	assert.ErrorIs(t, err, reveal.ErrInvalidInterval)
}

func TestExport_Formats(t *testing.T) {
	rec, err := Record("a\nb", preview.Options{TypingDelay: 5 * time.Millisecond, Interval: time.Millisecond}, 0)
	require.NoError(t, err)

	var table bytes.Buffer
	require.NoError(t, Export(&table, rec, "table"))
	assert.Contains(t, table.String(), "PHASE")
	assert.Contains(t, table.String(), "a⏎b")

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, rec, "csv"))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(rec.Frames)+1)
	assert.Equal(t, "a\nb", rows[len(rows)-1][5])

	buf.Reset()
	require.NoError(t, Export(&buf, rec, "json"))
	var decoded jsonRecording
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, int64(5), decoded.TypingDelay)
	assert.Equal(t, "done", decoded.Frames[len(decoded.Frames)-1].Phase)

	assert.ErrorIs(t, Export(&buf, rec, "xml"), ErrUnknownFormat)
}

func TestTail(t *testing.T) {
	assert.Equal(t, "short", tail("short"))
	long := strings.Repeat("x", 40) + "END"
	out := tail(long)
	assert.True(t, strings.HasPrefix(out, "…"))
	assert.True(t, strings.HasSuffix(out, "END"))
	assert.Equal(t, tailWidth+1, len([]rune(out)))
}
