package progress

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	sent  int64
	total int64
}

func TestReader_TracksProgress(t *testing.T) {
	t.Parallel()

	data := []byte("hello world")

	var events []event
	pr := NewReader(bytes.NewReader(data), int64(len(data)), func(sent, total int64) {
		events = append(events, event{sent, total})
	})

	buf := make([]byte, 5)
	n, err := pr.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	require.Len(t, events, 1)
	assert.Equal(t, event{5, 11}, events[0])

	_, err = io.ReadAll(pr)
	require.NoError(t, err)
	assert.Equal(t, int64(11), events[len(events)-1].sent)
	assert.Equal(t, int64(11), pr.Sent())
}

func TestReader_CorrectsEstimatedTotal(t *testing.T) {
	t.Parallel()

	// Multipart framing makes the real body larger than the file bytes.
	data := []byte("0123456789")

	var events []event
	pr := NewReader(bytes.NewReader(data), 4, func(sent, total int64) {
		events = append(events, event{sent, total})
	})

	_, err := io.ReadAll(pr)
	require.NoError(t, err)

	last := events[len(events)-1]
	assert.Equal(t, event{10, 10}, last)
}

func TestReader_UnknownTotal(t *testing.T) {
	t.Parallel()

	var events []event
	pr := NewReader(bytes.NewReader([]byte("abc")), -1, func(sent, total int64) {
		events = append(events, event{sent, total})
	})

	_, err := io.ReadAll(pr)
	require.NoError(t, err)
	for _, e := range events {
		assert.Equal(t, int64(-1), e.total)
	}
}

func TestReader_NilCallback(t *testing.T) {
	t.Parallel()

	data := []byte("hello")
	pr := NewReader(bytes.NewReader(data), int64(len(data)), nil)

	buf, err := io.ReadAll(pr)
	require.NoError(t, err)
	assert.Equal(t, data, buf)
}

func TestReader_CloseClosesUnderlying(t *testing.T) {
	t.Parallel()

	pipeR, pipeW := io.Pipe()
	pr := NewReader(pipeR, -1, nil)
	require.NoError(t, pr.Close())

	_, err := pipeW.Write([]byte("x"))
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestReader_CloseNonCloser(t *testing.T) {
	t.Parallel()

	pr := NewReader(bytes.NewReader([]byte("test")), 4, nil)
	assert.NoError(t, pr.Close())
}
