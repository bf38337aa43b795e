package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	first, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.Len(t, first, 26)

	second, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestReadAudioFile_Nil(t *testing.T) {
	_, err := New().ReadAudioFile(nil)
	assert.ErrorIs(t, err, ErrNoFile)
}

func TestAudioContentType(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		filename string
		want     string
	}{
		{name: "header wins", header: "audio/ogg", filename: "clip.wav", want: "audio/ogg"},
		{name: "octet stream falls back to extension", header: "application/octet-stream", filename: "clip.mp3", want: "audio/mpeg"},
		{name: "webm", filename: "clip.webm", want: "audio/webm"},
		{name: "unknown defaults to wav", filename: "clip.bin", want: "audio/wav"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, audioContentType(tt.header, tt.filename))
		})
	}
}
