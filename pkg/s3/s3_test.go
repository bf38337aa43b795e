package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_RequiresBucket(t *testing.T) {
	t.Setenv("AWS_BUCKET_NAME", "")
	_, err := New()
	assert.ErrorIs(t, err, ErrBucketNotConfigured)
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "audio/01HZX-clip.wav", ObjectKey("audio", "01HZX-clip.wav"))
	assert.Equal(t, "audio/clip.wav", ObjectKey("audio/", "../../clip.wav"))
}
