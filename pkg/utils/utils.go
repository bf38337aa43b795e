package utils

import (
	"crypto/rand"
	"errors"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	ReadAudioFile(file *multipart.FileHeader) (AudioFile, error)
}

// AudioFile is an uploaded recording held in memory.
type AudioFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

var ErrNoFile = errors.New("no file uploaded")

type utils struct {
	maxFileSize int64
}

func New() IUtils {
	return &utils{
		maxFileSize: 25 * 1024 * 1024,
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

func (u *utils) ReadAudioFile(file *multipart.FileHeader) (AudioFile, error) {
	if file == nil {
		return AudioFile{}, ErrNoFile
	}

	if file.Size > u.maxFileSize {
		return AudioFile{}, errors.New("file size exceeds limit")
	}

	src, err := file.Open()
	if err != nil {
		return AudioFile{}, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return AudioFile{}, err
	}

	filename := filepath.Base(file.Filename)
	if filename == "." || filename == "/" || filename == "" {
		filename = "audio.wav"
	}

	return AudioFile{
		Filename:    filename,
		ContentType: audioContentType(file.Header.Get("Content-Type"), filename),
		Data:        data,
	}, nil
}

func audioContentType(header string, filename string) string {
	if strings.HasPrefix(header, "audio/") {
		return header
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mp3", ".mpga", ".mpeg":
		return "audio/mpeg"
	case ".ogg", ".oga":
		return "audio/ogg"
	case ".webm":
		return "audio/webm"
	case ".flac":
		return "audio/flac"
	case ".m4a", ".mp4":
		return "audio/mp4"
	default:
		return "audio/wav"
	}
}
