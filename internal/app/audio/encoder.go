package audio

import (
	"context"
	"encoding/base64"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"audio-transcript/internal/app/errors"
	"audio-transcript/internal/app/model"
)

// AcceptedMediaType is the only media type callers should hand to Encode
const AcceptedMediaType = "audio/mpeg"

var extensionTypes = map[string]string{
	".mp3":  "audio/mpeg",
	".mpga": "audio/mpeg",
	".wav":  "audio/wav",
	".m4a":  "audio/mp4",
	".flac": "audio/flac",
	".ogg":  "audio/ogg",
}

// Encode reads r to the end and returns its base64 payload tagged with declaredType.
// The whole content is held in memory; nothing is streamed.
func Encode(ctx context.Context, r io.Reader, declaredType string) (model.AudioPayload, error) {
	if err := ctx.Err(); err != nil {
		return model.AudioPayload{}, errors.WrapKind(err, errors.KindRead, "encode cancelled")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return model.AudioPayload{}, errors.ErrFileReadFailed.With(err)
	}
	if len(data) == 0 {
		return model.AudioPayload{}, errors.ErrEmptyAudio
	}

	return model.AudioPayload{
		MimeType: declaredType,
		Data:     base64.StdEncoding.EncodeToString(data),
	}, nil
}

// ReadObserver wraps the file reader, e.g. to report read progress
type ReadObserver func(size int64, r io.Reader) io.Reader

// EncodeFile opens path, resolves its declared media type and encodes it.
// Each observer wraps the reader in turn.
func EncodeFile(ctx context.Context, path string, observers ...ReadObserver) (model.AudioPayload, model.FileInfo, error) {
	info := model.FileInfo{Name: filepath.Base(path)}

	stat, err := os.Stat(path)
	if err != nil {
		return model.AudioPayload{}, info, errors.ErrFileReadFailed.With(err)
	}
	info.Size = stat.Size()

	mediaType, err := DetectMediaType(path)
	if err != nil {
		return model.AudioPayload{}, info, err
	}
	info.MimeType = mediaType

	f, err := os.Open(path)
	if err != nil {
		return model.AudioPayload{}, info, errors.ErrFileReadFailed.With(err)
	}
	defer f.Close()

	var r io.Reader = f
	for _, observe := range observers {
		r = observe(info.Size, r)
	}

	payload, err := Encode(ctx, r, mediaType)
	return payload, info, err
}

// DetectMediaType returns the declared type of path from its extension,
// sniffing the content when the extension is unknown
func DetectMediaType(path string) (string, error) {
	if t, ok := extensionTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return t, nil
	}
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", errors.ErrFileReadFailed.With(err)
	}
	return NormalizeMediaType(mtype.String()), nil
}

// NormalizeMediaType lowercases t, drops parameters and folds MP3 aliases into audio/mpeg
func NormalizeMediaType(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	if i := strings.Index(t, ";"); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	switch t {
	case "audio/mp3", "audio/mpeg3", "audio/x-mpeg", "audio/x-mp3":
		return AcceptedMediaType
	}
	return t
}

// IsAccepted reports whether mediaType passes the MP3-only policy
func IsAccepted(mediaType string) bool {
	return NormalizeMediaType(mediaType) == AcceptedMediaType
}

// ResolveMediaType picks the media type of an upload. A missing or generic
// declared type falls back to the file extension, then to the content.
func ResolveMediaType(declared, name string, content []byte) string {
	declared = NormalizeMediaType(declared)
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	if t, ok := extensionTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return t
	}
	return NormalizeMediaType(mimetype.Detect(content).String())
}
