package credentials

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"fmt"
	"io"
)

// Encode obscures plain with zlib (best compression) and URL-safe base64.
// It is reversible by anyone and is not encryption.
func Encode(plain string) string {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		// only returned for an invalid level
		panic(err)
	}
	_, _ = w.Write([]byte(plain))
	_ = w.Close()
	return base64.URLEncoding.EncodeToString(buf.Bytes())
}

// Decode reverses Encode
func Decode(obscured string) (string, error) {
	raw, err := base64.URLEncoding.DecodeString(obscured)
	if err != nil {
		return "", fmt.Errorf("decoding base64: %w", err)
	}
	r, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("opening zlib stream: %w", err)
	}
	defer r.Close()

	plain, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("inflating: %w", err)
	}
	return string(plain), nil
}
