package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

const (
	EncodingUTF8    = "utf-8"
	EncodingUTF8BOM = "utf-8-sig"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CanonicalEncoding normalizes an encoding label. UTF-8 spellings collapse to
// "utf-8" / "utf-8-sig"; anything else must be a label known to the WHATWG
// index and is returned in its canonical form.
func CanonicalEncoding(label string) (string, error) {
	norm := strings.ToLower(strings.TrimSpace(label))
	switch strings.ReplaceAll(norm, "_", "-") {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "utf-8-sig", "utf8-sig":
		return EncodingUTF8BOM, nil
	}
	enc, err := htmlindex.Get(norm)
	if err != nil {
		return "", fmt.Errorf("unknown encoding: %s", label)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return "", fmt.Errorf("unknown encoding: %s", label)
	}
	if name == EncodingUTF8 {
		return EncodingUTF8, nil
	}
	return name, nil
}

// Load reads the whole file at path and decodes it under the given encoding.
// The file handle is closed on every return path.
func Load(path, enc string) (string, error) {
	canonical, err := CanonicalEncoding(enc)
	if err != nil {
		return "", err
	}
	data, err := readAll(path)
	if err != nil {
		return "", err
	}
	return Decode(path, data, canonical)
}

func readAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &NotFoundError{Path: path, Err: errors.New("is a directory")}
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// Decode converts raw bytes into text. path is only used for error context.
func Decode(path string, data []byte, enc string) (string, error) {
	switch enc {
	case EncodingUTF8:
		if off, ok := firstInvalidUTF8(data); !ok {
			return "", &DecodeError{Path: path, Encoding: enc, Offset: off, Byte: int(data[off])}
		}
		return string(data), nil
	case EncodingUTF8BOM:
		start := 0
		if len(data) >= len(utf8BOM) && string(data[:len(utf8BOM)]) == string(utf8BOM) {
			start = len(utf8BOM)
		}
		if off, ok := firstInvalidUTF8(data[start:]); !ok {
			return "", &DecodeError{Path: path, Encoding: enc, Offset: start + off, Byte: int(data[start+off])}
		}
		return string(data[start:]), nil
	}

	e, err := htmlindex.Get(enc)
	if err != nil {
		return "", fmt.Errorf("unknown encoding: %s", enc)
	}
	return decodeWith(path, data, enc, e)
}

// decodeWith runs e's decoder over data. x/text decoders substitute U+FFFD
// for undecodable input instead of failing, so any U+FFFD in the result that
// is not a literal U+FFFD in data is reported as a *DecodeError.
func decodeWith(path string, data []byte, name string, e encoding.Encoding) (string, error) {
	out, n, err := transform.Bytes(e.NewDecoder(), data)
	if err != nil {
		b := -1
		if n < len(data) {
			b = int(data[n])
		}
		return "", &DecodeError{Path: path, Encoding: name, Offset: n, Byte: b, Err: err}
	}
	text := string(out)
	if !strings.ContainsRune(text, utf8.RuneError) {
		return text, nil
	}

	literal, litErr := e.NewEncoder().Bytes([]byte(string(utf8.RuneError)))
	for i, r := range text {
		if r != utf8.RuneError {
			continue
		}
		off := inputOffset(e, text[:i], len(data))
		if litErr == nil && len(literal) > 0 && bytes.HasPrefix(data[off:], literal) {
			continue
		}
		b := -1
		if off < len(data) {
			b = int(data[off])
		}
		return "", &DecodeError{Path: path, Encoding: name, Offset: off, Byte: b, Err: errInvalidSequence}
	}
	return text, nil
}

var errInvalidSequence = errors.New("invalid byte sequence")

// inputOffset maps a decoded prefix back to a byte offset in the input by
// re-encoding it. The result is clamped to size.
func inputOffset(e encoding.Encoding, prefix string, size int) int {
	encoded, err := e.NewEncoder().Bytes([]byte(prefix))
	n := len(encoded)
	if err != nil {
		n = len(prefix)
	}
	if n > size {
		n = size
	}
	return n
}

// firstInvalidUTF8 returns the offset of the first byte that does not start
// a valid UTF-8 sequence. ok is true when data is entirely valid.
func firstInvalidUTF8(data []byte) (offset int, ok bool) {
	if utf8.Valid(data) {
		return 0, true
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i, false
		}
		i += size
	}
	return 0, true
}

// Lines splits text on "\n". A trailing newline yields a final empty line.
func Lines(text string) []string {
	return strings.Split(text, "\n")
}
