// Package textio reads input text in legacy single-byte charsets and hands it
// on as UTF-8.
package textio

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ErrUnknownCharset is returned for a charset name Decode does not recognize.
var ErrUnknownCharset = errors.New("unsupported charset")

// Decode wraps input so that reading from it yields UTF-8.  UTF-8 input (the
// default for an empty charset) is returned unchanged.
func Decode(input io.Reader, charset string) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8":
		return input, nil
	case "windows-1251", "cp1251":
		return transform.NewReader(input, charmap.Windows1251.NewDecoder()), nil
	case "windows-1252", "cp1252", "iso-8859-1", "latin1":
		return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
	case "koi8-r":
		return transform.NewReader(input, charmap.KOI8R.NewDecoder()), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, charset)
}

// ReadText reads all of input, decoding it from charset.  If limit is
// positive, at most limit bytes of raw input are read.
func ReadText(input io.Reader, charset string, limit int64) (string, error) {
	if limit > 0 {
		input = io.LimitReader(input, limit)
	}
	r, err := Decode(input, charset)
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
