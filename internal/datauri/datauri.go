// Package datauri encodes and decodes base64 "data:" URIs, the form in which
// plant photos travel between the client and the analysis service.
package datauri

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrMalformed = errors.New("malformed data uri")

// Encode returns data as "data:<mime>;base64,<payload>".
func Encode(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Decode splits a base64 data URI into its MIME type and raw bytes.
// Only base64 payloads are accepted.
func Decode(uri string) (mime string, data []byte, err error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, ErrMalformed
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrMalformed
	}
	mime, ok = strings.CutSuffix(meta, ";base64")
	if !ok || mime == "" {
		return "", nil, ErrMalformed
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, errors.Join(ErrMalformed, err)
	}
	if len(data) == 0 {
		return "", nil, ErrMalformed
	}
	return mime, data, nil
}

// IsDataURI reports whether s looks like a data URI.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:")
}
