package gym

import "errors"

var (
	// ErrUnsupportedFormat is returned for serialization formats other than JSON and YAML.
	ErrUnsupportedFormat = errors.New("unsupported record format")

	// ErrDecodeFailed is returned when a client record cannot be decoded.
	ErrDecodeFailed = errors.New("failed to decode client record")

	// ErrEncodeFailed is returned when a client record cannot be encoded.
	ErrEncodeFailed = errors.New("failed to encode client record")
)
