package gym

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/gymkit/pkg/logger"
)

// Format is a client record serialization format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatYAML), "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Codec reads and writes single client records. Decoding is lenient: fields
// the record does not know about are skipped and reported at debug level.
type Codec struct {
	format Format
	log    *slog.Logger
}

// CodecOption configures a Codec.
type CodecOption func(*Codec)

// WithFormat sets the record format. The default is FormatJSON.
func WithFormat(f Format) CodecOption {
	return func(c *Codec) { c.format = f }
}

// WithLogger sets the logger used to report ignored fields. Nil is ignored.
func WithLogger(l *slog.Logger) CodecOption {
	return func(c *Codec) {
		if l != nil {
			c.log = l
		}
	}
}

// NewCodec returns a JSON codec that discards logs unless options say otherwise.
func NewCodec(opts ...CodecOption) *Codec {
	c := &Codec{
		format: FormatJSON,
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(logger.Component("gym.codec"), logger.RecordFormat(string(c.format)))
	return c
}

// Format returns the codec's record format.
func (c *Codec) Format() Format {
	return c.format
}

// Encode writes client to w.
func (c *Codec) Encode(ctx context.Context, w io.Writer, client Client) error {
	var err error
	switch c.format {
	case FormatJSON:
		err = json.NewEncoder(w).Encode(client)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err = enc.Encode(client); err == nil {
			err = enc.Close()
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, c.format)
	}
	if err != nil {
		return errors.Join(ErrEncodeFailed, err)
	}
	c.log.DebugContext(ctx, "encoded client record", logger.ClientID(client.ID()))
	return nil
}

// Decode reads one client record from r without validating it.
func (c *Codec) Decode(ctx context.Context, r io.Reader) (Client, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Client{}, errors.Join(ErrDecodeFailed, err)
	}

	var client Client
	switch c.format {
	case FormatJSON:
		err = json.Unmarshal(data, &client)
	case FormatYAML:
		if len(bytes.TrimSpace(data)) == 0 {
			err = io.ErrUnexpectedEOF
		} else {
			err = yaml.Unmarshal(data, &client)
		}
	default:
		return Client{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, c.format)
	}
	if err != nil {
		err = errors.Join(ErrDecodeFailed, err)
		c.log.DebugContext(ctx, "failed to decode client record", logger.Error(err))
		return Client{}, err
	}

	unknown, err := unknownFields(c.format, data)
	if err != nil {
		c.log.DebugContext(ctx, "skipped unknown field detection",
			logger.ClientID(client.ID()),
			logger.Error(err),
		)
		return client, nil
	}
	if len(unknown) > 0 {
		c.log.DebugContext(ctx, "ignored unknown client record fields",
			logger.ClientID(client.ID()),
			logger.Fields(unknown...),
		)
	}
	return client, nil
}

// Marshal encodes client in the codec's format.
func (c *Codec) Marshal(client Client) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Encode(context.Background(), &buf, client); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a client record from data in the codec's format.
func (c *Codec) Unmarshal(data []byte) (Client, error) {
	return c.Decode(context.Background(), bytes.NewReader(data))
}

// unknownFields lists, sorted, the top-level keys of data that a client
// record does not understand.
func unknownFields(format Format, data []byte) ([]string, error) {
	var keys map[string]any
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &keys)
	case FormatYAML:
		err = yaml.Unmarshal(data, &keys)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	var unknown []string
	for k := range keys {
		if _, ok := recordKeys[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	slices.Sort(unknown)
	return unknown, nil
}
