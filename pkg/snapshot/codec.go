// Package snapshot persists the whole dessert catalog as a single file.
// Two encodings are supported, YAML and JSON, both wrapping the list in a
// versioned envelope.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/dessertshop/pkg/constants"
	"github.com/agentstation/dessertshop/pkg/desserts"
	"github.com/agentstation/dessertshop/pkg/errors"
)

// Format names a snapshot encoding.
type Format string

const (
	// FormatYAML encodes snapshots as YAML.
	FormatYAML Format = "yaml"
	// FormatJSON encodes snapshots as JSON.
	FormatJSON Format = "json"
)

// ParseFormat converts a config value to a Format. An empty string or
// "auto" returns "" so the format is taken from the file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return "", nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", errors.NewConfigError("snapshot", fmt.Sprintf("unknown format %q: must be one of auto, yaml, json", s), nil)
	}
}

// FormatFromPath picks a Format from the file extension, defaulting to YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Codec encodes and decodes a dessert list.
type Codec interface {
	Format() Format
	Encode(ds []desserts.Dessert) ([]byte, error)
	Decode(data []byte) ([]desserts.Dessert, error)
}

// CodecFor returns the Codec for f.
func CodecFor(f Format) (Codec, error) {
	switch f {
	case FormatYAML:
		return yamlCodec{}, nil
	case FormatJSON:
		return jsonCodec{}, nil
	default:
		return nil, errors.NewConfigError("snapshot", fmt.Sprintf("no codec for format %q", f), nil)
	}
}

// envelope is the on-disk document.
type envelope struct {
	Version  int                `json:"version" yaml:"version"`
	Desserts []desserts.Dessert `json:"desserts" yaml:"desserts"`
}

func newEnvelope(ds []desserts.Dessert) envelope {
	if ds == nil {
		ds = []desserts.Dessert{}
	}
	return envelope{Version: constants.SnapshotVersion, Desserts: ds}
}

func (e envelope) list() ([]desserts.Dessert, error) {
	if e.Version > constants.SnapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d (max %d)", e.Version, constants.SnapshotVersion)
	}
	if e.Desserts == nil {
		return []desserts.Dessert{}, nil
	}
	return e.Desserts, nil
}

type yamlCodec struct{}

func (yamlCodec) Format() Format { return FormatYAML }

func (yamlCodec) Encode(ds []desserts.Dessert) ([]byte, error) {
	return yaml.MarshalWithOptions(newEnvelope(ds),
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
}

// Decode accepts the versioned envelope or, for hand-written files, a bare
// list of desserts.
func (yamlCodec) Decode(data []byte) ([]desserts.Dessert, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []desserts.Dessert{}, nil
	}

	if lead := yamlLead(trimmed); lead == '-' || lead == '[' {
		var ds []desserts.Dessert
		if err := yaml.UnmarshalWithOptions(data, &ds, yaml.Strict()); err != nil {
			return nil, errors.WrapParse(string(FormatYAML), "", err)
		}
		return newEnvelope(ds).list()
	}

	var env envelope
	if err := yaml.UnmarshalWithOptions(data, &env, yaml.Strict()); err != nil {
		return nil, errors.WrapParse(string(FormatYAML), "", err)
	}
	return env.list()
}

// yamlLead returns the first byte of the document body, skipping comment
// lines and a leading "---" marker. It returns 0 for a body with no content.
func yamlLead(data []byte) byte {
	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if rest, ok := bytes.CutPrefix(line, []byte("---")); ok {
			rest = bytes.TrimSpace(rest)
			if len(rest) == 0 || rest[0] == '#' {
				continue
			}
			line = rest
		}
		return line[0]
	}
	return 0
}

// jsonCodec uses encoding/json; the catalog document is plain data and the
// standard encoder round-trips float64 exactly.
type jsonCodec struct{}

func (jsonCodec) Format() Format { return FormatJSON }

func (jsonCodec) Encode(ds []desserts.Dessert) ([]byte, error) {
	data, err := json.MarshalIndent(newEnvelope(ds), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (jsonCodec) Decode(data []byte) ([]desserts.Dessert, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []desserts.Dessert{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()

	if trimmed[0] == '[' {
		var ds []desserts.Dessert
		if err := decodeOne(dec, &ds); err != nil {
			return nil, errors.WrapParse(string(FormatJSON), "", err)
		}
		return newEnvelope(ds).list()
	}

	var env envelope
	if err := decodeOne(dec, &env); err != nil {
		return nil, errors.WrapParse(string(FormatJSON), "", err)
	}
	return env.list()
}

// decodeOne decodes a single JSON value into v and rejects anything after it.
func decodeOne(dec *json.Decoder, v any) error {
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("unexpected data after the snapshot document at offset %d", dec.InputOffset())
	}
	return nil
}
