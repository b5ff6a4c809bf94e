package serial

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/osuushi/hullroute/internal"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	TOML Format = "toml"
	JSON Format = "json"
	YAML Format = "yaml"
	// Input only.
	SVG Format = "svg"
)

var ErrUnknownFormat = errors.New("unknown format")

func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "toml":
		return TOML, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "svg":
		return SVG, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", name)
}

// Guess the format of a file from its extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.Wrapf(ErrUnknownFormat, "no extension on %q", path)
	}
	return ParseFormat(ext)
}

// Read a route and its obstacles. The result has been validated.
func DecodeInput(r io.Reader, format Format) (internal.Input, error) {
	if format == SVG {
		return decodeSVG(r)
	}

	var doc inputDocument
	var err error
	switch format {
	case TOML:
		_, err = toml.NewDecoder(r).Decode(&doc)
	case JSON:
		err = json.NewDecoder(r).Decode(&doc)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&doc)
	default:
		return internal.Input{}, errors.Wrapf(ErrUnknownFormat, "cannot read %q", format)
	}
	if err != nil {
		return internal.Input{}, errors.Wrapf(err, "decoding %s", format)
	}
	return doc.toInput()
}

func EncodeOutput(w io.Writer, output *internal.Output, format Format) error {
	return encode(w, NewOutputDocument(output), format)
}

func EncodeInput(w io.Writer, input internal.Input, format Format) error {
	return encode(w, NewInputDocument(input), format)
}

func encode(w io.Writer, doc interface{}, format Format) error {
	switch format {
	case TOML:
		return errors.Wrap(toml.NewEncoder(w).Encode(doc), "encoding toml")
	case JSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return errors.Wrap(encoder.Encode(doc), "encoding json")
	case YAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		return errors.Wrap(encoder.Close(), "encoding yaml")
	}
	return errors.Wrapf(ErrUnknownFormat, "cannot write %q", format)
}
