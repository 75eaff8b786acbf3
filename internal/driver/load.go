package driver

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"

	"assertfmt/internal/report"
)

var (
	ErrUnknownFormat = errors.New("unknown input format")
	ErrBadRecord     = errors.New("bad check record")
)

// InputFormat is the encoding of a check record file.
type InputFormat string

const (
	InputAuto    InputFormat = "auto"
	InputJSON    InputFormat = "json"
	InputMsgpack InputFormat = "msgpack"
	InputTOML    InputFormat = "toml"
)

func ParseInputFormat(s string) (InputFormat, error) {
	switch f := InputFormat(strings.ToLower(s)); f {
	case "", InputAuto:
		return InputAuto, nil
	case InputJSON, InputMsgpack, InputTOML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (expected: auto|json|msgpack|toml)", ErrUnknownFormat, s)
	}
}

// DetectFormat picks the format by file extension.
func DetectFormat(path string) (InputFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".ndjson", ".jsonl":
		return InputJSON, nil
	case ".msgpack", ".mpk", ".mp":
		return InputMsgpack, nil
	case ".toml":
		return InputTOML, nil
	default:
		return "", fmt.Errorf("%w: cannot detect from %q, use --input-format", ErrUnknownFormat, path)
	}
}

// LoadChecks reads every record in path. "-" reads stdin, which needs an
// explicit format.
func LoadChecks(path string, format InputFormat) ([]report.Check, error) {
	if format == InputAuto || format == "" {
		var err error
		if format, err = DetectFormat(path); err != nil {
			return nil, err
		}
	}
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	checks, err := DecodeChecks(r, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return checks, nil
}

// DecodeChecks decodes and normalizes records from r.
//
//	json:    one array, or a stream of objects (NDJSON works)
//	msgpack: a stream of maps, as appended by a capture layer
//	toml:    [[check]] tables
func DecodeChecks(r io.Reader, format InputFormat) ([]report.Check, error) {
	var (
		checks []report.Check
		err    error
	)
	switch format {
	case InputJSON:
		checks, err = decodeJSON(r)
	case InputMsgpack:
		checks, err = decodeMsgpack(r)
	case InputTOML:
		checks, err = decodeTOML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	for i := range checks {
		if err := checks[i].Normalize(); err != nil {
			return nil, fmt.Errorf("%w #%d: %w", ErrBadRecord, i+1, err)
		}
	}
	return checks, nil
}

func decodeJSON(r io.Reader) ([]report.Check, error) {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(br)
	dec.DisallowUnknownFields()
	if first == '[' {
		var checks []report.Check
		if err := dec.Decode(&checks); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadRecord, err)
		}
		return checks, nil
	}
	var checks []report.Check
	for {
		var c report.Check
		err := dec.Decode(&c)
		if errors.Is(err, io.EOF) {
			return checks, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w #%d: %w", ErrBadRecord, len(checks)+1, err)
		}
		checks = append(checks, c)
	}
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, br.UnreadByte()
	}
}

func decodeMsgpack(r io.Reader) ([]report.Check, error) {
	dec := msgpack.NewDecoder(bufio.NewReader(r))
	dec.DisallowUnknownFields(true)
	var checks []report.Check
	for {
		var c report.Check
		err := dec.Decode(&c)
		if errors.Is(err, io.EOF) {
			return checks, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w #%d: %w", ErrBadRecord, len(checks)+1, err)
		}
		checks = append(checks, c)
	}
}

type tomlChecks struct {
	Check []report.Check `toml:"check"`
}

func decodeTOML(r io.Reader) ([]report.Check, error) {
	var doc tomlChecks
	meta, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRecord, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %s", ErrBadRecord, undecoded[0])
	}
	return doc.Check, nil
}

// EncodeMsgpack writes checks as a msgpack stream readable by LoadChecks.
func EncodeMsgpack(w io.Writer, checks []report.Check) error {
	enc := msgpack.NewEncoder(w)
	for i := range checks {
		if err := enc.Encode(&checks[i]); err != nil {
			return err
		}
	}
	return nil
}
