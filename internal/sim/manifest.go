package sim

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/simgroup/internal/group"
	"github.com/roach88/simgroup/internal/param"
)

// ManifestErrorCode categorizes manifest failures.
type ManifestErrorCode string

const (
	// ErrCodeUnreadable indicates the manifest could not be read or parsed.
	ErrCodeUnreadable ManifestErrorCode = "UNREADABLE"

	// ErrCodeUnsupported indicates an unknown file type or a "simulations"
	// value that is not a list.
	ErrCodeUnsupported ManifestErrorCode = "UNSUPPORTED_INPUT"

	// ErrCodeInvalid indicates a structurally valid document with bad entries.
	ErrCodeInvalid ManifestErrorCode = "INVALID_MANIFEST"
)

// ManifestError reports a manifest loading failure.
type ManifestError struct {
	Code    ManifestErrorCode
	Message string
	Path    string
	Entry   int // index into simulations, -1 for document-level errors
	Err     error
}

func (e *ManifestError) Error() string {
	loc := e.Path
	if e.Entry >= 0 {
		loc = fmt.Sprintf("%s: simulations[%d]", e.Path, e.Entry)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", loc, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", loc, e.Code, e.Message)
}

func (e *ManifestError) Unwrap() error {
	return e.Err
}

// SupportedExtensions lists the manifest file extensions LoadManifest reads.
var SupportedExtensions = []string{".yaml", ".yml", ".json", ".cue"}

// LoadManifest reads a manifest file and returns its simulations.
// Missing IDs are filled with UUIDv7 values.
func LoadManifest(path string) (*Collection, error) {
	return LoadManifestWith(path, UUIDv7Generator{})
}

// LoadManifestWith is LoadManifest with an explicit ID generator.
func LoadManifestWith(path string, ids IDGenerator) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ManifestError{Code: ErrCodeUnreadable, Message: "read manifest", Path: path, Entry: -1, Err: err}
	}

	ext := strings.ToLower(filepath.Ext(path))
	var doc map[string]any
	switch ext {
	case ".yaml", ".yml":
		doc, err = decodeYAML(data)
	case ".json":
		doc, err = decodeJSON(data)
	case ".cue":
		doc, err = decodeCUE(data, path)
	default:
		return nil, &ManifestError{
			Code:    ErrCodeUnsupported,
			Message: fmt.Sprintf("unsupported manifest extension %q (want one of %v)", ext, SupportedExtensions),
			Path:    path,
			Entry:   -1,
			Err:     group.NewUnsupportedInputError("file " + ext),
		}
	}
	if err != nil {
		return nil, &ManifestError{Code: ErrCodeUnreadable, Message: "parse manifest", Path: path, Entry: -1, Err: err}
	}

	sims, err := parseDocument(doc, path, filepath.Dir(path), ids)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if n, ok := doc["name"].(string); ok && n != "" {
		name = n
	}
	return &Collection{Name: name, Source: path, Simulations: sims}, nil
}

func decodeYAML(data []byte) (map[string]any, error) {
	var doc map[string]any
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	return doc, nil
}

func decodeJSON(data []byte) (map[string]any, error) {
	var doc map[string]any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	return doc, nil
}

// decodeCUE evaluates a CUE manifest and re-reads its concrete JSON export,
// so CUE ints and floats keep their kinds.
func decodeCUE(data []byte, path string) (map[string]any, error) {
	ctx := cuecontext.New()
	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("cue: %w", err)
	}
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("cue: %w", err)
	}
	exported, err := value.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("cue export: %w", err)
	}
	return decodeJSON(exported)
}

func parseDocument(doc map[string]any, path, baseDir string, ids IDGenerator) ([]*Simulation, error) {
	raw, ok := doc["simulations"]
	if !ok || raw == nil {
		return nil, &ManifestError{Code: ErrCodeInvalid, Message: `missing "simulations" list`, Path: path, Entry: -1}
	}

	list, ok := raw.([]any)
	if !ok {
		kind := describe(raw)
		return nil, &ManifestError{
			Code:    ErrCodeUnsupported,
			Message: fmt.Sprintf(`"simulations" must be a list, got %s`, kind),
			Path:    path,
			Entry:   -1,
			Err:     group.NewUnsupportedInputError(kind),
		}
	}

	sims := make([]*Simulation, 0, len(list))
	seen := make(map[string]int, len(list))
	for i, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, invalidEntry(path, i, "entry must be a mapping, got %s", describe(item))
		}
		s, err := parseEntry(entry, baseDir, ids)
		if err != nil {
			return nil, &ManifestError{Code: ErrCodeInvalid, Message: "invalid simulation", Path: path, Entry: i, Err: err}
		}
		if prev, dup := seen[s.Name]; dup {
			return nil, invalidEntry(path, i, "duplicate name %q (first at simulations[%d])", s.Name, prev)
		}
		seen[s.Name] = i
		sims = append(sims, s)
	}
	return sims, nil
}

func parseEntry(entry map[string]any, baseDir string, ids IDGenerator) (*Simulation, error) {
	s := &Simulation{Params: param.Params{}}

	name, err := optionalString(entry, "name")
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf(`"name" is required`)
	}
	s.Name = name

	if s.ID, err = optionalString(entry, "id"); err != nil {
		return nil, err
	}
	if s.ID == "" {
		s.ID = ids.Generate()
	}

	if s.Path, err = optionalString(entry, "path"); err != nil {
		return nil, err
	}

	switch started := entry["started"].(type) {
	case bool:
		s.HasStarted = started
	case nil:
		s.HasStarted = DetectStarted(resolvePath(baseDir, s.Path))
	default:
		return nil, fmt.Errorf(`"started" must be a bool, got %s`, describe(started))
	}

	if raw, ok := entry["lxyz"]; ok && raw != nil {
		lxyz, err := parseLxyz(raw)
		if err != nil {
			return nil, err
		}
		s.Lxyz = lxyz
	}

	if raw, ok := entry["params"]; ok && raw != nil {
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf(`"params" must be a mapping, got %s`, describe(raw))
		}
		params, err := param.FromMap(m)
		if err != nil {
			return nil, err
		}
		s.Params = params
	}

	return s, nil
}

func parseLxyz(raw any) ([3]float64, error) {
	var out [3]float64
	list, ok := raw.([]any)
	if !ok || len(list) != 3 {
		return out, fmt.Errorf(`"lxyz" must be a list of 3 numbers`)
	}
	for i, elem := range list {
		v, err := param.FromAny(elem)
		if err != nil {
			return out, fmt.Errorf("lxyz[%d]: %w", i, err)
		}
		switch n := v.(type) {
		case param.Int:
			out[i] = float64(n)
		case param.Float:
			out[i] = float64(n)
		default:
			return out, fmt.Errorf("lxyz[%d]: must be a number, got %s", i, describe(elem))
		}
	}
	return out, nil
}

func optionalString(entry map[string]any, key string) (string, error) {
	raw, ok := entry[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%q must be a string, got %s", key, describe(raw))
	}
	return s, nil
}

func resolvePath(baseDir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}

func invalidEntry(path string, i int, format string, args ...any) *ManifestError {
	return &ManifestError{Code: ErrCodeInvalid, Message: fmt.Sprintf(format, args...), Path: path, Entry: i}
}

func describe(v any) string {
	switch v.(type) {
	case map[string]any:
		return "mapping"
	case []any:
		return "list"
	case string:
		return "string"
	case bool:
		return "bool"
	case nil:
		return "null"
	default:
		return "number"
	}
}
