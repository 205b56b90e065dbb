package scenario

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"witness/pkg/logging"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

var suiteSchema = jsonschema.MustCompileString("schema.json", schemaJSON)

// InvalidScenarioError reports an unloadable or schema-invalid suite
// file.
type InvalidScenarioError struct {
	Path   string
	Reason string
}

func (e *InvalidScenarioError) Error() string {
	return fmt.Sprintf("invalid scenario %s: %s", e.Path, e.Reason)
}

// LoadFile reads and validates one suite file.
func LoadFile(path string) (*SuiteSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	return parse(path, data)
}

// LoadPath loads a suite file, or every *.yaml file in a directory merged
// under one synthetic root suite named after the directory.
func LoadPath(path string) (*SuiteSpec, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("scenario path %s: %w", path, err)
	}
	if !info.IsDir() {
		return LoadFile(path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario directory %s: %w", path, err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			files = append(files, filepath.Join(path, name))
		}
	}
	sort.Strings(files)
	if len(files) == 0 {
		return nil, &InvalidScenarioError{Path: path, Reason: "no suite files found"}
	}

	root := &SuiteSpec{Suite: filepath.Base(path)}
	for _, file := range files {
		spec, err := LoadFile(file)
		if err != nil {
			return nil, err
		}
		root.Suites = append(root.Suites, *spec)
	}
	logging.Info("Scenario", "Loaded %d suite file(s) from %s", len(files), path)
	return root, nil
}

func parse(path string, data []byte) (*SuiteSpec, error) {
	// Validate against the schema first, on the generic decoding, so
	// structural mistakes surface with a path-qualified message instead
	// of a half-populated spec.
	var generic interface{}
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, &InvalidScenarioError{Path: path, Reason: err.Error()}
	}
	if err := suiteSchema.Validate(normalize(generic)); err != nil {
		return nil, &InvalidScenarioError{Path: path, Reason: err.Error()}
	}

	var spec SuiteSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, &InvalidScenarioError{Path: path, Reason: err.Error()}
	}
	return &spec, nil
}

// normalize converts yaml-decoded values into the shape the jsonschema
// validator expects: map keys as strings and numbers as json-compatible
// types.
func normalize(v interface{}) interface{} {
	switch value := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(value))
		for k, item := range value {
			out[k] = normalize(item)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(value))
		for k, item := range value {
			out[fmt.Sprintf("%v", k)] = normalize(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(value))
		for i, item := range value {
			out[i] = normalize(item)
		}
		return out
	default:
		return v
	}
}
