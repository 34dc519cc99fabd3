package bank

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/quizline/internal/quiz"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://quizline/bank.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// Format is the encoding of a bank file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// fileBank is the on-disk shape of a bank.
type fileBank struct {
	Title     string         `json:"title"`
	Questions []fileQuestion `json:"questions"`
}

type fileQuestion struct {
	ID            int               `json:"id"`
	Kind          string            `json:"kind"`
	Prompt        string            `json:"prompt"`
	Points        int               `json:"points"`
	Explanation   string            `json:"explanation"`
	Options       []string          `json:"options"`
	CorrectOption string            `json:"correct_option"`
	Items         []quiz.Item       `json:"items"`
	Targets       []quiz.Item       `json:"targets"`
	Pairing       map[string]string `json:"pairing"`
}

// FormatFromPath picks the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported bank file extension %q (want .yaml, .yml or .json)", filepath.Ext(path))
}

// Load reads, schema-checks and validates a bank file.
func Load(path string) (*Bank, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}
	b, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return b, nil
}

// Parse decodes a bank document. Shape errors and semantic errors both wrap
// quiz.ErrInvalidQuestion; syntax errors do not.
func Parse(data []byte, format Format) (*Bank, error) {
	doc, err := decodeDocument(data, format)
	if err != nil {
		return nil, err
	}

	// The jsonschema library expects a parsed JSON value, and YAML decodes
	// to Go types JSON doesn't have. Round-trip through JSON to normalize.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("normalize bank: %w", err)
	}
	var normalized any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return nil, fmt.Errorf("normalize bank: %w", err)
	}

	schema, err := bankSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(normalized); err != nil {
		return nil, fmt.Errorf("%w: schema validation failed: %w", quiz.ErrInvalidQuestion, err)
	}

	var fb fileBank
	if err := json.Unmarshal(raw, &fb); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}
	return New(fb.Title, fb.toQuestions())
}

func decodeDocument(data []byte, format Format) (any, error) {
	var doc any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse bank: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse bank: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown bank format %q", format)
	}
	return doc, nil
}

// bankSchema compiles the embedded schema once.
func bankSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal(schemaJSON, &def); err != nil {
			schemaErr = fmt.Errorf("parse bank schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add bank schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile bank schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

func (fb fileBank) toQuestions() []quiz.Question {
	qs := make([]quiz.Question, 0, len(fb.Questions))
	for _, fq := range fb.Questions {
		qs = append(qs, quiz.Question{
			ID:            fq.ID,
			Kind:          quiz.Kind(fq.Kind),
			Prompt:        fq.Prompt,
			Points:        fq.Points,
			Options:       fq.Options,
			CorrectOption: fq.CorrectOption,
			Items:         fq.Items,
			Targets:       fq.Targets,
			Pairing:       fq.Pairing,
			Explanation:   fq.Explanation,
		})
	}
	return qs
}
