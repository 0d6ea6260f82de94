// Package models holds polyium's settings models and the conventions they
// share: train-case keys, JSON schema generation, and decoding from YAML or
// JSON files.
package models

import (
	"encoding/json"
	"fmt"
	"maps"
	"reflect"

	"github.com/invopop/jsonschema"
)

// Metaschema is the default "$schema" of generated schemas.
const Metaschema = "https://json-schema.org/draft/2020-12/schema"

// Describer is implemented by models that describe themselves in their
// schema.
type Describer interface {
	Describe() string
}

// Configuration controls how schemas are generated for a model.
type Configuration struct {
	title      string
	metaschema string
	extra      map[string]any
	reflector  *jsonschema.Reflector
}

// Option customizes a Configuration.
type Option func(*Configuration)

// WithTitle overrides the schema title, which otherwise is the model's type
// name in train-case.
func WithTitle(title string) Option {
	return func(c *Configuration) { c.title = title }
}

// WithMetaschema overrides the "$schema" keyword.
func WithMetaschema(uri string) Option {
	return func(c *Configuration) { c.metaschema = uri }
}

// WithExtra merges additional keywords into the root of the schema.
func WithExtra(extra map[string]any) Option {
	return func(c *Configuration) {
		if c.extra == nil {
			c.extra = make(map[string]any, len(extra))
		}
		maps.Copy(c.extra, extra)
	}
}

// Default returns the configuration every polyium model uses: train-case
// keys and titles, inlined definitions, and the 2020-12 metaschema.
func Default(opts ...Option) *Configuration {
	c := &Configuration{
		metaschema: Metaschema,
		reflector: &jsonschema.Reflector{
			Anonymous:      true,
			DoNotReference: true,
			KeyNamer:       KeyName,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Schema reflects the JSON schema of v, which must be a struct or a pointer
// to one.
func (c *Configuration) Schema(v any) (*jsonschema.Schema, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot generate schema for %T: not a struct", v)
	}

	schema := c.reflector.ReflectFromType(t)
	schema.Definitions = nil
	schema.Version = c.metaschema

	schema.Title = c.title
	if schema.Title == "" {
		schema.Title = PascalToTrain(t.Name())
	}
	if d, ok := v.(Describer); ok {
		schema.Description = d.Describe()
	}

	if len(c.extra) > 0 {
		if schema.Extras == nil {
			schema.Extras = make(map[string]any, len(c.extra))
		}
		maps.Copy(schema.Extras, c.extra)
	}

	titleProperties(schema)
	return schema, nil
}

// titleProperties sets each property's title to its key, recursing into
// nested objects and array items.
func titleProperties(s *jsonschema.Schema) {
	if s == nil {
		return
	}
	if s.Properties != nil {
		for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
			if pair.Value.Title == "" {
				pair.Value.Title = pair.Key
			}
			titleProperties(pair.Value)
		}
	}
	titleProperties(s.Items)
}

// JSONify renders v as JSON indented by four spaces.
func JSONify(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal %T: %w", v, err)
	}
	return string(b), nil
}
