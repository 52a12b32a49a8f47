package config

import (
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Kind identifies the shape of a parsed configuration value. Classification
// happens once, at parse time, so resolution code matches on a closed set of
// kinds instead of inspecting raw YAML types.
type Kind int

const (
	// KindAbsent marks a key that is missing from the document or explicitly null.
	KindAbsent Kind = iota
	// KindString marks a scalar string value.
	KindString
	// KindStringList marks a sequence whose elements are all strings.
	KindStringList
	// KindBool marks a boolean value.
	KindBool
	// KindOther marks any shape the tool does not understand (numbers,
	// mappings, mixed sequences). Resolution always substitutes the default.
	KindOther
)

// Value is a classified configuration value. Only the payload field matching
// Kind carries meaning.
type Value struct {
	Kind Kind
	Str  string
	List []string
	Bool bool
}

// Document is a read-only view over the top-level keys of a parsed YAML
// configuration file. It is built once per invocation and never mutated.
type Document struct {
	values map[string]Value
}

// Empty returns the document used whenever loading fails. It behaves
// identically to a file that contains no keys.
func Empty() *Document {
	return &Document{values: map[string]Value{}}
}

// Load reads and parses the YAML file at path. Loading never fails loudly:
// a missing, unreadable, or malformed file is reported through the logger
// and an empty document is returned so resolution falls back to defaults.
func Load(path string, logger *zap.Logger) *Document {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("failed to read configuration file",
			zap.String("path", path), zap.Error(err))
		return Empty()
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		logger.Error("failed to parse configuration file",
			zap.String("path", path), zap.Error(err))
		return Empty()
	}

	doc := Empty()
	for key, value := range raw {
		doc.values[key] = classify(value)
	}
	return doc
}

// Lookup returns the classified value for a top-level key. Missing keys
// yield a KindAbsent value rather than an error.
func (d *Document) Lookup(key string) Value {
	if v, ok := d.values[key]; ok {
		return v
	}
	return Value{Kind: KindAbsent}
}

// Len reports the number of top-level keys in the document.
func (d *Document) Len() int {
	return len(d.values)
}

func classify(raw any) Value {
	switch v := raw.(type) {
	case nil:
		// Explicit null is treated the same as an absent key.
		return Value{Kind: KindAbsent}
	case string:
		return Value{Kind: KindString, Str: v}
	case bool:
		return Value{Kind: KindBool, Bool: v}
	case []any:
		list := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return Value{Kind: KindOther}
			}
			list = append(list, s)
		}
		return Value{Kind: KindStringList, List: list}
	default:
		return Value{Kind: KindOther}
	}
}
