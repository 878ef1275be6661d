package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// parseFile reads a JSON or YAML config file into a [StructuredConfig].
// The format is chosen by extension: ".yaml" and ".yml" are YAML, anything
// else is JSON. Durations are written as strings ("30s").
func parseFile(path string) (*StructuredConfig, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return nil, fmt.Errorf("error reading config file %q: %w", path, err)
	}

	cfg := new(StructuredConfig)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("error decoding config file %q: %w", path, err)
	}

	return cfg, nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return jsonParser{}
	}
}

// jsonParser implements [koanf.Parser] on top of encoding/json.
type jsonParser struct{}

func (jsonParser) Unmarshal(b []byte) (map[string]any, error) {
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (jsonParser) Marshal(o map[string]any) ([]byte, error) {
	return json.Marshal(o)
}
