/*
Copyright (C) 2024 The CRIKit Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package logging

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Config is the JSON document accepted by InitConfig. Missing fields fall
// back to the defaults (info level, text format).
type Config struct {
	Level  string `json:"level,omitempty"`
	Format string `json:"format,omitempty"`
}

// ConfigSchema is the JSON schema that InitConfig documents are validated
// against before being applied.
const ConfigSchema = `{
	"$schema": "http://json-schema.org/draft-04/schema#",
	"type": "object",
	"properties": {
		"level": {
			"type": "string",
			"enum": ["off", "error", "warn", "warning", "info", "debug", "trace"]
		},
		"format": {
			"type": "string",
			"enum": ["text", "json"]
		}
	},
	"additionalProperties": false
}`

// InitConfig configures the logger from a JSON document. An empty config
// applies the defaults. The document is validated against ConfigSchema;
// validation failures leave the active filter untouched.
func InitConfig(config string) error {
	if len(config) == 0 {
		config = "{}"
	}

	schema := gojsonschema.NewStringLoader(ConfigSchema)
	document := gojsonschema.NewStringLoader(config)
	result, err := gojsonschema.Validate(schema, document)
	if err != nil {
		return fmt.Errorf("validate log config: %w", err)
	}
	if !result.Valid() {
		// return first error
		return errors.New(result.Errors()[0].Description())
	}

	var cfg Config
	if err := json.Unmarshal([]byte(config), &cfg); err != nil {
		return fmt.Errorf("decode log config: %w", err)
	}

	level := LevelInfo
	if cfg.Level != "" {
		// the schema enum guarantees the name parses
		level, _ = ParseLevel(cfg.Level)
	}
	f := FormatText
	if cfg.Format != "" {
		f = Format(cfg.Format)
	}
	return initialize(level, f)
}
