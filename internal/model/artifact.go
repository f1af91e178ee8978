package model

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// artifact is the on-disk representation of a classifier.
type artifact struct {
	FormatVersion  int       `json:"format_version"`
	Kind           Kind      `json:"kind"`
	FeatureNamesIn []string  `json:"feature_names_in,omitempty"`
	NFeaturesIn    int       `json:"n_features_in"`
	Classes        []int     `json:"classes"`
	Trees          []tree    `json:"trees,omitempty"`
	Coef           []float64 `json:"coef,omitempty"`
	Intercept      float64   `json:"intercept,omitempty"`
}

type tree struct {
	Nodes []node `json:"nodes"`
}

// node follows the sklearn tree layout: a leaf has Left == Right == -1 and
// Value holds per-class sample weights.
type node struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
	Value     []float64 `json:"value"`
}

func (n node) isLeaf() bool {
	return n.Left == -1 && n.Right == -1
}

// feature_names_in is optional here: an artifact without it still loads and
// the missing list is reported when a prediction is attempted.
const artifactSchema = `{
  "type": "object",
  "required": ["format_version", "kind", "n_features_in", "classes"],
  "properties": {
    "format_version": {"const": 1},
    "kind": {"enum": ["random_forest", "logistic_regression"]},
    "feature_names_in": {
      "type": "array",
      "items": {"type": "string", "minLength": 1},
      "uniqueItems": true
    },
    "n_features_in": {"type": "integer", "minimum": 1},
    "classes": {
      "type": "array",
      "items": {"type": "integer"},
      "minItems": 2,
      "maxItems": 2,
      "uniqueItems": true
    },
    "trees": {"type": "array", "minItems": 1, "items": {"$ref": "#/$defs/tree"}},
    "coef": {"type": "array", "minItems": 1, "items": {"type": "number"}},
    "intercept": {"type": "number"}
  },
  "allOf": [
    {
      "if": {"properties": {"kind": {"const": "random_forest"}}},
      "then": {"required": ["trees"]}
    },
    {
      "if": {"properties": {"kind": {"const": "logistic_regression"}}},
      "then": {"required": ["coef", "intercept"]}
    }
  ],
  "$defs": {
    "tree": {
      "type": "object",
      "required": ["nodes"],
      "properties": {
        "nodes": {"type": "array", "minItems": 1, "items": {"$ref": "#/$defs/node"}}
      }
    },
    "node": {
      "type": "object",
      "required": ["left", "right", "value"],
      "properties": {
        "feature": {"type": "integer", "minimum": -2},
        "threshold": {"type": "number"},
        "left": {"type": "integer", "minimum": -1},
        "right": {"type": "integer", "minimum": -1},
        "value": {
          "type": "array",
          "minItems": 2,
          "maxItems": 2,
          "items": {"type": "number", "minimum": 0}
        }
      }
    }
  }
}`

const artifactSchemaURL = "schema://churnlens/model-artifact.json"

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func artifactValidator() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(artifactSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(artifactSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(artifactSchemaURL)
	})
	return compiledSchema, compileErr
}

// decodeArtifact validates data against the artifact schema and decodes it.
func decodeArtifact(data []byte) (*artifact, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrInvalidArtifact, err)
	}

	sch, err := artifactValidator()
	if err != nil {
		return nil, fmt.Errorf("compile artifact schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}

	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}

	if n := len(a.FeatureNamesIn); n > 0 && n != a.NFeaturesIn {
		return nil, fmt.Errorf("%w: %d feature names for n_features_in=%d",
			ErrInvalidArtifact, n, a.NFeaturesIn)
	}
	return &a, nil
}
