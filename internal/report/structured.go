package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gabssanto/logscope/internal/scan"
)

// JSONRenderer writes one JSON object per line: records first, then the summary
type JSONRenderer struct {
	enc *json.Encoder
}

// NewJSONRenderer creates a JSONRenderer writing to w
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{enc: json.NewEncoder(w)}
}

func (j *JSONRenderer) Record(record scan.ClassificationRecord) error {
	if err := j.enc.Encode(record); err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	return nil
}

func (j *JSONRenderer) Close(summary Summary) error {
	if err := j.enc.Encode(map[string]Summary{"summary": summary}); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return nil
}

// YAMLRenderer writes one YAML document per record, then a summary document
type YAMLRenderer struct {
	enc *yaml.Encoder
}

// NewYAMLRenderer creates a YAMLRenderer writing to w
func NewYAMLRenderer(w io.Writer) *YAMLRenderer {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &YAMLRenderer{enc: enc}
}

func (y *YAMLRenderer) Record(record scan.ClassificationRecord) error {
	if err := y.enc.Encode(record); err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	return nil
}

func (y *YAMLRenderer) Close(summary Summary) error {
	if err := y.enc.Encode(map[string]Summary{"summary": summary}); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return y.enc.Close()
}
