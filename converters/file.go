package converters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dcntopo/core"
)

// isYAML reports whether filename selects the YAML encoding.
func isYAML(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return true
	}

	return false
}

// Marshal encodes doc as YAML or JSON depending on the extension of filename.
func (doc *Document) Marshal(filename string) ([]byte, error) {
	if isYAML(filename) {
		return yaml.Marshal(doc)
	}

	return json.MarshalIndent(doc, "", "\t")
}

// WriteFile serializes g to filename; the extension picks the format.
func WriteFile(filename string, g *core.Graph) error {
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	doc, err := ToDocument(g, name)
	if err != nil {
		return err
	}
	data, err := doc.Marshal(filename)
	if err != nil {
		return fmt.Errorf("converters: encode %s: %w", filename, err)
	}
	if err = os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("converters: write %s: %w", filename, err)
	}

	return nil
}

// ReadDocument decodes the topology document stored in filename.
func ReadDocument(filename string) (*Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("converters: read %s: %w", filename, err)
	}
	doc := &Document{}
	if isYAML(filename) {
		err = yaml.Unmarshal(data, doc)
	} else {
		err = json.Unmarshal(data, doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrBadDocument, filename, err)
	}

	return doc, nil
}

// ReadFile loads a sealed graph from filename.
func ReadFile(filename string) (*core.Graph, error) {
	doc, err := ReadDocument(filename)
	if err != nil {
		return nil, err
	}

	return FromDocument(doc)
}
