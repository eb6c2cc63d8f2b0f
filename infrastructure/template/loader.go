// Package template loads the canonical template record that defines
// the shape of every generated configuration and serves as the
// total-fallback output.
package template

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rios0rios0/mcpcatalog/domain"
)

// Loader reads the template record from a fixed path.
type Loader struct {
	path string
}

var _ domain.TemplateLoader = (*Loader)(nil)

// NewLoader creates a loader for the given template path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and parses the template record. Any failure is wrapped in
// ErrTemplateUnreadable and is fatal to the run: there is no
// configuration without a template.
func (l *Loader) Load() (domain.ServerConfiguration, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTemplateUnreadable, err)
	}

	var record domain.ServerConfiguration
	if unmarshalErr := json.Unmarshal(data, &record); unmarshalErr != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTemplateUnreadable, unmarshalErr)
	}

	return record, nil
}
