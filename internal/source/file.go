package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/javiermolinar/weekgrid/internal/calendar"
)

// JSONFile loads events from a file holding an array of wire events. Files
// ending in .yaml or .yml are read as YAML with the same field names.
type JSONFile struct {
	Path     string
	Location *time.Location
}

// Load implements Source.
func (s *JSONFile) Load(ctx context.Context) ([]calendar.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading events file: %w", err)
	}

	var payloads []calendar.Payload
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &payloads)
	default:
		err = json.Unmarshal(data, &payloads)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing events file: %w", err)
	}

	events, err := toEvents(payloads, s.Location)
	logLoaded("file", len(events), err)
	return events, err
}

// WriteJSON writes events as a wire array to path.
func WriteJSON(path string, events []calendar.Event) error {
	payloads := make([]calendar.Payload, len(events))
	for i, e := range events {
		payloads[i] = e.Payload()
	}
	data, err := json.MarshalIndent(payloads, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling events: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating events directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing events file: %w", err)
	}
	return nil
}
