package config

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"

	"github.com/kopibot/kopi/src/debate"
)

// LoadTopics parses a JSON topic catalog: an array of topics with id,
// label, stance, keywords, and evidence. The file replaces the built-in
// catalog wholesale, so it must be complete on its own.
func LoadTopics(fs afero.Fs, path string) ([]debate.Topic, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read topics file %s: %w", path, err)
	}

	var topics []debate.Topic
	if err := json.Unmarshal(data, &topics); err != nil {
		return nil, fmt.Errorf("parse topics file %s: %w", path, err)
	}
	if len(topics) == 0 {
		return nil, fmt.Errorf("topics file %s defines no topics", path)
	}

	seen := make(map[string]struct{}, len(topics))
	for i, t := range topics {
		if t.ID == "" {
			return nil, fmt.Errorf("topics file %s: topic %d has no id", path, i)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("topics file %s: duplicate topic id %q", path, t.ID)
		}
		seen[t.ID] = struct{}{}
		if t.Stance == "" {
			return nil, fmt.Errorf("topics file %s: topic %q has no stance", path, t.ID)
		}
		if len(t.Keywords) == 0 {
			return nil, fmt.Errorf("topics file %s: topic %q has no trigger keywords", path, t.ID)
		}
		if len(t.Evidence) == 0 {
			return nil, fmt.Errorf("topics file %s: topic %q has an empty evidence bank", path, t.ID)
		}
	}
	return topics, nil
}
