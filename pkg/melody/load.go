package melody

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

// defaultTempo is used when a melody file does not specify one.
const defaultTempo = 120

// Load reads a melody from a JSON file of the shape
//
//	{"name": "...", "tempo": 120, "notes": ["C", "E", ...], "beats": [1, 0.5, ...]}
//
// Only "notes" is required. A missing name falls back to the file name,
// a missing tempo to 120, and missing beats stay empty so the caller
// can substitute random ones.
func Load(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("failed to read melody file: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return Source{}, fmt.Errorf("melody file %s is not valid json", path)
	}
	root := gjson.ParseBytes(data)

	notes := root.Get("notes")
	if !notes.IsArray() || len(notes.Array()) == 0 {
		return Source{}, fmt.Errorf("melody file %s has no notes array", path)
	}

	src := Source{
		Name:  root.Get("name").String(),
		Tempo: int(root.Get("tempo").Int()),
	}
	if src.Name == "" {
		src.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if src.Tempo <= 0 {
		src.Tempo = defaultTempo
	}
	for _, r := range notes.Array() {
		src.Notes = append(src.Notes, r.String())
	}
	for _, r := range root.Get("beats").Array() {
		src.Beats = append(src.Beats, r.Float())
	}
	return src, nil
}
