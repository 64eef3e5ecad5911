// Package catalogue loads the demo item catalogue from a YAML file.
package catalogue

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shopflow/shopflow/pkg/shop"
)

// Default is the built-in catalogue used when no file is configured.
var Default = []shop.ItemID{20, 42, 36, 13, 71, 100}

// File represents the structure of catalogue.yaml.
type File struct {
	Items []shop.ItemID `yaml:"items"`
}

// Load reads a catalogue file and returns its item IDs.
// A missing file is not an error: the built-in Default is returned, so the
// demo works out of the box.
func Load(path string) ([]shop.ItemID, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return append([]shop.ItemID(nil), Default...), nil
		}
		return nil, fmt.Errorf("failed to read catalogue: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalogue %s: %w", path, err)
	}
	if len(f.Items) == 0 {
		return nil, fmt.Errorf("catalogue %s lists no items", path)
	}
	return f.Items, nil
}
