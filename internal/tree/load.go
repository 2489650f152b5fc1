package tree

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type nodeSpec struct {
	Title     string      `yaml:"title"`
	Icon      string      `yaml:"icon"`
	Data      any         `yaml:"data"`
	Separator bool        `yaml:"separator"`
	Children  *[]nodeSpec `yaml:"children"`
}

// Load decodes a root set from YAML. Each node is a mapping with title, icon,
// data and children keys; `separator: true` stands alone. A node that carries
// a children key (even an empty one) becomes a Branch.
func Load(r io.Reader) ([]Item, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var specs []nodeSpec
	if err := dec.Decode(&specs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	return buildItems(specs, nil)
}

// LoadBytes is Load over an in-memory document.
func LoadBytes(data []byte) ([]Item, error) {
	return Load(bytes.NewReader(data))
}

// LoadFile reads and decodes the tree stored at path.
func LoadFile(path string) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tree file: %w", err)
	}
	defer f.Close()
	items, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

func buildItems(specs []nodeSpec, at Path) ([]Item, error) {
	items := make([]Item, 0, len(specs))
	for i, spec := range specs {
		pos := at.Append(i)
		if spec.Separator {
			if spec.Title != "" || spec.Icon != "" || spec.Data != nil || spec.Children != nil {
				return nil, fmt.Errorf("node %s: separator cannot carry other fields", pos.Dotted())
			}
			items = append(items, Separator{})
			continue
		}
		title := strings.TrimSpace(spec.Title)
		if title == "" {
			return nil, fmt.Errorf("node %s: missing title", pos.Dotted())
		}
		if spec.Children == nil {
			items = append(items, &Leaf{Title: title, Icon: Icon(spec.Icon), Data: spec.Data})
			continue
		}
		children, err := buildItems(*spec.Children, pos)
		if err != nil {
			return nil, err
		}
		items = append(items, &Branch{Title: title, Icon: Icon(spec.Icon), Data: spec.Data, Children: children})
	}
	return items, nil
}
