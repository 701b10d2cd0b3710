package friend

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// seedFile is the on-disk layout of a seed file
type seedFile struct {
	Friends []Friend `yaml:"friends"`
}

// DefaultSeed returns the friends a fresh session starts with
func DefaultSeed() []Friend {
	return []Friend{
		{ID: "118836", Name: "Umer", Image: "https://i.pravatar.cc/48?u=118836", Balance: -7},
		{ID: "933372", Name: "Alisa", Image: "https://i.pravatar.cc/48?u=933372", Balance: 20},
		{ID: "499476", Name: "Daud", Image: "https://i.pravatar.cc/48?u=499476", Balance: 0},
	}
}

// LoadSeed reads friends from a YAML seed file
func LoadSeed(path string) ([]Friend, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	return file.Friends, nil
}
