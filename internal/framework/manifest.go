package framework

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the descriptor shipped at the framework root.
const ManifestFile = "info.yml"

// Manifest describes a deployed framework: display metadata plus the
// platforms its vendor trees were built for.
type Manifest struct {
	Name               string   `yaml:"name"`
	Version            string   `yaml:"version"`
	Description        string   `yaml:"description"`
	SupportedPlatforms []string `yaml:"supported_platforms"`
}

// LoadManifest reads info.yml under the given root. A missing manifest
// is an error the caller may ignore; activation never requires one.
func LoadManifest(root string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(root, ManifestFile))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ManifestFile, err)
	}
	return &m, nil
}

// Supports reports whether the manifest lists the given canonical
// platform name. An empty list means no restriction.
func (m *Manifest) Supports(pname string) bool {
	if len(m.SupportedPlatforms) == 0 {
		return true
	}
	for _, p := range m.SupportedPlatforms {
		if p == pname {
			return true
		}
	}
	return false
}
