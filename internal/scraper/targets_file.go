package scraper

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type targetsFile struct {
	Targets []Target `yaml:"targets"`
}

// LoadTargetsFile reads target definitions from a YAML file:
//
//	targets:
//	  - name: googlemaps
//	    url: https://www.google.com/maps
//	    probes:
//	      - item: div.Nv2PK
func LoadTargetsFile(path string) ([]Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read targets file: %w", err)
	}
	return ParseTargets(data)
}

func ParseTargets(data []byte) ([]Target, error) {
	var f targetsFile
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("parse targets: %w", err)
	}

	for _, t := range f.Targets {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}
	return f.Targets, nil
}
