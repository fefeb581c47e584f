package config

import (
	"fmt"
	"strings"

	"github.com/de-tools/retention-audit/pkg/models/domain"
	"github.com/de-tools/retention-audit/pkg/services/audit"
	"gopkg.in/ini.v1"
)

const topQuartileSuffix = "_top"

// LoadBenchmarks reads an industry benchmark table from an INI file. Every
// section is an industry; keys are category names holding the average score
// and "<category>_top" holding the top-quartile score:
//
//	[fashion]
//	acquisition = 58
//	acquisition_top = 78
//
// The built-in default row is added when the file does not define one.
func LoadBenchmarks(path string) (audit.BenchmarkTable, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load benchmarks: %w", err)
	}

	table := audit.BenchmarkTable{}
	for _, section := range cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		industry := strings.ToLower(strings.TrimSpace(section.Name()))
		row, err := parseBenchmarkSection(section)
		if err != nil {
			return nil, fmt.Errorf("industry %q: %w", industry, err)
		}
		table[industry] = row
	}

	if _, ok := table["default"]; !ok {
		table["default"] = audit.DefaultBenchmarks()["default"]
	}
	return table, nil
}

func parseBenchmarkSection(section *ini.Section) (audit.IndustryBenchmark, error) {
	row := audit.IndustryBenchmark{}
	for _, c := range domain.Categories {
		name := string(c)
		if !section.HasKey(name) {
			return nil, fmt.Errorf("missing %q", name)
		}
		avg, err := section.Key(name).Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid %q: %w", name, err)
		}

		top := avg
		if section.HasKey(name + topQuartileSuffix) {
			top, err = section.Key(name + topQuartileSuffix).Float64()
			if err != nil {
				return nil, fmt.Errorf("invalid %q: %w", name+topQuartileSuffix, err)
			}
		}
		row[c] = audit.BenchmarkRange{Average: avg, TopQuartile: top}
	}
	return row, nil
}
