package audit

import (
	"sort"
	"strings"

	"github.com/de-tools/retention-audit/pkg/models/domain"
)

// BenchmarkRange is the expected score for a category within an industry
type BenchmarkRange struct {
	Average     float64
	TopQuartile float64
}

// IndustryBenchmark maps each category to its expected range
type IndustryBenchmark map[domain.Category]BenchmarkRange

// BenchmarkTable is keyed by lower-case industry name. It must contain a
// "default" row, used for industries it does not know.
type BenchmarkTable map[string]IndustryBenchmark

// DefaultBenchmarks returns the built-in D2C benchmark table
func DefaultBenchmarks() BenchmarkTable {
	return BenchmarkTable{
		defaultIndustry: row(55, 75, 60, 78, 50, 72, 55, 75, 40, 62, 45, 68),
		"fashion":       row(58, 78, 62, 80, 55, 76, 52, 72, 42, 65, 48, 70),
		"beauty":        row(56, 76, 64, 82, 58, 80, 60, 80, 45, 66, 55, 76),
		"electronics":   row(60, 80, 58, 76, 45, 68, 45, 66, 35, 58, 42, 64),
		"food":          row(52, 72, 60, 78, 55, 75, 65, 84, 48, 68, 46, 66),
		"health":        row(54, 74, 62, 80, 56, 78, 62, 82, 44, 64, 50, 72),
		"home":          row(57, 77, 58, 76, 48, 70, 48, 68, 38, 60, 44, 66),
	}
}

// row lists average and top-quartile pairs in category order
func row(values ...float64) IndustryBenchmark {
	b := IndustryBenchmark{}
	for i, c := range domain.Categories {
		b[c] = BenchmarkRange{Average: values[2*i], TopQuartile: values[2*i+1]}
	}
	return b
}

// Lookup returns the benchmark for an industry, falling back to the default row
func (t BenchmarkTable) Lookup(industry string) IndustryBenchmark {
	if b, ok := t[strings.ToLower(strings.TrimSpace(industry))]; ok {
		return b
	}
	return t[defaultIndustry]
}

// Industries returns the industries present in the table, sorted
func (t BenchmarkTable) Industries() []string {
	out := make([]string, 0, len(t))
	for name := range t {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// CalculateGaps returns benchmark average minus actual score for every
// category. A positive gap means the business underperforms its industry.
func CalculateGaps(scores map[domain.Category]float64, benchmark IndustryBenchmark) map[domain.Category]float64 {
	gaps := make(map[domain.Category]float64, len(domain.Categories))
	for _, c := range domain.Categories {
		gaps[c] = round(benchmark[c].Average-scores[c], 1)
	}
	return gaps
}
