package audit

import (
	"time"

	"github.com/de-tools/retention-audit/pkg/models/domain"
	"github.com/google/uuid"
)

// Calculator turns an audit form into results. It holds no mutable state and
// is safe for concurrent use.
type Calculator struct {
	settings Settings
	now      func() time.Time
	newID    func() string
}

func NewCalculator(settings Settings) *Calculator {
	if len(settings.Benchmarks) == 0 {
		settings.Benchmarks = DefaultBenchmarks()
	}
	return &Calculator{
		settings: settings,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (c *Calculator) Settings() Settings {
	return c.settings
}

// Defaults applies the calculator's fallbacks to form
func (c *Calculator) Defaults(form domain.AuditFormData) domain.AuditFormData {
	return ApplyDefaults(form, c.settings.Fallbacks)
}

// Calculate defaults the form and derives every metric from it
func (c *Calculator) Calculate(form domain.AuditFormData) domain.AuditResults {
	s := c.settings
	form = ApplyDefaults(form, s.Fallbacks)

	fin := CalculateFinancialMetrics(form)
	scores := CalculateCategoryScores(form, fin, s)
	overall := CalculateOverallScore(scores, s.CategoryWeights)
	completeness := TechStackCompleteness(form)

	benchmark := s.Benchmarks.Lookup(form.Industry)
	gaps := CalculateGaps(scores, benchmark)
	opportunities := IdentifyOpportunities(form, scores, gaps, benchmark, s.Opportunity)

	return domain.AuditResults{
		ID:                    c.newID(),
		GeneratedAt:           c.now().UTC(),
		CompanyName:           form.CompanyName,
		Industry:              form.Industry,
		OverallScore:          overall,
		MaturityLevel:         DetermineMaturityLevel(overall, completeness, s.Maturity),
		TechStackCompleteness: completeness,
		CategoryScores:        scores,
		Gaps:                  gaps,
		Financial:             fin,
		Opportunities:         opportunities,
		Roadmap:               BuildRoadmap(form, opportunities, completeness),
		Recommendations:       GenerateRecommendations(form, fin, gaps, s.Targets),
	}
}
