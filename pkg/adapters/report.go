package adapters

import (
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/retention-audit/pkg/models/domain"
	"github.com/de-tools/retention-audit/pkg/services/audit"
)

const currency = "INR"

// MapAuditResultsDomainToReport lays the results out as report sections
// shared by the terminal and CSV exporters. Detail names are unique across
// the report so the sections can be flattened into metric/value rows.
func MapAuditResultsDomainToReport(r domain.AuditResults) *domain.Report {
	title := "Retention Audit"
	if r.CompanyName != "" {
		title = fmt.Sprintf("Retention Audit: %s", r.CompanyName)
	}

	return &domain.Report{
		Title:       title,
		Subtitle:    fmt.Sprintf("Industry: %s", r.Industry),
		GeneratedAt: r.GeneratedAt,
		Sections: []domain.ReportSection{
			summarySection(r),
			categorySection(r),
			financialSection(r.Financial),
			opportunitySection(r.Opportunities),
			roadmapSection(r.Roadmap),
			recommendationSection(r.Recommendations),
		},
	}
}

func summarySection(r domain.AuditResults) domain.ReportSection {
	return domain.ReportSection{
		Title: "Summary",
		Summary: map[string]interface{}{
			"opportunities": len(r.Opportunities),
		},
		Details: []domain.ReportDetail{
			{Name: "Company", Value: r.CompanyName},
			{Name: "Industry", Value: r.Industry},
			{Name: "Overall Score", Value: r.OverallScore, Unit: "/100"},
			{Name: "Maturity Level", Value: string(r.MaturityLevel)},
			{Name: "Tech Stack Completeness", Value: r.TechStackCompleteness * 100, Unit: "%"},
		},
	}
}

func categorySection(r domain.AuditResults) domain.ReportSection {
	s := domain.ReportSection{Title: "Category Scores", Summary: map[string]interface{}{}}
	behind := 0
	for _, c := range domain.Categories {
		gap := r.Gaps[c]
		if gap > 0 {
			behind++
		}
		s.Details = append(s.Details,
			domain.ReportDetail{Name: c.Title() + " Score", Value: r.CategoryScores[c], Unit: "/100"},
			domain.ReportDetail{Name: c.Title() + " Gap", Value: gap, Unit: "pts", Description: gapDescription(gap)},
		)
	}
	s.Summary["categories_below_benchmark"] = behind
	return s
}

func gapDescription(gap float64) string {
	switch {
	case gap > 0:
		return "below industry average"
	case gap < 0:
		return "above industry average"
	default:
		return "at industry average"
	}
}

func financialSection(f domain.FinancialMetrics) domain.ReportSection {
	return domain.ReportSection{
		Title: "Financial Metrics",
		Details: []domain.ReportDetail{
			{Name: "Customer Lifetime Value", Value: f.CLV, Unit: currency},
			{Name: "Margin-Adjusted CLV", Value: f.MarginAdjustedCLV, Unit: currency},
			{Name: "Customer Acquisition Cost", Value: f.CAC, Unit: currency},
			{Name: "LTV:CAC Ratio", Value: f.LTVToCAC, Unit: "x"},
			{Name: "Monthly Churn Rate", Value: f.ChurnRate, Unit: "%"},
			{Name: "Monthly Retention Rate", Value: f.RetentionRate, Unit: "%"},
			{Name: "Monthly Revenue at Risk", Value: f.RevenueAtRisk, Unit: currency},
		},
	}
}

func opportunitySection(opps []domain.Opportunity) domain.ReportSection {
	s := domain.ReportSection{Title: "Opportunities", Summary: map[string]interface{}{}}
	var total float64
	for i, o := range opps {
		prefix := fmt.Sprintf("Opportunity %d", i+1)
		total += o.ProjectedRevenue
		s.Details = append(s.Details,
			domain.ReportDetail{Name: prefix, Value: o.Title, Description: o.Description},
			domain.ReportDetail{Name: prefix + " Projected Revenue", Value: o.ProjectedRevenue, Unit: currency, Description: "annual"},
			domain.ReportDetail{Name: prefix + " Investment", Value: o.Investment, Unit: currency},
			domain.ReportDetail{Name: prefix + " ROI", Value: o.ROI, Unit: "x"},
			domain.ReportDetail{Name: prefix + " Payback", Value: o.PaybackMonths, Unit: "months"},
			domain.ReportDetail{Name: prefix + " Effort", Value: string(o.Effort)},
			domain.ReportDetail{Name: prefix + " Confidence", Value: o.Confidence, Unit: "%"},
		)
	}
	s.Summary["total_projected_revenue"] = fmt.Sprintf("%s %.2f", currency, total)
	return s
}

func roadmapSection(phases []domain.RoadmapPhase) domain.ReportSection {
	s := domain.ReportSection{Title: "Roadmap"}
	for i, p := range phases {
		prefix := fmt.Sprintf("Phase %d", i+1)
		s.Details = append(s.Details,
			domain.ReportDetail{Name: prefix, Value: p.Name, Description: p.Duration},
			domain.ReportDetail{Name: prefix + " Duration", Value: p.Duration},
			domain.ReportDetail{Name: prefix + " Expected Revenue", Value: p.ExpectedRevenue, Unit: currency},
			domain.ReportDetail{Name: prefix + " Investment", Value: p.RequiredInvestment, Unit: currency},
			domain.ReportDetail{Name: prefix + " Initiatives", Value: strings.Join(p.Initiatives, "; ")},
		)
	}
	return s
}

func recommendationSection(recs []string) domain.ReportSection {
	s := domain.ReportSection{Title: "Recommendations"}
	for i, rec := range recs {
		s.Details = append(s.Details, domain.ReportDetail{
			Name:  fmt.Sprintf("Recommendation %d", i+1),
			Value: rec,
		})
	}
	return s
}

func MapBenchmarksDomainToReport(table audit.BenchmarkTable, generatedAt time.Time) *domain.Report {
	report := &domain.Report{
		Title:       "Industry Benchmarks",
		Subtitle:    fmt.Sprintf("%d industries", len(table)),
		GeneratedAt: generatedAt,
	}
	for _, industry := range table.Industries() {
		s := domain.ReportSection{Title: industry}
		for _, c := range domain.Categories {
			r := table[industry][c]
			s.Details = append(s.Details, domain.ReportDetail{
				Name:        c.Title(),
				Value:       r.Average,
				Unit:        "/100",
				Description: fmt.Sprintf("top quartile %.0f", r.TopQuartile),
			})
		}
		report.Sections = append(report.Sections, s)
	}
	return report
}
