package audit

import (
	"fmt"
	"sort"

	"github.com/de-tools/retention-audit/pkg/models/domain"
)

var opportunityTitles = map[domain.Category]string{
	domain.CategoryAcquisition: "Improve acquisition efficiency",
	domain.CategoryActivation:  "Recover abandoned carts and speed up first purchase",
	domain.CategoryNurture:     "Expand automated email nurture flows",
	domain.CategoryRetention:   "Launch a structured repeat-purchase program",
	domain.CategoryWinback:     "Build a lapsed-customer winback journey",
	domain.CategoryAdvocacy:    "Turn loyal customers into advocates",
}

// OpportunityValue projects the incremental annual revenue of closing a gap
// for one category. Non-positive gaps are worth nothing.
func OpportunityValue(form domain.AuditFormData, c domain.Category, gap float64, s OpportunitySettings) float64 {
	if gap <= 0 {
		return 0
	}
	baseRevenue := float64(form.TotalCustomers) * form.AverageOrderValue * form.PurchaseFrequency
	return round(baseRevenue*(gap/100)*s.Uplift[c], 2)
}

// RequiredInvestment grows the base investment for a category with gap size
func RequiredInvestment(c domain.Category, gap float64, s OpportunitySettings) float64 {
	if gap < 0 {
		gap = 0
	}
	return round(s.BaseInvestment[c]*(1+safeDiv(gap, s.GapInvestmentScale)), 2)
}

// PaybackMonths returns investment / monthly incremental revenue, capped at
// MaxPaybackMonths. The cap is also returned when nothing is projected.
func PaybackMonths(investment, annualRevenue float64, s OpportunitySettings) float64 {
	monthly := annualRevenue / monthsPerYear
	if monthly <= 0 {
		return s.MaxPaybackMonths
	}
	return round(clamp(safeDiv(investment, monthly), 0, s.MaxPaybackMonths), 1)
}

func effortTier(investment float64, s OpportunitySettings) domain.EffortTier {
	switch {
	case investment < s.LowEffortLimit:
		return domain.EffortLow
	case investment < s.MediumEffortLimit:
		return domain.EffortMedium
	default:
		return domain.EffortHigh
	}
}

func confidence(form domain.AuditFormData, gap float64, s OpportunitySettings) float64 {
	c := s.BaseConfidence + s.ConfidencePerQualityPoint*float64(form.DataQualityScore)
	if gap > s.LargeGapThreshold {
		c -= s.LargeGapPenalty
	}
	return clamp(c, s.MinConfidence, s.MaxConfidence)
}

// IdentifyOpportunities returns one opportunity per underperforming category,
// ranked by projected revenue and then ROI.
func IdentifyOpportunities(
	form domain.AuditFormData,
	scores map[domain.Category]float64,
	gaps map[domain.Category]float64,
	benchmark IndustryBenchmark,
	s OpportunitySettings,
) []domain.Opportunity {
	var out []domain.Opportunity
	for _, c := range domain.Categories {
		gap := gaps[c]
		revenue := OpportunityValue(form, c, gap, s)
		if revenue <= 0 {
			continue
		}
		investment := RequiredInvestment(c, gap, s)
		out = append(out, domain.Opportunity{
			Category: c,
			Title:    opportunityTitles[c],
			Description: fmt.Sprintf("%s score of %.0f trails the industry average of %.0f by %.0f points.",
				c.Title(), scores[c], benchmark[c].Average, gap),
			ProjectedRevenue: revenue,
			Investment:       investment,
			ROI:              round(safeDiv(revenue, investment), 2),
			PaybackMonths:    PaybackMonths(investment, revenue, s),
			Effort:           effortTier(investment, s),
			Confidence:       confidence(form, gap, s),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ProjectedRevenue != out[j].ProjectedRevenue {
			return out[i].ProjectedRevenue > out[j].ProjectedRevenue
		}
		return out[i].ROI > out[j].ROI
	})
	return out
}
