package audit

import (
	"math"

	"github.com/de-tools/retention-audit/pkg/models/domain"
)

const monthsPerYear = 12

// CalculateCLV returns the revenue a customer generates over their lifetime:
// AOV * orders per year * lifespan in years.
func CalculateCLV(form domain.AuditFormData) float64 {
	years := safeDiv(form.AverageCustomerLifespan, monthsPerYear)
	return round(form.AverageOrderValue*form.PurchaseFrequency*years, 2)
}

// CalculateChurnRate returns monthly churn in percent. A supplied churn rate
// wins; otherwise it is implied from lifespan and the share of customers that
// never come back.
func CalculateChurnRate(form domain.AuditFormData) float64 {
	if form.ChurnRate > 0 {
		return round(clampPercent(form.ChurnRate), 2)
	}
	lifespanChurn := safeDiv(100, form.AverageCustomerLifespan)
	oneTimeChurn := safeDiv(100-form.RepeatPurchaseRate, monthsPerYear)
	return round(clampPercent((lifespanChurn+oneTimeChurn)/2), 2)
}

func CalculateFinancialMetrics(form domain.AuditFormData) domain.FinancialMetrics {
	clv := CalculateCLV(form)
	churn := CalculateChurnRate(form)
	return domain.FinancialMetrics{
		CLV:               clv,
		MarginAdjustedCLV: round(clv*form.GrossMargin/100, 2),
		CAC:               round(form.CustomerAcquisitionCost, 2),
		LTVToCAC:          round(safeDiv(clv, form.CustomerAcquisitionCost), 2),
		ChurnRate:         churn,
		RetentionRate:     round(100-churn, 2),
		RevenueAtRisk:     round(form.MonthlyRevenue*churn/100, 2),
	}
}

// CalculateCategoryScores blends the self-assessed stage score with the
// behavior observed for that stage. Every score lies in [0, 100].
func CalculateCategoryScores(form domain.AuditFormData, fin domain.FinancialMetrics, s Settings) map[domain.Category]float64 {
	scores := make(map[domain.Category]float64, len(domain.Categories))
	for _, c := range domain.Categories {
		blend := clamp(s.StageBlend[c], 0, 1)
		stage := clamp(float64(form.StageScore(c))*10, 0, 100)
		signal := clamp(categorySignal(c, form, fin, s.Targets), 0, 100)
		scores[c] = math.Round(clamp(blend*stage+(1-blend)*signal, 0, 100))
	}
	return scores
}

func categorySignal(c domain.Category, form domain.AuditFormData, fin domain.FinancialMetrics, t EngagementTargets) float64 {
	switch c {
	case domain.CategoryAcquisition:
		return safeDiv(fin.LTVToCAC, t.LTVToCAC) * 100
	case domain.CategoryActivation:
		return 100 - form.CartAbandonmentRate
	case domain.CategoryNurture:
		return emailEngagementIndex(form, t)
	case domain.CategoryRetention:
		return safeDiv(form.RepeatPurchaseRate, t.RepeatPurchaseRate) * 100
	case domain.CategoryWinback:
		return 100 - fin.ChurnRate*t.ChurnPenalty
	case domain.CategoryAdvocacy:
		returns := clamp(100-form.ReturnRate*t.ReturnPenalty, 0, 100)
		return (returns + advocacyCapabilityShare(form)*100) / 2
	default:
		return 0
	}
}

// emailEngagementIndex scores open, click and conversion rates against their
// targets, each capped at the target.
func emailEngagementIndex(form domain.AuditFormData, t EngagementTargets) float64 {
	open := math.Min(1, safeDiv(form.EmailOpenRate, t.EmailOpenRate))
	click := math.Min(1, safeDiv(form.EmailClickRate, t.EmailClickRate))
	conv := math.Min(1, safeDiv(form.EmailConversionRate, t.EmailConversionRate))
	return (0.4*open + 0.3*click + 0.3*conv) * 100
}

func advocacyCapabilityShare(form domain.AuditFormData) float64 {
	n := 0
	if form.HasReferralProgram {
		n++
	}
	if form.HasLoyaltyProgram {
		n++
	}
	if form.ReviewsPlatform != domain.NoPlatform {
		n++
	}
	return float64(n) / 3
}

// CalculateOverallScore returns the weighted mean of the category scores
func CalculateOverallScore(scores map[domain.Category]float64, weights map[domain.Category]float64) float64 {
	var sum, total float64
	for _, c := range domain.Categories {
		w := weights[c]
		if w <= 0 {
			continue
		}
		sum += w * scores[c]
		total += w
	}
	return math.Round(clamp(safeDiv(sum, total), 0, 100))
}

// TechStackCompleteness is the share of platforms and advanced capabilities
// in place, in [0, 1].
func TechStackCompleteness(form domain.AuditFormData) float64 {
	platforms := form.Platforms()
	capabilities := form.Capabilities()

	n := 0
	for _, p := range platforms {
		if p != "" && p != domain.NoPlatform {
			n++
		}
	}
	for _, ok := range capabilities {
		if ok {
			n++
		}
	}
	return round(safeDiv(float64(n), float64(len(platforms)+len(capabilities))), 2)
}

func DetermineMaturityLevel(overall, completeness float64, s MaturitySettings) domain.MaturityLevel {
	switch {
	case overall >= s.AdvancedScore && completeness >= s.AdvancedCompleteness:
		return domain.MaturityAdvanced
	case overall >= s.IntermediateScore && completeness >= s.IntermediateCompleteness:
		return domain.MaturityIntermediate
	default:
		return domain.MaturityBeginner
	}
}

// safeDiv returns 0 instead of Inf or NaN
func safeDiv(a, b float64) float64 {
	if b == 0 || math.IsNaN(b) || math.IsInf(b, 0) {
		return 0
	}
	r := a / b
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

func clampPercent(v float64) float64 {
	return clamp(v, 0, 100)
}

// round returns 0 for Inf or NaN. Values too large to scale are returned
// unrounded.
func round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	p := math.Pow(10, float64(places))
	r := math.Round(v*p) / p
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return v
	}
	return r
}
