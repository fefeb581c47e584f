package audit

import (
	"strings"

	"github.com/de-tools/retention-audit/pkg/models/domain"
)

const (
	defaultIndustry = "default"

	minStageScore = 1
	maxStageScore = 10
)

// Fallbacks are substituted for missing or non-positive inputs
type Fallbacks struct {
	MonthlyRevenue          float64
	AverageOrderValue       float64
	GrossMargin             float64
	TotalCustomers          int
	AverageCustomerLifespan float64
	CustomerAcquisitionCost float64
	PurchaseFrequency       float64
	RepeatPurchaseRate      float64
	// ActiveCustomerShare and NewCustomerShare derive counts from TotalCustomers
	ActiveCustomerShare float64
	NewCustomerShare    float64
	StageScore          int
	DataScore           int
}

// DefaultFallbacks returns the fallback values used by the audit form
func DefaultFallbacks() Fallbacks {
	return Fallbacks{
		MonthlyRevenue:          500000,
		AverageOrderValue:       1500,
		GrossMargin:             40,
		TotalCustomers:          1000,
		AverageCustomerLifespan: 24,
		CustomerAcquisitionCost: 500,
		PurchaseFrequency:       2.5,
		RepeatPurchaseRate:      25,
		ActiveCustomerShare:     0.4,
		NewCustomerShare:        0.1,
		StageScore:              5,
		DataScore:               5,
	}
}

// ApplyDefaults returns a complete copy of form. Fields used as divisors are
// replaced with fallbacks when missing or non-positive; rates where zero is a
// meaningful answer are kept and clamped into [0, 100]. The function is
// idempotent.
func ApplyDefaults(form domain.AuditFormData, fb Fallbacks) domain.AuditFormData {
	out := form

	out.CompanyName = strings.TrimSpace(out.CompanyName)
	out.Industry = normalizeIndustry(out.Industry)

	out.MonthlyRevenue = positiveOr(out.MonthlyRevenue, fb.MonthlyRevenue)
	out.AnnualRevenue = positiveOr(out.AnnualRevenue, out.MonthlyRevenue*12)
	out.AverageOrderValue = positiveOr(out.AverageOrderValue, fb.AverageOrderValue)
	out.GrossMargin = clampPercent(positiveOr(out.GrossMargin, fb.GrossMargin))

	out.TotalCustomers = positiveIntOr(out.TotalCustomers, fb.TotalCustomers)
	out.ActiveCustomers = positiveIntOr(out.ActiveCustomers, shareOf(out.TotalCustomers, fb.ActiveCustomerShare))
	out.NewCustomersMonthly = positiveIntOr(out.NewCustomersMonthly, shareOf(out.TotalCustomers, fb.NewCustomerShare))
	out.AverageCustomerLifespan = positiveOr(out.AverageCustomerLifespan, fb.AverageCustomerLifespan)
	out.CustomerAcquisitionCost = positiveOr(out.CustomerAcquisitionCost, fb.CustomerAcquisitionCost)

	out.PurchaseFrequency = positiveOr(out.PurchaseFrequency, fb.PurchaseFrequency)
	out.RepeatPurchaseRate = clampPercent(positiveOr(out.RepeatPurchaseRate, fb.RepeatPurchaseRate))
	out.CartAbandonmentRate = clampPercent(out.CartAbandonmentRate)
	out.ReturnRate = clampPercent(out.ReturnRate)
	out.ChurnRate = clampPercent(out.ChurnRate)

	out.EmailOpenRate = clampPercent(out.EmailOpenRate)
	out.EmailClickRate = clampPercent(out.EmailClickRate)
	out.EmailConversionRate = clampPercent(out.EmailConversionRate)
	out.ActiveFlows = nonNegative(out.ActiveFlows)

	out.AcquisitionScore = stageScoreOr(out.AcquisitionScore, fb.StageScore)
	out.ActivationScore = stageScoreOr(out.ActivationScore, fb.StageScore)
	out.NurtureScore = stageScoreOr(out.NurtureScore, fb.StageScore)
	out.RetentionScore = stageScoreOr(out.RetentionScore, fb.StageScore)
	out.WinbackScore = stageScoreOr(out.WinbackScore, fb.StageScore)
	out.AdvocacyScore = stageScoreOr(out.AdvocacyScore, fb.StageScore)

	out.EmailPlatform = platformOrNone(out.EmailPlatform)
	out.SMSPlatform = platformOrNone(out.SMSPlatform)
	out.CDPPlatform = platformOrNone(out.CDPPlatform)
	out.AnalyticsPlatform = platformOrNone(out.AnalyticsPlatform)
	out.LoyaltyPlatform = platformOrNone(out.LoyaltyPlatform)
	out.ReviewsPlatform = platformOrNone(out.ReviewsPlatform)

	out.DataQualityScore = stageScoreOr(out.DataQualityScore, fb.DataScore)
	out.DataIntegrationScore = stageScoreOr(out.DataIntegrationScore, fb.DataScore)

	out.YearsInBusiness = nonNegative(out.YearsInBusiness)
	out.TeamSize = nonNegative(out.TeamSize)
	out.MarketingBudget = nonNegativeF(out.MarketingBudget)
	out.RetentionBudget = nonNegativeF(out.RetentionBudget)

	return out
}

// ValidateCritical reports whether monthly revenue, total customers and
// average order value were supplied as strictly positive values. Callers use
// it on the raw form to decide whether the defaulted results can be trusted.
func ValidateCritical(form domain.AuditFormData) bool {
	return form.MonthlyRevenue > 0 &&
		form.TotalCustomers > 0 &&
		form.AverageOrderValue > 0
}

func normalizeIndustry(industry string) string {
	industry = strings.ToLower(strings.TrimSpace(industry))
	if industry == "" {
		return defaultIndustry
	}
	return industry
}

func positiveOr(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}

func positiveIntOr(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}

func shareOf(total int, share float64) int {
	n := int(float64(total) * share)
	if n < 1 {
		return 1
	}
	return n
}

func stageScoreOr(v, fallback int) int {
	if v <= 0 {
		v = fallback
	}
	if v < minStageScore {
		return minStageScore
	}
	if v > maxStageScore {
		return maxStageScore
	}
	return v
}

func platformOrNone(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || strings.EqualFold(p, domain.NoPlatform) {
		return domain.NoPlatform
	}
	return p
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func nonNegativeF(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
