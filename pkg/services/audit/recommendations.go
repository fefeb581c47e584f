package audit

import (
	"fmt"
	"sort"

	"github.com/de-tools/retention-audit/pkg/models/domain"
)

var categoryAdvice = map[domain.Category]string{
	domain.CategoryAcquisition: "Shift budget toward channels that bring repeat buyers and track CAC by cohort.",
	domain.CategoryActivation:  "Tighten the first-purchase journey with cart recovery and onboarding offers.",
	domain.CategoryNurture:     "Add behavior-triggered email flows and test subject lines and send times.",
	domain.CategoryRetention:   "Introduce replenishment reminders, subscriptions or a points program.",
	domain.CategoryWinback:     "Target lapsed customers with a tiered winback sequence before they churn.",
	domain.CategoryAdvocacy:    "Collect reviews after delivery and reward referrals.",
}

// GenerateRecommendations returns advice for underperforming categories,
// largest gap first, followed by warnings on individual metrics.
func GenerateRecommendations(form domain.AuditFormData, fin domain.FinancialMetrics, gaps map[domain.Category]float64, t EngagementTargets) []string {
	var behind []domain.Category
	for _, c := range domain.Categories {
		if gaps[c] > 0 {
			behind = append(behind, c)
		}
	}
	sort.SliceStable(behind, func(i, j int) bool { return gaps[behind[i]] > gaps[behind[j]] })

	out := make([]string, 0, len(behind)+4)
	for _, c := range behind {
		out = append(out, fmt.Sprintf("%s is %.0f points below benchmark. %s", c.Title(), gaps[c], categoryAdvice[c]))
	}

	if fin.LTVToCAC < t.LTVToCAC {
		out = append(out, fmt.Sprintf("LTV:CAC is %.1f, below the healthy %.0f:1. Lower acquisition cost or raise repeat revenue.", fin.LTVToCAC, t.LTVToCAC))
	}
	if fin.ChurnRate > 5 {
		out = append(out, fmt.Sprintf("Monthly churn of %.1f%% puts %.0f of revenue at risk every month.", fin.ChurnRate, fin.RevenueAtRisk))
	}
	if form.CartAbandonmentRate > 70 {
		out = append(out, fmt.Sprintf("Cart abandonment of %.0f%% is high. Add abandoned cart flows across email and SMS.", form.CartAbandonmentRate))
	}
	if form.DataQualityScore < 5 {
		out = append(out, "Data quality is limiting. Fix tracking and consolidate customer data before scaling campaigns.")
	}
	if len(out) == 0 {
		out = append(out, "Performance meets or beats industry benchmarks. Focus on testing to reach top-quartile results.")
	}
	return out
}
