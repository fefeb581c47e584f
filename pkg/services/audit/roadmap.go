package audit

import "github.com/de-tools/retention-audit/pkg/models/domain"

type phaseDef struct {
	name     string
	duration string
	effort   domain.EffortTier
}

var phases = []phaseDef{
	{name: "Foundation", duration: "0-3 months", effort: domain.EffortLow},
	{name: "Optimization", duration: "3-6 months", effort: domain.EffortMedium},
	{name: "Scale", duration: "6-12 months", effort: domain.EffortHigh},
}

const minActiveFlows = 3

// BuildRoadmap groups opportunities into phases by effort and adds the
// baseline initiatives each phase needs regardless of gaps.
func BuildRoadmap(form domain.AuditFormData, opportunities []domain.Opportunity, completeness float64) []domain.RoadmapPhase {
	roadmap := make([]domain.RoadmapPhase, 0, len(phases))
	for i, p := range phases {
		phase := domain.RoadmapPhase{
			Name:        p.name,
			Duration:    p.duration,
			Initiatives: []string{},
		}
		for _, o := range opportunities {
			if o.Effort != p.effort {
				continue
			}
			phase.ExpectedRevenue += o.ProjectedRevenue
			phase.RequiredInvestment += o.Investment
			phase.Initiatives = append(phase.Initiatives, o.Title)
		}
		phase.Initiatives = append(phase.Initiatives, baselineInitiatives(i, form, completeness)...)
		if len(phase.Initiatives) == 0 {
			phase.Initiatives = append(phase.Initiatives, "Monitor performance against industry benchmarks")
		}
		phase.ExpectedRevenue = round(phase.ExpectedRevenue, 2)
		phase.RequiredInvestment = round(phase.RequiredInvestment, 2)
		roadmap = append(roadmap, phase)
	}
	return roadmap
}

func baselineInitiatives(phase int, form domain.AuditFormData, completeness float64) []string {
	var out []string
	switch phase {
	case 0:
		if form.DataQualityScore < 6 {
			out = append(out, "Clean up customer data and unify tracking across channels")
		}
		if form.ActiveFlows < minActiveFlows {
			out = append(out, "Set up core lifecycle flows: welcome, abandoned cart, post-purchase")
		}
	case 1:
		if !form.HasSegmentation {
			out = append(out, "Introduce RFM-based customer segmentation")
		}
		if !form.HasABTesting {
			out = append(out, "Start A/B testing key campaigns")
		}
		if !form.HasPersonalization {
			out = append(out, "Personalize content by segment and purchase history")
		}
	case 2:
		if completeness < 0.5 {
			out = append(out, "Fill gaps in the retention technology stack")
		}
		if !form.HasLoyaltyProgram {
			out = append(out, "Launch a loyalty program")
		}
		if !form.HasReferralProgram {
			out = append(out, "Launch a referral program")
		}
		if !form.HasPredictiveAnalytics {
			out = append(out, "Adopt predictive churn and CLV models")
		}
	}
	return out
}
