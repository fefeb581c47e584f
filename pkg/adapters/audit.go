package adapters

import (
	"github.com/de-tools/retention-audit/pkg/models/api"
	"github.com/de-tools/retention-audit/pkg/models/domain"
	"github.com/de-tools/retention-audit/pkg/services/audit"
)

func MapAuditRequestApiToDomain(r api.AuditRequest) domain.AuditFormData {
	return domain.AuditFormData{
		CompanyName:     r.CompanyName,
		Website:         r.Website,
		Industry:        r.Industry,
		BusinessModel:   r.BusinessModel,
		YearsInBusiness: r.YearsInBusiness,

		MonthlyRevenue:    r.MonthlyRevenue,
		AnnualRevenue:     r.AnnualRevenue,
		AverageOrderValue: r.AverageOrderValue,
		GrossMargin:       r.GrossMargin,

		TotalCustomers:          r.TotalCustomers,
		NewCustomersMonthly:     r.NewCustomersMonthly,
		ActiveCustomers:         r.ActiveCustomers,
		AverageCustomerLifespan: r.AverageCustomerLifespan,
		CustomerAcquisitionCost: r.CustomerAcquisitionCost,

		RepeatPurchaseRate:  r.RepeatPurchaseRate,
		PurchaseFrequency:   r.PurchaseFrequency,
		CartAbandonmentRate: r.CartAbandonmentRate,
		ReturnRate:          r.ReturnRate,
		ChurnRate:           r.ChurnRate,

		EmailOpenRate:       r.EmailOpenRate,
		EmailClickRate:      r.EmailClickRate,
		EmailConversionRate: r.EmailConversionRate,
		ActiveFlows:         r.ActiveFlows,

		AcquisitionScore: r.AcquisitionScore,
		ActivationScore:  r.ActivationScore,
		NurtureScore:     r.NurtureScore,
		RetentionScore:   r.RetentionScore,
		WinbackScore:     r.WinbackScore,
		AdvocacyScore:    r.AdvocacyScore,

		EmailPlatform:     r.EmailPlatform,
		SMSPlatform:       r.SMSPlatform,
		CDPPlatform:       r.CDPPlatform,
		AnalyticsPlatform: r.AnalyticsPlatform,
		LoyaltyPlatform:   r.LoyaltyPlatform,
		ReviewsPlatform:   r.ReviewsPlatform,

		HasSegmentation:        r.HasSegmentation,
		HasPersonalization:     r.HasPersonalization,
		HasPredictiveAnalytics: r.HasPredictiveAnalytics,
		HasABTesting:           r.HasABTesting,
		HasLoyaltyProgram:      r.HasLoyaltyProgram,
		HasReferralProgram:     r.HasReferralProgram,

		DataQualityScore:     r.DataQualityScore,
		DataIntegrationScore: r.DataIntegrationScore,

		TeamSize:        r.TeamSize,
		MarketingBudget: r.MarketingBudget,
		RetentionBudget: r.RetentionBudget,

		ContactName:  r.ContactName,
		ContactEmail: r.ContactEmail,
		ContactRole:  r.ContactRole,
	}
}

func MapFinancialMetricsDomainToApi(f domain.FinancialMetrics) api.FinancialMetrics {
	return api.FinancialMetrics{
		CLV:               f.CLV,
		MarginAdjustedCLV: f.MarginAdjustedCLV,
		CAC:               f.CAC,
		LTVToCAC:          f.LTVToCAC,
		ChurnRate:         f.ChurnRate,
		RetentionRate:     f.RetentionRate,
		RevenueAtRisk:     f.RevenueAtRisk,
	}
}

func MapOpportunityDomainToApi(o domain.Opportunity) api.Opportunity {
	return api.Opportunity{
		Category:         string(o.Category),
		Title:            o.Title,
		Description:      o.Description,
		ProjectedRevenue: o.ProjectedRevenue,
		Investment:       o.Investment,
		ROI:              o.ROI,
		PaybackMonths:    o.PaybackMonths,
		Effort:           string(o.Effort),
		Confidence:       o.Confidence,
	}
}

func MapRoadmapPhaseDomainToApi(p domain.RoadmapPhase) api.RoadmapPhase {
	initiatives := make([]string, len(p.Initiatives))
	copy(initiatives, p.Initiatives)
	return api.RoadmapPhase{
		Name:               p.Name,
		Duration:           p.Duration,
		ExpectedRevenue:    p.ExpectedRevenue,
		RequiredInvestment: p.RequiredInvestment,
		Initiatives:        initiatives,
	}
}

func MapAuditResultsDomainToApi(r domain.AuditResults) api.AuditResults {
	res := api.AuditResults{
		ID:                    r.ID,
		GeneratedAt:           r.GeneratedAt,
		CompanyName:           r.CompanyName,
		Industry:              r.Industry,
		OverallScore:          r.OverallScore,
		MaturityLevel:         string(r.MaturityLevel),
		TechStackCompleteness: r.TechStackCompleteness,
		CategoryScores:        mapCategoryValues(r.CategoryScores),
		Gaps:                  mapCategoryValues(r.Gaps),
		Financial:             MapFinancialMetricsDomainToApi(r.Financial),
		Opportunities:         make([]api.Opportunity, 0, len(r.Opportunities)),
		Roadmap:               make([]api.RoadmapPhase, 0, len(r.Roadmap)),
		Recommendations:       append([]string{}, r.Recommendations...),
	}
	for _, o := range r.Opportunities {
		res.Opportunities = append(res.Opportunities, MapOpportunityDomainToApi(o))
	}
	for _, p := range r.Roadmap {
		res.Roadmap = append(res.Roadmap, MapRoadmapPhaseDomainToApi(p))
	}
	return res
}

func MapBenchmarksDomainToApi(table audit.BenchmarkTable) []api.IndustryBenchmark {
	out := make([]api.IndustryBenchmark, 0, len(table))
	for _, industry := range table.Industries() {
		b := api.IndustryBenchmark{
			Industry:   industry,
			Categories: map[string]api.BenchmarkRange{},
		}
		for c, r := range table[industry] {
			b.Categories[string(c)] = api.BenchmarkRange{Average: r.Average, TopQuartile: r.TopQuartile}
		}
		out = append(out, b)
	}
	return out
}

func mapCategoryValues(in map[domain.Category]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for c, v := range in {
		out[string(c)] = v
	}
	return out
}
