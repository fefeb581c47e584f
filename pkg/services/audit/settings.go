package audit

import "github.com/de-tools/retention-audit/pkg/models/domain"

// Settings contains every constant the calculator depends on. A Settings value
// is treated as immutable once handed to NewCalculator.
type Settings struct {
	// Fallbacks replace missing critical inputs
	Fallbacks Fallbacks
	// Benchmarks holds the expected category scores per industry
	Benchmarks BenchmarkTable
	// CategoryWeights is the relative importance of each stage in the overall score
	CategoryWeights map[domain.Category]float64
	// StageBlend is the share of a category score taken from the 1-10 self-assessment;
	// the rest comes from observed behavior
	StageBlend  map[domain.Category]float64
	Targets     EngagementTargets
	Opportunity OpportunitySettings
	Maturity    MaturitySettings
}

// EngagementTargets are the "healthy" values observed signals are scored against
type EngagementTargets struct {
	// LTVToCAC is the ratio that earns a full acquisition signal (default: 3)
	LTVToCAC float64
	// EmailOpenRate, EmailClickRate and EmailConversionRate are percentages (default: 40, 5, 2)
	EmailOpenRate       float64
	EmailClickRate      float64
	EmailConversionRate float64
	// RepeatPurchaseRate is the percentage that earns a full retention signal (default: 50)
	RepeatPurchaseRate float64
	// ChurnPenalty is the number of points lost per point of monthly churn (default: 10)
	ChurnPenalty float64
	// ReturnPenalty is the number of points lost per point of return rate (default: 2)
	ReturnPenalty float64
}

// OpportunitySettings drives revenue projection, ROI and payback
type OpportunitySettings struct {
	// Uplift is the share of the closed gap that turns into incremental revenue
	Uplift map[domain.Category]float64
	// BaseInvestment is the cost of an initiative for a category before gap scaling
	BaseInvestment map[domain.Category]float64
	// GapInvestmentScale grows investment with gap size: base * (1 + gap/scale) (default: 50)
	GapInvestmentScale float64
	// MaxPaybackMonths caps payback and is returned when no revenue is projected (default: 120)
	MaxPaybackMonths float64
	// LowEffortLimit and MediumEffortLimit split investments into effort tiers
	LowEffortLimit    float64
	MediumEffortLimit float64

	BaseConfidence            float64
	ConfidencePerQualityPoint float64
	LargeGapThreshold         float64
	LargeGapPenalty           float64
	MinConfidence             float64
	MaxConfidence             float64
}

// MaturitySettings holds the thresholds for each maturity tier
type MaturitySettings struct {
	AdvancedScore            float64
	AdvancedCompleteness     float64
	IntermediateScore        float64
	IntermediateCompleteness float64
}

// DefaultSettings returns the settings used by the public calculators
func DefaultSettings() Settings {
	return Settings{
		Fallbacks:  DefaultFallbacks(),
		Benchmarks: DefaultBenchmarks(),
		CategoryWeights: map[domain.Category]float64{
			domain.CategoryAcquisition: 0.15,
			domain.CategoryActivation:  0.15,
			domain.CategoryNurture:     0.15,
			domain.CategoryRetention:   0.25,
			domain.CategoryWinback:     0.15,
			domain.CategoryAdvocacy:    0.15,
		},
		StageBlend: map[domain.Category]float64{
			domain.CategoryAcquisition: 0.7,
			domain.CategoryActivation:  0.7,
			domain.CategoryNurture:     0.6,
			domain.CategoryRetention:   0.6,
			domain.CategoryWinback:     0.7,
			domain.CategoryAdvocacy:    0.7,
		},
		Targets: EngagementTargets{
			LTVToCAC:            3,
			EmailOpenRate:       40,
			EmailClickRate:      5,
			EmailConversionRate: 2,
			RepeatPurchaseRate:  50,
			ChurnPenalty:        10,
			ReturnPenalty:       2,
		},
		Opportunity: OpportunitySettings{
			Uplift: map[domain.Category]float64{
				domain.CategoryAcquisition: 0.10,
				domain.CategoryActivation:  0.15,
				domain.CategoryNurture:     0.20,
				domain.CategoryRetention:   0.30,
				domain.CategoryWinback:     0.15,
				domain.CategoryAdvocacy:    0.10,
			},
			BaseInvestment: map[domain.Category]float64{
				domain.CategoryAcquisition: 80000,
				domain.CategoryActivation:  40000,
				domain.CategoryNurture:     60000,
				domain.CategoryRetention:   100000,
				domain.CategoryWinback:     30000,
				domain.CategoryAdvocacy:    50000,
			},
			GapInvestmentScale:        50,
			MaxPaybackMonths:          120,
			LowEffortLimit:            60000,
			MediumEffortLimit:         120000,
			BaseConfidence:            60,
			ConfidencePerQualityPoint: 3,
			LargeGapThreshold:         30,
			LargeGapPenalty:           10,
			MinConfidence:             50,
			MaxConfidence:             95,
		},
		Maturity: MaturitySettings{
			AdvancedScore:            75,
			AdvancedCompleteness:     0.6,
			IntermediateScore:        50,
			IntermediateCompleteness: 0.3,
		},
	}
}
