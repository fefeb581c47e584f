package audit

import (
	"math"
	"testing"
	"time"

	"github.com/de-tools/retention-audit/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func sampleForm() domain.AuditFormData {
	return domain.AuditFormData{
		CompanyName:             "Acme Apparel",
		Industry:                "Fashion",
		MonthlyRevenue:          800000,
		AverageOrderValue:       1500,
		TotalCustomers:          2000,
		AverageCustomerLifespan: 24,
		CustomerAcquisitionCost: 600,
		PurchaseFrequency:       2.5,
		RepeatPurchaseRate:      30,
		CartAbandonmentRate:     72,
		ReturnRate:              8,
		EmailOpenRate:           22,
		EmailClickRate:          2.5,
		EmailConversionRate:     1,
		ActiveFlows:             2,
		AcquisitionScore:        6,
		ActivationScore:         5,
		NurtureScore:            4,
		RetentionScore:          5,
		WinbackScore:            3,
		AdvocacyScore:           4,
		EmailPlatform:           "Klaviyo",
		AnalyticsPlatform:       "GA4",
		HasSegmentation:         true,
		DataQualityScore:        4,
	}
}

func newTestCalculator(settings Settings) *Calculator {
	c := NewCalculator(settings)
	c.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	c.newID = func() string { return "audit-1" }
	return c
}

func TestCalculateCLV(t *testing.T) {
	form := ApplyDefaults(domain.AuditFormData{
		AverageOrderValue:       1500,
		PurchaseFrequency:       2.5,
		AverageCustomerLifespan: 24,
	}, DefaultFallbacks())

	first := CalculateCLV(form)
	second := CalculateCLV(form)

	assert.Equal(t, 7500.0, first)
	assert.Equal(t, first, second)
	assert.Greater(t, first, 0.0)
}

func TestCalculateChurnRate(t *testing.T) {
	t.Run("supplied churn wins", func(t *testing.T) {
		form := ApplyDefaults(domain.AuditFormData{ChurnRate: 7.5}, DefaultFallbacks())
		assert.Equal(t, 7.5, CalculateChurnRate(form))
	})

	t.Run("implied from lifespan and repeat rate", func(t *testing.T) {
		form := ApplyDefaults(sampleForm(), DefaultFallbacks())
		// (100/24 + 70/12) / 2
		assert.Equal(t, 5.0, CalculateChurnRate(form))
	})
}

func TestCalculate_SampleForm(t *testing.T) {
	calc := newTestCalculator(DefaultSettings())

	res := calc.Calculate(sampleForm())

	assert.Equal(t, "audit-1", res.ID)
	assert.Equal(t, "Acme Apparel", res.CompanyName)
	assert.Equal(t, "fashion", res.Industry)

	t.Run("financial metrics", func(t *testing.T) {
		assert.Equal(t, 7500.0, res.Financial.CLV)
		assert.Equal(t, 3000.0, res.Financial.MarginAdjustedCLV)
		assert.Equal(t, 12.5, res.Financial.LTVToCAC)
		assert.Equal(t, 5.0, res.Financial.ChurnRate)
		assert.Equal(t, 95.0, res.Financial.RetentionRate)
		assert.Equal(t, 40000.0, res.Financial.RevenueAtRisk)
	})

	t.Run("category scores", func(t *testing.T) {
		assert.Equal(t, map[domain.Category]float64{
			domain.CategoryAcquisition: 72,
			domain.CategoryActivation:  43,
			domain.CategoryNurture:     45,
			domain.CategoryRetention:   54,
			domain.CategoryWinback:     36,
			domain.CategoryAdvocacy:    41,
		}, res.CategoryScores)
		assert.Equal(t, 49.0, res.OverallScore)
	})

	t.Run("gaps against fashion benchmark", func(t *testing.T) {
		assert.Equal(t, -14.0, res.Gaps[domain.CategoryAcquisition])
		assert.Equal(t, 19.0, res.Gaps[domain.CategoryActivation])
		assert.Equal(t, 10.0, res.Gaps[domain.CategoryNurture])
		assert.Equal(t, -2.0, res.Gaps[domain.CategoryRetention])
		assert.Equal(t, 6.0, res.Gaps[domain.CategoryWinback])
		assert.Equal(t, 7.0, res.Gaps[domain.CategoryAdvocacy])
	})

	t.Run("maturity", func(t *testing.T) {
		assert.Equal(t, 0.25, res.TechStackCompleteness)
		assert.Equal(t, domain.MaturityBeginner, res.MaturityLevel)
	})

	t.Run("opportunities ranked by revenue", func(t *testing.T) {
		require.Len(t, res.Opportunities, 4)

		order := make([]domain.Category, 0, len(res.Opportunities))
		for _, o := range res.Opportunities {
			order = append(order, o.Category)
		}
		assert.Equal(t, []domain.Category{
			domain.CategoryActivation,
			domain.CategoryNurture,
			domain.CategoryWinback,
			domain.CategoryAdvocacy,
		}, order)

		top := res.Opportunities[0]
		assert.InDelta(t, 213750, top.ProjectedRevenue, 0.01)
		assert.InDelta(t, 55200, top.Investment, 0.01)
		assert.Equal(t, 3.87, top.ROI)
		assert.Equal(t, 3.1, top.PaybackMonths)
		assert.Equal(t, domain.EffortLow, top.Effort)
		assert.Equal(t, 72.0, top.Confidence)

		assert.Equal(t, domain.EffortMedium, res.Opportunities[1].Effort)
	})

	t.Run("roadmap", func(t *testing.T) {
		require.Len(t, res.Roadmap, 3)

		foundation := res.Roadmap[0]
		assert.Equal(t, "Foundation", foundation.Name)
		assert.InDelta(t, 333750, foundation.ExpectedRevenue, 0.01)
		assert.InDelta(t, 145800, foundation.RequiredInvestment, 0.01)
		assert.Len(t, foundation.Initiatives, 5)

		optimization := res.Roadmap[1]
		assert.InDelta(t, 150000, optimization.ExpectedRevenue, 0.01)
		assert.Len(t, optimization.Initiatives, 3)

		scale := res.Roadmap[2]
		assert.Equal(t, 0.0, scale.ExpectedRevenue)
		assert.Len(t, scale.Initiatives, 4)
	})

	t.Run("recommendations", func(t *testing.T) {
		require.Len(t, res.Recommendations, 6)
		assert.Contains(t, res.Recommendations[0], "Activation is 19 points below benchmark")
	})
}

func TestCalculate_ScoresStayInRange(t *testing.T) {
	calc := newTestCalculator(DefaultSettings())

	extreme := domain.AuditFormData{
		MonthlyRevenue:          1e9,
		AverageOrderValue:       1e6,
		TotalCustomers:          1e7,
		AverageCustomerLifespan: 0.1,
		CustomerAcquisitionCost: 0.01,
		PurchaseFrequency:       1000,
		RepeatPurchaseRate:      100,
		EmailOpenRate:           100,
		EmailClickRate:          100,
		EmailConversionRate:     100,
		AcquisitionScore:        10,
		ActivationScore:         10,
		NurtureScore:            10,
		RetentionScore:          10,
		WinbackScore:            10,
		AdvocacyScore:           10,
	}

	forms := sampleForms()
	forms["extreme"] = extreme

	for name, form := range forms {
		t.Run(name, func(t *testing.T) {
			res := calc.Calculate(form)

			assert.GreaterOrEqual(t, res.OverallScore, 0.0)
			assert.LessOrEqual(t, res.OverallScore, 100.0)
			for c, score := range res.CategoryScores {
				assert.GreaterOrEqual(t, score, 0.0, c)
				assert.LessOrEqual(t, score, 100.0, c)
			}
			assertFinite(t, res)
		})
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	calc := newTestCalculator(DefaultSettings())
	assert.Equal(t, calc.Calculate(sampleForm()), calc.Calculate(sampleForm()))
}

func TestCalculate_InjectedBenchmarks(t *testing.T) {
	settings := DefaultSettings()
	settings.Benchmarks = BenchmarkTable{
		"default": row(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
	}
	calc := newTestCalculator(settings)

	res := calc.Calculate(sampleForm())

	assert.Empty(t, res.Opportunities)
	for _, gap := range res.Gaps {
		assert.LessOrEqual(t, gap, 0.0)
	}
	assert.Equal(t, []string{
		"Cart abandonment of 72% is high. Add abandoned cart flows across email and SMS.",
		"Data quality is limiting. Fix tracking and consolidate customer data before scaling campaigns.",
	}, res.Recommendations)
}

func assertFinite(t *testing.T, res domain.AuditResults) {
	t.Helper()
	values := []float64{
		res.OverallScore,
		res.TechStackCompleteness,
		res.Financial.CLV,
		res.Financial.MarginAdjustedCLV,
		res.Financial.LTVToCAC,
		res.Financial.ChurnRate,
		res.Financial.RetentionRate,
		res.Financial.RevenueAtRisk,
	}
	for _, o := range res.Opportunities {
		values = append(values, o.ProjectedRevenue, o.Investment, o.ROI, o.PaybackMonths, o.Confidence)
	}
	for _, p := range res.Roadmap {
		values = append(values, p.ExpectedRevenue, p.RequiredInvestment)
	}
	for _, v := range values {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "non-finite value %v", v)
	}
}

func TestCalculate_Concurrent(t *testing.T) {
	calc := newTestCalculator(DefaultSettings())
	want := calc.Calculate(sampleForm())

	results := make([]domain.AuditResults, 32)
	var g errgroup.Group
	for i := range results {
		i := i
		g.Go(func() error {
			results[i] = calc.Calculate(sampleForm())
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for _, res := range results {
		assert.Equal(t, want, res)
	}
}

func TestCalculate_ExtremeAmountsStayFinite(t *testing.T) {
	forms := map[string]domain.AuditFormData{
		"huge aov": {
			MonthlyRevenue:    1e6,
			TotalCustomers:    10,
			AverageOrderValue: 1e308,
			PurchaseFrequency: 10,
		},
		"huge revenue": {
			MonthlyRevenue:    1e308,
			TotalCustomers:    10,
			AverageOrderValue: 100,
			ChurnRate:         50,
		},
		"huge everything": {
			MonthlyRevenue:          math.MaxFloat64,
			TotalCustomers:          math.MaxInt32,
			AverageOrderValue:       math.MaxFloat64,
			PurchaseFrequency:       math.MaxFloat64,
			AverageCustomerLifespan: math.MaxFloat64,
			CustomerAcquisitionCost: math.SmallestNonzeroFloat64,
		},
	}

	calc := newTestCalculator(DefaultSettings())
	for name, form := range forms {
		t.Run(name, func(t *testing.T) {
			res := calc.Calculate(form)
			assertFinite(t, res)
			for _, gap := range res.Gaps {
				assert.False(t, math.IsNaN(gap) || math.IsInf(gap, 0))
			}
		})
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 1.24, round(1.236, 2))
	assert.Equal(t, 0.0, round(math.Inf(1), 2))
	assert.Equal(t, 0.0, round(math.Inf(-1), 2))
	assert.Equal(t, 0.0, round(math.NaN(), 2))
	assert.Equal(t, 1e307, round(1e307, 2))
}
