package api

import "time"

type AuditRequest struct {
	CompanyName     string `json:"company_name"`
	Website         string `json:"website"`
	Industry        string `json:"industry"`
	BusinessModel   string `json:"business_model"`
	YearsInBusiness int    `json:"years_in_business"`

	MonthlyRevenue    float64 `json:"monthly_revenue"`
	AnnualRevenue     float64 `json:"annual_revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
	GrossMargin       float64 `json:"gross_margin"`

	TotalCustomers          int     `json:"total_customers"`
	NewCustomersMonthly     int     `json:"new_customers_monthly"`
	ActiveCustomers         int     `json:"active_customers"`
	AverageCustomerLifespan float64 `json:"average_customer_lifespan"`
	CustomerAcquisitionCost float64 `json:"customer_acquisition_cost"`

	RepeatPurchaseRate  float64 `json:"repeat_purchase_rate"`
	PurchaseFrequency   float64 `json:"purchase_frequency"`
	CartAbandonmentRate float64 `json:"cart_abandonment_rate"`
	ReturnRate          float64 `json:"return_rate"`
	ChurnRate           float64 `json:"churn_rate"`

	EmailOpenRate       float64 `json:"email_open_rate"`
	EmailClickRate      float64 `json:"email_click_rate"`
	EmailConversionRate float64 `json:"email_conversion_rate"`
	ActiveFlows         int     `json:"active_flows"`

	AcquisitionScore int `json:"acquisition_score"`
	ActivationScore  int `json:"activation_score"`
	NurtureScore     int `json:"nurture_score"`
	RetentionScore   int `json:"retention_score"`
	WinbackScore     int `json:"winback_score"`
	AdvocacyScore    int `json:"advocacy_score"`

	EmailPlatform     string `json:"email_platform"`
	SMSPlatform       string `json:"sms_platform"`
	CDPPlatform       string `json:"cdp_platform"`
	AnalyticsPlatform string `json:"analytics_platform"`
	LoyaltyPlatform   string `json:"loyalty_platform"`
	ReviewsPlatform   string `json:"reviews_platform"`

	HasSegmentation        bool `json:"has_segmentation"`
	HasPersonalization     bool `json:"has_personalization"`
	HasPredictiveAnalytics bool `json:"has_predictive_analytics"`
	HasABTesting           bool `json:"has_ab_testing"`
	HasLoyaltyProgram      bool `json:"has_loyalty_program"`
	HasReferralProgram     bool `json:"has_referral_program"`

	DataQualityScore     int `json:"data_quality_score"`
	DataIntegrationScore int `json:"data_integration_score"`

	TeamSize        int     `json:"team_size"`
	MarketingBudget float64 `json:"marketing_budget"`
	RetentionBudget float64 `json:"retention_budget"`

	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	ContactRole  string `json:"contact_role"`
}

type FinancialMetrics struct {
	CLV               float64 `json:"clv"`
	MarginAdjustedCLV float64 `json:"margin_adjusted_clv"`
	CAC               float64 `json:"cac"`
	LTVToCAC          float64 `json:"ltv_to_cac"`
	ChurnRate         float64 `json:"churn_rate"`
	RetentionRate     float64 `json:"retention_rate"`
	RevenueAtRisk     float64 `json:"revenue_at_risk"`
}

type Opportunity struct {
	Category         string  `json:"category"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	ProjectedRevenue float64 `json:"projected_revenue"`
	Investment       float64 `json:"investment"`
	ROI              float64 `json:"roi"`
	PaybackMonths    float64 `json:"payback_months"`
	Effort           string  `json:"effort"`
	Confidence       float64 `json:"confidence"`
}

type RoadmapPhase struct {
	Name               string   `json:"name"`
	Duration           string   `json:"duration"`
	ExpectedRevenue    float64  `json:"expected_revenue"`
	RequiredInvestment float64  `json:"required_investment"`
	Initiatives        []string `json:"initiatives"`
}

type AuditResults struct {
	ID                    string             `json:"id"`
	GeneratedAt           time.Time          `json:"generated_at"`
	CompanyName           string             `json:"company_name"`
	Industry              string             `json:"industry"`
	OverallScore          float64            `json:"overall_score"`
	MaturityLevel         string             `json:"maturity_level"`
	TechStackCompleteness float64            `json:"tech_stack_completeness"`
	CategoryScores        map[string]float64 `json:"category_scores"`
	Gaps                  map[string]float64 `json:"gaps"`
	Financial             FinancialMetrics   `json:"financial"`
	Opportunities         []Opportunity      `json:"opportunities"`
	Roadmap               []RoadmapPhase     `json:"roadmap"`
	Recommendations       []string           `json:"recommendations"`
}

type BenchmarkRange struct {
	Average     float64 `json:"average"`
	TopQuartile float64 `json:"top_quartile"`
}

type IndustryBenchmark struct {
	Industry   string                    `json:"industry"`
	Categories map[string]BenchmarkRange `json:"categories"`
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}
