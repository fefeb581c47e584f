package domain

import "time"

// Category is a customer lifecycle stage scored by the audit.
type Category string

const (
	CategoryAcquisition Category = "acquisition"
	CategoryActivation  Category = "activation"
	CategoryNurture     Category = "nurture"
	CategoryRetention   Category = "retention"
	CategoryWinback     Category = "winback"
	CategoryAdvocacy    Category = "advocacy"
)

// Categories lists lifecycle stages in funnel order.
var Categories = []Category{
	CategoryAcquisition,
	CategoryActivation,
	CategoryNurture,
	CategoryRetention,
	CategoryWinback,
	CategoryAdvocacy,
}

// Title returns the display name of the category.
func (c Category) Title() string {
	switch c {
	case CategoryAcquisition:
		return "Acquisition"
	case CategoryActivation:
		return "Activation"
	case CategoryNurture:
		return "Nurture"
	case CategoryRetention:
		return "Retention"
	case CategoryWinback:
		return "Winback"
	case CategoryAdvocacy:
		return "Advocacy"
	default:
		return string(c)
	}
}

type MaturityLevel string

const (
	MaturityBeginner     MaturityLevel = "Beginner"
	MaturityIntermediate MaturityLevel = "Intermediate"
	MaturityAdvanced     MaturityLevel = "Advanced"
)

type EffortTier string

const (
	EffortLow    EffortTier = "Low"
	EffortMedium EffortTier = "Medium"
	EffortHigh   EffortTier = "High"
)

// NoPlatform marks a technology-stack slot with no tool in place.
const NoPlatform = "None"

// AuditFormData is the raw retention audit questionnaire.
// Percentages are expressed on a 0-100 scale, scores on a 1-10 scale.
type AuditFormData struct {
	// company profile
	CompanyName     string `mapstructure:"company_name"`
	Website         string `mapstructure:"website"`
	Industry        string `mapstructure:"industry"`
	BusinessModel   string `mapstructure:"business_model"`
	YearsInBusiness int    `mapstructure:"years_in_business"`

	// financial metrics
	MonthlyRevenue    float64 `mapstructure:"monthly_revenue"`
	AnnualRevenue     float64 `mapstructure:"annual_revenue"`
	AverageOrderValue float64 `mapstructure:"average_order_value"`
	GrossMargin       float64 `mapstructure:"gross_margin"`

	// customer base
	TotalCustomers          int     `mapstructure:"total_customers"`
	NewCustomersMonthly     int     `mapstructure:"new_customers_monthly"`
	ActiveCustomers         int     `mapstructure:"active_customers"`
	AverageCustomerLifespan float64 `mapstructure:"average_customer_lifespan"` // months
	CustomerAcquisitionCost float64 `mapstructure:"customer_acquisition_cost"`

	// behavior
	RepeatPurchaseRate  float64 `mapstructure:"repeat_purchase_rate"`
	PurchaseFrequency   float64 `mapstructure:"purchase_frequency"` // orders per customer per year
	CartAbandonmentRate float64 `mapstructure:"cart_abandonment_rate"`
	ReturnRate          float64 `mapstructure:"return_rate"`
	ChurnRate           float64 `mapstructure:"churn_rate"` // monthly, 0 means derive

	// channel engagement
	EmailOpenRate       float64 `mapstructure:"email_open_rate"`
	EmailClickRate      float64 `mapstructure:"email_click_rate"`
	EmailConversionRate float64 `mapstructure:"email_conversion_rate"`
	ActiveFlows         int     `mapstructure:"active_flows"`

	// lifecycle self-assessment
	AcquisitionScore int `mapstructure:"acquisition_score"`
	ActivationScore  int `mapstructure:"activation_score"`
	NurtureScore     int `mapstructure:"nurture_score"`
	RetentionScore   int `mapstructure:"retention_score"`
	WinbackScore     int `mapstructure:"winback_score"`
	AdvocacyScore    int `mapstructure:"advocacy_score"`

	// technology stack
	EmailPlatform     string `mapstructure:"email_platform"`
	SMSPlatform       string `mapstructure:"sms_platform"`
	CDPPlatform       string `mapstructure:"cdp_platform"`
	AnalyticsPlatform string `mapstructure:"analytics_platform"`
	LoyaltyPlatform   string `mapstructure:"loyalty_platform"`
	ReviewsPlatform   string `mapstructure:"reviews_platform"`

	// advanced capabilities
	HasSegmentation        bool `mapstructure:"has_segmentation"`
	HasPersonalization     bool `mapstructure:"has_personalization"`
	HasPredictiveAnalytics bool `mapstructure:"has_predictive_analytics"`
	HasABTesting           bool `mapstructure:"has_ab_testing"`
	HasLoyaltyProgram      bool `mapstructure:"has_loyalty_program"`
	HasReferralProgram     bool `mapstructure:"has_referral_program"`

	// data quality
	DataQualityScore     int `mapstructure:"data_quality_score"`
	DataIntegrationScore int `mapstructure:"data_integration_score"`

	// team and budget
	TeamSize        int     `mapstructure:"team_size"`
	MarketingBudget float64 `mapstructure:"marketing_budget"`
	RetentionBudget float64 `mapstructure:"retention_budget"`

	// contact
	ContactName  string `mapstructure:"contact_name"`
	ContactEmail string `mapstructure:"contact_email"`
	ContactRole  string `mapstructure:"contact_role"`
}

// StageScore returns the self-assessed 1-10 score for a lifecycle stage.
func (f AuditFormData) StageScore(c Category) int {
	switch c {
	case CategoryAcquisition:
		return f.AcquisitionScore
	case CategoryActivation:
		return f.ActivationScore
	case CategoryNurture:
		return f.NurtureScore
	case CategoryRetention:
		return f.RetentionScore
	case CategoryWinback:
		return f.WinbackScore
	case CategoryAdvocacy:
		return f.AdvocacyScore
	default:
		return 0
	}
}

// Platforms returns the technology stack in a fixed order.
func (f AuditFormData) Platforms() []string {
	return []string{
		f.EmailPlatform,
		f.SMSPlatform,
		f.CDPPlatform,
		f.AnalyticsPlatform,
		f.LoyaltyPlatform,
		f.ReviewsPlatform,
	}
}

// Capabilities returns the advanced capability flags in a fixed order.
func (f AuditFormData) Capabilities() []bool {
	return []bool{
		f.HasSegmentation,
		f.HasPersonalization,
		f.HasPredictiveAnalytics,
		f.HasABTesting,
		f.HasLoyaltyProgram,
		f.HasReferralProgram,
	}
}

type FinancialMetrics struct {
	CLV               float64
	MarginAdjustedCLV float64
	CAC               float64
	LTVToCAC          float64
	ChurnRate         float64 // monthly %
	RetentionRate     float64 // monthly %
	RevenueAtRisk     float64 // monthly
}

type Opportunity struct {
	Category         Category
	Title            string
	Description      string
	ProjectedRevenue float64 // annual
	Investment       float64
	ROI              float64 // multiplier
	PaybackMonths    float64
	Effort           EffortTier
	Confidence       float64 // %
}

type RoadmapPhase struct {
	Name               string
	Duration           string
	ExpectedRevenue    float64
	RequiredInvestment float64
	Initiatives        []string
}

type AuditResults struct {
	ID                    string
	GeneratedAt           time.Time
	CompanyName           string
	Industry              string
	OverallScore          float64
	MaturityLevel         MaturityLevel
	TechStackCompleteness float64
	CategoryScores        map[Category]float64
	Gaps                  map[Category]float64 // benchmark - actual
	Financial             FinancialMetrics
	Opportunities         []Opportunity
	Roadmap               []RoadmapPhase
	Recommendations       []string
}
