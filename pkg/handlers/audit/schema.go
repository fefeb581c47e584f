package audit

import "github.com/xeipuuv/gojsonschema"

// Zero and negative numbers pass the schema; the calculator defaults them.
const requestSchemaJSON = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"company_name": {"type": "string"},
		"website": {"type": "string"},
		"industry": {"type": "string"},
		"business_model": {"type": "string"},
		"years_in_business": {"type": "integer"},
		"monthly_revenue": {"type": "number"},
		"annual_revenue": {"type": "number"},
		"average_order_value": {"type": "number"},
		"gross_margin": {"type": "number", "maximum": 100},
		"total_customers": {"type": "integer"},
		"new_customers_monthly": {"type": "integer"},
		"active_customers": {"type": "integer"},
		"average_customer_lifespan": {"type": "number"},
		"customer_acquisition_cost": {"type": "number"},
		"repeat_purchase_rate": {"type": "number", "maximum": 100},
		"purchase_frequency": {"type": "number"},
		"cart_abandonment_rate": {"type": "number", "maximum": 100},
		"return_rate": {"type": "number", "maximum": 100},
		"churn_rate": {"type": "number", "maximum": 100},
		"email_open_rate": {"type": "number", "maximum": 100},
		"email_click_rate": {"type": "number", "maximum": 100},
		"email_conversion_rate": {"type": "number", "maximum": 100},
		"active_flows": {"type": "integer"},
		"acquisition_score": {"type": "integer", "maximum": 10},
		"activation_score": {"type": "integer", "maximum": 10},
		"nurture_score": {"type": "integer", "maximum": 10},
		"retention_score": {"type": "integer", "maximum": 10},
		"winback_score": {"type": "integer", "maximum": 10},
		"advocacy_score": {"type": "integer", "maximum": 10},
		"email_platform": {"type": "string"},
		"sms_platform": {"type": "string"},
		"cdp_platform": {"type": "string"},
		"analytics_platform": {"type": "string"},
		"loyalty_platform": {"type": "string"},
		"reviews_platform": {"type": "string"},
		"has_segmentation": {"type": "boolean"},
		"has_personalization": {"type": "boolean"},
		"has_predictive_analytics": {"type": "boolean"},
		"has_ab_testing": {"type": "boolean"},
		"has_loyalty_program": {"type": "boolean"},
		"has_referral_program": {"type": "boolean"},
		"data_quality_score": {"type": "integer", "maximum": 10},
		"data_integration_score": {"type": "integer", "maximum": 10},
		"team_size": {"type": "integer"},
		"marketing_budget": {"type": "number"},
		"retention_budget": {"type": "number"},
		"contact_name": {"type": "string"},
		"contact_email": {"type": "string"},
		"contact_role": {"type": "string"}
	}
}`

var requestSchema = mustSchema(requestSchemaJSON)

func mustSchema(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(err)
	}
	return schema
}
