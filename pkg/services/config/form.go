package config

import (
	"fmt"

	"github.com/de-tools/retention-audit/pkg/models/domain"
	"github.com/spf13/viper"
)

// LoadForm reads an audit form from a YAML, JSON or TOML file. Keys follow
// the snake_case field names, e.g. monthly_revenue.
func LoadForm(path string) (domain.AuditFormData, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return domain.AuditFormData{}, fmt.Errorf("failed to read audit form: %w", err)
	}

	var form domain.AuditFormData
	if err := v.Unmarshal(&form); err != nil {
		return domain.AuditFormData{}, fmt.Errorf("failed to parse audit form: %w", err)
	}
	return form, nil
}
