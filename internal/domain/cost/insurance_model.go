package cost

import (
	"time"

	"gorm.io/datatypes"
)

type CoverageType string

const (
	CoveragePreLaunch           CoverageType = "PRE_LAUNCH"
	CoverageLaunch              CoverageType = "LAUNCH"
	CoverageInOrbitLife         CoverageType = "IN_ORBIT_LIFE"
	CoverageThirdPartyLiability CoverageType = "THIRD_PARTY_LIABILITY"
	CoverageComprehensive       CoverageType = "COMPREHENSIVE"
)

type InsuranceModel struct {
	ID                       int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	ModelName                string         `gorm:"not null;column:model_name" json:"model_name"`
	CoverageType             CoverageType   `gorm:"not null;column:coverage_type;index" json:"coverage_type"`
	BasePremiumRate          float64        `gorm:"not null;column:base_premium_rate" json:"base_premium_rate"`
	CoverageAmountUSD        float64        `gorm:"not null;column:coverage_amount_usd" json:"coverage_amount_usd"`
	DeductibleUSD            float64        `gorm:"not null;column:deductible_usd" json:"deductible_usd"`
	PolicyDurationMonths     int            `gorm:"not null;column:policy_duration_months" json:"policy_duration_months"`
	RiskFactors              datatypes.JSON `gorm:"column:risk_factors" json:"risk_factors"`
	PremiumAdjustments       datatypes.JSON `gorm:"column:premium_adjustments" json:"premium_adjustments"`
	ExclusionsJSON           datatypes.JSON `gorm:"column:exclusions" json:"exclusions"`
	MinimumSatelliteValueUSD *float64       `gorm:"column:minimum_satellite_value_usd" json:"minimum_satellite_value_usd,omitempty"`
	MaximumSatelliteValueUSD *float64       `gorm:"column:maximum_satellite_value_usd" json:"maximum_satellite_value_usd,omitempty"`
	ActiveStatus             bool           `gorm:"not null;column:active_status" json:"active_status"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (InsuranceModel) TableName() string { return "insurance_models" }

func (m *InsuranceModel) Exclusions() []string { return decodeStrings(m.ExclusionsJSON) }

// Covers reports whether value falls inside the model's bounds. A nil bound is open.
func (m *InsuranceModel) Covers(value float64) bool {
	if m.MinimumSatelliteValueUSD != nil && value < *m.MinimumSatelliteValueUSD {
		return false
	}
	if m.MaximumSatelliteValueUSD != nil && value > *m.MaximumSatelliteValueUSD {
		return false
	}
	return true
}
