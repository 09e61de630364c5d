package cost

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/datatypes"
)

type Category string

const (
	CategoryDevelopment   Category = "DEVELOPMENT"
	CategoryManufacturing Category = "MANUFACTURING"
	CategoryLaunch        Category = "LAUNCH"
	CategoryOperations    Category = "OPERATIONS"
	CategoryInsurance     Category = "INSURANCE"
	CategoryDeorbit       Category = "DEORBIT"
	CategoryRegulatory    Category = "REGULATORY"
)

var Categories = []Category{
	CategoryDevelopment,
	CategoryManufacturing,
	CategoryLaunch,
	CategoryOperations,
	CategoryInsurance,
	CategoryDeorbit,
	CategoryRegulatory,
}

// ParseCategory normalises a stored category name. ok is false for anything outside the seven buckets.
func ParseCategory(raw string) (Category, bool) {
	c := Category(strings.ToUpper(strings.TrimSpace(raw)))
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

type CostComponent struct {
	ID                        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	ComponentName             string         `gorm:"not null;column:component_name" json:"component_name"`
	ComponentCategory         string         `gorm:"not null;column:component_category;index" json:"component_category"`
	BaseCostUSD               float64        `gorm:"not null;column:base_cost_usd" json:"base_cost_usd"`
	CostPerUnit               *float64       `gorm:"column:cost_per_unit" json:"cost_per_unit,omitempty"`
	CostScalingFactor         float64        `gorm:"not null;column:cost_scaling_factor" json:"cost_scaling_factor"`
	CostUncertaintyPercentage *float64       `gorm:"column:cost_uncertainty_percentage" json:"cost_uncertainty_percentage,omitempty"`
	CostDrivers               datatypes.JSON `gorm:"column:cost_drivers" json:"cost_drivers"`
	ApplicableMissionTypes    datatypes.JSON `gorm:"column:applicable_mission_types" json:"applicable_mission_types"`
	ConfidenceLevel           *float64       `gorm:"column:confidence_level" json:"confidence_level,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (CostComponent) TableName() string { return "cost_components" }

func (c *CostComponent) MissionTypes() []string { return decodeStrings(c.ApplicableMissionTypes) }

func (c *CostComponent) Drivers() []string { return decodeStrings(c.CostDrivers) }

// AppliesTo reports whether missionType is listed. Components with no list apply to nothing.
func (c *CostComponent) AppliesTo(missionType string) bool {
	for _, t := range c.MissionTypes() {
		if t == missionType {
			return true
		}
	}
	return false
}

// StringList encodes values as a JSON array column.
func StringList(values ...string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}

func decodeStrings(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}
