package domain

import (
	"strings"
	"time"
)

// MaintenanceRecord is one past service of an appliance.
type MaintenanceRecord struct {
	Date        time.Time `json:"date"        bson:"date"`
	Description string    `json:"description" bson:"description"`
}

// Appliance is a household device tracked for maintenance.
type Appliance struct {
	Ownership           `bson:",inline"`
	Name                string              `json:"name"                          bson:"name"`
	Brand               string              `json:"brand"                         bson:"brand"`
	DateBought          time.Time           `json:"dateBought"                    bson:"date_bought"`
	NextMaintenanceDate *time.Time          `json:"nextMaintenanceDate,omitempty" bson:"next_maintenance_date,omitempty"`
	MaintenanceHistory  []MaintenanceRecord `json:"maintenanceHistory"            bson:"maintenance_history"`
}

func (a *Appliance) Kind() ResourceKind { return KindAppliance }

func (a *Appliance) Normalize() error {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return Invalid("name is required")
	}
	if a.DateBought.IsZero() {
		return Invalid("dateBought is required")
	}
	if a.MaintenanceHistory == nil {
		a.MaintenanceHistory = []MaintenanceRecord{}
	}
	return nil
}
