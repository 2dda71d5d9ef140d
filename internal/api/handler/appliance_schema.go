package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/homebase/household-api/internal/core/domain"
)

type maintenanceRecordRequest struct {
	Date        string `json:"date"        validate:"required,date"`
	Description string `json:"description" validate:"required"`
}

type createApplianceRequest struct {
	Name                string                     `json:"name"                validate:"required"`
	Brand               string                     `json:"brand"`
	DateBought          string                     `json:"dateBought"          validate:"required,date"`
	NextMaintenanceDate string                     `json:"nextMaintenanceDate" validate:"omitempty,date"`
	MaintenanceHistory  []maintenanceRecordRequest `json:"maintenanceHistory"  validate:"omitempty,dive"`
}

type updateApplianceRequest struct {
	Name                *string                    `json:"name"                validate:"omitempty,min=1"`
	Brand               *string                    `json:"brand"`
	DateBought          *string                    `json:"dateBought"          validate:"omitempty,date"`
	NextMaintenanceDate *string                    `json:"nextMaintenanceDate" validate:"omitempty,date"`
	MaintenanceHistory  []maintenanceRecordRequest `json:"maintenanceHistory"  validate:"omitempty,dive"`
}

// ApplianceSchema is the wire format of /appliances.
var ApplianceSchema = ResourceSchema[domain.Appliance]{
	Kind:         domain.KindAppliance,
	DecodeCreate: decodeApplianceCreate,
	DecodePatch:  decodeAppliancePatch,
}

func decodeApplianceCreate(c echo.Context) (*domain.Appliance, error) {
	var req createApplianceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return nil, err
	}

	bought, err := parseDate(req.DateBought)
	if err != nil {
		return nil, domain.Invalid("dateBought must be a date")
	}
	next, err := parseOptionalDate(req.NextMaintenanceDate)
	if err != nil {
		return nil, domain.Invalid("nextMaintenanceDate must be a date")
	}
	history, err := maintenanceHistory(req.MaintenanceHistory)
	if err != nil {
		return nil, err
	}

	return &domain.Appliance{
		Name:                req.Name,
		Brand:               req.Brand,
		DateBought:          bought,
		NextMaintenanceDate: next,
		MaintenanceHistory:  history,
	}, nil
}

func decodeAppliancePatch(c echo.Context) (domain.Patch, error) {
	var req updateApplianceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return nil, err
	}

	b := newPatch().
		str("name", req.Name).
		str("brand", req.Brand).
		date("date_bought", req.DateBought).
		date("next_maintenance_date", req.NextMaintenanceDate)
	if req.MaintenanceHistory != nil {
		history, err := maintenanceHistory(req.MaintenanceHistory)
		if err != nil {
			return nil, err
		}
		b.set("maintenance_history", history)
	}
	return b.build()
}

func maintenanceHistory(in []maintenanceRecordRequest) ([]domain.MaintenanceRecord, error) {
	out := make([]domain.MaintenanceRecord, 0, len(in))
	for _, r := range in {
		d, err := parseDate(r.Date)
		if err != nil {
			return nil, domain.Invalid("maintenanceHistory.date must be a date")
		}
		out = append(out, domain.MaintenanceRecord{Date: d, Description: r.Description})
	}
	return out, nil
}
