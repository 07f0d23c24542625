package model

import (
	"errors"
)

// PlantParams defines the physical and economic parameters of the plant.
// Units:
// - CapacityMW: MW
// - CapacityFactor: fraction 0..1
// - FuelCostPerMWh: $/MWh produced
// - FuelCostPerRefueling: $ per refueling cycle (alternative to FuelCostPerMWh)
// - RefuelingCycleMonths / MaintenanceIntervalMonths: 30-day months
type PlantParams struct {
	Name                      string
	CapacityMW                float64
	CapacityFactor            float64
	FuelCostPerMWh            float64
	FuelCostPerRefueling      float64
	RefuelingCycleMonths      int
	MaintenanceDays           int
	MaintenanceIntervalMonths int
}

// NewPlant applies defaults and validates the parameters.
func NewPlant(params PlantParams) (PlantParams, error) {
	p := params
	p.Normalize()
	if err := p.Validate(); err != nil {
		return PlantParams{}, err
	}
	return p, nil
}

// Normalize fills in defaults for unset cycle lengths.
// Zero means "not provided" for these fields; a plant with no maintenance at
// all is expressed with MaintenanceDays=0.
func (p *PlantParams) Normalize() {
	if p.RefuelingCycleMonths == 0 {
		p.RefuelingCycleMonths = 18
	}
	if p.MaintenanceIntervalMonths == 0 {
		p.MaintenanceIntervalMonths = 12
	}
}

func (p PlantParams) Validate() error {
	if p.CapacityMW <= 0 {
		return errors.New("CapacityMW must be > 0")
	}
	if p.CapacityFactor <= 0 || p.CapacityFactor > 1 {
		return errors.New("CapacityFactor must be in (0, 1]")
	}
	if p.FuelCostPerMWh < 0 {
		return errors.New("FuelCostPerMWh must be >= 0")
	}
	if p.FuelCostPerRefueling < 0 {
		return errors.New("FuelCostPerRefueling must be >= 0")
	}
	if p.RefuelingCycleMonths <= 0 {
		return errors.New("RefuelingCycleMonths must be > 0")
	}
	if p.MaintenanceDays < 0 {
		return errors.New("MaintenanceDays must be >= 0")
	}
	if p.MaintenanceIntervalMonths <= 0 {
		return errors.New("MaintenanceIntervalMonths must be > 0")
	}
	return nil
}

// EffectiveFuelCostPerMWh resolves the per-MWh fuel cost. A direct per-MWh
// cost wins; otherwise a per-refueling total is amortized over the energy
// produced in one cycle (30-day months at nominal output).
func (p PlantParams) EffectiveFuelCostPerMWh() float64 {
	if p.FuelCostPerMWh != 0 || p.FuelCostPerRefueling == 0 {
		return p.FuelCostPerMWh
	}
	hoursPerCycle := float64(p.RefuelingCycleMonths) * 30 * 24
	energyPerCycle := p.CapacityMW * p.CapacityFactor * hoursPerCycle
	return p.FuelCostPerRefueling / energyPerCycle
}
