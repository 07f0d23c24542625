package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"plant-econ/internal/api/models"
	"plant-econ/internal/model"
	"plant-econ/internal/simulate"
)

// SimulateHandler runs the hourly operation simulator.
type SimulateHandler struct {
	engine *simulate.Engine
}

func NewSimulateHandler() *SimulateHandler {
	return &SimulateHandler{engine: simulate.New()}
}

// Simulate handles POST /api/v1/simulate.
func (h *SimulateHandler) Simulate(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	series, err := resolveSeries(c.Request.Context(), req.Source, req.APIKey)
	if err != nil {
		respondFetchError(c, err)
		return
	}
	if len(series) == 0 {
		respondError(c, http.StatusUnprocessableEntity, "EMPTY_SERIES", "price source returned no data")
		return
	}

	plant, err := model.NewPlant(req.Plant.ToModelParams())
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_PLANT", err.Error())
		return
	}

	id := uuid.NewString()
	log.Printf("[Simulate] run=%s source=%s intervals=%d capacity=%.0fMW",
		id, req.Source.Type, len(series), plant.CapacityMW)

	res, err := h.engine.Run(series, plant)
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity, "SIMULATION_FAILED", err.Error())
		return
	}

	resp := models.SimulateResponse{
		ID:     id,
		Status: "completed",
		Summary: models.SimulateSummary{
			TotalProfit:    res.TotalProfit,
			TotalRevenue:   res.TotalRevenue,
			TotalFuelCost:  res.TotalFuelCost,
			TotalEnergyMWh: res.TotalEnergyMWh,
			Intervals:      len(res.Ledger),
			Window: models.TimeWindow{
				Start: res.Ledger[0].Timestamp,
				End:   res.Ledger[len(res.Ledger)-1].Timestamp,
			},
		},
	}
	if req.Options.IncludeLedger {
		resp.Ledger = make([]models.LedgerRow, len(res.Ledger))
		for i, row := range res.Ledger {
			resp.Ledger[i] = models.LedgerRow{
				Index:     row.Index,
				Timestamp: row.Timestamp,
				Price:     row.Price,
				EnergyMWh: row.EnergyMWh,
				Revenue:   row.Revenue,
				FuelCost:  row.FuelCost,
				Profit:    row.Profit,
				CumProfit: row.CumProfit,
			}
		}
	}
	c.JSON(http.StatusOK, resp)
}
