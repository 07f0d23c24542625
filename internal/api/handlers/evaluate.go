package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"plant-econ/internal/api/models"
	"plant-econ/internal/config"
	"plant-econ/internal/simulate"
)

// EvaluateHandler runs full scenarios from flat parameter documents.
type EvaluateHandler struct{}

func NewEvaluateHandler() *EvaluateHandler {
	return &EvaluateHandler{}
}

// Evaluate handles POST /api/v1/evaluate. The body is the flat key-value
// parameter document (same shape as the on-disk parameter file).
func (h *EvaluateHandler) Evaluate(c *gin.Context) {
	var req config.ParamsJSON
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	params := req.ToScenarioParams()
	if err := params.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	id := uuid.NewString()
	log.Printf("[Evaluate] run=%s capacity=%.0fMW lifecycle=%d+%dy",
		id, params.Plant.CapacityMW, params.ConstructionYears, params.OperationalYears)

	res, err := simulate.RunScenario(params)
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity, "SCENARIO_FAILED", err.Error())
		return
	}

	metrics := models.ScenarioMetrics{
		LCOEUSDPerMWh:      res.LCOEUSDPerMWh,
		NPVMUSD:            res.NPVMUSD,
		TotalProfitUSD:     res.TotalProfitUSD,
		FirstYearEnergyMWh: res.FirstYearEnergyMWh,
	}
	if res.IRRFound {
		irr := res.IRR
		metrics.IRR = &irr
	}
	if res.PaybackReached {
		year := res.PaybackYear
		metrics.PaybackYear = &year
	}

	c.JSON(http.StatusOK, models.EvaluateResponse{
		ID:      id,
		Status:  "completed",
		Metrics: metrics,
	})
}
