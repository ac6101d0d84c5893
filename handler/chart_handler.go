package handler

import (
	"encoding/json"
	"errors"
	"go-charts-api/common"
	"go-charts-api/logger"
	"go-charts-api/service"
	"net/http"

	"github.com/sirupsen/logrus"
)

type ChartHandler struct {
	service *service.ChartService
}

func NewChartHandler(service *service.ChartService) *ChartHandler {
	return &ChartHandler{service: service}
}

// GetChart godoc
// @Summary      Get a chart dataset
// @Description  Returns the stored dataset for one of the known chart keys
// @Tags         charts
// @Produce      json
// @Param        key  path      string  true  "Chart key"  Enums(summary, reports)
// @Success      200  {object}  model.Chart
// @Failure      401  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Security     BearerAuth
// @Router       /api/charts/{key} [get]
func (h *ChartHandler) GetChart(w http.ResponseWriter, r *http.Request) *common.AppError {
	key := r.PathValue("key")

	subject, _ := r.Context().Value(SubjectKey).(string)
	log := logger.Log.WithFields(logrus.Fields{
		"subject":   subject,
		"chart_key": key,
	})
	log.Info("Get chart request received")

	chart, err := h.service.Fetch(r.Context(), key)
	if err != nil {
		// Unknown key and allowed-but-unseeded key share one wire response;
		// the service logs them apart.
		if errors.Is(err, service.ErrUnknownChartKey) || errors.Is(err, service.ErrChartNotFound) {
			return common.NewAppError(http.StatusNotFound, common.CodeChartNotFound, "Chart not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, common.CodeDependencyError, "Could not retrieve chart", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(chart)

	return nil
}
