package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lettaearth/intel/pkg/application/dto"
	"github.com/lettaearth/intel/pkg/domain/entities"
	"github.com/lettaearth/intel/pkg/infrastructure/news"
	"github.com/lettaearth/intel/pkg/infrastructure/reference"
	"github.com/lettaearth/intel/pkg/infrastructure/synthetic"
	"github.com/lettaearth/intel/pkg/interfaces/cli/output"
)

// Planner runs the planning pipeline over the current stores
type Planner interface {
	RunForecast(ctx context.Context, horizon int) ([]entities.ForecastPoint, error)
	RunSupplyPlan(ctx context.Context, horizon int, targetDOS float64) (*dto.PlanningResult, error)
	RunAllocation(ctx context.Context, product entities.ProductID, available entities.Quantity) (*dto.AllocationResult, error)
}

// Regenerator replaces the stores with a fresh synthetic dataset
type Regenerator interface {
	Regenerate(seed int64) (*synthetic.Dataset, error)
}

// HeadlineSource returns news for a commodity
type HeadlineSource interface {
	Headlines(ctx context.Context, query string, region news.Region) ([]news.Item, error)
}

// Defaults are used when a request omits a parameter
type Defaults struct {
	Horizon   int
	TargetDOS float64
	Seed      int64
}

// Handler serves the planning, reference and news endpoints
type Handler struct {
	planner   Planner
	datasets  Regenerator
	catalog   *reference.Catalog
	headlines HeadlineSource
	defaults  Defaults
	log       *logrus.Logger
}

// NewHandler creates a new API handler
func NewHandler(
	planner Planner,
	datasets Regenerator,
	catalog *reference.Catalog,
	headlines HeadlineSource,
	defaults Defaults,
	log *logrus.Logger,
) *Handler {
	return &Handler{
		planner:   planner,
		datasets:  datasets,
		catalog:   catalog,
		headlines: headlines,
		defaults:  defaults,
		log:       log,
	}
}

// Health reports liveness
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
}

// GetForecast returns the demand forecast for every product
func (h *Handler) GetForecast(c *gin.Context) {
	horizon, err := intQuery(c, "horizon", h.defaults.Horizon)
	if err != nil {
		badRequest(c, err)
		return
	}

	points, err := h.planner.RunForecast(c.Request.Context(), horizon)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"horizon": horizon, "forecast": points})
}

// GetSupplyPlan runs the full forecast and supply planning pipeline
func (h *Handler) GetSupplyPlan(c *gin.Context) {
	result, ok := h.runSupplyPlan(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, result)
}

// ExportSupplyPlan returns the supply plan as a CSV or XLSX attachment
func (h *Handler) ExportSupplyPlan(c *gin.Context) {
	format, err := output.ParseFormat(c.DefaultQuery("format", "csv"))
	if err != nil || (format != output.FormatCSV && format != output.FormatXLSX) {
		badRequest(c, fmt.Errorf("format must be csv or xlsx"))
		return
	}

	result, ok := h.runSupplyPlan(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := output.WritePlan(&buf, result, format); err != nil {
		h.log.WithError(err).Error("Failed to export supply plan")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export supply plan"})
		return
	}

	contentType := "text/csv"
	if format == output.FormatXLSX {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=supply_plan.%s", format))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func (h *Handler) runSupplyPlan(c *gin.Context) (*dto.PlanningResult, bool) {
	horizon, err := intQuery(c, "horizon", h.defaults.Horizon)
	if err != nil {
		badRequest(c, err)
		return nil, false
	}
	targetDOS := h.defaults.TargetDOS
	if raw := c.Query("target_dos"); raw != "" {
		targetDOS, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			badRequest(c, fmt.Errorf("invalid target_dos %q", raw))
			return nil, false
		}
	}

	result, err := h.planner.RunSupplyPlan(c.Request.Context(), horizon, targetDOS)
	if err != nil {
		h.respondError(c, err)
		return nil, false
	}
	return result, true
}

// GetAllocation splits available units of a product across its accounts
func (h *Handler) GetAllocation(c *gin.Context) {
	product := c.Query("product")
	if product == "" {
		badRequest(c, fmt.Errorf("product is required"))
		return
	}
	raw := c.Query("available")
	if raw == "" {
		badRequest(c, fmt.Errorf("available is required"))
		return
	}
	available, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		badRequest(c, fmt.Errorf("invalid available %q", raw))
		return
	}

	result, err := h.planner.RunAllocation(c.Request.Context(), entities.ProductID(product), entities.Quantity(available))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RegenerateData replaces the stores with a new synthetic dataset
func (h *Handler) RegenerateData(c *gin.Context) {
	seed := h.defaults.Seed
	if raw := c.Query("seed"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			badRequest(c, fmt.Errorf("invalid seed %q", raw))
			return
		}
		seed = parsed
	}

	ds, err := h.datasets.Regenerate(seed)
	if err != nil {
		h.log.WithError(err).Error("Failed to regenerate dataset")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to regenerate dataset"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"seed":      seed,
		"sales":     len(ds.Sales),
		"inventory": len(ds.Inventory),
		"demand":    len(ds.Demand),
	})
}

// ListCommodities returns the preset commodities
func (h *Handler) ListCommodities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"commodities": reference.Presets()})
}

// GetCommodity returns supply regions, sector insights and facts for a commodity
func (h *Handler) GetCommodity(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Profile(c.Param("name")))
}

// GetNews returns recent headlines for a commodity in a region
func (h *Handler) GetNews(c *gin.Context) {
	commodity := c.Query("commodity")
	if commodity == "" {
		badRequest(c, fmt.Errorf("commodity is required"))
		return
	}
	region, err := news.ParseRegion(c.Query("region"))
	if err != nil {
		badRequest(c, err)
		return
	}

	commodity = h.catalog.Canonical(commodity)
	items, err := h.headlines.Headlines(c.Request.Context(), commodity, region)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"commodity": commodity,
		"region":    region,
		"items":     items,
	})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.WithError(err).WithField("path", c.FullPath()).Error("Request failed")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, entities.ErrInvalidParameter):
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrInsufficientData),
		errors.Is(err, entities.ErrMissingForecast),
		errors.Is(err, entities.ErrNoDemandSignal):
		return http.StatusUnprocessableEntity
	case errors.Is(err, news.ErrFetchFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func intQuery(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return v, nil
}
