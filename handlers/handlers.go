package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"waste-impact-service/cache"
	"waste-impact-service/classification"
	"waste-impact-service/config"
	"waste-impact-service/geoarea"
	"waste-impact-service/impact"
	"waste-impact-service/metrics"
	"waste-impact-service/models"
	"waste-impact-service/service"
)

const dateLayout = "2006-01-02"

// ImpactHandler exposes the analytics over HTTP.
type ImpactHandler struct {
	svc   *service.Service
	store service.ReportStore
	cache *cache.Cache
	cfg   *config.Config
}

func NewImpactHandler(svc *service.Service, store service.ReportStore, c *cache.Cache, cfg *config.Config) *ImpactHandler {
	return &ImpactHandler{
		svc:   svc,
		store: store,
		cache: c,
		cfg:   cfg,
	}
}

// HealthCheck returns a simple health status
func (h *ImpactHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "waste-impact-service",
	})
}

// ImpactReportRequest is the admin endpoint's body.
type ImpactReportRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// GenerateImpactReport handles the authenticated full-analysis request.
func (h *ImpactHandler) GenerateImpactReport(c *gin.Context) {
	args := &ImpactReportRequest{}
	if err := c.BindJSON(args); err != nil {
		log.Errorf("Failed to parse impact report request: %v", err)
		return
	}

	start, end, err := parseRange(args.StartDate, args.EndDate)
	if err != nil {
		c.String(http.StatusBadRequest, fmt.Sprint(err))
		return
	}

	startedAt := time.Now()
	report, err := h.svc.GenerateImpactReport(c.Request.Context(), start, end)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	metrics.ReportsGeneratedTotal.WithLabelValues("admin").Inc()
	metrics.GenerationDurationSeconds.WithLabelValues("admin").Observe(time.Since(startedAt).Seconds())

	c.JSON(http.StatusOK, report)
}

// PublicImpactReport handles the unauthenticated variant. The date range is
// optional and defaults to the configured trailing window; results are
// served from the Redis snapshot cache when possible.
func (h *ImpactHandler) PublicImpactReport(c *gin.Context) {
	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -(h.cfg.PublicWindowDays - 1))

	startStr, hasStart := c.GetQuery("start_date")
	endStr, hasEnd := c.GetQuery("end_date")
	if hasStart || hasEnd {
		if !hasStart || !hasEnd {
			c.String(http.StatusBadRequest, "start_date and end_date must be provided together")
			return
		}
		var err error
		start, end, err = parseRange(startStr, endStr)
		if err != nil {
			c.String(http.StatusBadRequest, fmt.Sprint(err))
			return
		}
	}

	key := cache.Key(start, end)
	if h.cache != nil {
		cached, err := h.cache.Get(c.Request.Context(), key)
		switch {
		case err == nil:
			metrics.CacheRequestsTotal.WithLabelValues("hit").Inc()
			c.JSON(http.StatusOK, cached)
			return
		case err == cache.ErrMiss:
			metrics.CacheRequestsTotal.WithLabelValues("miss").Inc()
		default:
			metrics.CacheRequestsTotal.WithLabelValues("error").Inc()
			log.WithError(err).Warn("Snapshot cache unavailable, generating directly")
		}
	}

	startedAt := time.Now()
	report, err := h.svc.GeneratePublicImpactReport(c.Request.Context(), start, end)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	metrics.ReportsGeneratedTotal.WithLabelValues("public").Inc()
	metrics.GenerationDurationSeconds.WithLabelValues("public").Observe(time.Since(startedAt).Seconds())

	if h.cache != nil {
		if err := h.cache.Set(c.Request.Context(), key, report); err != nil {
			log.WithError(err).Warn("Failed to cache public snapshot")
		}
	}

	c.JSON(http.StatusOK, report)
}

// HotspotMap returns hazardous-category report counts bucketed into s2
// cells for map rendering.
func (h *ImpactHandler) HotspotMap(c *gin.Context) {
	start, end, err := parseRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		c.String(http.StatusBadRequest, fmt.Sprint(err))
		return
	}

	level := h.cfg.HotspotCellLevel
	if levelStr, ok := c.GetQuery("level"); ok {
		level, err = strconv.Atoi(levelStr)
		if err != nil {
			c.String(http.StatusBadRequest, fmt.Sprintf("Parsing level: %v", err))
			return
		}
	}

	reports, err := h.store.GetReportsByDateRange(c.Request.Context(), start, end)
	if err != nil {
		log.Errorf("Error fetching reports for hotspot map: %v", err)
		c.String(http.StatusInternalServerError, fmt.Sprint(err))
		return
	}

	hazardous := filterHazardous(reports)
	points := geoarea.AggregateHazardousMap(hazardous, level)

	c.JSON(http.StatusOK, gin.H{
		"points":    points,
		"total":     len(hazardous),
		"cell_size": level,
	})
}

func filterHazardous(reports []models.ReportRecord) []models.ReportRecord {
	var out []models.ReportRecord
	for i := range reports {
		category := classification.Classify(&reports[i])
		if impact.IsHazardousTier(impact.ProfileFor(category).Tier) {
			out = append(out, reports[i])
		}
	}
	return out
}

func (h *ImpactHandler) writeServiceError(c *gin.Context, err error) {
	switch err {
	case service.ErrInvalidDateRange, service.ErrMissingDateBound:
		c.String(http.StatusBadRequest, fmt.Sprint(err))
	default:
		log.Errorf("Error generating impact report: %v", err)
		c.String(http.StatusInternalServerError, fmt.Sprint(err))
	}
}

func parseRange(startStr, endStr string) (time.Time, time.Time, error) {
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date and end_date are required")
	}
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parsing start_date: %v", err)
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parsing end_date: %v", err)
	}
	return start, end, nil
}
