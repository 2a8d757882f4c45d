package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/invincible-jha/aumai-jaldrishti/internal/budget"
	"github.com/invincible-jha/aumai-jaldrishti/internal/config"
	"github.com/invincible-jha/aumai-jaldrishti/internal/coverage"
	"github.com/invincible-jha/aumai-jaldrishti/internal/groundwater"
	"github.com/invincible-jha/aumai-jaldrishti/internal/ingest"
	"github.com/invincible-jha/aumai-jaldrishti/internal/loader"
	"github.com/invincible-jha/aumai-jaldrishti/internal/models"
	"github.com/invincible-jha/aumai-jaldrishti/internal/quality"
	"github.com/invincible-jha/aumai-jaldrishti/internal/rainfall"
	"github.com/invincible-jha/aumai-jaldrishti/internal/repository"
	"github.com/invincible-jha/aumai-jaldrishti/internal/sources"
	"github.com/invincible-jha/aumai-jaldrishti/internal/stream"
)

type Handler struct {
	cfg         *config.Config
	sources     *sources.Registry
	coverage    *coverage.Tracker
	groundwater *groundwater.Monitor
	rainfall    *rainfall.Analyzer
	analyzer    *quality.Analyzer
	planner     *budget.Planner
	ingest      *ingest.Manager
	store       repository.AlertRepository
	broadcaster *stream.Broadcaster
}

func NewHandler(
	cfg *config.Config,
	srcs *sources.Registry,
	cov *coverage.Tracker,
	gw *groundwater.Monitor,
	rain *rainfall.Analyzer,
	mgr *ingest.Manager,
	store repository.AlertRepository,
	broadcaster *stream.Broadcaster,
) *Handler {
	return &Handler{
		cfg:         cfg,
		sources:     srcs,
		coverage:    cov,
		groundwater: gw,
		rainfall:    rain,
		analyzer:    quality.NewAnalyzer(),
		planner:     budget.NewPlanner(),
		ingest:      mgr,
		store:       store,
		broadcaster: broadcaster,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.health)

	r.POST("/api/sources", h.postSources)
	r.POST("/api/quality", h.postQuality)
	r.POST("/api/fhtc", h.postFHTC)
	r.POST("/api/groundwater", h.postGroundwater)
	r.POST("/api/rainfall", h.postRainfall)

	r.GET("/api/sources", h.getSources)
	r.GET("/api/sources/:id", h.getSource)
	r.GET("/api/panchayats/:id/supply", h.getSupply)
	r.GET("/api/panchayats/:id/coverage", h.getCoverage)
	r.GET("/api/panchayats/:id/groundwater", h.getGroundwater)
	r.GET("/api/panchayats/:id/rainfall", h.getRainfall)
	r.GET("/api/coverage/summary", h.getCoverageSummary)
	r.GET("/api/budget", h.getBudget)

	r.GET("/api/alerts", h.getAlerts)
	r.GET("/api/alerts/stream", h.streamAlerts)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) postSources(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}
	list, err := loader.Sources(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.ingest.SubmitSources(list)
	c.JSON(http.StatusAccepted, gin.H{"accepted": len(list)})
}

// postQuality grades synchronously so the caller gets the verdict, and
// also submits to the pipeline so alerts persist and stream.
func (h *Handler) postQuality(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}
	list, err := loader.QualityReports(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results := make([]gin.H, 0, len(list))
	for i := range list {
		report := &list[i]
		results = append(results, gin.H{
			"report_id":    report.ReportID,
			"source_id":    report.SourceID,
			"grade":        h.analyzer.Grade(report),
			"contaminants": h.analyzer.IdentifyContaminants(report),
			"treatments":   h.analyzer.RecommendTreatment(report),
		})
	}
	h.ingest.SubmitQualityReports(list)
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (h *Handler) postFHTC(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}
	list, err := loader.FHTCStatuses(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.ingest.SubmitFHTCStatuses(list)
	c.JSON(http.StatusAccepted, gin.H{"accepted": len(list)})
}

func (h *Handler) postGroundwater(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}
	list, err := loader.GroundwaterLevels(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.ingest.SubmitGroundwaterLevels(list)
	c.JSON(http.StatusAccepted, gin.H{"accepted": len(list)})
}

func (h *Handler) postRainfall(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}
	list, err := loader.RainfallRecords(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.ingest.SubmitRainfallRecords(list)
	c.JSON(http.StatusAccepted, gin.H{"accepted": len(list)})
}

func (h *Handler) getSources(c *gin.Context) {
	var list []models.WaterSource
	if p := c.Query("panchayat"); p != "" {
		list = h.sources.ByPanchayat(p)
	} else if t := c.Query("type"); t != "" {
		list = h.sources.ByType(models.SourceType(t))
	}

	fc := toGeoJSON(list)
	c.Header("Content-Type", "application/geo+json")
	c.JSON(http.StatusOK, fc)
}

func (h *Handler) getSource(c *gin.Context) {
	s, ok := h.sources.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "source not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"source":    s,
		"yield_pct": s.YieldPct(),
	})
}

func (h *Handler) getSupply(c *gin.Context) {
	pid := c.Param("id")
	threshold := h.cfg.Analysis.LowYieldThresholdPct
	if t := c.Query("low_yield_threshold"); t != "" {
		if v, err := strconv.ParseFloat(t, 64); err == nil {
			threshold = v
		}
	}

	resp := gin.H{
		"panchayat_id":     pid,
		"total_supply_lpd": h.sources.TotalSupplyLPD(pid),
		"functional":       len(h.sources.Functional(pid)),
		"non_functional":   len(h.sources.NonFunctional(pid)),
		"low_yield":        h.sources.LowYield(pid, threshold),
	}

	if p := c.Query("population"); p != "" {
		if population, err := strconv.Atoi(p); err == nil && population >= 0 {
			resp["lpcd"] = h.coverage.LPCDCheck(pid, population, h.sources.TotalSupplyLPD(pid))
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getCoverage(c *gin.Context) {
	pid := c.Param("id")
	status, ok := h.coverage.Get(pid)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "panchayat not tracked"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":         status,
		"coverage_pct":   status.CoveragePct(),
		"functional_pct": status.FunctionalPct(),
		"demand_gap":     h.coverage.DemandGap(pid),
	})
}

func (h *Handler) getCoverageSummary(c *gin.Context) {
	target := h.cfg.Analysis.CoverageTargetPct
	if t := c.Query("target"); t != "" {
		if v, err := strconv.ParseFloat(t, 64); err == nil {
			target = v
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"summary":      h.coverage.Summary(),
		"below_target": h.coverage.BelowTarget(target),
	})
}

func (h *Handler) getGroundwater(c *gin.Context) {
	pid := c.Param("id")
	history := h.groundwater.ByPanchayat(pid)

	records := make([]gin.H, 0, len(history))
	for i := range history {
		r := &history[i]
		records = append(records, gin.H{
			"record":        r,
			"category":      groundwater.CategorizeLevel(r.DepthMeters),
			"change_meters": r.ChangeMeters(),
			"is_declining":  r.IsDeclining(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"panchayat_id":       pid,
		"records":            records,
		"declining_trend":    h.groundwater.DecliningTrend(pid, h.cfg.Analysis.TrendYears),
		"recharge_potential": h.groundwater.RechargePotential(pid),
	})
}

func (h *Handler) getRainfall(c *gin.Context) {
	pid := c.Param("id")
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year query parameter required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"panchayat_id":  pid,
		"year":          year,
		"annual_mm":     h.rainfall.AnnualTotal(pid, year),
		"normal_mm":     h.rainfall.AnnualNormal(pid, year),
		"deviation_pct": h.rainfall.AnnualDeviationPct(pid, year),
		"drought_risk":  h.rainfall.DroughtRisk(pid, year),
		"flood_risk":    h.rainfall.FloodRisk(pid, year),
		"monsoon":       h.rainfall.MonsoonPerformance(pid, year),
	})
}

func (h *Handler) getBudget(c *gin.Context) {
	population, err := strconv.Atoi(c.DefaultQuery("population", "0"))
	if err != nil || population < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid population"})
		return
	}
	livestock, err := strconv.Atoi(c.DefaultQuery("livestock", "0"))
	if err != nil || livestock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid livestock"})
		return
	}
	hectares, err := strconv.ParseFloat(c.DefaultQuery("irrigated_ha", "0"), 64)
	if err != nil || hectares < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid irrigated_ha"})
		return
	}
	supply, err := strconv.ParseFloat(c.DefaultQuery("supply_lpd", "0"), 64)
	if err != nil || supply < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid supply_lpd"})
		return
	}

	wb := h.planner.EstimateDemand(population, livestock, hectares)
	wb.TotalSupplyLPD = supply

	c.JSON(http.StatusOK, gin.H{
		"budget":               wb,
		"surplus_deficit_lpd":  wb.SurplusDeficitLPD(),
		"is_deficit":           wb.IsDeficit(),
		"sustainability_index": h.planner.SustainabilityIndex(&wb),
	})
}

func (h *Handler) getAlerts(c *gin.Context) {
	filter := repository.Filter{
		Limit:       50,
		Category:    c.Query("category"),
		PanchayatID: c.Query("panchayat"),
	}
	if l := c.Query("limit"); l != "" {
		if lim, err := strconv.Atoi(l); err == nil && lim > 0 && lim <= 500 {
			filter.Limit = lim
		}
	}
	if lv := c.Query("level"); lv != "" {
		level := models.AlertLevel(lv)
		switch level {
		case models.AlertLevelInfo, models.AlertLevelWarning, models.AlertLevelCritical, models.AlertLevelEmergency:
			filter.Level = &level
		}
	}

	alerts, err := h.store.ListAlerts(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch alerts"})
		return
	}
	if alerts == nil {
		alerts = []models.WaterAlert{}
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

// streamAlerts pushes live alerts over SSE until the client goes away.
func (h *Handler) streamAlerts(c *gin.Context) {
	id, ch := h.broadcaster.Subscribe()
	defer h.broadcaster.Unsubscribe(id)

	c.Stream(func(w io.Writer) bool {
		select {
		case alert, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("alert", alert)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
