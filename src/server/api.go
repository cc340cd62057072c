package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"contract-observer/src/analysis"
	"contract-observer/src/interfaces"
	"contract-observer/src/logger"
	"contract-observer/src/lookup"
	"contract-observer/src/models"
	"contract-observer/src/query"

	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------
// APIServer
// -----------------------------------------------------------------------------

type APIServer struct {
	Config   *models.MConfig
	Logger   *logger.Logger
	Store    interfaces.IContractStore
	Search   *query.SearchService
	Analyzer *analysis.SpendAnalyzer
	engine   *gin.Engine

	// WebSocket clients
	clients    map[*Client]struct{}
	broadcast  chan *models.MRefreshNotice // Strongly typed and Buffered Queue
	register   chan *Client
	unregister chan *Client

	// Local cache
	latestNotice *models.MRefreshNotice
	stateMutex   sync.RWMutex
}

// -----------------------------------------------------------------------------
// Constructor
// -----------------------------------------------------------------------------

func NewAPIServer(cfg *models.MConfig, log *logger.Logger, store interfaces.IContractStore, search *query.SearchService, analyzer *analysis.SpendAnalyzer) *APIServer {
	// Set Gin mode
	if cfg.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &APIServer{
		Config:   cfg,
		Logger:   log,
		Store:    store,
		Search:   search,
		Analyzer: analyzer,
		engine:   gin.Default(),
		clients:  make(map[*Client]struct{}),
		// Buffered channel to prevent lock/blocking
		broadcast:    make(chan *models.MRefreshNotice, 256),
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		latestNotice: &models.MRefreshNotice{Type: "INITIAL"},
	}

	// Add CORS Middleware
	s.engine.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if strings.HasPrefix(origin, "http://127.0.0.1:") || strings.HasPrefix(origin, "http://localhost:") {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// setup web routes
	s.setupRoutes()
	return s
}

// -----------------------------------------------------------------------------
// Route Setup
// -----------------------------------------------------------------------------

func (s *APIServer) setupRoutes() {
	// REST API endpoints
	s.engine.GET("/api/contracts", s.getContracts)
	s.engine.GET("/api/contracts/filters", s.getFilterOptions)
	s.engine.GET("/api/analytics/spend", s.getSpendReport)
	s.engine.GET("/api/analytics/contractors", s.getContractors)
	s.engine.GET("/api/lookup", s.getLookup)
	s.engine.GET("/api/config", s.getConfig)
	s.engine.GET("/api/health", s.getHealth)

	// WebSocket endpoint
	s.engine.GET("/ws", s.handleWebSocket)
}

// -----------------------------------------------------------------------------
// Server Lifecycle
// -----------------------------------------------------------------------------

func (s *APIServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Host, s.Config.Port)
	s.Logger.Info("Starting server on %s", addr)

	go s.handleWebsockets()

	return s.engine.Run(addr)
}

// -----------------------------------------------------------------------------

func (s *APIServer) Stop() error {
	// Clean shutdown
	close(s.broadcast)
	close(s.register)
	close(s.unregister)
	return nil
}

// -----------------------------------------------------------------------------
// Query Parsing Helpers
// -----------------------------------------------------------------------------

func intParam(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return fallback
	}
	return v
}

// -----------------------------------------------------------------------------

// listParam splits a comma separated query value, dropping empty entries.
func listParam(c *gin.Context, name string) []string {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// -----------------------------------------------------------------------------

// radiusParam reads the optional geographic constraint. All three values must
// be present for the constraint to take effect.
func radiusParam(c *gin.Context) (*models.MRadiusQuery, error) {
	latS, lngS, radS := c.Query("location_lat"), c.Query("location_lng"), c.Query("location_radius")
	if latS == "" && lngS == "" && radS == "" {
		return nil, nil
	}
	if latS == "" || lngS == "" || radS == "" {
		return nil, fmt.Errorf("location_lat, location_lng and location_radius must be provided together")
	}

	lat, err := strconv.ParseFloat(latS, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid location_lat: %q", latS)
	}
	lng, err := strconv.ParseFloat(lngS, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid location_lng: %q", lngS)
	}
	rad, err := strconv.ParseFloat(radS, 64)
	if err != nil || rad <= 0 {
		return nil, fmt.Errorf("invalid location_radius: %q", radS)
	}

	return &models.MRadiusQuery{
		Center:      models.MGeoPoint{Latitude: lat, Longitude: lng},
		RadiusMiles: rad,
	}, nil
}

// -----------------------------------------------------------------------------
// Route Handlers
// -----------------------------------------------------------------------------

func (s *APIServer) getContracts(c *gin.Context) {
	filters := models.MContractFilters{
		Keyword:              c.Query("keyword"),
		Type:                 c.Query("type"),
		DepartmentAgency:     c.Query("department_agency"),
		SubTier:              c.Query("sub_tier"),
		SetAside:             c.Query("set_aside"),
		NaicsCode:            c.Query("naics_code"),
		State:                c.Query("state"),
		City:                 c.Query("city"),
		PostedDateFrom:       c.Query("posted_date_from"),
		PostedDateTo:         c.Query("posted_date_to"),
		ResponseDeadlineFrom: c.Query("response_deadline_from"),
		ResponseDeadlineTo:   c.Query("response_deadline_to"),
		HasAwardAmount:       c.Query("has_award_amount") == "true",
		SortBy:               c.Query("sort_by"),
		SortOrder:            c.Query("sort_order"),
	}

	radius, err := radiusParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page := intParam(c, "page", 1)
	limit := intParam(c, "limit", s.Config.Analytics.DefaultLimit)

	result, err := s.Search.Search(c.Request.Context(), filters, page, limit, radius)
	if err != nil {
		s.Logger.Error("Contract search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// -----------------------------------------------------------------------------

func (s *APIServer) getSpendReport(c *gin.Context) {
	key, err := analysis.ParseAggregationKey(c.Query("group_by"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filters := models.MSpendFilters{
		States:        listParam(c, "states"),
		Agencies:      listParam(c, "agencies"),
		NaicsPrefixes: listParam(c, "naics"),
	}

	records, err := s.Store.FetchSpendRecords(filters)
	if err != nil {
		s.Logger.Error("Spend record fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "spend query failed"})
		return
	}

	limit := intParam(c, "limit", 10)
	report, err := s.Analyzer.Aggregate(records, key, limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// -----------------------------------------------------------------------------

func (s *APIServer) getContractors(c *gin.Context) {
	report, err := s.Store.ContractorAnalytics(
		c.Query("search"),
		c.Query("date_from"),
		c.Query("date_to"),
		intParam(c, "page", 1),
		intParam(c, "limit", s.Config.Analytics.DefaultLimit),
	)
	if err != nil {
		s.Logger.Error("Contractor analytics failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "contractor query failed"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// -----------------------------------------------------------------------------

func (s *APIServer) getFilterOptions(c *gin.Context) {
	opts, err := s.Store.DistinctFilterValues()
	if err != nil {
		s.Logger.Error("Filter value fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "filter query failed"})
		return
	}

	c.JSON(http.StatusOK, opts)
}

// -----------------------------------------------------------------------------

func (s *APIServer) getLookup(c *gin.Context) {
	switch c.Query("type") {
	case "state":
		code := c.Query("code")
		c.JSON(http.StatusOK, gin.H{"code": code, "name": lookup.StateName(code)})
	case "naics":
		code := c.Query("code")
		c.JSON(http.StatusOK, gin.H{"code": code, "title": lookup.NaicsTitle(code)})
	case "states":
		c.JSON(http.StatusOK, gin.H{"codes": lookup.StateCodes()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be state, naics or states"})
	}
}

// -----------------------------------------------------------------------------

func (s *APIServer) getConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":          s.Config.Name,
		"default_limit": s.Config.Analytics.DefaultLimit,
		"group_keys":    []string{"geography", "agency", "naics"},
	})
}

// -----------------------------------------------------------------------------

func (s *APIServer) getHealth(c *gin.Context) {
	count, err := s.Store.CountContracts(models.MContractFilters{})
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}

	s.stateMutex.RLock()
	connections := len(s.clients)
	timestamp := s.latestNotice.Timestamp
	s.stateMutex.RUnlock()

	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"contracts":     count,
		"connections":   connections,
		"latest_update": timestamp,
	})
}
