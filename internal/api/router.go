// Package api exposes the assessment pipeline and the food log over HTTP.
package api

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Skufu/nutririsk/internal/auth"
	"github.com/Skufu/nutririsk/internal/cache"
	"github.com/Skufu/nutririsk/internal/explain"
	"github.com/Skufu/nutririsk/internal/logger"
	"github.com/Skufu/nutririsk/internal/riskmodel"
)

const maxBodyBytes = 1 << 20

type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators behind the routes. Only Log is required; a nil
// collaborator disables the feature it backs.
type Deps struct {
	Log        *logger.Logger
	DB         HealthChecker
	Foods      FoodStore
	Cache      *cache.Cache
	Explainer  *explain.Explainer
	Model      riskmodel.Predictor
	Auth       *auth.Authenticator
	StaticRoot string
}

type handler struct {
	log       *logger.Logger
	foods     FoodStore
	cache     *cache.Cache
	explainer *explain.Explainer
	model     riskmodel.Predictor
}

func NewRouter(d Deps) *gin.Engine {
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	if d.Auth == nil {
		d.Auth = auth.New("", d.Log)
	}
	h := &handler{
		log:       d.Log,
		foods:     d.Foods,
		cache:     d.Cache,
		explainer: d.Explainer,
		model:     d.Model,
	}

	router := gin.New()
	router.Use(
		requestID(),
		requestLogger(d.Log),
		gin.Recovery(),
		limitBodySize(maxBodyBytes),
		cors.New(cors.Config{
			AllowOrigins:  []string{"*"},
			AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
			ExposeHeaders: []string{requestIDHeader, "X-Cache"},
			MaxAge:        12 * time.Hour,
		}),
	)

	if d.StaticRoot != "" {
		router.Static("/static", d.StaticRoot)
		router.StaticFile("/", filepath.Join(d.StaticRoot, "index.html"))
		router.StaticFile("/styles.css", filepath.Join(d.StaticRoot, "styles.css"))
		router.StaticFile("/app.js", filepath.Join(d.StaticRoot, "app.js"))
		router.StaticFile("/config.js", filepath.Join(d.StaticRoot, "config.js"))
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/readyz", readiness(d.DB, d.Cache))

	v1 := router.Group("/api/v1")
	v1.POST("/assessments", h.assess)
	v1.POST("/symptoms/correlations", h.correlateSymptoms)

	user := v1.Group("", d.Auth.RequireAuth(), h.requireStore)
	user.GET("/food-items", h.listFoodItems)
	user.POST("/food-items", h.createFoodItem)
	user.GET("/food-items/:id", h.getFoodItem)
	user.PUT("/food-items/:id", h.updateFoodItem)
	user.DELETE("/food-items/:id", h.deleteFoodItem)
	user.GET("/food-logs", h.listEntries)
	user.POST("/food-logs", h.createEntry)
	user.GET("/food-logs/:id", h.getEntry)
	user.DELETE("/food-logs/:id", h.deleteEntry)
	user.GET("/summary/daily", h.dailySummary)
	user.GET("/summary/weekly", h.weeklySummary)
	user.GET("/deficiency", h.deficiency)
	user.GET("/recommendations/regional", h.regional)
	user.GET("/risk", h.risk)
	user.GET("/exercise", h.exercise)

	return router
}

// readiness reports the database and cache. Either failing a 2s ping makes
// the service degraded.
func readiness(db HealthChecker, kv *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		body := gin.H{"status": "ok", "db": "disabled"}
		status := http.StatusOK
		if db != nil {
			body["db"] = "ok"
			if err := db.Ping(ctx); err != nil {
				body["db"] = fmt.Sprintf("unhealthy: %v", err)
				status = http.StatusServiceUnavailable
			}
		}
		if kv != nil {
			body["cache"] = "ok"
			if err := kv.Ping(ctx); err != nil {
				body["cache"] = fmt.Sprintf("unhealthy: %v", err)
				status = http.StatusServiceUnavailable
			}
		}
		if status != http.StatusOK {
			body["status"] = "degraded"
		}
		c.JSON(status, body)
	}
}

func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
