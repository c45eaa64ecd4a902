package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	_ "github.com/workdesk/workdesk/docs"
	"github.com/workdesk/workdesk/internal/config"
	"github.com/workdesk/workdesk/internal/middleware"
	"github.com/workdesk/workdesk/internal/modules/handler"
	"github.com/workdesk/workdesk/internal/modules/serializer"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config           *config.Config
	Log              *zap.Logger
	Entities         []handler.Routes
	SettingsHandler  *handler.SettingsHandler
	DashboardHandler *handler.DashboardHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	serializer.SetLogger(d.Log)

	r := gin.New()
	// append-only kinds answer 405 to PATCH and DELETE
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(middleware.OtelTracing(d.Config.App.Name))
		r.Use(middleware.TraceID())
	}

	r.Use(middleware.ZapLogger(d.Log))
	r.Use(middleware.Metrics())

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "pong"}) })

		entities := v1.Group("/entities")
		for _, h := range d.Entities {
			h.Register(entities.Group("/" + h.Kind()))
		}

		settings := v1.Group("/settings")
		{
			settings.GET("", d.SettingsHandler.GetSettings)
			settings.PATCH("", d.SettingsHandler.UpdateSettings)
		}

		v1.GET("/dashboard", d.DashboardHandler.GetDashboard)
	}
	return r
}
