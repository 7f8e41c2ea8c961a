package routes

import (
	"net/http"

	"agrimitra/advisory"
	"agrimitra/auth"
	"agrimitra/crops"
	"agrimitra/home"
	"agrimitra/market"
	"agrimitra/middleware"
	"agrimitra/pest"
	"agrimitra/ratelim"
	"agrimitra/weather"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/v1/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/v1/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/v1/auth/token/refresh", ratelim.RateLimit(middleware.Authenticate(auth.RefreshToken)))
}

func AddCropRoutes(router *httprouter.Router) {
	// Registry CRUD
	router.POST("/api/v1/crops", middleware.Authenticate(crops.RegisterCrop))
	router.GET("/api/v1/crops", middleware.Authenticate(crops.GetMyCrops))
	router.GET("/api/v1/crops/:id", middleware.Authenticate(crops.GetCrop))
	router.PUT("/api/v1/crops/:id", middleware.Authenticate(crops.EditCrop))
	router.DELETE("/api/v1/crops/:id", middleware.Authenticate(crops.DeleteCrop))

	// Field logs
	router.POST("/api/v1/crops/:id/activities", middleware.Authenticate(crops.AddActivity))
	router.POST("/api/v1/crops/:id/costs", middleware.Authenticate(crops.AddCost))

	// Phenology
	router.GET("/api/v1/crops/:id/stage", middleware.Authenticate(crops.GetStage))
	router.GET("/api/v1/crops/:id/milestones", middleware.Authenticate(crops.GetMilestones))

	// Sowing suggestions
	router.GET("/api/v1/suggestions/crops", ratelim.RateLimit(crops.SuggestCrops))
}

func AddAdvisoryRoutes(router *httprouter.Router, h *advisory.Handlers) {
	router.GET("/api/v1/crops/:id/advisory", middleware.Authenticate(h.GetAdvisory))
	router.GET("/api/v1/crops/:id/irrigation", middleware.Authenticate(h.GetIrrigation))
	router.GET("/api/v1/crops/:id/risks", middleware.Authenticate(h.GetRisks))
	router.GET("/api/v1/crops/:id/harvest-plan", middleware.Authenticate(h.GetHarvestPlan))
}

func AddWeatherRoutes(router *httprouter.Router, h *weather.Handlers) {
	router.GET("/api/v1/weather", ratelim.RateLimit(h.GetWeather))
	router.GET("/ws/weather", h.LiveWeather)
}

func AddMarketRoutes(router *httprouter.Router, h *market.Handlers) {
	router.GET("/api/v1/market/:croptype", ratelim.RateLimit(h.GetQuote))
	router.GET("/api/v1/market/:croptype/history", ratelim.RateLimit(h.GetSeasonalHistory))
}

func AddPestRoutes(router *httprouter.Router, h *pest.Handlers) {
	router.POST("/api/v1/pest-reports", middleware.Authenticate(h.CreateReport))
	router.GET("/api/v1/pest-reports", middleware.Authenticate(h.GetMyReports))
}

func AddHomeRoutes(router *httprouter.Router) {
	router.GET("/api/v1/home/:apiRoute", middleware.OptionalAuth(home.GetHomeContent))
}
