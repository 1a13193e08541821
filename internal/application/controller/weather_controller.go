package controller

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"dashboard-api/internal/domain/usecase/weather"
	"dashboard-api/pkg/msg"
	"dashboard-api/pkg/util/numberutils"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.GetWeather)
	controller.api.GET("/weather/status", controller.GetStatus)
	controller.api.GET("/weather/day/:day", controller.GetForecastForDay)
	controller.api.POST("/weather/refresh", controller.TriggerRefresh)
	controller.api.GET("/weather/history", controller.GetHistory)
}

// GetWeather godoc
// @Summary Get current weather snapshot
// @Description Retrieve the latest normalized weather data with pipeline status
// @Tags weather
// @Accept json
// @Produce json
// @Success 200 {object} model.WeatherSnapshot "Weather data and status"
// @Failure 503 {object} model.WeatherSnapshot "No data loaded yet"
// @Router /weather [get]
func (controller *WeatherController) GetWeather(c echo.Context) error {
	snapshot := controller.useCase.GetSnapshot()
	if snapshot.Data == nil {
		return c.JSON(http.StatusServiceUnavailable, snapshot)
	}
	return c.JSON(http.StatusOK, snapshot)
}

// GetStatus godoc
// @Summary Get refresh pipeline status
// @Description Retrieve loading state, attempt counter and last error of the refresh pipeline
// @Tags weather
// @Accept json
// @Produce json
// @Success 200 {object} model.WeatherStatus "Pipeline status"
// @Router /weather/status [get]
func (controller *WeatherController) GetStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.GetStatus())
}

// GetForecastForDay godoc
// @Summary Get forecast for a day
// @Description Find the daily forecast whose day name matches the given day
// @Tags weather
// @Accept json
// @Produce json
// @Param day path string true "Day name (e.g. Tuesday)"
// @Success 200 {object} entity.DailyForecast "Daily forecast"
// @Failure 404 {object} map[string]string "No forecast for that day"
// @Failure 503 {object} map[string]string "No data loaded yet"
// @Router /weather/day/{day} [get]
func (controller *WeatherController) GetForecastForDay(c echo.Context) error {
	day := c.Param("day")

	forecast, err := controller.useCase.GetForecastForDay(day)
	if err != nil {
		if errors.Is(err, weather.ErrNoData) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": msg.GetMessage("weather.no-data")})
		}
		return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("weather.day-not-found", day)})
	}
	return c.JSON(http.StatusOK, forecast)
}

// TriggerRefresh godoc
// @Summary Trigger a weather refresh
// @Description Request an asynchronous refresh of the weather data
// @Tags weather
// @Accept json
// @Produce json
// @Success 202 {object} map[string]string "Refresh accepted"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /weather/refresh [post]
func (controller *WeatherController) TriggerRefresh(c echo.Context) error {
	requestID := uuid.New().String()

	if err := controller.useCase.TriggerRefresh(requestID, "manual"); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusAccepted, map[string]string{
		"message":   msg.GetMessage("weather.refresh-accepted"),
		"requestId": requestID,
	})
}

// GetHistory godoc
// @Summary Get refresh history
// @Description Retrieve refresh attempt records, newest first, with pagination
// @Tags weather
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} map[string]any "Paginated refresh records"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /weather/history [get]
func (controller *WeatherController) GetHistory(c echo.Context) error {
	page := numberutils.ToIntWithDefault(c.QueryParam("page"), 0)
	size := numberutils.ClampInt(numberutils.ToIntWithDefault(c.QueryParam("size"), 10), 1, 100)

	history, err := controller.useCase.GetHistory(page, size)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, history)
}
