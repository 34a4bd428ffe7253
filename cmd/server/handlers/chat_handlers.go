package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solar-forecast/cmd/server/services"
	"solar-forecast/dto"
)

// HealthHandler godoc
// @Summary      Health check
// @Description  Verify the API is up
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       / [get]
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{
			Status:  "healthy",
			Message: "Solar Forecast API is running",
		})
	}
}

// ChatHandler godoc
// @Summary      Chat query
// @Description  Answer a natural-language weather/solar question with a structured document
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ChatRequest  true  "chat request"
// @Success      200   {object}  dto.WeatherResponseDocument
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /chat/ [post]
func ChatHandler(svc *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_request", Details: err.Error()})
			return
		}

		result, chatErr := svc.Chat(c.Request.Context(), req.Message)
		if chatErr != nil {
			c.JSON(chatErr.StatusCode, dto.ErrorResponse{Error: chatErr.Message, Details: chatErr.Details})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
