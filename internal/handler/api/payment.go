package api

import (
	"errors"
	"net/http"

	reqdto "parkreserve/internal/handler/dto/request"
	resdto "parkreserve/internal/handler/dto/response"
	"parkreserve/internal/handler/middleware"
	"parkreserve/internal/usecase/commands"
	"parkreserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
	}
}

// @Summary Create payment intent
// @Description Create a payment intent for a reservation; the amount comes from the stored price
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePaymentIntentRequest true "Target reservation"
// @Success 201 {object} resdto.PaymentIntentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /payments/intent [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreatePaymentIntentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.paymentCommands.CreateIntent(c.Request.Context(), userID, commands.CreateIntentInput{
		ReservationID: req.ReservationID,
	})
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, commands.ErrNotPayable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation is already paid",
			})
		case errors.Is(err, commands.ErrPaymentProviderFailure):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment provider request failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromIntentResult(result))
}
