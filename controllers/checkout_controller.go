package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
)

type CheckoutController struct {
	Sessions *services.Sessions
}

func (ctrl *CheckoutController) checkout(c *gin.Context) *services.CheckoutService {
	return ctrl.Sessions.Get(c.Request.Context(), owner(c)).Checkout
}

func statusResponse(st services.CheckoutStatus) models.CheckoutStatusResponse {
	out := models.CheckoutStatusResponse{State: st.State.String(), LastOrder: st.LastOrder}
	if st.LastError != nil {
		out.LastError = st.LastError.Error()
	}
	return out
}

// @Summary Begin checkout
// @Description Opens the shipping step; fails on an empty cart
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Begin(c *gin.Context) {
	co := ctrl.checkout(c)
	if err := co.BeginCheckout(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Checkout started", Data: statusResponse(co.Status())})
}

// @Summary Submit checkout
// @Description Validates shipping info, takes payment and places the order
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.CheckoutRequest true "Shipping and payment"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 402 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout/submit [post]
func (ctrl *CheckoutController) Submit(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request body", Error: err.Error()})
		return
	}

	order, err := ctrl.checkout(c).Submit(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Order created successfully", Data: order})
}

// @Summary Retry checkout
// @Description Returns a failed checkout to the shipping step
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout/retry [post]
func (ctrl *CheckoutController) Retry(c *gin.Context) {
	co := ctrl.checkout(c)
	if err := co.Retry(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Checkout reopened", Data: statusResponse(co.Status())})
}

// @Summary Cancel checkout
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout [delete]
func (ctrl *CheckoutController) Cancel(c *gin.Context) {
	co := ctrl.checkout(c)
	if err := co.Reset(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Checkout cancelled", Data: statusResponse(co.Status())})
}

// @Summary Checkout status
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /checkout [get]
func (ctrl *CheckoutController) Status(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Checkout status retrieved",
		Data:    statusResponse(ctrl.checkout(c).Status()),
	})
}
