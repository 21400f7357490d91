package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
)

type CartController struct {
	Sessions *services.Sessions
}

func (ctrl *CartController) cart(c *gin.Context) *services.CartStore {
	return ctrl.Sessions.Get(c.Request.Context(), owner(c)).Cart
}

// @Summary Get cart
// @Description Current cart items with derived total and item count
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved successfully",
		Data:    ctrl.cart(c).State(),
	})
}

// @Summary Add item
// @Description Add an item; quantities above maxQuantity are clamped
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param item body models.AddItemRequest true "Item"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request body", Error: err.Error()})
		return
	}

	state, err := ctrl.cart(c).AddItem(c.Request.Context(), req.Item(), req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Item added to cart", Data: state})
}

// @Summary Update quantity
// @Description Set an item's quantity; 0 or less removes it
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param body body models.UpdateQuantityRequest true "Quantity"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Quantity is required", Error: err.Error()})
		return
	}

	state, err := ctrl.cart(c).UpdateQuantity(c.Request.Context(), c.Param("id"), *req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart updated", Data: state})
}

// @Summary Remove item
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	state, err := ctrl.cart(c).RemoveItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Item removed from cart", Data: state})
}

// @Summary Clear cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	state, err := ctrl.cart(c).Clear(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart cleared", Data: state})
}

// @Summary Toggle cart drawer
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart/toggle [post]
func (ctrl *CartController) Toggle(c *gin.Context) {
	state := ctrl.cart(c).Toggle(c.Request.Context())
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart visibility updated", Data: state})
}

// @Summary Set cart drawer visibility
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.SetOpenRequest true "Visibility"
// @Success 200 {object} models.Response
// @Router /cart/open [put]
func (ctrl *CartController) SetOpen(c *gin.Context) {
	var req models.SetOpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Open flag is required", Error: err.Error()})
		return
	}
	state := ctrl.cart(c).SetOpen(c.Request.Context(), *req.Open)
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart visibility updated", Data: state})
}
