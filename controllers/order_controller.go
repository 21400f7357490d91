package controllers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
)

type OrderController struct {
	Sessions *services.Sessions
}

func (ctrl *OrderController) getPaginationParams(c *gin.Context, defaultLimit int) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}

	offset = (page - 1) * limit
	return page, limit, offset
}

func (ctrl *OrderController) generateLinks(c *gin.Context, page, limit, totalPages int) models.PaginationLinks {
	scheme := "https"
	if c.Request.TLS == nil {
		scheme = "http"
	}

	host := c.Request.Host
	path := c.Request.URL.Path
	queryParams := c.Request.URL.Query()

	makeURL := func(pageNum int) string {
		newParams := url.Values{}
		for key, values := range queryParams {
			if key != "page" {
				for _, value := range values {
					newParams.Add(key, value)
				}
			}
		}
		newParams.Set("page", strconv.Itoa(pageNum))
		newParams.Set("limit", strconv.Itoa(limit))
		return fmt.Sprintf("%s://%s%s?%s", scheme, host, path, newParams.Encode())
	}

	links := models.PaginationLinks{
		Self: makeURL(page),
	}
	if page > 1 {
		links.Prev = makeURL(page - 1)
	}
	if page < totalPages {
		links.Next = makeURL(page + 1)
	}
	return links
}

func (ctrl *OrderController) buildResponse(c *gin.Context, message string, data interface{}, page, limit, totalItems int) models.HATEOASResponse {
	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}

	if page > totalPages && totalPages > 0 {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	return models.HATEOASResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: totalItems,
			TotalPages: totalPages,
		},
		Links: ctrl.generateLinks(c, page, limit, totalPages),
	}
}

// newestFirst filters the append-ordered log and reverses it.
func newestFirst(orders []models.Order, status, search string) []models.Order {
	out := make([]models.Order, 0, len(orders))
	for i := len(orders) - 1; i >= 0; i-- {
		o := orders[i]
		if status != "" && !strings.EqualFold(string(o.Status), status) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(o.OrderID), strings.ToLower(search)) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// @Summary Order history
// @Description Orders placed by the current buyer, newest first
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by status"
// @Param search query string false "Search by order id"
// @Success 200 {object} models.HATEOASResponse
// @Router /orders [get]
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	page, limit, offset := ctrl.getPaginationParams(c, 10)

	orders, err := ctrl.Sessions.Orders(c.Request.Context(), owner(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to load orders", Error: err.Error()})
		return
	}

	filtered := newestFirst(orders, c.Query("status"), strings.TrimSpace(c.Query("search")))
	total := len(filtered)

	pageItems := []models.Order{}
	if offset < total {
		end := offset + limit
		if end > total {
			end = total
		}
		pageItems = filtered[offset:end]
	}

	c.JSON(http.StatusOK, ctrl.buildResponse(c, "Orders retrieved successfully", pageItems, page, limit, total))
}

// @Summary Get order by ID
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	id := c.Param("id")

	orders, err := ctrl.Sessions.Orders(c.Request.Context(), owner(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to load orders", Error: err.Error()})
		return
	}

	for _, o := range orders {
		if o.OrderID == id {
			c.JSON(http.StatusOK, models.Response{Success: true, Message: "Order retrieved successfully", Data: o})
			return
		}
	}
	c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Order not found"})
}
