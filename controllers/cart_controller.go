package controllers

import (
	"github.com/gin-gonic/gin"

	"shopmart/models"
	"shopmart/services"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// AddToCart godoc
// @Summary Add product to cart
// @Description Add a quantity of a product to the caller's cart, creating the cart on first use
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Add Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/add [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	userID := c.GetString("user_id")
	cart, err := ctrl.cartService.Add(c.Request.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Cart updated", Data: cart})
}

// GetCart godoc
// @Summary Get cart
// @Description Get the caller's cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID := c.GetString("user_id")

	cart, err := ctrl.cartService.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Cart retrieved", Data: cart})
}

// ReduceQuantity godoc
// @Summary Reduce quantity
// @Description Reduce the quantity of a cart line; the line is removed when it reaches zero
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ReduceQuantityRequest true "Reduce Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/reduce [post]
func (ctrl *CartController) ReduceQuantity(c *gin.Context) {
	var req models.ReduceQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	userID := c.GetString("user_id")
	cart, err := ctrl.cartService.ReduceQuantity(c.Request.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Product quantity reduced", Data: cart})
}

// RemoveFromCart godoc
// @Summary Remove product from cart
// @Description Remove a product line from the caller's cart; removing an absent line is a no-op
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.RemoveFromCartRequest true "Remove Request"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/remove [post]
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	var req models.RemoveFromCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	userID := c.GetString("user_id")
	cart, err := ctrl.cartService.Remove(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Product removed", Data: cart})
}
