package controllers

import (
	"github.com/gin-gonic/gin"

	"shopmart/libs"
	"shopmart/models"
	"shopmart/services"
)

type ProductController struct {
	productService *services.ProductService
	userService    *services.UserService
}

func NewProductController(productService *services.ProductService, userService *services.UserService) *ProductController {
	return &ProductController{productService: productService, userService: userService}
}

// GetAllProducts godoc
// @Summary List products
// @Description Get all products
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	products, err := ctrl.productService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Products retrieved", Data: products})
}

// GetProductByID godoc
// @Summary Get product
// @Description Get a single product by ID
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.productService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Product retrieved", Data: product})
}

// GetCategories godoc
// @Summary List categories
// @Description Get all distinct product categories
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /products/categories [get]
func (ctrl *ProductController) GetCategories(c *gin.Context) {
	categories, err := ctrl.productService.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Categories retrieved", Data: categories})
}

// GetProductsByCategory godoc
// @Summary List products by category
// @Description Get all products in a category
// @Tags Products
// @Produce json
// @Param category path string true "Category"
// @Success 200 {object} models.Response
// @Router /products/category/{category} [get]
func (ctrl *ProductController) GetProductsByCategory(c *gin.Context) {
	products, err := ctrl.productService.GetByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Products retrieved", Data: products})
}

// GetSellerProducts godoc
// @Summary List own products
// @Description Get all products owned by the calling admin
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/products [get]
func (ctrl *ProductController) GetSellerProducts(c *gin.Context) {
	products, err := ctrl.productService.GetBySeller(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Products retrieved", Data: products})
}

// CreateProduct godoc
// @Summary Create product
// @Description Create a product owned by the calling admin
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	seller, err := ctrl.userService.GetProfile(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	product, err := ctrl.productService.Create(c.Request.Context(), seller, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(201, models.Response{Success: true, Message: "Product added successfully", Data: product})
}

// UpdateProduct godoc
// @Summary Update product
// @Description Partially update a product owned by the calling admin
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.UpdateProductRequest true "Product"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	product, err := ctrl.productService.Update(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Product updated successfully", Data: product})
}

// DeleteProduct godoc
// @Summary Delete product
// @Description Delete a product owned by the calling admin
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	if err := ctrl.productService.Delete(c.Request.Context(), c.Param("id"), c.GetString("user_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Product deleted successfully"})
}

// UploadProductImage godoc
// @Summary Upload product image
// @Description Upload an image and attach its URL to a product owned by the calling admin
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Product ID"
// @Param image formData file true "Image file"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products/{id}/images [post]
func (ctrl *ProductController) UploadProductImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Image file required"})
		return
	}

	url, err := libs.UploadImage(c, file, "products")
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	product, err := ctrl.productService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if product.SellerID != c.GetString("user_id") {
		respondError(c, services.ErrProductNotFound)
		return
	}

	product, err = ctrl.productService.Update(c.Request.Context(), product.ID, product.SellerID, models.UpdateProductRequest{
		Images: append(product.Images, url),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Image uploaded", Data: product})
}
