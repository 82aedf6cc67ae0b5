package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Armeldehe/ivoirestore-client/internal/marketplace"
	"github.com/Armeldehe/ivoirestore-client/internal/validation"
)

// RegisterCatalogRoutes proxies product and review reads to the upstream API.
func RegisterCatalogRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()

	r.GET("/products", func(c *gin.Context) {
		params := marketplace.ListParams{
			Search:   c.Query("search"),
			Category: c.Query("category"),
			Boutique: c.Query("boutique"),
		}
		if page, err := strconv.Atoi(c.Query("page")); err == nil {
			params.Page = page
		}
		if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
			params.Limit = limit
		}

		list, err := cfg.Marketplace.GetProducts(c.Request.Context(), params)
		if err != nil {
			writeUpstreamError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.GET("/products/:id", func(c *gin.Context) {
		product, err := cfg.Marketplace.GetProduct(c.Request.Context(), c.Param("id"))
		if err != nil {
			if marketplace.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
				return
			}
			writeUpstreamError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": product})
	})

	r.GET("/products/:id/avis", func(c *gin.Context) {
		reviews, err := cfg.Marketplace.ListReviews(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeUpstreamError(c, cfg.Logger, err)
			return
		}
		if reviews == nil {
			reviews = []marketplace.Review{}
		}
		c.JSON(http.StatusOK, gin.H{"data": reviews})
	})

	r.POST("/avis", func(c *gin.Context) {
		var req validation.ReviewRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		review, err := cfg.Marketplace.CreateReview(c.Request.Context(), marketplace.ReviewRequest{
			Product: req.Product,
			Author:  req.Author,
			Rating:  req.Rating,
			Comment: req.Comment,
		})
		if err != nil {
			writeUpstreamError(c, cfg.Logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"data": review})
	})
}

func writeUpstreamError(c *gin.Context, logger *zap.Logger, err error) {
	logger.Warn("upstream call failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": userMessage(err)})
}
