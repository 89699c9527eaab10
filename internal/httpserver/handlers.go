package httpserver

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

type handlers struct {
	deps   Deps
	logger *log.Logger
}

// bind decodes the JSON body into v, answering 400 itself on failure.
func bind(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		abortMessage(c, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (h *handlers) register(c *gin.Context) {
	var in domain.Registration
	if !bind(c, &in) {
		return
	}
	resp, err := h.deps.AuthSvc.Register(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *handlers) login(c *gin.Context) {
	var in domain.Credentials
	if !bind(c, &in) {
		return
	}
	resp, err := h.deps.AuthSvc.Login(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handlers) getProfile(c *gin.Context) {
	p, err := h.deps.UserSvc.Profile(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handlers) updateProfile(c *gin.Context) {
	var in domain.ProfileUpdate
	if !bind(c, &in) {
		return
	}
	p, err := h.deps.UserSvc.Update(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handlers) listProducts(c *gin.Context) {
	q := domain.ProductQuery{
		CategoryID: c.Query("categoryId"),
		Search:     c.Query("search"),
	}
	var err error
	if q.Page, err = intQuery(c, "page"); err != nil {
		abortMessage(c, http.StatusBadRequest, "page must be a number")
		return
	}
	if q.Limit, err = intQuery(c, "limit"); err != nil {
		abortMessage(c, http.StatusBadRequest, "limit must be a number")
		return
	}
	products, err := h.deps.ProductSvc.List(c.Request.Context(), q)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *handlers) getProduct(c *gin.Context) {
	p, err := h.deps.ProductSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handlers) createProduct(c *gin.Context) {
	var in domain.ProductInput
	if !bind(c, &in) {
		return
	}
	p, err := h.deps.ProductSvc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *handlers) updateProduct(c *gin.Context) {
	var in domain.ProductUpdate
	if !bind(c, &in) {
		return
	}
	p, err := h.deps.ProductSvc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handlers) deleteProduct(c *gin.Context) {
	if err := h.deps.ProductSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

func (h *handlers) listCategories(c *gin.Context) {
	categories, err := h.deps.CategorySvc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *handlers) getCategory(c *gin.Context) {
	cat, err := h.deps.CategorySvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *handlers) createCategory(c *gin.Context) {
	var in domain.CategoryInput
	if !bind(c, &in) {
		return
	}
	cat, err := h.deps.CategorySvc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *handlers) updateCategory(c *gin.Context) {
	var in domain.CategoryUpdate
	if !bind(c, &in) {
		return
	}
	cat, err := h.deps.CategorySvc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *handlers) deleteCategory(c *gin.Context) {
	if err := h.deps.CategorySvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

func (h *handlers) listBanners(c *gin.Context) {
	banners, err := h.deps.BannerSvc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, banners)
}

func (h *handlers) listReviews(c *gin.Context) {
	reviews, err := h.deps.ReviewSvc.ListByProduct(c.Request.Context(), c.Query("productId"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *handlers) createReview(c *gin.Context) {
	var in domain.ReviewInput
	if !bind(c, &in) {
		return
	}
	rv, err := h.deps.ReviewSvc.Create(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, rv)
}

func (h *handlers) listCart(c *gin.Context) {
	items, err := h.deps.CartSvc.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *handlers) addToCart(c *gin.Context) {
	var in domain.AddToCartInput
	if !bind(c, &in) {
		return
	}
	item, err := h.deps.CartSvc.Add(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *handlers) updateCartItem(c *gin.Context) {
	var in domain.UpdateCartItemInput
	if !bind(c, &in) {
		return
	}
	item, err := h.deps.CartSvc.Update(c.Request.Context(), currentUserID(c), c.Param("id"), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *handlers) removeCartItem(c *gin.Context) {
	if err := h.deps.CartSvc.Remove(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
}

func (h *handlers) listWatchlist(c *gin.Context) {
	items, err := h.deps.WatchlistSvc.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *handlers) addToWatchlist(c *gin.Context) {
	var in domain.AddToWatchlistInput
	if !bind(c, &in) {
		return
	}
	item, err := h.deps.WatchlistSvc.Add(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *handlers) removeFromWatchlist(c *gin.Context) {
	if err := h.deps.WatchlistSvc.Remove(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from watchlist"})
}

func (h *handlers) createOrder(c *gin.Context) {
	var in domain.OrderRequest
	if !bind(c, &in) {
		return
	}
	order, err := h.deps.OrderSvc.Create(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *handlers) listOrders(c *gin.Context) {
	orders, err := h.deps.OrderSvc.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *handlers) getOrder(c *gin.Context) {
	order, err := h.deps.OrderSvc.Get(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func intQuery(c *gin.Context, key string) (int, error) {
	v := c.Query(key)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}
