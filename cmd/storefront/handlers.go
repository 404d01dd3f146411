package main

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/snackshop/internal/admin"
	"github.com/MikeMC777/snackshop/internal/auth"
	"github.com/MikeMC777/snackshop/internal/backend"
	"github.com/MikeMC777/snackshop/internal/cart"
	"github.com/MikeMC777/snackshop/internal/catalog"
	"github.com/MikeMC777/snackshop/internal/httpx"
	"github.com/MikeMC777/snackshop/internal/motion"
	"github.com/MikeMC777/snackshop/internal/recent"
)

// swagger:model selectCategoryRequest
type selectCategoryRequest struct {
	CategoryID string `json:"categoryId" example:"Salty"`
}

// swagger:model meResponse
type meResponse struct {
	User  auth.User `json:"user"`
	Admin bool      `json:"admin"`
}

func newMeResponse(id auth.Identity) meResponse {
	return meResponse{User: id.User, Admin: id.IsAdmin()}
}

// ---------- catalog ----------

// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {array} catalog.Category
// @Failure 502 {object} httpx.HTTPError
// @Router /categories [get]
func listCategoriesHandler(src catalog.Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		cats, err := src.Categories(c.Request.Context())
		if err != nil {
			httpx.FailBackend(c, err)
			return
		}
		c.JSON(http.StatusOK, cats)
	}
}

// @Summary Current browse state
// @Tags catalog
// @Produce json
// @Success 200 {object} catalog.State
// @Router /catalog [get]
func catalogStateHandler(reg *catalog.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, reg.Get(httpx.SID(c)).State())
	}
}

// @Summary Select a category and load its first page
// @Tags catalog
// @Accept json
// @Produce json
// @Param body body selectCategoryRequest true "category"
// @Success 200 {object} catalog.State
// @Failure 400 {object} httpx.HTTPError
// @Router /catalog/category [post]
func selectCategoryHandler(reg *catalog.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req selectCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json")
			return
		}
		st, err := reg.Get(httpx.SID(c)).SelectCategory(c.Request.Context(), strings.TrimSpace(req.CategoryID))
		if err != nil {
			httpx.FailBackend(c, err)
			return
		}
		c.JSON(http.StatusOK, st)
	}
}

// @Summary Load a page of the current category
// @Tags catalog
// @Produce json
// @Param page path int true "page number"
// @Success 200 {object} catalog.State
// @Failure 400 {object} httpx.HTTPError
// @Failure 502 {object} httpx.HTTPError
// @Failure 503 {object} httpx.HTTPError
// @Router /catalog/page/{page} [get]
func goToPageHandler(reg *catalog.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := strconv.Atoi(c.Param("page"))
		if err != nil {
			httpx.Fail(c, http.StatusBadRequest, "page must be a number")
			return
		}
		st, err := reg.Get(httpx.SID(c)).GoToPage(c.Request.Context(), n)
		if err != nil {
			httpx.FailBackend(c, err)
			return
		}
		c.JSON(http.StatusOK, st)
	}
}

// refreshCatalogHandler refetches the visitor's page. Failures keep the old
// state and still answer 200.
// @Summary Refetch the current page
// @Tags catalog
// @Produce json
// @Success 200 {object} catalog.State
// @Router /catalog/refresh [post]
func refreshCatalogHandler(reg *catalog.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		b := reg.Get(httpx.SID(c))
		st, err := b.Refresh(c.Request.Context())
		if err != nil {
			log.Printf("[catalog] refresh sid=%s: %v", httpx.SID(c), err)
		}
		c.JSON(http.StatusOK, st)
	}
}

// @Summary Feature the next product
// @Tags catalog
// @Produce json
// @Success 200 {object} catalog.State
// @Router /catalog/next [post]
func nextHandler(reg *catalog.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, reg.Get(httpx.SID(c)).Next())
	}
}

// @Summary Feature the previous product
// @Tags catalog
// @Produce json
// @Success 200 {object} catalog.State
// @Router /catalog/prev [post]
func prevHandler(reg *catalog.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, reg.Get(httpx.SID(c)).Prev())
	}
}

// @Summary Feature product idx of the page
// @Tags catalog
// @Produce json
// @Param idx path int true "index on the page"
// @Success 200 {object} catalog.State
// @Failure 400 {object} httpx.HTTPError
// @Router /catalog/feature/{idx} [post]
func featureHandler(reg *catalog.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		idx, err := strconv.Atoi(c.Param("idx"))
		if err != nil {
			httpx.Fail(c, http.StatusBadRequest, "idx must be a number")
			return
		}
		st, err := reg.Get(httpx.SID(c)).Feature(idx)
		if errors.Is(err, catalog.ErrOutOfRange) {
			httpx.Fail(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, st)
	}
}

// @Summary Show more of the grid
// @Tags catalog
// @Produce json
// @Success 200 {object} catalog.State
// @Router /catalog/more [post]
func loadMoreHandler(reg *catalog.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, reg.Get(httpx.SID(c)).LoadMore())
	}
}

// featuredHandler returns the featured product and records it as recently viewed.
// @Summary Featured product, recorded as recently viewed
// @Tags catalog
// @Produce json
// @Success 200 {object} catalog.Product
// @Failure 404 {object} httpx.HTTPError
// @Router /catalog/featured [get]
func featuredHandler(reg *catalog.Registry, rec *recent.List) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := reg.Get(httpx.SID(c)).Featured()
		if !ok {
			httpx.Fail(c, http.StatusNotFound, "no product featured")
			return
		}
		if _, err := rec.Record(c.Request.Context(), httpx.SID(c), recent.FromProduct(p)); err != nil {
			log.Printf("[recent] record sid=%s: %v", httpx.SID(c), err)
		}
		c.JSON(http.StatusOK, p)
	}
}

// @Summary Search products
// @Tags catalog
// @Produce json
// @Param q query string false "search text"
// @Success 200 {array} catalog.Product
// @Router /search [get]
func searchHandler(src catalog.Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := catalog.Search(c.Request.Context(), src, c.Query("q"))
		if err != nil {
			httpx.FailBackend(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// @Summary Customer reviews
// @Tags catalog
// @Produce json
// @Success 200 {array} catalog.Review
// @Router /reviews [get]
func reviewsHandler(reviews []catalog.Review) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, reviews)
	}
}

// @Summary Recently viewed products
// @Tags catalog
// @Produce json
// @Success 200 {array} recent.Item
// @Router /recent [get]
func recentHandler(rec *recent.List) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := rec.Items(c.Request.Context(), httpx.SID(c))
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "session unavailable")
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// ---------- cart ----------

// @Summary Get cart
// @Tags cart
// @Produce json
// @Success 200 {object} cart.View
// @Router /cart [get]
func getCartHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ct, err := svc.Get(c.Request.Context(), httpx.SID(c))
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "session unavailable")
			return
		}
		c.JSON(http.StatusOK, ct.View())
	}
}

// @Summary Add item to cart
// @Tags cart
// @Accept json
// @Produce json
// @Param body body cart.AddItemRequest true "item"
// @Success 200 {object} cart.View
// @Failure 400 {object} httpx.HTTPError
// @Router /cart/items [post]
func addCartItemHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cart.AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json")
			return
		}
		price := decimal.Zero
		if s := strings.TrimSpace(req.Price); s != "" {
			p, err := decimal.NewFromString(s)
			if err != nil {
				httpx.Fail(c, http.StatusBadRequest, "invalid price")
				return
			}
			price = p
		}
		id := req.ID
		if strings.TrimSpace(id) == "" {
			id = req.Title
		}
		title := req.Title
		if strings.TrimSpace(title) == "" {
			title = "Snack"
		}
		ct, err := svc.Add(c.Request.Context(), httpx.SID(c), cart.Item{
			ID: id, Title: title, Price: price, Qty: req.Qty, Image: req.Image,
		})
		if errors.Is(err, cart.ErrInvalidItem) {
			httpx.Fail(c, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "session unavailable")
			return
		}
		c.JSON(http.StatusOK, ct.View())
	}
}

// @Summary Remove item from cart
// @Tags cart
// @Produce json
// @Param id path string true "product id"
// @Success 200 {object} cart.View
// @Router /cart/items/{id} [delete]
func removeCartItemHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ct, err := svc.Remove(c.Request.Context(), httpx.SID(c), c.Param("id"))
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "session unavailable")
			return
		}
		c.JSON(http.StatusOK, ct.View())
	}
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} cart.View
// @Router /cart [delete]
func clearCartHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ct, err := svc.Clear(c.Request.Context(), httpx.SID(c))
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "session unavailable")
			return
		}
		c.JSON(http.StatusOK, ct.View())
	}
}

// ---------- auth ----------

// failAuth answers with the message the visitor should see.
func failAuth(c *gin.Context, err error) {
	var aerr *auth.Error
	if !errors.As(err, &aerr) {
		httpx.FailBackend(c, err)
		return
	}
	var apiErr *backend.APIError
	switch {
	case errors.Is(err, auth.ErrInvalidInput):
		httpx.Fail(c, http.StatusBadRequest, aerr.Message)
	case errors.Is(err, backend.ErrUnavailable):
		httpx.Fail(c, http.StatusServiceUnavailable, aerr.Message)
	case errors.As(err, &apiErr) && apiErr.Status < 500:
		httpx.Fail(c, apiErr.Status, aerr.Message)
	default:
		httpx.Fail(c, http.StatusBadGateway, aerr.Message)
	}
}

// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param body body auth.LoginRequest true "credentials"
// @Success 200 {object} meResponse
// @Failure 401 {object} httpx.HTTPError
// @Router /auth/login [post]
func loginHandler(client *auth.Client, sessions *auth.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req auth.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json")
			return
		}
		id, err := client.Login(c.Request.Context(), req.EmailOrUsername, req.Password)
		if err != nil {
			failAuth(c, err)
			return
		}
		if err := sessions.Save(c.Request.Context(), httpx.SID(c), id); err != nil {
			log.Printf("[auth] save session: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "session unavailable")
			return
		}
		c.JSON(http.StatusOK, newMeResponse(id))
	}
}

// @Summary Register and log in
// @Tags auth
// @Accept json
// @Produce json
// @Param body body auth.RegisterRequest true "account"
// @Success 201 {object} meResponse
// @Failure 400 {object} httpx.HTTPError
// @Router /auth/register [post]
func registerHandler(client *auth.Client, sessions *auth.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req auth.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json")
			return
		}
		id, err := client.Register(c.Request.Context(), req)
		if err != nil {
			failAuth(c, err)
			return
		}
		if err := sessions.Save(c.Request.Context(), httpx.SID(c), id); err != nil {
			log.Printf("[auth] save session: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "session unavailable")
			return
		}
		c.JSON(http.StatusCreated, newMeResponse(id))
	}
}

// @Summary Log out
// @Tags auth
// @Success 204
// @Router /auth/logout [post]
func logoutHandler(sessions *auth.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sessions.Logout(c.Request.Context(), httpx.SID(c)); err != nil {
			log.Printf("[auth] logout: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "session unavailable")
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} meResponse
// @Failure 401 {object} httpx.HTTPError
// @Router /auth/me [get]
func meHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := httpx.Identity(c)
		c.JSON(http.StatusOK, newMeResponse(id))
	}
}

// ---------- admin ----------

func failAdmin(c *gin.Context, err error) {
	if errors.Is(err, admin.ErrInvalid) {
		httpx.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	httpx.FailBackend(c, err)
}

func adminToken(c *gin.Context) string {
	id, _ := httpx.Identity(c)
	return id.Token
}

// @Summary List products
// @Tags admin
// @Produce json
// @Param q query string false "search text"
// @Param page query int false "page number"
// @Success 200 {object} catalog.Page
// @Failure 401 {object} httpx.HTTPError
// @Failure 403 {object} httpx.HTTPError
// @Router /admin/products [get]
func listAdminProductsHandler(svc *admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		p, err := svc.ListProducts(c.Request.Context(), c.Query("q"), page)
		if err != nil {
			httpx.FailBackend(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// @Summary Create product
// @Tags admin
// @Accept json
// @Produce json
// @Param body body admin.ProductInput true "product"
// @Success 201 {object} catalog.Product
// @Failure 400 {object} httpx.HTTPError
// @Failure 403 {object} httpx.HTTPError
// @Router /admin/products [post]
func createProductHandler(svc *admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in admin.ProductInput
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json")
			return
		}
		p, err := svc.CreateProduct(c.Request.Context(), adminToken(c), in)
		if err != nil {
			failAdmin(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// @Summary Update product
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "product id"
// @Param body body admin.ProductInput true "product"
// @Success 200 {object} catalog.Product
// @Failure 400 {object} httpx.HTTPError
// @Failure 401 {object} httpx.HTTPError
// @Failure 403 {object} httpx.HTTPError
// @Failure 502 {object} httpx.HTTPError
// @Router /admin/products/{id} [put]
func updateProductHandler(svc *admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in admin.ProductInput
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json")
			return
		}
		p, err := svc.UpdateProduct(c.Request.Context(), adminToken(c), c.Param("id"), in)
		if err != nil {
			failAdmin(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// @Summary Delete product
// @Tags admin
// @Param id path string true "product id"
// @Success 204
// @Failure 401 {object} httpx.HTTPError
// @Failure 403 {object} httpx.HTTPError
// @Failure 502 {object} httpx.HTTPError
// @Router /admin/products/{id} [delete]
func deleteProductHandler(svc *admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteProduct(c.Request.Context(), adminToken(c), c.Param("id")); err != nil {
			failAdmin(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary Create category
// @Tags admin
// @Accept json
// @Produce json
// @Param body body admin.CategoryInput true "category"
// @Success 201 {object} catalog.Category
// @Failure 400 {object} httpx.HTTPError
// @Failure 401 {object} httpx.HTTPError
// @Failure 403 {object} httpx.HTTPError
// @Failure 502 {object} httpx.HTTPError
// @Router /admin/categories [post]
func createCategoryHandler(svc *admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in admin.CategoryInput
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json")
			return
		}
		cat, err := svc.CreateCategory(c.Request.Context(), adminToken(c), in.Name)
		if err != nil {
			failAdmin(c, err)
			return
		}
		c.JSON(http.StatusCreated, cat)
	}
}

// ---------- showcase ----------

// @Summary Featured product animation keyframes
// @Tags showcase
// @Produce json
// @Param reduced query bool false "reduced motion"
// @Param samples query int false "arc samples"
// @Success 200 {object} motion.Variants
// @Router /showcase/variants [get]
func variantsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if reduced, _ := strconv.ParseBool(c.Query("reduced")); reduced {
			c.JSON(http.StatusOK, motion.ReducedVariants())
			return
		}
		samples, _ := strconv.Atoi(c.Query("samples"))
		if samples > 100 {
			samples = 100
		}
		c.JSON(http.StatusOK, motion.ArcVariants(samples))
	}
}

// ringHandler lays out the thumbnail ring. index and count default to the
// visitor's featured product and page size.
// @Summary Carousel thumbnail ring
// @Tags showcase
// @Produce json
// @Param index query int false "featured index"
// @Param count query int false "items on the page"
// @Param viewport query int false "viewport width"
// @Success 200 {array} motion.Thumb
// @Failure 400 {object} httpx.HTTPError
// @Router /showcase/ring [get]
func ringHandler(reg *catalog.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := reg.Get(httpx.SID(c)).State()
		index, count := st.Featured, len(st.Items)
		var err error
		if v := c.Query("index"); v != "" {
			if index, err = strconv.Atoi(v); err != nil {
				httpx.Fail(c, http.StatusBadRequest, "index must be a number")
				return
			}
		}
		if v := c.Query("count"); v != "" {
			if count, err = strconv.Atoi(v); err != nil {
				httpx.Fail(c, http.StatusBadRequest, "count must be a number")
				return
			}
		}
		if count <= 0 {
			httpx.Fail(c, http.StatusBadRequest, "no products to show")
			return
		}
		viewport, _ := strconv.Atoi(c.DefaultQuery("viewport", "1280"))
		c.JSON(http.StatusOK, motion.Ring(motion.ContainerFor(viewport), motion.ThumbSize, motion.ThumbCount, index, count))
	}
}
