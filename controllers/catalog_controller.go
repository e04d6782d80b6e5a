package controllers

import (
	"strconv"

	"pizzapalace/entity"
	"pizzapalace/pkg/resp"
	"pizzapalace/repository"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Repo *repository.CatalogRepository
}

func NewCatalogController(r *repository.CatalogRepository) *CatalogController {
	return &CatalogController{Repo: r}
}

// GET /pizzas?category=&available=
func (h *CatalogController) ListPizzas(c *gin.Context) {
	category := entity.PizzaCategory(c.Query("category"))
	if category != "" && !category.Valid() {
		resp.BadRequest(c, "unknown category")
		return
	}
	availableOnly := c.Query("available") == "true"

	pizzas, err := h.Repo.ListPizzas(category, availableOnly)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": pizzas})
}

// GET /pizzas/:id
func (h *CatalogController) GetPizza(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	pizza, err := h.Repo.GetPizza(uint(id))
	if err != nil {
		resp.NotFound(c, "pizza not found")
		return
	}
	resp.OK(c, pizza)
}

// GET /sizes
func (h *CatalogController) ListSizes(c *gin.Context) {
	sizes, err := h.Repo.ListSizes()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": sizes})
}

// GET /toppings
func (h *CatalogController) ListToppings(c *gin.Context) {
	toppings, err := h.Repo.ListToppings()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": toppings})
}
