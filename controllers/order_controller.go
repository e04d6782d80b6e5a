package controllers

import (
	"errors"
	"log"

	"pizzapalace/pkg/resp"
	"pizzapalace/repository"
	"pizzapalace/services"
	"pizzapalace/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc     *services.OrderService
	CartSvc *services.CartService
}

func NewOrderController(s *services.OrderService, cart *services.CartService) *OrderController {
	return &OrderController{Svc: s, CartSvc: cart}
}

// POST /orders
//
// Checkout itself never mutates the cart; clearing it after a
// successful order is this handler's job.
func (h *OrderController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Checkout(uid, &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.CartSvc.Clear(uid); err != nil {
		// the order stands; the stale cart is only a cosmetic problem
		log.Printf("clear cart after checkout %s: %v", order.Number, err)
	}
	resp.Created(c, order)
}

// GET /orders/:number
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	order, err := h.Svc.GetByNumber(c.Param("number"), uid, utils.IsStaff(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		if errors.Is(err, services.ErrForbidden) {
			resp.Forbidden(c, "not your order")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /orders
func (h *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	orders, err := h.Svc.ListForUser(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}
