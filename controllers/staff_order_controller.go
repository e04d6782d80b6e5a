package controllers

import (
	"errors"
	"strconv"

	"pizzapalace/entity"
	"pizzapalace/pkg/resp"
	"pizzapalace/repository"
	"pizzapalace/services"

	"github.com/gin-gonic/gin"
)

// StaffOrderController is the kitchen/counter side of the order board.
// Routes are gated behind the staff/admin role middleware.
type StaffOrderController struct {
	Svc *services.OrderService
}

func NewStaffOrderController(s *services.OrderService) *StaffOrderController {
	return &StaffOrderController{Svc: s}
}

// GET /staff/orders?status=&page=&limit=
func (h *StaffOrderController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	out, err := h.Svc.ListForStaff(entity.OrderStatus(c.Query("status")), page, limit)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, out)
}

// PATCH /staff/orders/:number/status
func (h *StaffOrderController) UpdateStatus(c *gin.Context) {
	var body struct {
		Status entity.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.UpdateStatus(c.Param("number"), body.Status)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrConflict):
			resp.Conflict(c, err.Error())
		default:
			resp.BadRequest(c, err.Error())
		}
		return
	}
	resp.OK(c, order)
}

// PATCH /staff/orders/:number/payment
func (h *StaffOrderController) UpdatePayment(c *gin.Context) {
	var body struct {
		Status entity.PaymentStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.UpdatePaymentStatus(c.Param("number"), body.Status)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrConflict):
			resp.Conflict(c, err.Error())
		default:
			resp.BadRequest(c, err.Error())
		}
		return
	}
	resp.OK(c, order)
}
