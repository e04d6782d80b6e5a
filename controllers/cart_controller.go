package controllers

import (
	"pizzapalace/pkg/resp"
	"pizzapalace/services"
	"pizzapalace/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Svc *services.CartService
}

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Svc: s}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	cart, subtotal, totalItems, err := h.Svc.Get(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "subtotal": subtotal, "totalItems": totalItems})
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Svc.Add(uid, &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, item)
}

// PATCH /cart/items/qty
func (h *CartController) UpdateQty(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var body struct {
		ItemID uint `json:"itemId" binding:"required"`
		Qty    int  `json:"qty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.UpdateQty(uid, body.ItemID, body.Qty); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /cart/items
func (h *CartController) RemoveItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var body struct {
		ItemID uint `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.RemoveItem(uid, body.ItemID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	if err := h.Svc.Clear(uid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
