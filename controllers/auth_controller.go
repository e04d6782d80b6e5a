package controllers

import (
	"pizzapalace/pkg/resp"
	"pizzapalace/services"
	"pizzapalace/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Svc *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Svc: s}
}

type registerReq struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
}

// POST /auth/register
func (h *AuthController) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Svc.Register(req.Email, req.Password, req.FirstName, req.LastName, req.PhoneNumber)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, user)
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// POST /auth/logout
//
// Sessions are stateless JWTs, so logging out is the client dropping
// its token. The endpoint exists so the client has a single call to
// make; it never touches the cart.
func (h *AuthController) Logout(c *gin.Context) {
	resp.OK(c, gin.H{"loggedOut": true})
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	user, err := h.Svc.Me(uid)
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, user)
}

// PATCH /auth/me
func (h *AuthController) UpdateMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req services.UpdateMeIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Svc.UpdateMe(uid, &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, user)
}
