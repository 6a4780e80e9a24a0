package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/traineme-api/internal/dto"
	"github.com/BruksfildServices01/traineme-api/internal/httperr"
	"github.com/BruksfildServices01/traineme-api/internal/httpresp"
	"github.com/BruksfildServices01/traineme-api/internal/middleware"
	"github.com/BruksfildServices01/traineme-api/internal/usecase/account"
)

type AuthHandler struct {
	register      *account.Register
	login         *account.Login
	getProfile    *account.GetProfile
	updateProfile *account.UpdateProfile
	deleteAccount *account.DeleteAccount
}

func NewAuthHandler(
	register *account.Register,
	login *account.Login,
	getProfile *account.GetProfile,
	updateProfile *account.UpdateProfile,
	deleteAccount *account.DeleteAccount,
) *AuthHandler {
	return &AuthHandler{
		register:      register,
		login:         login,
		getProfile:    getProfile,
		updateProfile: updateProfile,
		deleteAccount: deleteAccount,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Role      string `json:"role" binding:"required,role"`
	Phone     string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Phone        *string `json:"phone"`
	ProfileImage *string `json:"profileImage"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, "register", err)
		return
	}

	res, err := h.register.Execute(c.Request.Context(), account.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		Phone:     req.Phone,
	})
	if err != nil {
		httperr.Respond(c, "register", err)
		return
	}

	httpresp.Created(c, dto.AuthResponse{User: res.User, Token: res.Token, ExpiresAt: res.ExpiresAt})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, "login", err)
		return
	}

	res, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, "login", err)
		return
	}

	httpresp.OK(c, dto.AuthResponse{User: res.User, Token: res.Token, ExpiresAt: res.ExpiresAt})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	u, err := h.getProfile.Execute(c.Request.Context(), middleware.Identity(c).UserID)
	if err != nil {
		httperr.Respond(c, "get_profile", err)
		return
	}
	httpresp.OK(c, u)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, "update_profile", err)
		return
	}

	u, err := h.updateProfile.Execute(c.Request.Context(), middleware.Identity(c).UserID, account.UpdateProfileInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		httperr.Respond(c, "update_profile", err)
		return
	}
	httpresp.OK(c, u)
}

func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	if err := h.deleteAccount.Execute(c.Request.Context(), middleware.Identity(c).UserID); err != nil {
		httperr.Respond(c, "delete_account", err)
		return
	}
	httpresp.NoContent(c)
}
