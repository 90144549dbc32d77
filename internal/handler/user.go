package handler

import (
	"net/http"

	"github.com/VitorDaynno/Plutus-Service-sub000/internal/service"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{Users: users}
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	user, err := h.Users.Register(c.Request.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		util.Fail(c, err)
		return
	}
	util.Success(c, http.StatusCreated, user)
}

type authReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) Auth(c *gin.Context) {
	var req authReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	user, err := h.Users.Auth(c.Request.Context(), service.AuthInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		util.Fail(c, err)
		return
	}
	util.Success(c, http.StatusOK, user)
}

// Me returns the current identity resolved from the token.
func (h *UserHandler) Me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	out, err := h.Users.GetByID(c.Request.Context(), user.ID)
	if err != nil {
		util.Fail(c, err)
		return
	}
	util.Success(c, http.StatusOK, out)
}

type updateUserReq struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Update changes the caller's own name and email.
func (h *UserHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req updateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	out, err := h.Users.Update(c.Request.Context(), service.UpdateUserInput{
		ID:    user.ID,
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		util.Fail(c, err)
		return
	}
	util.Success(c, http.StatusOK, out)
}
