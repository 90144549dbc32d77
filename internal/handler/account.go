package handler

import (
	"net/http"

	"github.com/VitorDaynno/Plutus-Service-sub000/internal/service"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	Accounts *service.AccountService
}

func NewAccountHandler(accounts *service.AccountService) *AccountHandler {
	return &AccountHandler{Accounts: accounts}
}

type createAccountReq struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func (h *AccountHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	account, err := h.Accounts.Add(c.Request.Context(), service.AccountInput{
		Name:   req.Name,
		Type:   req.Type,
		UserID: user.ID,
	})
	if err != nil {
		util.Fail(c, err)
		return
	}
	util.Success(c, http.StatusCreated, account)
}

func (h *AccountHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	accounts, err := h.Accounts.GetAll(c.Request.Context(), user.ID)
	if err != nil {
		util.Fail(c, err)
		return
	}
	util.Success(c, http.StatusOK, accounts)
}

func (h *AccountHandler) Get(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	account, err := h.Accounts.GetByID(c.Request.Context(), idParam(c))
	if err != nil {
		util.Fail(c, err)
		return
	}
	util.Success(c, http.StatusOK, account)
}

func (h *AccountHandler) Balances(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	filter, ok := balanceFilter(c, user.ID)
	if !ok {
		return
	}

	balances, err := h.Accounts.Balances(c.Request.Context(), filter)
	if err != nil {
		util.Fail(c, err)
		return
	}
	util.Success(c, http.StatusOK, balances)
}
