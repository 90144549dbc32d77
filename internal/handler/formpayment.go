package handler

import (
	"net/http"

	"github.com/VitorDaynno/Plutus-Service-sub000/internal/service"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type FormPaymentHandler struct {
	FormPayments *service.FormPaymentService
}

func NewFormPaymentHandler(formPayments *service.FormPaymentService) *FormPaymentHandler {
	return &FormPaymentHandler{FormPayments: formPayments}
}

type createFormPaymentReq struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func (h *FormPaymentHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createFormPaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	formPayment, err := h.FormPayments.Add(c.Request.Context(), service.FormPaymentInput{
		Name:   req.Name,
		Type:   req.Type,
		UserID: user.ID,
	})
	if err != nil {
		util.Fail(c, err)
		return
	}
	util.Success(c, http.StatusCreated, formPayment)
}

func (h *FormPaymentHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	formPayments, err := h.FormPayments.GetAll(c.Request.Context(), user.ID)
	if err != nil {
		util.Fail(c, err)
		return
	}
	util.Success(c, http.StatusOK, formPayments)
}

func (h *FormPaymentHandler) Get(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	formPayment, err := h.FormPayments.GetByID(c.Request.Context(), idParam(c))
	if err != nil {
		util.Fail(c, err)
		return
	}
	util.Success(c, http.StatusOK, formPayment)
}

func (h *FormPaymentHandler) Balances(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	filter, ok := balanceFilter(c, user.ID)
	if !ok {
		return
	}

	balances, err := h.FormPayments.Balances(c.Request.Context(), filter)
	if err != nil {
		util.Fail(c, err)
		return
	}
	util.Success(c, http.StatusOK, balances)
}
