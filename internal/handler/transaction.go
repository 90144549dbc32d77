package handler

import (
	"net/http"
	"time"

	"github.com/VitorDaynno/Plutus-Service-sub000/internal/service"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type TransactionHandler struct {
	Transactions *service.TransactionService
}

func NewTransactionHandler(transactions *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{Transactions: transactions}
}

type createTransactionReq struct {
	Description  string          `json:"description"`
	Value        decimal.Decimal `json:"value"`
	Categories   []string        `json:"categories"`
	PurchaseDate string          `json:"purchaseDate"`
	FormPayment  uint            `json:"formPayment"`
	Account      uint            `json:"account"`
	Installments int             `json:"installments"`
}

func (h *TransactionHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	// an absent or malformed date stays zero so the service answers with
	// its own required-field message
	var purchaseDate time.Time
	if req.PurchaseDate != "" {
		if t, ok := parseDate(req.PurchaseDate); ok {
			purchaseDate = t
		}
	}

	transaction, err := h.Transactions.Add(c.Request.Context(), service.TransactionInput{
		Description:  req.Description,
		Value:        req.Value,
		Categories:   req.Categories,
		PurchaseDate: purchaseDate,
		FormPayment:  req.FormPayment,
		Account:      req.Account,
		Installments: req.Installments,
		UserID:       user.ID,
	})
	if err != nil {
		util.Fail(c, err)
		return
	}
	util.Success(c, http.StatusCreated, transaction)
}

func (h *TransactionHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	transactions, err := h.Transactions.GetAll(c.Request.Context(), user.ID)
	if err != nil {
		util.Fail(c, err)
		return
	}
	util.Success(c, http.StatusOK, transactions)
}

func (h *TransactionHandler) Get(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	transaction, err := h.Transactions.GetByID(c.Request.Context(), idParam(c))
	if err != nil {
		util.Fail(c, err)
		return
	}
	util.Success(c, http.StatusOK, transaction)
}
