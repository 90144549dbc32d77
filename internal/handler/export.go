package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/VitorDaynno/Plutus-Service-sub000/internal/parser"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/service"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler streams the caller's transactions as CSV or XLSX.
type ExportHandler struct {
	Transactions *service.TransactionService
}

func NewExportHandler(transactions *service.TransactionService) *ExportHandler {
	return &ExportHandler{Transactions: transactions}
}

var exportHeader = []string{"Description", "Value", "Categories", "Purchase Date", "Form Payment", "Account", "Creation Date"}

func exportRow(t parser.Transaction) []string {
	account := ""
	if t.Account != 0 {
		account = strconv.FormatUint(uint64(t.Account), 10)
	}
	return []string{
		t.Description,
		t.Value.StringFixed(2),
		strings.Join(t.Categories, ","),
		t.PurchaseDate.Format("2006-01-02"),
		strconv.FormatUint(uint64(t.FormPayment), 10),
		account,
		t.CreationDate.Format("2006-01-02"),
	}
}

// ExportCSV writes the caller's transactions as a CSV attachment.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	transactions, err := h.Transactions.GetAll(c.Request.Context(), user.ID)
	if err != nil {
		util.Fail(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	_ = writer.Write(exportHeader)
	for _, t := range transactions {
		_ = writer.Write(exportRow(t))
	}
}

// ExportXLSX writes the caller's transactions as an XLSX attachment.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	transactions, err := h.Transactions.GetAll(c.Request.Context(), user.ID)
	if err != nil {
		util.Fail(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Transactions"
	index, err := f.NewSheet(sheet)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "build workbook failed")
		return
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, title)
	}
	for i, t := range transactions {
		for col, value := range exportRow(t) {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, "write workbook failed")
	}
}
