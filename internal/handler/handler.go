// Package handler holds the HTTP controllers. They bind requests, resolve
// the caller from the verified token, call a business service and translate
// the result into a transport response. The caller's user id always comes
// from the context, never from the request body.
package handler

import (
	"strconv"
	"time"

	"github.com/VitorDaynno/Plutus-Service-sub000/internal/apperr"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/models"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/service"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser extracts the authenticated user placed by the auth middleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("currentUser")
	if !ok {
		util.Fail(c, apperr.Authorization("missing token"))
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Fail(c, apperr.Authorization("missing token"))
		return nil, false
	}
	return user, true
}

// idParam parses the :id path parameter. Zero and garbage both come back
// as zero so the service answers with its own "Id are required".
func idParam(c *gin.Context) uint {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// balanceFilter reads the optional initialDate/finalDate query window.
func balanceFilter(c *gin.Context, userID uint) (service.BalanceFilter, bool) {
	f := service.BalanceFilter{UserID: userID}

	if s := c.Query("initialDate"); s != "" {
		t, ok := parseDate(s)
		if !ok {
			util.Fail(c, apperr.Validation("initialDate must be a date"))
			return f, false
		}
		f.InitialDate = &t
	}
	if s := c.Query("finalDate"); s != "" {
		t, ok := parseDate(s)
		if !ok {
			util.Fail(c, apperr.Validation("finalDate must be a date"))
			return f, false
		}
		f.FinalDate = &t
	}
	return f, true
}
