package handlers

import (
	"net/http"

	"furytails/services/sales"
	"furytails/utils"

	"github.com/gin-gonic/gin"
)

// SalesHandler serves the sales report views.
type SalesHandler struct {
	Svc sales.SalesService
}

func salesFilterFromQuery(c *gin.Context) sales.Filter {
	return sales.Filter{
		Status:     c.Query("status"),
		CheckedOut: c.Query("checkedOut"),
		Range:      c.DefaultQuery("range", sales.RangeAll),
		Start:      c.Query("start"),
		End:        c.Query("end"),
	}
}

// ListSalesHandler handles GET /sales.
func (h *SalesHandler) ListSalesHandler(c *gin.Context) {
	rows, err := h.Svc.List(salesFilterFromQuery(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to build sales report", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"sales": rows, "count": len(rows)})
}

// SalesSummaryHandler handles GET /sales/summary.
func (h *SalesHandler) SalesSummaryHandler(c *gin.Context) {
	summary, err := h.Svc.Summary(salesFilterFromQuery(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to summarize sales", err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}
