package controllers

import (
	"bytes"
	"net/http"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/responses"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/services"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportController struct {
	service       *services.ReportService
	borrowService *services.BorrowService
}

func NewReportController(service *services.ReportService, borrowService *services.BorrowService) *ReportController {
	return &ReportController{service: service, borrowService: borrowService}
}

// ListBorrowRecords handles GET requests to retrieve the loan audit trail
func (c *ReportController) ListBorrowRecords(ctx *gin.Context) {
	records, err := c.borrowService.ListBorrowRecords()
	if err != nil {
		responses.Error(ctx, statusFromError(err), err.Error())
		return
	}
	responses.JSON(ctx, http.StatusOK, records)
}

// ExportBorrowLedger handles GET requests to download the loan audit trail
// as an xlsx workbook
func (c *ReportController) ExportBorrowLedger(ctx *gin.Context) {
	// Buffer the workbook so an export failure can still render the error envelope
	var buf bytes.Buffer
	if err := c.service.ExportBorrowLedger(&buf); err != nil {
		responses.Error(ctx, statusFromError(err), err.Error())
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="borrow_ledger.xlsx"`)
	ctx.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ImportBooks handles POST requests to bulk-create books from an xlsx upload
func (c *ReportController) ImportBooks(ctx *gin.Context) {
	file, _, err := ctx.Request.FormFile("file")
	if err != nil {
		responses.Error(ctx, http.StatusBadRequest, "file: This field is required.")
		return
	}
	defer file.Close()

	result, err := c.service.ImportBooksFromExcel(file)
	if err != nil {
		responses.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}
	responses.JSON(ctx, http.StatusOK, result)
}
