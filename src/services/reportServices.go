package services

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/dtos"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/models"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const (
	ledgerSheet   = "Borrow Ledger"
	timeFormat    = "2006-01-02 15:04:05"
	importMinCols = 3 // title, author, published year
)

type ReportService struct {
	db            *gorm.DB
	bookService   *BookService
	borrowService *BorrowService
}

// NewReportService creates a new instance of ReportService
func NewReportService(db *gorm.DB, bookService *BookService, borrowService *BorrowService) *ReportService {
	return &ReportService{
		db:            db,
		bookService:   bookService,
		borrowService: borrowService,
	}
}

// ExportBorrowLedger writes the full loan audit trail as an xlsx workbook.
func (s *ReportService) ExportBorrowLedger(w io.Writer) error {
	records, err := s.borrowService.ListBorrowRecords()
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(ledgerSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	headers := []string{"Record ID", "Book", "Member", "Borrowed At", "Returned At"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(ledgerSheet, cell, header); err != nil {
			return err
		}
	}

	for i, record := range records {
		bookTitle := "(deleted)"
		if record.Book != nil {
			bookTitle = record.Book.Title
		} else if record.BookId != nil {
			bookTitle = fmt.Sprintf("#%d", *record.BookId)
		}
		memberName := "(deleted)"
		if record.Member != nil {
			memberName = record.Member.Name
		} else if record.MemberId != nil {
			memberName = fmt.Sprintf("#%d", *record.MemberId)
		}
		returnedAt := ""
		if record.ReturnedAt != nil {
			returnedAt = record.ReturnedAt.Format(timeFormat)
		}

		values := []interface{}{
			record.Id,
			bookTitle,
			memberName,
			record.BorrowedAt.Format(timeFormat),
			returnedAt,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(ledgerSheet, cell, value); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

// ImportBooksFromExcel bulk-creates books from the first sheet of an xlsx
// upload. Expected columns: title, author, published year. The first row is
// treated as a header. Bad rows are reported and skipped, good rows are kept.
func (s *ReportService) ImportBooksFromExcel(r io.Reader) (*dtos.ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %s: %w", sheet, err)
	}

	result := &dtos.ImportResult{Imported: 0, Errors: []string{}}

	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		rowNum := i + 1

		if len(row) < importMinCols {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: expected at least %d columns", rowNum, importMinCols))
			continue
		}

		title := strings.TrimSpace(row[0])
		author := strings.TrimSpace(row[1])
		yearRaw := strings.TrimSpace(row[2])

		if title == "" || author == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: title and author are required", rowNum))
			continue
		}

		year, err := strconv.Atoi(yearRaw)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid published year %q", rowNum, yearRaw))
			continue
		}

		book := models.BookModel{
			Title:         title,
			Author:        author,
			PublishedYear: year,
			Status:        models.BookAvailable,
		}
		if _, err := s.bookService.CreateBook(&book); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		result.Imported++
	}

	return result, nil
}
