package dtos

// BorrowRequest is the body of POST /api/books/:id/borrow/.
// MemberId is a pointer so a missing field can be told apart from id 0.
type BorrowRequest struct {
	MemberId *int `json:"member_id"`
}

// ImportResult summarizes a bulk book import from a spreadsheet.
type ImportResult struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}
