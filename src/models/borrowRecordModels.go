package models

import "time"

// BorrowRecordModel is the audit trail of loans. Records are created open on
// borrow, closed on return and never deleted. The references are nullable so
// the trail survives deletion of the book or member it points at.
type BorrowRecordModel struct {
	Id         int          `json:"id" gorm:"primaryKey;autoIncrement"`
	BookId     *int         `json:"bookId" gorm:"column:book_id"`
	Book       *BookModel   `json:"book,omitempty" gorm:"foreignKey:BookId;references:Id;constraint:OnDelete:SET NULL"`
	MemberId   *int         `json:"memberId" gorm:"column:member_id"`
	Member     *MemberModel `json:"member,omitempty" gorm:"foreignKey:MemberId;references:Id;constraint:OnDelete:SET NULL"`
	BorrowedAt time.Time    `json:"borrowedAt" gorm:"column:borrowed_at;not null"`
	ReturnedAt *time.Time   `json:"returnedAt" gorm:"column:returned_at"`
}
