package models

type BookStatus string

const (
	BookAvailable BookStatus = "available"
	BookBorrowed  BookStatus = "borrowed"
)

type BookModel struct {
	Id            int          `json:"id" gorm:"primaryKey;autoIncrement"`
	Title         string       `json:"title" gorm:"type:varchar(255);not null"`
	Author        string       `json:"author" gorm:"type:varchar(255);not null"`
	PublishedYear int          `json:"publishedYear" gorm:"column:published_year;not null"`
	Status        BookStatus   `json:"status" gorm:"type:varchar(20);default:'available';not null"`
	BorrowerId    *int         `json:"borrower" gorm:"column:borrower_id"`
	Borrower      *MemberModel `json:"borrowerInfo,omitempty" gorm:"foreignKey:BorrowerId;references:Id;constraint:OnDelete:SET NULL"`
}
