package services

import (
	"errors"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/models"
	"gorm.io/gorm"
)

type MemberService struct {
	db *gorm.DB
}

// NewMemberService creates a new instance of MemberService
func NewMemberService(db *gorm.DB) *MemberService {
	return &MemberService{db: db}
}

// GetAllMembers retrieves all Member records from the database
func (s *MemberService) GetAllMembers() ([]models.MemberModel, error) {
	var members []models.MemberModel
	result := s.db.Order("join_date DESC").Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}
	return members, nil
}

// GetMemberByID retrieves a Member record by its ID
func (s *MemberService) GetMemberByID(id int) (*models.MemberModel, error) {
	var member models.MemberModel
	result := s.db.First(&member, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, result.Error
	}
	return &member, nil
}

// CreateMember creates a new Member record in the database
func (s *MemberService) CreateMember(member *models.MemberModel) (*models.MemberModel, error) {
	var count int64
	if err := s.db.Model(&models.MemberModel{}).Where("email = ?", member.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	// The borrow counter always starts at zero, whatever the client sent
	member.ActiveBorrows = 0

	result := s.db.Create(member)
	if result.Error != nil {
		return nil, result.Error
	}
	return member, nil
}

// UpdateMember updates an existing Member record
func (s *MemberService) UpdateMember(id int, updatedMember *models.MemberModel) (*models.MemberModel, error) {
	var member models.MemberModel
	result := s.db.First(&member, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, result.Error
	}

	if updatedMember.Email != "" && updatedMember.Email != member.Email {
		var count int64
		if err := s.db.Model(&models.MemberModel{}).
			Where("email = ? AND id <> ?", updatedMember.Email, id).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrEmailTaken
		}
	}

	// Set the ID to ensure we update the correct record
	updatedMember.Id = id

	// The borrow counter and join date are server-owned
	result = s.db.Model(&member).Omit("active_borrows", "join_date").Updates(updatedMember)
	if result.Error != nil {
		return nil, result.Error
	}

	// Fetch the updated record
	result = s.db.First(&member, id)
	if result.Error != nil {
		return nil, result.Error
	}

	return &member, nil
}

// DeleteMember deletes a Member record by its ID. A member with open loans
// cannot be deleted; the delete is conditional on the borrow counter so the
// refusal holds against a concurrent borrow. Closed borrow records keep the
// member's history with their reference nulled.
func (s *MemberService) DeleteMember(id int) error {
	result := s.db.Where("active_borrows = 0").Delete(&models.MemberModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var member models.MemberModel
		if err := s.db.First(&member, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMemberNotFound
			}
			return err
		}
		return ErrMemberHasLoans
	}
	return nil
}
