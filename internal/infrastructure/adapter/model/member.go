package model

import (
	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/entity"
)

// Member represents the database model for members
type Member struct {
	MemberID string `gorm:"column:member_id;primaryKey;size:64"`
	Money    int64  `gorm:"column:money;not null;check:money >= 0"`
}

// TableName specifies the table name for Member
func (Member) TableName() string {
	return "member"
}

// FromEntity converts a domain member to its database model
func FromEntity(m *entity.Member) *Member {
	return &Member{MemberID: m.ID, Money: m.Money()}
}

// ToEntity converts the database model to a domain member
func (m *Member) ToEntity() *entity.Member {
	return entity.RestoreMember(m.MemberID, m.Money)
}
