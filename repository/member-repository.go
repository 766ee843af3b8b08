package repository

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type IdentityDocumentType string

const (
	IdentityCIN      IdentityDocumentType = "CIN"
	IdentityCarte    IdentityDocumentType = "CARTE_RESIDENCE"
	IdentityPassport IdentityDocumentType = "PASSPORT"
)

type Member struct {
	Num              int                  `gorm:"primaryKey;autoIncrement"`
	Name             string               `gorm:"not null"`
	FamilyName       string               `gorm:"not null"`
	AccessionDate    time.Time            `gorm:"type:date;not null"`
	Nationality      string               `gorm:"null"`
	IdentityDocument IdentityDocumentType `gorm:"null"`
	IdentityNumber   string               `gorm:"uniqueIndex;null"`
}

type MemberRepository struct {
	DB *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{DB: db}
}

func (r *MemberRepository) GetMemberByNum(num int) (*Member, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetMemberByNum"))
	defer timer.ObserveDuration()
	var member Member
	result := r.DB.First(&member, "num = ?", num)
	if result.Error != nil {
		return nil, notFoundOr(result.Error, "member %d not found", num)
	}
	return &member, nil
}

func (r *MemberRepository) FindAll() ([]*Member, error) {
	members := make([]*Member, 0)
	result := r.DB.Order("num ASC").Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}
	return members, nil
}

func (r *MemberRepository) SearchByName(query string) ([]*Member, error) {
	members := make([]*Member, 0)
	pattern := "%" + query + "%"
	result := r.DB.Where("name ILIKE ? OR family_name ILIKE ?", pattern, pattern).Order("num ASC").Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}
	return members, nil
}

func (r *MemberRepository) Save(member *Member) (*Member, error) {
	result := r.DB.Save(member)
	if result.Error != nil {
		return nil, result.Error
	}
	return member, nil
}
