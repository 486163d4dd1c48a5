package service

import (
	"errors"
	"time"

	"Church_Community/internal/model"
	"Church_Community/internal/pkg"
	"Church_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

type MemberService struct {
	churches *mysql.ChurchRepository
	members  *mysql.ChurchMemberRepository
}

func NewMemberService(db *gorm.DB) *MemberService {
	return &MemberService{
		churches: &mysql.ChurchRepository{DB: db},
		members:  &mysql.ChurchMemberRepository{DB: db},
	}
}

type JoinResult struct {
	Joined     bool
	Membership *model.ChurchMember
}

// JoinChurch 幂等加入：重复调用返回同一条成员记录，仅 Joined 不同。
// 插入本身是原子的 insert-if-absent（见 ChurchMemberRepository.Join），
// 并发重复加入时输家直接读回赢家那行。
func (s *MemberService) JoinChurch(userID, churchID uint64) (*JoinResult, error) {
	if churchID == 0 {
		return nil, pkg.Invalid("church_id is required")
	}

	if _, err := s.churches.FindByID(churchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.NotFound("Church not found.")
		}
		return nil, err
	}

	now := time.Now().UTC()
	member := &model.ChurchMember{
		ChurchID:  churchID,
		UserID:    userID,
		CreatedAt: now,
		JoinedAt:  now,
	}
	created, err := s.members.Join(member)
	if err != nil {
		return nil, err
	}
	if !created {
		member, err = s.members.Find(churchID, userID)
		if err != nil {
			return nil, err
		}
	}

	return &JoinResult{Joined: created, Membership: member}, nil
}
