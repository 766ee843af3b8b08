package service

import (
	"aftas/repository"
)

type MemberService struct {
	memberRepository MemberStore
	clock            Clock
}

func NewMemberService(stores *Stores, clock Clock) *MemberService {
	return &MemberService{
		memberRepository: stores.Members,
		clock:            clock,
	}
}

func (s *MemberService) CreateMember(member *repository.Member) (*repository.Member, error) {
	if member.AccessionDate.IsZero() {
		member.AccessionDate = civilDate(s.clock.now())
	}
	return s.memberRepository.Save(member)
}

func (s *MemberService) GetMemberByNum(num int) (*repository.Member, error) {
	return s.memberRepository.GetMemberByNum(num)
}

func (s *MemberService) GetAllMembers() ([]*repository.Member, error) {
	return s.memberRepository.FindAll()
}

func (s *MemberService) SearchMembers(query string) ([]*repository.Member, error) {
	if query == "" {
		return s.memberRepository.FindAll()
	}
	return s.memberRepository.SearchByName(query)
}
