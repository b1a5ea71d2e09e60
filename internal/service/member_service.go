package service

import (
	"context"
	"errors"
	"strings"

	"planiftchop/internal/dto"
	"planiftchop/internal/model"
	"planiftchop/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrMemberNotFound is returned when the requested family member does not exist.
var ErrMemberNotFound = errors.New("membre de la famille introuvable")

// MemberService defines the business logic contract for family members,
// the default recipients of every emailed report.
type MemberService interface {
	Create(ctx context.Context, userID string, req dto.CreateMemberRequest) (*dto.MemberResponse, error)
	List(ctx context.Context, userID string) ([]dto.MemberResponse, error)
	// Emails returns the addresses of every registered member.
	Emails(ctx context.Context, userID string) ([]string, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type memberService struct {
	repo repository.MemberRepository
}

func NewMemberService(repo repository.MemberRepository) MemberService {
	return &memberService{repo: repo}
}

func (s *memberService) Create(ctx context.Context, userID string, req dto.CreateMemberRequest) (*dto.MemberResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.FindByEmail(ctx, userID, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("un membre avec cet email existe déjà")
	}

	member := &model.FamilyMember{
		UserID: userID,
		Name:   strings.TrimSpace(req.Name),
		Email:  email,
	}
	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}
	return memberToResponse(member), nil
}

func (s *memberService) List(ctx context.Context, userID string) ([]dto.MemberResponse, error) {
	members, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MemberResponse, 0, len(members))
	for i := range members {
		out = append(out, *memberToResponse(&members[i]))
	}
	return out, nil
}

func (s *memberService) Emails(ctx context.Context, userID string) ([]string, error) {
	members, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	emails := make([]string, 0, len(members))
	for i := range members {
		if members[i].Email != "" {
			emails = append(emails, members[i].Email)
		}
	}
	return emails, nil
}

func (s *memberService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberNotFound
		}
		return err
	}
	return nil
}

func memberToResponse(m *model.FamilyMember) *dto.MemberResponse {
	return &dto.MemberResponse{
		ID:    m.ID.String(),
		Name:  m.Name,
		Email: m.Email,
	}
}
