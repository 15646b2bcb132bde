package service

import (
	"context"
	"errors"
	"event-voting/internal/model"
	"event-voting/internal/repository"
	apperrors "event-voting/pkg/app_errors"

	"github.com/google/uuid"
)

// VotingPolicy 由設定服務提供，決定目前是否開放投票
type VotingPolicy interface {
	IsVotingEnabled(ctx context.Context) (bool, error)
}

type VoteService interface {
	// 投票：每張票券在每個分類最多一票
	CastVote(ctx context.Context, cred *model.VoterCredential, candidateID, categoryID uuid.UUID) (*model.CastVoteResult, error)
	// 取消投票後可重新投票
	CancelVote(ctx context.Context, cred *model.VoterCredential, categoryID uuid.UUID) (*model.CancelVoteResult, error)
	GetVoteStatus(ctx context.Context, cred *model.VoterCredential, categoryID uuid.UUID) (*model.VoteStatus, error)
}

type VoteServiceImpl struct {
	repository          repository.VoteRepository
	ticketRepository    repository.TicketRepository
	candidateRepository repository.CandidateRepository
	categoryRepository  repository.CategoryRepository
	policy              VotingPolicy
}

func NewVoteService(
	voteRepository repository.VoteRepository,
	ticketRepository repository.TicketRepository,
	candidateRepository repository.CandidateRepository,
	categoryRepository repository.CategoryRepository,
	policy VotingPolicy,
) VoteService {
	return &VoteServiceImpl{
		repository:          voteRepository,
		ticketRepository:    ticketRepository,
		candidateRepository: candidateRepository,
		categoryRepository:  categoryRepository,
		policy:              policy,
	}
}

func (s *VoteServiceImpl) CastVote(ctx context.Context, cred *model.VoterCredential, candidateID, categoryID uuid.UUID) (*model.CastVoteResult, error) {
	// 1. 憑證有效但票券可能已被刪除
	if err := s.ensureTicket(ctx, cred); err != nil {
		return nil, err
	}

	// 2. 投票開關
	enabled, err := s.policy.IsVotingEnabled(ctx)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return nil, apperrors.ErrVotingDisabled
	}

	// 3. 候選人存在且屬於指定分類
	candidate, err := s.candidateRepository.FindByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if candidate.CategoryID != categoryID {
		return nil, apperrors.ErrCandidateCategoryMismatch
	}

	category, err := s.categoryRepository.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if !category.IsActive {
		return nil, apperrors.ErrCategoryNotFound
	}

	// 4. 預先檢查，真正的保證是資料庫的唯一約束
	_, err = s.repository.FindByTicketAndCategory(ctx, cred.TicketID, categoryID)
	if err == nil {
		return nil, apperrors.ErrAlreadyVoted
	}
	if !errors.Is(err, apperrors.ErrVoteNotFound) {
		return nil, err
	}

	vote, err := s.repository.Create(ctx, &model.Vote{
		TicketID:    cred.TicketID,
		CategoryID:  categoryID,
		CandidateID: candidateID,
	})
	if err != nil {
		return nil, err
	}

	votedCategories, err := s.repository.ListCategoryIDsByTicket(ctx, cred.TicketID)
	if err != nil {
		return nil, err
	}

	return &model.CastVoteResult{
		Vote:            vote.ToResponse(),
		VotedCategories: votedCategories,
	}, nil
}

func (s *VoteServiceImpl) CancelVote(ctx context.Context, cred *model.VoterCredential, categoryID uuid.UUID) (*model.CancelVoteResult, error) {
	if err := s.ensureTicket(ctx, cred); err != nil {
		return nil, err
	}

	if err := s.repository.DeleteByTicketAndCategory(ctx, cred.TicketID, categoryID); err != nil {
		return nil, err
	}

	votedCategories, err := s.repository.ListCategoryIDsByTicket(ctx, cred.TicketID)
	if err != nil {
		return nil, err
	}

	return &model.CancelVoteResult{VotedCategories: votedCategories}, nil
}

func (s *VoteServiceImpl) GetVoteStatus(ctx context.Context, cred *model.VoterCredential, categoryID uuid.UUID) (*model.VoteStatus, error) {
	if err := s.ensureTicket(ctx, cred); err != nil {
		return nil, err
	}

	vote, err := s.repository.FindByTicketAndCategory(ctx, cred.TicketID, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrVoteNotFound) {
			return &model.VoteStatus{HasVoted: false}, nil
		}
		return nil, err
	}

	return &model.VoteStatus{
		HasVoted:         true,
		VotedCandidateID: &vote.CandidateID,
	}, nil
}

func (s *VoteServiceImpl) ensureTicket(ctx context.Context, cred *model.VoterCredential) error {
	if cred == nil {
		return apperrors.ErrInvalidCredential
	}
	if _, err := s.ticketRepository.FindByID(ctx, cred.TicketID); err != nil {
		if errors.Is(err, apperrors.ErrTicketNotFound) {
			return apperrors.ErrTicketRevoked
		}
		return err
	}
	return nil
}
