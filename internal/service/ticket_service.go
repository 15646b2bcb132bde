package service

import (
	"context"
	"errors"
	"event-voting/internal/model"
	"event-voting/internal/repository"
	apperrors "event-voting/pkg/app_errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	MinGenerateQuantity = 1
	MaxGenerateQuantity = 100
)

type TicketService interface {
	// 以 QR code 內的票券 ID 登入，回傳投票者憑證
	Authenticate(ctx context.Context, ticketID string) (*model.AuthenticateResult, error)
	// 以已驗證的憑證重新查詢票券
	Verify(ctx context.Context, cred *model.VoterCredential) (*model.TicketSummary, error)

	Generate(ctx context.Context, quantity int) ([]*model.Ticket, error)
	Import(ctx context.Context, serials []string, skipDuplicates bool) (*model.ImportTicketsResult, error)
	List(ctx context.Context) ([]*model.TicketWithVotes, error)
	GetBySerial(ctx context.Context, serial string) (*model.Ticket, error)
	DeleteBySerial(ctx context.Context, serial string) error
	DeleteAll(ctx context.Context) (int64, error)
}

type TicketServiceImpl struct {
	db             TxBeginner
	repository     repository.TicketRepository
	voteRepository repository.VoteRepository
	issuer         VoterTokenIssuer
}

func NewTicketService(
	db TxBeginner,
	ticketRepository repository.TicketRepository,
	voteRepository repository.VoteRepository,
	issuer VoterTokenIssuer,
) TicketService {
	return &TicketServiceImpl{
		db:             db,
		repository:     ticketRepository,
		voteRepository: voteRepository,
		issuer:         issuer,
	}
}

func (s *TicketServiceImpl) Authenticate(ctx context.Context, ticketID string) (*model.AuthenticateResult, error) {
	id, err := uuid.Parse(strings.TrimSpace(ticketID))
	if err != nil {
		return nil, apperrors.ErrInvalidTicket
	}

	ticket, err := s.findTicket(ctx, id)
	if err != nil {
		return nil, err
	}

	token, err := s.issuer.IssueVoter(ticket)
	if err != nil {
		return nil, err
	}

	summary, err := s.summarize(ctx, ticket)
	if err != nil {
		return nil, err
	}

	return &model.AuthenticateResult{
		Token:  token,
		Ticket: summary,
	}, nil
}

func (s *TicketServiceImpl) Verify(ctx context.Context, cred *model.VoterCredential) (*model.TicketSummary, error) {
	if cred == nil {
		return nil, apperrors.ErrInvalidCredential
	}

	ticket, err := s.findTicket(ctx, cred.TicketID)
	if err != nil {
		return nil, err
	}

	return s.summarize(ctx, ticket)
}

func (s *TicketServiceImpl) Generate(ctx context.Context, quantity int) ([]*model.Ticket, error) {
	if quantity < MinGenerateQuantity || quantity > MaxGenerateQuantity {
		return nil, apperrors.ErrInvalidQuantity
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// 同時產生時序號不可重疊
	if err := s.repository.LockSerials(ctx, tx); err != nil {
		return nil, err
	}

	max, err := s.repository.MaxSerial(ctx, tx)
	if err != nil {
		return nil, err
	}

	serials := make([]string, quantity)
	for i := range serials {
		serials[i] = fmt.Sprintf("%03d", max+i+1)
	}

	tickets, err := s.repository.CreateBatch(ctx, tx, serials, false)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return tickets, nil
}

func (s *TicketServiceImpl) Import(ctx context.Context, serials []string, skipDuplicates bool) (*model.ImportTicketsResult, error) {
	unique := make([]string, 0, len(serials))
	seen := make(map[string]struct{}, len(serials))
	for _, serial := range serials {
		serial = strings.TrimSpace(serial)
		if !model.IsValidSerial(serial) {
			return nil, apperrors.ErrInvalidSerial
		}
		if _, ok := seen[serial]; ok {
			if !skipDuplicates {
				return nil, apperrors.ErrDuplicateSerial
			}
			continue
		}
		seen[serial] = struct{}{}
		unique = append(unique, serial)
	}

	if len(unique) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := s.repository.LockSerials(ctx, tx); err != nil {
		return nil, err
	}

	tickets, err := s.repository.CreateBatch(ctx, tx, unique, skipDuplicates)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &model.ImportTicketsResult{
		Imported: len(tickets),
		Skipped:  len(serials) - len(tickets),
		Tickets:  tickets,
	}, nil
}

func (s *TicketServiceImpl) List(ctx context.Context) ([]*model.TicketWithVotes, error) {
	return s.repository.List(ctx)
}

func (s *TicketServiceImpl) GetBySerial(ctx context.Context, serial string) (*model.Ticket, error) {
	return s.repository.FindBySerial(ctx, strings.TrimSpace(serial))
}

func (s *TicketServiceImpl) DeleteBySerial(ctx context.Context, serial string) error {
	return s.repository.DeleteBySerial(ctx, strings.TrimSpace(serial))
}

func (s *TicketServiceImpl) DeleteAll(ctx context.Context) (int64, error) {
	return s.repository.DeleteAll(ctx)
}

func (s *TicketServiceImpl) findTicket(ctx context.Context, id uuid.UUID) (*model.Ticket, error) {
	ticket, err := s.repository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTicketNotFound) {
			return nil, apperrors.ErrInvalidTicket
		}
		return nil, err
	}
	return ticket, nil
}

// summarize 已投分類一律從投票表重新計算
func (s *TicketServiceImpl) summarize(ctx context.Context, ticket *model.Ticket) (*model.TicketSummary, error) {
	votedCategories, err := s.voteRepository.ListCategoryIDsByTicket(ctx, ticket.ID)
	if err != nil {
		return nil, err
	}

	return &model.TicketSummary{
		ID:              ticket.ID,
		Serial:          ticket.Serial,
		VotedCategories: votedCategories,
	}, nil
}
