package identity

import (
	"errors"
	"event-voting/internal/model"
	apperrors "event-voting/pkg/app_errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeVoter = "voter"
	TokenTypeAdmin = "admin"

	// 投票者憑證固定 24 小時
	VoterTokenTTL = 24 * time.Hour
)

type voterClaims struct {
	TicketID string `json:"ticketId"`
	Serial   string `json:"serial"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

type adminClaims struct {
	AdminID  string `json:"id"`
	Username string `json:"username"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

// Issuer 簽發與驗證 HS256 憑證；VerifyVoter 是唯一的投票者憑證驗證入口
type Issuer struct {
	secret   []byte
	adminTTL time.Duration
	now      func() time.Time
}

func NewIssuer(secret string, adminTTL time.Duration) *Issuer {
	return &Issuer{
		secret:   []byte(secret),
		adminTTL: adminTTL,
		now:      time.Now,
	}
}

// WithClock 替換時間來源（測試用）
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	i.now = now
	return i
}

func (i *Issuer) IssueVoter(ticket *model.Ticket) (string, error) {
	issuedAt := i.now()
	claims := voterClaims{
		TicketID: ticket.ID.String(),
		Serial:   ticket.Serial,
		Type:     TokenTypeVoter,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ticket.ID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(VoterTokenTTL)),
		},
	}
	return i.sign(claims)
}

func (i *Issuer) IssueAdmin(admin *model.Admin) (string, error) {
	issuedAt := i.now()
	claims := adminClaims{
		AdminID:  admin.ID.String(),
		Username: admin.Username,
		Type:     TokenTypeAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(i.adminTTL)),
		},
	}
	return i.sign(claims)
}

func (i *Issuer) VerifyVoter(token string) (*model.VoterCredential, error) {
	var claims voterClaims
	if err := i.parse(token, &claims); err != nil {
		return nil, err
	}
	if claims.Type != TokenTypeVoter {
		return nil, apperrors.ErrInvalidCredential
	}

	ticketID, err := uuid.Parse(claims.TicketID)
	if err != nil || claims.Serial == "" {
		return nil, apperrors.ErrInvalidCredential
	}

	return &model.VoterCredential{
		TicketID:     ticketID,
		TicketSerial: claims.Serial,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

func (i *Issuer) VerifyAdmin(token string) (*model.AdminCredential, error) {
	var claims adminClaims
	if err := i.parse(token, &claims); err != nil {
		return nil, err
	}
	if claims.Type != TokenTypeAdmin {
		return nil, apperrors.ErrInvalidCredential
	}

	adminID, err := uuid.Parse(claims.AdminID)
	if err != nil {
		return nil, apperrors.ErrInvalidCredential
	}

	return &model.AdminCredential{
		AdminID:   adminID,
		Username:  claims.Username,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (i *Issuer) sign(claims jwt.Claims) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (i *Issuer) parse(token string, claims jwt.Claims) error {
	if token == "" {
		return apperrors.ErrMissingCredential
	}

	_, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) {
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return fmt.Errorf("%w: %v", apperrors.ErrInvalidCredential, jwt.ErrTokenExpired)
		}
		return apperrors.ErrInvalidCredential
	}
	return nil
}
