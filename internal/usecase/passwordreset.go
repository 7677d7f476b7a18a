package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/Nrvenki/recipe/internal/domain"
	"github.com/Nrvenki/recipe/internal/email"
	"github.com/Nrvenki/recipe/internal/metrics"
	"github.com/Nrvenki/recipe/internal/repository"
)

const defaultCodeTTL = 10 * time.Minute

var codeMax = big.NewInt(1_000_000)

type PasswordResetUsecase struct {
	codes   repository.ResetCodeRepository
	email   email.Sender
	codeTTL time.Duration
}

func NewPasswordResetUsecase(codes repository.ResetCodeRepository, emailSender email.Sender) *PasswordResetUsecase {
	return &PasswordResetUsecase{
		codes:   codes,
		email:   emailSender,
		codeTTL: defaultCodeTTL,
	}
}

// SendCode generates a 6-digit code, stores it, and emails it. The stored
// row is not rolled back if the email fails, so an undelivered code can
// remain outstanding until it expires.
func (u *PasswordResetUsecase) SendCode(ctx context.Context, emailAddr string) error {
	n, err := rand.Int(rand.Reader, codeMax)
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}
	code := fmt.Sprintf("%06d", n)

	rc, err := u.codes.Create(ctx, &domain.ResetCode{
		Email:     emailAddr,
		Code:      code,
		ExpiresAt: time.Now().Add(u.codeTTL),
	})
	if err != nil {
		return fmt.Errorf("store reset code: %w", err)
	}

	subject := "Your password reset code"
	body := fmt.Sprintf(
		`<p>Your verification code is:</p><h2>%s</h2><p>It expires in %d minutes.</p>`,
		rc.Code, int(u.codeTTL.Minutes()),
	)
	if err := u.email.Send(ctx, emailAddr, subject, body); err != nil {
		metrics.ResetEmailsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("send reset code: %w", err)
	}
	metrics.ResetEmailsTotal.WithLabelValues("ok").Inc()
	return nil
}

// VerifyCode checks the most recent unused code for the email and marks it
// used. A code that was never issued and one already consumed fail the same
// way (domain.ErrCodeInvalid); only a found-but-stale code reports
// domain.ErrCodeExpired.
//
// newPassword is required by the contract but applied nowhere: this service
// has no identity-provider collaborator to push a password change to.
func (u *PasswordResetUsecase) VerifyCode(ctx context.Context, emailAddr, code, newPassword string) error {
	rc, err := u.codes.FindActive(ctx, emailAddr, code)
	if err != nil {
		if errors.Is(err, domain.ErrCodeInvalid) {
			return domain.ErrCodeInvalid
		}
		return fmt.Errorf("find reset code: %w", err)
	}

	if time.Now().After(rc.ExpiresAt) {
		return domain.ErrCodeExpired
	}

	if err := u.codes.MarkUsed(ctx, rc.ID); err != nil {
		if errors.Is(err, domain.ErrCodeInvalid) {
			return domain.ErrCodeInvalid
		}
		return fmt.Errorf("mark code used: %w", err)
	}
	return nil
}
