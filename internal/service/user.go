package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gabo-RDev/LinkUp/internal/dto"
	"github.com/Gabo-RDev/LinkUp/internal/mapper"
	"github.com/Gabo-RDev/LinkUp/internal/model"
	"github.com/Gabo-RDev/LinkUp/internal/result"
	"github.com/Gabo-RDev/LinkUp/internal/storage/repository"
)

// CodeLifetime is how long an account confirmation code can be redeemed.
const CodeLifetime = 15 * time.Minute

const invalidCodeMessage = "Invalid verification code."

// CodeNotifier delivers a freshly issued verification code to its user.
type CodeNotifier interface {
	NotifyCode(ctx context.Context, user *model.User, code *model.Code) error
}

// logNotifier records that a code was issued. The value itself is never logged.
type logNotifier struct {
	logger *zap.Logger
}

func (n logNotifier) NotifyCode(ctx context.Context, user *model.User, code *model.Code) error {
	n.logger.Info("Verification code issued",
		zap.String("user_id", user.ID.String()),
		zap.String("type", string(code.Type)),
		zap.Time("expiration", code.Expiration))
	return nil
}

// UserOption customises a UserService.
type UserOption func(*UserService)

func WithCodeNotifier(n CodeNotifier) UserOption {
	return func(s *UserService) { s.notifier = n }
}

// UserService signs readers up and confirms their accounts with a
// six digit code.
type UserService struct {
	users    UserAccountStore
	codes    CodeStore
	notifier CodeNotifier
	now      func() time.Time
	logger   *zap.Logger
}

func NewUserService(users UserAccountStore, codes CodeStore, logger *zap.Logger, opts ...UserOption) *UserService {
	s := &UserService{
		users:  users,
		codes:  codes,
		now:    func() time.Time { return time.Now().UTC() },
		logger: nopIfNil(logger).Named("user_service"),
	}
	s.notifier = logNotifier{logger: s.logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%0*d", model.CodeLength, n.Int64()), nil
}

func wellFormedCode(value string) bool {
	if len(value) != model.CodeLength {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// issueCode stores a new confirmation code and hands it to the notifier.
// A failed notification is logged; the code stays redeemable.
func (s *UserService) issueCode(ctx context.Context, user *model.User) error {
	value, err := generateCode()
	if err != nil {
		return err
	}

	code, err := s.codes.Create(ctx, &model.Code{
		UserID:     user.ID,
		Value:      value,
		Expiration: s.now().Add(CodeLifetime),
		Type:       model.CodeTypeConfirmAccount,
	})
	if err != nil {
		return err
	}

	if err := s.notifier.NotifyCode(ctx, user, code); err != nil {
		s.logger.Warn("Failed to deliver verification code", zap.String("user_id", user.ID.String()), zap.Error(err))
	}
	return nil
}

// Register creates an unconfirmed user and issues a confirmation code.
func (s *UserService) Register(ctx context.Context, in dto.RegisterUserDto) (result.Result[dto.UserDto], error) {
	if msg := validateAccount(in.FirstName, in.LastName, in.UserName, in.Email, in.Password); msg != "" {
		s.logger.Warn("Invalid user", zap.String("reason", msg))
		return invalid[dto.UserDto](msg)
	}

	exists, err := s.users.EmailExists(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return fatal[dto.UserDto](ctx, err)
	}
	if exists {
		return conflict[dto.UserDto]("Email already exist")
	}

	exists, err = s.users.UserNameExists(ctx, strings.TrimSpace(in.UserName))
	if err != nil {
		return fatal[dto.UserDto](ctx, err)
	}
	if exists {
		return conflict[dto.UserDto]("UserName already exist")
	}

	entity, err := mapper.UserFromRegister(in)
	if err != nil {
		return fatal[dto.UserDto](ctx, err)
	}
	created, err := s.users.Create(ctx, entity)
	if err != nil {
		return fatal[dto.UserDto](ctx, err)
	}

	if err := s.issueCode(ctx, created); err != nil {
		return fatal[dto.UserDto](ctx, err)
	}

	s.logger.Info("User registered", zap.String("id", created.ID.String()))
	return result.Success(mapper.UserToDto(created)), nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (result.Result[dto.UserDto], error) {
	found, err := LookupByID(ctx, id, "User", s.users.GetByID, s.logger)
	if err != nil || found.IsFailure() {
		return result.Fail[dto.UserDto](found.Err()), err
	}
	return result.Success(mapper.UserToDto(found.MustValue())), nil
}

// unconfirmedUser loads a user whose account still awaits confirmation.
func (s *UserService) unconfirmedUser(ctx context.Context, id uuid.UUID) (*model.User, *result.Error, error) {
	found, err := LookupByID(ctx, id, "User", s.users.GetByID, s.logger)
	if err != nil || found.IsFailure() {
		return nil, found.Err(), err
	}
	user := found.MustValue()
	if user.ConfirmedAccount {
		return nil, result.Conflict(codeConflict, "Account already confirmed."), nil
	}
	return user, nil, nil
}

// ConfirmAccount redeems a confirmation code and marks the account confirmed.
func (s *UserService) ConfirmAccount(ctx context.Context, userID uuid.UUID, value string) (result.Result[result.Unit], error) {
	value = strings.TrimSpace(value)
	if !wellFormedCode(value) {
		return invalid[result.Unit](invalidCodeMessage)
	}

	user, ferr, err := s.unconfirmedUser(ctx, userID)
	if err != nil || ferr != nil {
		return result.FailUnit(ferr), err
	}

	owned := []repository.SelectCriteria{
		repository.Where("user_id", user.ID),
		repository.Where("type", model.CodeTypeConfirmAccount),
	}

	code, err := s.codes.GetByValue(ctx, value, owned...)
	if err != nil {
		return fatal[result.Unit](ctx, err)
	}
	if code == nil {
		s.logger.Warn("Unknown verification code", zap.String("user_id", user.ID.String()))
		return invalid[result.Unit](invalidCodeMessage)
	}

	used, err := s.codes.IsUsed(ctx, code.ID)
	if err != nil {
		return fatal[result.Unit](ctx, err)
	}
	if used {
		return invalid[result.Unit]("Verification code already used.")
	}

	valid, err := s.codes.IsValid(ctx, value, owned...)
	if err != nil {
		return fatal[result.Unit](ctx, err)
	}
	if !valid {
		return invalid[result.Unit]("Verification code expired.")
	}

	if err := s.codes.MarkUsed(ctx, code.ID); err != nil {
		return fatal[result.Unit](ctx, err)
	}
	user.ConfirmedAccount = true
	if _, err := s.users.Update(ctx, user); err != nil {
		return fatal[result.Unit](ctx, err)
	}

	s.logger.Info("Account confirmed", zap.String("user_id", user.ID.String()))
	return result.Ok(), nil
}

// ResendConfirmation revokes the user's pending codes and issues a new one.
func (s *UserService) ResendConfirmation(ctx context.Context, userID uuid.UUID) (result.Result[result.Unit], error) {
	user, ferr, err := s.unconfirmedUser(ctx, userID)
	if err != nil || ferr != nil {
		return result.FailUnit(ferr), err
	}

	if err := s.codes.RevokeByUser(ctx, user.ID, model.CodeTypeConfirmAccount); err != nil {
		return fatal[result.Unit](ctx, err)
	}
	if err := s.issueCode(ctx, user); err != nil {
		return fatal[result.Unit](ctx, err)
	}
	return result.Ok(), nil
}
