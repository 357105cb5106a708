package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gabo-RDev/LinkUp/cache"
	"github.com/Gabo-RDev/LinkUp/internal/dto"
	"github.com/Gabo-RDev/LinkUp/internal/mapper"
	"github.com/Gabo-RDev/LinkUp/internal/media"
	"github.com/Gabo-RDev/LinkUp/internal/model"
	"github.com/Gabo-RDev/LinkUp/internal/result"
)

// MinPasswordLength is the shortest accepted account password.
const MinPasswordLength = 8

type AdminService struct {
	admins   AdminStore
	users    UserStore
	uploader media.Uploader
	aside    *cache.Aside
	keys     cache.KeySerializer
	logger   *zap.Logger
}

func NewAdminService(admins AdminStore, users UserStore, uploader media.Uploader, aside *cache.Aside, logger *zap.Logger) *AdminService {
	if uploader == nil {
		uploader = media.Noop{}
	}
	return &AdminService{
		admins:   admins,
		users:    users,
		uploader: uploader,
		aside:    aside,
		keys:     cache.NewNamespacedKeySerializer("admins"),
		logger:   nopIfNil(logger).Named("admin_service"),
	}
}

func validatePassword(password string) string {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return "Password must be at least 8 characters."
	}
	return ""
}

// validateAccount checks the fields shared by admin and user sign up.
func validateAccount(firstName, lastName, userName, email, password string) string {
	msg := validationMessage(
		model.ValidateRequired("first_name", firstName),
		model.ValidateRequired("last_name", lastName),
		model.ValidateRequired("user_name", userName),
		model.ValidateRequired("email", email),
	)
	if msg != "" {
		return msg
	}

	msg = validationMessage(
		model.ValidateLength("first_name", mapper.NormalizeName(firstName), 1, model.MaxPersonNameLength),
		model.ValidateLength("last_name", mapper.NormalizeName(lastName), 1, model.MaxPersonNameLength),
		model.ValidateLength("user_name", strings.TrimSpace(userName), 1, model.MaxUserNameLength),
		model.ValidateLength("email", strings.TrimSpace(email), 1, model.MaxEmailLength),
		model.ValidateEmail("email", strings.TrimSpace(email)),
	)
	if msg != "" {
		return msg
	}
	return validatePassword(password)
}

// uploadPhoto stores an optional profile photo. A failed upload aborts the
// calling operation.
func (s *AdminService) uploadPhoto(ctx context.Context, photo *dto.FileUpload) (string, *result.Error) {
	if photo == nil || photo.Content == nil {
		return "", nil
	}

	url, err := s.uploader.Upload(ctx, photo.Name, photo.Content)
	if err != nil {
		if ctx.Err() != nil {
			return "", result.Canceled("The operation was canceled.")
		}
		s.logger.Error("Profile photo upload failed", zap.String("file", photo.Name), zap.Error(err))
		return "", result.Upstream(codeUpstream, "Profile photo upload failed.")
	}
	return url, nil
}

func (s *AdminService) Create(ctx context.Context, in dto.CreateAdminDto) (result.Result[dto.AdminDto], error) {
	if msg := validateAccount(in.FirstName, in.LastName, in.UserName, in.Email, in.Password); msg != "" {
		s.logger.Warn("Invalid admin", zap.String("reason", msg))
		return invalid[dto.AdminDto](msg)
	}

	exists, err := s.admins.EmailExists(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return fatal[dto.AdminDto](ctx, err)
	}
	if exists {
		s.logger.Warn("Email already exist")
		return conflict[dto.AdminDto]("Email already exist")
	}

	exists, err = s.admins.UserNameExists(ctx, strings.TrimSpace(in.UserName))
	if err != nil {
		return fatal[dto.AdminDto](ctx, err)
	}
	if exists {
		s.logger.Warn("UserName already exist")
		return conflict[dto.AdminDto]("UserName already exist")
	}

	photoURL, uerr := s.uploadPhoto(ctx, in.ProfilePhoto)
	if uerr != nil {
		return result.Fail[dto.AdminDto](uerr), nil
	}
	if photoURL != "" {
		s.logger.Info("Profile photo uploaded", zap.String("user_name", in.UserName))
	}

	entity, err := mapper.AdminFromCreate(in, photoURL)
	if err != nil {
		return fatal[dto.AdminDto](ctx, err)
	}

	created, err := s.admins.Create(ctx, entity)
	if err != nil {
		return fatal[dto.AdminDto](ctx, err)
	}

	s.logger.Info("Created admin", zap.String("id", created.ID.String()))
	return result.Success(mapper.AdminToDto(created)), nil
}

func validateAdminUpdate(in dto.UpdateAdminDto) string {
	msg := validationMessage(
		model.ValidateRequired("first_name", in.FirstName),
		model.ValidateRequired("last_name", in.LastName),
	)
	if msg != "" {
		return msg
	}

	errs := []error{
		model.ValidateLength("first_name", mapper.NormalizeName(in.FirstName), 1, model.MaxPersonNameLength),
		model.ValidateLength("last_name", mapper.NormalizeName(in.LastName), 1, model.MaxPersonNameLength),
	}
	if userName := strings.TrimSpace(in.UserName); userName != "" {
		errs = append(errs, model.ValidateLength("user_name", userName, 1, model.MaxUserNameLength))
	}
	if email := strings.TrimSpace(in.Email); email != "" {
		errs = append(errs,
			model.ValidateLength("email", email, 1, model.MaxEmailLength),
			model.ValidateEmail("email", email),
		)
	}
	return validationMessage(errs...)
}

// checkAdminIdentity rejects a new email or user name owned by another admin.
func (s *AdminService) checkAdminIdentity(ctx context.Context, id uuid.UUID, in dto.UpdateAdminDto) (*result.Error, error) {
	if email := strings.TrimSpace(in.Email); email != "" {
		inUse, err := s.admins.EmailInUse(ctx, email, id)
		if err != nil {
			return nil, err
		}
		if inUse {
			s.logger.Warn("Email already exist", zap.String("id", id.String()))
			return result.Conflict(codeConflict, "Email already exist"), nil
		}
	}

	if userName := strings.TrimSpace(in.UserName); userName != "" {
		inUse, err := s.admins.UserNameInUse(ctx, userName, id)
		if err != nil {
			return nil, err
		}
		if inUse {
			s.logger.Warn("UserName already exist", zap.String("id", id.String()))
			return result.Conflict(codeConflict, "UserName already exist"), nil
		}
	}
	return nil, nil
}

func (s *AdminService) Update(ctx context.Context, id uuid.UUID, in dto.UpdateAdminDto) (result.Result[dto.AdminDto], error) {
	if msg := validateAdminUpdate(in); msg != "" {
		return invalid[dto.AdminDto](msg)
	}

	found, err := LookupByID(ctx, id, "Admin", s.admins.GetByID, s.logger)
	if err != nil || found.IsFailure() {
		return result.Fail[dto.AdminDto](found.Err()), err
	}
	admin := found.MustValue()

	cerr, err := s.checkAdminIdentity(ctx, id, in)
	if err != nil {
		return fatal[dto.AdminDto](ctx, err)
	}
	if cerr != nil {
		return result.Fail[dto.AdminDto](cerr), nil
	}

	photoURL, uerr := s.uploadPhoto(ctx, in.ProfilePhoto)
	if uerr != nil {
		return result.Fail[dto.AdminDto](uerr), nil
	}

	mapper.ApplyAdminUpdate(admin, in, photoURL)
	updated, err := s.admins.Update(ctx, admin)
	if err != nil {
		return fatal[dto.AdminDto](ctx, err)
	}

	s.logger.Info("Admin updated", zap.String("id", id.String()))
	return result.Success(mapper.AdminToDto(updated)), nil
}

func (s *AdminService) Delete(ctx context.Context, id uuid.UUID) (result.Result[result.Unit], error) {
	found, err := LookupByID(ctx, id, "Admin", s.admins.GetByID, s.logger)
	if err != nil || found.IsFailure() {
		return result.FailUnit(found.Err()), err
	}

	if err := s.admins.SoftDelete(ctx, found.MustValue()); err != nil {
		return fatal[result.Unit](ctx, err)
	}

	s.logger.Warn("Admin deleted", zap.String("id", id.String()))
	return result.Ok(), nil
}

func (s *AdminService) GetByID(ctx context.Context, id uuid.UUID) (result.Result[dto.AdminDto], error) {
	found, err := LookupByID(ctx, id, "Admin", s.admins.GetByID, s.logger)
	if err != nil || found.IsFailure() {
		return result.Fail[dto.AdminDto](found.Err()), err
	}
	return result.Success(mapper.AdminToDto(found.MustValue())), nil
}

func (s *AdminService) GetPaged(ctx context.Context, page, size int) (result.Result[model.PagedResult[dto.AdminDto]], error) {
	if verr := ValidatePagination(page, size); verr != nil {
		return result.Fail[model.PagedResult[dto.AdminDto]](verr), nil
	}

	key := s.keys.SerializeKey("GetPaged", page, size)
	return pagedRead(ctx, s.aside, s.logger, key, "No admins found.",
		func(ctx context.Context) (model.PagedResult[dto.AdminDto], error) {
			entities, err := s.admins.GetPaged(ctx, page, size)
			if err != nil {
				return model.PagedResult[dto.AdminDto]{}, err
			}
			return mapPage(entities, mapper.AdminToDto), nil
		})
}

// ChangePassword replaces the admin's password after checking the current one.
func (s *AdminService) ChangePassword(ctx context.Context, id uuid.UUID, in dto.ChangePasswordDto) (result.Result[result.Unit], error) {
	if msg := validatePassword(in.NewPassword); msg != "" {
		return invalid[result.Unit](msg)
	}

	found, err := LookupByID(ctx, id, "Admin", s.admins.GetByID, s.logger)
	if err != nil || found.IsFailure() {
		return result.FailUnit(found.Err()), err
	}

	if !mapper.CheckPassword(found.MustValue().Password, in.CurrentPassword) {
		s.logger.Warn("Current password mismatch", zap.String("id", id.String()))
		return invalid[result.Unit]("Current password is incorrect.")
	}

	hashed, err := mapper.HashPassword(in.NewPassword)
	if err != nil {
		return fatal[result.Unit](ctx, err)
	}
	if err := s.admins.UpdatePassword(ctx, id, hashed); err != nil {
		return fatal[result.Unit](ctx, err)
	}

	s.logger.Info("Admin password changed", zap.String("id", id.String()))
	return result.Ok(), nil
}

// BanUser marks a user as banned. An unknown user is a NotFound failure and
// nothing is written.
func (s *AdminService) BanUser(ctx context.Context, userID uuid.UUID) (result.Result[string], error) {
	user, err := LookupByID(ctx, userID, "User", s.users.GetByID, s.logger)
	if err != nil || user.IsFailure() {
		return result.Fail[string](user.Err()), err
	}

	if err := s.admins.BanUser(ctx, userID); err != nil {
		return fatal[string](ctx, err)
	}

	s.logger.Info("User banned", zap.String("user_id", userID.String()))
	return result.Success("User banned successfully"), nil
}

func (s *AdminService) UnbanUser(ctx context.Context, userID uuid.UUID) (result.Result[string], error) {
	user, err := LookupByID(ctx, userID, "User", s.users.GetByID, s.logger)
	if err != nil || user.IsFailure() {
		return result.Fail[string](user.Err()), err
	}

	if err := s.admins.UnbanUser(ctx, userID); err != nil {
		return fatal[string](ctx, err)
	}

	s.logger.Info("User unbanned", zap.String("user_id", userID.String()))
	return result.Success("User unbanned successfully"), nil
}
