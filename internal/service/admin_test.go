package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gabo-RDev/LinkUp/internal/dto"
	"github.com/Gabo-RDev/LinkUp/internal/mapper"
	"github.com/Gabo-RDev/LinkUp/internal/model"
	"github.com/Gabo-RDev/LinkUp/internal/result"
	"github.com/Gabo-RDev/LinkUp/pkg/testsupport"
)

func newAdmin(userName string) dto.CreateAdminDto {
	return dto.CreateAdminDto{
		FirstName: "Ada",
		LastName:  "Lovelace",
		UserName:  userName,
		Email:     userName + "@linkup.test",
		Password:  "correct horse",
	}
}

func TestAdminService_Create(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	in := newAdmin("ada")
	in.Email = "Ada@LinkUp.test"
	in.ProfilePhoto = &dto.FileUpload{Name: "ada.png", Content: strings.NewReader("png")}

	res, err := h.admins.Create(ctx, in)
	require.NoError(t, err)
	require.True(t, res.IsSuccess())

	admin := res.MustValue()
	assert.Equal(t, "ada@linkup.test", admin.Email)
	assert.Equal(t, "https://cdn.test/photo.png", admin.ProfilePhoto)
	assert.Equal(t, string(model.AdminStatusActive), admin.Status)
	assert.Equal(t, 1, h.uploader.calls)

	stored, err := h.adminRepo.GetByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", stored.Password)
	assert.True(t, mapper.CheckPassword(stored.Password, "correct horse"))
}

func TestAdminService_CreateConflicts(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.admins.Create(ctx, newAdmin("ada"))
	require.NoError(t, err)

	dupEmail := newAdmin("other")
	dupEmail.Email = "ADA@linkup.test"
	res, err := h.admins.Create(ctx, dupEmail)
	require.NoError(t, err)
	assert.Equal(t, result.KindConflict, res.Err().Kind)
	assert.Equal(t, "Email already exist", res.Err().Message)

	dupName := newAdmin("ada")
	dupName.Email = "fresh@linkup.test"
	res, err = h.admins.Create(ctx, dupName)
	require.NoError(t, err)
	assert.Equal(t, "409", res.Err().Code)
	assert.Equal(t, "UserName already exist", res.Err().Message)

	total, err := h.adminRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestAdminService_CreateValidation(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		name   string
		mutate func(*dto.CreateAdminDto)
	}{
		{"missing first name", func(in *dto.CreateAdminDto) { in.FirstName = "" }},
		{"bad email", func(in *dto.CreateAdminDto) { in.Email = "not-an-email" }},
		{"short password", func(in *dto.CreateAdminDto) { in.Password = "short" }},
		{"long user name", func(in *dto.CreateAdminDto) { in.UserName = strings.Repeat("x", 26) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := newAdmin("ada")
			tt.mutate(&in)
			res, err := h.admins.Create(context.Background(), in)
			require.NoError(t, err)
			require.True(t, res.IsFailure())
			assert.Equal(t, result.KindValidation, res.Err().Kind)
		})
	}
}

func TestAdminService_UploadFailureAbortsCreate(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.uploader.err = errors.New("cloudinary unavailable")

	in := newAdmin("ada")
	in.ProfilePhoto = &dto.FileUpload{Name: "ada.png", Content: strings.NewReader("png")}

	res, err := h.admins.Create(ctx, in)
	require.NoError(t, err)
	require.True(t, res.IsFailure())
	assert.Equal(t, result.KindUpstream, res.Err().Kind)
	assert.Equal(t, "502", res.Err().Code)

	total, err := h.adminRepo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestAdminService_BanAndUnban(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	user := testsupport.SeedUser(t, h.db, "grace", h.clock.Now())

	res, err := h.admins.BanUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "User banned successfully", res.MustValue())

	stored, err := h.userRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.UserStatusBanned, stored.Status)

	res, err = h.admins.UnbanUser(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, res.IsSuccess())

	stored, err = h.userRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.UserStatusActive, stored.Status)
}

func TestAdminService_BanUnknownUser(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	bystander := testsupport.SeedUser(t, h.db, "grace", h.clock.Now())

	res, err := h.admins.BanUser(ctx, uuid.New())
	require.NoError(t, err)
	require.True(t, res.IsFailure())
	assert.Equal(t, result.KindNotFound, res.Err().Kind)

	stored, err := h.userRepo.GetByID(ctx, bystander.ID)
	require.NoError(t, err)
	assert.Equal(t, model.UserStatusActive, stored.Status)
	assert.Nil(t, stored.UpdatedAt, "no store mutation attempted")
}

func TestAdminService_ChangePassword(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	created, err := h.admins.Create(ctx, newAdmin("ada"))
	require.NoError(t, err)
	id := created.MustValue().ID

	res, err := h.admins.ChangePassword(ctx, id, dto.ChangePasswordDto{CurrentPassword: "wrong one", NewPassword: "new password"})
	require.NoError(t, err)
	assert.Equal(t, "Current password is incorrect.", res.Err().Message)

	res, err = h.admins.ChangePassword(ctx, id, dto.ChangePasswordDto{CurrentPassword: "correct horse", NewPassword: "new password"})
	require.NoError(t, err)
	assert.True(t, res.IsSuccess())

	stored, err := h.adminRepo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, mapper.CheckPassword(stored.Password, "new password"))
}

func TestAdminService_UpdateKeepsPhotoWithoutUpload(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	in := newAdmin("ada")
	in.ProfilePhoto = &dto.FileUpload{Name: "ada.png", Content: strings.NewReader("png")}
	created, err := h.admins.Create(ctx, in)
	require.NoError(t, err)

	res, err := h.admins.Update(ctx, created.MustValue().ID, dto.UpdateAdminDto{FirstName: "Augusta", LastName: "King"})
	require.NoError(t, err)
	require.True(t, res.IsSuccess())
	assert.Equal(t, "Augusta", res.MustValue().FirstName)
	assert.Equal(t, "https://cdn.test/photo.png", res.MustValue().ProfilePhoto)

	paged, err := h.admins.GetPaged(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, paged.MustValue().TotalItems)
}

func TestAdminService_UpdateIdentity(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	ada, err := h.admins.Create(ctx, newAdmin("ada"))
	require.NoError(t, err)
	_, err = h.admins.Create(ctx, newAdmin("bob"))
	require.NoError(t, err)
	id := ada.MustValue().ID

	tests := []struct {
		name    string
		in      dto.UpdateAdminDto
		kind    result.Kind
		message string
	}{
		{
			name:    "email owned by another admin",
			in:      dto.UpdateAdminDto{FirstName: "Ada", LastName: "Lovelace", Email: "BOB@linkup.test"},
			kind:    result.KindConflict,
			message: "Email already exist",
		},
		{
			name:    "user name owned by another admin",
			in:      dto.UpdateAdminDto{FirstName: "Ada", LastName: "Lovelace", UserName: "Bob"},
			kind:    result.KindConflict,
			message: "UserName already exist",
		},
		{
			name: "malformed email",
			in:   dto.UpdateAdminDto{FirstName: "Ada", LastName: "Lovelace", Email: "not-an-email"},
			kind: result.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := h.admins.Update(ctx, id, tt.in)
			require.NoError(t, err)
			require.True(t, res.IsFailure())
			assert.Equal(t, tt.kind, res.Err().Kind)
			if tt.message != "" {
				assert.Equal(t, tt.message, res.Err().Message)
			}
		})
	}

	res, err := h.admins.Update(ctx, id, dto.UpdateAdminDto{
		FirstName: "Ada", LastName: "Lovelace", UserName: "ada", Email: "Countess@LinkUp.test",
	})
	require.NoError(t, err)
	require.True(t, res.IsSuccess(), "own user name may be resubmitted")
	assert.Equal(t, "countess@linkup.test", res.MustValue().Email)
	assert.Equal(t, "ada", res.MustValue().UserName)
}
