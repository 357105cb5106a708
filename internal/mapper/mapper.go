// Package mapper translates between persistence entities and DTOs.
// Functions here never touch the store; server assigned fields (id,
// timestamps) are left for the repository to fill.
package mapper

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/unicode/norm"

	"github.com/Gabo-RDev/LinkUp/internal/dto"
	"github.com/Gabo-RDev/LinkUp/internal/model"
)

// PasswordCost is the bcrypt cost used when hashing account passwords.
var PasswordCost = bcrypt.DefaultCost

// NormalizeName trims surrounding space and folds the value to NFC so that
// visually equal names compare equal in uniqueness checks.
func NormalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// HashPassword is the one-way transformation applied to inbound passwords.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plain matches the stored hash.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

func PostToDto(p *model.Post) dto.PostDto {
	out := dto.PostDto{
		PostID:     p.ID,
		Title:      p.Title,
		Content:    p.Content,
		LikesCount: p.LikesCount,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.LastModified(),
	}

	if p.Admin != nil {
		out.AuthorPost = dto.PostAdminDto{
			AdminID:        p.Admin.ID,
			AuthorName:     p.Admin.FullName(),
			AuthorUsername: p.Admin.UserName,
			AuthorPhoto:    p.Admin.ProfilePhoto,
		}
	} else if p.AdminID != nil {
		out.AuthorPost.AdminID = *p.AdminID
	}

	if p.Category != nil {
		out.Category = dto.PostCategoryDto{
			CategoryID:   p.Category.ID,
			CategoryName: p.Category.Name,
		}
	} else if p.CategoryID != nil {
		out.Category.CategoryID = *p.CategoryID
	}

	return out
}

func PostFromCreate(in dto.CreatePostDto) *model.Post {
	return &model.Post{
		Title:      strings.TrimSpace(in.Title),
		Content:    in.Content,
		LikesCount: in.LikesCount,
		AdminID:    in.AuthorPostID,
		CategoryID: in.CategoryID,
	}
}

// ApplyPostUpdate copies the mutable fields of in onto p.
func ApplyPostUpdate(p *model.Post, in dto.UpdatePostDto) {
	p.Title = strings.TrimSpace(in.Title)
	p.Content = in.Content
}

func CategoryToDto(c *model.PostCategory) dto.CategoryDto {
	return dto.CategoryDto{
		CategoryID:   c.ID,
		CategoryName: c.Name,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.LastModified(),
	}
}

func CategoryFromCreate(in dto.CreateCategoryDto) *model.PostCategory {
	return &model.PostCategory{Name: NormalizeName(in.CategoryName)}
}

func InterestToDto(i *model.Interest) dto.InterestDto {
	return dto.InterestDto{
		InterestID: i.ID,
		Name:       i.Name,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.LastModified(),
	}
}

func InterestFromCreate(in dto.CreateInterestDto) *model.Interest {
	return &model.Interest{Name: NormalizeName(in.Name)}
}

func AdminToDto(a *model.Admin) dto.AdminDto {
	return dto.AdminDto{
		ID:           a.ID,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		UserName:     a.UserName,
		Email:        a.Email,
		ProfilePhoto: a.ProfilePhoto,
		Status:       string(a.Status),
	}
}

// AdminFromCreate builds an active, confirmed admin. The password is hashed
// here and nowhere else; photoURL is the already uploaded profile photo.
func AdminFromCreate(in dto.CreateAdminDto, photoURL string) (*model.Admin, error) {
	hashed, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	return &model.Admin{
		FirstName:        NormalizeName(in.FirstName),
		LastName:         NormalizeName(in.LastName),
		UserName:         strings.TrimSpace(in.UserName),
		Email:            strings.ToLower(strings.TrimSpace(in.Email)),
		Password:         hashed,
		ProfilePhoto:     photoURL,
		Status:           model.AdminStatusActive,
		ConfirmedAccount: true,
	}, nil
}

// ApplyAdminUpdate copies names and, when non-empty, the new user name,
// email and photo URL.
func ApplyAdminUpdate(a *model.Admin, in dto.UpdateAdminDto, photoURL string) {
	a.FirstName = NormalizeName(in.FirstName)
	a.LastName = NormalizeName(in.LastName)
	if userName := strings.TrimSpace(in.UserName); userName != "" {
		a.UserName = userName
	}
	if email := strings.TrimSpace(in.Email); email != "" {
		a.Email = strings.ToLower(email)
	}
	if photoURL != "" {
		a.ProfilePhoto = photoURL
	}
}

func CommentToDto(c *model.Comment) dto.CommentDto {
	out := dto.CommentDto{
		CommentID:       c.ID,
		Description:     c.Description,
		PostID:          c.PostID,
		UserID:          c.UserID,
		IsPinned:        c.IsPinned,
		ParentCommentID: c.ParentCommentID,
		Edited:          c.Edited,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.LastModified(),
	}
	if c.User != nil {
		out.UserName = c.User.UserName
	}
	return out
}

func CommentFromCreate(in dto.CreateCommentDto) *model.Comment {
	return &model.Comment{
		Description:     strings.TrimSpace(in.Description),
		PostID:          in.PostID,
		UserID:          in.UserID,
		ParentCommentID: in.ParentCommentID,
	}
}

func LikeToDto(p *model.Post, userID uuid.UUID, liked bool) dto.LikeDto {
	return dto.LikeDto{
		PostID:     p.ID,
		UserID:     userID,
		Liked:      liked,
		LikesCount: p.LikesCount,
	}
}

func UserToSummary(u *model.User) dto.UserSummaryDto {
	return dto.UserSummaryDto{
		UserID:       u.ID,
		UserName:     u.UserName,
		FullName:     strings.TrimSpace(u.FirstName + " " + u.LastName),
		ProfilePhoto: u.ProfilePhoto,
	}
}

// UserFromRegister hashes the password and builds an active, unconfirmed user.
func UserFromRegister(in dto.RegisterUserDto) (*model.User, error) {
	hashed, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	return &model.User{
		FirstName: NormalizeName(in.FirstName),
		LastName:  NormalizeName(in.LastName),
		UserName:  strings.TrimSpace(in.UserName),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Password:  hashed,
		Status:    model.UserStatusActive,
	}, nil
}

func UserToDto(u *model.User) dto.UserDto {
	return dto.UserDto{
		ID:               u.ID,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		UserName:         u.UserName,
		Email:            u.Email,
		Status:           string(u.Status),
		ConfirmedAccount: u.ConfirmedAccount,
	}
}
