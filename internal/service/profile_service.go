package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"

	"fitfusion/backend/internal/domain"
	"fitfusion/backend/internal/repository"
	"fitfusion/backend/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrUnsupportedImage = errors.New("profile picture must be a JPEG, PNG, GIF, or WebP image")
)

// ProfileUpdate carries the self-service mutable profile fields. Email and
// role are deliberately absent; neither can be changed through this path.
type ProfileUpdate struct {
	Name            string               `json:"name"`
	Bio             string               `json:"bio"`
	Phone           string               `json:"phone"`
	Stats           domain.PhysicalStats `json:"stats"`
	ShowContactInfo bool                 `json:"showContactInfo"`
	TrainerInfo     *domain.TrainerInfo  `json:"trainerInfo,omitempty"`
}

// ProfileService manages the authenticated user's own profile and the public
// trainer directory projection.
type ProfileService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, update ProfileUpdate) (*domain.User, error)
	SetProfilePicture(ctx context.Context, userID primitive.ObjectID, fileName, contentType string, r io.Reader) (string, error)
	ListTrainers(ctx context.Context) ([]domain.User, error)
}

type profileService struct {
	userRepo    repository.UserRepository
	fileStorage storage.FileStorage
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(userRepo repository.UserRepository, fileStorage storage.FileStorage) ProfileService {
	return &profileService{
		userRepo:    userRepo,
		fileStorage: fileStorage,
	}
}

// GetProfile returns the user's own profile.
func (s *profileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// UpdateProfile merges the submitted fields into the user's profile.
// TrainerInfo is accepted only for trainers and dropped otherwise.
func (s *profileService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, update ProfileUpdate) (*domain.User, error) {
	if update.Name == "" {
		return nil, ErrValidation
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	user.Name = update.Name
	user.Bio = update.Bio
	user.Phone = update.Phone
	user.Stats = update.Stats
	user.ShowContactInfo = update.ShowContactInfo
	if user.IsTrainer() && update.TrainerInfo != nil {
		user.TrainerInfo = update.TrainerInfo
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// allowed image extensions by MIME type
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// SetProfilePicture stores the uploaded image and records its public URL on
// the profile. The previous picture is deleted from storage on success.
func (s *profileService) SetProfilePicture(ctx context.Context, userID primitive.ObjectID, fileName, contentType string, r io.Reader) (string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", ErrUnsupportedImage
	}
	ext, ok := imageExtensions[mediaType]
	if !ok {
		return "", ErrUnsupportedImage
	}

	objectKey := fmt.Sprintf("profile-%s-%s%s", userID.Hex(), uuid.NewString(), ext)
	url, err := s.fileStorage.Save(ctx, objectKey, mediaType, r)
	if err != nil {
		return "", err
	}

	oldURL := user.ProfilePicture
	user.ProfilePicture = url
	if err := s.userRepo.Update(ctx, user); err != nil {
		// Roll the orphaned object back; the profile still points at the old one.
		_ = s.fileStorage.Delete(ctx, objectKey)
		return "", err
	}

	if key := objectKeyFromURL(oldURL); key != "" {
		_ = s.fileStorage.Delete(ctx, key)
	}
	return url, nil
}

// objectKeyFromURL extracts the storage key (final path segment) from a
// previously recorded picture URL.
func objectKeyFromURL(url string) string {
	if url == "" {
		return ""
	}
	idx := strings.LastIndex(url, "/")
	if idx < 0 || idx == len(url)-1 {
		return ""
	}
	return url[idx+1:]
}

// ListTrainers returns the public trainer directory. Contact fields are
// blanked for trainers who have not opted in to showing them.
func (s *profileService) ListTrainers(ctx context.Context) ([]domain.User, error) {
	trainers, err := s.userRepo.ListByRole(ctx, domain.RoleTrainer)
	if err != nil {
		return nil, err
	}

	for i := range trainers {
		trainers[i].PasswordHash = ""
		if !trainers[i].ShowContactInfo {
			trainers[i].Email = ""
			trainers[i].Phone = ""
			if trainers[i].TrainerInfo != nil {
				// Blank a copy; the record from the repository must not be
				// mutated through the shared pointer.
				info := *trainers[i].TrainerInfo
				info.SocialLinks = domain.SocialLinks{}
				trainers[i].TrainerInfo = &info
			}
		}
	}
	return trainers, nil
}
