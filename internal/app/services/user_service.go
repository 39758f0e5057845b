package services

import (
	"context"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/filestorage"
)

// UserService defines the interface for user profile operations
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
	UpdateProfilePhoto(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (*dto.UserProfileResponse, error)
	DeleteProfilePhoto(ctx context.Context, userID int64) error
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo    repositories.UserRepository
	fileStorage *filestorage.LocalStorage
	logger      zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo repositories.UserRepository,
	fileStorage *filestorage.LocalStorage,
	logger zerolog.Logger,
) UserService {
	return &userServiceImpl{
		userRepo:    userRepo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// GetProfile retrieves the user's full profile
func (s *userServiceImpl) GetProfile(ctx context.Context, userID int64) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserProfileResponse(user), nil
}

// UpdateProfile applies partial profile changes and returns the updated profile
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	if err := s.userRepo.UpdateProfile(ctx, userID, req.FirstName, req.LastName, req.Bio); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserProfileResponse(user), nil
}

// UpdateProfilePhoto stores the uploaded photo and links it to the profile
func (s *userServiceImpl) UpdateProfilePhoto(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	photoURL, err := s.fileStorage.SaveFileWithPath(fileHeader, "profile_photos")
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateProfilePhotoURL(ctx, userID, &photoURL); err != nil {
		return nil, err
	}

	// Old photo is removed only after the new one is linked
	if user.ProfilePhotoURL != nil {
		if err := s.fileStorage.DeleteFile(*user.ProfilePhotoURL); err != nil {
			s.logger.Warn().Err(err).Int64("userID", userID).Msg("Failed to delete old profile photo")
		}
	}

	user.ProfilePhotoURL = &photoURL
	return toUserProfileResponse(user), nil
}

// DeleteProfilePhoto unlinks and removes the user's profile photo
func (s *userServiceImpl) DeleteProfilePhoto(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.ProfilePhotoURL == nil {
		return nil
	}

	if err := s.userRepo.UpdateProfilePhotoURL(ctx, userID, nil); err != nil {
		return err
	}

	if err := s.fileStorage.DeleteFile(*user.ProfilePhotoURL); err != nil {
		s.logger.Warn().Err(err).Int64("userID", userID).Msg("Failed to delete profile photo file")
	}
	return nil
}
