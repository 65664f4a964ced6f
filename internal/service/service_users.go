package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-hub/internal/logger"
	"github.com/MKhiriev/go-user-hub/internal/store"
	"github.com/MKhiriev/go-user-hub/internal/utils"
	"github.com/MKhiriev/go-user-hub/internal/validators"
	"github.com/MKhiriev/go-user-hub/models"
)

// maxProfileImageSize is the upper bound for an uploaded avatar, in bytes.
const maxProfileImageSize = 5 << 20

// usersService is the concrete implementation of UsersService. It covers
// profile self-service and the admin CRUD surface, delegating persistence to
// a UserRepository and avatar hosting to an ImageStore.
type usersService struct {
	userRepository store.UserRepository
	imageStore     store.ImageStore
	validator      validators.Validator
	logger         *logger.Logger
}

// NewUsersService constructs a UsersService over the given repository and
// image store.
func NewUsersService(userRepository store.UserRepository, imageStore store.ImageStore, validator validators.Validator, logger *logger.Logger) UsersService {
	return &usersService{
		userRepository: userRepository,
		imageStore:     imageStore,
		validator:      validator,
		logger:         logger,
	}
}

// UpdateUser applies a partial update to a user record. A supplied email is
// re-validated and lowercase-normalized before it reaches the store, so an
// address can never bypass the registration shape check through the update
// path. Concurrent updates resolve last-write-wins.
//
// Returns the canonical post-update record or:
//   - A validator sentinel error when the request contract is violated.
//   - A wrapped store.ErrEmailAlreadyExists when the new email is taken.
//   - A wrapped store.ErrNoUserWasFound when the target does not exist.
func (s *usersService) UpdateUser(ctx context.Context, req models.UpdateDataRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	// normalize before validation, the same canonical form login resolves
	if req.Email != nil {
		normalized := normalizeEmail(*req.Email)
		req.Email = &normalized
	}

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Error().Int64("id", req.UserID).Err(err).Msg("invalid update data provided")
		return models.User{}, err
	}

	update := models.UserUpdate{
		UserID: req.UserID,
		Name:   req.Name,
		Email:  req.Email,
	}

	updatedUser, err := s.userRepository.UpdateUser(ctx, update)
	if err != nil {
		log.Err(err).Int64("id", req.UserID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updatedUser, nil
}

// UpdateProfileImage uploads new avatar bytes to the image store and persists
// the resulting URL on the user record. Image bytes never touch the database.
//
// Size and format are enforced here as the last line of defence; the HTTP
// boundary applies the same limits earlier to reject oversized bodies cheaply.
func (s *usersService) UpdateProfileImage(ctx context.Context, userID int64, data []byte, contentType string) (models.User, error) {
	log := logger.FromContext(ctx)

	if len(data) == 0 || len(data) > maxProfileImageSize {
		return models.User{}, ErrImageTooLarge
	}

	if contentType != "image/jpeg" && contentType != "image/png" {
		return models.User{}, ErrUnsupportedImageFormat
	}

	url, err := s.imageStore.Upload(ctx, data, contentType)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile image upload failed")
		return models.User{}, fmt.Errorf("profile image upload failed: %w", err)
	}

	updatedUser, err := s.userRepository.UpdateUser(ctx, models.UserUpdate{
		UserID:          userID,
		ProfileImageURL: &url,
	})
	if err != nil {
		log.Err(err).Int64("id", userID).Str("url", url).Msg("saving profile image URL failed")
		return models.User{}, fmt.Errorf("saving profile image URL failed: %w", err)
	}

	return updatedUser, nil
}

// GetUser resolves a user ID to the current account record. The auth
// middleware calls it on every authenticated request, so a deleted account
// invalidates its outstanding tokens at the very next request.
func (s *usersService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// ListUsers returns every user account, newest first. Password hashes stay
// inside the returned models and are stripped by the JSON projection at the
// boundary.
func (s *usersService) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing users ended with error")
		return nil, fmt.Errorf("listing users ended with error: %w", err)
	}

	return users, nil
}

// AddUser creates an account on behalf of an administrator. The contract is
// identical to self-registration: full validation, bcrypt hashing, and no
// way to mint another administrator.
func (s *usersService) AddUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Error().Str("email", req.Email).Err(err).Msg("invalid add-user data provided")
		return models.User{}, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	createdUser, err := s.userRepository.CreateUser(ctx, models.User{
		Email:        normalizeEmail(req.Email),
		Name:         req.Name,
		PasswordHash: passwordHash,
		IsAdmin:      false,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// DeleteUser removes an account permanently. Deleting a missing account
// surfaces a wrapped store.ErrNoUserWasFound; a deleted user's outstanding
// tokens die at the next authenticated request, when the middleware lookup
// fails.
func (s *usersService) DeleteUser(ctx context.Context, req models.DeleteUserRequest) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Error().Int64("id", req.UserID).Err(err).Msg("invalid delete request provided")
		return err
	}

	if err := s.userRepository.DeleteUser(ctx, req.UserID); err != nil {
		log.Err(err).Int64("id", req.UserID).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}
