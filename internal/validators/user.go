package validators

import (
	"context"
	"regexp"

	"github.com/MKhiriev/go-user-hub/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldName targets the display name of an account.
	FieldName = "name"

	// FieldEmail targets the email address of an account.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of a credential request.
	FieldPassword = "password"

	// FieldUserID targets the identifier of the record being mutated.
	FieldUserID = "user_id"
)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 6

// emailShape is the basic local@domain.tld shape check applied to every
// email that enters the system, both at registration and on later updates.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserValidator implements the Validator interface for all user-related
// request models: RegisterRequest, LoginRequest, UpdateDataRequest, and
// DeleteUserRequest.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.RegisterRequest / *models.RegisterRequest
//   - models.LoginRequest / *models.LoginRequest
//   - models.UpdateDataRequest / *models.UpdateDataRequest
//   - models.DeleteUserRequest / *models.DeleteUserRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.UpdateDataRequest:
		return v.validateUpdateDataRequest(ctx, value, fields...)
	case *models.UpdateDataRequest:
		return v.validateUpdateDataRequest(ctx, *value, fields...)

	case models.DeleteUserRequest:
		return v.validateDeleteUserRequest(ctx, value, fields...)
	case *models.DeleteUserRequest:
		return v.validateDeleteUserRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRegisterRequest enforces the registration contract: all fields
// present, email in local@domain.tld shape, password long enough.
// The missing-fields check intentionally runs before the shape checks so
// that an empty request yields the generic "provide all fields" message.
func (v *UserValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return ErrMissingFields
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			// presence already checked above
		case FieldEmail:
			if !emailShape.MatchString(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len(req.Password) < minPasswordLength {
				return ErrWeakPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLoginRequest only checks field presence. Shape checks are skipped
// on purpose: a malformed email must produce the same generic credential
// failure as an unknown one, so the login path never reveals why.
func (v *UserValidator) validateLoginRequest(_ context.Context, req models.LoginRequest, _ ...string) error {
	if req.Email == "" || req.Password == "" {
		return ErrMissingFields
	}

	return nil
}

// validateUpdateDataRequest enforces the partial-update contract: a valid
// target ID, at least one field to change, and a well-shaped email when one
// is supplied.
func (v *UserValidator) validateUpdateDataRequest(_ context.Context, req models.UpdateDataRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldName, FieldEmail}
	}

	for _, field := range fields {
		switch field {
		case FieldUserID:
			if req.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldName:
			// optional; empty pointer means "leave unchanged"
		case FieldEmail:
			if req.Email != nil && !emailShape.MatchString(*req.Email) {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	if req.Name == nil && req.Email == nil {
		return ErrNoFieldsToUpdate
	}

	return nil
}

func (v *UserValidator) validateDeleteUserRequest(_ context.Context, req models.DeleteUserRequest, _ ...string) error {
	if req.UserID <= 0 {
		return ErrInvalidUserID
	}

	return nil
}
