package validators

import (
	"context"
	"errors"

	"github.com/emarchenko/go-identity/models"
)

// Field names accepted by [RequestValidator.Validate]. They match the JSON
// keys of the request bodies they describe.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
)

// RequestValidator validates the shape of inbound request bodies. It is
// stateless and safe for concurrent use.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the concrete type of obj and checks the requested
// fields (or the type's default field set when none are given). All failing
// fields are reported together via errors.Join.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateCredentials(_ context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if credentials.Email == "" {
				errs = append(errs, ErrEmptyEmail)
			}
		case FieldPassword:
			if credentials.Password == "" {
				errs = append(errs, ErrEmptyPassword)
			}
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}

func (v *RequestValidator) validateRegisterRequest(_ context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldName}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if request.Email == "" {
				errs = append(errs, ErrEmptyEmail)
			}
		case FieldPassword:
			if request.Password == "" {
				errs = append(errs, ErrEmptyPassword)
			}
		case FieldName:
			if request.Name == "" {
				errs = append(errs, ErrEmptyName)
			}
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}
