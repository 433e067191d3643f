package impl

import (
	"unicode/utf8"

	"zephyr/config"
	"zephyr/internal/domain/entity"
	domainerrors "zephyr/internal/domain/errors"
	"zephyr/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	tagEmailShape  = "emailshape"
	tagPasswordLen = "passwordlen"
)

// Form shapes. Field order is the order rules are reported in.
type loginForm struct {
	Identifier string `validate:"required"`
	Password   string `validate:"required"`
}

type signUpForm struct {
	Username        string `validate:"required"`
	Email           string `validate:"required,emailshape"`
	Password        string `validate:"required,passwordlen"`
	ConfirmPassword string `validate:"eqfield=Password"`
}

type forgotPasswordForm struct {
	Email string `validate:"required,emailshape"`
}

type resetPasswordForm struct {
	Password        string `validate:"required,passwordlen"`
	ConfirmPassword string `validate:"eqfield=Password"`
}

type credentialValidator struct {
	validate          *validator.Validate
	passwordMinLength int
}

// NewCredentialValidator builds the form validator with the configured password length.
func NewCredentialValidator(cfg *config.Config) (usecase.CredentialValidator, error) {
	minLength := cfg.Auth.PasswordMinLength

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation(tagEmailShape, func(fl validator.FieldLevel) bool {
		return entity.IsEmailShape(fl.Field().String())
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to register %s validator", tagEmailShape)
	}
	if err := validate.RegisterValidation(tagPasswordLen, func(fl validator.FieldLevel) bool {
		return utf8.RuneCountInString(fl.Field().String()) >= minLength
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to register %s validator", tagPasswordLen)
	}

	return &credentialValidator{
		validate:          validate,
		passwordMinLength: minLength,
	}, nil
}

func (v *credentialValidator) ValidateLogin(input usecase.LoginInput) error {
	return v.check(loginForm{
		Identifier: input.Identifier,
		Password:   input.Password,
	})
}

func (v *credentialValidator) ValidateSignUp(input usecase.SignUpInput) error {
	return v.check(signUpForm{
		Username:        input.Username,
		Email:           input.Email,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
	})
}

func (v *credentialValidator) ValidateForgotPassword(input usecase.ForgotPasswordInput) error {
	return v.check(forgotPasswordForm{Email: input.Email})
}

func (v *credentialValidator) ValidateResetPassword(input usecase.ResetPasswordInput) error {
	return v.check(resetPasswordForm{
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
	})
}

// check runs the struct rules and converts the first failure into its form message.
func (v *credentialValidator) check(form any) error {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.Wrap(err, "failed to validate form")
	}

	return v.toDomainError(fieldErrs[0])
}

func (v *credentialValidator) toDomainError(fieldErr validator.FieldError) error {
	switch fieldErr.Field() + "." + fieldErr.Tag() {
	case "Identifier.required":
		return domainerrors.ErrIdentifierRequired
	case "Username.required":
		return domainerrors.ErrUsernameRequired
	case "Email.required":
		return domainerrors.ErrEmailRequired
	case "Email." + tagEmailShape:
		return domainerrors.ErrEmailInvalid
	case "Password.required":
		return domainerrors.ErrPasswordRequired
	case "Password." + tagPasswordLen:
		return domainerrors.PasswordTooShort(v.passwordMinLength)
	case "ConfirmPassword.eqfield":
		return domainerrors.ErrPasswordMismatch
	default:
		return errors.Errorf("unmapped validation rule %s on %s", fieldErr.Tag(), fieldErr.Field())
	}
}
