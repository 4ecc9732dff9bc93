package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/bagdasarian/league-picks/internal/domain"
	"github.com/go-playground/form/v4"
	"github.com/go-playground/validator/v10"
)

// Схемы форм. Тег form задает имя поля формы, validate - правила проверки.

type CreateLeagueForm struct {
	LeagueName string `form:"leagueName" validate:"required,max=100"`
}

type JoinLeagueForm struct {
	InviteCode string `form:"inviteCode" validate:"required,max=32"`
}

// LeagueActionForm: действие выполняется только при значении "true"
type LeagueActionForm struct {
	Delete string `form:"delete"`
	Leave  string `form:"leave"`
}

// VoteForm: round ограничен сверху размером колонки INTEGER
type VoteForm struct {
	TeamID string `form:"teamId" validate:"required"`
	Round  int    `form:"round" validate:"required,min=1,max=2147483647"`
}

func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	return v
}

// decodeForm заполняет dst из тела формы и проверяет результат по тегам validate
func (h *Handler) decodeForm(r *http.Request, dst any) error {
	if err := r.ParseForm(); err != nil {
		return domain.NewValidationError("form", "malformed form body")
	}

	values := make(url.Values, len(r.PostForm))
	for key, vals := range r.PostForm {
		for _, v := range vals {
			values.Add(key, strings.TrimSpace(v))
		}
	}

	fieldErrors := make(map[string]string)
	if err := h.formDecoder.Decode(dst, values); err != nil {
		decodeErrors, ok := err.(form.DecodeErrors)
		if !ok {
			return err
		}
		for field := range decodeErrors {
			fieldErrors[field] = fmt.Sprintf("%s must be a number", field)
		}
	}

	if err := h.validate.Struct(dst); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		for _, fe := range validationErrors {
			if _, exists := fieldErrors[fe.Field()]; !exists {
				fieldErrors[fe.Field()] = fieldErrorMessage(fe)
			}
		}
	}

	if len(fieldErrors) > 0 {
		return &domain.ValidationError{Fields: fieldErrors}
	}
	return nil
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
