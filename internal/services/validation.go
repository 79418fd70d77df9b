package services

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/localnerve/beedb/internal/models"
	"github.com/localnerve/beedb/internal/types"
	"github.com/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their wire names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// HiveInput is the create-or-update payload for a hive
type HiveInput struct {
	ID       types.FlexID `json:"id"`
	UserID   string       `json:"userid" validate:"required,max=64"`
	Number   string       `json:"number" validate:"required,max=16"`
	Colour   *string      `json:"colour" validate:"required,max=16"`
	Place    *string      `json:"place" validate:"required,max=128"`
	Frames   *int         `json:"frames"`
	Archived *bool        `json:"archived" validate:"required"`
}

// ObservationInput is the create-or-update payload for an observation
type ObservationInput struct {
	ID      types.FlexID `json:"id"`
	HiveID  types.FlexID `json:"hive.id" validate:"required"`
	Date    *models.Date `json:"date" validate:"required"`
	Comment *string      `json:"comment"`
	UserID  string       `json:"userid" validate:"required,max=64"`
	Queen   *int         `json:"queen" validate:"required"`
	Larva   *int         `json:"larva" validate:"required"`
	Egg     *int         `json:"egg" validate:"required"`
	Mood    *int         `json:"mood" validate:"required"`
	Size    *int         `json:"size" validate:"required"`
	Varroa  *int         `json:"varroa" validate:"required"`
}

// NoteInput is the create-or-update payload for a global note
type NoteInput struct {
	ID     types.FlexID `json:"id"`
	UserID string       `json:"userid" validate:"required,max=64"`
	Note   *string      `json:"note" validate:"required"`
}

// DeleteInput identifies a row to soft-delete. Other fields in the body are ignored.
type DeleteInput struct {
	ID     types.FlexID `json:"id" validate:"required"`
	UserID string       `json:"userid" validate:"required,max=64"`
}

// Validate checks struct tags on a payload and wraps failures in ErrValidation
func Validate(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		fields := make([]string, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			fields = append(fields, fe.Field())
		}
		return errors.Wrapf(ErrValidation, "missing or malformed fields: %s", strings.Join(fields, ", "))
	}

	return errors.Wrap(ErrValidation, err.Error())
}
