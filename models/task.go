package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Task represents a single to-do item.
type Task struct {
	ID          int64  `json:"id" yaml:"id" toml:"id" validate:"required,gt=0"`
	Description string `json:"description" yaml:"description" toml:"description" validate:"required,notblank"`
	Completed   bool   `json:"completed" yaml:"completed" toml:"completed"`
}

// Pending reports whether the task has not been completed yet.
func (t Task) Pending() bool {
	return !t.Completed
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = newValidator()
}

func newValidator() *validator.Validate {
	v := validator.New()
	// notblank rejects strings made only of whitespace, which "required" lets through.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	if validate == nil {
		validate = newValidator()
	}
	err := validate.Struct(s)
	if err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		var errorMessages []string
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, fmt.Sprintf("Validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
	}
	return nil
}

// NewTask builds a pending task whose ID is the creation time in Unix milliseconds.
// The description is stored as given; callers trim it first.
func NewTask(description string, now time.Time) Task {
	return Task{
		ID:          now.UnixMilli(),
		Description: description,
		Completed:   false,
	}
}
