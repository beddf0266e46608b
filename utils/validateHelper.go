package utils

import (
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct runs validator tags on an input struct and converts the
// first failure into a ValidationError.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return NewValidationError("field %s failed %s validation", errs[0].Field(), errs[0].Tag())
		}
		return NewValidationError("%s", err.Error())
	}
	return nil
}

// ValidateResourceId checks that an id resolves to an existing row of T.
func ValidateResourceId[T any](db *gorm.DB, id string) error {
	count, err := ResourceCountWhere[T](db, "id = ?", id)
	if err != nil {
		return err
	}
	if count <= 0 {
		return ErrorRecordNotFound
	}
	return nil
}

// ValidateUnique checks that no row of T already holds value in column,
// returning a DuplicateKeyError otherwise.
func ValidateUnique[T any](db *gorm.DB, column string, value interface{}) error {
	count, err := ResourceCountWhere[T](db, column+" = ?", value)
	if err != nil {
		return err
	}
	if count > 0 {
		return NewDuplicateKeyError("duplicate %s", column)
	}
	return nil
}

// ResourceCountWhere counts rows of T matching the condition.
func ResourceCountWhere[T any](db *gorm.DB, condition string, value ...interface{}) (int64, error) {
	var model T
	var count int64
	if err := db.Model(&model).Where(condition, value...).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
