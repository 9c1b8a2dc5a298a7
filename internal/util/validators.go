package util

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidateSlugFormat 验证字段是否为合法的 slug（小写字母、数字、连字符）
func ValidateSlugFormat(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return slugPattern.MatchString(value)
}
