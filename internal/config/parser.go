package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/starrating/internal/rating"
	apperrors "github.com/alexisbeaulieu97/starrating/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseFile loads a configuration file from disk and validates it.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates a configuration document. An empty document
// yields an empty File.
func Parse(path string, data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, apperrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&file); err != nil {
		return nil, err
	}

	return &file, nil
}

// Validate checks a configuration document.
func Validate(file *File) error {
	if file == nil {
		return apperrors.NewValidationError("", "configuration is empty", nil)
	}
	return convertValidationError(rating.Validator().Struct(file))
}

// convertValidationError reports the first validator failure with its yaml path.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		fe := ves[0]
		field := fieldPath(fe)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("config", err.Error(), err)
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
