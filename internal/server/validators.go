// file: internal/server/validators.go
// version: 2.0.0
// guid: 9b0c1d2e-3f4a-5b6c-7d8e-9f0a1b2c3d4e

package server

import (
	"fmt"
	"strings"
)

// maxOperations bounds the ops list of a single /apply request.
const maxOperations = 256

// operationNames are the values accepted in OperationRequest.Op.
var operationNames = []string{"add", "modify", "delete", "print"}

// ValidationError represents a validation error with code
type ValidationError struct {
	Field   string
	Message string
	Code    string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateInteger validates that an integer is within acceptable range
func ValidateInteger(value int, fieldName string, minValue int, maxValue int) error {
	if minValue >= 0 && value < minValue {
		return ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be at least %d", fieldName, minValue),
			Code:    fmt.Sprintf("%s_TOO_SMALL", strings.ToUpper(fieldName)),
		}
	}
	if maxValue >= 0 && value > maxValue {
		return ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must not exceed %d", fieldName, maxValue),
			Code:    fmt.Sprintf("%s_TOO_LARGE", strings.ToUpper(fieldName)),
		}
	}
	return nil
}

// ValidateStringInList validates that a string is one of the allowed values
func ValidateStringInList(value string, fieldName string, allowed []string) error {
	value = strings.TrimSpace(value)
	for _, allowed := range allowed {
		if value == allowed {
			return nil
		}
	}
	return ValidationError{
		Field:   fieldName,
		Message: fmt.Sprintf("%s must be one of: %v", fieldName, allowed),
		Code:    fmt.Sprintf("%s_INVALID_VALUE", strings.ToUpper(fieldName)),
	}
}

// ValidateOperationCount checks the length of an /apply ops list.
func ValidateOperationCount(n int) error {
	if n == 0 {
		return ValidationError{
			Field:   "ops",
			Message: "at least one operation is required",
			Code:    "OPS_REQUIRED",
		}
	}
	return ValidateInteger(n, "ops", 1, maxOperations)
}

// ValidateOperationRequest checks the shape of one ops element before its
// tag is resolved.
func ValidateOperationRequest(r OperationRequest) error {
	if err := ValidateStringInList(strings.ToLower(r.Op), "op", operationNames); err != nil {
		return err
	}
	if strings.TrimSpace(r.Tag) == "" {
		return ValidationError{
			Field:   "tag",
			Message: "tag is required",
			Code:    "TAG_REQUIRED",
		}
	}
	return nil
}

// ValidateRecord checks a record number given as a query parameter.
func ValidateRecord(record int) error {
	return ValidateInteger(record, "record", 1, 9)
}
