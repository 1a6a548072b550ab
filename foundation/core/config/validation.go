// File: validation.go
// Title: Configuration Validation
// Description: Validates loaded configuration values against declarative
//              rules: presence, type and an allowed value set.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with rule based validation
// - 2025-03-02 v0.2.0: Replaced bounds and pattern checks with OneOf, read-only validation

package config

import (
	"fmt"
	"sort"
	"strings"

	mdwerror "github.com/msto63/stringy/foundation/core/error"
)

// ValidationRule defines validation criteria for configuration values
type ValidationRule struct {
	Required bool     // Whether the key must be present
	Type     string   // "string", "int", "bool" or "[]string"
	OneOf    []string // Allowed values, compared case-insensitively
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err converts a failed result into a CONFIG_INVALID error, or nil
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return mdwerror.New("configuration validation failed: "+strings.Join(r.Errors, "; ")).
		WithCode(mdwerror.CodeConfigInvalid).
		WithOperation("config.Validate").
		WithDetail("errors", r.Errors)
}

// Validate validates the configuration against the provided rules. Keys are
// checked in sorted order so error lists are stable.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	if !c.Has(key) {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	c.mu.RLock()
	value := c.getValue(key)
	env := c.getEnvValue(key)
	c.mu.RUnlock()

	if env == "" && rule.Type != "" {
		if err := validateType(key, value, rule.Type); err != nil {
			return err
		}
	}

	if len(rule.OneOf) > 0 {
		got := c.GetString(key)
		for _, allowed := range rule.OneOf {
			if strings.EqualFold(got, allowed) {
				return nil
			}
		}
		return fmt.Errorf("field '%s' must be one of [%s], got '%s'", key, strings.Join(rule.OneOf, ", "), got)
	}

	return nil
}

func validateType(key string, value interface{}, expectedType string) error {
	switch expectedType {
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("field '%s' must be a string, got %T", key, value)
		}
	case "int":
		switch v := value.(type) {
		case int, int64:
		case float64:
			if v != float64(int64(v)) {
				return fmt.Errorf("field '%s' must be an integer, got %v", key, v)
			}
		default:
			return fmt.Errorf("field '%s' must be an integer, got %T", key, value)
		}
	case "bool":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("field '%s' must be a boolean, got %T", key, value)
		}
	case "[]string":
		switch v := value.(type) {
		case []string:
		case []interface{}:
			for _, item := range v {
				if _, ok := item.(string); !ok {
					return fmt.Errorf("field '%s' must be a list of strings, got element %T", key, item)
				}
			}
		default:
			return fmt.Errorf("field '%s' must be a list of strings, got %T", key, value)
		}
	default:
		return fmt.Errorf("unknown validation type: %s", expectedType)
	}
	return nil
}
