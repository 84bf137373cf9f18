// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks entity payloads before they reach a repository.
//
// [StructValidator] evaluates the `validate` tags of the models package with
// go-playground/validator and reports the first failing field. The package
// also holds the date helpers shared by the daily, injection and weekly
// services.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator checks a payload. When fields are given, only those struct
// fields are checked, which is how partial updates are validated.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
