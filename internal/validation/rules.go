// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const maxNameLength = 255

// names become segments of the store paths
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.\-]*$`)

// NewAssertion returns a validator failing with message when isTrue is false
func NewAssertion(isTrue bool, message string) Validator {
	return Func(func() error {
		if !isTrue {
			return errors.New(message)
		}
		return nil
	})
}

// NewEmptyStringValidator returns a validator failing when the field value is blank
func NewEmptyStringValidator(fieldName, fieldValue string) Validator {
	return Func(func() error {
		if strings.TrimSpace(fieldValue) == "" {
			return fmt.Errorf("the [%s] is required", fieldName)
		}
		return nil
	})
}

// NewNameValidator returns a validator for a path-safe name: letters, digits,
// underscores, dots and hyphens, not starting with a separator, at most 255
// characters.
func NewNameValidator(fieldName, name string) Validator {
	return Func(func() error {
		return New(FailFast()).
			AddValidator(NewEmptyStringValidator(fieldName, name)).
			AddAssertion(len(name) <= maxNameLength, fmt.Sprintf("the [%s] must not exceed %d characters", fieldName, maxNameLength)).
			AddAssertion(namePattern.MatchString(name), fmt.Sprintf("the [%s] must contain only word characters, dots or hyphens", fieldName)).
			Validate()
	})
}
