/*
Copyright 2023 Alexander Bartolomey (github@alexanderbartolomey.de)

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package ipfix

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownVersion    error = errors.New("unknown IPFIX version")
	ErrShortHeader       error = errors.New("buffer too short for message header")
	ErrMessageTruncated  error = errors.New("message shorter than declared length")
	ErrSetTooShort       error = errors.New("set length is smaller than the 4-byte set header")
	ErrSetTruncated      error = errors.New("set length exceeds remaining message bytes")
	ErrTemplateNotFound  error = errors.New("template not found")
	ErrNoTemplateBound   error = errors.New("no template bound to data set")
	ErrScopeCountInvalid error = errors.New("options template scope field count out of range")
)

func UnknownVersion(version uint16) error {
	return fmt.Errorf("%w: %d, only 10 is supported", ErrUnknownVersion, version)
}

func MessageTruncated(declared, got int) error {
	return fmt.Errorf("%w: declared %d, got %d", ErrMessageTruncated, declared, got)
}

func SetTruncated(setID uint16, declared, remaining int) error {
	return fmt.Errorf("%w: set %d declares %d bytes, only %d remain", ErrSetTruncated, setID, declared, remaining)
}

func TemplateNotFound(templateID uint16) error {
	return fmt.Errorf("%w: %d", ErrTemplateNotFound, templateID)
}

// UnknownEnterprise formats the message appended to DataRecord.Errors when a
// field's private enterprise number has no registered formatter (§4.4).
func UnknownEnterprise(pen uint32) string {
	return fmt.Sprintf("unknown enterprise number %d", pen)
}
