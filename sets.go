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
	"bytes"
	"fmt"
)

// Set is one Set as framed by the Structural Parser (§4.1): the 4-byte
// header plus its body, left undecoded. Routing the body into a Template,
// Options Template, or Data Set interpretation is the Message Driver's job
// (decoder.go), not the structural layer's -- unlike the teacher's sets.go,
// which eagerly decodes into a tagged `set` interface at framing time.
type Set struct {
	Header SetHeader
	Kind   SetKind
	Body   []byte
}

func (s Set) String() string {
	return fmt.Sprintf("Set<kind=%s,id=%d,bytes=%d>", s.Kind, s.Header.Id, len(s.Body))
}

// splitSets frames every Set in a Message's payload, in order, without
// interpreting any Set's body. It stops (without error) if a trailing Set
// header would run past the end of buf, treating the remainder as padding.
func splitSets(buf []byte) ([]Set, error) {
	r := bytes.NewReader(buf)
	sets := make([]Set, 0)

	for r.Len() >= setHeaderLength {
		var sh SetHeader
		if _, err := sh.Decode(r); err != nil {
			return sets, err
		}

		bodyLen := int(sh.Length) - setHeaderLength
		if bodyLen < 0 {
			return sets, fmt.Errorf("%w: set %d", ErrSetTooShort, sh.Id)
		}
		if bodyLen > r.Len() {
			return sets, SetTruncated(sh.Id, bodyLen, r.Len())
		}

		body, err := take(r, bodyLen)
		if err != nil {
			return sets, err
		}

		sets = append(sets, Set{Header: sh, Kind: sh.Kind(), Body: body})
	}

	return sets, nil
}
