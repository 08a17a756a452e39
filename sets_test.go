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
	"testing"

	"github.com/stretchr/testify/require"
)

func writeSet(t *testing.T, buf *bytes.Buffer, id uint16, body []byte) {
	t.Helper()
	sh := SetHeader{Id: id, Length: uint16(setHeaderLength + len(body))}
	_, err := sh.Encode(buf)
	require.NoError(t, err)
	buf.Write(body)
}

func TestSplitSetsFramesMultipleSets(t *testing.T) {
	buf := &bytes.Buffer{}
	writeSet(t, buf, TemplateSetID, []byte{0x01, 0x02, 0x03, 0x04})
	writeSet(t, buf, DataSetIDMin, []byte{0x0a, 0x0b})

	sets, err := splitSets(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, sets, 2)

	require.Equal(t, KindTemplateSet, sets[0].Kind)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, sets[0].Body)

	require.Equal(t, KindDataSet, sets[1].Kind)
	require.Equal(t, []byte{0x0a, 0x0b}, sets[1].Body)
}

func TestSplitSetsRejectsTruncatedBody(t *testing.T) {
	buf := &bytes.Buffer{}
	sh := SetHeader{Id: DataSetIDMin, Length: setHeaderLength + 10}
	_, err := sh.Encode(buf)
	require.NoError(t, err)
	buf.Write([]byte{0x01, 0x02}) // declares 10 bytes of body, only 2 present

	_, err = splitSets(buf.Bytes())
	require.Error(t, err)
}

func TestSplitSetsRejectsShortLength(t *testing.T) {
	buf := &bytes.Buffer{}
	sh := SetHeader{Id: TemplateSetID, Length: 2} // shorter than the header itself
	_, err := sh.Encode(buf)
	require.NoError(t, err)

	_, err = splitSets(buf.Bytes())
	require.ErrorIs(t, err, ErrSetTooShort)
}

func TestSplitSetsEmptyBuffer(t *testing.T) {
	sets, err := splitSets(nil)
	require.NoError(t, err)
	require.Empty(t, sets)
}
