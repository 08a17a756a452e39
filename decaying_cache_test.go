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
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecayingCacheEvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	cache := NewDefaultDecayingEphemeralCache(2)

	require.NoError(t, cache.Add(ctx, 1, &Template{TemplateId: 1, FieldCount: 1}))
	require.NoError(t, cache.Add(ctx, 2, &Template{TemplateId: 2, FieldCount: 1}))

	// touch id 1 so id 2 becomes least-recently-used
	_, err := cache.Get(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, cache.Add(ctx, 3, &Template{TemplateId: 3, FieldCount: 1}))

	_, err = cache.Get(ctx, 2)
	require.ErrorIs(t, err, ErrTemplateNotFound, "least-recently-used template should have been evicted")

	_, err = cache.Get(ctx, 1)
	require.NoError(t, err)
	_, err = cache.Get(ctx, 3)
	require.NoError(t, err)
}

func TestDecayingCacheUnboundedWhenCapacityZero(t *testing.T) {
	ctx := context.Background()
	cache := NewDefaultDecayingEphemeralCache(0)

	for i := uint16(0); i < 100; i++ {
		require.NoError(t, cache.Add(ctx, i, &Template{TemplateId: i, FieldCount: 1}))
	}

	templates, _ := cache.GetAll(ctx)
	require.Len(t, templates, 100)
}

func TestDecayingCacheSharesCapacityAcrossOptions(t *testing.T) {
	ctx := context.Background()
	cache := NewDefaultDecayingEphemeralCache(1)

	require.NoError(t, cache.Add(ctx, 1, &Template{TemplateId: 1, FieldCount: 1}))
	require.NoError(t, cache.AddOptions(ctx, 2, &OptionsTemplate{TemplateId: 2, FieldCount: 1, ScopeFieldCount: 1}))

	_, err := cache.Get(ctx, 1)
	require.ErrorIs(t, err, ErrTemplateNotFound)

	_, err = cache.GetOptions(ctx, 2)
	require.NoError(t, err)
}
