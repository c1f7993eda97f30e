package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/riskibarqy/diamond-stats/internal/domain/document"
	sportdatamock "github.com/riskibarqy/diamond-stats/internal/mocks/domain/sportdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHomeService_Get_LoadsAllSections(t *testing.T) {
	t.Parallel()

	provider := sportdatamock.NewProvider(t)
	provider.On("SeasonLeaders", mock.Anything, 2025, "REG").Return(leadersPayload(), nil).Times(3)

	service := NewHomeService(NewLeaderService(provider, 10, nil), nil)
	got, err := service.Get(context.Background(), 2025, "")
	require.NoError(t, err)
	require.Len(t, got.Sections, 3)

	assert.Equal(t, "home_runs", got.Sections[0].Stat)
	assert.Equal(t, "batting_average", got.Sections[1].Stat)
	assert.Equal(t, "era", got.Sections[2].Stat)
	for _, section := range got.Sections {
		assert.NoError(t, section.Error)
	}
	assert.Equal(t, "raleigh", got.Sections[0].List.Items[0].Leader.ID())
	assert.Equal(t, "skenes", got.Sections[2].List.Items[0].Leader.ID())
	assert.Empty(t, got.Sections[1].List.Items)
}

func TestHomeService_Get_PartialFailureKeepsOtherSections(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	provider := sportdatamock.NewProvider(t)
	provider.
		On("SeasonLeaders", mock.Anything, 2025, "REG").
		Return(func(context.Context, int, string) (document.Doc, error) {
			if calls.Add(1) == 1 {
				return nil, ErrDependencyUnavailable
			}
			return leadersPayload(), nil
		}).
		Times(3)

	got, err := NewHomeService(NewLeaderService(provider, 10, nil), nil).Get(context.Background(), 2025, "REG")
	require.NoError(t, err)

	failed := 0
	for _, section := range got.Sections {
		if section.Error != nil {
			failed++
			assert.ErrorIs(t, section.Error, ErrDependencyUnavailable)
		}
	}
	assert.Equal(t, 1, failed)
}

func TestHomeService_Get_AllSectionsFailing(t *testing.T) {
	t.Parallel()

	provider := sportdatamock.NewProvider(t)
	provider.On("SeasonLeaders", mock.Anything, 2025, "REG").Return(nil, errors.New("timeout")).Times(3)

	_, err := NewHomeService(NewLeaderService(provider, 10, nil), nil).Get(context.Background(), 2025, "REG")
	require.Error(t, err)
}

func TestHomeService_Get_InvalidSeason(t *testing.T) {
	t.Parallel()

	_, err := NewHomeService(NewLeaderService(sportdatamock.NewProvider(t), 10, nil), nil).Get(context.Background(), -1, "REG")
	require.ErrorIs(t, err, ErrInvalidInput)
}
