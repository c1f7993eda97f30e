package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/diamond-stats/internal/domain/document"
	sportdatamock "github.com/riskibarqy/diamond-stats/internal/mocks/domain/sportdata"
	"github.com/stretchr/testify/mock"
)

func playerPayload(id, name string, avg string) document.Doc {
	return document.Doc{"player": map[string]any{
		"id":        id,
		"full_name": name,
		"seasons": []any{map[string]any{
			"year": float64(2025),
			"totals": map[string]any{"statistics": map[string]any{
				"hitting": map[string]any{"overall": map[string]any{"avg": avg}},
			}},
		}},
	}}
}

func TestPlayerService_Compare(t *testing.T) {
	t.Parallel()

	provider := sportdatamock.NewProvider(t)
	provider.On("PlayerProfile", mock.Anything, "a").Return(playerPayload("a", "Aaron Judge", ".331"), nil).Once()
	provider.On("PlayerProfile", mock.Anything, "b").Return(playerPayload("b", "Bobby Witt Jr.", ".295"), nil).Once()

	got, err := NewPlayerService(provider, nil).Compare(context.Background(), "a", "b")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if got.Left.Label != "Aaron Judge" || got.Right.Label != "Bobby Witt Jr." {
		t.Fatalf("unexpected comparison: %+v", got)
	}
	if got.Left.Totals.BattingAverage.Value <= got.Right.Totals.BattingAverage.Value {
		t.Fatalf("unexpected averages: %+v vs %+v", got.Left.Totals.BattingAverage, got.Right.Totals.BattingAverage)
	}
}

func TestPlayerService_Compare_OneSideFails(t *testing.T) {
	t.Parallel()

	provider := sportdatamock.NewProvider(t)
	provider.On("PlayerProfile", mock.Anything, "a").Return(playerPayload("a", "Aaron Judge", ".331"), nil).Once()
	provider.On("PlayerProfile", mock.Anything, "missing").Return(nil, ErrNotFound).Once()

	_, err := NewPlayerService(provider, nil).Compare(context.Background(), "a", "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_Profile_Validation(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(sportdatamock.NewProvider(t), nil)
	if _, err := service.Profile(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := service.Compare(context.Background(), "a", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
