package profile

import (
	"context"
	"strings"
	"testing"

	model "trader-bot/internal/models"
	"trader-bot/internal/repository"
	"trader-bot/internal/tradererrors"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestProfileService_GetCreatesFreeProfile(t *testing.T) {
	t.Parallel()

	s := NewProfileService(repository.NewMemoryRepo(), nil)
	p, err := s.Get(context.Background(), "g1", "alice")
	require.NoError(t, err)
	require.Equal(t, model.TierFree, p.Tier)
	require.Equal(t, "alice", p.UserID)
}

func TestProfileService_Update(t *testing.T) {
	t.Parallel()

	alice := model.Caller{GuildID: "g1", UserID: "alice"}

	tests := []struct {
		name        string
		upd         model.ProfileUpdate
		expectedErr error
		check       func(t *testing.T, p model.Profile)
	}{
		{
			name: "bio_and_channel",
			upd:  model.ProfileUpdate{Bio: ptr("  rare gems  "), TradeChannelID: ptr("chan-42")},
			check: func(t *testing.T, p model.Profile) {
				require.Equal(t, "rare gems", p.Bio)
				require.Equal(t, "chan-42", p.TradeChannelID)
				require.Equal(t, model.TierFree, p.Tier)
			},
		},
		{
			name:        "bio_too_long",
			upd:         model.ProfileUpdate{Bio: ptr(strings.Repeat("x", MaxBioLength+1))},
			expectedErr: tradererrors.ErrValidation,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := NewProfileService(repository.NewMemoryRepo(), nil)
			p, err := s.Update(context.Background(), alice, tc.upd)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			tc.check(t, p)
		})
	}
}

func TestProfileService_UpdateSkipsStoreOnInvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no expectations: any store call fails the test
	mockRepo := repository.NewMockProfileStore(ctrl)
	s := NewProfileService(mockRepo, nil)

	_, err := s.Update(context.Background(), model.Caller{GuildID: "g1"}, model.ProfileUpdate{})
	require.ErrorIs(t, err, tradererrors.ErrMissingCaller)

	_, err = s.SetTier(context.Background(), "g1", "u", model.Tier("gold"))
	require.ErrorIs(t, err, tradererrors.ErrInvalidTier)

	_, err = s.SetTier(context.Background(), "g1", "", model.TierPro)
	require.ErrorIs(t, err, tradererrors.ErrMissingCaller)
}

func TestProfileService_SetTier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		tier        model.Tier
		expectedErr error
	}{
		{name: "plus", tier: model.TierPlus},
		{name: "pro", tier: model.TierPro},
		{name: "back_to_free", tier: model.TierFree},
		{name: "unknown_tier", tier: model.Tier("diamond"), expectedErr: tradererrors.ErrInvalidTier},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := NewProfileService(repository.NewMemoryRepo(), nil)
			p, err := s.SetTier(context.Background(), "g1", "alice", tc.tier)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.tier, p.Tier)

			got, err := s.Get(context.Background(), "g1", "alice")
			require.NoError(t, err)
			require.Equal(t, tc.tier, got.Tier)
		})
	}
}

func TestProfileService_UpdateKeepsTier(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	alice := model.Caller{GuildID: "g1", UserID: "alice"}
	s := NewProfileService(repository.NewMemoryRepo(), nil)

	_, err := s.SetTier(ctx, "g1", "alice", model.TierPro)
	require.NoError(t, err)

	p, err := s.Update(ctx, alice, model.ProfileUpdate{Bio: ptr("still pro")})
	require.NoError(t, err)
	require.Equal(t, model.TierPro, p.Tier)
	require.Equal(t, "still pro", p.Bio)

	// a free member editing their own profile stays free
	bob := model.Caller{GuildID: "g1", UserID: "bob"}
	p, err = s.Update(ctx, bob, model.ProfileUpdate{TradeChannelID: ptr("chan-1")})
	require.NoError(t, err)
	require.Equal(t, model.TierFree, p.Tier)
}
