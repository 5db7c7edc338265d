package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/seb0305/aenigma-verborum/internal/models"
	mock_service "github.com/seb0305/aenigma-verborum/internal/service/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRewardServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockRepositoryI)) *RewardS {
	repo := mock_service.NewMockRepositoryI(ctrl)
	if setupMock != nil {
		setupMock(repo)
	}
	return NewRewardService(repo, zap.NewNop())
}

func TestRewardS_RewardCards(t *testing.T) {
	t.Parallel()

	cards := []models.RewardCard{{RewardID: 8, Tier: models.TierBronze, Title: "amare", Headword: "amare", Translation: "lieben", Accuracy: 100}}

	tests := []struct {
		name    string
		f       func(*mock_service.MockRepositoryI)
		want    []models.RewardCard
		wantErr bool
	}{
		{
			name: "success",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().RewardCards(gomock.Any(), int64(1), models.TierBronze).Return(cards, nil)
			},
			want: cards,
		},
		{
			name: "repository error",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().RewardCards(gomock.Any(), int64(1), models.TierBronze).Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			r := newRewardServiceMock(t, ctrl, tt.f)

			got, err := r.RewardCards(context.Background(), 1)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRewardS_Revoke(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		f          func(*mock_service.MockRepositoryI)
		wantReward *int64
		wantErr    bool
	}{
		{
			name: "no grant is a no-op",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().GrantFor(gomock.Any(), int64(1), int64(3), models.TierBronze).Return(models.RewardGrant{}, false, nil)
			},
		},
		{
			name: "last holder deletes the reward",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().GrantFor(gomock.Any(), int64(1), int64(3), models.TierBronze).
					Return(models.RewardGrant{ID: 20, RewardID: 8, UserID: 1}, true, nil)
				gomock.InOrder(
					mri.EXPECT().DeleteGrant(gomock.Any(), int64(20)).Return(nil),
					mri.EXPECT().ReleaseReward(gomock.Any(), int64(8)).Return(true, nil),
				)
			},
			wantReward: ptr(int64(8)),
		},
		{
			name: "shared reward survives other holders",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().GrantFor(gomock.Any(), int64(1), int64(3), models.TierBronze).
					Return(models.RewardGrant{ID: 20, RewardID: 8, UserID: 1}, true, nil)
				mri.EXPECT().DeleteGrant(gomock.Any(), int64(20)).Return(nil)
				mri.EXPECT().ReleaseReward(gomock.Any(), int64(8)).Return(false, nil)
			},
			wantReward: ptr(int64(8)),
		},
		{
			name: "release error",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().GrantFor(gomock.Any(), int64(1), int64(3), models.TierBronze).
					Return(models.RewardGrant{ID: 20, RewardID: 8, UserID: 1}, true, nil)
				mri.EXPECT().DeleteGrant(gomock.Any(), int64(20)).Return(errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			r := newRewardServiceMock(t, ctrl, tt.f)

			item := models.VocabularyItem{ID: 3, UserID: 1, HasReward: true}
			got, err := r.revoke(context.Background(), 1, &item)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantReward, got)
			assert.Equal(t, tt.wantReward == nil, item.HasReward)
		})
	}
}

func TestRewardS_Transition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		item     models.VocabularyItem
		correct  bool
		held     bool
		f        func(*mock_service.MockRepositoryI)
		want     models.RewardChange
		wantFlag bool
	}{
		{
			name:    "correct below threshold",
			item:    models.VocabularyItem{ID: 3, Accuracy: 80},
			correct: true,
			want:    models.RewardNone,
		},
		{
			name:    "wrong above threshold without grant",
			item:    models.VocabularyItem{ID: 3, Accuracy: 95},
			correct: false,
			want:    models.RewardNone,
		},
		{
			name:     "wrong above threshold with grant keeps it",
			item:     models.VocabularyItem{ID: 3, Accuracy: 91, HasReward: true},
			correct:  false,
			held:     true,
			want:     models.RewardNone,
			wantFlag: true,
		},
		{
			name:    "correct at threshold grants",
			item:    models.VocabularyItem{ID: 3, Headword: "amare", Accuracy: 90},
			correct: true,
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().AcquireReward(gomock.Any(), models.Reward{
					VocabularyItemID: 3,
					Tier:             models.TierBronze,
					Title:            "amare",
					Description:      "Bronze card for amare",
					ImageRef:         bronzeImage,
				}).Return(int64(8), nil)
				mri.EXPECT().AddGrant(gomock.Any(), gomock.Any()).Return(int64(20), nil)
			},
			want:     models.RewardGranted,
			wantFlag: true,
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			r := newRewardServiceMock(t, ctrl, func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().GrantFor(gomock.Any(), int64(1), int64(3), models.TierBronze).
					Return(models.RewardGrant{ID: 20, RewardID: 8}, tt.held, nil)
				if tt.f != nil {
					tt.f(mri)
				}
			})

			item := tt.item
			change, rewardID, err := r.transition(context.Background(), 1, &item, tt.correct)
			require.NoError(t, err)
			assert.Equal(t, tt.want, change)
			assert.Equal(t, tt.want == models.RewardNone, rewardID == nil)
			assert.Equal(t, tt.wantFlag, item.HasReward)
		})
	}
}
