package service

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/aduvalf/harmonie-site/internal/models"
	"github.com/aduvalf/harmonie-site/internal/storage"
	"github.com/aduvalf/harmonie-site/mocks"
)

func TestAddGuestbookEntry_OK_PendingModeration(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t, "local")
	defer ctrl.Finish()

	st.EXPECT().SaveGuestbookEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.GuestbookEntry) error {
			require.Equal(t, "Jean", entry.Name)
			require.Equal(t, "Bravo pour le concert !", entry.Message)
			require.False(t, entry.Approved)
			return nil
		})

	entry, err := svc.AddGuestbookEntry(context.Background(), "  Jean  ", "Bravo pour le concert !")
	require.NoError(t, err)
	require.False(t, entry.Approved)
}

func TestAddGuestbookEntry_Validation(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t, "local")
	defer ctrl.Finish()

	_, err := svc.AddGuestbookEntry(context.Background(), "", "message")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.AddGuestbookEntry(context.Background(), "Jean", "   ")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.AddGuestbookEntry(context.Background(), strings.Repeat("x", 101), "message")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.AddGuestbookEntry(context.Background(), "Jean", strings.Repeat("x", 2001))
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAddGuestbookEntry_InvalidatesPageCache(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t, "local")
	defer ctrl.Finish()

	pc := mocks.NewMockPageCache(ctrl)
	svc.SetPageCache(pc)

	st.EXPECT().SaveGuestbookEntry(gomock.Any(), gomock.Any()).Return(nil)
	pc.EXPECT().Invalidate(gomock.Any()).Return(nil)

	_, err := svc.AddGuestbookEntry(context.Background(), "Jean", "Bravo !")
	require.NoError(t, err)
}

func TestApproveGuestbookEntry_NotFound(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t, "local")
	defer ctrl.Finish()

	id := uuid.New()
	st.EXPECT().ApproveGuestbookEntry(gomock.Any(), id).Return(storage.ErrNotFound)

	err := svc.ApproveGuestbookEntry(context.Background(), id)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGuestbookEntries_ApprovedOnlyFlagPassedThrough(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t, "local")
	defer ctrl.Finish()

	st.EXPECT().ListGuestbookEntries(gomock.Any(), true).Return([]models.GuestbookEntry{}, nil)
	_, err := svc.GuestbookEntries(context.Background(), true)
	require.NoError(t, err)

	st.EXPECT().ListGuestbookEntries(gomock.Any(), false).Return([]models.GuestbookEntry{}, nil)
	_, err = svc.GuestbookEntries(context.Background(), false)
	require.NoError(t, err)
}
