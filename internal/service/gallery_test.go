package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/aduvalf/harmonie-site/internal/models"
	"github.com/aduvalf/harmonie-site/internal/storage"
	"github.com/aduvalf/harmonie-site/mocks"
)

func TestGalleryUploadURL_OK(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t, "local")
	defer ctrl.Finish()

	images := mocks.NewMockImageStorage(ctrl)
	svc.SetImageStorage(images)

	want := &storage.UploadInfo{
		UploadURL:      "https://s3.example.org/gallery/abc.jpg?sig=...",
		Key:            "gallery/abc.jpg",
		Expires:        10 * time.Minute,
		RequiredHeader: map[string]string{"Content-Type": "image/jpeg"},
	}
	images.EXPECT().ImageUploadURL(gomock.Any(), "image/jpeg", int64(1024)).Return(want, nil)

	got, err := svc.GalleryUploadURL(context.Background(), "image/jpeg", 1024)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestGalleryUploadURL_InvalidArgument(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t, "local")
	defer ctrl.Finish()

	images := mocks.NewMockImageStorage(ctrl)
	svc.SetImageStorage(images)

	images.EXPECT().ImageUploadURL(gomock.Any(), "application/pdf", int64(1024)).
		Return(nil, storage.ErrInvalidArgument)

	_, err := svc.GalleryUploadURL(context.Background(), "application/pdf", 1024)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGalleryUploadURL_NoImageStorage(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t, "local")
	defer ctrl.Finish()

	_, err := svc.GalleryUploadURL(context.Background(), "image/jpeg", 1024)
	require.Error(t, err)
}

func TestConfirmGalleryImage_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t, "local")
	defer ctrl.Finish()

	images := mocks.NewMockImageStorage(ctrl)
	svc.SetImageStorage(images)

	key := "gallery/abc.jpg"
	images.EXPECT().CheckImageUpload(gomock.Any(), key).Return("image/jpeg", nil)
	st.EXPECT().SaveGalleryImage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, image *models.GalleryImage) error {
			require.Equal(t, key, image.Key)
			require.Equal(t, "Concert 2026", image.Title)
			return nil
		})

	image, err := svc.ConfirmGalleryImage(context.Background(), key, "  Concert 2026 ")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, image.ID)
}

func TestConfirmGalleryImage_UploadMissing(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t, "local")
	defer ctrl.Finish()

	images := mocks.NewMockImageStorage(ctrl)
	svc.SetImageStorage(images)

	// Клиент подтвердил ключ, по которому ничего не загружено.
	images.EXPECT().CheckImageUpload(gomock.Any(), "gallery/ghost.jpg").
		Return("", storage.ErrNotFound)

	_, err := svc.ConfirmGalleryImage(context.Background(), "gallery/ghost.jpg", "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGalleryItems_ResolvesPublicURLs(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t, "local")
	defer ctrl.Finish()

	images := mocks.NewMockImageStorage(ctrl)
	svc.SetImageStorage(images)

	img := models.GalleryImage{ID: uuid.New(), Key: "gallery/abc.jpg", Title: "Aubade"}
	st.EXPECT().ListGalleryImages(gomock.Any()).Return([]models.GalleryImage{img}, nil)
	images.EXPECT().ImageURL("gallery/abc.jpg").Return("https://cdn.example.org/gallery/abc.jpg")

	items, err := svc.GalleryItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, img.ID, items[0].Image.ID)
	require.Equal(t, "https://cdn.example.org/gallery/abc.jpg", items[0].URL)
}

func TestDeleteGalleryImage_RecordBeforeBlob(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t, "local")
	defer ctrl.Finish()

	images := mocks.NewMockImageStorage(ctrl)
	svc.SetImageStorage(images)

	id := uuid.New()
	img := &models.GalleryImage{ID: id, Key: "gallery/abc.jpg"}

	gomock.InOrder(
		st.EXPECT().GalleryImageByID(gomock.Any(), id).Return(img, nil),
		st.EXPECT().DeleteGalleryImage(gomock.Any(), id).Return(nil),
		images.EXPECT().RemoveImage(gomock.Any(), "gallery/abc.jpg").Return(nil),
	)

	require.NoError(t, svc.DeleteGalleryImage(context.Background(), id))
}

func TestDeleteGalleryImage_NotFound(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t, "local")
	defer ctrl.Finish()

	id := uuid.New()
	st.EXPECT().GalleryImageByID(gomock.Any(), id).Return(nil, storage.ErrNotFound)

	require.ErrorIs(t, svc.DeleteGalleryImage(context.Background(), id), ErrNotFound)
}
