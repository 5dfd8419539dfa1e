package service

import (
	"context"
	"testing"
	"time"

	"quizgrade/internal/cache"
	"quizgrade/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftService_SaveAndGet(t *testing.T) {
	c := newMapCache()
	svc := NewDraftService(c, time.Hour)
	ctx := context.Background()

	sheet := &domain.AnswerSheet{
		Choices: map[string]*int{"c1": intPtr(2)},
		Fillins: map[string]string{"f1": "２９.５"},
	}

	require.NoError(t, svc.SaveDraft(ctx, "p1", "s1", sheet))

	got, err := svc.GetDraft(ctx, "p1", "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.Choices["c1"])
	assert.Equal(t, 2, *got.Choices["c1"])
	assert.Equal(t, "２９.５", got.Fillins["f1"])
}

func TestDraftService_GetMissing(t *testing.T) {
	svc := NewDraftService(newMapCache(), time.Hour)

	got, err := svc.GetDraft(context.Background(), "p1", "nobody")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestDraftService_CorruptDraft(t *testing.T) {
	c := newMapCache()
	svc := NewDraftService(c, time.Hour)
	ctx := context.Background()

	c.data[cache.DraftKey("p1", "s1")] = "{broken"

	got, err := svc.GetDraft(ctx, "p1", "s1")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestDraftService_Delete(t *testing.T) {
	c := newMapCache()
	svc := NewDraftService(c, time.Hour)
	ctx := context.Background()

	require.NoError(t, svc.SaveDraft(ctx, "p1", "s1", &domain.AnswerSheet{}))
	require.NoError(t, svc.DeleteDraft(ctx, "p1", "s1"))

	got, err := svc.GetDraft(ctx, "p1", "s1")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestDraftService_NilSheet(t *testing.T) {
	svc := NewDraftService(newMapCache(), time.Hour)
	assert.Error(t, svc.SaveDraft(context.Background(), "p1", "s1", nil))
}
