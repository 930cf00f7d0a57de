package glapi_test

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talklittle/servo/glapi"
)

type sized image.Point

func (sz sized) Size() image.Point { return image.Point(sz) }

func TestFuture_Resolve(t *testing.T) {
	fut := glapi.NewFuture()
	assert.True(t, fut.Resolve(sized{1, 1}))
	assert.False(t, fut.Resolve(sized{2, 2}), "second resolve must be ignored")
	assert.False(t, fut.Reject(errors.New("late")), "reject after resolve must be ignored")

	img, err := fut.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, image.Pt(1, 1), img.Size())
}

func TestFuture_Reject(t *testing.T) {
	fut := glapi.NewFuture()
	boom := errors.New("boom")
	assert.True(t, fut.Reject(boom))

	img, err := fut.Await(context.Background())
	assert.Nil(t, img)
	assert.ErrorIs(t, err, boom)
}

func TestFuture_RejectNil(t *testing.T) {
	fut := glapi.NewFuture()
	fut.Reject(nil)
	_, err := fut.Await(context.Background())
	assert.Error(t, err)
}

func TestFuture_AwaitAsync(t *testing.T) {
	fut := glapi.NewFuture()
	go func() {
		time.Sleep(10 * time.Millisecond)
		fut.Resolve(sized{3, 4})
	}()
	img, err := fut.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, image.Pt(3, 4), img.Size())

	select {
	case <-fut.Done():
	default:
		t.Fatal("Done channel should be closed once settled")
	}
}

func TestFuture_AwaitTimeout(t *testing.T) {
	fut := glapi.NewFuture()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := fut.Await(ctx)
	assert.ErrorIs(t, err, glapi.ErrTimeout)
}

func TestFuture_AwaitCanceled(t *testing.T) {
	fut := glapi.NewFuture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fut.Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, glapi.ErrTimeout)
}

func TestFuture_SettledBeatsDoneContext(t *testing.T) {
	fut := glapi.NewFuture()
	fut.Resolve(sized{1, 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	img, err := fut.Await(ctx)
	require.NoError(t, err)
	assert.NotNil(t, img)
}

func TestEnum_String(t *testing.T) {
	assert.Equal(t, "gl.TEXTURE_2D", glapi.Texture2D.String())
	assert.Equal(t, "gl.INVALID_OPERATION", glapi.InvalidOperation.String())
	assert.Equal(t, "gl.Enum(0x1234)", glapi.Enum(0x1234).String())
	assert.True(t, glapi.NearestMipmapLinear.IsMipmapFilter())
	assert.False(t, glapi.Linear.IsMipmapFilter())
}
