package intake_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intake/pkg/intake"
)

func TestStoreAll(t *testing.T) {
	t.Parallel()
	base := tempDir(t)
	in := intake.New(intake.WithBaseDir(base), intake.WithConcurrency(2))

	reqs := []intake.Request{
		{Filename: "one.png", Payload: pngPayload(32)},
		{Filename: "../two.png", Payload: pngPayload(32)},
		{Filename: "three.jpg", Payload: jpegPayload(16)},
		{Filename: "four.gif", Payload: []byte("GIF89a")},
		{Filename: "five.png", Payload: pngPayload(32)},
	}

	outs := in.StoreAll(context.Background(), reqs)
	require.Len(t, outs, len(reqs))

	assert.True(t, outs[0].OK())
	assert.ErrorIs(t, outs[1].Err(), intake.ErrDangerousFilename)
	assert.True(t, outs[2].OK())
	assert.ErrorIs(t, outs[3].Err(), intake.ErrInvalidFileType)
	assert.True(t, outs[4].OK())

	third, _ := outs[2].Stored()
	assert.Equal(t, intake.ClassJPEG, third.Class)
	assert.Len(t, listDir(t, base), 3)
}

func TestStoreAll_IdenticalRequests(t *testing.T) {
	t.Parallel()
	base := tempDir(t)
	in := intake.New(intake.WithBaseDir(base), intake.WithConcurrency(8))

	payload := pngPayload(64)
	reqs := make([]intake.Request, 20)
	for i := range reqs {
		reqs[i] = intake.Request{Filename: "same.png", Payload: payload}
	}

	seen := map[string]bool{}
	for _, out := range in.StoreAll(context.Background(), reqs) {
		file, ok := out.Stored()
		require.True(t, ok)
		assert.False(t, seen[file.Path])
		seen[file.Path] = true
	}
	assert.Len(t, listDir(t, base), len(reqs))
}

func TestStoreAll_Empty(t *testing.T) {
	t.Parallel()
	in := intake.New()
	assert.Empty(t, in.StoreAll(context.Background(), nil))
}
