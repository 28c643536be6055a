package convert_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ivlev/lottie2gif/internal/config"
	"github.com/ivlev/lottie2gif/internal/convert"
	"github.com/ivlev/lottie2gif/internal/engine"
	"github.com/ivlev/lottie2gif/internal/engine/mocks"
	"github.com/ivlev/lottie2gif/internal/geometry"
	"github.com/ivlev/lottie2gif/internal/logging"
)

func testLogger(t *testing.T) *logging.Logger {
	t.Helper()
	log, err := logging.New(logging.Options{})
	require.NoError(t, err)
	return log
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "foo.gif", convert.OutputPath("foo.json", ""))
	assert.Equal(t, "/anim/walk.gif", convert.OutputPath("/anim/walk.json", ""))
	assert.Equal(t, "bar.gif", convert.OutputPath("foo.json", "bar.gif"))
}

func TestConvertSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)

	eng := mocks.NewMockEngine(ctrl)
	session := mocks.NewMockSession(ctrl)
	anim := mocks.NewMockAnimation(ctrl)
	enc := mocks.NewMockEncoder(ctrl)

	eng.EXPECT().Open().Return(session, nil)
	session.EXPECT().Load("/anim/walk.json").Return(anim, nil)
	anim.EXPECT().Size().Return(float32(100), float32(200))
	// 100x200 into 600x600: scale 3, pillarboxed to 300x600.
	anim.EXPECT().SetSize(float32(300), float32(600)).Return(nil)
	session.EXPECT().NewEncoder().Return(enc, nil)
	enc.EXPECT().Save(anim, "/anim/walk.gif", uint32(0), uint32(30)).Return(nil)
	enc.EXPECT().Sync().Return(nil)
	enc.EXPECT().Close().Return(nil)
	anim.EXPECT().Close().Return(nil)
	session.EXPECT().Close().Return(nil)

	c := &convert.Converter{Engine: eng, Opts: config.Default(), Log: testLogger(t)}
	res := c.Convert(context.Background(), "/anim/walk.json")

	require.NoError(t, res.Err)
	assert.Equal(t, "/anim/walk.json", res.Input)
	assert.Equal(t, "/anim/walk.gif", res.Output)
}

func TestConvertWithBackground(t *testing.T) {
	ctrl := gomock.NewController(t)

	eng := mocks.NewMockEngine(ctrl)
	session := mocks.NewMockSession(ctrl)
	anim := mocks.NewMockAnimation(ctrl)
	enc := mocks.NewMockEncoder(ctrl)

	eng.EXPECT().Open().Return(session, nil)
	session.EXPECT().Load(gomock.Any()).Return(anim, nil)
	anim.EXPECT().Size().Return(float32(300), float32(300))
	anim.EXPECT().SetSize(float32(600), float32(600)).Return(nil)
	session.EXPECT().NewEncoder().Return(enc, nil)
	gomock.InOrder(
		// The background layer spans the scaled output area and is
		// attached before the save.
		enc.EXPECT().SetBackground(engine.BackgroundLayer{
			R: 255, G: 128, B: 0, Width: 600, Height: 600,
		}).Return(nil),
		enc.EXPECT().Save(anim, gomock.Any(), uint32(0), uint32(30)).Return(nil),
		enc.EXPECT().Sync().Return(nil),
	)
	enc.EXPECT().Close().Return(nil)
	anim.EXPECT().Close().Return(nil)
	session.EXPECT().Close().Return(nil)

	opts := config.Default()
	opts.Background = config.FromRGB24(0xFF8000)

	c := &convert.Converter{Engine: eng, Opts: opts, Log: testLogger(t)}
	res := c.Convert(context.Background(), "/anim/square.json")
	require.NoError(t, res.Err)
}

func TestConvertExplicitOutput(t *testing.T) {
	ctrl := gomock.NewController(t)

	eng := mocks.NewMockEngine(ctrl)
	session := mocks.NewMockSession(ctrl)
	anim := mocks.NewMockAnimation(ctrl)
	enc := mocks.NewMockEncoder(ctrl)

	eng.EXPECT().Open().Return(session, nil)
	session.EXPECT().Load(gomock.Any()).Return(anim, nil)
	anim.EXPECT().Size().Return(float32(600), float32(600))
	anim.EXPECT().SetSize(gomock.Any(), gomock.Any()).Return(nil)
	session.EXPECT().NewEncoder().Return(enc, nil)
	enc.EXPECT().Save(anim, "custom.gif", uint32(0), uint32(30)).Return(nil)
	enc.EXPECT().Sync().Return(nil)
	enc.EXPECT().Close().Return(nil)
	anim.EXPECT().Close().Return(nil)
	session.EXPECT().Close().Return(nil)

	opts := config.Default()
	opts.Output = "custom.gif"

	c := &convert.Converter{Engine: eng, Opts: opts, Log: testLogger(t)}
	res := c.Convert(context.Background(), "foo.json")
	require.NoError(t, res.Err)
	assert.Equal(t, "custom.gif", res.Output)
}

func TestConvertLoadFailed(t *testing.T) {
	ctrl := gomock.NewController(t)

	eng := mocks.NewMockEngine(ctrl)
	session := mocks.NewMockSession(ctrl)

	eng.EXPECT().Open().Return(session, nil)
	session.EXPECT().Load(gomock.Any()).Return(nil, engine.ErrLoadFailed)
	// The session is released even on the failure path.
	session.EXPECT().Close().Return(nil)

	c := &convert.Converter{Engine: eng, Opts: config.Default(), Log: testLogger(t)}
	res := c.Convert(context.Background(), "broken.json")
	assert.ErrorIs(t, res.Err, engine.ErrLoadFailed)
}

func TestConvertEncoderUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)

	eng := mocks.NewMockEngine(ctrl)
	session := mocks.NewMockSession(ctrl)
	anim := mocks.NewMockAnimation(ctrl)

	eng.EXPECT().Open().Return(session, nil)
	session.EXPECT().Load(gomock.Any()).Return(anim, nil)
	anim.EXPECT().Size().Return(float32(100), float32(100))
	anim.EXPECT().SetSize(gomock.Any(), gomock.Any()).Return(nil)
	session.EXPECT().NewEncoder().Return(nil, engine.ErrEncoderUnavailable)
	anim.EXPECT().Close().Return(nil)
	session.EXPECT().Close().Return(nil)

	c := &convert.Converter{Engine: eng, Opts: config.Default(), Log: testLogger(t)}
	res := c.Convert(context.Background(), "anim.json")
	assert.ErrorIs(t, res.Err, engine.ErrEncoderUnavailable)
}

func TestConvertResizeFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	eng := mocks.NewMockEngine(ctrl)
	session := mocks.NewMockSession(ctrl)
	anim := mocks.NewMockAnimation(ctrl)

	resizeErr := errors.New("picture set size: invalid argument")

	eng.EXPECT().Open().Return(session, nil)
	session.EXPECT().Load(gomock.Any()).Return(anim, nil)
	anim.EXPECT().Size().Return(float32(100), float32(100))
	anim.EXPECT().SetSize(gomock.Any(), gomock.Any()).Return(resizeErr)
	anim.EXPECT().Close().Return(nil)
	session.EXPECT().Close().Return(nil)

	c := &convert.Converter{Engine: eng, Opts: config.Default(), Log: testLogger(t)}
	res := c.Convert(context.Background(), "anim.json")
	assert.ErrorIs(t, res.Err, resizeErr)
	// A resize failure happens before any encoder exists and must not
	// report as an encoding error.
	assert.NotErrorIs(t, res.Err, engine.ErrEncodeFailed)
}

func TestConvertSyncFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	eng := mocks.NewMockEngine(ctrl)
	session := mocks.NewMockSession(ctrl)
	anim := mocks.NewMockAnimation(ctrl)
	enc := mocks.NewMockEncoder(ctrl)

	eng.EXPECT().Open().Return(session, nil)
	session.EXPECT().Load(gomock.Any()).Return(anim, nil)
	anim.EXPECT().Size().Return(float32(100), float32(100))
	anim.EXPECT().SetSize(gomock.Any(), gomock.Any()).Return(nil)
	session.EXPECT().NewEncoder().Return(enc, nil)
	enc.EXPECT().Save(anim, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	enc.EXPECT().Sync().Return(engine.ErrEncodeFailed)
	enc.EXPECT().Close().Return(nil)
	anim.EXPECT().Close().Return(nil)
	session.EXPECT().Close().Return(nil)

	c := &convert.Converter{Engine: eng, Opts: config.Default(), Log: testLogger(t)}
	res := c.Convert(context.Background(), "anim.json")
	assert.ErrorIs(t, res.Err, engine.ErrEncodeFailed)
}

func TestConvertDegenerateContent(t *testing.T) {
	ctrl := gomock.NewController(t)

	eng := mocks.NewMockEngine(ctrl)
	session := mocks.NewMockSession(ctrl)
	anim := mocks.NewMockAnimation(ctrl)

	eng.EXPECT().Open().Return(session, nil)
	session.EXPECT().Load(gomock.Any()).Return(anim, nil)
	anim.EXPECT().Size().Return(float32(0), float32(0))
	anim.EXPECT().Close().Return(nil)
	session.EXPECT().Close().Return(nil)

	c := &convert.Converter{Engine: eng, Opts: config.Default(), Log: testLogger(t)}
	res := c.Convert(context.Background(), "empty.json")
	assert.ErrorIs(t, res.Err, geometry.ErrDegenerateContent)
}

func TestConvertEngineInitFailed(t *testing.T) {
	ctrl := gomock.NewController(t)

	eng := mocks.NewMockEngine(ctrl)
	eng.EXPECT().Open().Return(nil, engine.ErrInitFailed)

	c := &convert.Converter{Engine: eng, Opts: config.Default(), Log: testLogger(t)}
	res := c.Convert(context.Background(), "anim.json")
	assert.ErrorIs(t, res.Err, engine.ErrInitFailed)
}

func TestConvertCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)

	// No engine expectations: a cancelled context never reaches Open.
	eng := mocks.NewMockEngine(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &convert.Converter{Engine: eng, Opts: config.Default(), Log: testLogger(t)}
	res := c.Convert(ctx, "anim.json")
	assert.ErrorIs(t, res.Err, context.Canceled)
}
