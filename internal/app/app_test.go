package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/basidwild/clawdbox/internal/adapters/telemetry"
	"github.com/basidwild/clawdbox/internal/app"
	"github.com/basidwild/clawdbox/internal/core/domain"
	"github.com/basidwild/clawdbox/internal/core/ports/mocks"
	"github.com/basidwild/clawdbox/internal/engine/checker"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testManifest(t *testing.T) *domain.Manifest {
	t.Helper()
	m, err := domain.NewManifest(
		domain.BuildParams{Workspace: ".", Profile: "dev"},
		[]domain.Feature{domain.FeatureGDB, domain.NewFeature("vhost-net")},
	)
	require.NoError(t, err)
	return m
}

type appFixture struct {
	loader  *mocks.MockManifestLoader
	invoker *mocks.MockInvoker
	app     *app.App
}

func newAppFixture(t *testing.T) *appFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	loader := mocks.NewMockManifestLoader(ctrl)
	invoker := mocks.NewMockInvoker(ctrl)
	fingerprinter := mocks.NewMockFingerprinter(ctrl)
	fingerprinter.EXPECT().Fingerprint(gomock.Any()).Return("feedbeeffeedbeef", nil).AnyTimes()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	chk := checker.NewChecker(invoker, fingerprinter, telemetry.NewNoOp(), log)
	return &appFixture{
		loader:  loader,
		invoker: invoker,
		app:     app.New(loader, chk),
	}
}

func TestApp_Run_AllFeatures(t *testing.T) {
	f := newAppFixture(t)

	f.loader.EXPECT().Load(".").Return(testManifest(t), nil)
	f.invoker.EXPECT().
		Build(gomock.Any(), gomock.Any()).
		Return(domain.OutcomeSuccess, nil).
		Times(2)

	err := f.app.Run(context.Background(), nil, 1)
	require.NoError(t, err)
}

func TestApp_Run_SingleFeature(t *testing.T) {
	f := newAppFixture(t)

	f.loader.EXPECT().Load(".").Return(testManifest(t), nil)
	f.invoker.EXPECT().
		Build(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *domain.BuildRequest) (domain.BuildOutcome, error) {
			require.Equal(t, "gdb", req.FeatureList())
			return domain.OutcomeSuccess, nil
		}).
		Times(1)

	err := f.app.Run(context.Background(), []string{"gdb"}, 1)
	require.NoError(t, err)
}

func TestApp_Run_UnknownFeature(t *testing.T) {
	f := newAppFixture(t)

	f.loader.EXPECT().Load(".").Return(testManifest(t), nil)
	// The invoker must never run for an undeclared capability.

	err := f.app.Run(context.Background(), []string{"tpm"}, 1)
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrUnknownFeature))
}

func TestApp_Run_BuildFailure(t *testing.T) {
	f := newAppFixture(t)

	f.loader.EXPECT().Load(".").Return(testManifest(t), nil)
	f.invoker.EXPECT().
		Build(gomock.Any(), gomock.Any()).
		Return(domain.Failure("error: linking failed"), nil).
		Times(1)

	err := f.app.Run(context.Background(), []string{"gdb"}, 1)
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrBuildFailed))
}

func TestApp_Run_ManifestLoadFailure(t *testing.T) {
	f := newAppFixture(t)

	f.loader.EXPECT().Load(".").Return(nil, errors.New("no manifest"))

	err := f.app.Run(context.Background(), nil, 1)
	require.Error(t, err)
}

func TestApp_Features(t *testing.T) {
	f := newAppFixture(t)

	f.loader.EXPECT().Load(".").Return(testManifest(t), nil)

	features, err := f.app.Features()
	require.NoError(t, err)
	require.Len(t, features, 2)
	require.Equal(t, domain.FeatureGDB, features[0])
}
