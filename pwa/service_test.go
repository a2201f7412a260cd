package pwa

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "flux-pwa-generator/pkg/errors"
)

type mockLocalizer struct {
	mock.Mock
}

func (m *mockLocalizer) Translate(ctx context.Context, text, module, language string, placeholders map[string]any) (string, error) {
	args := m.Called(ctx, text, module, language, placeholders)
	return args.String(0), args.Error(1)
}

func (m *mockLocalizer) Languages(ctx context.Context, module string) ([]string, error) {
	args := m.Called(ctx, module)
	return args.Get(0).([]string), args.Error(1)
}

type mockCommands struct {
	mock.Mock
}

func (m *mockCommands) GenerateIndexHTMLs(ctx context.Context, req IndexHTMLRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockCommands) GenerateManifestJSONs(ctx context.Context, req ManifestRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockCommands) GenerateServiceWorker(ctx context.Context, req ServiceWorkerRequest) error {
	return m.Called(ctx, req).Error(0)
}

func TestService_MissingLocalizer(t *testing.T) {
	ctx := context.Background()
	factoryCalls := 0
	cmds := new(mockCommands)
	svc := New(nil,
		WithIndexHTMLFactory(func(Localizer) IndexHTMLGenerator { factoryCalls++; return cmds }),
		WithManifestFactory(func(Localizer) ManifestGenerator { factoryCalls++; return cmds }),
	)

	t.Run("Should refuse to generate index pages", func(t *testing.T) {
		err := svc.GenerateIndexHTMLs(ctx, IndexHTMLRequest{ManifestJSONFile: "manifest.json"})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrMissingDependency)
		assert.Contains(t, err.Error(), "LocalizationApi")
	})

	t.Run("Should refuse to generate manifests", func(t *testing.T) {
		err := svc.GenerateManifestJSONs(ctx, ManifestRequest{ManifestJSONFile: "manifest.json"})
		assert.ErrorIs(t, err, apperrors.ErrMissingDependency)
	})

	assert.Zero(t, factoryCalls)
	cmds.AssertNotCalled(t, "GenerateIndexHTMLs", mock.Anything, mock.Anything)
}

func TestService_Delegates(t *testing.T) {
	ctx := context.Background()
	localizer := new(mockLocalizer)

	t.Run("Should build the index command once and pass the localizer", func(t *testing.T) {
		cmds := new(mockCommands)
		req := IndexHTMLRequest{
			ManifestJSONFile:    "manifest.json",
			IndexHTMLFile:       "index.html",
			WebManifestJSONFile: "web/manifest.json",
			WebIndexMJSFile:     "web/index.mjs",
		}
		cmds.On("GenerateIndexHTMLs", ctx, req).Return(nil).Twice()

		built := 0
		svc := New(localizer, WithIndexHTMLFactory(func(l Localizer) IndexHTMLGenerator {
			built++
			assert.Same(t, localizer, l)
			return cmds
		}))

		require.NoError(t, svc.GenerateIndexHTMLs(ctx, req))
		require.NoError(t, svc.GenerateIndexHTMLs(ctx, req))
		assert.Equal(t, 1, built)
		cmds.AssertExpectations(t)
	})

	t.Run("Should return command errors unchanged", func(t *testing.T) {
		cmds := new(mockCommands)
		boom := errors.New("localization folder not found")
		req := ManifestRequest{ManifestJSONFile: "manifest.json", LocalizationFolder: "localization"}
		cmds.On("GenerateManifestJSONs", ctx, req).Return(boom).Once()

		svc := New(localizer, WithManifestFactory(func(Localizer) ManifestGenerator { return cmds }))
		assert.Same(t, boom, svc.GenerateManifestJSONs(ctx, req))
		cmds.AssertExpectations(t)
	})

	t.Run("Should report a missing command", func(t *testing.T) {
		err := New(localizer).GenerateManifestJSONs(ctx, ManifestRequest{})
		assert.ErrorIs(t, err, apperrors.ErrMissingDependency)
	})
}

func TestService_GenerateServiceWorker(t *testing.T) {
	ctx := context.Background()

	t.Run("Should not need a localizer", func(t *testing.T) {
		cmds := new(mockCommands)
		cmds.On("GenerateServiceWorker", ctx, mock.MatchedBy(func(req ServiceWorkerRequest) bool {
			return req.WebRoot == "web" && req.ApplicationCachePrefix == "app-" && req.IgnoreJSDocFiles
		})).Return(nil).Once()

		svc := New(nil, WithServiceWorkerFactory(func() ServiceWorkerGenerator { return cmds }))
		err := svc.GenerateServiceWorker(ctx, ServiceWorkerRequest{
			WebRoot:                "web",
			ServiceWorkerMJSFile:   "web/service-worker.mjs",
			ApplicationCachePrefix: "app-",
			IgnoreJSDocFiles:       true,
		})
		require.NoError(t, err)
		cmds.AssertExpectations(t)
	})

	t.Run("Should report a missing command", func(t *testing.T) {
		err := New(nil).GenerateServiceWorker(ctx, ServiceWorkerRequest{WebRoot: "web"})
		assert.ErrorIs(t, err, apperrors.ErrMissingDependency)
	})
}
