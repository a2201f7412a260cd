// Package pwa is the entry point for generating Progressive Web App
// artifacts: localized index pages, localized web manifests and the
// service worker.
//
// The generation itself is done by command collaborators. Service checks
// that their dependencies are present, builds each command on first use and
// delegates to it.
package pwa

import (
	"context"
	"sync"

	apperrors "flux-pwa-generator/pkg/errors"
)

// Localizer is the localization collaborator required by the localized
// generation paths.
type Localizer interface {
	// Translate returns text translated for language, filling placeholders.
	Translate(ctx context.Context, text, module, language string, placeholders map[string]any) (string, error)
	// Languages lists the languages available for module.
	Languages(ctx context.Context, module string) ([]string, error)
}

type IndexHTMLRequest struct {
	ManifestJSONFile    string
	IndexHTMLFile       string
	WebManifestJSONFile string
	WebIndexMJSFile     string
	// LocalizationFolder is optional.
	LocalizationFolder string
}

type ManifestRequest struct {
	ManifestJSONFile   string
	LocalizationFolder string
}

// FileFilter decides whether a file below the web root is cached by the
// service worker.
type FileFilter func(root, file string) bool

type ServiceWorkerRequest struct {
	WebRoot                string
	ServiceWorkerMJSFile   string
	ApplicationCachePrefix string
	// TemplateFile overrides the built-in service worker template.
	TemplateFile     string
	Data             map[string]any
	Filter           FileFilter
	IgnoreJSDocFiles bool
}

type IndexHTMLGenerator interface {
	GenerateIndexHTMLs(ctx context.Context, req IndexHTMLRequest) error
}

type ManifestGenerator interface {
	GenerateManifestJSONs(ctx context.Context, req ManifestRequest) error
}

type ServiceWorkerGenerator interface {
	GenerateServiceWorker(ctx context.Context, req ServiceWorkerRequest) error
}

type (
	IndexHTMLFactory     func(Localizer) IndexHTMLGenerator
	ManifestFactory      func(Localizer) ManifestGenerator
	ServiceWorkerFactory func() ServiceWorkerGenerator
)

type Service struct {
	localizer Localizer

	newIndexHTML     IndexHTMLFactory
	newManifest      ManifestFactory
	newServiceWorker ServiceWorkerFactory

	mu            sync.Mutex
	indexHTML     IndexHTMLGenerator
	manifest      ManifestGenerator
	serviceWorker ServiceWorkerGenerator
}

type Option func(*Service)

func WithIndexHTMLFactory(f IndexHTMLFactory) Option {
	return func(s *Service) { s.newIndexHTML = f }
}

func WithManifestFactory(f ManifestFactory) Option {
	return func(s *Service) { s.newManifest = f }
}

func WithServiceWorkerFactory(f ServiceWorkerFactory) Option {
	return func(s *Service) { s.newServiceWorker = f }
}

// New creates a Service. localizer may be nil, in which case only
// GenerateServiceWorker can succeed.
func New(localizer Localizer, opts ...Option) *Service {
	s := &Service{localizer: localizer}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) GenerateIndexHTMLs(ctx context.Context, req IndexHTMLRequest) error {
	if s.localizer == nil {
		return apperrors.MissingDependency("LocalizationApi")
	}
	if s.newIndexHTML == nil {
		return apperrors.MissingDependency("GenerateIndexHtmlsCommand")
	}

	s.mu.Lock()
	if s.indexHTML == nil {
		s.indexHTML = s.newIndexHTML(s.localizer)
	}
	cmd := s.indexHTML
	s.mu.Unlock()

	return cmd.GenerateIndexHTMLs(ctx, req)
}

func (s *Service) GenerateManifestJSONs(ctx context.Context, req ManifestRequest) error {
	if s.localizer == nil {
		return apperrors.MissingDependency("LocalizationApi")
	}
	if s.newManifest == nil {
		return apperrors.MissingDependency("GenerateManifestJsonsCommand")
	}

	s.mu.Lock()
	if s.manifest == nil {
		s.manifest = s.newManifest(s.localizer)
	}
	cmd := s.manifest
	s.mu.Unlock()

	return cmd.GenerateManifestJSONs(ctx, req)
}

// GenerateServiceWorker does not need a Localizer.
func (s *Service) GenerateServiceWorker(ctx context.Context, req ServiceWorkerRequest) error {
	if s.newServiceWorker == nil {
		return apperrors.MissingDependency("GenerateServiceWorkerCommand")
	}

	s.mu.Lock()
	if s.serviceWorker == nil {
		s.serviceWorker = s.newServiceWorker()
	}
	cmd := s.serviceWorker
	s.mu.Unlock()

	return cmd.GenerateServiceWorker(ctx, req)
}
