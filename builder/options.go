package builder

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasmodel/internal/naming"
	"github.com/erraggy/oasmodel/model"
	"github.com/erraggy/oasmodel/oaserrors"
	"github.com/erraggy/oasmodel/oaslog"
)

// SchemaNamingStrategy controls how schema component names are rewritten
// by AddSchema and SchemaRef.
type SchemaNamingStrategy = naming.Strategy

// Schema naming strategies.
const (
	// SchemaNamingDefault keeps names as given.
	SchemaNamingDefault = naming.Verbatim
	// SchemaNamingPascalCase rewrites "street_address" as "StreetAddress".
	SchemaNamingPascalCase = naming.Pascal
	// SchemaNamingCamelCase rewrites "street_address" as "streetAddress".
	SchemaNamingCamelCase = naming.Camel
	// SchemaNamingSnakeCase rewrites "StreetAddress" as "street_address".
	SchemaNamingSnakeCase = naming.Snake
	// SchemaNamingKebabCase rewrites "StreetAddress" as "street-address".
	SchemaNamingKebabCase = naming.Kebab
)

// Option configures a Builder.
type Option func(*config)

type config struct {
	naming  SchemaNamingStrategy
	version string
	logger  oaslog.Logger
	err     error
}

func defaultConfig() *config {
	return &config{
		naming:  SchemaNamingDefault,
		version: model.DefaultOpenAPIVersion,
		logger:  oaslog.NopLogger{},
	}
}

// WithSchemaNaming sets the schema naming strategy. The default keeps names
// as given.
func WithSchemaNaming(strategy SchemaNamingStrategy) Option {
	return func(cfg *config) {
		if !strategy.Valid() {
			cfg.err = &oaserrors.ConfigError{
				Option:  "WithSchemaNaming",
				Value:   int(strategy),
				Message: "unknown naming strategy",
			}
			return
		}
		cfg.naming = strategy
	}
}

// WithOpenAPIVersion sets the "openapi" field of the built document. Only
// 3.x versions are accepted. The default is model.DefaultOpenAPIVersion.
func WithOpenAPIVersion(version string) Option {
	return func(cfg *config) {
		if !strings.HasPrefix(version, "3.") {
			cfg.err = &oaserrors.ConfigError{
				Option:  "WithOpenAPIVersion",
				Value:   version,
				Message: fmt.Sprintf("unsupported OpenAPI version %q", version),
			}
			return
		}
		cfg.version = version
	}
}

// WithLogger sets the logger that reports overwritten entries at debug
// level. A nil logger disables logging.
func WithLogger(l oaslog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = oaslog.OrNop(l)
	}
}
