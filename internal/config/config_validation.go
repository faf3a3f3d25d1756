package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Defaults are applied here rather than scattered across the loaders: the
// driver falls back to "pgx" and the issuer to "chirp". The token sign key
// has no default on purpose; an unset secret must fail startup, never be
// invented.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = "pgx"
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = "chirp"
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
