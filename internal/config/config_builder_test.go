package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_DefaultsFillZeroFields(t *testing.T) {
	cfg, err := newConfigBuilder().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.API.RequestTimeout)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
}

func TestConfigBuilder_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		API: API{BaseURL: "http://from-env"},
	})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	// the env value must survive the defaults merge
	assert.Equal(t, "http://from-env", cfg.API.BaseURL)
	// fields the env source left empty are filled from defaults
	assert.Equal(t, DefaultRequestTimeout, cfg.API.RequestTimeout)
}

func TestConfigBuilder_ErrorPropagates(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	_, err := b.build()
	require.Error(t, err)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := &ClientConfig{
		Adapter: ClientAdapter{BaseURL: DefaultBaseURL, RequestTimeout: DefaultRequestTimeout},
		Storage: ClientStorage{DB: ClientDB{DSN: DefaultDSN}},
	}
	require.NoError(t, valid.validate())

	noURL := *valid
	noURL.Adapter.BaseURL = ""
	assert.ErrorIs(t, noURL.validate(), ErrInvalidAdapterConfigs)

	noDSN := *valid
	noDSN.Storage.DB.DSN = ""
	assert.ErrorIs(t, noDSN.validate(), ErrInvalidStorageConfigs)
}
