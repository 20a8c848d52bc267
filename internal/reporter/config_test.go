package reporter_test

import (
	"testing"

	"github.com/Nivl/gc-reporter/internal/reporter"
	"github.com/Nivl/gc-reporter/internal/secret"
	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv(t *testing.T) {
	t.Parallel()

	var cfg reporter.Config
	err := envconfig.ProcessWith(t.Context(), &envconfig.Config{
		Target: &cfg,
		Lookuper: envconfig.MapLookuper(map[string]string{
			"CUSTOMER_KEY": "abc",
			"GC_URL":       "https://example.test/ingest",
		}),
	})
	require.NoError(t, err)

	assert.Equal(t, "abc", cfg.CustomerKey.Get())
	assert.Equal(t, "https://example.test/ingest", cfg.URL)
	require.NoError(t, cfg.Validate())
}

func TestConfigFromEnvMissingValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing CUSTOMER_KEY",
			env:  map[string]string{"GC_URL": "https://example.test/ingest"},
		},
		{
			name: "missing GC_URL",
			env:  map[string]string{"CUSTOMER_KEY": "abc"},
		},
		{
			name: "missing everything",
			env:  map[string]string{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var cfg reporter.Config
			err := envconfig.ProcessWith(t.Context(), &envconfig.Config{
				Target:   &cfg,
				Lookuper: envconfig.MapLookuper(tc.env),
			})
			require.ErrorIs(t, err, envconfig.ErrMissingRequired)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		cfg     reporter.Config
		isValid bool
	}{
		{
			name: "valid https",
			cfg: reporter.Config{
				CustomerKey: secret.New("abc"),
				URL:         "https://example.test/ingest",
			},
			isValid: true,
		},
		{
			name: "valid http with port",
			cfg: reporter.Config{
				CustomerKey: secret.New("abc"),
				URL:         "http://127.0.0.1:8080/ingest",
			},
			isValid: true,
		},
		{
			name: "empty customer key",
			cfg: reporter.Config{
				URL: "https://example.test/ingest",
			},
		},
		{
			name: "empty url",
			cfg: reporter.Config{
				CustomerKey: secret.New("abc"),
			},
		},
		{
			name: "relative url",
			cfg: reporter.Config{
				CustomerKey: secret.New("abc"),
				URL:         "/ingest",
			},
		},
		{
			name: "unsupported scheme",
			cfg: reporter.Config{
				CustomerKey: secret.New("abc"),
				URL:         "ftp://example.test/ingest",
			},
		},
		{
			name: "garbage",
			cfg: reporter.Config{
				CustomerKey: secret.New("abc"),
				URL:         "not a url",
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.cfg.Validate()
			if tc.isValid {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, reporter.ErrConfigMissing)
		})
	}
}
