package config_test

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pddtools/pdd-ddns/internal/api"
	"github.com/pddtools/pdd-ddns/internal/config"
	"github.com/pddtools/pdd-ddns/internal/domain"
	"github.com/pddtools/pdd-ddns/internal/mocks"
	"github.com/pddtools/pdd-ddns/internal/pp"
	"github.com/pddtools/pdd-ddns/internal/provider"
)

func unsetAll(t *testing.T) {
	t.Helper()
	unset(t, "PDD_BASE_URL", "IP_PROVIDER", "VERBOSITY", "EMOJI")
}

//nolint:funlen,paralleltest // environment variables are global
func TestReadArgs(t *testing.T) {
	for name, tc := range map[string]struct {
		args          []string
		ok            bool
		expected      *config.Config
		prepareMockPP func(m *mocks.MockPP)
	}{
		"update": {
			[]string{"update", "token123", "home.example.com"},
			true,
			&config.Config{
				Auth:     api.PDDAuth{Token: "token123", BaseURL: api.DefaultBaseURL},
				Domain:   domain.Domain{Subdomain: "home", Zone: "example.com"},
				Provider: provider.NewIpify(),
				Action:   config.ActionUpdate,
				Value:    netip.Addr{},
			},
			func(m *mocks.MockPP) {
				gomock.InOrder(
					m.EXPECT().IsShowing(pp.Info).Return(true),
					m.EXPECT().Infof(pp.EmojiEnvVars, "Reading the command line . . ."),
					m.EXPECT().Indent().Return(m),
					m.EXPECT().Infof(pp.EmojiBullet, "Use default %s=%s", "PDD_BASE_URL", api.DefaultBaseURL),
				)
			},
		},
		"set": {
			[]string{"set", "token123", "home.example.com", "192.0.2.1"},
			true,
			&config.Config{
				Auth:     api.PDDAuth{Token: "token123", BaseURL: api.DefaultBaseURL},
				Domain:   domain.Domain{Subdomain: "home", Zone: "example.com"},
				Provider: provider.NewIpify(),
				Action:   config.ActionSet,
				Value:    netip.MustParseAddr("192.0.2.1"),
			},
			func(m *mocks.MockPP) {
				gomock.InOrder(
					m.EXPECT().IsShowing(pp.Info).Return(true),
					m.EXPECT().Infof(pp.EmojiEnvVars, "Reading the command line . . ."),
					m.EXPECT().Indent().Return(m),
					m.EXPECT().Infof(pp.EmojiBullet, "Use default %s=%s", "PDD_BASE_URL", api.DefaultBaseURL),
				)
			},
		},
		"none": {
			nil, false, nil,
			func(m *mocks.MockPP) {
				gomock.InOrder(
					m.EXPECT().IsShowing(pp.Info).Return(true),
					m.EXPECT().Infof(pp.EmojiEnvVars, "Reading the command line . . ."),
					m.EXPECT().Indent().Return(m),
					m.EXPECT().Errorf(pp.EmojiUserError, "No command was given"),
					m.EXPECT().Errorf(pp.EmojiConfig, "Usage: ddns update <token> <domain>"),
					m.EXPECT().Errorf(pp.EmojiConfig, "       ddns set <token> <domain> <address>"),
				)
			},
		},
		"unknown": {
			[]string{"delete", "token123", "home.example.com"}, false, nil,
			func(m *mocks.MockPP) {
				gomock.InOrder(
					m.EXPECT().IsShowing(pp.Info).Return(true),
					m.EXPECT().Infof(pp.EmojiEnvVars, "Reading the command line . . ."),
					m.EXPECT().Indent().Return(m),
					m.EXPECT().Errorf(pp.EmojiUserError, "%q is not a recognized command", "delete"),
					m.EXPECT().Errorf(pp.EmojiConfig, "Usage: ddns update <token> <domain>"),
					m.EXPECT().Errorf(pp.EmojiConfig, "       ddns set <token> <domain> <address>"),
				)
			},
		},
		"update/arity": {
			[]string{"update", "token123"}, false, nil,
			func(m *mocks.MockPP) {
				gomock.InOrder(
					m.EXPECT().IsShowing(pp.Info).Return(true),
					m.EXPECT().Infof(pp.EmojiEnvVars, "Reading the command line . . ."),
					m.EXPECT().Indent().Return(m),
					m.EXPECT().Errorf(pp.EmojiUserError, "The command %q takes exactly 2 operands, not %d", "update", 1),
					m.EXPECT().Errorf(pp.EmojiConfig, "Usage: ddns update <token> <domain>"),
					m.EXPECT().Errorf(pp.EmojiConfig, "       ddns set <token> <domain> <address>"),
				)
			},
		},
		"set/arity": {
			[]string{"set", "token123", "home.example.com"}, false, nil,
			func(m *mocks.MockPP) {
				gomock.InOrder(
					m.EXPECT().IsShowing(pp.Info).Return(true),
					m.EXPECT().Infof(pp.EmojiEnvVars, "Reading the command line . . ."),
					m.EXPECT().Indent().Return(m),
					m.EXPECT().Errorf(pp.EmojiUserError, "The command %q takes exactly 3 operands, not %d", "set", 2),
					m.EXPECT().Errorf(pp.EmojiConfig, "Usage: ddns update <token> <domain>"),
					m.EXPECT().Errorf(pp.EmojiConfig, "       ddns set <token> <domain> <address>"),
				)
			},
		},
		"dotless": {
			[]string{"update", "token123", "localhost"}, false, nil,
			func(m *mocks.MockPP) {
				gomock.InOrder(
					m.EXPECT().IsShowing(pp.Info).Return(true),
					m.EXPECT().Infof(pp.EmojiEnvVars, "Reading the command line . . ."),
					m.EXPECT().Indent().Return(m),
					m.EXPECT().Infof(pp.EmojiBullet, "Use default %s=%s", "PDD_BASE_URL", api.DefaultBaseURL),
					m.EXPECT().Errorf(pp.EmojiUserError, "The domain %q is %v", "localhost", domain.ErrNotSplittable),
				)
			},
		},
		"set/bad-ip": {
			[]string{"set", "token123", "home.example.com", "host.invalid"}, false, nil,
			func(m *mocks.MockPP) {
				gomock.InOrder(
					m.EXPECT().IsShowing(pp.Info).Return(true),
					m.EXPECT().Infof(pp.EmojiEnvVars, "Reading the command line . . ."),
					m.EXPECT().Indent().Return(m),
					m.EXPECT().Infof(pp.EmojiBullet, "Use default %s=%s", "PDD_BASE_URL", api.DefaultBaseURL),
					m.EXPECT().Errorf(pp.EmojiUserError, "Failed to parse the IP address %q: %v", "host.invalid", gomock.Any()),
				)
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			unsetAll(t)
			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			if tc.prepareMockPP != nil {
				tc.prepareMockPP(mockPP)
			}

			cfg := config.Default()
			ok := cfg.ReadArgs(mockPP, tc.args)
			require.Equal(t, tc.ok, ok)
			if tc.expected != nil {
				require.Equal(t, tc.expected, cfg)
			}
		})
	}
}

//nolint:paralleltest // environment variables are global
func TestReadEnvDefault(t *testing.T) {
	mockCtrl := gomock.NewController(t)

	unsetAll(t)

	cfg := config.Default()
	mockPP := mocks.NewMockPP(mockCtrl)
	innerMockPP := mocks.NewMockPP(mockCtrl)
	gomock.InOrder(
		mockPP.EXPECT().IsShowing(pp.Info).Return(true),
		mockPP.EXPECT().Infof(pp.EmojiEnvVars, "Reading settings . . ."),
		mockPP.EXPECT().Indent().Return(innerMockPP),
		innerMockPP.EXPECT().Infof(pp.EmojiBullet, "Use default %s=%s", "IP_PROVIDER", "ipify"),
	)
	ok := cfg.ReadEnv(mockPP)
	require.True(t, ok)
	require.Equal(t, provider.NewIpify(), cfg.Provider)
}

//nolint:paralleltest // environment variables are global
func TestReadEnvCustomProvider(t *testing.T) {
	mockCtrl := gomock.NewController(t)

	unsetAll(t)
	store(t, "IP_PROVIDER", "url:https://checkip.test/json")

	cfg := config.Default()
	mockPP := mocks.NewMockPP(mockCtrl)
	innerMockPP := mocks.NewMockPP(mockCtrl)
	gomock.InOrder(
		mockPP.EXPECT().IsShowing(pp.Info).Return(true),
		mockPP.EXPECT().Infof(pp.EmojiEnvVars, "Reading settings . . ."),
		mockPP.EXPECT().Indent().Return(innerMockPP),
	)
	ok := cfg.ReadEnv(mockPP)
	require.True(t, ok)
	require.Equal(t, provider.HTTP{ProviderName: "custom", URL: "https://checkip.test/json"}, cfg.Provider)
}

//nolint:paralleltest // environment variables are global
func TestReadEnvInvalidProvider(t *testing.T) {
	mockCtrl := gomock.NewController(t)

	unsetAll(t)
	store(t, "IP_PROVIDER", "dyndns")

	cfg := config.Default()
	mockPP := mocks.NewMockPP(mockCtrl)
	innerMockPP := mocks.NewMockPP(mockCtrl)
	gomock.InOrder(
		mockPP.EXPECT().IsShowing(pp.Info).Return(true),
		mockPP.EXPECT().Infof(pp.EmojiEnvVars, "Reading settings . . ."),
		mockPP.EXPECT().Indent().Return(innerMockPP),
		innerMockPP.EXPECT().Errorf(pp.EmojiUserError, "%s (%q) is not a valid provider", "IP_PROVIDER", "dyndns"),
	)
	ok := cfg.ReadEnv(mockPP)
	require.False(t, ok)
}
