package config_test

import (
	"net/netip"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/pddtools/pdd-ddns/internal/api"
	"github.com/pddtools/pdd-ddns/internal/config"
	"github.com/pddtools/pdd-ddns/internal/domain"
	"github.com/pddtools/pdd-ddns/internal/mocks"
	"github.com/pddtools/pdd-ddns/internal/pp"
	"github.com/pddtools/pdd-ddns/internal/provider"
)

func TestPrintUpdate(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)

	mockPP := mocks.NewMockPP(mockCtrl)
	innerMockPP := mocks.NewMockPP(mockCtrl)
	gomock.InOrder(
		mockPP.EXPECT().IsShowing(pp.Info).Return(true),
		mockPP.EXPECT().Infof(pp.EmojiEnvVars, "Current settings:"),
		mockPP.EXPECT().Indent().Return(mockPP),
		mockPP.EXPECT().Indent().Return(innerMockPP),
		mockPP.EXPECT().Infof(pp.EmojiConfig, "Domain:"),
		innerMockPP.EXPECT().Infof(pp.EmojiBullet, "%-*s %s", 24, "Full name:", "home.example.com"),
		innerMockPP.EXPECT().Infof(pp.EmojiBullet, "%-*s %s", 24, "Subdomain:", `"home"`),
		innerMockPP.EXPECT().Infof(pp.EmojiBullet, "%-*s %s", 24, "Zone:", `"example.com"`),
		mockPP.EXPECT().Infof(pp.EmojiConfig, "Action:"),
		innerMockPP.EXPECT().Infof(pp.EmojiBullet, "%-*s %s", 24, "Command:", "update"),
		innerMockPP.EXPECT().Infof(pp.EmojiBullet, "%-*s %s", 24, "Detection provider:", "ipify"),
	)

	c := &config.Config{
		Auth:     api.PDDAuth{Token: "token123", BaseURL: api.DefaultBaseURL},
		Domain:   domain.Domain{Subdomain: "home", Zone: "example.com"},
		Provider: provider.NewIpify(),
		Action:   config.ActionUpdate,
		Value:    netip.Addr{},
	}
	c.Print(mockPP)
}

func TestPrintSet(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)

	mockPP := mocks.NewMockPP(mockCtrl)
	innerMockPP := mocks.NewMockPP(mockCtrl)
	gomock.InOrder(
		mockPP.EXPECT().IsShowing(pp.Info).Return(true),
		mockPP.EXPECT().Infof(pp.EmojiEnvVars, "Current settings:"),
		mockPP.EXPECT().Indent().Return(mockPP),
		mockPP.EXPECT().Indent().Return(innerMockPP),
		mockPP.EXPECT().Infof(pp.EmojiConfig, "Domain:"),
		innerMockPP.EXPECT().Infof(pp.EmojiBullet, "%-*s %s", 24, "Full name:", "home.example.com"),
		innerMockPP.EXPECT().Infof(pp.EmojiBullet, "%-*s %s", 24, "Subdomain:", `"home"`),
		innerMockPP.EXPECT().Infof(pp.EmojiBullet, "%-*s %s", 24, "Zone:", `"example.com"`),
		mockPP.EXPECT().Infof(pp.EmojiConfig, "Action:"),
		innerMockPP.EXPECT().Infof(pp.EmojiBullet, "%-*s %s", 24, "Command:", "set"),
		innerMockPP.EXPECT().Infof(pp.EmojiBullet, "%-*s %s", 24, "New address:", "192.0.2.1"),
	)

	c := &config.Config{
		Auth:     api.PDDAuth{Token: "token123", BaseURL: api.DefaultBaseURL},
		Domain:   domain.Domain{Subdomain: "home", Zone: "example.com"},
		Provider: nil,
		Action:   config.ActionSet,
		Value:    netip.MustParseAddr("192.0.2.1"),
	}
	c.Print(mockPP)
}

func TestPrintHidden(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)

	mockPP := mocks.NewMockPP(mockCtrl)
	mockPP.EXPECT().IsShowing(pp.Info).Return(false)

	var cfg config.Config
	cfg.Print(mockPP)
}
