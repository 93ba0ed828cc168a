package setter_test

// vim: nowrap

import (
	"context"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pddtools/pdd-ddns/internal/api"
	"github.com/pddtools/pdd-ddns/internal/domain"
	"github.com/pddtools/pdd-ddns/internal/mocks"
	"github.com/pddtools/pdd-ddns/internal/pp"
	"github.com/pddtools/pdd-ddns/internal/setter"
)

func TestNew(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)

	s, ok := setter.New(mocks.NewMockPP(mockCtrl), mocks.NewMockHandle(mockCtrl))
	require.True(t, ok)
	require.NotNil(t, s)
}

//nolint:funlen
func TestSet(t *testing.T) {
	t.Parallel()

	mockDomain := domain.Domain{Subdomain: "home", Zone: "example.com"}
	ip := netip.MustParseAddr("10.0.0.2")

	for name, tc := range map[string]struct {
		expected     setter.ResponseCode
		prepareMocks func(ctx context.Context, p *mocks.MockPP, h *mocks.MockHandle)
	}{
		"updated": {
			setter.ResponseUpdated,
			func(ctx context.Context, p *mocks.MockPP, h *mocks.MockHandle) {
				gomock.InOrder(
					h.EXPECT().FindRecord(ctx, p, mockDomain).Return(api.Record{ID: 7, Subdomain: "home", Content: "10.0.0.1"}, true),
					h.EXPECT().UpdateRecord(ctx, p, mockDomain, api.ID(7), ip).Return(api.Record{ID: 7, Subdomain: "home", Content: "10.0.0.2"}, true),
					p.EXPECT().Noticef(pp.EmojiUpdateRecord, "Updated the record of %q to %s (ID: %s)", "home.example.com", "10.0.0.2", api.ID(7)),
				)
			},
		},
		// rewriting is unconditional; holding the wanted address already does not matter
		"updated-same-content": {
			setter.ResponseUpdated,
			func(ctx context.Context, p *mocks.MockPP, h *mocks.MockHandle) {
				gomock.InOrder(
					h.EXPECT().FindRecord(ctx, p, mockDomain).Return(api.Record{ID: 7, Subdomain: "home", Content: "10.0.0.2"}, true),
					h.EXPECT().UpdateRecord(ctx, p, mockDomain, api.ID(7), ip).Return(api.Record{ID: 7, Subdomain: "home", Content: "10.0.0.2"}, true),
					p.EXPECT().Noticef(pp.EmojiUpdateRecord, "Updated the record of %q to %s (ID: %s)", "home.example.com", "10.0.0.2", api.ID(7)),
				)
			},
		},
		"find-fails": {
			setter.ResponseFailed,
			func(ctx context.Context, p *mocks.MockPP, h *mocks.MockHandle) {
				h.EXPECT().FindRecord(ctx, p, mockDomain).Return(api.Record{}, false)
			},
		},
		"update-fails": {
			setter.ResponseFailed,
			func(ctx context.Context, p *mocks.MockPP, h *mocks.MockHandle) {
				gomock.InOrder(
					h.EXPECT().FindRecord(ctx, p, mockDomain).Return(api.Record{ID: 7, Subdomain: "home", Content: "10.0.0.1"}, true),
					h.EXPECT().UpdateRecord(ctx, p, mockDomain, api.ID(7), ip).Return(api.Record{}, false),
				)
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			mockHandle := mocks.NewMockHandle(mockCtrl)
			if tc.prepareMocks != nil {
				tc.prepareMocks(ctx, mockPP, mockHandle)
			}

			s, ok := setter.New(mockPP, mockHandle)
			require.True(t, ok)

			require.Equal(t, tc.expected, s.Set(ctx, mockPP, mockDomain, ip))
		})
	}
}
