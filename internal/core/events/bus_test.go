package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestEvents(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Events Module Suite")
}

var _ = ginkgo.Describe("EventBus", func() {
	var (
		bus *EventBus
		ctx context.Context
	)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ginkgo.BeforeEach(func() {
		bus = NewEventBus(logger)
		ctx = context.Background()
	})

	ginkgo.It("should deliver events to subscribers in subscription order", func() {
		var order []string
		bus.Subscribe("test.event", func(_ context.Context, _ Event) error {
			order = append(order, "first")
			return nil
		})
		bus.Subscribe("test.event", func(_ context.Context, _ Event) error {
			order = append(order, "second")
			return nil
		})

		err := bus.Publish(ctx, NewBaseEvent("test.event", nil))

		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(order).To(gomega.Equal([]string{"first", "second"}))
	})

	ginkgo.It("should ignore events with no handlers", func() {
		err := bus.Publish(ctx, NewBaseEvent("unhandled.event", nil))
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
	})

	ginkgo.It("should propagate handler failures", func() {
		bus.Subscribe("test.event", func(_ context.Context, _ Event) error {
			return errors.New("boom")
		})

		err := bus.Publish(ctx, NewBaseEvent("test.event", nil))

		gomega.Expect(err).To(gomega.HaveOccurred())
		gomega.Expect(err.Error()).To(gomega.ContainSubstring("boom"))
	})

	ginkgo.It("should stamp generated events with an id and timestamp", func() {
		event := NewBaseEvent("test.event", map[string]interface{}{"k": "v"})

		gomega.Expect(event.EventID()).ToNot(gomega.BeEmpty())
		gomega.Expect(event.OccurredAt()).ToNot(gomega.BeZero())
		gomega.Expect(event.EventType()).To(gomega.Equal("test.event"))
	})
})
