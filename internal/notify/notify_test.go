package notify

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/hrportal/employee-portal/internal/core/events"
)

func TestNotify(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Notify Module Suite")
}

var _ = ginkgo.Describe("BusNotifier", func() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ginkgo.It("should publish a notification event with message and severity", func() {
		bus := events.NewEventBus(logger)

		var received []events.Event
		bus.Subscribe(EventTypeNotification, func(_ context.Context, event events.Event) error {
			received = append(received, event)
			return nil
		})

		notifier := NewBusNotifier(bus, logger)
		notifier.Notify(context.Background(), "Please log in first", SeverityWarning)

		gomega.Expect(received).To(gomega.HaveLen(1))
		payload, ok := received[0].Payload().(map[string]interface{})
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(payload["message"]).To(gomega.Equal("Please log in first"))
		gomega.Expect(payload["severity"]).To(gomega.Equal(string(SeverityWarning)))
	})
})
