package internal

import (
	"errors"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/hrportal/employee-portal/internal/notify"
)

var _ = ginkgo.Describe("AppError", func() {
	ginkgo.It("should tag storage errors with the given code and wrap the cause", func() {
		cause := errors.New("disk gone")
		err := NewStorageError("could not load accounts", ErrCodeStoreReadFailed, cause)

		gomega.Expect(err.Type).To(gomega.Equal(ErrorTypeStorage))
		gomega.Expect(err.Code).To(gomega.Equal(ErrCodeStoreReadFailed))
		gomega.Expect(errors.Is(err, cause)).To(gomega.BeTrue())
		gomega.Expect(err.Error()).To(gomega.ContainSubstring("disk gone"))
	})

	ginkgo.Describe("SeverityFor", func() {
		ginkgo.It("should map the gate errors to their toast severities", func() {
			gomega.Expect(SeverityFor(ErrLoginRequired)).To(gomega.Equal(notify.SeverityWarning))
			gomega.Expect(SeverityFor(ErrAdminOnly)).To(gomega.Equal(notify.SeverityDanger))
		})

		ginkgo.It("should show unknown errors as danger", func() {
			gomega.Expect(SeverityFor(errors.New("boom"))).To(gomega.Equal(notify.SeverityDanger))
		})
	})
})
