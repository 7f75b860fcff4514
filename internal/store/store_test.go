package store

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/hrportal/employee-portal/internal/storage"
)

func TestStore(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Store Module Suite")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var _ = ginkgo.Describe("Parse", func() {
	ginkgo.Context("when the blob is absent", func() {
		ginkgo.It("should fall back to the seed database", func() {
			// When
			db, seeded := Parse("", false)

			// Then
			gomega.Expect(seeded).To(gomega.BeTrue())
			gomega.Expect(db.Accounts).To(gomega.HaveLen(1))
			gomega.Expect(db.Accounts[0].Role).To(gomega.Equal(RoleAdmin))
			gomega.Expect(db.Accounts[0].Verified).To(gomega.BeTrue())
			gomega.Expect(db.Departments).To(gomega.HaveLen(2))
			gomega.Expect(db.Employees).To(gomega.BeEmpty())
			gomega.Expect(db.Requests).To(gomega.BeEmpty())
		})
	})

	ginkgo.Context("when the blob is unparsable", func() {
		ginkgo.It("should fall back to the seed database", func() {
			// When
			db, seeded := Parse("{not json", true)

			// Then
			gomega.Expect(seeded).To(gomega.BeTrue())
			gomega.Expect(db.Accounts).To(gomega.HaveLen(1))
			gomega.Expect(db.Accounts[0].Email).To(gomega.Equal("admin@example.com"))
		})
	})

	ginkgo.Context("when the blob is valid", func() {
		ginkgo.It("should round-trip the database unchanged", func() {
			// Given
			original := &Database{
				Accounts: []Account{
					{ID: "a1", FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Password: "secret1", Role: RoleUser, Verified: false},
				},
				Departments: []Department{{ID: "d1", Name: "Sales"}},
				Employees:   []Employee{{ID: "e1", AccountID: "a1", Position: "Rep", DepartmentID: "d1"}},
				Requests:    []Request{{ID: "r1", AccountID: "a1", Type: "leave", Status: "pending"}},
			}
			raw, err := Serialize(original)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			// When
			db, seeded := Parse(raw, true)

			// Then
			gomega.Expect(seeded).To(gomega.BeFalse())
			gomega.Expect(db).To(gomega.Equal(original))
		})
	})
})

var _ = ginkgo.Describe("Database", func() {
	ginkgo.Describe("FindAccountByEmail", func() {
		var db *Database

		ginkgo.BeforeEach(func() {
			db = &Database{
				Accounts: []Account{
					{ID: "a1", Email: "jane@example.com"},
					{ID: "a2", Email: "john@example.com"},
				},
			}
		})

		ginkgo.It("should match case-insensitively and ignore whitespace", func() {
			account := db.FindAccountByEmail("  Jane@Example.COM ")
			gomega.Expect(account).ToNot(gomega.BeNil())
			gomega.Expect(account.ID).To(gomega.Equal("a1"))
		})

		ginkgo.It("should return a pointer into the accounts slice", func() {
			account := db.FindAccountByEmail("john@example.com")
			gomega.Expect(account).ToNot(gomega.BeNil())

			account.Verified = true
			gomega.Expect(db.Accounts[1].Verified).To(gomega.BeTrue())
		})

		ginkgo.It("should return nil for an unknown email", func() {
			gomega.Expect(db.FindAccountByEmail("nobody@example.com")).To(gomega.BeNil())
		})
	})
})

var _ = ginkgo.Describe("Repository", func() {
	var (
		substrate *storage.Memory
		repo      *Repository
		ctx       context.Context
	)

	ginkgo.BeforeEach(func() {
		substrate = storage.NewMemory()
		repo = NewRepository(substrate, discardLogger())
		ctx = context.Background()
	})

	ginkgo.Describe("Load", func() {
		ginkgo.Context("when the substrate is empty", func() {
			ginkgo.It("should return the seed and persist it immediately", func() {
				// When
				db, err := repo.Load(ctx)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(db.Accounts).To(gomega.HaveLen(1))

				raw, present, err := substrate.Get(ctx, storage.StoreBlobKey)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(present).To(gomega.BeTrue())

				persisted, seeded := Parse(raw, true)
				gomega.Expect(seeded).To(gomega.BeFalse())
				gomega.Expect(persisted).To(gomega.Equal(db))
			})
		})

		ginkgo.Context("when the blob is corrupt", func() {
			ginkgo.It("should replace it with the seed", func() {
				// Given
				gomega.Expect(substrate.Set(ctx, storage.StoreBlobKey, "%%%")).To(gomega.Succeed())

				// When
				db, err := repo.Load(ctx)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(db.Accounts).To(gomega.HaveLen(1))
				gomega.Expect(db.Accounts[0].Role).To(gomega.Equal(RoleAdmin))
			})
		})
	})

	ginkgo.Describe("Save", func() {
		ginkgo.It("should persist mutations for the next load", func() {
			// Given
			db, err := repo.Load(ctx)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			db.Accounts = append(db.Accounts, Account{ID: "a2", Email: "new@example.com", Role: RoleUser})

			// When
			gomega.Expect(repo.Save(ctx, db)).To(gomega.Succeed())

			// Then
			reloaded, err := repo.Load(ctx)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(reloaded.Accounts).To(gomega.HaveLen(2))
			gomega.Expect(reloaded.FindAccountByEmail("new@example.com")).ToNot(gomega.BeNil())
		})
	})
})

var _ = ginkgo.Describe("SeedWith", func() {
	ginkgo.It("should honor custom seed options", func() {
		db := SeedWith(SeedOptions{
			AdminEmail:     "Boss@Corp.Example",
			AdminPassword:  "sup3rsecret",
			AdminFirstName: "Big",
			AdminLastName:  "Boss",
			Departments:    []string{"Ops"},
		})

		gomega.Expect(db.Accounts).To(gomega.HaveLen(1))
		gomega.Expect(db.Accounts[0].Email).To(gomega.Equal("boss@corp.example"))
		gomega.Expect(db.Accounts[0].Verified).To(gomega.BeTrue())
		gomega.Expect(db.Departments).To(gomega.HaveLen(1))
		gomega.Expect(db.Departments[0].Name).To(gomega.Equal("Ops"))
	})
})
