package store

import "github.com/google/uuid"

// SeedOptions controls the initial admin account and department names used
// when the blob is absent or unreadable.
type SeedOptions struct {
	AdminEmail     string
	AdminPassword  string
	AdminFirstName string
	AdminLastName  string
	Departments    []string
}

func DefaultSeedOptions() SeedOptions {
	return SeedOptions{
		AdminEmail:     "admin@example.com",
		AdminPassword:  "admin123",
		AdminFirstName: "Portal",
		AdminLastName:  "Admin",
		Departments:    []string{"Engineering", "Human Resources"},
	}
}

// Seed returns the default fallback database: one verified admin account,
// two departments, no employees or requests.
func Seed() *Database {
	return SeedWith(DefaultSeedOptions())
}

func SeedWith(opts SeedOptions) *Database {
	db := &Database{
		Accounts: []Account{
			{
				ID:        uuid.NewString(),
				FirstName: opts.AdminFirstName,
				LastName:  opts.AdminLastName,
				Email:     NormalizeEmail(opts.AdminEmail),
				Password:  opts.AdminPassword,
				Role:      RoleAdmin,
				Verified:  true,
			},
		},
		Departments: make([]Department, 0, len(opts.Departments)),
		Employees:   []Employee{},
		Requests:    []Request{},
	}

	for _, name := range opts.Departments {
		db.Departments = append(db.Departments, Department{
			ID:   uuid.NewString(),
			Name: name,
		})
	}

	return db
}
