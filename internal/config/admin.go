package config

import "os"

// AdminAccount - the single operator account. There is no user table;
// credentials come from the environment and the password is a bcrypt hash.
type AdminAccount struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}

func LoadAdminAccount() AdminAccount {
	return AdminAccount{
		ID:           "1",
		Name:         GetEnv("ADMIN_NAME", "System Administrator"),
		Email:        GetEnv("ADMIN_EMAIL", "admin@quicklinkservices.com"),
		PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
}
