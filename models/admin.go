// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the authorization role attached to an admin account.
type Role string

// RoleAdmin is the only role allowed to sign into the admin area.
const RoleAdmin Role = "admin"

// AdminAccount is an identity that can sign into the admin area.
//
// SecretHash holds an encoded argon2id digest of the account secret and is
// never serialized. Identifier is unique across all accounts.
type AdminAccount struct {
	ID         int64     `json:"id"`
	Identifier string    `json:"email"`
	Name       string    `json:"name"`
	SecretHash string    `json:"-"`
	Role       Role      `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Credentials is the (identifier, secret) pair submitted on login.
type Credentials struct {
	Identifier string `json:"email"`
	Secret     string `json:"password"`
}

// IdentifierChange is the body of a rename request.
type IdentifierChange struct {
	NewIdentifier string `json:"newEmail"`
}

// SecretChange is the body of a secret rotation request.
type SecretChange struct {
	CurrentSecret string `json:"currentPassword"`
	NewSecret     string `json:"newPassword"`
}

// AccountView is the public projection of an account returned to the admin UI.
type AccountView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// View projects the account without its secret digest.
func (a AdminAccount) View() AccountView {
	return AccountView{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Identifier,
		Role:  a.Role,
	}
}
