// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MessageStatus is the processing state of a contact-form message.
//
// Any status may be set from any other status; there is no terminal state.
type MessageStatus string

const (
	MessageStatusNew     MessageStatus = "new"
	MessageStatusRead    MessageStatus = "read"
	MessageStatusReplied MessageStatus = "replied"
)

// Valid reports whether s is one of the known statuses.
func (s MessageStatus) Valid() bool {
	switch s {
	case MessageStatusNew, MessageStatusRead, MessageStatusReplied:
		return true
	}
	return false
}

// Message is an enquiry submitted through the public contact form.
type Message struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Program   string        `json:"program"`
	Message   string        `json:"message"`
	Status    MessageStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// MessageUpdate is a partial update of a message. Nil fields are left as is.
type MessageUpdate struct {
	Name    *string        `json:"name,omitempty"`
	Email   *string        `json:"email,omitempty"`
	Phone   *string        `json:"phone,omitempty"`
	Program *string        `json:"program,omitempty"`
	Message *string        `json:"message,omitempty"`
	Status  *MessageStatus `json:"status,omitempty"`
}

// Apply merges the non-nil fields of u onto m.
func (u MessageUpdate) Apply(m *Message) {
	setIfNotNil(&m.Name, u.Name)
	setIfNotNil(&m.Email, u.Email)
	setIfNotNil(&m.Phone, u.Phone)
	setIfNotNil(&m.Program, u.Program)
	setIfNotNil(&m.Message, u.Message)
	setIfNotNil(&m.Status, u.Status)
}

// MessageFilter narrows a message listing. Zero value lists everything.
type MessageFilter struct {
	Status MessageStatus
}

func setIfNotNil[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
