// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MaxCertIDLength is the maximum number of characters in a certificate ID.
const MaxCertIDLength = 30

// Certificate is a course completion certificate that can be verified
// publicly by its CertID. CertID is unique regardless of letter case.
type Certificate struct {
	ID          int64     `json:"id"`
	CertID      string    `json:"certId"`
	StudentName string    `json:"studentName"`
	CourseName  string    `json:"courseName"`
	IssueDate   string    `json:"issueDate"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CertificateUpdate is a partial update of a certificate.
type CertificateUpdate struct {
	CertID      *string `json:"certId,omitempty"`
	StudentName *string `json:"studentName,omitempty"`
	CourseName  *string `json:"courseName,omitempty"`
	IssueDate   *string `json:"issueDate,omitempty"`
}

// Apply merges the non-nil fields of u onto c.
func (u CertificateUpdate) Apply(c *Certificate) {
	setIfNotNil(&c.CertID, u.CertID)
	setIfNotNil(&c.StudentName, u.StudentName)
	setIfNotNil(&c.CourseName, u.CourseName)
	setIfNotNil(&c.IssueDate, u.IssueDate)
}
