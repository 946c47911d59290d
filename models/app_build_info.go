// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries build metadata of a binary.
//
// Date and Commit are injected by linker flags during CI/CD. The server
// reports it on GET /api/version and the client CLI prints its own copy.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
// The linker placeholder "N/A" is treated as unset.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orEmpty(version),
		Date:    orEmpty(date),
		Commit:  orEmpty(commit),
	}
}

func orEmpty(s string) string {
	if s == "N/A" {
		return ""
	}
	return s
}
