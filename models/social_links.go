// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SocialLink is the configuration of a single social platform.
type SocialLink struct {
	Enabled bool   `json:"enabled"`
	URL     string `json:"url"`
}

// SocialLinks maps a platform name (e.g. "instagram") to its link.
// It is stored as a singleton and always replaced as a whole.
type SocialLinks map[string]SocialLink

// EnabledOnly returns the subset of links that are switched on.
func (l SocialLinks) EnabledOnly() SocialLinks {
	enabled := make(SocialLinks, len(l))
	for platform, link := range l {
		if link.Enabled {
			enabled[platform] = link
		}
	}
	return enabled
}

// DefaultSocialLinks is what the site shows before an admin saves the links
// for the first time: the three supported platforms, all switched off.
func DefaultSocialLinks() SocialLinks {
	return SocialLinks{
		"instagram": {},
		"youtube":   {},
		"linkedin":  {},
	}
}
