package model

import (
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/types"
)

// PlatformContent is one rendering of a project update tailored to a single
// sharing target. Length is counted in runes; when Optimized is true,
// Length does not exceed Limit.
type PlatformContent struct {
	Platform  types.Platform `json:"platform"`
	Content   string         `json:"content"`
	Length    int            `json:"length"`
	Limit     int            `json:"limit"`
	Optimized bool           `json:"optimized"`
}

// ProjectDetails is the synthesizer's view of a project. Missing optional
// fields degrade the generated text but never cause an error.
type ProjectDetails struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	LiveURL      string   `json:"live_url,omitempty"`
	SourceURL    string   `json:"source_url,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}
