package ports

import "cvbuilder/internal/domain"

// ResumeSource loads a seed résumé from outside the editor
type ResumeSource interface {
	// Load reads and decodes the résumé at path
	Load(path string) (domain.Resume, error)
}
