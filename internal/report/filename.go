package report

import (
	"fmt"
	"strings"

	"github.com/windgap/sensoryprofile/internal/models"
)

// Filename builds the export artifact name following the
// "sensory-assessment-<name>-<date>" pattern, falling back to "unnamed" when no
// subject name has been entered. ext is passed without a leading dot.
func Filename(session *models.Session, ext string) string {
	name := strings.TrimSpace(session.Name)
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("sensory-assessment-%s-%s.%s", name, session.AssessmentDate, ext)
}
