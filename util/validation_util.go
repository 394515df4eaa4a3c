package util

import (
	"fmt"

	"github.com/Happykiller/DraftDream-sub004/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

func (v *ValidationUtil) ValidateUser(user *model.User) error {
	if user.Email == "" {
		return fmt.Errorf("user email cannot be empty")
	}
	if !user.Role.Valid() {
		return fmt.Errorf("user role must be ADMIN, COACH or ATHLETE")
	}
	return nil
}

func (v *ValidationUtil) ValidateClient(client *model.Client) error {
	if client.FirstName == "" {
		return fmt.Errorf("client first name cannot be empty")
	}
	if client.LastName == "" {
		return fmt.Errorf("client last name cannot be empty")
	}
	return nil
}

func (v *ValidationUtil) ValidateProspect(prospect *model.Prospect) error {
	if prospect.FirstName == "" {
		return fmt.Errorf("prospect first name cannot be empty")
	}
	if prospect.LastName == "" {
		return fmt.Errorf("prospect last name cannot be empty")
	}
	if prospect.Status != "" && !prospect.Status.Valid() {
		return fmt.Errorf("prospect status %q is not a known stage", prospect.Status)
	}
	return nil
}

// ValidateLocalized covers every library entity: label and locale drive the
// unique slug+locale key, so neither may be empty.
func (v *ValidationUtil) ValidateLocalized(content *model.Localized) error {
	if content.Label == "" {
		return fmt.Errorf("label cannot be empty")
	}
	if content.Locale == "" {
		return fmt.Errorf("locale cannot be empty")
	}
	return nil
}

func (v *ValidationUtil) ValidateNote(note *model.Note) error {
	if note.ClientID == "" {
		return fmt.Errorf("note client ID cannot be empty")
	}
	if note.Title == "" {
		return fmt.Errorf("note title cannot be empty")
	}
	return nil
}

func (v *ValidationUtil) ValidateTask(task *model.Task) error {
	if task.Title == "" {
		return fmt.Errorf("task title cannot be empty")
	}
	return nil
}
