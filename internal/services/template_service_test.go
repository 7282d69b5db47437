package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTemplate_RejectsMissingFieldsAndDuplicateNames(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewTemplateService(db)

	_, err := service.CreateTemplate(CreateTemplateInput{CreatedBy: 1, Name: "Welcome"})
	assert.ErrorIs(t, err, ErrInvalidTemplateData)

	_, err = service.CreateTemplate(CreateTemplateInput{
		CreatedBy: 1,
		Name:      "Welcome",
		Subject:   "Hello $userName",
		Content:   "Welcome aboard!",
	})
	require.NoError(t, err)

	// Same name, same owner: rejected
	_, err = service.CreateTemplate(CreateTemplateInput{
		CreatedBy: 1,
		Name:      "Welcome",
		Subject:   "Another",
		Content:   "Body",
	})
	assert.ErrorIs(t, err, ErrTemplateNameTaken)

	// Same name, different owner: fine
	_, err = service.CreateTemplate(CreateTemplateInput{
		CreatedBy: 2,
		Name:      "Welcome",
		Subject:   "Hi",
		Content:   "Body",
	})
	assert.NoError(t, err)
}

func TestTemplates_ScopedToOwner(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewTemplateService(db)

	mine, err := service.CreateTemplate(CreateTemplateInput{
		CreatedBy: 1, Name: "Mine", Subject: "S", Content: "C",
	})
	require.NoError(t, err)

	_, err = service.CreateTemplate(CreateTemplateInput{
		CreatedBy: 2, Name: "Theirs", Subject: "S", Content: "C",
	})
	require.NoError(t, err)

	templates, err := service.GetTemplatesByOwner(1)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "Mine", templates[0].Name)

	// Another user's template is invisible by id too
	_, err = service.GetTemplateByIDAndOwner(mine.ID, 2)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestUpdateTemplate_PartialPatch(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewTemplateService(db)

	tmpl, err := service.CreateTemplate(CreateTemplateInput{
		CreatedBy: 1, Name: "Promo", Subject: "Old subject", Content: "Old body",
	})
	require.NoError(t, err)

	newSubject := "New subject"
	updated, err := service.UpdateTemplate(tmpl.ID, 1, UpdateTemplatePatch{Subject: &newSubject})
	require.NoError(t, err)

	assert.Equal(t, "New subject", updated.Subject)
	assert.Equal(t, "Promo", updated.Name)
	assert.Equal(t, "Old body", updated.Content)
}

func TestUpdateTemplate_NameConflictWithSibling(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewTemplateService(db)

	_, err := service.CreateTemplate(CreateTemplateInput{
		CreatedBy: 1, Name: "First", Subject: "S", Content: "C",
	})
	require.NoError(t, err)

	second, err := service.CreateTemplate(CreateTemplateInput{
		CreatedBy: 1, Name: "Second", Subject: "S", Content: "C",
	})
	require.NoError(t, err)

	taken := "First"
	_, err = service.UpdateTemplate(second.ID, 1, UpdateTemplatePatch{Name: &taken})
	assert.ErrorIs(t, err, ErrTemplateNameTaken)
}

func TestDeleteTemplate(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewTemplateService(db)

	tmpl, err := service.CreateTemplate(CreateTemplateInput{
		CreatedBy: 1, Name: "Gone", Subject: "S", Content: "C",
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteTemplate(tmpl.ID, 1))

	err = service.DeleteTemplate(tmpl.ID, 1)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}
