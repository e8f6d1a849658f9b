package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TejaswaniRai/MindMesh/app/entities"
	"github.com/TejaswaniRai/MindMesh/app/repositories"
	"github.com/TejaswaniRai/MindMesh/app/usecases"
)

func newTeacherHandler() *TeacherHandler {
	store := repositories.NewEntityStore(
		func(t *entities.Teacher) string { return t.ID },
		repositories.SeedTeachers(),
		"",
	)
	return NewTeacherHandler(usecases.NewTeacherUsecase(store))
}

func TestGetTeachers(t *testing.T) {
	e := newEcho()
	h := newTeacherHandler()

	ctx, rec := newRequest(e, http.MethodGet, "/api/teachers")
	require.NoError(t, h.GetTeachers(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	var teachers []entities.Teacher
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &teachers))
	assert.NotEmpty(t, teachers)

	// Single fetch by id.
	ctx, rec = newRequest(e, http.MethodGet, "/api/teachers?id="+teachers[0].ID)
	require.NoError(t, h.GetTeachers(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	ctx, rec = newRequest(e, http.MethodGet, "/api/teachers?id=missing")
	require.NoError(t, h.GetTeachers(ctx))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateTeacher(t *testing.T) {
	e := newEcho()
	h := newTeacherHandler()

	body := []byte(`{"name": "Dr. Meena", "email": "meena@cse.edu", "department": "CSE"}`)
	ctx, rec := newRequest(e, http.MethodPost, "/api/teachers", body)
	require.NoError(t, h.CreateTeacher(ctx))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var teacher entities.Teacher
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &teacher))
	assert.NotEmpty(t, teacher.ID)
	assert.Equal(t, "Dr. Meena", teacher.Name)

	// Missing required fields.
	ctx, rec = newRequest(e, http.MethodPost, "/api/teachers", []byte(`{"name": "No Email"}`))
	require.NoError(t, h.CreateTeacher(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPatchTeacher(t *testing.T) {
	e := newEcho()
	h := newTeacherHandler()

	seed := repositories.SeedTeachers()[0]
	body := []byte(`{"department": "CSE-AI"}`)

	ctx, rec := newRequest(e, http.MethodPatch, "/api/teachers?id="+seed.ID, body)
	require.NoError(t, h.PatchTeacher(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	var teacher entities.Teacher
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &teacher))
	assert.Equal(t, "CSE-AI", teacher.Department)
	assert.Equal(t, seed.Name, teacher.Name, "unpatched fields must survive")

	ctx, rec = newRequest(e, http.MethodPatch, "/api/teachers", body)
	require.NoError(t, h.PatchTeacher(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	ctx, rec = newRequest(e, http.MethodPatch, "/api/teachers?id=missing", body)
	require.NoError(t, h.PatchTeacher(ctx))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteTeacher(t *testing.T) {
	e := newEcho()
	h := newTeacherHandler()

	seed := repositories.SeedTeachers()[0]
	ctx, rec := newRequest(e, http.MethodDelete, "/api/teachers?id="+seed.ID)
	require.NoError(t, h.DeleteTeacher(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp["success"])

	ctx, rec = newRequest(e, http.MethodDelete, "/api/teachers?id="+seed.ID)
	require.NoError(t, h.DeleteTeacher(ctx))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
