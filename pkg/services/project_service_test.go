package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assessflow/pipeline/ent/globalvariable"
	"github.com/assessflow/pipeline/pkg/models"
	testdb "github.com/assessflow/pipeline/test/database"
)

// canvasDoc is a canonical (compact) canvas document. The bytes matter:
// round-trip tests compare stored data against this literal.
func canvasDoc() json.RawMessage {
	return json.RawMessage(`{"nodes":[{"id":"start","type":"input","position":{"x":80,"y":40},"data":{"label":"Start"}},{"id":"score","type":"transform","position":{"x":240,"y":40},"data":{"label":"Score","expression":"sum"}}],"edges":[{"id":"e1","source":"start","target":"score"}],"viewport":{"x":0,"y":0,"zoom":1.25}}`)
}

func TestProjectService_CreateProject(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewProjectService(client.Client)
	ctx := context.Background()

	t.Run("stores the canvas bytes untouched", func(t *testing.T) {
		raw := canvasDoc()
		created, err := svc.CreateProject(ctx, models.CreateProjectRequest{
			ProjectID:  "proj-roundtrip",
			Name:       "Prof Assessment",
			CanvasData: raw,
		})
		require.NoError(t, err)
		assert.Equal(t, "proj-roundtrip", created.ID)
		assert.Equal(t, "Prof Assessment", created.Name)
		assert.False(t, created.IsSystem)

		got, err := svc.GetProject(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, string(raw), string(got.CanvasData))
	})

	t.Run("generates an id when none is given", func(t *testing.T) {
		created, err := svc.CreateProject(ctx, models.CreateProjectRequest{
			Name:       "Generated",
			CanvasData: canvasDoc(),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
	})

	t.Run("rejects a duplicate id", func(t *testing.T) {
		req := models.CreateProjectRequest{
			ProjectID:  "proj-dup",
			Name:       "First",
			CanvasData: canvasDoc(),
		}
		_, err := svc.CreateProject(ctx, req)
		require.NoError(t, err)
		_, err = svc.CreateProject(ctx, req)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects an invalid canvas", func(t *testing.T) {
		_, err := svc.CreateProject(ctx, models.CreateProjectRequest{
			Name:       "Broken",
			CanvasData: json.RawMessage(`{"nodes":[{"id":"a","type":"input"}],"edges":[{"source":"a","target":"ghost"}]}`),
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := svc.CreateProject(ctx, models.CreateProjectRequest{CanvasData: canvasDoc()})
		assert.True(t, IsValidationError(err))
	})
}

func TestProjectService_UpdateProject(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewProjectService(client.Client)
	ctx := context.Background()

	t.Run("renames without touching the canvas", func(t *testing.T) {
		raw := canvasDoc()
		created, err := svc.CreateProject(ctx, models.CreateProjectRequest{Name: "Old Name", CanvasData: raw})
		require.NoError(t, err)

		name := "BigFive Rework"
		updated, err := svc.UpdateProject(ctx, created.ID, models.UpdateProjectRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "BigFive Rework", updated.Name)
		assert.Equal(t, string(raw), string(updated.CanvasData))
	})

	t.Run("replaces the canvas byte-stably", func(t *testing.T) {
		created, err := svc.CreateProject(ctx, models.CreateProjectRequest{Name: "Canvas Swap", CanvasData: canvasDoc()})
		require.NoError(t, err)

		replacement := json.RawMessage(`{"nodes":[{"id":"only","type":"input","data":{"label":"Only"}}],"edges":[]}`)
		updated, err := svc.UpdateProject(ctx, created.ID, models.UpdateProjectRequest{CanvasData: replacement})
		require.NoError(t, err)
		assert.Equal(t, string(replacement), string(updated.CanvasData))

		got, err := svc.GetProject(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, string(replacement), string(got.CanvasData))
	})

	t.Run("rejects an empty update", func(t *testing.T) {
		created, err := svc.CreateProject(ctx, models.CreateProjectRequest{Name: "Untouched", CanvasData: canvasDoc()})
		require.NoError(t, err)

		_, err = svc.UpdateProject(ctx, created.ID, models.UpdateProjectRequest{})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects an invalid replacement canvas", func(t *testing.T) {
		created, err := svc.CreateProject(ctx, models.CreateProjectRequest{Name: "Guarded", CanvasData: canvasDoc()})
		require.NoError(t, err)

		_, err = svc.UpdateProject(ctx, created.ID, models.UpdateProjectRequest{
			CanvasData: json.RawMessage(`{"nodes":[{"id":"a"}],"edges":[]}`),
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("returns not found for an unknown project", func(t *testing.T) {
		name := "Nobody"
		_, err := svc.UpdateProject(ctx, uuid.New().String(), models.UpdateProjectRequest{Name: &name})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestProjectService_DeleteProject(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewProjectService(client.Client)
	ctx := context.Background()

	t.Run("deletes a project and its variables", func(t *testing.T) {
		created, err := svc.CreateProject(ctx, models.CreateProjectRequest{Name: "Disposable", CanvasData: canvasDoc()})
		require.NoError(t, err)
		_, err = svc.UpsertGlobalVariable(ctx, created.ID, "tone", models.VariableUpsert{Value: "formal"})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteProject(ctx, created.ID))

		_, err = svc.GetProject(ctx, created.ID, false)
		assert.ErrorIs(t, err, ErrNotFound)

		left, err := client.GlobalVariable.Query().
			Where(globalvariable.ProjectIDEQ(created.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, left, "cascade should remove the project's variables")
	})

	t.Run("protects system projects", func(t *testing.T) {
		created, err := svc.CreateProject(ctx, models.CreateProjectRequest{
			Name:       "Built-in BigFive",
			IsSystem:   true,
			CanvasData: canvasDoc(),
		})
		require.NoError(t, err)

		err = svc.DeleteProject(ctx, created.ID)
		assert.ErrorIs(t, err, ErrSystemProject)

		_, err = svc.GetProject(ctx, created.ID, false)
		assert.NoError(t, err)
	})

	t.Run("returns not found for an unknown project", func(t *testing.T) {
		err := svc.DeleteProject(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestProjectService_GlobalVariables(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewProjectService(client.Client)
	ctx := context.Background()

	t.Run("upserts and lists ordered by name", func(t *testing.T) {
		proj, err := svc.CreateProject(ctx, models.CreateProjectRequest{Name: "Vars", CanvasData: canvasDoc()})
		require.NoError(t, err)

		_, err = svc.UpsertGlobalVariable(ctx, proj.ID, "tone", models.VariableUpsert{Value: "formal", Type: "text"})
		require.NoError(t, err)
		_, err = svc.UpsertGlobalVariable(ctx, proj.ID, "language", models.VariableUpsert{Value: "en", Folder: "i18n"})
		require.NoError(t, err)

		vars, err := svc.ListGlobalVariables(ctx, proj.ID)
		require.NoError(t, err)
		require.Len(t, vars, 2)
		assert.Equal(t, "language", vars[0].Name)
		assert.Equal(t, "en", vars[0].Value)
		require.NotNil(t, vars[0].Folder)
		assert.Equal(t, "i18n", *vars[0].Folder)
		assert.Equal(t, "tone", vars[1].Name)
		assert.Equal(t, "text", vars[1].Type)
	})

	t.Run("replaces the whole row on upsert", func(t *testing.T) {
		proj, err := svc.CreateProject(ctx, models.CreateProjectRequest{Name: "Replace", CanvasData: canvasDoc()})
		require.NoError(t, err)

		_, err = svc.UpsertGlobalVariable(ctx, proj.ID, "tone", models.VariableUpsert{
			Value:       "formal",
			Description: "voice of the reports",
			Folder:      "style",
		})
		require.NoError(t, err)

		replaced, err := svc.UpsertGlobalVariable(ctx, proj.ID, "tone", models.VariableUpsert{Value: "casual"})
		require.NoError(t, err)
		assert.Equal(t, "casual", replaced.Value)
		assert.Nil(t, replaced.Description)
		assert.Nil(t, replaced.Folder)

		count, err := client.GlobalVariable.Query().
			Where(globalvariable.ProjectIDEQ(proj.ID), globalvariable.NameEQ("tone")).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("requires a variable name", func(t *testing.T) {
		proj, err := svc.CreateProject(ctx, models.CreateProjectRequest{Name: "Nameless", CanvasData: canvasDoc()})
		require.NoError(t, err)

		_, err = svc.UpsertGlobalVariable(ctx, proj.ID, "", models.VariableUpsert{Value: "x"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("returns not found for an unknown project", func(t *testing.T) {
		_, err := svc.UpsertGlobalVariable(ctx, uuid.New().String(), "tone", models.VariableUpsert{Value: "x"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("deletes by name", func(t *testing.T) {
		proj, err := svc.CreateProject(ctx, models.CreateProjectRequest{Name: "Deletions", CanvasData: canvasDoc()})
		require.NoError(t, err)
		_, err = svc.UpsertGlobalVariable(ctx, proj.ID, "tone", models.VariableUpsert{Value: "formal"})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteGlobalVariable(ctx, proj.ID, "tone"))

		vars, err := svc.ListGlobalVariables(ctx, proj.ID)
		require.NoError(t, err)
		assert.Empty(t, vars)

		err = svc.DeleteGlobalVariable(ctx, proj.ID, "tone")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestProjectService_GetAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewProjectService(client.Client)
	ctx := context.Background()

	t.Run("loads variables on request", func(t *testing.T) {
		proj, err := svc.CreateProject(ctx, models.CreateProjectRequest{Name: "Edges", CanvasData: canvasDoc()})
		require.NoError(t, err)
		_, err = svc.UpsertGlobalVariable(ctx, proj.ID, "tone", models.VariableUpsert{Value: "formal"})
		require.NoError(t, err)
		_, err = svc.UpsertGlobalVariable(ctx, proj.ID, "language", models.VariableUpsert{Value: "en"})
		require.NoError(t, err)

		bare, err := svc.GetProject(ctx, proj.ID, false)
		require.NoError(t, err)
		assert.Empty(t, bare.Edges.GlobalVariables)

		loaded, err := svc.GetProject(ctx, proj.ID, true)
		require.NoError(t, err)
		require.Len(t, loaded.Edges.GlobalVariables, 2)
		assert.Equal(t, "language", loaded.Edges.GlobalVariables[0].Name)
		assert.Equal(t, "tone", loaded.Edges.GlobalVariables[1].Name)
	})

	t.Run("lists projects ordered by name", func(t *testing.T) {
		_, err := svc.CreateProject(ctx, models.CreateProjectRequest{Name: "Zeta Pipeline", CanvasData: canvasDoc()})
		require.NoError(t, err)
		_, err = svc.CreateProject(ctx, models.CreateProjectRequest{Name: "Alpha Pipeline", CanvasData: canvasDoc()})
		require.NoError(t, err)

		projects, err := svc.ListProjects(ctx)
		require.NoError(t, err)

		alpha, zeta := -1, -1
		for i, p := range projects {
			switch p.Name {
			case "Alpha Pipeline":
				alpha = i
			case "Zeta Pipeline":
				zeta = i
			}
		}
		require.NotEqual(t, -1, alpha)
		require.NotEqual(t, -1, zeta)
		assert.Less(t, alpha, zeta)
	})
}
