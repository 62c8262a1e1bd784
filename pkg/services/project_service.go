package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/assessflow/pipeline/ent"
	"github.com/assessflow/pipeline/ent/globalvariable"
	"github.com/assessflow/pipeline/ent/project"
	"github.com/assessflow/pipeline/pkg/graph"
	"github.com/assessflow/pipeline/pkg/models"
)

// ProjectService manages stored pipeline projects and their global
// variables. Canvas documents are validated on the way in but never
// re-marshaled; the column is text-preserving json, so a canonical
// (compact) document reads back byte-identical.
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// GetProject retrieves a project by ID, optionally loading its global
// variables.
func (s *ProjectService) GetProject(ctx context.Context, projectID string, withVariables bool) (*ent.Project, error) {
	query := s.client.Project.Query().Where(project.IDEQ(projectID))
	if withVariables {
		query = query.WithGlobalVariables(func(q *ent.GlobalVariableQuery) {
			q.Order(ent.Asc(globalvariable.FieldName))
		})
	}

	proj, err := query.Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: project %s", ErrNotFound, projectID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return proj, nil
}

// ListProjects returns all projects ordered by name.
func (s *ProjectService) ListProjects(ctx context.Context) ([]*ent.Project, error) {
	projects, err := s.client.Project.Query().
		Order(ent.Asc(project.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// CreateProject validates and stores a new project. The canvas must
// parse as a graph document; the stored bytes are the caller's,
// untouched.
func (s *ProjectService) CreateProject(httpCtx context.Context, req models.CreateProjectRequest) (*ent.Project, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "name is required")
	}
	if _, err := graph.ParseCanvas(req.CanvasData); err != nil {
		return nil, NewValidationError("canvas_data", err.Error())
	}

	projectID := req.ProjectID
	if projectID == "" {
		projectID = uuid.New().String()
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	proj, err := s.client.Project.Create().
		SetID(projectID).
		SetName(req.Name).
		SetIsSystem(req.IsSystem).
		SetCanvasData(req.CanvasData).
		Save(writeCtx)
	if ent.IsConstraintError(err) {
		return nil, fmt.Errorf("%w: project %s", ErrAlreadyExists, projectID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	slog.Info("Project created",
		"project_id", proj.ID,
		"name", proj.Name,
		"pipeline_kind", models.PipelineKindForProject(proj.Name))
	return proj, nil
}

// UpdateProject applies a partial update. Renaming changes the derived
// pipeline kind for future enqueues only; already-stamped jobs keep the
// kind they were created with.
func (s *ProjectService) UpdateProject(httpCtx context.Context, projectID string, req models.UpdateProjectRequest) (*ent.Project, error) {
	if req.Name == nil && len(req.CanvasData) == 0 {
		return nil, NewValidationError("canvas_data", "update requires a name or canvas_data")
	}
	if req.Name != nil && *req.Name == "" {
		return nil, NewValidationError("name", "name cannot be empty")
	}
	if len(req.CanvasData) > 0 {
		if _, err := graph.ParseCanvas(req.CanvasData); err != nil {
			return nil, NewValidationError("canvas_data", err.Error())
		}
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := s.client.Project.UpdateOneID(projectID)
	if req.Name != nil {
		update = update.SetName(*req.Name)
	}
	if len(req.CanvasData) > 0 {
		update = update.SetCanvasData(req.CanvasData)
	}

	proj, err := update.Save(writeCtx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: project %s", ErrNotFound, projectID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return proj, nil
}

// DeleteProject removes a project; its global variables go with it via
// the schema cascade. System projects are refused. Jobs hold a weak
// project reference and are not touched; a run against a deleted
// project fails at graph load.
func (s *ProjectService) DeleteProject(httpCtx context.Context, projectID string) error {
	proj, err := s.client.Project.Get(httpCtx, projectID)
	if ent.IsNotFound(err) {
		return fmt.Errorf("%w: project %s", ErrNotFound, projectID)
	}
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}
	if proj.IsSystem {
		return fmt.Errorf("%w: %s", ErrSystemProject, projectID)
	}

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.client.Project.DeleteOneID(projectID).Exec(deleteCtx); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	slog.Info("Project deleted", "project_id", projectID, "name", proj.Name)
	return nil
}

// ListGlobalVariables returns a project's global variables ordered by
// name.
func (s *ProjectService) ListGlobalVariables(ctx context.Context, projectID string) ([]*ent.GlobalVariable, error) {
	exists, err := s.client.Project.Query().Where(project.IDEQ(projectID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check project: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: project %s", ErrNotFound, projectID)
	}

	vars, err := s.client.GlobalVariable.Query().
		Where(globalvariable.ProjectIDEQ(projectID)).
		Order(ent.Asc(globalvariable.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list global variables: %w", err)
	}
	return vars, nil
}

// UpsertGlobalVariable creates or replaces one global variable, keyed by
// (project, name). Replacement is whole-row: empty optional fields clear
// the stored ones.
func (s *ProjectService) UpsertGlobalVariable(httpCtx context.Context, projectID, name string, req models.VariableUpsert) (*ent.GlobalVariable, error) {
	if name == "" {
		return nil, NewValidationError("name", "variable name is required")
	}

	exists, err := s.client.Project.Query().Where(project.IDEQ(projectID)).Exist(httpCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to check project: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: project %s", ErrNotFound, projectID)
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.client.GlobalVariable.Query().
		Where(globalvariable.ProjectIDEQ(projectID), globalvariable.NameEQ(name)).
		Only(writeCtx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query global variable: %w", err)
	}

	if existing != nil {
		update := existing.Update().
			SetValue(req.Value).
			SetType(req.Type)
		if req.Description != "" {
			update = update.SetDescription(req.Description)
		} else {
			update = update.ClearDescription()
		}
		if req.Folder != "" {
			update = update.SetFolder(req.Folder)
		} else {
			update = update.ClearFolder()
		}
		gv, err := update.Save(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to update global variable: %w", err)
		}
		return gv, nil
	}

	create := s.client.GlobalVariable.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetName(name).
		SetValue(req.Value).
		SetType(req.Type)
	if req.Description != "" {
		create = create.SetDescription(req.Description)
	}
	if req.Folder != "" {
		create = create.SetFolder(req.Folder)
	}

	gv, err := create.Save(writeCtx)
	if ent.IsConstraintError(err) {
		// Concurrent upsert won the insert; surface the duplicate.
		return nil, fmt.Errorf("%w: variable %s", ErrAlreadyExists, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create global variable: %w", err)
	}
	return gv, nil
}

// DeleteGlobalVariable removes one global variable by (project, name).
func (s *ProjectService) DeleteGlobalVariable(httpCtx context.Context, projectID, name string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.GlobalVariable.Delete().
		Where(globalvariable.ProjectIDEQ(projectID), globalvariable.NameEQ(name)).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to delete global variable: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: variable %s", ErrNotFound, name)
	}
	return nil
}
