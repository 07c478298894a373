package service

import (
	"sync"
	"testing"

	"kidscode/internal/model"

	"go.uber.org/zap"
)

// fakeProjectRepo репозиторий проектов в памяти
type fakeProjectRepo struct {
	mu       sync.Mutex
	projects []model.Project
	nextID   int
}

func (r *fakeProjectRepo) GetByID(id int) (*model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.projects {
		if r.projects[i].ProjectID == id {
			project := r.projects[i]
			return &project, nil
		}
	}
	return nil, nil
}

func (r *fakeProjectRepo) GetAll() ([]model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Project(nil), r.projects...), nil
}

func (r *fakeProjectRepo) Create(project *model.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	project.ProjectID = r.nextID
	r.projects = append(r.projects, *project)
	return nil
}

func (r *fakeProjectRepo) Count() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.projects), nil
}

// fakeUserProjectRepo репозиторий прогресса в памяти
type fakeUserProjectRepo struct {
	mu           sync.Mutex
	userProjects []model.UserProject
	nextID       int
}

func (r *fakeUserProjectRepo) GetByID(id int) (*model.UserProject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.userProjects {
		if r.userProjects[i].UserProjectID == id {
			up := r.userProjects[i]
			return &up, nil
		}
	}
	return nil, nil
}

func (r *fakeUserProjectRepo) GetByUserAndProject(userID string, projectID int) (*model.UserProject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.userProjects {
		if r.userProjects[i].UserID == userID && r.userProjects[i].ProjectID == projectID {
			up := r.userProjects[i]
			return &up, nil
		}
	}
	return nil, nil
}

func (r *fakeUserProjectRepo) GetByUser(userID string) ([]model.UserProject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []model.UserProject
	for _, up := range r.userProjects {
		if up.UserID == userID {
			result = append(result, up)
		}
	}
	return result, nil
}

func (r *fakeUserProjectRepo) Create(userProject *model.UserProject) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	userProject.UserProjectID = r.nextID
	r.userProjects = append(r.userProjects, *userProject)
	return nil
}

func (r *fakeUserProjectRepo) Update(userProject *model.UserProject) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.userProjects {
		if r.userProjects[i].UserProjectID == userProject.UserProjectID {
			r.userProjects[i] = *userProject
			return nil
		}
	}
	return nil
}

func newTestProjectService() (*ProjectService, *fakeProjectRepo, *fakeUserProjectRepo) {
	projects := &fakeProjectRepo{}
	userProjects := &fakeUserProjectRepo{}
	return NewProjectService(projects, userProjects, zap.NewNop()), projects, userProjects
}

func seedProject(t *testing.T, repo *fakeProjectRepo, steps int) *model.Project {
	t.Helper()
	project := &model.Project{
		Title:       "Son topish o'yini",
		Difficulty:  model.DifficultyEasy,
		Steps:       make([]string, steps),
		StarterCode: "# Bu yerdan boshlang",
	}
	if err := repo.Create(project); err != nil {
		t.Fatalf("Failed to seed project: %v", err)
	}
	return project
}

func TestSeedProjects(t *testing.T) {
	svc, projects, _ := newTestProjectService()

	if err := svc.SeedProjects(); err != nil {
		t.Fatalf("SeedProjects failed: %v", err)
	}

	count, _ := projects.Count()
	if count != len(seedProjects) {
		t.Errorf("Expected %d seed projects, got %d", len(seedProjects), count)
	}

	// Повторный запуск не создает дубликатов
	if err := svc.SeedProjects(); err != nil {
		t.Fatalf("Second SeedProjects failed: %v", err)
	}

	count, _ = projects.Count()
	if count != len(seedProjects) {
		t.Errorf("Expected seed to be skipped, got %d projects", count)
	}
}

func TestStartProject(t *testing.T) {
	svc, projects, _ := newTestProjectService()
	project := seedProject(t, projects, 4)

	userProject, err := svc.StartProject("user-1", project.ProjectID)
	if err != nil {
		t.Fatalf("StartProject failed: %v", err)
	}
	if userProject == nil {
		t.Fatal("Expected user project to be created")
	}

	if userProject.Status != model.ProjectStatusStarted {
		t.Errorf("Expected status %q, got %q", model.ProjectStatusStarted, userProject.Status)
	}
	if userProject.UserCode != project.StarterCode {
		t.Errorf("Expected starter code to be copied, got %q", userProject.UserCode)
	}

	// Повторный запуск возвращает существующий прогресс
	again, err := svc.StartProject("user-1", project.ProjectID)
	if err != nil {
		t.Fatalf("Second StartProject failed: %v", err)
	}
	if again.UserProjectID != userProject.UserProjectID {
		t.Errorf("Expected existing progress %d, got %d", userProject.UserProjectID, again.UserProjectID)
	}
}

func TestStartProjectNotFound(t *testing.T) {
	svc, _, _ := newTestProjectService()

	userProject, err := svc.StartProject("user-1", 42)
	if err != nil {
		t.Fatalf("StartProject failed: %v", err)
	}
	if userProject != nil {
		t.Error("Expected nil for unknown project")
	}
}

func TestToggleStep(t *testing.T) {
	svc, projects, _ := newTestProjectService()
	project := seedProject(t, projects, 2)

	userProject, err := svc.StartProject("user-1", project.ProjectID)
	if err != nil {
		t.Fatalf("StartProject failed: %v", err)
	}

	updated, err := svc.ToggleStep(userProject.UserProjectID, 0)
	if err != nil {
		t.Fatalf("ToggleStep failed: %v", err)
	}
	if !updated.HasStep(0) {
		t.Error("Expected step 0 to be completed")
	}
	if updated.Status != model.ProjectStatusStarted {
		t.Errorf("Expected status %q, got %q", model.ProjectStatusStarted, updated.Status)
	}

	// Все шаги выполнены, проект завершается
	updated, err = svc.ToggleStep(userProject.UserProjectID, 1)
	if err != nil {
		t.Fatalf("ToggleStep failed: %v", err)
	}
	if updated.Status != model.ProjectStatusCompleted {
		t.Errorf("Expected status %q, got %q", model.ProjectStatusCompleted, updated.Status)
	}
	if updated.CompletedAt == nil {
		t.Error("Expected completion time to be set")
	}

	// Снятие отметки возвращает проект в работу
	updated, err = svc.ToggleStep(userProject.UserProjectID, 1)
	if err != nil {
		t.Fatalf("ToggleStep failed: %v", err)
	}
	if updated.HasStep(1) {
		t.Error("Expected step 1 to be unchecked")
	}
	if updated.Status != model.ProjectStatusStarted {
		t.Errorf("Expected status %q after uncheck, got %q", model.ProjectStatusStarted, updated.Status)
	}
}

func TestSaveUserCode(t *testing.T) {
	svc, projects, _ := newTestProjectService()
	project := seedProject(t, projects, 2)

	userProject, err := svc.StartProject("user-1", project.ProjectID)
	if err != nil {
		t.Fatalf("StartProject failed: %v", err)
	}

	updated, err := svc.SaveUserCode(userProject.UserProjectID, "print('salom')")
	if err != nil {
		t.Fatalf("SaveUserCode failed: %v", err)
	}
	if updated.UserCode != "print('salom')" {
		t.Errorf("Expected user code to be saved, got %q", updated.UserCode)
	}
}
