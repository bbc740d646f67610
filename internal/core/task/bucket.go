package task

import "github.com/example/task/internal/models"

// Append adds a new unfinished task at the end of p and returns it.
func Append(p *models.Project, name string, expiration *int64) models.Task {
	t := models.Task{
		ID:         len(p.Tasks) + 1,
		Name:       name,
		Expiration: expiration,
	}
	p.Tasks = append(p.Tasks, t)
	return t
}

// Remove deletes the task with the given id and renumbers the survivors.
func Remove(p *models.Project, id int) (models.Task, error) {
	if err := TaskExists(TaskRefContext{TaskID: id, TaskCount: len(p.Tasks)}).Error(); err != nil {
		return models.Task{}, err
	}
	removed := p.Tasks[id-1]
	p.Tasks = append(p.Tasks[:id-1:id-1], p.Tasks[id:]...)
	Renumber(p.Tasks)
	return removed, nil
}

// ToggleFinished flips the finished flag of the task with the given id.
func ToggleFinished(p *models.Project, id int) (models.Task, error) {
	t, err := p.Task(id)
	if err != nil {
		return models.Task{}, err
	}
	t.Finished = !t.Finished
	return *t, nil
}

// Renumber rewrites ids to 1..N in slice order.
func Renumber(tasks []models.Task) {
	for i := range tasks {
		tasks[i].ID = i + 1
	}
}
