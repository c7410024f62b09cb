package todo

// Repository applies load-mutate-save operations to a Store.
// Nothing is held in memory between calls; every call starts from the file.
type Repository struct {
	store *Store
}

// NewRepository creates a repository over store.
func NewRepository(store *Store) *Repository {
	return &Repository{store: store}
}

// Store returns the underlying store.
func (r *Repository) Store() *Store {
	return r.store
}

// List returns the current collection in stored order.
func (r *Repository) List() []Task {
	return r.store.Load()
}

// Add appends a new, not-done task and returns the updated collection.
func (r *Repository) Add(in NewTask) ([]Task, error) {
	tasks := r.store.Load()

	task := Task{
		Title:    in.Title,
		Category: Deref(in.Category, r.store.DefaultCategory()),
		Desc:     copyString(in.Desc),
		Date:     copyString(in.Date),
		Done:     false,
	}
	tasks = append(tasks, task)

	if err := r.store.Save(tasks); err != nil {
		return nil, err
	}
	r.store.logger.Debug("task added", "index", len(tasks), "title", task.Title)
	return tasks, nil
}

// Edit overwrites the fields set in p on the task at the 1-based index.
// An out-of-range index returns an *IndexError and saves nothing.
func (r *Repository) Edit(index int, p Patch) ([]Task, error) {
	tasks := r.store.Load()
	if err := checkIndex(index, len(tasks)); err != nil {
		return nil, err
	}

	p.apply(&tasks[index-1])

	if err := r.store.Save(tasks); err != nil {
		return nil, err
	}
	r.store.logger.Debug("task edited", "index", index)
	return tasks, nil
}

// SetDone sets the completion flag of the task at the 1-based index.
// It sets rather than toggles; callers wanting a toggle pass !current.
func (r *Repository) SetDone(index int, done bool) ([]Task, error) {
	tasks := r.store.Load()
	if err := checkIndex(index, len(tasks)); err != nil {
		return nil, err
	}

	tasks[index-1].Done = done

	if err := r.store.Save(tasks); err != nil {
		return nil, err
	}
	r.store.logger.Debug("task status set", "index", index, "done", done)
	return tasks, nil
}

// Delete removes the task at the 1-based index. Later tasks shift down by one.
func (r *Repository) Delete(index int) ([]Task, error) {
	tasks := r.store.Load()
	if err := checkIndex(index, len(tasks)); err != nil {
		return nil, err
	}

	tasks = append(tasks[:index-1], tasks[index:]...)

	if err := r.store.Save(tasks); err != nil {
		return nil, err
	}
	r.store.logger.Debug("task deleted", "index", index, "remaining", len(tasks))
	return tasks, nil
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	return String(*s)
}
