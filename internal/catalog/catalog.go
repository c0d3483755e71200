package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Task is an immutable eco-action definition. The registry is fixed at
// startup; plan generation and completion logging reference tasks by id.
type Task struct {
	ID             string `yaml:"id"`
	TitleUA        string `yaml:"title_ua"`
	TitleEN        string `yaml:"title_en"`
	DescriptionUA  string `yaml:"description_ua"`
	DescriptionEN  string `yaml:"description_en"`
	XPReward       int    `yaml:"xp_reward"`
	DetectionClass string `yaml:"detection_class"`
	Icon           string `yaml:"icon"`
}

// Title returns the localized task title.
func (t Task) Title(lang string) string {
	if lang == "en" {
		return t.TitleEN
	}
	return t.TitleUA
}

// Description returns the localized task description.
func (t Task) Description(lang string) string {
	if lang == "en" {
		return t.DescriptionEN
	}
	return t.DescriptionUA
}

const (
	TaskPlanting  = "task_planting"
	TaskWatering  = "task_watering"
	TaskWaste     = "task_waste"
	TaskRecycling = "task_recycling"
)

// Default returns the built-in task registry.
func Default() []Task {
	return []Task{
		{
			ID:             TaskPlanting,
			TitleUA:        "Посадка дерева",
			TitleEN:        "Tree planting",
			DescriptionUA:  "Посадіть дерево або саджанець",
			DescriptionEN:  "Plant a tree or a sapling",
			XPReward:       30,
			DetectionClass: "planting_scene",
			Icon:           "tree",
		},
		{
			ID:             TaskWatering,
			TitleUA:        "Полив рослини",
			TitleEN:        "Plant watering",
			DescriptionUA:  "Полийте рослину або дерево",
			DescriptionEN:  "Water a plant or a tree",
			XPReward:       25,
			DetectionClass: "watering_scene",
			Icon:           "water",
		},
		{
			ID:             TaskWaste,
			TitleUA:        "Прибирання сміття",
			TitleEN:        "Litter cleanup",
			DescriptionUA:  "Зберіть та викиньте сміття",
			DescriptionEN:  "Collect and dispose of litter",
			XPReward:       15,
			DetectionClass: "waste",
			Icon:           "trash-can",
		},
		{
			ID:             TaskRecycling,
			TitleUA:        "Вторсировина",
			TitleEN:        "Recycling",
			DescriptionUA:  "Здайте вторсировину на переробку",
			DescriptionEN:  "Hand in recyclables for processing",
			XPReward:       10,
			DetectionClass: "recyclable",
			Icon:           "recycle",
		},
	}
}

// UnknownTaskError indicates a task id that is not in the registry. A plan
// referencing a task the catalog does not know is a programmer error, so
// lookups fail loudly instead of degrading.
type UnknownTaskError struct {
	ID string
}

func (e UnknownTaskError) Error() string {
	return fmt.Sprintf("unknown taskId: %s", e.ID)
}

// Catalog is a read-only task registry.
type Catalog struct {
	tasks []Task
	byID  map[string]int
}

// New builds a catalog from the given task list.
func New(tasks []Task) (*Catalog, error) {
	byID := make(map[string]int, len(tasks))
	for i, t := range tasks {
		if t.ID == "" {
			return nil, fmt.Errorf("catalog: task %d has empty id", i)
		}
		if t.XPReward < 1 {
			return nil, fmt.Errorf("catalog: task %s has non-positive xp reward", t.ID)
		}
		if _, dup := byID[t.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate task id %s", t.ID)
		}
		byID[t.ID] = i
	}
	return &Catalog{tasks: tasks, byID: byID}, nil
}

// Load returns the catalog from a YAML override file, or the built-in
// registry when path is empty or the file does not exist.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return New(Default())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(Default())
		}
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	var file struct {
		Tasks []Task `yaml:"tasks"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	if len(file.Tasks) == 0 {
		return New(Default())
	}
	return New(file.Tasks)
}

// Get returns the task with the given id.
func (c *Catalog) Get(id string) (Task, error) {
	i, ok := c.byID[id]
	if !ok {
		return Task{}, UnknownTaskError{ID: id}
	}
	return c.tasks[i], nil
}

// All returns the tasks in registry order.
func (c *Catalog) All() []Task {
	out := make([]Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}
