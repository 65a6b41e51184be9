package domain

// canonicalTasks is the fixed six-step post-production checklist every new
// booking starts with.
var canonicalTasks = []EditingTask{
	{ID: "1", Label: "Data Backup & Culling"},
	{ID: "2", Label: "Color Correction"},
	{ID: "3", Label: "Skin Retouching"},
	{ID: "4", Label: "Cinematic Grading"},
	{ID: "5", Label: "Video Editing / Highlight"},
	{ID: "6", Label: "Final Export & Upload"},
}

// DefaultEditingTasks returns a fresh copy of the canonical checklist.
// Each booking gets its own slice so per-booking toggling never aliases.
func DefaultEditingTasks() []EditingTask {
	tasks := make([]EditingTask, len(canonicalTasks))
	copy(tasks, canonicalTasks)
	return tasks
}
