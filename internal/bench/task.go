//go:generate mockgen -source=task.go -destination=mocks/mock_task.go -package=mocks

package bench

// Task is one unit of CPU-bound work. Implementations must not share mutable
// state between concurrent Run calls.
type Task interface {
	Run()
}

// TaskFunc adapts a plain function to the Task interface.
type TaskFunc func()

// Run calls f.
func (f TaskFunc) Run() { f() }
