// Package planner turns resolved answers and environment facts into an
// ordered plan of package-manager commands.
//
// Commands carry a phase: pre-phase commands run strictly before any file
// is written (the file patches assume a manifest exists and dependencies
// resolve), post-phase commands run strictly after all files are written
// and patched (browser downloads are expensive and must not block file
// generation). Within a phase, append order is execution order.
package planner

// Phase determines when a command runs relative to file generation.
type Phase string

const (
	// Pre commands run before any file is written.
	Pre Phase = "pre"

	// Post commands run after all files are written and patched.
	Post Phase = "post"
)

// Command is one shell invocation with a human-readable label.
// Commands are immutable once appended.
type Command struct {
	// Name is the label shown to the user while the command runs.
	Name string

	// Command is the ready-to-run shell string.
	Command string

	// Phase is when the command runs relative to file generation.
	Phase Phase
}

// Plan is an ordered command plan split into its two phases.
type Plan struct {
	// Pre is the ordered list of pre-phase commands.
	Pre []Command

	// Post is the ordered list of post-phase commands.
	Post []Command
}

// NewPlan creates an empty plan.
func NewPlan() *Plan {
	return &Plan{
		Pre:  []Command{},
		Post: []Command{},
	}
}

// Append adds a command to the tail of its phase's sequence.
func (p *Plan) Append(name, command string, phase Phase) {
	cmd := Command{Name: name, Command: command, Phase: phase}
	if phase == Post {
		p.Post = append(p.Post, cmd)
		return
	}
	p.Pre = append(p.Pre, cmd)
}

// Len returns the total number of planned commands.
func (p *Plan) Len() int {
	return len(p.Pre) + len(p.Post)
}
