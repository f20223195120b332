package domain

// Action is what happens after a successful build. At most one is requested.
type Action int

const (
	// ActionNone only builds.
	ActionNone Action = iota
	// ActionRun launches the game, or serves it for web builds.
	ActionRun
	// ActionIDE generates an IDE project and opens it instead of building.
	ActionIDE
	// ActionRenderDoc opens the built game in RenderDoc.
	ActionRenderDoc
	// ActionPackage assembles a web build for distribution.
	ActionPackage
)

// String implements fmt.Stringer.
func (a Action) String() string {
	switch a {
	case ActionRun:
		return "run"
	case ActionIDE:
		return "ide"
	case ActionRenderDoc:
		return "renderdoc"
	case ActionPackage:
		return "package"
	default:
		return "none"
	}
}
