package domain

// IDERequest describes which generated project to open.
type IDERequest struct {
	Root     string
	BuildDir string
	Project  Project
	HostOS   string
}
