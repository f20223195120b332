package domain

// Project is what kiln needs to know about the game's CMakeLists.txt.
type Project struct {
	// Name is the argument of project(). The executable and web artifacts use it.
	Name string
	// Target is the first add_executable() target. Xcode names schemes after it.
	Target string
}

// WebArtifacts returns the files Emscripten produces for the project, HTML first.
func (p Project) WebArtifacts() []string {
	return []string{
		p.Name + ".html",
		p.Name + ".js",
		p.Name + ".wasm",
		p.Name + ".data",
	}
}
