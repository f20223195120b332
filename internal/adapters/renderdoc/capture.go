package renderdoc

import (
	"encoding/json"

	"go.trai.ch/zerr"
)

// captureFile mirrors the .cap files qrenderdoc saves from its launch dialog.
type captureFile struct {
	Version  int             `json:"rdocCaptureSettings"`
	Settings captureSettings `json:"settings"`
}

type captureSettings struct {
	AutoStart   bool           `json:"autoStart"`
	CommandLine string         `json:"commandLine"`
	Environment []string       `json:"environment"`
	Executable  string         `json:"executable"`
	Inject      bool           `json:"inject"`
	Options     captureOptions `json:"options"`
	WorkingDir  string         `json:"workingDir"`
}

type captureOptions struct {
	AllowFullscreen            bool `json:"allowFullscreen"`
	AllowVSync                 bool `json:"allowVSync"`
	APIValidation              bool `json:"apiValidation"`
	CaptureAllCmdLists         bool `json:"captureAllCmdLists"`
	CaptureCallstacks          bool `json:"captureCallstacks"`
	CaptureCallstacksOnlyDraws bool `json:"captureCallstacksOnlyDraws"`
	DebugOutputMute            bool `json:"debugOutputMute"`
	DelayForDebugger           int  `json:"delayForDebugger"`
	HookIntoChildren           bool `json:"hookIntoChildren"`
	RefAllResources            bool `json:"refAllResources"`
	VerifyBufferAccess         bool `json:"verifyBufferAccess"`
}

// CaptureSettings renders a capture settings file that launches executable
// in workingDir with API validation enabled.
func CaptureSettings(executable, workingDir string) ([]byte, error) {
	file := captureFile{
		Version: 1,
		Settings: captureSettings{
			Environment: []string{},
			Executable:  executable,
			Options: captureOptions{
				AllowFullscreen: true,
				AllowVSync:      true,
				APIValidation:   true,
				DebugOutputMute: true,
			},
			WorkingDir: workingDir,
		},
	}

	data, err := json.MarshalIndent(file, "", "    ")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode RenderDoc capture settings")
	}
	return append(data, '\n'), nil
}
