package ide

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"regexp"

	"go.trai.ch/zerr"
)

// schemeActions are the scheme actions that run the game and so carry a
// working directory.
var schemeActions = map[string]bool{
	"LaunchAction":  true,
	"ProfileAction": true,
}

var (
	// CMake writes `name="value"`, Xcode rewrites it as `name = "value"`.
	useCustomAttr = regexp.MustCompile(`(\s+)useCustomWorkingDirectory(\s*=\s*)"[^"]*"`)
	customAttr    = regexp.MustCompile(`\s+customWorkingDirectory\s*=\s*"[^"]*"`)
)

// PatchScheme sets the custom working directory of the launch and profile
// actions in an Xcode scheme to workingDir. Everything outside their start
// tags is kept byte for byte. It reports false when no action has a
// useCustomWorkingDirectory attribute to change.
func PatchScheme(data []byte, workingDir string) ([]byte, bool, error) {
	tags, err := findStartTags(data, schemeActions)
	if err != nil || len(tags) == 0 {
		return data, false, err
	}

	var escaped bytes.Buffer
	if err := xml.EscapeText(&escaped, []byte(workingDir)); err != nil {
		return data, false, zerr.Wrap(err, "failed to escape working directory")
	}

	var out bytes.Buffer
	out.Grow(len(data) + len(tags)*(escaped.Len()+64))
	edited := false
	last := 0
	for _, r := range tags {
		tag := customAttr.ReplaceAll(data[r.start:r.end], nil)
		match := useCustomAttr.FindSubmatchIndex(tag)
		if match == nil {
			continue
		}
		indent := tag[match[2]:match[3]]
		eq := tag[match[4]:match[5]]

		out.Write(data[last:r.start])
		out.Write(tag[:match[0]])
		out.Write(indent)
		out.WriteString("useCustomWorkingDirectory")
		out.Write(eq)
		out.WriteString(`"YES"`)
		out.Write(indent)
		out.WriteString("customWorkingDirectory")
		out.Write(eq)
		out.WriteString(`"`)
		out.Write(escaped.Bytes())
		out.WriteString(`"`)
		out.Write(tag[match[1]:])
		last = r.end
		edited = true
	}
	if !edited {
		return data, false, nil
	}
	out.Write(data[last:])
	return out.Bytes(), true, nil
}

type tagRange struct {
	start, end int
}

// findStartTags returns the byte ranges of the start tags whose names are in
// names, in document order.
func findStartTags(data []byte, names map[string]bool) ([]tagRange, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var tags []tagRange
	for {
		start := dec.InputOffset()
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			return tags, nil
		}
		if err != nil {
			return nil, zerr.Wrap(err, "failed to parse Xcode scheme")
		}
		if el, ok := tok.(xml.StartElement); ok && names[el.Name.Local] {
			tags = append(tags, tagRange{start: int(start), end: int(dec.InputOffset())})
		}
	}
}
