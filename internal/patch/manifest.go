package patch

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// placeholderTestScript is the script npm init puts under "test".
const placeholderTestScript = `echo "Error: no test specified" && exit 1`

// TestCTScript returns the test-ct script invocation for a ct config with
// the given extension ("ts" or "js").
func TestCTScript(configExt string) string {
	return "playwright test -c playwright-ct.config." + configExt
}

// HasDependency reports whether the manifest declares name under
// dependencies or devDependencies. A missing or unparsable manifest counts
// as "nothing declared" rather than an error, so scaffolding onto a
// project with a nonstandard package.json still works.
func HasDependency(manifest []byte, name string) bool {
	var doc struct {
		Dependencies    map[string]json.RawMessage `json:"dependencies"`
		DevDependencies map[string]json.RawMessage `json:"devDependencies"`
	}
	if err := json.Unmarshal(manifest, &doc); err != nil {
		return false
	}
	if _, ok := doc.Dependencies[name]; ok {
		return true
	}
	_, ok := doc.DevDependencies[name]
	return ok
}

// Manifest patches the scripts of an existing package.json in place,
// preserving the document's formatting, key order and trailing newline:
//
//   - the placeholder "no test specified" script is removed;
//   - when ctConfigExt is non-empty, scripts.test-ct is set to the fixed
//     test-ct invocation for that extension.
//
// It returns the patched bytes and whether anything changed. An
// unparsable manifest is returned unchanged; the patch never fails a run.
func Manifest(manifest []byte, ctConfigExt string) ([]byte, bool) {
	out, err := patchScripts(manifest, ctConfigExt)
	if err != nil {
		return manifest, false
	}
	return out, !bytes.Equal(out, manifest)
}

func patchScripts(b []byte, ctConfigExt string) ([]byte, error) {
	out, err := removePlaceholderTest(b)
	if err != nil {
		return nil, err
	}
	if ctConfigExt == "" {
		return out, nil
	}
	return setTestCT(out, ctConfigExt)
}

// removePlaceholderTest deletes scripts.test when it still holds the npm
// placeholder. A hand-written test script is left alone.
func removePlaceholderTest(b []byte) ([]byte, error) {
	scripts, ok, err := findScripts(b)
	if err != nil {
		return nil, err
	}
	if !ok {
		return b, nil
	}

	objEnd, members, ok := objectMembers(b, scripts.valueStart)
	if !ok {
		return nil, fmt.Errorf("scripts is not an object")
	}
	for _, m := range members {
		if m.key != "test" {
			continue
		}
		var value string
		if err := json.Unmarshal(b[m.valueStart:m.valueEnd], &value); err != nil {
			return b, nil
		}
		if value != placeholderTestScript {
			return b, nil
		}
		return deleteMember(b, scripts.valueStart, objEnd, m), nil
	}
	return b, nil
}

// setTestCT sets scripts["test-ct"], creating the scripts object when the
// manifest has none.
func setTestCT(b []byte, configExt string) ([]byte, error) {
	want, err := json.Marshal(TestCTScript(configExt))
	if err != nil {
		return nil, err
	}

	scripts, ok, err := findScripts(b)
	if err != nil {
		return nil, err
	}
	if !ok {
		return insertScriptsObject(b, want)
	}

	objEnd, members, ok := objectMembers(b, scripts.valueStart)
	if !ok {
		return nil, fmt.Errorf("scripts is not an object")
	}
	for _, m := range members {
		if m.key != "test-ct" {
			continue
		}
		if bytes.Equal(b[m.valueStart:m.valueEnd], want) {
			return b, nil
		}
		out := append([]byte(nil), b[:m.valueStart]...)
		out = append(out, want...)
		out = append(out, b[m.valueEnd:]...)
		return out, nil
	}
	return insertMember(b, scripts.valueStart, objEnd, "test-ct", want), nil
}

// findScripts locates the top-level "scripts" member.
func findScripts(b []byte) (member, bool, error) {
	i := skipSpace(b, 0)
	if i >= len(b) || b[i] != '{' {
		return member{}, false, fmt.Errorf("manifest is not a json object")
	}
	_, members, ok := objectMembers(b, i)
	if !ok {
		return member{}, false, fmt.Errorf("invalid manifest object")
	}
	for _, m := range members {
		if m.key == "scripts" {
			return m, true, nil
		}
	}
	return member{}, false, nil
}

// insertScriptsObject adds a whole scripts object holding only test-ct as
// a new top-level member.
func insertScriptsObject(b []byte, scriptValue []byte) ([]byte, error) {
	i := skipSpace(b, 0)
	if i >= len(b) || b[i] != '{' {
		return nil, fmt.Errorf("manifest is not a json object")
	}
	objEnd, _, ok := objectMembers(b, i)
	if !ok {
		return nil, fmt.Errorf("invalid manifest object")
	}

	newline, indent := detectIndent(b, i, objEnd)
	var value []byte
	if newline == nil {
		value = []byte(`{ "test-ct": ` + string(scriptValue) + ` }`)
	} else {
		value = append(value, '{')
		value = append(value, newline...)
		value = append(value, indent...)
		value = append(value, indent...)
		value = append(value, []byte(`"test-ct": `)...)
		value = append(value, scriptValue...)
		value = append(value, newline...)
		value = append(value, indent...)
		value = append(value, '}')
	}
	return insertMember(b, i, objEnd, "scripts", value), nil
}
