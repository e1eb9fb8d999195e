package clang

import (
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// Version is a supported libclang release line. Values order chronologically;
// VersionUnsupported sorts below every release line.
type Version int

const (
	VersionUnsupported Version = 0
	V3_5               Version = 35
	V3_6               Version = 36
	V3_7               Version = 37
	V3_8               Version = 38
	V3_9               Version = 39
	V4_0               Version = 40
	V5_0               Version = 50
	V6_0               Version = 60
	V7_0               Version = 70
	V8_0               Version = 80
	V9_0               Version = 90
	V11_0              Version = 110
	V12_0              Version = 120
	V16_0              Version = 160
	V17_0              Version = 170
	V18_0              Version = 180
	V19_0              Version = 190
	V20_0              Version = 200
	V21_0              Version = 210
	V22_0              Version = 220
	V23_0              Version = 230
)

// Versions lists every release line, oldest first.
var Versions = []Version{
	V3_5, V3_6, V3_7, V3_8, V3_9, V4_0, V5_0, V6_0, V7_0, V8_0, V9_0,
	V11_0, V12_0, V16_0, V17_0, V18_0, V19_0, V20_0, V21_0, V22_0, V23_0,
}

var versionNames = map[Version]string{
	VersionUnsupported: "unsupported",
	V3_5:               "3.5.x",
	V3_6:               "3.6.x",
	V3_7:               "3.7.x",
	V3_8:               "3.8.x",
	V3_9:               "3.9.x",
	V4_0:               "4.0.x",
	V5_0:               "5.0.x",
	V6_0:               "6.0.x",
	V7_0:               "7.0.x",
	V8_0:               "8.0.x",
	V9_0:               "9.0.x - 10.0.x",
	V11_0:              "11.0.x",
	V12_0:              "12.0.x - 15.0.x",
	V16_0:              "16.0.x",
	V17_0:              "17.0.x",
	V18_0:              "18.0.x",
	V19_0:              "19.0.x",
	V20_0:              "20.0.x",
	V21_0:              "21.0.x",
	V22_0:              "22.0.x",
	V23_0:              "23.0.x or later",
}

func (v Version) String() string {
	if name, ok := versionNames[v]; ok {
		return name
	}
	return versionNames[VersionUnsupported]
}

// Major returns the first major release of the line (3 for every 3.x line).
func (v Version) Major() int {
	return int(v) / 10
}

// marker is an exported function introduced with a release line.
type marker struct {
	function string
	version  Version
	// refine asks the library for its version string because several
	// releases share the marker.
	refine bool
}

// markers are checked newest first; the first hit sets the floor.
var markers = []marker{
	{function: "clang_getFullyQualifiedName", version: V21_0, refine: true},
	{function: "clang_getOffsetOfBase", version: V20_0},
	{function: "clang_Cursor_getBinaryOpcode", version: V19_0},
	// 18 added no C API functions, only enum values.
	{function: "clang_CXXMethod_isExplicit", version: V17_0, refine: true},
	{function: "clang_CXXMethod_isCopyAssignmentOperator", version: V16_0},
	{function: "clang_Cursor_getVarDeclInitializer", version: V12_0},
	{function: "clang_Type_getValueType", version: V11_0},
	{function: "clang_Cursor_isAnonymousRecordDecl", version: V9_0},
	{function: "clang_Cursor_getObjCPropertyGetterName", version: V8_0},
	{function: "clang_File_tryGetRealPathName", version: V7_0},
	{function: "clang_CXIndex_setInvocationEmissionPathOption", version: V6_0},
	{function: "clang_Cursor_isExternalSymbol", version: V5_0},
	{function: "clang_EvalResult_getAsLongLong", version: V4_0},
	{function: "clang_CXXConstructor_isConvertingConstructor", version: V3_9},
	{function: "clang_CXXField_isMutable", version: V3_8},
	{function: "clang_Cursor_getOffsetOfField", version: V3_7},
	{function: "clang_Cursor_getStorageClass", version: V3_6},
	{function: "clang_Type_getNumTemplateArguments", version: V3_5},
}

// classify derives the release line from symbol presence, consulting
// fromString only for markers shared by several releases. The result never
// falls below the marker floor.
func classify(has func(string) bool, fromString func() (Version, bool)) Version {
	for _, m := range markers {
		if !has(m.function) {
			continue
		}
		if m.refine && fromString != nil {
			if parsed, ok := fromString(); ok && parsed > m.version {
				return parsed
			}
		}
		return m.version
	}
	return VersionUnsupported
}

var versionText = regexp.MustCompile(`version\s+(\d+(?:\.\d+){0,2})`)

// ParseVersionText maps text such as "Ubuntu clang version 18.1.3" onto a
// release line.
func ParseVersionText(text string) (Version, bool) {
	match := versionText.FindStringSubmatch(text)
	if match == nil {
		return VersionUnsupported, false
	}
	v, err := semver.NewVersion(match[1])
	if err != nil {
		return VersionUnsupported, false
	}
	return releaseLine(int(v.Major()))
}

// releaseLine groups majors whose C API did not change into one line.
func releaseLine(major int) (Version, bool) {
	switch {
	case major >= 23:
		return V23_0, true
	case major >= 16:
		return Version(major * 10), true
	case major >= 12:
		return V12_0, true
	case major == 11:
		return V11_0, true
	case major == 9 || major == 10:
		return V9_0, true
	case major >= 4:
		return Version(major * 10), true
	}
	return VersionUnsupported, false
}
