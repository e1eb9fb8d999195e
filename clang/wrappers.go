package clang

import (
	"runtime"

	"github.com/ebitengine/purego"
)

// bindings holds typed entry points for the exported functions that take
// and return scalars. Nil means the symbol is absent.
type bindings struct {
	createIndex                          func(excludeDeclarationsFromPCH, displayDiagnostics int32) Index
	disposeIndex                         func(Index)
	setGlobalOptions                     func(Index, uint32)
	getGlobalOptions                     func(Index) uint32
	setInvocationEmissionPathOption      func(Index, uintptr)
	parseTranslationUnit                 func(index Index, source, args uintptr, numArgs int32, unsaved uintptr, numUnsaved, options uint32) TranslationUnit
	disposeTranslationUnit               func(TranslationUnit)
	defaultEditingTranslationUnitOptions func() uint32
	defaultSaveOptions                   func(TranslationUnit) uint32
	saveTranslationUnit                  func(tu TranslationUnit, filename uintptr, options uint32) int32
	getNumDiagnostics                    func(TranslationUnit) uint32
	getDiagnostic                        func(TranslationUnit, uint32) Diagnostic
	disposeDiagnostic                    func(Diagnostic)
	getDiagnosticSeverity                func(Diagnostic) int32
	defaultDiagnosticDisplayOptions      func() uint32
	toggleCrashRecovery                  func(uint32)
}

func (l *Library) bind() {
	table := []struct {
		name string
		fn   any
	}{
		{"clang_createIndex", &l.fns.createIndex},
		{"clang_disposeIndex", &l.fns.disposeIndex},
		{"clang_CXIndex_setGlobalOptions", &l.fns.setGlobalOptions},
		{"clang_CXIndex_getGlobalOptions", &l.fns.getGlobalOptions},
		{"clang_CXIndex_setInvocationEmissionPathOption", &l.fns.setInvocationEmissionPathOption},
		{"clang_parseTranslationUnit", &l.fns.parseTranslationUnit},
		{"clang_disposeTranslationUnit", &l.fns.disposeTranslationUnit},
		{"clang_defaultEditingTranslationUnitOptions", &l.fns.defaultEditingTranslationUnitOptions},
		{"clang_defaultSaveOptions", &l.fns.defaultSaveOptions},
		{"clang_saveTranslationUnit", &l.fns.saveTranslationUnit},
		{"clang_getNumDiagnostics", &l.fns.getNumDiagnostics},
		{"clang_getDiagnostic", &l.fns.getDiagnostic},
		{"clang_disposeDiagnostic", &l.fns.disposeDiagnostic},
		{"clang_getDiagnosticSeverity", &l.fns.getDiagnosticSeverity},
		{"clang_defaultDiagnosticDisplayOptions", &l.fns.defaultDiagnosticDisplayOptions},
		{"clang_toggleCrashRecovery", &l.fns.toggleCrashRecovery},
	}
	for _, entry := range table {
		if addr, ok := l.symbols[entry.name]; ok {
			purego.RegisterFunc(entry.fn, addr)
		}
	}
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// ClangVersion returns the library's self-reported version string, for
// example "clang version 18.1.3".
func (l *Library) ClangVersion() string {
	return l.text(callCXString(l.mustSymbol("clang_getClangVersion")))
}

// ToggleCrashRecovery enables or disables libclang's crash recovery.
func (l *Library) ToggleCrashRecovery(enabled bool) {
	if l.fns.toggleCrashRecovery == nil {
		l.missing("clang_toggleCrashRecovery")
	}
	l.fns.toggleCrashRecovery(uint32(boolInt(enabled)))
}

// CreateIndex creates a shared context for translation units.
func (l *Library) CreateIndex(excludeDeclarationsFromPCH, displayDiagnostics bool) Index {
	if l.fns.createIndex == nil {
		l.missing("clang_createIndex")
	}
	return l.fns.createIndex(boolInt(excludeDeclarationsFromPCH), boolInt(displayDiagnostics))
}

// DisposeIndex destroys an index created by CreateIndex.
func (l *Library) DisposeIndex(index Index) {
	if l.fns.disposeIndex == nil {
		l.missing("clang_disposeIndex")
	}
	l.fns.disposeIndex(index)
}

// SetGlobalOptions sets the thread-priority options of an index.
func (l *Library) SetGlobalOptions(index Index, opts GlobalOptions) {
	if l.fns.setGlobalOptions == nil {
		l.missing("clang_CXIndex_setGlobalOptions")
	}
	l.fns.setGlobalOptions(index, uint32(opts))
}

// GlobalOptions returns the thread-priority options of an index.
func (l *Library) GlobalOptions(index Index) GlobalOptions {
	if l.fns.getGlobalOptions == nil {
		l.missing("clang_CXIndex_getGlobalOptions")
	}
	return GlobalOptions(l.fns.getGlobalOptions(index))
}

// SetInvocationEmissionPath makes libclang log compiler invocations below dir.
func (l *Library) SetInvocationEmissionPath(index Index, dir string) {
	if l.fns.setInvocationEmissionPathOption == nil {
		l.missing("clang_CXIndex_setInvocationEmissionPathOption")
	}
	var ptr uintptr
	var keep []byte
	if dir != "" {
		keep, ptr = cString(dir)
	}
	l.fns.setInvocationEmissionPathOption(index, ptr)
	runtime.KeepAlive(keep)
}

// ParseTranslationUnit parses source with the given compiler arguments. A
// zero TranslationUnit means libclang could not parse the file.
func (l *Library) ParseTranslationUnit(index Index, source string, args []string, flags TranslationUnitFlags) TranslationUnit {
	if l.fns.parseTranslationUnit == nil {
		l.missing("clang_parseTranslationUnit")
	}
	sourceBytes, sourcePtr := cString(source)
	argv, keep := cStringArray(args)
	tu := l.fns.parseTranslationUnit(index, sourcePtr, argv, int32(len(args)), 0, 0, uint32(flags))
	keep()
	runtime.KeepAlive(sourceBytes)
	return tu
}

// DisposeTranslationUnit destroys a translation unit.
func (l *Library) DisposeTranslationUnit(tu TranslationUnit) {
	if l.fns.disposeTranslationUnit == nil {
		l.missing("clang_disposeTranslationUnit")
	}
	l.fns.disposeTranslationUnit(tu)
}

// TranslationUnitSpelling returns the original source file name.
func (l *Library) TranslationUnitSpelling(tu TranslationUnit) string {
	addr := l.mustSymbol("clang_getTranslationUnitSpelling")
	return l.text(callCXString(addr, uintptr(tu)))
}

// DefaultEditingOptions returns the parse flags suited to editors.
func (l *Library) DefaultEditingOptions() TranslationUnitFlags {
	if l.fns.defaultEditingTranslationUnitOptions == nil {
		l.missing("clang_defaultEditingTranslationUnitOptions")
	}
	return TranslationUnitFlags(l.fns.defaultEditingTranslationUnitOptions())
}

// SaveTranslationUnit writes tu as a precompiled AST file.
func (l *Library) SaveTranslationUnit(tu TranslationUnit, filename string) error {
	if l.fns.saveTranslationUnit == nil {
		l.missing("clang_saveTranslationUnit")
	}
	if l.fns.defaultSaveOptions == nil {
		l.missing("clang_defaultSaveOptions")
	}
	nameBytes, namePtr := cString(filename)
	result := SaveError(l.fns.saveTranslationUnit(tu, namePtr, l.fns.defaultSaveOptions(tu)))
	runtime.KeepAlive(nameBytes)
	if result != SaveErrorNone {
		return result
	}
	return nil
}

// NumDiagnostics returns the number of diagnostics produced for tu.
func (l *Library) NumDiagnostics(tu TranslationUnit) uint32 {
	if l.fns.getNumDiagnostics == nil {
		l.missing("clang_getNumDiagnostics")
	}
	return l.fns.getNumDiagnostics(tu)
}

// Diagnostic returns diagnostic i of tu; release it with DisposeDiagnostic.
func (l *Library) Diagnostic(tu TranslationUnit, i uint32) Diagnostic {
	if l.fns.getDiagnostic == nil {
		l.missing("clang_getDiagnostic")
	}
	return l.fns.getDiagnostic(tu, i)
}

// DisposeDiagnostic releases a diagnostic.
func (l *Library) DisposeDiagnostic(d Diagnostic) {
	if l.fns.disposeDiagnostic == nil {
		l.missing("clang_disposeDiagnostic")
	}
	l.fns.disposeDiagnostic(d)
}

// DiagnosticSeverity classifies a diagnostic.
func (l *Library) DiagnosticSeverity(d Diagnostic) DiagnosticSeverity {
	if l.fns.getDiagnosticSeverity == nil {
		l.missing("clang_getDiagnosticSeverity")
	}
	return DiagnosticSeverity(l.fns.getDiagnosticSeverity(d))
}

// DiagnosticSpelling returns the diagnostic text without location.
func (l *Library) DiagnosticSpelling(d Diagnostic) string {
	return l.text(callCXString(l.mustSymbol("clang_getDiagnosticSpelling"), uintptr(d)))
}

// DefaultDiagnosticDisplayOptions returns the options clang itself uses.
func (l *Library) DefaultDiagnosticDisplayOptions() DiagnosticDisplayOptions {
	if l.fns.defaultDiagnosticDisplayOptions == nil {
		l.missing("clang_defaultDiagnosticDisplayOptions")
	}
	return DiagnosticDisplayOptions(l.fns.defaultDiagnosticDisplayOptions())
}

// FormatDiagnostic renders a diagnostic the way the clang driver prints it.
func (l *Library) FormatDiagnostic(d Diagnostic, opts DiagnosticDisplayOptions) string {
	addr := l.mustSymbol("clang_formatDiagnostic")
	return l.text(callCXString(addr, uintptr(d), uintptr(opts)))
}
