package clang

// Index is an opaque CXIndex handle.
type Index uintptr

// TranslationUnit is an opaque CXTranslationUnit handle.
type TranslationUnit uintptr

// Diagnostic is an opaque CXDiagnostic handle.
type Diagnostic uintptr

// DiagnosticSeverity mirrors enum CXDiagnosticSeverity.
type DiagnosticSeverity int32

const (
	DiagnosticIgnored DiagnosticSeverity = iota
	DiagnosticNote
	DiagnosticWarning
	DiagnosticError
	DiagnosticFatal
)

func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticIgnored:
		return "ignored"
	case DiagnosticNote:
		return "note"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	case DiagnosticFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// TranslationUnitFlags mirrors enum CXTranslationUnit_Flags.
type TranslationUnitFlags uint32

const (
	TranslationUnitNone                                 TranslationUnitFlags = 0x0
	TranslationUnitDetailedPreprocessingRecord          TranslationUnitFlags = 0x01
	TranslationUnitIncomplete                           TranslationUnitFlags = 0x02
	TranslationUnitPrecompiledPreamble                  TranslationUnitFlags = 0x04
	TranslationUnitCacheCompletionResults               TranslationUnitFlags = 0x08
	TranslationUnitForSerialization                     TranslationUnitFlags = 0x10
	TranslationUnitCXXChainedPCH                        TranslationUnitFlags = 0x20
	TranslationUnitSkipFunctionBodies                   TranslationUnitFlags = 0x40
	TranslationUnitIncludeBriefCommentsInCodeCompletion TranslationUnitFlags = 0x80
	TranslationUnitCreatePreambleOnFirstParse           TranslationUnitFlags = 0x100
	TranslationUnitKeepGoing                            TranslationUnitFlags = 0x200
	TranslationUnitSingleFileParse                      TranslationUnitFlags = 0x400
	TranslationUnitLimitSkipFunctionBodiesToPreamble    TranslationUnitFlags = 0x800
	TranslationUnitIncludeAttributedTypes               TranslationUnitFlags = 0x1000
	TranslationUnitVisitImplicitAttributes              TranslationUnitFlags = 0x2000
	TranslationUnitIgnoreNonErrorsFromIncludedFiles     TranslationUnitFlags = 0x4000
	TranslationUnitRetainExcludedConditionalBlocks      TranslationUnitFlags = 0x8000
)

// GlobalOptions mirrors enum CXGlobalOptFlags.
type GlobalOptions uint32

const (
	GlobalOptNone                                GlobalOptions = 0x0
	GlobalOptThreadBackgroundPriorityForIndexing GlobalOptions = 0x1
	GlobalOptThreadBackgroundPriorityForEditing  GlobalOptions = 0x2
	GlobalOptThreadBackgroundPriorityForAll      GlobalOptions = 0x3
)

// DiagnosticDisplayOptions mirrors enum CXDiagnosticDisplayOptions.
type DiagnosticDisplayOptions uint32

const (
	DisplaySourceLocation DiagnosticDisplayOptions = 0x01
	DisplayColumn         DiagnosticDisplayOptions = 0x02
	DisplaySourceRanges   DiagnosticDisplayOptions = 0x04
	DisplayOption         DiagnosticDisplayOptions = 0x08
	DisplayCategoryID     DiagnosticDisplayOptions = 0x10
	DisplayCategoryName   DiagnosticDisplayOptions = 0x20
)

// SaveError mirrors enum CXSaveError.
type SaveError int32

const (
	SaveErrorNone SaveError = iota
	SaveErrorUnknown
	SaveErrorTranslationErrors
	SaveErrorInvalidTU
)

func (e SaveError) Error() string {
	switch e {
	case SaveErrorNone:
		return "no error"
	case SaveErrorUnknown:
		return "unknown error while saving translation unit"
	case SaveErrorTranslationErrors:
		return "translation unit has errors"
	case SaveErrorInvalidTU:
		return "invalid translation unit"
	default:
		return "unrecognized save error"
	}
}
