package clang

// Function describes one exported libclang function.
type Function struct {
	Name      string
	Signature string
	// Since is the first release line that exports the function.
	Since Version
}

// Functions is the catalog of symbols resolved when a library is opened.
// Regenerate candidate rows with tools/gen_clangapi.go.
var Functions = []Function{
	{Name: "clang_getCString", Signature: "const char *(CXString)", Since: V3_5},
	{Name: "clang_disposeString", Signature: "void (CXString)", Since: V3_5},
	{Name: "clang_disposeStringSet", Signature: "void (CXStringSet *)", Since: V3_8},
	{Name: "clang_getClangVersion", Signature: "CXString (void)", Since: V3_5},
	{Name: "clang_toggleCrashRecovery", Signature: "void (unsigned)", Since: V3_5},
	{Name: "clang_createIndex", Signature: "CXIndex (int, int)", Since: V3_5},
	{Name: "clang_createIndexWithOptions", Signature: "CXIndex (const CXIndexOptions *)", Since: V17_0},
	{Name: "clang_disposeIndex", Signature: "void (CXIndex)", Since: V3_5},
	{Name: "clang_CXIndex_setGlobalOptions", Signature: "void (CXIndex, unsigned)", Since: V3_5},
	{Name: "clang_CXIndex_getGlobalOptions", Signature: "unsigned (CXIndex)", Since: V3_5},
	{Name: "clang_CXIndex_setInvocationEmissionPathOption", Signature: "void (CXIndex, const char *)", Since: V6_0},
	{Name: "clang_getFile", Signature: "CXFile (CXTranslationUnit, const char *)", Since: V3_5},
	{Name: "clang_getFileName", Signature: "CXString (CXFile)", Since: V3_5},
	{Name: "clang_getFileTime", Signature: "time_t (CXFile)", Since: V3_5},
	{Name: "clang_getFileContents", Signature: "const char *(CXTranslationUnit, CXFile, size_t *)", Since: V6_0},
	{Name: "clang_File_isEqual", Signature: "int (CXFile, CXFile)", Since: V3_6},
	{Name: "clang_File_tryGetRealPathName", Signature: "CXString (CXFile)", Since: V7_0},
	{Name: "clang_parseTranslationUnit", Signature: "CXTranslationUnit (CXIndex, const char *, const char *const *, int, struct CXUnsavedFile *, unsigned, unsigned)", Since: V3_5},
	{Name: "clang_parseTranslationUnit2", Signature: "enum CXErrorCode (CXIndex, const char *, const char *const *, int, struct CXUnsavedFile *, unsigned, unsigned, CXTranslationUnit *)", Since: V3_5},
	{Name: "clang_parseTranslationUnit2FullArgv", Signature: "enum CXErrorCode (CXIndex, const char *, const char *const *, int, struct CXUnsavedFile *, unsigned, unsigned, CXTranslationUnit *)", Since: V3_8},
	{Name: "clang_createTranslationUnit", Signature: "CXTranslationUnit (CXIndex, const char *)", Since: V3_5},
	{Name: "clang_createTranslationUnit2", Signature: "enum CXErrorCode (CXIndex, const char *, CXTranslationUnit *)", Since: V3_5},
	{Name: "clang_disposeTranslationUnit", Signature: "void (CXTranslationUnit)", Since: V3_5},
	{Name: "clang_getTranslationUnitSpelling", Signature: "CXString (CXTranslationUnit)", Since: V3_5},
	{Name: "clang_defaultEditingTranslationUnitOptions", Signature: "unsigned (void)", Since: V3_5},
	{Name: "clang_defaultSaveOptions", Signature: "unsigned (CXTranslationUnit)", Since: V3_5},
	{Name: "clang_saveTranslationUnit", Signature: "int (CXTranslationUnit, const char *, unsigned)", Since: V3_5},
	{Name: "clang_suspendTranslationUnit", Signature: "unsigned (CXTranslationUnit)", Since: V3_9},
	{Name: "clang_defaultReparseOptions", Signature: "unsigned (CXTranslationUnit)", Since: V3_5},
	{Name: "clang_reparseTranslationUnit", Signature: "int (CXTranslationUnit, unsigned, struct CXUnsavedFile *, unsigned)", Since: V3_5},
	{Name: "clang_getTranslationUnitCursor", Signature: "CXCursor (CXTranslationUnit)", Since: V3_5},
	{Name: "clang_getTranslationUnitTargetInfo", Signature: "CXTargetInfo (CXTranslationUnit)", Since: V5_0},
	{Name: "clang_TargetInfo_getTriple", Signature: "CXString (CXTargetInfo)", Since: V5_0},
	{Name: "clang_TargetInfo_getPointerWidth", Signature: "int (CXTargetInfo)", Since: V5_0},
	{Name: "clang_TargetInfo_dispose", Signature: "void (CXTargetInfo)", Since: V5_0},
	{Name: "clang_getNumDiagnostics", Signature: "unsigned (CXTranslationUnit)", Since: V3_5},
	{Name: "clang_getDiagnostic", Signature: "CXDiagnostic (CXTranslationUnit, unsigned)", Since: V3_5},
	{Name: "clang_getDiagnosticSetFromTU", Signature: "CXDiagnosticSet (CXTranslationUnit)", Since: V3_5},
	{Name: "clang_disposeDiagnostic", Signature: "void (CXDiagnostic)", Since: V3_5},
	{Name: "clang_formatDiagnostic", Signature: "CXString (CXDiagnostic, unsigned)", Since: V3_5},
	{Name: "clang_defaultDiagnosticDisplayOptions", Signature: "unsigned (void)", Since: V3_5},
	{Name: "clang_getDiagnosticSeverity", Signature: "enum CXDiagnosticSeverity (CXDiagnostic)", Since: V3_5},
	{Name: "clang_getDiagnosticSpelling", Signature: "CXString (CXDiagnostic)", Since: V3_5},
	{Name: "clang_getDiagnosticOption", Signature: "CXString (CXDiagnostic, CXString *)", Since: V3_5},
	{Name: "clang_getDiagnosticCategory", Signature: "unsigned (CXDiagnostic)", Since: V3_5},
	{Name: "clang_getDiagnosticCategoryText", Signature: "CXString (CXDiagnostic)", Since: V3_5},
	{Name: "clang_getDiagnosticNumRanges", Signature: "unsigned (CXDiagnostic)", Since: V3_5},
	{Name: "clang_getDiagnosticNumFixIts", Signature: "unsigned (CXDiagnostic)", Since: V3_5},
	{Name: "clang_getNullCursor", Signature: "CXCursor (void)", Since: V3_5},
	{Name: "clang_equalCursors", Signature: "unsigned (CXCursor, CXCursor)", Since: V3_5},
	{Name: "clang_Cursor_isNull", Signature: "int (CXCursor)", Since: V3_5},
	{Name: "clang_hashCursor", Signature: "unsigned (CXCursor)", Since: V3_5},
	{Name: "clang_getCursorKind", Signature: "enum CXCursorKind (CXCursor)", Since: V3_5},
	{Name: "clang_getCursorKindSpelling", Signature: "CXString (enum CXCursorKind)", Since: V3_5},
	{Name: "clang_isDeclaration", Signature: "unsigned (enum CXCursorKind)", Since: V3_5},
	{Name: "clang_isInvalidDeclaration", Signature: "unsigned (CXCursor)", Since: V7_0},
	{Name: "clang_isReference", Signature: "unsigned (enum CXCursorKind)", Since: V3_5},
	{Name: "clang_isExpression", Signature: "unsigned (enum CXCursorKind)", Since: V3_5},
	{Name: "clang_isStatement", Signature: "unsigned (enum CXCursorKind)", Since: V3_5},
	{Name: "clang_isAttribute", Signature: "unsigned (enum CXCursorKind)", Since: V3_5},
	{Name: "clang_Cursor_hasAttrs", Signature: "unsigned (CXCursor)", Since: V3_9},
	{Name: "clang_isInvalid", Signature: "unsigned (enum CXCursorKind)", Since: V3_5},
	{Name: "clang_isTranslationUnit", Signature: "unsigned (enum CXCursorKind)", Since: V3_5},
	{Name: "clang_isPreprocessing", Signature: "unsigned (enum CXCursorKind)", Since: V3_5},
	{Name: "clang_isUnexposed", Signature: "unsigned (enum CXCursorKind)", Since: V3_5},
	{Name: "clang_getCursorLinkage", Signature: "enum CXLinkageKind (CXCursor)", Since: V3_5},
	{Name: "clang_getCursorVisibility", Signature: "enum CXVisibilityKind (CXCursor)", Since: V3_8},
	{Name: "clang_getCursorAvailability", Signature: "enum CXAvailabilityKind (CXCursor)", Since: V3_5},
	{Name: "clang_getCursorLanguage", Signature: "enum CXLanguageKind (CXCursor)", Since: V3_5},
	{Name: "clang_getCursorTLSKind", Signature: "enum CXTLSKind (CXCursor)", Since: V6_0},
	{Name: "clang_Cursor_getTranslationUnit", Signature: "CXTranslationUnit (CXCursor)", Since: V3_5},
	{Name: "clang_getCursorSemanticParent", Signature: "CXCursor (CXCursor)", Since: V3_5},
	{Name: "clang_getCursorLexicalParent", Signature: "CXCursor (CXCursor)", Since: V3_5},
	{Name: "clang_getIncludedFile", Signature: "CXFile (CXCursor)", Since: V3_5},
	{Name: "clang_getCursor", Signature: "CXCursor (CXTranslationUnit, CXSourceLocation)", Since: V3_5},
	{Name: "clang_getCursorLocation", Signature: "CXSourceLocation (CXCursor)", Since: V3_5},
	{Name: "clang_getCursorExtent", Signature: "CXSourceRange (CXCursor)", Since: V3_5},
	{Name: "clang_getCursorType", Signature: "CXType (CXCursor)", Since: V3_5},
	{Name: "clang_getTypeSpelling", Signature: "CXString (CXType)", Since: V3_5},
	{Name: "clang_getTypedefDeclUnderlyingType", Signature: "CXType (CXCursor)", Since: V3_5},
	{Name: "clang_getEnumDeclIntegerType", Signature: "CXType (CXCursor)", Since: V3_5},
	{Name: "clang_getEnumConstantDeclValue", Signature: "long long (CXCursor)", Since: V3_5},
	{Name: "clang_getEnumConstantDeclUnsignedValue", Signature: "unsigned long long (CXCursor)", Since: V3_5},
	{Name: "clang_EnumDecl_isScoped", Signature: "unsigned (CXCursor)", Since: V3_5},
	{Name: "clang_getFieldDeclBitWidth", Signature: "int (CXCursor)", Since: V3_5},
	{Name: "clang_Cursor_getNumArguments", Signature: "int (CXCursor)", Since: V3_5},
	{Name: "clang_Cursor_getArgument", Signature: "CXCursor (CXCursor, unsigned)", Since: V3_5},
	{Name: "clang_Cursor_getNumTemplateArguments", Signature: "int (CXCursor)", Since: V3_6},
	{Name: "clang_Cursor_getTemplateArgumentKind", Signature: "enum CXTemplateArgumentKind (CXCursor, unsigned)", Since: V3_6},
	{Name: "clang_Cursor_getTemplateArgumentType", Signature: "CXType (CXCursor, unsigned)", Since: V3_6},
	{Name: "clang_Cursor_getTemplateArgumentValue", Signature: "long long (CXCursor, unsigned)", Since: V3_6},
	{Name: "clang_equalTypes", Signature: "unsigned (CXType, CXType)", Since: V3_5},
	{Name: "clang_getCanonicalType", Signature: "CXType (CXType)", Since: V3_5},
	{Name: "clang_isConstQualifiedType", Signature: "unsigned (CXType)", Since: V3_5},
	{Name: "clang_isVolatileQualifiedType", Signature: "unsigned (CXType)", Since: V3_5},
	{Name: "clang_isRestrictQualifiedType", Signature: "unsigned (CXType)", Since: V3_5},
	{Name: "clang_getAddressSpace", Signature: "unsigned (CXType)", Since: V5_0},
	{Name: "clang_getTypedefName", Signature: "CXString (CXType)", Since: V5_0},
	{Name: "clang_getPointeeType", Signature: "CXType (CXType)", Since: V3_5},
	{Name: "clang_getUnqualifiedType", Signature: "CXType (CXType)", Since: V16_0},
	{Name: "clang_getNonReferenceType", Signature: "CXType (CXType)", Since: V16_0},
	{Name: "clang_getTypeDeclaration", Signature: "CXCursor (CXType)", Since: V3_5},
	{Name: "clang_getTypeKindSpelling", Signature: "CXString (enum CXTypeKind)", Since: V3_5},
	{Name: "clang_getFunctionTypeCallingConv", Signature: "enum CXCallingConv (CXType)", Since: V3_5},
	{Name: "clang_getResultType", Signature: "CXType (CXType)", Since: V3_5},
	{Name: "clang_getExceptionSpecificationType", Signature: "int (CXType)", Since: V5_0},
	{Name: "clang_getNumArgTypes", Signature: "int (CXType)", Since: V3_5},
	{Name: "clang_getArgType", Signature: "CXType (CXType, unsigned)", Since: V3_5},
	{Name: "clang_isFunctionTypeVariadic", Signature: "unsigned (CXType)", Since: V3_5},
	{Name: "clang_getCursorResultType", Signature: "CXType (CXCursor)", Since: V3_5},
	{Name: "clang_getCursorExceptionSpecificationType", Signature: "int (CXCursor)", Since: V5_0},
	{Name: "clang_isPODType", Signature: "unsigned (CXType)", Since: V3_5},
	{Name: "clang_getElementType", Signature: "CXType (CXType)", Since: V3_5},
	{Name: "clang_getNumElements", Signature: "long long (CXType)", Since: V3_5},
	{Name: "clang_getArrayElementType", Signature: "CXType (CXType)", Since: V3_5},
	{Name: "clang_getArraySize", Signature: "long long (CXType)", Since: V3_5},
	{Name: "clang_Type_getNamedType", Signature: "CXType (CXType)", Since: V3_9},
	{Name: "clang_Type_isTransparentTagTypedef", Signature: "unsigned (CXType)", Since: V5_0},
	{Name: "clang_Type_getNullability", Signature: "enum CXTypeNullabilityKind (CXType)", Since: V8_0},
	{Name: "clang_Type_getAlignOf", Signature: "long long (CXType)", Since: V3_5},
	{Name: "clang_Type_getClassType", Signature: "CXType (CXType)", Since: V3_5},
	{Name: "clang_Type_getSizeOf", Signature: "long long (CXType)", Since: V3_5},
	{Name: "clang_Type_getOffsetOf", Signature: "long long (CXType, const char *)", Since: V3_5},
	{Name: "clang_Type_getModifiedType", Signature: "CXType (CXType)", Since: V8_0},
	{Name: "clang_Type_getValueType", Signature: "CXType (CXType)", Since: V11_0},
	{Name: "clang_Type_getObjCObjectBaseType", Signature: "CXType (CXType)", Since: V8_0},
	{Name: "clang_Type_getObjCEncoding", Signature: "CXString (CXType)", Since: V3_9},
	{Name: "clang_Type_getNumTemplateArguments", Signature: "int (CXType)", Since: V3_5},
	{Name: "clang_Type_getTemplateArgumentAsType", Signature: "CXType (CXType, unsigned)", Since: V3_5},
	{Name: "clang_Type_getCXXRefQualifier", Signature: "enum CXRefQualifierKind (CXType)", Since: V3_5},
	{Name: "clang_Type_visitFields", Signature: "unsigned (CXType, CXFieldVisitor, CXClientData)", Since: V3_7},
	{Name: "clang_Cursor_getOffsetOfField", Signature: "long long (CXCursor)", Since: V3_7},
	{Name: "clang_Cursor_isAnonymous", Signature: "unsigned (CXCursor)", Since: V3_7},
	{Name: "clang_Cursor_isAnonymousRecordDecl", Signature: "unsigned (CXCursor)", Since: V9_0},
	{Name: "clang_Cursor_isInlineNamespace", Signature: "unsigned (CXCursor)", Since: V9_0},
	{Name: "clang_Cursor_isBitField", Signature: "unsigned (CXCursor)", Since: V3_5},
	{Name: "clang_isVirtualBase", Signature: "unsigned (CXCursor)", Since: V3_5},
	{Name: "clang_getOffsetOfBase", Signature: "long long (CXCursor, CXCursor)", Since: V20_0},
	{Name: "clang_getCXXAccessSpecifier", Signature: "enum CX_CXXAccessSpecifier (CXCursor)", Since: V3_5},
	{Name: "clang_Cursor_getStorageClass", Signature: "enum CX_StorageClass (CXCursor)", Since: V3_6},
	{Name: "clang_getNumOverloadedDecls", Signature: "unsigned (CXCursor)", Since: V3_5},
	{Name: "clang_getOverloadedDecl", Signature: "CXCursor (CXCursor, unsigned)", Since: V3_5},
	{Name: "clang_getCursorUSR", Signature: "CXString (CXCursor)", Since: V3_5},
	{Name: "clang_getCursorSpelling", Signature: "CXString (CXCursor)", Since: V3_5},
	{Name: "clang_getCursorDisplayName", Signature: "CXString (CXCursor)", Since: V3_5},
	{Name: "clang_getCursorPrettyPrinted", Signature: "CXString (CXCursor, CXPrintingPolicy)", Since: V7_0},
	{Name: "clang_getCursorPrintingPolicy", Signature: "CXPrintingPolicy (CXCursor)", Since: V7_0},
	{Name: "clang_PrintingPolicy_dispose", Signature: "void (CXPrintingPolicy)", Since: V7_0},
	{Name: "clang_getFullyQualifiedName", Signature: "CXString (CXType, CXPrintingPolicy, unsigned)", Since: V21_0},
	{Name: "clang_getCursorReferenced", Signature: "CXCursor (CXCursor)", Since: V3_5},
	{Name: "clang_getCursorDefinition", Signature: "CXCursor (CXCursor)", Since: V3_5},
	{Name: "clang_isCursorDefinition", Signature: "unsigned (CXCursor)", Since: V3_5},
	{Name: "clang_getCanonicalCursor", Signature: "CXCursor (CXCursor)", Since: V3_5},
	{Name: "clang_Cursor_isDynamicCall", Signature: "int (CXCursor)", Since: V3_5},
	{Name: "clang_Cursor_isVariadic", Signature: "unsigned (CXCursor)", Since: V3_5},
	{Name: "clang_Cursor_isExternalSymbol", Signature: "unsigned (CXCursor, CXString *, CXString *, unsigned *)", Since: V5_0},
	{Name: "clang_Cursor_getCommentRange", Signature: "CXSourceRange (CXCursor)", Since: V3_5},
	{Name: "clang_Cursor_getRawCommentText", Signature: "CXString (CXCursor)", Since: V3_5},
	{Name: "clang_Cursor_getBriefCommentText", Signature: "CXString (CXCursor)", Since: V3_5},
	{Name: "clang_Cursor_getMangling", Signature: "CXString (CXCursor)", Since: V3_6},
	{Name: "clang_Cursor_getCXXManglings", Signature: "CXStringSet *(CXCursor)", Since: V3_8},
	{Name: "clang_Cursor_getObjCManglings", Signature: "CXStringSet *(CXCursor)", Since: V6_0},
	{Name: "clang_Cursor_getObjCPropertyGetterName", Signature: "CXString (CXCursor)", Since: V8_0},
	{Name: "clang_Cursor_getObjCPropertySetterName", Signature: "CXString (CXCursor)", Since: V8_0},
	{Name: "clang_Cursor_getVarDeclInitializer", Signature: "CXCursor (CXCursor)", Since: V12_0},
	{Name: "clang_Cursor_hasVarDeclGlobalStorage", Signature: "int (CXCursor)", Since: V12_0},
	{Name: "clang_Cursor_hasVarDeclExternalStorage", Signature: "int (CXCursor)", Since: V12_0},
	{Name: "clang_Cursor_isMacroFunctionLike", Signature: "unsigned (CXCursor)", Since: V3_9},
	{Name: "clang_Cursor_isMacroBuiltin", Signature: "unsigned (CXCursor)", Since: V3_9},
	{Name: "clang_Cursor_isFunctionInlined", Signature: "unsigned (CXCursor)", Since: V3_9},
	{Name: "clang_CXXConstructor_isConvertingConstructor", Signature: "unsigned (CXCursor)", Since: V3_9},
	{Name: "clang_CXXConstructor_isCopyConstructor", Signature: "unsigned (CXCursor)", Since: V3_9},
	{Name: "clang_CXXConstructor_isDefaultConstructor", Signature: "unsigned (CXCursor)", Since: V3_9},
	{Name: "clang_CXXConstructor_isMoveConstructor", Signature: "unsigned (CXCursor)", Since: V3_9},
	{Name: "clang_CXXField_isMutable", Signature: "unsigned (CXCursor)", Since: V3_8},
	{Name: "clang_CXXMethod_isDefaulted", Signature: "unsigned (CXCursor)", Since: V3_9},
	{Name: "clang_CXXMethod_isDeleted", Signature: "unsigned (CXCursor)", Since: V16_0},
	{Name: "clang_CXXMethod_isCopyAssignmentOperator", Signature: "unsigned (CXCursor)", Since: V16_0},
	{Name: "clang_CXXMethod_isMoveAssignmentOperator", Signature: "unsigned (CXCursor)", Since: V16_0},
	{Name: "clang_CXXMethod_isExplicit", Signature: "unsigned (CXCursor)", Since: V17_0},
	{Name: "clang_CXXMethod_isPureVirtual", Signature: "unsigned (CXCursor)", Since: V3_5},
	{Name: "clang_CXXMethod_isStatic", Signature: "unsigned (CXCursor)", Since: V3_5},
	{Name: "clang_CXXMethod_isVirtual", Signature: "unsigned (CXCursor)", Since: V3_5},
	{Name: "clang_CXXMethod_isConst", Signature: "unsigned (CXCursor)", Since: V3_5},
	{Name: "clang_CXXRecord_isAbstract", Signature: "unsigned (CXCursor)", Since: V6_0},
	{Name: "clang_getTemplateCursorKind", Signature: "enum CXCursorKind (CXCursor)", Since: V3_5},
	{Name: "clang_getSpecializedCursorTemplate", Signature: "CXCursor (CXCursor)", Since: V3_5},
	{Name: "clang_getCursorBinaryOperatorKind", Signature: "enum CX_BinaryOperatorKind (CXCursor)", Since: V17_0},
	{Name: "clang_getBinaryOperatorKindSpelling", Signature: "CXString (enum CX_BinaryOperatorKind)", Since: V17_0},
	{Name: "clang_getCursorUnaryOperatorKind", Signature: "enum CX_UnaryOperatorKind (CXCursor)", Since: V17_0},
	{Name: "clang_getUnaryOperatorKindSpelling", Signature: "CXString (enum CX_UnaryOperatorKind)", Since: V17_0},
	{Name: "clang_Cursor_getBinaryOpcode", Signature: "enum CX_BinaryOperatorKind (CXCursor)", Since: V19_0},
	{Name: "clang_Cursor_getBinaryOpcodeStr", Signature: "CXString (enum CX_BinaryOperatorKind)", Since: V19_0},
	{Name: "clang_Cursor_Evaluate", Signature: "CXEvalResult (CXCursor)", Since: V3_9},
	{Name: "clang_EvalResult_getKind", Signature: "CXEvalResultKind (CXEvalResult)", Since: V3_9},
	{Name: "clang_EvalResult_getAsInt", Signature: "int (CXEvalResult)", Since: V3_9},
	{Name: "clang_EvalResult_getAsLongLong", Signature: "long long (CXEvalResult)", Since: V4_0},
	{Name: "clang_EvalResult_isUnsignedInt", Signature: "unsigned (CXEvalResult)", Since: V4_0},
	{Name: "clang_EvalResult_getAsUnsigned", Signature: "unsigned long long (CXEvalResult)", Since: V4_0},
	{Name: "clang_EvalResult_getAsDouble", Signature: "double (CXEvalResult)", Since: V3_9},
	{Name: "clang_EvalResult_getAsStr", Signature: "const char *(CXEvalResult)", Since: V3_9},
	{Name: "clang_EvalResult_dispose", Signature: "void (CXEvalResult)", Since: V3_9},
	{Name: "clang_visitChildren", Signature: "unsigned (CXCursor, CXCursorVisitor, CXClientData)", Since: V3_5},
	{Name: "clang_getNullLocation", Signature: "CXSourceLocation (void)", Since: V3_5},
	{Name: "clang_equalLocations", Signature: "unsigned (CXSourceLocation, CXSourceLocation)", Since: V3_5},
	{Name: "clang_getLocation", Signature: "CXSourceLocation (CXTranslationUnit, CXFile, unsigned, unsigned)", Since: V3_5},
	{Name: "clang_Location_isInSystemHeader", Signature: "int (CXSourceLocation)", Since: V3_5},
	{Name: "clang_Location_isFromMainFile", Signature: "int (CXSourceLocation)", Since: V3_5},
	{Name: "clang_getNullRange", Signature: "CXSourceRange (void)", Since: V3_5},
	{Name: "clang_getRange", Signature: "CXSourceRange (CXSourceLocation, CXSourceLocation)", Since: V3_5},
	{Name: "clang_Range_isNull", Signature: "int (CXSourceRange)", Since: V3_5},
	{Name: "clang_getExpansionLocation", Signature: "void (CXSourceLocation, CXFile *, unsigned *, unsigned *, unsigned *)", Since: V3_5},
	{Name: "clang_getSpellingLocation", Signature: "void (CXSourceLocation, CXFile *, unsigned *, unsigned *, unsigned *)", Since: V3_5},
	{Name: "clang_getFileLocation", Signature: "void (CXSourceLocation, CXFile *, unsigned *, unsigned *, unsigned *)", Since: V3_5},
	{Name: "clang_getRangeStart", Signature: "CXSourceLocation (CXSourceRange)", Since: V3_5},
	{Name: "clang_getRangeEnd", Signature: "CXSourceLocation (CXSourceRange)", Since: V3_5},
	{Name: "clang_tokenize", Signature: "void (CXTranslationUnit, CXSourceRange, CXToken **, unsigned *)", Since: V3_5},
	{Name: "clang_getTokenKind", Signature: "CXTokenKind (CXToken)", Since: V3_5},
	{Name: "clang_getTokenSpelling", Signature: "CXString (CXTranslationUnit, CXToken)", Since: V3_5},
	{Name: "clang_getTokenLocation", Signature: "CXSourceLocation (CXTranslationUnit, CXToken)", Since: V3_5},
	{Name: "clang_getTokenExtent", Signature: "CXSourceRange (CXTranslationUnit, CXToken)", Since: V3_5},
	{Name: "clang_getToken", Signature: "CXToken *(CXTranslationUnit, CXSourceLocation)", Since: V7_0},
	{Name: "clang_disposeTokens", Signature: "void (CXTranslationUnit, CXToken *, unsigned)", Since: V3_5},
	{Name: "clang_getInclusions", Signature: "void (CXTranslationUnit, CXInclusionVisitor, CXClientData)", Since: V3_5},
	{Name: "clang_codeCompleteAt", Signature: "CXCodeCompleteResults *(CXTranslationUnit, const char *, unsigned, unsigned, struct CXUnsavedFile *, unsigned, unsigned)", Since: V3_5},
	{Name: "clang_defaultCodeCompleteOptions", Signature: "unsigned (void)", Since: V3_5},
	{Name: "clang_disposeCodeCompleteResults", Signature: "void (CXCodeCompleteResults *)", Since: V3_5},
	{Name: "clang_getCompletionChunkKind", Signature: "enum CXCompletionChunkKind (CXCompletionString, unsigned)", Since: V3_5},
	{Name: "clang_getNumCompletionChunks", Signature: "unsigned (CXCompletionString)", Since: V3_5},
	{Name: "clang_getCompletionPriority", Signature: "unsigned (CXCompletionString)", Since: V3_5},
	{Name: "clang_getCompletionFixIt", Signature: "CXString (CXCodeCompleteResults *, unsigned, unsigned, CXSourceRange *)", Since: V7_0},
	{Name: "clang_getCompletionNumFixIts", Signature: "unsigned (CXCodeCompleteResults *, unsigned)", Since: V7_0},
	{Name: "clang_Module_getASTFile", Signature: "CXFile (CXModule)", Since: V3_5},
	{Name: "clang_Module_getFullName", Signature: "CXString (CXModule)", Since: V3_5},
	{Name: "clang_Module_isSystem", Signature: "int (CXModule)", Since: V3_5},
	{Name: "clang_indexSourceFile", Signature: "int (CXIndexAction, CXClientData, IndexerCallbacks *, unsigned, unsigned, const char *, const char *const *, int, struct CXUnsavedFile *, unsigned, CXTranslationUnit *, unsigned)", Since: V3_5},
	{Name: "clang_IndexAction_create", Signature: "CXIndexAction (CXIndex)", Since: V3_5},
	{Name: "clang_IndexAction_dispose", Signature: "void (CXIndexAction)", Since: V3_5},
	{Name: "clang_install_aborting_llvm_fatal_error_handler", Signature: "void (void)", Since: V6_0},
	{Name: "clang_uninstall_llvm_fatal_error_handler", Signature: "void (void)", Since: V6_0},
}

var functionIndex = func() map[string]Function {
	index := make(map[string]Function, len(Functions))
	for _, fn := range Functions {
		index[fn.Name] = fn
	}
	return index
}()

// LookupFunction returns the catalog entry for name.
func LookupFunction(name string) (Function, bool) {
	fn, ok := functionIndex[name]
	return fn, ok
}
