package messages

// System messages for internal operations.
const (
	// StateSystemRequired indicates a snapshot store was built without a filesystem.
	StateSystemRequired     = "state system is required"
	StatePathRequired       = "state path is required"
	StateReadFailedFmt      = "read topic state %s: %w"
	StateDecodeFailedFmt    = "decode topic state %s: %w"
	StateEncodeFailedFmt    = "encode topic state: %w"
	StateCreateDirFailedFmt = "create state dir %s: %w"
	StateWriteFailedFmt     = "write topic state %s: %w"
	StateMalformed          = "malformed topic state"

	// SourcesStoreRequired indicates a materializer was built without a snapshot store.
	SourcesStoreRequired  = "sources snapshot store is required"
	SourcesSystemRequired = "sources system is required"
	SourcesWriteFailedFmt = "write source list %s: %w"
	SourcesReadFailedFmt  = "read source list %s: %w"

	// LockOpenFmt formats errors opening the advisory lock file.
	LockOpenFmt    = "open lock %s: %w"
	LockFmt        = "lock %s: %w"
	LockTimeoutFmt = "timed out waiting for lock after %s"

	// FsutilCreateTempFmt formats atomic write temp file failures.
	FsutilCreateTempFmt = "create temp file in %s: %w"
	FsutilWriteTempFmt  = "write temp file %s: %w"
	FsutilSyncTempFmt   = "sync temp file %s: %w"
	FsutilCloseTempFmt  = "close temp file %s: %w"
	FsutilChmodTempFmt  = "chmod temp file %s: %w"
	FsutilRenameFmt     = "move %s into place: %w"

	// RevertOracleRequired indicates no installed-package oracle was provided.
	RevertOracleRequired       = "installed package oracle is required"
	RevertInstalledUnavailable = "installed package set unavailable"

	// DpkgReadFailedFmt formats dpkg status read failures.
	DpkgReadFailedFmt      = "read dpkg status %s: %w"
	DpkgParseFailedFmt     = "parse dpkg status %s: %w"
	DpkgLineErrorFmt       = "line %d: %w"
	DpkgMalformedFieldFmt  = "malformed field %q"
	DpkgOrphanContinuation = "continuation line outside of a field"
	DpkgScanFailedFmt      = "scan dpkg status: %w"

	// ManifestCreateRequestErrFmt formats manifest request construction failures.
	ManifestCreateRequestErrFmt = "create manifest request: %w"
	ManifestFetchErrFmt         = "fetch topic manifest %s: %w"
	ManifestStatusFmt           = "fetch topic manifest %s: unexpected status %s"
	ManifestDecodeErrFmt        = "decode topic manifest %s: %w"
	ManifestInvalidFmt          = "invalid topic manifest %s: %w"
	ManifestURLRequired         = "manifest url is required"
	ManifestArchRequired        = "architecture is required"

	// TopicNameRequiredFmt formats missing topic name validation errors.
	TopicNameRequiredFmt  = "topic %d: name is required"
	TopicDuplicateNameFmt = "topic %d: name %q duplicates topic %d"
	TopicInvalidFmt       = "topic %q: %w"

	// AptRunnerRequired indicates no command runner was provided.
	AptRunnerRequired   = "apt runner is required"
	AptCommandFailedFmt = "%s: %w"
)
