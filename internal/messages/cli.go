package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse                 = "atm"
	RootShort               = "AOSC Topic Manager"
	RootLong                = "Manage the testing topics this system is subscribed to.\n\nEnabled topics are written to the apt source list; topics that disappear upstream are closed and their packages are reverted to stable."
	RootFlagConfig          = "Path to the atm config file"
	RootFlagLogLevel        = "Set the log level (debug, info, warn, error)"
	RootFlagLogFormat       = "Set the log format (text, json)"
	RootInvalidLogLevelFmt  = "invalid log level: %s"
	RootInvalidLogFormatFmt = "invalid log format: %s"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// ListUse is the list command name.
	ListUse               = "list"
	ListShort             = "List available, enabled and closed topics"
	ListFlagOutput        = "Output format (table, json)"
	ListInvalidOutputFmt  = "unsupported output format %q (supported: table, json)"
	ListHeaderState       = "State"
	ListHeaderName        = "Topic"
	ListHeaderDate        = "Updated"
	ListHeaderPackages    = "Packages"
	ListHeaderDescription = "Description"
	ListStateEnabled      = "enabled"
	ListStateAvailable    = "available"
	ListStateClosed       = "closed"
	ListEmpty             = "No topics are available."

	// EnableUse is the enable command usage.
	EnableUse   = "enable TOPIC..."
	EnableShort = "Subscribe to one or more topics"

	// DisableUse is the disable command usage.
	DisableUse   = "disable TOPIC..."
	DisableShort = "Unsubscribe from one or more topics"

	// SelectUse is the select command usage.
	SelectUse              = "select"
	SelectShort            = "Choose enabled topics interactively"
	SelectTitle            = "Select the topics to enable"
	SelectRequiresTerminal = "topic selection requires an interactive terminal; use 'atm enable' or 'atm disable' instead"
	SelectCanceled         = "topic selection canceled"
	SelectOptionFmt        = "%s - %s"

	// RefreshUse is the refresh command usage.
	RefreshUse   = "refresh"
	RefreshShort = "Close topics removed upstream and revert their packages"

	// FlagDryRun is shared by the committing commands.
	FlagDryRun   = "Show the source list changes without writing anything"
	FlagNoRevert = "Do not reinstall stable versions of packages from closed topics"
	FlagNoUpdate = "Do not run apt-get update after writing the source list"

	TopicNotFoundFmt     = "topic %q is not available"
	TopicClosedFmt       = "topic %q has been closed upstream and cannot be enabled"
	TopicsRequired       = "at least one topic name is required"
	CommitNoChanges      = "No changes to the topic subscriptions."
	CommitDoneFmt        = "Updated source list with %d enabled topic(s).\n"
	DryRunHeader         = "Dry run: the source list would change as follows."
	DryRunNoDiff         = "Dry run: the source list is already up to date."
	ClosedTopicWarnFmt   = "Topic %s has been closed upstream.\n"
	RevertPlanHeader     = "The following packages will be reverted to stable:"
	RevertNothing        = "No installed packages need to be reverted."
	RefreshNothingClosed = "No topics have been closed upstream."
	NoHistoryWarning     = "No previous topic state was found; nothing to close."
)
