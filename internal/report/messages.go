package report

// Rule identifies the kind of a diagnostic.
type Rule string

const (
	// RuleOrder reports two members of the same group in the wrong order.
	RuleOrder Rule = "order"
	// RuleGroupOrder reports a member placed before a member of an earlier group.
	RuleGroupOrder Rule = "group-order"
	// RuleInvalidConfig reports a magic comment whose options cannot be used.
	RuleInvalidConfig Rule = "invalid-config"
)

// Mode is what the run does with the files it finds.
type Mode string

const (
	ModeCheck  Mode = "check"
	ModeWrite  Mode = "write"
	ModeDryRun Mode = "dry-run"
)

// Messages printed for files and in the summary.
const (
	MsgSorted          = "✓ Sorted %s (%d containers)\n"
	MsgNeedsSorting    = "✗ Needs sorting: %s (%d containers need sorting)\n"
	MsgWouldSort       = "Would sort %s (%d containers need sorting)\n"
	MsgNoChanges       = "✓ No changes needed %s\n"
	MsgAlreadySorted   = "✓ No changes needed %s (%d containers already sorted)\n"
	MsgFileError       = "✗ %s: %s\n"
	MsgDiagnostic      = "%s:%d:%d: %s (%s)\n"
	MsgDiagnosticNoFix = "%s:%d:%d: %s (%s, not fixable)\n"
	MsgInvalidConfig   = "Invalid keep-sorted configuration: %v"
	MsgNoFiles         = "No TypeScript files found"
	MsgFilesNeedSort   = "files need sorting"
	MsgSummaryRule     = "\n─────────────────────────────────────\n"
)
