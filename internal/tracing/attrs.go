package tracing

// Span names.
const (
	SpanCommandPrefix = "cli."
	SpanRepoPrefix    = "repo."
)

// Attribute keys.
const (
	AttrTimestamp = "stampdelta.timestamp"
	AttrMode      = "stampdelta.mode"
	AttrOffset    = "stampdelta.offset"
	AttrLimit     = "stampdelta.limit"
	AttrRows      = "stampdelta.rows"
	AttrArgs      = "cli.args"
)
